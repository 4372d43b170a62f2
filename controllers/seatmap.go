package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Srinidhi1009/travelease-project/repository"
)

// SeatMap builds the 5x6 cabin grid for the builder's seat picker. Seats
// already held by the user's other live bookings on the same destination and
// date come back as taken.
func SeatMap(repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		destination := c.Query("destination")
		date := c.Query("date")

		taken := map[string]bool{}
		if destination != "" && date != "" {
			bookings, err := repo.OnRoute(userID, destination, date)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
				return
			}
			for _, b := range bookings {
				for _, seat := range b.Details.SelectedSeats {
					taken[seat] = true
				}
			}
		}

		cols := []string{"A", "B", "C", "D", "E", "F"}
		layout := []gin.H{}
		for row := 1; row <= 5; row++ {
			seats := []gin.H{}
			for i, col := range cols {
				code := strconv.Itoa(row) + col
				status := "available"
				if taken[code] {
					status = "taken"
				}
				seats = append(seats, gin.H{
					"seat_code": code,
					"status":    status,
					"aisle":     i == 2 || i == 3,
				})
			}
			layout = append(layout, gin.H{"row": row, "seats": seats})
		}

		c.JSON(http.StatusOK, gin.H{"seat_layout": layout})
	}
}
