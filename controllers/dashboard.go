package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srinidhi1009/travelease-project/models"
	"github.com/Srinidhi1009/travelease-project/repository"
)

// Benchmark figures are presentation-layer decoration: fixed shares split
// the booked total across services, and fixed competitor multipliers make
// the comparison bars. Nothing here feeds back into pricing.
type benchmarkSpec struct {
	title       string
	share       float64
	savedFactor float64
	competitors []competitor
}

type competitor struct {
	label  string
	factor float64
}

var benchmarkSpecs = []benchmarkSpec{
	{
		title:       "Flight",
		share:       0.48,
		savedFactor: 0.15,
		competitors: []competitor{
			{"Skyscanner", 1.2},
			{"Cleartrip", 1.15},
			{"Google Flights", 1.18},
		},
	},
	{
		title:       "Hotel",
		share:       0.46,
		savedFactor: 0.2,
		competitors: []competitor{
			{"MakeMyTrip", 1.25},
			{"Goibibo", 1.3},
			{"Agoda", 1.1},
		},
	},
	{
		title:       "Cab",
		share:       0.06,
		savedFactor: 0.3,
		competitors: []competitor{
			{"Uber", 1.4},
			{"Rapido", 1.35},
			{"InDrive", 1.45},
		},
	},
}

// Dashboard summarizes the active booking: budget burn plus the competitor
// benchmark bars. The active booking is ?booking_id= or the newest one.
func Dashboard(repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		var booking *models.Booking
		var err error
		if id := c.Query("booking_id"); id != "" {
			booking, err = repo.ByID(id)
			if err == nil && booking.UserID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not your booking"})
				return
			}
		} else {
			booking, err = repo.Latest(userID)
		}
		if err != nil {
			c.JSON(http.StatusOK, gin.H{
				"active_booking": nil,
				"message":        "No bookings yet",
			})
			return
		}

		budget := booking.Details.TotalBudget
		spent := booking.Spent
		remaining := budget - spent
		utilization := 0
		if budget > 0 {
			utilization = int(float64(spent)/float64(budget)*100 + 0.5)
			if utilization > 100 {
				utilization = 100
			}
		}

		resp := gin.H{
			"active_booking": booking,
			"budget":         budget,
			"spent":          spent,
			"remaining":      remaining,
			"utilization":    utilization,
		}

		// benchmarks are hidden for cancelled bookings, matching the UI
		if booking.Status != models.StatusCancelled {
			benchmarks := []gin.H{}
			for _, spec := range benchmarkSpecs {
				paid := int(float64(spent)*spec.share + 0.5)
				bars := []gin.H{{"label": "TravelEase", "value": paid, "active": true}}
				for _, comp := range spec.competitors {
					bars = append(bars, gin.H{
						"label":  comp.label,
						"value":  int(float64(paid)*comp.factor + 0.5),
						"active": false,
					})
				}
				benchmarks = append(benchmarks, gin.H{
					"title": spec.title,
					"paid":  paid,
					"saved": int(float64(paid)*spec.savedFactor + 0.5),
					"bars":  bars,
				})
			}
			resp["benchmarks"] = benchmarks
		}

		c.JSON(http.StatusOK, resp)
	}
}
