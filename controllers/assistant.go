package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srinidhi1009/travelease-project/assistant"
	"github.com/Srinidhi1009/travelease-project/repository"
)

// AssistantChat answers a message from the scripted travel buddy, using the
// active booking's snapshot for the budget placeholders.
func AssistantChat(repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Message   string `json:"message" binding:"required"`
			Language  string `json:"language"`
			BookingID string `json:"booking_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat data"})
			return
		}

		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		ctx := assistant.BookingContext{}
		if req.BookingID != "" {
			if booking, err := repo.ByID(req.BookingID); err == nil && booking.UserID == userID {
				ctx = assistant.BookingContext{
					Destination: booking.Destination,
					Spent:       booking.Spent,
					TotalBudget: booking.Details.TotalBudget,
				}
			}
		} else if booking, err := repo.Latest(userID); err == nil {
			ctx = assistant.BookingContext{
				Destination: booking.Destination,
				Spent:       booking.Spent,
				TotalBudget: booking.Details.TotalBudget,
			}
		}

		text, replyType := assistant.Reply(req.Message, req.Language, ctx)

		c.JSON(http.StatusOK, gin.H{
			"reply": text,
			"type":  replyType,
		})
	}
}

// AssistantGreeting returns the opening message for a language.
func AssistantGreeting() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"greeting": assistant.Greeting(c.Query("language")),
		})
	}
}

// GetCityGuide exposes the curated places/gates/weather data for a city.
func GetCityGuide() gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.Param("city")
		c.JSON(http.StatusOK, gin.H{
			"city":  city,
			"guide": assistant.GuideFor(city),
		})
	}
}
