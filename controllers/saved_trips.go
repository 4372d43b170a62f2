package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Srinidhi1009/travelease-project/models"
)

// SaveTrip stores a builder draft under a label so it can be reloaded later.
func SaveTrip(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Label string `json:"label" binding:"required"`
			draftInput
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip data"})
			return
		}

		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		trip := models.SavedTrip{
			UserID: userID,
			Label:  req.Label,
			Draft:  req.toDraft(),
		}
		if err := db.Create(&trip).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save trip"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Trip saved",
			"trip":    trip,
		})
	}
}

func GetSavedTrips(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		var trips []models.SavedTrip
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&trips).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved trips"})
			return
		}

		c.JSON(http.StatusOK, trips)
	}
}

func DeleteSavedTrip(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		id := c.Param("id")
		res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedTrip{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Saved trip not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
	}
}
