package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Srinidhi1009/travelease-project/models"
	"github.com/Srinidhi1009/travelease-project/repository"
)

// stylePreset maps a travel style from the guided wizard onto concrete
// service tiers.
type stylePreset struct {
	class    string
	roomType string
	cabType  string
}

var stylePresets = map[string]stylePreset{
	"budget":  {class: "Economy", roomType: "standard", cabType: "auto"},
	"comfort": {class: "Premium", roomType: "deluxe", cabType: "sedan"},
	"luxury":  {class: "First", roomType: "suite", cabType: "luxury"},
}

// Planner books the guided wizard flow. The wizard collects fewer fields
// than the manual builder, so the travel style expands into tier presets and
// the same pricing engine produces the total; the booking lands as
// mode=automatic.
func Planner(db *gorm.DB, repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Origin        string `json:"origin"`
			Destination   string `json:"destination" binding:"required"`
			DepartureDate string `json:"departureDate"`
			ReturnDate    string `json:"returnDate"`
			Budget        int    `json:"budget"`
			Duration      int    `json:"duration"`
			TravelStyle   string `json:"travelStyle"`
			Dietary       string `json:"dietary"`
			Preference    string `json:"preference"`
			PaymentMethod string `json:"payment_method"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planner data"})
			return
		}

		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		preset, ok := stylePresets[req.TravelStyle]
		if !ok {
			preset = stylePresets["comfort"]
		}

		tripType := models.TripOneway
		if req.ReturnDate != "" {
			tripType = models.TripRound
		}

		budget := req.Budget
		if budget < 0 {
			budget = 0
		}

		draft := models.BookingDraft{
			Origin:        req.Origin,
			Destination:   req.Destination,
			TripType:      tripType,
			Class:         preset.class,
			Slot:          "morning",
			Passengers:    1,
			Rooms:         1,
			RoomType:      preset.roomType,
			CabType:       preset.cabType,
			DepartureDate: req.DepartureDate,
			ReturnDate:    req.ReturnDate,
			Dietary:       req.Dietary,
			Preference:    req.Preference,
			Budget:        budget,
		}

		method := req.PaymentMethod
		if method == "" {
			method = "upi"
		}

		booking, payment, err := createBooking(db, repo, userID, draft, models.ModeAutomatic, method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":       "Journey planned successfully",
			"booking":       booking,
			"total":         booking.Spent,
			"mock_redirect": "/api/payments/mock/confirm/" + strconv.Itoa(int(payment.ID)),
		})
	}
}
