package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Srinidhi1009/travelease-project/models"
	"github.com/Srinidhi1009/travelease-project/pricing"
	"github.com/Srinidhi1009/travelease-project/repository"
	"github.com/Srinidhi1009/travelease-project/utils"
)

// createBooking snapshots a draft into a pending booking with an initiated
// payment. Spent is fixed here and never recomputed.
func createBooking(db *gorm.DB, repo repository.Bookings, userID uint, d models.BookingDraft, mode, method string) (*models.Booking, *models.Payment, error) {
	total := pricing.TripTotal(d)
	d.TotalBudget = d.Budget

	booking := &models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		Destination: d.Destination,
		Date:        d.DepartureDate,
		Spent:       total,
		Status:      models.StatusPending,
		Mode:        mode,
		Details:     d,
	}
	if err := repo.Create(booking); err != nil {
		return nil, nil, err
	}

	payment := &models.Payment{
		BookingID:  booking.ID,
		Method:     method,
		Amount:     total,
		Status:     "initiated",
		ProviderTx: utils.NewPaymentRef(),
	}
	if err := db.Create(payment).Error; err != nil {
		return nil, nil, err
	}

	return booking, payment, nil
}

// Checkout books a manually built itinerary.
func Checkout(db *gorm.DB, repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			draftInput
			PaymentMethod string `json:"payment_method"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
			return
		}

		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		method := req.PaymentMethod
		if method == "" {
			method = "upi"
		}

		booking, payment, err := createBooking(db, repo, userID, req.toDraft(), models.ModeManual, method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":       "Booking created successfully",
			"booking":       booking,
			"total":         booking.Spent,
			"mock_redirect": "/api/payments/mock/confirm/" + strconv.Itoa(int(payment.ID)),
		})
	}
}

func GetUserBookings(repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		bookings, err := repo.ByUser(userIDRaw.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user bookings"})
			return
		}

		c.JSON(http.StatusOK, bookings)
	}
}

func GetBookingDetails(repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := repo.ByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		userIDRaw, _ := c.Get("userId")
		if booking.UserID != userIDRaw.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your booking"})
			return
		}

		c.JSON(http.StatusOK, booking)
	}
}

// CancelBooking moves a booking to cancelled. Cancelled is terminal: the
// record stays for rebooking templates but never comes back to life.
func CancelBooking(repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := repo.ByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		userIDRaw, _ := c.Get("userId")
		if booking.UserID != userIDRaw.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your booking"})
			return
		}

		if booking.Status == models.StatusCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "Booking already cancelled"})
			return
		}

		if err := repo.UpdateStatus(booking.ID, models.StatusCancelled); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Booking cancelled",
			"id":      booking.ID,
			"status":  models.StatusCancelled,
		})
	}
}

// RebookTemplate returns a fresh draft copied from a booking's stored
// details. The caller starts a new checkout from it; the original record is
// untouched.
func RebookTemplate(repo repository.Bookings) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := repo.ByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		userIDRaw, _ := c.Get("userId")
		if booking.UserID != userIDRaw.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your booking"})
			return
		}

		draft := booking.Details
		draft.TotalBudget = 0

		c.JSON(http.StatusOK, gin.H{
			"draft":  draft,
			"source": booking.ID,
		})
	}
}
