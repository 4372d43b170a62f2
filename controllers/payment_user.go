package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Srinidhi1009/travelease-project/models"
	"github.com/Srinidhi1009/travelease-project/utils"
)

// InitiatePayment hands out the mock redirect for a booking's payment.
// Checkout already creates the payment record, so a retry reissues the
// pending one instead of inserting a second row per booking.
func InitiatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BookingID string `json:"booking_id" binding:"required"`
			Method    string `json:"method"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment data"})
			return
		}

		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		var booking models.Booking
		if err := db.First(&booking, "id = ?", req.BookingID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your booking"})
			return
		}

		if booking.Status == models.StatusCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is cancelled"})
			return
		}

		var payment models.Payment
		if err := db.Where("booking_id = ?", booking.ID).First(&payment).Error; err == nil {
			if payment.Status == "success" {
				c.JSON(http.StatusConflict, gin.H{"error": "Payment already completed"})
				return
			}
			if req.Method != "" && req.Method != payment.Method {
				payment.Method = req.Method
				db.Save(&payment)
			}
			c.JSON(http.StatusOK, gin.H{
				"message":       "Payment initiated",
				"payment_id":    payment.ID,
				"mock_redirect": "/api/payments/mock/confirm/" + strconv.Itoa(int(payment.ID)),
			})
			return
		}

		method := req.Method
		if method == "" {
			method = "upi"
		}

		payment = models.Payment{
			BookingID:  booking.ID,
			Amount:     booking.Spent,
			Method:     method,
			Status:     "initiated",
			ProviderTx: utils.NewPaymentRef(),
		}

		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate payment"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Payment initiated",
			"payment_id":    payment.ID,
			"mock_redirect": "/api/payments/mock/confirm/" + strconv.Itoa(int(payment.ID)),
		})
	}
}

// MockConfirmPayment simulates the gateway callback: the payment succeeds
// and the booking is confirmed.
func MockConfirmPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var payment models.Payment
		if err := db.First(&payment, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, "id = ?", payment.BookingID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		if booking.Status == models.StatusCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is cancelled"})
			return
		}

		payment.Status = "success"
		payment.UpdatedAt = time.Now()
		booking.Status = models.StatusConfirmed

		db.Save(&payment)
		db.Save(&booking)

		c.JSON(http.StatusOK, gin.H{
			"message":  "Payment successful (mock)",
			"booking":  booking.ID,
			"status":   booking.Status,
			"amount":   payment.Amount,
			"method":   payment.Method,
			"datetime": payment.UpdatedAt,
		})
	}
}

func GetUserPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDRaw.(uint)

		var payments []models.Payment
		if err := db.Joins("JOIN bookings ON bookings.id = payments.booking_id").
			Where("bookings.user_id = ?", userID).
			Order("payments.created_at desc").
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}
