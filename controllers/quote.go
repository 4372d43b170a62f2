package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srinidhi1009/travelease-project/pricing"
)

// Quote prices a draft without persisting anything. The builder UI calls
// this on every field change to keep the displayed total live.
func Quote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input draftInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft data"})
			return
		}

		d := input.toDraft()

		flight := pricing.UnitPrice(pricing.ServiceFlight, pricing.FlightBaseRate, d.Destination, d.Slot, d.Class)
		hotel := pricing.UnitPrice(pricing.ServiceHotel, pricing.HotelBaseRate, d.Destination, d.Slot, d.RoomType)
		cab := pricing.UnitPrice(pricing.ServiceCab, pricing.CabBaseRate, d.Destination, d.Slot, d.CabType)

		c.JSON(http.StatusOK, gin.H{
			"flight_price": flight,
			"hotel_price":  hotel,
			"cab_price":    cab,
			"total":        pricing.TripTotal(d),
			"legs":         pricing.LegCount(d.Destination),
		})
	}
}

// CabOptions prices each cab tier for the current destination and slot, for
// the tier picker in the builder.
func CabOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		destination := c.Query("destination")
		slot := c.Query("slot")

		options := []gin.H{}
		for _, tier := range []string{"auto", "sedan", "suv", "luxury"} {
			options = append(options, gin.H{
				"tier":  tier,
				"price": pricing.UnitPrice(pricing.ServiceCab, pricing.CabBaseRate, destination, slot, tier),
			})
		}

		c.JSON(http.StatusOK, gin.H{"options": options})
	}
}
