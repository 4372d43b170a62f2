// Package pricing is the dynamic pricing and valuation engine. Every price in
// the product comes out of UnitPrice/TripTotal; callers snapshot the result at
// checkout and never recompute it from live tables.
package pricing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Srinidhi1009/travelease-project/models"
)

// Service identifies which base-rate family a quote is for.
type Service string

const (
	ServiceFlight Service = "flight"
	ServiceHotel  Service = "hotel"
	ServiceCab    Service = "cab"
)

// Base rates in rupees for a single unit of each service.
const (
	FlightBaseRate = 3500
	HotelBaseRate  = 2500
	CabBaseRate    = 900
)

// Metro destinations carry a surge premium; everything else gets the
// non-metro discount.
var metros = []string{"mumbai", "delhi", "bangalore", "hyderabad", "chennai", "kolkata"}

var (
	metroPremium     = decimal.NewFromFloat(1.4)
	nonMetroDiscount = decimal.NewFromFloat(0.9)
	offPeakDiscount  = decimal.NewFromFloat(0.8)
	peakSurcharge    = decimal.NewFromFloat(1.3)
)

// One shared tier table covers the vocabularies of all three services:
// flight classes, room types and cab categories. Unknown tiers price at 1x.
var tierMultipliers = map[string]decimal.Decimal{
	"economy":      decimal.NewFromInt(1),
	"premium":      decimal.NewFromFloat(1.5),
	"business":     decimal.NewFromFloat(2.5),
	"first":        decimal.NewFromFloat(4.5),
	"standard":     decimal.NewFromInt(1),
	"deluxe":       decimal.NewFromFloat(1.6),
	"suite":        decimal.NewFromFloat(2.8),
	"presidential": decimal.NewFromFloat(5.5),
	"auto":         decimal.NewFromFloat(0.5),
	"sedan":        decimal.NewFromFloat(1.2),
	"suv":          decimal.NewFromFloat(1.8),
	"luxury":       decimal.NewFromFloat(3.5),
}

// UnitPrice prices one unit of a service. It is pure and total: malformed
// base rates collapse to 0 and unknown city/slot/tier strings fall back to
// their default multipliers, so no input can produce an error or a negative
// price. The result is rounded half-up to a whole rupee.
func UnitPrice(service Service, baseRate float64, city, slot, tier string) int {
	if baseRate <= 0 || math.IsNaN(baseRate) || math.IsInf(baseRate, 0) {
		return 0
	}

	multiplier := decimal.NewFromInt(1)

	if isMetro(city) {
		multiplier = multiplier.Mul(metroPremium)
	} else {
		multiplier = multiplier.Mul(nonMetroDiscount)
	}

	switch strings.ToLower(strings.TrimSpace(slot)) {
	case "early", "late":
		multiplier = multiplier.Mul(offPeakDiscount)
	case "morning", "evening":
		multiplier = multiplier.Mul(peakSurcharge)
	}

	if m, ok := tierMultipliers[strings.ToLower(strings.TrimSpace(tier))]; ok {
		multiplier = multiplier.Mul(m)
	}

	price := decimal.NewFromFloat(baseRate).Mul(multiplier).Round(0)
	return int(price.IntPart())
}

// isMetro normalizes a free-text destination (substring before the first
// comma, trimmed, case-insensitive) and checks it for containment of any
// metro name. "Navi Mumbai" and "Mumbai, Maharashtra" both count as metro.
func isMetro(city string) bool {
	normalized := city
	if i := strings.Index(normalized, ","); i >= 0 {
		normalized = normalized[:i]
	}
	normalized = strings.ToLower(strings.TrimSpace(normalized))
	if normalized == "" {
		return false
	}
	for _, m := range metros {
		if strings.Contains(normalized, m) {
			return true
		}
	}
	return false
}

// TripTotal combines unit prices with quantities into the grand total for a
// draft: flight x passengers x leg factor, hotel x rooms, and the cab charged
// once per booking (a single ground transfer, regardless of trip length).
func TripTotal(d models.BookingDraft) int {
	flight := UnitPrice(ServiceFlight, FlightBaseRate, d.Destination, d.Slot, d.Class)
	hotel := UnitPrice(ServiceHotel, HotelBaseRate, d.Destination, d.Slot, d.RoomType)
	cab := UnitPrice(ServiceCab, CabBaseRate, d.Destination, d.Slot, d.CabType)

	passengers := clampMin(d.Passengers, 1)
	rooms := clampMin(d.Rooms, 1)

	legs := 1
	switch d.TripType {
	case models.TripRound:
		legs = 2
	case models.TripMulti:
		legs = LegCount(d.Destination)
	}

	return flight*passengers*legs + hotel*rooms + cab
}

// LegCount counts the comma-separated non-empty segments of a multi-city
// destination string. A single destination with no commas is one leg.
func LegCount(destination string) int {
	legs := 0
	for _, part := range strings.Split(destination, ",") {
		if strings.TrimSpace(part) != "" {
			legs++
		}
	}
	if legs < 1 {
		legs = 1
	}
	return legs
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
