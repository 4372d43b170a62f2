package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Srinidhi1009/travelease-project/models"
)

func TestUnitPriceKnownScenarios(t *testing.T) {
	// 3500 x 1.4 (metro) x 1.3 (peak) x 1 (economy)
	assert.Equal(t, 6370, UnitPrice(ServiceFlight, 3500, "Mumbai", "morning", "Economy"))

	// 900 x 0.9 (non-metro) x 0.8 (off-peak) x 1.8 (suv) = 1166.4 -> 1166
	assert.Equal(t, 1166, UnitPrice(ServiceCab, 900, "Assam", "early", "suv"))
}

func TestUnitPriceMetroPremium(t *testing.T) {
	metro := UnitPrice(ServiceFlight, 3500, "Mumbai", "afternoon", "economy")
	nonMetro := UnitPrice(ServiceFlight, 3500, "Pune", "afternoon", "economy")
	assert.Greater(t, metro, nonMetro)

	// every listed metro prices identically, and above any non-metro city
	for _, city := range []string{"Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata"} {
		assert.Equal(t, metro, UnitPrice(ServiceFlight, 3500, city, "afternoon", "economy"), city)
	}
}

func TestUnitPriceCityNormalization(t *testing.T) {
	base := UnitPrice(ServiceFlight, 3500, "Mumbai", "afternoon", "economy")

	assert.Equal(t, base, UnitPrice(ServiceFlight, 3500, "MUMBAI", "afternoon", "economy"))
	assert.Equal(t, base, UnitPrice(ServiceFlight, 3500, "mumbai", "afternoon", "economy"))
	assert.Equal(t, base, UnitPrice(ServiceFlight, 3500, "  Mumbai  ", "afternoon", "economy"))
	// only the part before the first comma is matched
	assert.Equal(t, base, UnitPrice(ServiceFlight, 3500, "Mumbai, Maharashtra", "afternoon", "economy"))
	// substring containment, not exact match
	assert.Equal(t, base, UnitPrice(ServiceFlight, 3500, "Navi Mumbai", "afternoon", "economy"))
	// a metro after the comma does not count
	nonMetro := UnitPrice(ServiceFlight, 3500, "Pune", "afternoon", "economy")
	assert.Equal(t, nonMetro, UnitPrice(ServiceFlight, 3500, "Lonavala, near Mumbai", "afternoon", "economy"))
}

func TestUnitPriceSlotMultipliers(t *testing.T) {
	offPeakEarly := UnitPrice(ServiceFlight, 3500, "Delhi", "early", "economy")
	offPeakLate := UnitPrice(ServiceFlight, 3500, "Delhi", "late", "economy")
	peakMorning := UnitPrice(ServiceFlight, 3500, "Delhi", "morning", "economy")
	peakEvening := UnitPrice(ServiceFlight, 3500, "Delhi", "evening", "economy")
	neutral := UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "economy")

	assert.Equal(t, offPeakEarly, offPeakLate)
	assert.Equal(t, peakMorning, peakEvening)
	assert.Less(t, offPeakEarly, peakMorning)
	assert.Less(t, offPeakEarly, neutral)
	assert.Less(t, neutral, peakMorning)

	// unrecognized slots behave like afternoon
	assert.Equal(t, neutral, UnitPrice(ServiceFlight, 3500, "Delhi", "midnight", "economy"))
	assert.Equal(t, neutral, UnitPrice(ServiceFlight, 3500, "Delhi", "", "economy"))
}

func TestUnitPriceTierOrdering(t *testing.T) {
	economy := UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "economy")
	premium := UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "premium")
	business := UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "business")
	first := UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "first")

	assert.Less(t, economy, premium)
	assert.Less(t, premium, business)
	assert.Less(t, business, first)

	standard := UnitPrice(ServiceHotel, 2500, "Delhi", "afternoon", "standard")
	deluxe := UnitPrice(ServiceHotel, 2500, "Delhi", "afternoon", "deluxe")
	suite := UnitPrice(ServiceHotel, 2500, "Delhi", "afternoon", "suite")
	presidential := UnitPrice(ServiceHotel, 2500, "Delhi", "afternoon", "presidential")

	assert.Less(t, standard, deluxe)
	assert.Less(t, deluxe, suite)
	assert.Less(t, suite, presidential)
}

func TestUnitPriceUnknownTierDefaultsToOne(t *testing.T) {
	economy := UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "economy")

	assert.Equal(t, economy, UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "unknown"))
	assert.Equal(t, economy, UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", ""))
	assert.Equal(t, economy, UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "standard"))
	// tier casing is irrelevant
	assert.Equal(t,
		UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "BUSINESS"),
		UnitPrice(ServiceFlight, 3500, "Delhi", "afternoon", "business"))
}

func TestUnitPriceNeverNegativeAndTotal(t *testing.T) {
	for _, base := range []float64{1, 900, 2500, 3500, 0.5, 99999} {
		for _, city := range []string{"", "Mumbai", "Nowhere"} {
			for _, slot := range []string{"", "early", "morning", "junk"} {
				for _, tier := range []string{"", "first", "auto", "junk"} {
					assert.GreaterOrEqual(t, UnitPrice(ServiceFlight, base, city, slot, tier), 0)
				}
			}
		}
	}

	// malformed base rates normalize to a zero price, never an error
	assert.Equal(t, 0, UnitPrice(ServiceFlight, 0, "Mumbai", "morning", "first"))
	assert.Equal(t, 0, UnitPrice(ServiceFlight, -3500, "Mumbai", "morning", "first"))
}

func TestUnitPriceIdempotent(t *testing.T) {
	a := UnitPrice(ServiceHotel, 2500, "Hyderabad", "evening", "suite")
	b := UnitPrice(ServiceHotel, 2500, "Hyderabad", "evening", "suite")
	assert.Equal(t, a, b)
}

func draft() models.BookingDraft {
	return models.BookingDraft{
		Origin:      "Mumbai",
		Destination: "Assam",
		TripType:    models.TripOneway,
		Class:       "Economy",
		Slot:        "early",
		Passengers:  1,
		Rooms:       1,
		RoomType:    "standard",
		CabType:     "suv",
	}
}

func TestTripTotalRoundTripDoublesFlightLeg(t *testing.T) {
	oneway := draft()
	round := draft()
	round.TripType = models.TripRound

	flight := UnitPrice(ServiceFlight, FlightBaseRate, oneway.Destination, oneway.Slot, oneway.Class)
	assert.Equal(t, TripTotal(oneway)+flight, TripTotal(round))
}

func TestTripTotalMultiCityScalesByLegs(t *testing.T) {
	multi := draft()
	multi.TripType = models.TripMulti
	multi.Destination = "Delhi,Mumbai,Goa"

	flight := UnitPrice(ServiceFlight, FlightBaseRate, multi.Destination, multi.Slot, multi.Class)
	hotel := UnitPrice(ServiceHotel, HotelBaseRate, multi.Destination, multi.Slot, multi.RoomType)
	cab := UnitPrice(ServiceCab, CabBaseRate, multi.Destination, multi.Slot, multi.CabType)

	assert.Equal(t, flight*3+hotel+cab, TripTotal(multi))

	// a single destination under multi is one leg
	single := draft()
	single.TripType = models.TripMulti
	assert.Equal(t, TripTotal(draft()), TripTotal(single))
}

func TestTripTotalQuantities(t *testing.T) {
	d := draft()
	flight := UnitPrice(ServiceFlight, FlightBaseRate, d.Destination, d.Slot, d.Class)
	hotel := UnitPrice(ServiceHotel, HotelBaseRate, d.Destination, d.Slot, d.RoomType)
	cab := UnitPrice(ServiceCab, CabBaseRate, d.Destination, d.Slot, d.CabType)

	d.Passengers = 3
	d.Rooms = 2
	assert.Equal(t, flight*3+hotel*2+cab, TripTotal(d))

	// cab is charged once no matter the party size
	d.Passengers = 10
	assert.Equal(t, flight*10+hotel*2+cab, TripTotal(d))

	// zero or negative counts clamp to one
	d.Passengers = 0
	d.Rooms = -4
	assert.Equal(t, flight+hotel+cab, TripTotal(d))
}

func TestLegCount(t *testing.T) {
	assert.Equal(t, 1, LegCount("Goa"))
	assert.Equal(t, 3, LegCount("Delhi,Mumbai,Goa"))
	assert.Equal(t, 2, LegCount("Delhi, ,Goa"))
	assert.Equal(t, 1, LegCount(""))
	assert.Equal(t, 1, LegCount(",,"))
}
