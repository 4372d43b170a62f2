package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func booking() BookingContext {
	return BookingContext{Destination: "Mumbai", Spent: 25965, TotalBudget: 60000}
}

func TestReplyWeatherIntent(t *testing.T) {
	text, replyType := Reply("Weather Prediction", "en", booking())
	assert.Equal(t, TypeDefault, replyType)
	assert.Contains(t, text, "Mumbai")
	assert.Contains(t, text, "31°C, Humid")
}

func TestReplyIntentMatchIsCaseInsensitiveSubstring(t *testing.T) {
	direct, _ := Reply("Gate Changes", "en", booking())
	embedded, _ := Reply("any gate changes for my flight?", "en", booking())
	assert.Equal(t, direct, embedded)
	assert.Contains(t, direct, "T2 - Gate 12")
}

func TestReplyBudgetMath(t *testing.T) {
	text, _ := Reply("Budget & Expenses", "en", booking())
	assert.Contains(t, text, "₹60,000")
	assert.Contains(t, text, "₹34,035")
	assert.Contains(t, text, "43%") // 25965/60000 rounded
}

func TestReplyBudgetFallbackWhenUnset(t *testing.T) {
	text, _ := Reply("Budget & Expenses", "en", BookingContext{Destination: "Goa", Spent: 10000})
	assert.Contains(t, text, "₹50,000")
	assert.Contains(t, text, "20%")
	assert.Contains(t, text, "₹40,000")

	// no booking at all still quotes the default ceiling
	text, _ = Reply("Budget & Expenses", "en", BookingContext{})
	assert.Contains(t, text, "₹50,000")
	assert.Contains(t, text, "0%")
}

func TestReplyCancelWinsOverOtherIntents(t *testing.T) {
	_, replyType := Reply("cancel my trip, weather looks bad", "en", booking())
	assert.Equal(t, TypeActionRebook, replyType)

	_, replyType = Reply("I want to REBOOK", "en", booking())
	assert.Equal(t, TypeActionRebook, replyType)
}

func TestReplyUnknownMessageFallsBackToDefault(t *testing.T) {
	text, replyType := Reply("hello there", "en", booking())
	assert.Equal(t, TypeDefault, replyType)
	assert.Contains(t, text, "Mumbai")
}

func TestReplyUnknownCityUsesFallbackGuide(t *testing.T) {
	ctx := BookingContext{Destination: "Shillong", Spent: 0, TotalBudget: 50000}
	text, _ := Reply("Local Famous Places", "en", ctx)
	assert.Contains(t, text, "Local Heritage Sites")
	assert.Contains(t, text, "Shillong")
}

func TestReplyNoBookingContext(t *testing.T) {
	text, _ := Reply("Weather Prediction", "en", BookingContext{})
	assert.Contains(t, text, "India")
}

func TestReplyLanguages(t *testing.T) {
	hi, _ := Reply("Budget & Expenses", "hi", booking())
	assert.Contains(t, hi, "बजट")

	te, _ := Reply("Budget & Expenses", "te", booking())
	assert.Contains(t, te, "బడ్జెట్")

	// unsupported languages fall back to English
	fr, _ := Reply("Budget & Expenses", "fr", booking())
	en, _ := Reply("Budget & Expenses", "en", booking())
	assert.Equal(t, en, fr)
}

func TestGreeting(t *testing.T) {
	assert.True(t, strings.Contains(Greeting("en"), "Travel Buddy"))
	assert.NotEqual(t, Greeting("en"), Greeting("hi"))
	assert.NotEqual(t, Greeting("hi"), Greeting("te"))
	assert.Equal(t, Greeting("en"), Greeting("xx"))
}

func TestGuideFor(t *testing.T) {
	assert.Equal(t, "28°C, Hazy", GuideFor("Delhi").Weather)
	assert.Equal(t, fallbackGuide, GuideFor("Atlantis"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "999", formatAmount(999))
	assert.Equal(t, "60,000", formatAmount(60000))
	assert.Equal(t, "1,234,567", formatAmount(1234567))
	assert.Equal(t, "-5,000", formatAmount(-5000))
}
