// Package assistant implements the scripted Travel Buddy. Replies come from a
// per-language template table keyed by case-insensitive substring match on the
// user's message, filled in from the active booking and a small city guide.
package assistant

import (
	"strconv"
	"strings"
)

// ReplyType tells the client whether to render follow-up actions.
const (
	TypeDefault      = "default"
	TypeActionRebook = "action_rebook"
)

// defaultBudget stands in when a booking carries no budget ceiling, so the
// budget replies always have a denominator.
const defaultBudget = 50000

// BookingContext is the slice of a persisted booking the assistant needs. It
// reads the snapshotted budget and spent values; it never calls the pricing
// engine itself.
type BookingContext struct {
	Destination string
	Spent       int
	TotalBudget int
}

// CityGuide holds the curated data shown for a destination.
type CityGuide struct {
	Places  []string `json:"places"`
	Gates   []string `json:"gates"`
	Weather string   `json:"weather"`
}

var cityGuides = map[string]CityGuide{
	"Assam": {
		Places:  []string{"Kamakhya Temple", "Kaziranga National Park", "Umananda Island"},
		Gates:   []string{"T1 - Gate 24", "T1 - Gate 08"},
		Weather: "22°C, Overcast skies",
	},
	"Mumbai": {
		Places:  []string{"Gateway of India", "Marine Drive", "Elephanta Caves"},
		Gates:   []string{"T2 - Gate 12", "T2 - Gate 45"},
		Weather: "31°C, Humid",
	},
	"Delhi": {
		Places:  []string{"Red Fort", "Qutub Minar", "India Gate"},
		Gates:   []string{"T3 - Gate 18", "T3 - Gate 04"},
		Weather: "28°C, Hazy",
	},
	"Bangalore": {
		Places:  []string{"Lalbagh Botanical Garden", "Bangalore Palace", "Cubbon Park"},
		Gates:   []string{"T1 - Gate 32", "T1 - Gate 15"},
		Weather: "24°C, Pleasant",
	},
	"Goa": {
		Places:  []string{"Calangute Beach", "Basilica of Bom Jesus", "Dudhsagar Falls"},
		Gates:   []string{"T1 - Gate 05", "T1 - Gate 02"},
		Weather: "29°C, Sunny",
	},
	"Kerala": {
		Places:  []string{"Munnar Tea Gardens", "Alleppey Backwaters", "Varkala Beach"},
		Gates:   []string{"T1 - Gate 09", "T2 - Gate 21"},
		Weather: "27°C, Tropical",
	},
}

var fallbackGuide = CityGuide{
	Places:  []string{"Local Heritage Sites", "City Center", "Famous Markets"},
	Gates:   []string{"Main Terminal"},
	Weather: "25°C, Normal",
}

// Intent keys, matched against the message in this order.
const (
	intentWeather = "Weather Prediction"
	intentGates   = "Gate Changes"
	intentBudget  = "Budget & Expenses"
	intentPlaces  = "Local Famous Places"
	intentRebook  = "Flight Cancellations & Rebooking"
	intentDefault = "default"
)

var intentOrder = []string{intentWeather, intentGates, intentBudget, intentPlaces, intentRebook}

var templates = map[string]map[string]string{
	"en": {
		intentWeather: "The current environment in {city} is {weather}. Expect stable conditions for the next 48 hours.",
		intentGates:   "Your flight to {city} is scheduled at {gate}. Status: {status}. Connectivity stable.",
		intentBudget:  "You have utilized {perc}% of your ₹{budget} budget for {city}. ₹{rem} remaining for this trip.",
		intentPlaces:  "Top picks in {city}: {places}.",
		intentRebook:  "Change request detected for {city}. Would you like to cancel this booking or rebook your journey?",
		intentDefault: "All good on my side. How can I assist with your journey to {city} today?",
	},
	"hi": {
		intentWeather: "{city} में वर्तमान वातावरण {weather} है। अगले 48 घंटों तक मौसम स्थिर रहने की संभावना है।",
		intentGates:   "{city} के लिए आपकी उड़ान {gate} पर निर्धारित है। स्थिति: {status}।",
		intentBudget:  "आपने {city} के लिए अपने ₹{budget} बजट का {perc}% उपयोग किया है। ₹{rem} शेष हैं।",
		intentPlaces:  "{city} में शीर्ष स्थान: {places}।",
		intentRebook:  "{city} के लिए बदलाव का अनुरोध मिला। क्या आप इस बुकिंग को रद्द करना चाहेंगे या अपनी यात्रा फिर से बुक करना चाहेंगे?",
		intentDefault: "सब ठीक है। आज मैं आपकी {city} यात्रा योजना में आपकी क्या सहायता कर सकता हूँ?",
	},
	"te": {
		intentWeather: "{city}లో ప్రస్తుత వాతావరణం {weather}. రాబోయే 48 గంటల వరకు సాధారణ స్థితి అంచనా వేయబడింది.",
		intentGates:   "{city}కి మీ విమానం {gate} వద్ద షెడ్యూల్ చేయబడింది. స్థితి: {status}.",
		intentBudget:  "మీరు {city} కోసం మీ ₹{budget} బడ్జెట్‌లో {perc}% ఉపయోగించారు. ₹{rem} మిగిలి ఉన్నాయి.",
		intentPlaces:  "{city}లోని ప్రముఖ ప్రదేశాలు: {places}.",
		intentRebook:  "{city} కోసం మార్పు అభ్యర్థన గుర్తించబడింది. మీరు ఈ బుకింగ్‌ను రద్దు చేయాలనుకుంటున్నారా లేదా మళ్ళీ బుక్ చేయాలనుకుంటున్నారా?",
		intentDefault: "అంతా బాగుంది. ఈరోజు మీ {city} ప్రయాణంలో నేను మీకు ఎలా సహాయం చేయగలను?",
	},
}

// Greeting returns the assistant's opening message for a language.
func Greeting(language string) string {
	switch language {
	case "hi":
		return "नमस्ते! मैं आपका यात्रा मित्र हूँ। आपकी आज कैसे सहायता कर सकता हूँ?"
	case "te":
		return "హలో! నేను మీ ప్రయాణ స్నేహితుడిని. ఈరోజు మీకు ఎలా సహాయపడగలను?"
	default:
		return "Hey! I'm Travel Buddy. How can I assist with your journey today?"
	}
}

// GuideFor returns the curated guide for a city, or a generic fallback.
func GuideFor(city string) CityGuide {
	if g, ok := cityGuides[city]; ok {
		return g
	}
	return fallbackGuide
}

// Reply classifies the message and renders the matching template. Cancel and
// rebook wording wins over everything else so the client can offer the
// terminate/rebook actions.
func Reply(message, language string, booking BookingContext) (string, string) {
	set, ok := templates[language]
	if !ok {
		set = templates["en"]
	}

	intent := intentDefault
	replyType := TypeDefault

	lower := strings.ToLower(message)
	if strings.Contains(lower, "cancel") || strings.Contains(lower, "rebook") {
		intent = intentRebook
		replyType = TypeActionRebook
	} else {
		for _, key := range intentOrder {
			if strings.Contains(lower, strings.ToLower(key)) {
				intent = key
				if key == intentRebook {
					replyType = TypeActionRebook
				}
				break
			}
		}
	}

	city := booking.Destination
	if city == "" {
		city = "India"
	}
	guide := GuideFor(city)

	budget := booking.TotalBudget
	if budget <= 0 {
		budget = defaultBudget
	}
	spent := booking.Spent
	remaining := budget - spent
	perc := int(float64(spent)/float64(budget)*100 + 0.5)

	text := strings.NewReplacer(
		"{city}", city,
		"{weather}", guide.Weather,
		"{gate}", guide.Gates[0],
		"{status}", "On Time",
		"{budget}", formatAmount(budget),
		"{perc}", strconv.Itoa(perc),
		"{rem}", formatAmount(remaining),
		"{places}", strings.Join(guide.Places, ", "),
	).Replace(set[intent])

	return text, replyType
}

// formatAmount renders an integer rupee amount with thousands separators.
func formatAmount(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}
