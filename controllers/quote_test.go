package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/quote", Quote())
	r.GET("/api/cabs/options", CabOptions())
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteMetroMorningEconomy(t *testing.T) {
	r := quoteRouter()

	w := postJSON(t, r, "/api/quote", gin.H{
		"destination": "Mumbai",
		"slot":        "morning",
		"class":       "Economy",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, float64(6370), resp["flight_price"])
	assert.Equal(t, float64(4550), resp["hotel_price"])
	assert.Equal(t, float64(1966), resp["cab_price"])
	assert.Equal(t, float64(12886), resp["total"])
	assert.Equal(t, float64(1), resp["legs"])
}

func TestQuoteDefaultsFillMissingFields(t *testing.T) {
	r := quoteRouter()

	w := postJSON(t, r, "/api/quote", gin.H{
		"destination": "Assam",
		"passengers":  0,
		"rooms":       -2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// non-metro, neutral slot, defaults Economy/standard/sedan
	assert.Equal(t, float64(3150), resp["flight_price"])
	assert.Equal(t, float64(2250), resp["hotel_price"])
	assert.Equal(t, float64(972), resp["cab_price"])
	assert.Equal(t, float64(6372), resp["total"])
}

func TestQuoteMultiCityLegs(t *testing.T) {
	r := quoteRouter()

	w := postJSON(t, r, "/api/quote", gin.H{
		"destination": "Delhi,Mumbai,Goa",
		"tripType":    "multi",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(3), resp["legs"])
}

func TestQuoteRequiresDestination(t *testing.T) {
	r := quoteRouter()

	w := postJSON(t, r, "/api/quote", gin.H{"slot": "morning"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCabOptionsOrderedByTier(t *testing.T) {
	r := quoteRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/cabs/options?destination=Assam&slot=early", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Options []struct {
			Tier  string `json:"tier"`
			Price int    `json:"price"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Options, 4)

	assert.Equal(t, "suv", resp.Options[2].Tier)
	assert.Equal(t, 1166, resp.Options[2].Price)
	assert.Less(t, resp.Options[0].Price, resp.Options[3].Price)
}
