package controllers

import (
	"github.com/Srinidhi1009/travelease-project/models"
)

// draftInput is the wire shape shared by the quote and checkout endpoints.
// Numeric fields arrive as whatever the form held, so everything is
// normalized before pricing: counts clamp to at least one traveler and one
// room, a cleared budget reads as zero, and defaults fill the selector
// fields the same way the builder UI seeds them.
type draftInput struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination" binding:"required"`
	TripType      string   `json:"tripType"`
	Class         string   `json:"class"`
	Slot          string   `json:"slot"`
	Passengers    int      `json:"passengers"`
	Rooms         int      `json:"rooms"`
	RoomType      string   `json:"roomType"`
	CabType       string   `json:"cabType"`
	SelectedSeats []string `json:"selectedSeats"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    string   `json:"returnDate"`
	CheckInDate   string   `json:"checkInDate"`
	CheckOutDate  string   `json:"checkOutDate"`
	Pickup        string   `json:"pickup"`
	Dropoff       string   `json:"dropoff"`
	Dietary       string   `json:"dietary"`
	Preference    string   `json:"preference"`
	Budget        int      `json:"budget"`
}

func (in draftInput) toDraft() models.BookingDraft {
	d := models.BookingDraft{
		Origin:        in.Origin,
		Destination:   in.Destination,
		TripType:      in.TripType,
		Class:         in.Class,
		Slot:          in.Slot,
		Passengers:    in.Passengers,
		Rooms:         in.Rooms,
		RoomType:      in.RoomType,
		CabType:       in.CabType,
		SelectedSeats: in.SelectedSeats,
		DepartureDate: in.DepartureDate,
		ReturnDate:    in.ReturnDate,
		CheckInDate:   in.CheckInDate,
		CheckOutDate:  in.CheckOutDate,
		Pickup:        in.Pickup,
		Dropoff:       in.Dropoff,
		Dietary:       in.Dietary,
		Preference:    in.Preference,
		Budget:        in.Budget,
	}

	if d.TripType == "" {
		d.TripType = models.TripOneway
	}
	if d.Class == "" {
		d.Class = "Economy"
	}
	if d.RoomType == "" {
		d.RoomType = "standard"
	}
	if d.CabType == "" {
		d.CabType = "sedan"
	}
	if d.Passengers < 1 {
		d.Passengers = 1
	}
	if d.Rooms < 1 {
		d.Rooms = 1
	}
	if d.Budget < 0 {
		d.Budget = 0
	}

	return d
}
