package models

import "time"

// Booking statuses. A booking is created pending, confirmed by the mock
// payment gateway, and cancelled only by an explicit user action.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking modes, named after the two builder flows.
const (
	ModeManual    = "manual"    // manual journey builder
	ModeAutomatic = "automatic" // guided planner wizard
)

// Trip types accepted by the builders.
const (
	TripOneway = "oneway"
	TripRound  = "round"
	TripMulti  = "multi"
)

// Booking is the persisted record created at checkout. Spent is the total
// priced at booking time and is never recomputed, even if rate tables change
// later. Only Status mutates after creation.
type Booking struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint         `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Destination string       `gorm:"size:200;not null" json:"destination"`
	Date        string       `gorm:"size:20" json:"date"`
	Spent       int          `json:"spent"`
	Status      string       `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Mode        string       `gorm:"type:varchar(20)" json:"mode"`
	Details     BookingDraft `gorm:"serializer:json" json:"details"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
	Payment     *Payment     `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payment,omitempty"`
}

// BookingDraft is the in-progress trip configuration built up in the booking
// UIs. It is never persisted on its own; checkout snapshots it into
// Booking.Details together with the budget ceiling at that moment.
type BookingDraft struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	TripType      string   `json:"tripType"`
	Class         string   `json:"class"`
	Slot          string   `json:"slot"`
	Passengers    int      `json:"passengers"`
	Rooms         int      `json:"rooms"`
	RoomType      string   `json:"roomType"`
	CabType       string   `json:"cabType"`
	SelectedSeats []string `json:"selectedSeats,omitempty"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	CheckInDate   string   `json:"checkInDate,omitempty"`
	CheckOutDate  string   `json:"checkOutDate,omitempty"`
	Pickup        string   `json:"pickup,omitempty"`
	Dropoff       string   `json:"dropoff,omitempty"`
	Dietary       string   `json:"dietary,omitempty"`
	Preference    string   `json:"preference,omitempty"`
	Budget        int      `json:"budget"`
	TotalBudget   int      `json:"totalBudget,omitempty"`
}
