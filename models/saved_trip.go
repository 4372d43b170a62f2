package models

import "time"

// SavedTrip keeps a draft around as a reusable template, independent of any
// booking record.
type SavedTrip struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	Label     string       `gorm:"size:100" json:"label"`
	Draft     BookingDraft `gorm:"serializer:json" json:"draft"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
}
