package models

import "time"

type Payment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BookingID  string    `gorm:"size:36;index;not null;unique" json:"booking_id"`
	Method     string    `gorm:"size:50" json:"method"` // upi, card, netbanking
	ProviderTx string    `gorm:"size:200" json:"provider_tx,omitempty"`
	Amount     int       `json:"amount"`
	Status     string    `gorm:"size:50;default:'initiated'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
