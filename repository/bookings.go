// Package repository abstracts booking persistence so the storage medium can
// be swapped without touching pricing or handler logic.
package repository

import (
	"gorm.io/gorm"

	"github.com/Srinidhi1009/travelease-project/models"
)

// Bookings is the storage contract for booking records.
type Bookings interface {
	Create(b *models.Booking) error
	ByID(id string) (*models.Booking, error)
	ByUser(userID uint) ([]models.Booking, error)
	Latest(userID uint) (*models.Booking, error)
	UpdateStatus(id, status string) error
	OnRoute(userID uint, destination, date string) ([]models.Booking, error)
}

type gormBookings struct {
	db *gorm.DB
}

// NewBookings returns the gorm-backed implementation.
func NewBookings(db *gorm.DB) Bookings {
	return &gormBookings{db: db}
}

func (r *gormBookings) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *gormBookings) ByID(id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.Preload("Payment").First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *gormBookings) ByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

func (r *gormBookings) Latest(userID uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *gormBookings) UpdateStatus(id, status string) error {
	return r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status).Error
}

// OnRoute lists the user's non-cancelled bookings for a destination and
// departure date. Used to mark seats already held on the seat map.
func (r *gormBookings) OnRoute(userID uint, destination, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ? AND destination = ? AND date = ? AND status <> ?",
		userID, destination, date, models.StatusCancelled).
		Find(&bookings).Error
	return bookings, err
}
