package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusNoShow    = "NO_SHOW"
)

type Booking struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"serviceId"`
	TherapistID *uuid.UUID `gorm:"type:uuid;index" json:"therapistId"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	Time string    `gorm:"type:varchar(5);not null" json:"time"` // HH:mm

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `gorm:"not null" json:"customerEmail"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	Notes         string `gorm:"type:text" json:"notes"`

	Status string `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`

	Service   *Service   `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Therapist *Therapist `gorm:"foreignKey:TherapistID" json:"therapist,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// StartsAt combines the booking date and HH:mm time in local time.
func (b *Booking) StartsAt() time.Time {
	t, err := time.Parse("15:04", b.Time)
	if err != nil {
		return b.Date
	}
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.Local)
}
