package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Price    float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration int       `gorm:"not null" json:"duration"` // in minutes
	ImageURL string    `json:"imageUrl"`

	Translations []ServiceTranslation `gorm:"foreignKey:ServiceID" json:"translations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// ServiceTranslation holds the localized presentation of a service.
// One row per (service, locale); slugs are unique within a locale.
type ServiceTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_service_locale,priority:1" json:"serviceId"`
	Locale      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_service_locale,priority:2;uniqueIndex:idx_locale_slug,priority:1" json:"locale"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Slug        string    `gorm:"not null;uniqueIndex:idx_locale_slug,priority:2" json:"slug"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *ServiceTranslation) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
