package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMethod is a messaging channel shown on the contact page,
// e.g. LINE, WHATSAPP, WECHAT, TELEGRAM. Type is unique.
type ContactMethod struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Type     string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"type"`
	Value    string    `gorm:"not null" json:"value"`
	IsActive bool      `gorm:"default:true" json:"isActive"`
	QRCode   string    `json:"qrCode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *ContactMethod) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
