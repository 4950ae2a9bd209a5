package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageStatusUnread = "UNREAD"
	MessageStatusRead   = "READ"
)

type Message struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Phone   string    `json:"phone"`
	Subject string    `gorm:"not null" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Status  string    `gorm:"type:varchar(10);default:'UNREAD';index" json:"status"`
	Reply   *string   `gorm:"type:text" json:"reply"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
