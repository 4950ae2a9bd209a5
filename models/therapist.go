package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WorkStatusAvailable = "AVAILABLE"
	WorkStatusWorking   = "WORKING"
)

type Therapist struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ImageURL        string     `json:"imageUrl"`
	Specialties     StringList `gorm:"type:text" json:"specialties"`
	ExperienceYears int        `gorm:"default:0" json:"experienceYears"`
	WorkStatus      string     `gorm:"type:varchar(20);default:'AVAILABLE'" json:"workStatus"`

	Translations []TherapistTranslation `gorm:"foreignKey:TherapistID" json:"translations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Therapist) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

func ValidWorkStatus(status string) bool {
	return status == WorkStatusAvailable || status == WorkStatusWorking
}

type TherapistTranslation struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TherapistID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_therapist_locale,priority:1" json:"therapistId"`
	Locale                 string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_therapist_locale,priority:2" json:"locale"`
	Name                   string     `gorm:"not null" json:"name"`
	Bio                    string     `gorm:"type:text" json:"bio"`
	SpecialtiesTranslation StringList `gorm:"type:text" json:"specialtiesTranslation"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *TherapistTranslation) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// StringList stores a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = StringList{}
		return nil
	}
	return errors.New("unsupported type for StringList")
}
