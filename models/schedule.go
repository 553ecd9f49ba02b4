package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleConfig holds a user's recurring send configuration.
// At most one row per user (unique index on user_id).
type ScheduleConfig struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	IsActive          bool       `gorm:"default:false"`
	SendDays          WeekdaySet `gorm:"type:jsonb;default:'[]'"`
	SendTime          string     `gorm:"type:varchar(8);not null"` // HH:MM local time
	Timezone          string     `gorm:"not null;default:'UTC'"`   // IANA zone name
	DefaultTemplateID *uuid.UUID `gorm:"type:uuid"`

	gorm.Model
}

func (s *ScheduleConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Custom set-of-weekday-names type stored as JSONB
type WeekdaySet []string

func (w WeekdaySet) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WeekdaySet) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &w)
}

func (w WeekdaySet) Contains(day string) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}
