package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LogPending = "pending"
	LogSent    = "sent"
	LogFailed  = "failed"
)

// MessageLog is the append-only audit trail. Rows are never updated or
// deleted. The scheduled path writes 'pending' rows with a DedupeKey of
// the form user:contact:local_date:HH:MM so overlapping or retried runs
// cannot double-log the same slot; the on-demand path writes 'sent' rows
// with no dedupe key.
type MessageLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	ContactID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	TemplateID *uuid.UUID `gorm:"type:uuid"` // nil for custom/fallback messages

	MessageContent string  `gorm:"type:text"`
	Status         string  `gorm:"type:varchar(20)"` // pending, sent, failed
	DedupeKey      *string `gorm:"uniqueIndex"`
	SentAt         *time.Time

	gorm.Model
}

func (m *MessageLog) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
