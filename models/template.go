package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageTemplate struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name     string `gorm:"not null"`
	Category string `gorm:"default:'General'"`
	Content  string `gorm:"type:text;not null"` // body text with {name} placeholders

	gorm.Model
}

func (t *MessageTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
