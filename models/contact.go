package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactActive   = "active"
	ContactInactive = "inactive"
)

type Contact struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_phone,priority:1"`

	Name   string `gorm:"not null"`
	Phone  string `gorm:"not null;uniqueIndex:idx_user_phone,priority:2"`
	Status string `gorm:"type:varchar(20);default:'active'"` // active, inactive

	gorm.Model
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
