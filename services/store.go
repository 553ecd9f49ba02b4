package services

import (
	"context"
	"errors"
	"fmt"

	"outreachpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence surface the dispatch and send paths consume.
// The CRUD controllers own the rest of the schema; the core only reads
// contacts, templates and schedules and appends message logs.
type Store interface {
	ListActiveSchedules(ctx context.Context) ([]models.ScheduleConfig, error)
	ListActiveContacts(ctx context.Context, userID uuid.UUID) ([]models.Contact, error)
	GetContact(ctx context.Context, contactID, userID uuid.UUID) (*models.Contact, error)
	GetTemplate(ctx context.Context, templateID, userID uuid.UUID) (*models.MessageTemplate, error)
	InsertMessageLog(ctx context.Context, entry *models.MessageLog) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListActiveSchedules(ctx context.Context) ([]models.ScheduleConfig, error) {
	var schedules []models.ScheduleConfig
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("listing active schedules: %w", err)
	}
	return schedules, nil
}

func (s *GormStore) ListActiveContacts(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.ContactActive).
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("listing contacts for user %s: %w", userID, err)
	}
	return contacts, nil
}

func (s *GormStore) GetContact(ctx context.Context, contactID, userID uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, userID).
		First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading contact %s: %w", contactID, err)
	}
	return &contact, nil
}

func (s *GormStore) GetTemplate(ctx context.Context, templateID, userID uuid.UUID) (*models.MessageTemplate, error) {
	var template models.MessageTemplate
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", templateID, userID).
		First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", templateID, err)
	}
	return &template, nil
}

func (s *GormStore) InsertMessageLog(ctx context.Context, entry *models.MessageLog) error {
	err := s.db.WithContext(ctx).Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlot
	}
	if err != nil {
		return fmt.Errorf("inserting message log: %w", err)
	}
	return nil
}
