package services

import (
	"context"
	"sync"

	"outreachpro-backend/models"

	"github.com/google/uuid"
)

// fakeStore is an in-memory Store used by dispatch and sender tests.
type fakeStore struct {
	schedules    []models.ScheduleConfig
	schedulesErr error

	contacts    map[uuid.UUID][]models.Contact // keyed by user ID, active only
	contactsErr error

	templates map[uuid.UUID]models.MessageTemplate // keyed by template ID

	insertErr func(entry *models.MessageLog) error

	mu       sync.Mutex
	inserted []models.MessageLog
}

var _ Store = (*fakeStore)(nil)

func (f *fakeStore) ListActiveSchedules(ctx context.Context) ([]models.ScheduleConfig, error) {
	if f.schedulesErr != nil {
		return nil, f.schedulesErr
	}
	return f.schedules, nil
}

func (f *fakeStore) ListActiveContacts(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	if f.contactsErr != nil {
		return nil, f.contactsErr
	}
	return f.contacts[userID], nil
}

func (f *fakeStore) GetContact(ctx context.Context, contactID, userID uuid.UUID) (*models.Contact, error) {
	for _, contact := range f.contacts[userID] {
		if contact.ID == contactID {
			c := contact
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) GetTemplate(ctx context.Context, templateID, userID uuid.UUID) (*models.MessageTemplate, error) {
	template, ok := f.templates[templateID]
	if !ok || template.UserID != userID {
		return nil, ErrNotFound
	}
	return &template, nil
}

func (f *fakeStore) InsertMessageLog(ctx context.Context, entry *models.MessageLog) error {
	if f.insertErr != nil {
		if err := f.insertErr(entry); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// mimic the unique index on dedupe_key
	if entry.DedupeKey != nil {
		for _, existing := range f.inserted {
			if existing.DedupeKey != nil && *existing.DedupeKey == *entry.DedupeKey {
				return ErrDuplicateSlot
			}
		}
	}

	f.inserted = append(f.inserted, *entry)
	return nil
}

func (f *fakeStore) insertedLogs() []models.MessageLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.MessageLog, len(f.inserted))
	copy(out, f.inserted)
	return out
}
