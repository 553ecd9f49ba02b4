package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound covers missing contacts, templates and schedules,
	// including rows that exist but belong to another user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means no message source resolved to non-empty text.
	ErrInvalidInput = errors.New("no message content provided")

	// ErrDuplicateSlot is returned by the store when a log row for the
	// same (user, contact, local date, slot) already exists.
	ErrDuplicateSlot = errors.New("message already logged for this slot")
)

// ValidationError rejects oversized or otherwise malformed message content.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConfigError marks a schedule whose stored configuration cannot be
// evaluated, e.g. an unknown timezone.
type ConfigError struct {
	ScheduleID uuid.UUID
	Reason     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("schedule %s: %s", e.ScheduleID, e.Reason)
}
