package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"outreachpro-backend/models"

	"github.com/google/uuid"
)

// MaxMessageLength caps rendered and custom message bodies.
const MaxMessageLength = 1000

type SendInput struct {
	ContactID     uuid.UUID
	TemplateID    *uuid.UUID
	CustomMessage string
}

// SenderService is the synchronous single-contact send path. Unlike the
// scheduled path it logs 'sent' with a timestamp: the caller is handed
// the wa.me link and is about to open it.
type SenderService struct {
	store Store
}

func NewSenderService(store Store) *SenderService {
	return &SenderService{store: store}
}

// SendNow resolves the message source (custom text wins over a template
// reference), renders it for the contact, and returns the wa.me link.
// All errors surface directly to the caller; nothing is logged on
// failure.
func (s *SenderService) SendNow(ctx context.Context, userID uuid.UUID, in SendInput, now time.Time) (string, error) {
	contact, err := s.store.GetContact(ctx, in.ContactID, userID)
	if err != nil {
		return "", err
	}

	var content string
	var templateID *uuid.UUID

	switch {
	case in.CustomMessage != "":
		content = in.CustomMessage
	case in.TemplateID != nil:
		template, err := s.store.GetTemplate(ctx, *in.TemplateID, userID)
		if err != nil {
			return "", err
		}
		content = RenderTemplate(template.Content, contact.Name)
		templateID = in.TemplateID
	}

	if content == "" {
		return "", ErrInvalidInput
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return "", &ValidationError{
			Reason: fmt.Sprintf("message too long (max %d characters)", MaxMessageLength),
		}
	}

	link := BuildWhatsAppLink(contact.Phone, content)

	sentAt := now
	entry := &models.MessageLog{
		UserID:         userID,
		ContactID:      contact.ID,
		TemplateID:     templateID,
		MessageContent: content,
		Status:         models.LogSent,
		SentAt:         &sentAt,
	}
	if err := s.store.InsertMessageLog(ctx, entry); err != nil {
		return "", err
	}

	return link, nil
}
