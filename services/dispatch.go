package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"outreachpro-backend/cache"
	"outreachpro-backend/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultMessageBody is used when a schedule has no default template or
// its template cannot be loaded.
const DefaultMessageBody = "Hello {name}! This is your scheduled message."

const defaultMaxParallel = 4

type DispatchError struct {
	ScheduleID uuid.UUID  `json:"scheduleId"`
	ContactID  *uuid.UUID `json:"contactId,omitempty"`
	Reason     string     `json:"reason"`
}

type DispatchSummary struct {
	Processed int             `json:"processed"` // schedules evaluated
	Logged    int             `json:"logged"`    // message log rows written
	Skipped   int             `json:"skipped"`   // slots already claimed by a prior run
	Errors    []DispatchError `json:"errors,omitempty"`
}

// DispatchService runs one scheduled-dispatch pass over all active
// schedules. Schedules are independent: each only reads its own user's
// contacts and template and appends its own log rows, so they are
// processed in parallel under a concurrency limit. Failures are
// isolated per schedule and per contact; only a failure to load the
// schedule set aborts the run.
type DispatchService struct {
	store       Store
	guard       cache.SlotGuard // optional, nil disables the claim step
	maxParallel int
}

func NewDispatchService(store Store, guard cache.SlotGuard) *DispatchService {
	return &DispatchService{
		store:       store,
		guard:       guard,
		maxParallel: defaultMaxParallel,
	}
}

func (s *DispatchService) RunOnce(ctx context.Context, now time.Time) (DispatchSummary, error) {
	schedules, err := s.store.ListActiveSchedules(ctx)
	if err != nil {
		return DispatchSummary{}, fmt.Errorf("loading schedules: %w", err)
	}

	summary := DispatchSummary{Processed: len(schedules)}
	if len(schedules) == 0 {
		return summary, nil
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.maxParallel)

	for _, schedule := range schedules {
		schedule := schedule
		g.Go(func() error {
			logged, skipped, errs := s.processSchedule(ctx, schedule, now)

			mu.Lock()
			summary.Logged += logged
			summary.Skipped += skipped
			summary.Errors = append(summary.Errors, errs...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return summary, nil
}

func (s *DispatchService) processSchedule(ctx context.Context, schedule models.ScheduleConfig, now time.Time) (logged, skipped int, errs []DispatchError) {
	eval, err := EvaluateDue(schedule, now)
	if err != nil {
		return 0, 0, []DispatchError{{ScheduleID: schedule.ID, Reason: err.Error()}}
	}
	if !eval.Due {
		return 0, 0, nil
	}

	contacts, err := s.store.ListActiveContacts(ctx, schedule.UserID)
	if err != nil {
		return 0, 0, []DispatchError{{ScheduleID: schedule.ID, Reason: err.Error()}}
	}
	if len(contacts) == 0 {
		log.Printf("Schedule %s: no active contacts, nothing to send", schedule.ID)
		return 0, 0, nil
	}

	body, templateID := s.resolveBody(ctx, schedule)

	// scheduled slot the log rows belong to, HH:MM
	slot := schedule.SendTime
	if len(slot) > 5 {
		slot = slot[:5]
	}

	for _, contact := range contacts {
		message := RenderTemplate(body, contact.Name)
		link := BuildWhatsAppLink(contact.Phone, message)
		key := fmt.Sprintf("%s:%s:%s:%s", schedule.UserID, contact.ID, eval.LocalDate, slot)

		claimedByGuard := false
		if s.guard != nil {
			claimed, err := s.guard.ClaimSlot(ctx, key)
			if err != nil {
				// guard trouble must not block dispatch; the unique
				// index on dedupe_key still prevents double logging
				log.Printf("Slot guard error for %s: %v", key, err)
			} else if !claimed {
				skipped++
				continue
			} else {
				claimedByGuard = true
			}
		}

		entry := &models.MessageLog{
			UserID:         schedule.UserID,
			ContactID:      contact.ID,
			TemplateID:     templateID,
			MessageContent: message,
			Status:         models.LogPending,
			DedupeKey:      &key,
		}

		if err := s.store.InsertMessageLog(ctx, entry); err != nil {
			if errors.Is(err, ErrDuplicateSlot) {
				skipped++
				continue
			}
			// no row was written, so give the slot back; best effort
			if claimedByGuard {
				if rerr := s.guard.ReleaseSlot(ctx, key); rerr != nil {
					log.Printf("Slot guard release error for %s: %v", key, rerr)
				}
			}
			contactID := contact.ID
			errs = append(errs, DispatchError{
				ScheduleID: schedule.ID,
				ContactID:  &contactID,
				Reason:     err.Error(),
			})
			continue
		}

		logged++
		log.Printf("Created message log for %s: %s", contact.Name, link)
	}

	return logged, skipped, errs
}

// resolveBody picks the schedule's default template if one is set and
// loadable, otherwise the built-in fallback. A template load failure
// degrades to the fallback rather than aborting the schedule; the log
// rows then carry a nil template reference.
func (s *DispatchService) resolveBody(ctx context.Context, schedule models.ScheduleConfig) (string, *uuid.UUID) {
	if schedule.DefaultTemplateID == nil {
		return DefaultMessageBody, nil
	}

	template, err := s.store.GetTemplate(ctx, *schedule.DefaultTemplateID, schedule.UserID)
	if err != nil {
		log.Printf("Schedule %s: falling back to default body, template %s unavailable: %v",
			schedule.ID, *schedule.DefaultTemplateID, err)
		return DefaultMessageBody, nil
	}

	return template.Content, schedule.DefaultTemplateID
}
