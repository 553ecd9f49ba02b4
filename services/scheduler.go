package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartDispatchScheduler triggers a dispatch run on the given cron
// spec. Due-matching is exact-minute, so the spec should fire every
// minute ("* * * * *"); a minute with no trigger is silently skipped.
func StartDispatchScheduler(svc *DispatchService, spec string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
		defer cancel()

		summary, err := svc.RunOnce(ctx, time.Now())
		if err != nil {
			log.Printf("Dispatch run failed: %v", err)
			return
		}

		log.Printf("Dispatch run complete: processed=%d logged=%d skipped=%d errors=%d",
			summary.Processed, summary.Logged, summary.Skipped, len(summary.Errors))
		for _, e := range summary.Errors {
			log.Printf("Dispatch error: schedule=%s contact=%v reason=%s",
				e.ScheduleID, e.ContactID, e.Reason)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Println("Dispatch scheduler started")
	return c, nil
}
