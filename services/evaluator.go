package services

import (
	"fmt"
	"time"

	"outreachpro-backend/models"
)

// DueEvaluation reports whether a schedule should fire at a given
// instant, along with the instant's reading in the schedule's timezone.
type DueEvaluation struct {
	Due       bool
	LocalDay  string // full weekday name, e.g. "Monday"
	LocalDate string // YYYY-MM-DD
	LocalTime string // HH:MM, truncated to the minute
}

// EvaluateDue is a pure function of (schedule, now). A schedule is due
// iff it is active, the local weekday is one of its send days and the
// local clock reading matches send_time on the exact minute. There is
// no window and no catch-up; the trigger is expected to fire at least
// once per minute.
func EvaluateDue(schedule models.ScheduleConfig, now time.Time) (DueEvaluation, error) {
	loc, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		return DueEvaluation{}, &ConfigError{
			ScheduleID: schedule.ID,
			Reason:     fmt.Sprintf("unknown timezone %q", schedule.Timezone),
		}
	}

	local := now.In(loc)
	eval := DueEvaluation{
		LocalDay:  local.Weekday().String(),
		LocalDate: local.Format("2006-01-02"),
		LocalTime: local.Format("15:04"),
	}

	if !schedule.IsActive {
		return eval, nil
	}
	if !schedule.SendDays.Contains(eval.LocalDay) {
		return eval, nil
	}

	// seconds in a stored HH:MM:SS are ignored
	sendTime := schedule.SendTime
	if len(sendTime) > 5 {
		sendTime = sendTime[:5]
	}

	eval.Due = eval.LocalTime == sendTime
	return eval, nil
}
