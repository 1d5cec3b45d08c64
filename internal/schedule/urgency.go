package schedule

import "github.com/crewdeck/backend/internal/domain"

// DefaultDueSoonDays is the shipped look-ahead window separating on_track
// from due_soon: a deadline today or within the next seven days is due soon.
// Overridable via the DUE_SOON_DAYS configuration value.
const DefaultDueSoonDays = 7

// ClassifyUrgency buckets a deadline into an urgency level relative to today.
//
// Both arguments are calendar dates, so the result can only change at a local
// midnight, never mid-day. Callers derive today in the vessel's local time
// zone (see domain.DateOf).
//
//	nil deadline                     → none
//	deadline before today            → overdue
//	deadline within windowDays       → due_soon (today itself counts)
//	otherwise                        → on_track
func ClassifyUrgency(deadline *domain.Date, today domain.Date, windowDays int) domain.Urgency {
	if deadline == nil {
		return domain.UrgencyNone
	}
	if deadline.Before(today) {
		return domain.UrgencyOverdue
	}
	if today.DaysUntil(*deadline) <= windowDays {
		return domain.UrgencyDueSoon
	}
	return domain.UrgencyOnTrack
}
