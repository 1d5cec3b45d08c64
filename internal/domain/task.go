package domain

import (
	"time"

	"github.com/google/uuid"
)

// Urgency is the derived status of a deadline relative to the current local
// calendar date.
type Urgency string

const (
	UrgencyNone    Urgency = "none"     // no deadline set
	UrgencyOnTrack Urgency = "on_track" // deadline beyond the look-ahead window
	UrgencyDueSoon Urgency = "due_soon" // deadline today or within the window
	UrgencyOverdue Urgency = "overdue"  // deadline strictly before today
)

// Task is a deadline-bearing maintenance or operations job.
// Deadline is nil when the task has no due date; only the deadline feeds the
// urgency classifier.
type Task struct {
	ID        uuid.UUID
	VesselID  uuid.UUID
	Title     string
	Notes     string
	Done      bool
	Deadline  *Date
	CreatedAt time.Time
	UpdatedAt time.Time
}
