package domain

import (
	"time"

	"github.com/google/uuid"
)

// WatchTimetable is a published, single-date watch schedule partitioning a
// period into ordered crew assignment slots.
//
// A timetable is published as one atomic unit of metadata plus slots, and an
// update replaces both wholesale — there is no partial patch and no retained
// prior version. Nothing requires timetables to be unique per date; a vessel
// may publish several for the same day.
type WatchTimetable struct {
	ID            uuid.UUID
	VesselID      uuid.UUID
	WatchTitle    string
	ForDate       Date
	StartTime     string // "HH:MM", informational — not used in arithmetic
	StartLocation string
	Destination   string
	Notes         string
	Slots         []TimetableSlot // ordered; position is preserved by the store
	CreatedBy     string
	CreatedAt     time.Time
}

// TimetableSlot is one crew member's assignment window within a timetable.
// Start and end times are display strings supplied by the planner; the
// duration is computed at composition time and stored as-is.
type TimetableSlot struct {
	CrewID        uuid.UUID
	CrewName      string
	CrewPosition  string // optional role label, e.g. "Chief Officer"
	StartTimeStr  string
	EndTimeStr    string
	DurationHours float64
}
