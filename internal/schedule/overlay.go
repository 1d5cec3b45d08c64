// Package schedule contains the pure scheduling transforms: calendar overlay
// resolution, effective color lookup, and deadline urgency classification.
// Nothing in this package performs I/O; every function is deterministic over
// its inputs, so callers can run them against whatever snapshot of trips and
// preferences they most recently fetched.
package schedule

import (
	"sort"

	"github.com/crewdeck/backend/internal/domain"
)

// ColorMode selects how a trip's calendar color is computed.
type ColorMode string

const (
	// ModeTripType colors every day by the claiming trip's type.
	ModeTripType ColorMode = "type"
	// ModeDepartment colors yard-period days by their department, falling
	// back to the trip-type color for trips without a department.
	ModeDepartment ColorMode = "department"
)

// Valid reports whether m is a known color mode.
func (m ColorMode) Valid() bool {
	return m == ModeTripType || m == ModeDepartment
}

// ResolveOverlay turns a vessel's trips and color preferences into a per-day
// marking map. Days covered by no visible trip have no entry.
//
// Trips whose type is not in visible are dropped entirely: an invisible trip
// can neither claim a day nor block a later trip from claiming it.
//
// When trips overlap, each day belongs to exactly one trip, decided by an
// explicit tie-break: earliest start date first, creation time breaking exact
// start-date ties. The resolver sorts its own copy rather than trusting the
// caller's slice order, so the rule never depends on incidental iteration
// order. Within that order the first trip to reach a day claims it and later
// trips leave it untouched. IsRangeStart and IsRangeEnd are set relative to
// the claiming trip's own boundaries.
func ResolveOverlay(
	trips []domain.Trip,
	mode ColorMode,
	prefs domain.ColorPreferences,
	visible map[domain.TripType]bool,
) map[domain.Date]domain.DayMarking {
	ordered := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if visible[t.Type] {
			ordered = append(ordered, t)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].StartDate.Equal(ordered[j].StartDate) {
			return ordered[i].StartDate.Before(ordered[j].StartDate)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	markings := make(map[domain.Date]domain.DayMarking)
	for _, trip := range ordered {
		color := tripColor(trip, mode, prefs)
		text := TextColorFor(color)

		for day := trip.StartDate; !day.After(trip.EndDate); day = day.AddDays(1) {
			if _, claimed := markings[day]; claimed {
				continue // first-claimed-wins
			}
			markings[day] = domain.DayMarking{
				IsRangeStart: day.Equal(trip.StartDate),
				IsRangeEnd:   day.Equal(trip.EndDate),
				Color:        color,
				TextColor:    text,
			}
		}
	}
	return markings
}

// tripColor computes the rendering color for one trip under the given mode.
func tripColor(trip domain.Trip, mode ColorMode, prefs domain.ColorPreferences) domain.Color {
	if mode == ModeDepartment && trip.Department != nil {
		return EffectiveDepartmentColor(*trip.Department, prefs)
	}
	return EffectiveTripTypeColor(trip.Type, prefs)
}
