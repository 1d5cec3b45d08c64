package schedule

import (
	"strconv"

	"github.com/crewdeck/backend/internal/domain"
)

// EffectiveTripTypeColor resolves the display color for a trip type under the
// given preference snapshot.
//
// An explicit override wins, including the no-color sentinel, which renders
// as the neutral calendar tone. A key absent from the overrides falls through
// to the system default. "Configured to no color" and "never configured" are
// distinct inputs and must stay distinct here.
func EffectiveTripTypeColor(t domain.TripType, prefs domain.ColorPreferences) domain.Color {
	if c, ok := prefs.TripTypeColors[t]; ok {
		return renderColor(c)
	}
	return domain.DefaultTripTypeColors[t]
}

// EffectiveDepartmentColor resolves the display color for a department under
// the given preference snapshot, with the same override/sentinel/default
// semantics as EffectiveTripTypeColor.
func EffectiveDepartmentColor(d domain.Department, prefs domain.ColorPreferences) domain.Color {
	if c, ok := prefs.DepartmentColors[d]; ok {
		return renderColor(c)
	}
	return domain.DefaultDepartmentColors[d]
}

// renderColor maps the stored sentinel to its neutral rendering and passes
// every real color through unchanged.
func renderColor(c domain.Color) domain.Color {
	if c == domain.ColorNone {
		return domain.ColorNeutral
	}
	return c
}

// TextColorFor picks a readable text color for the given background: white on
// dark backgrounds, near-black on light ones. Colors that fail to parse as
// "#RRGGBB" get the dark text, matching the neutral background's treatment.
func TextColorFor(background domain.Color) domain.Color {
	const (
		light = domain.Color("#ffffff")
		dark  = domain.Color("#1a202c")
	)

	s := string(background)
	if len(s) != 7 || s[0] != '#' {
		return dark
	}
	r, err1 := strconv.ParseInt(s[1:3], 16, 0)
	g, err2 := strconv.ParseInt(s[3:5], 16, 0)
	b, err3 := strconv.ParseInt(s[5:7], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return dark
	}

	// Perceived luminance, ITU-R BT.601 weighting.
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance < 140 {
		return light
	}
	return dark
}
