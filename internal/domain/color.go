package domain

import "github.com/google/uuid"

// Color is a display color in "#RRGGBB" hex notation.
//
// The special value ColorNone is the explicit "no color" sentinel: the vessel
// has deliberately chosen to render this key without a distinguishing color.
// It is a stored value, distinct from the key being absent from a preference
// map, which means "never configured — fall back to the system default".
// These two states must never collapse into one.
type Color string

// ColorNone is the explicit no-color sentinel.
const ColorNone Color = "none"

// ColorNeutral is what the no-color sentinel renders as: the calendar's
// plain background tone.
const ColorNeutral Color = "#e2e8f0"

// Dimension names a color-preference axis.
type Dimension string

const (
	DimensionTripType   Dimension = "trip_type"
	DimensionDepartment Dimension = "department"
)

// Valid reports whether d is a known preference dimension.
func (d Dimension) Valid() bool {
	return d == DimensionTripType || d == DimensionDepartment
}

// DefaultTripTypeColors are the system fallback colors per trip type, used
// whenever a vessel has no explicit preference for that type.
var DefaultTripTypeColors = map[TripType]Color{
	TripGuest:      "#2f855a", // green
	TripBoss:       "#2b6cb0", // blue
	TripDelivery:   "#b7791f", // amber
	TripYardPeriod: "#9b2c2c", // red
}

// DefaultDepartmentColors are the system fallback colors per department.
var DefaultDepartmentColors = map[Department]Color{
	DeptBridge:      "#2c5282",
	DeptDeck:        "#276749",
	DeptEngineering: "#975a16",
	DeptInterior:    "#6b46c1",
	DeptGalley:      "#c05621",
}

// ColorPreferences is one vessel's color configuration snapshot.
//
// Map-key absence means "unset": the system default applies. A key mapped to
// ColorNone is the explicit sentinel and renders as ColorNeutral. The maps
// therefore carry three distinguishable states per key: unset, explicit
// color, and explicit no-color.
type ColorPreferences struct {
	VesselID         uuid.UUID
	TripTypeColors   map[TripType]Color
	DepartmentColors map[Department]Color
}

// NewColorPreferences returns an empty (all-defaults) preference snapshot
// for the given vessel with both maps allocated.
func NewColorPreferences(vesselID uuid.UUID) ColorPreferences {
	return ColorPreferences{
		VesselID:         vesselID,
		TripTypeColors:   make(map[TripType]Color),
		DepartmentColors: make(map[Department]Color),
	}
}

// DayMarking is one calendar day's resolved rendering.
// IsRangeStart and IsRangeEnd are relative to the trip that claimed the day,
// not to any other trip that happens to cover it.
type DayMarking struct {
	IsRangeStart bool
	IsRangeEnd   bool
	Color        Color
	TextColor    Color
}
