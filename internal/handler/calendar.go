package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/schedule"
)

// DayMarkingResponse is one resolved calendar day in the overlay response.
type DayMarkingResponse struct {
	IsRangeStart bool   `json:"is_range_start"`
	IsRangeEnd   bool   `json:"is_range_end"`
	Color        string `json:"color"`
	TextColor    string `json:"text_color"`
}

// GetCalendarOverlay handles GET /vessels/{vesselID}/calendar.
//
// Query parameters:
//
//	mode   "type" (default) or "department"
//	types  comma-separated trip types to show; absent means all
//
// The response maps "2006-01-02" date keys to markings; days no visible trip
// covers are simply absent.
func (s *Server) GetCalendarOverlay(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	mode := schedule.ModeTripType
	if m := r.URL.Query().Get("mode"); m != "" {
		mode = schedule.ColorMode(m)
		if !mode.Valid() {
			badRequest(w, "mode must be \"type\" or \"department\"")
			return
		}
	}

	visible, err := parseVisibleTypes(r.URL.Query().Get("types"))
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	markings, err := s.schedules.Overlay(r.Context(), vesselID, mode, visible)
	if err != nil {
		serveError(w, r, err, "vessel not found")
		return
	}

	data := make(map[string]DayMarkingResponse, len(markings))
	for day, m := range markings {
		data[day.String()] = DayMarkingResponse{
			IsRangeStart: m.IsRangeStart,
			IsRangeEnd:   m.IsRangeEnd,
			Color:        string(m.Color),
			TextColor:    string(m.TextColor),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": data})
}

// parseVisibleTypes turns a "guest,boss" query value into a visible-type set.
// An empty value yields nil, which the service treats as "all visible".
func parseVisibleTypes(raw string) (map[domain.TripType]bool, error) {
	if raw == "" {
		return nil, nil
	}
	visible := make(map[domain.TripType]bool)
	for _, part := range strings.Split(raw, ",") {
		t := domain.TripType(strings.TrimSpace(part))
		if !t.Valid() {
			return nil, &unknownTypeError{string(t)}
		}
		visible[t] = true
	}
	return visible, nil
}

type unknownTypeError struct{ value string }

func (e *unknownTypeError) Error() string { return "unknown trip type \"" + e.value + "\"" }

// ColorPreferenceRequest is the JSON body for a single-key preference upsert.
// Color is either "#RRGGBB" or the explicit sentinel "none"; there is no way
// to express "unset" here — that is what DELETE is for.
type ColorPreferenceRequest struct {
	Dimension string `json:"dimension"` // "trip_type" or "department"
	Key       string `json:"key"`
	Color     string `json:"color"`
}

// ColorPreferencesResponse is a vessel's stored preference entries plus the
// effective (default-merged, sentinel-rendered) colors the calendar will use.
type ColorPreferencesResponse struct {
	TripTypes   map[string]string `json:"trip_types"`   // stored entries only
	Departments map[string]string `json:"departments"`  // stored entries only, sentinel as "none"
	Effective   EffectiveColors   `json:"effective"`    // what actually renders
}

// EffectiveColors carries the fully-resolved color per key.
type EffectiveColors struct {
	TripTypes   map[string]string `json:"trip_types"`
	Departments map[string]string `json:"departments"`
}

// GetColorPreferences handles GET /vessels/{vesselID}/colors.
func (s *Server) GetColorPreferences(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	prefs, err := s.colors.GetByVessel(r.Context(), vesselID)
	if err != nil {
		serveError(w, r, err, "vessel not found")
		return
	}

	resp := ColorPreferencesResponse{
		TripTypes:   make(map[string]string, len(prefs.TripTypeColors)),
		Departments: make(map[string]string, len(prefs.DepartmentColors)),
		Effective: EffectiveColors{
			TripTypes:   make(map[string]string, len(domain.TripTypes)),
			Departments: make(map[string]string, len(domain.Departments)),
		},
	}
	for k, v := range prefs.TripTypeColors {
		resp.TripTypes[string(k)] = string(v)
	}
	for k, v := range prefs.DepartmentColors {
		resp.Departments[string(k)] = string(v)
	}
	for _, t := range domain.TripTypes {
		resp.Effective.TripTypes[string(t)] = string(schedule.EffectiveTripTypeColor(t, prefs))
	}
	for _, d := range domain.Departments {
		resp.Effective.Departments[string(d)] = string(schedule.EffectiveDepartmentColor(d, prefs))
	}

	writeJSON(w, http.StatusOK, resp)
}

// PutColorPreference handles PUT /vessels/{vesselID}/colors — one key per call.
func (s *Server) PutColorPreference(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	var body ColorPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "request body is required and must be valid JSON")
		return
	}

	var err error
	switch domain.Dimension(body.Dimension) {
	case domain.DimensionTripType:
		err = s.colors.SetTripTypeColor(r.Context(), vesselID, domain.TripType(body.Key), domain.Color(body.Color))
	case domain.DimensionDepartment:
		err = s.colors.SetDepartmentColor(r.Context(), vesselID, domain.Department(body.Key), domain.Color(body.Color))
	default:
		badRequest(w, "dimension must be \"trip_type\" or \"department\"")
		return
	}
	if err != nil {
		serveError(w, r, err, "vessel not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteColorPreference handles DELETE /vessels/{vesselID}/colors.
// Removes one configured key (query params dimension, key), returning it to
// the system default — distinct from setting the "none" sentinel via PUT.
func (s *Server) DeleteColorPreference(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	dim := domain.Dimension(r.URL.Query().Get("dimension"))
	key := r.URL.Query().Get("key")
	if key == "" {
		badRequest(w, "key query parameter is required")
		return
	}

	if err := s.colors.Unset(r.Context(), vesselID, dim, key); err != nil {
		serveError(w, r, err, "vessel not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
