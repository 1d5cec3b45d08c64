package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/report"
)

// TimetableRequest is the JSON body for publishing or replacing a timetable.
// The slot list is always the complete list: an update with three slots ends
// with exactly three slots, whatever was there before.
type TimetableRequest struct {
	WatchTitle    string             `json:"watch_title"`
	ForDate       openapi_types.Date `json:"for_date"`
	StartTime     string             `json:"start_time,omitempty"`
	StartLocation string             `json:"start_location,omitempty"`
	Destination   string             `json:"destination,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedBy     string             `json:"created_by,omitempty"`
	Slots         []SlotPayload      `json:"slots"`
}

// SlotPayload is one crew assignment slot on the wire.
type SlotPayload struct {
	CrewID        uuid.UUID `json:"crew_id"`
	CrewName      string    `json:"crew_name"`
	CrewPosition  string    `json:"crew_position,omitempty"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
}

// TimetableResponse is the JSON shape of a timetable in every response.
type TimetableResponse struct {
	ID            string             `json:"id"`
	VesselID      string             `json:"vessel_id"`
	WatchTitle    string             `json:"watch_title"`
	ForDate       openapi_types.Date `json:"for_date"`
	StartTime     string             `json:"start_time,omitempty"`
	StartLocation string             `json:"start_location,omitempty"`
	Destination   string             `json:"destination,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedBy     string             `json:"created_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Slots         []SlotPayload      `json:"slots"`
}

// PublishTimetable handles POST /vessels/{vesselID}/timetables.
func (s *Server) PublishTimetable(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	tt, err := decodeTimetable(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	tt.VesselID = vesselID

	created, err := s.timetables.Publish(r.Context(), tt)
	if err != nil {
		serveError(w, r, err, "timetable not found")
		return
	}

	writeJSON(w, http.StatusCreated, timetableToResponse(created))
}

// ListTimetables handles GET /vessels/{vesselID}/timetables.
// Timetables come back most recent date first.
func (s *Server) ListTimetables(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	timetables, err := s.timetables.ListByVessel(r.Context(), vesselID)
	if err != nil {
		serveError(w, r, err, "vessel not found")
		return
	}

	data := make([]TimetableResponse, len(timetables))
	for i, tt := range timetables {
		data[i] = timetableToResponse(tt)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// GetTimetable handles GET /timetables/{timetableID}.
func (s *Server) GetTimetable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "timetableID", "timetable not found")
	if !ok {
		return
	}

	tt, err := s.timetables.GetByID(r.Context(), id)
	if err != nil {
		serveError(w, r, err, "timetable not found")
		return
	}

	writeJSON(w, http.StatusOK, timetableToResponse(tt))
}

// UpdateTimetable handles PUT /timetables/{timetableID}.
// Full replace of metadata and the entire slot list — last write wins.
func (s *Server) UpdateTimetable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "timetableID", "timetable not found")
	if !ok {
		return
	}

	tt, err := decodeTimetable(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	tt.ID = id

	updated, err := s.timetables.Update(r.Context(), tt)
	if err != nil {
		serveError(w, r, err, "timetable not found")
		return
	}

	writeJSON(w, http.StatusOK, timetableToResponse(updated))
}

// DeleteTimetable handles DELETE /timetables/{timetableID}. Hard delete.
func (s *Server) DeleteTimetable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "timetableID", "timetable not found")
	if !ok {
		return
	}

	if err := s.timetables.Delete(r.Context(), id); err != nil {
		serveError(w, r, err, "timetable not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReportPageResponse is one printable page of a watch bill.
type ReportPageResponse struct {
	Header ReportHeaderResponse `json:"header"`
	Rows   []SlotPayload        `json:"rows"`
	Footer string               `json:"footer,omitempty"`
}

// ReportHeaderResponse is the header metadata repeated on every page.
type ReportHeaderResponse struct {
	WatchTitle    string             `json:"watch_title"`
	ForDate       openapi_types.Date `json:"for_date"`
	StartTime     string             `json:"start_time,omitempty"`
	StartLocation string             `json:"start_location,omitempty"`
	Destination   string             `json:"destination,omitempty"`
}

// GetWatchBill handles GET /timetables/{timetableID}/report.
// Returns the fully-chunked page sequence for an external document renderer.
func (s *Server) GetWatchBill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "timetableID", "timetable not found")
	if !ok {
		return
	}

	pages, err := s.reports.WatchBill(r.Context(), id)
	if err != nil {
		serveError(w, r, err, "timetable not found")
		return
	}

	data := make([]ReportPageResponse, len(pages))
	for i, p := range pages {
		data[i] = pageToResponse(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": data})
}

// --- mapping helpers --------------------------------------------------------

// decodeTimetable reads and converts a TimetableRequest body.
func decodeTimetable(r *http.Request) (domain.WatchTimetable, error) {
	var body TimetableRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.WatchTimetable{}, errors.New("request body is required and must be valid JSON")
	}

	tt := domain.WatchTimetable{
		WatchTitle:    body.WatchTitle,
		ForDate:       domain.DateOf(body.ForDate.Time),
		StartTime:     body.StartTime,
		StartLocation: body.StartLocation,
		Destination:   body.Destination,
		Notes:         body.Notes,
		CreatedBy:     body.CreatedBy,
		Slots:         make([]domain.TimetableSlot, len(body.Slots)),
	}
	for i, sl := range body.Slots {
		tt.Slots[i] = domain.TimetableSlot{
			CrewID:        sl.CrewID,
			CrewName:      sl.CrewName,
			CrewPosition:  sl.CrewPosition,
			StartTimeStr:  sl.StartTime,
			EndTimeStr:    sl.EndTime,
			DurationHours: sl.DurationHours,
		}
	}
	return tt, nil
}

// timetableToResponse converts a domain.WatchTimetable into its JSON shape.
func timetableToResponse(tt domain.WatchTimetable) TimetableResponse {
	return TimetableResponse{
		ID:            tt.ID.String(),
		VesselID:      tt.VesselID.String(),
		WatchTitle:    tt.WatchTitle,
		ForDate:       openapi_types.Date{Time: tt.ForDate.Time()},
		StartTime:     tt.StartTime,
		StartLocation: tt.StartLocation,
		Destination:   tt.Destination,
		Notes:         tt.Notes,
		CreatedBy:     tt.CreatedBy,
		CreatedAt:     tt.CreatedAt,
		Slots:         slotsToPayload(tt.Slots),
	}
}

// slotsToPayload converts domain slots to their wire shape, always non-nil so
// the JSON renders as [] rather than null.
func slotsToPayload(slots []domain.TimetableSlot) []SlotPayload {
	out := make([]SlotPayload, len(slots))
	for i, sl := range slots {
		out[i] = SlotPayload{
			CrewID:        sl.CrewID,
			CrewName:      sl.CrewName,
			CrewPosition:  sl.CrewPosition,
			StartTime:     sl.StartTimeStr,
			EndTime:       sl.EndTimeStr,
			DurationHours: sl.DurationHours,
		}
	}
	return out
}

// pageToResponse converts a report.Page into its JSON shape.
func pageToResponse(p report.Page) ReportPageResponse {
	return ReportPageResponse{
		Header: ReportHeaderResponse{
			WatchTitle:    p.Header.WatchTitle,
			ForDate:       openapi_types.Date{Time: p.Header.ForDate.Time()},
			StartTime:     p.Header.StartTime,
			StartLocation: p.Header.StartLocation,
			Destination:   p.Header.Destination,
		},
		Rows:   slotsToPayload(p.Rows),
		Footer: p.Footer,
	}
}
