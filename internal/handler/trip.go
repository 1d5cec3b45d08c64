package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/crewdeck/backend/internal/domain"
)

// TripRequest is the JSON body for creating or replacing a trip.
// Dates are "2006-01-02" strings; openapi_types.Date enforces the format at
// decode time.
type TripRequest struct {
	Type       string             `json:"type"`
	Title      string             `json:"title"`
	StartDate  openapi_types.Date `json:"start_date"`
	EndDate    openapi_types.Date `json:"end_date"`
	Department *string            `json:"department,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	CreatedBy  *string            `json:"created_by,omitempty"`
}

// TripResponse is the JSON shape of a trip in every response.
type TripResponse struct {
	ID         string             `json:"id"`
	VesselID   string             `json:"vessel_id"`
	Type       string             `json:"type"`
	Title      string             `json:"title"`
	StartDate  openapi_types.Date `json:"start_date"`
	EndDate    openapi_types.Date `json:"end_date"`
	Department *string            `json:"department,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	CreatedBy  *string            `json:"created_by,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// CreateTrip handles POST /vessels/{vesselID}/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	trip, err := decodeTrip(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	trip.VesselID = vesselID

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		serveError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /vessels/{vesselID}/trips.
// Trips come back ordered by start date ascending, the calendar's input order.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	trips, err := s.trips.ListByVessel(r.Context(), vesselID)
	if err != nil {
		serveError(w, r, err, "vessel not found")
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID", "trip not found")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		serveError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID} — a full replace, no partial patch.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID", "trip not found")
	if !ok {
		return
	}

	trip, err := decodeTrip(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		serveError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID", "trip not found")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		serveError(w, r, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// decodeTrip reads and converts a TripRequest body into a domain.Trip.
// Returns an error for a missing or malformed body.
func decodeTrip(r *http.Request) (domain.Trip, error) {
	var body TripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Trip{}, errors.New("request body is required and must be valid JSON")
	}

	t := domain.Trip{
		Type:      domain.TripType(body.Type),
		Title:     body.Title,
		StartDate: domain.DateOf(body.StartDate.Time),
		EndDate:   domain.DateOf(body.EndDate.Time),
	}
	if body.Department != nil {
		d := domain.Department(*body.Department)
		t.Department = &d
	}
	if body.Notes != nil {
		t.Notes = *body.Notes
	}
	if body.CreatedBy != nil {
		t.CreatedBy = *body.CreatedBy
	}
	return t, nil
}

// tripToResponse converts a domain.Trip into its JSON response shape.
func tripToResponse(t domain.Trip) TripResponse {
	resp := TripResponse{
		ID:        t.ID.String(),
		VesselID:  t.VesselID.String(),
		Type:      string(t.Type),
		Title:     t.Title,
		StartDate: openapi_types.Date{Time: t.StartDate.Time()},
		EndDate:   openapi_types.Date{Time: t.EndDate.Time()},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Department != nil {
		d := string(*t.Department)
		resp.Department = &d
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	if t.CreatedBy != "" {
		resp.CreatedBy = &t.CreatedBy
	}
	return resp
}
