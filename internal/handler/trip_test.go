package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/handler"
)

// tripFixture returns a fully-populated domain.Trip.
func tripFixture(vesselID uuid.UUID) domain.Trip {
	start, _ := domain.NewDate(2026, 7, 4)
	end, _ := domain.NewDate(2026, 7, 12)
	return domain.Trip{
		ID:        uuid.New(),
		VesselID:  vesselID,
		Type:      domain.TripGuest,
		Title:     "Med charter, leg one",
		StartDate: start,
		EndDate:   end,
		Notes:     "owner party of 8",
		CreatedBy: "capt.r",
		CreatedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCreateTrip(t *testing.T) {
	vesselID := uuid.New()
	svc := &mockTripServicer{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			assert.Equal(t, vesselID, trip.VesselID)
			assert.Equal(t, "Med charter, leg one", trip.Title)
			created := tripFixture(vesselID)
			created.Title = trip.Title
			return created, nil
		},
	}

	payload := `{"type":"guest","title":"Med charter, leg one","start_date":"2026-07-04","end_date":"2026-07-12"}`
	req := httptest.NewRequest(http.MethodPost, "/vessels/"+vesselID.String()+"/trips", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.TripResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, vesselID.String(), resp.VesselID)
	assert.Equal(t, "guest", resp.Type)
	assert.Equal(t, "2026-07-04", resp.StartDate.Format("2006-01-02"))
}

func TestCreateTrip_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/vessels/"+uuid.NewString()+"/trips", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: &mockTripServicer{}}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeErrorBody(t, rec).Error.Code)
}

func TestCreateTrip_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: title is required", domain.ErrValidation)
		},
	}

	payload := `{"type":"guest","title":"","start_date":"2026-07-04","end_date":"2026-07-12"}`
	req := httptest.NewRequest(http.MethodPost, "/vessels/"+uuid.NewString()+"/trips", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, "title is required", body.Error.Message)
}

func TestCreateTrip_BadVesselID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/vessels/not-a-uuid/trips", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: &mockTripServicer{}}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeErrorBody(t, rec).Error.Code)
}

func TestListTrips(t *testing.T) {
	vesselID := uuid.New()
	svc := &mockTripServicer{
		listByVessel: func(_ context.Context, id uuid.UUID) ([]domain.Trip, error) {
			return []domain.Trip{tripFixture(id), tripFixture(id)}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/vessels/"+vesselID.String()+"/trips", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []handler.TripResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 2)
}

func TestListTrips_Empty(t *testing.T) {
	svc := &mockTripServicer{
		listByVessel: func(_ context.Context, _ uuid.UUID) ([]domain.Trip, error) {
			return []domain.Trip{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/vessels/"+uuid.NewString()+"/trips", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// "data" must be [] in the JSON, never null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestGetTrip_NotFound(t *testing.T) {
	svc := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeErrorBody(t, rec).Error.Message)
}

func TestUpdateTrip(t *testing.T) {
	tripID := uuid.New()
	svc := &mockTripServicer{
		update: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			assert.Equal(t, tripID, trip.ID)
			require.NotNil(t, trip.Department)
			assert.Equal(t, domain.DeptEngineering, *trip.Department)
			updated := tripFixture(trip.VesselID)
			updated.ID = tripID
			updated.Type = trip.Type
			updated.Department = trip.Department
			return updated, nil
		},
	}

	payload := `{"type":"yard_period","title":"Shipyard period","start_date":"2026-11-01","end_date":"2026-12-15","department":"engineering"}`
	req := httptest.NewRequest(http.MethodPut, "/trips/"+tripID.String(), strings.NewReader(payload))
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.TripResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, tripID.String(), resp.ID)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "engineering", *resp.Department)
}

func TestDeleteTrip(t *testing.T) {
	tripID := uuid.New()
	svc := &mockTripServicer{
		delete: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, tripID, id)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+tripID.String(), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_ServiceFailure(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return errors.New("pool exhausted")
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "internal_error", body.Error.Code)
	// internals never leak to the client
	assert.Equal(t, "something went wrong", body.Error.Message)
}

func TestGetHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
