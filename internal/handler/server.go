// Package handler implements the HTTP handlers for the Crewdeck API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, timetable.go, calendar.go, task.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/report"
	"github.com/crewdeck/backend/internal/schedule"
	"github.com/crewdeck/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TimetableServicer defines the watch-timetable lifecycle operations the
// timetable handlers depend on.
type TimetableServicer interface {
	Publish(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error)
	ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error)
	Update(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ColorPrefServicer defines the color-preference operations the handlers
// depend on. Writes are single-key upserts or unsets, never batches.
type ColorPrefServicer interface {
	GetByVessel(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error)
	SetTripTypeColor(ctx context.Context, vesselID uuid.UUID, t domain.TripType, color domain.Color) error
	SetDepartmentColor(ctx context.Context, vesselID uuid.UUID, d domain.Department, color domain.Color) error
	Unset(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error
}

// ScheduleServicer defines the derived-view operations: calendar overlay
// resolution and urgency-annotated task listing.
type ScheduleServicer interface {
	Overlay(ctx context.Context, vesselID uuid.UUID, mode schedule.ColorMode, visible map[domain.TripType]bool) (map[domain.Date]domain.DayMarking, error)
	TasksWithUrgency(ctx context.Context, vesselID uuid.UUID) ([]service.TaskWithUrgency, error)
}

// ReportServicer defines the watch-bill pagination boundary.
type ReportServicer interface {
	WatchBill(ctx context.Context, timetableID uuid.UUID) ([]report.Page, error)
}

// TaskServicer defines the task CRUD operations the task handlers depend on.
type TaskServicer interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds every handler dependency. Wire it in main.go and mount Routes.
type Server struct {
	trips      TripServicer
	timetables TimetableServicer
	colors     ColorPrefServicer
	schedules  ScheduleServicer
	reports    ReportServicer
	tasks      TaskServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	timetables TimetableServicer,
	colors ColorPrefServicer,
	schedules ScheduleServicer,
	reports ReportServicer,
	tasks TaskServicer,
) *Server {
	return &Server{
		trips:      trips,
		timetables: timetables,
		colors:     colors,
		schedules:  schedules,
		reports:    reports,
		tasks:      tasks,
	}
}

// Routes mounts every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/vessels/{vesselID}", func(r chi.Router) {
		r.Get("/trips", s.ListTrips)
		r.Post("/trips", s.CreateTrip)
		r.Get("/calendar", s.GetCalendarOverlay)
		r.Get("/colors", s.GetColorPreferences)
		r.Put("/colors", s.PutColorPreference)
		r.Delete("/colors", s.DeleteColorPreference)
		r.Get("/timetables", s.ListTimetables)
		r.Post("/timetables", s.PublishTimetable)
		r.Get("/tasks", s.ListTasks)
		r.Post("/tasks", s.CreateTask)
	})

	r.Route("/trips/{tripID}", func(r chi.Router) {
		r.Get("/", s.GetTrip)
		r.Put("/", s.UpdateTrip)
		r.Delete("/", s.DeleteTrip)
	})

	r.Route("/timetables/{timetableID}", func(r chi.Router) {
		r.Get("/", s.GetTimetable)
		r.Put("/", s.UpdateTimetable)
		r.Delete("/", s.DeleteTimetable)
		r.Get("/report", s.GetWatchBill)
	})

	r.Route("/tasks/{taskID}", func(r chi.Router) {
		r.Get("/", s.GetTask)
		r.Put("/", s.UpdateTask)
		r.Delete("/", s.DeleteTask)
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
