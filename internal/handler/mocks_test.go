package handler_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/handler"
	"github.com/crewdeck/backend/internal/report"
	"github.com/crewdeck/backend/internal/schedule"
	"github.com/crewdeck/backend/internal/service"
)

// ---- mock servicers --------------------------------------------------------

type mockTripServicer struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listByVessel func(ctx context.Context, vesselID uuid.UUID) ([]domain.Trip, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Trip, error) {
	return m.listByVessel(ctx, vesselID)
}
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockTimetableServicer struct {
	publish      func(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error)
	listByVessel func(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error)
	update       func(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTimetableServicer) Publish(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	return m.publish(ctx, tt)
}
func (m *mockTimetableServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error) {
	return m.getByID(ctx, id)
}
func (m *mockTimetableServicer) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error) {
	return m.listByVessel(ctx, vesselID)
}
func (m *mockTimetableServicer) Update(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	return m.update(ctx, tt)
}
func (m *mockTimetableServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TimetableServicer = (*mockTimetableServicer)(nil)

type mockColorPrefServicer struct {
	getByVessel        func(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error)
	setTripTypeColor   func(ctx context.Context, vesselID uuid.UUID, t domain.TripType, color domain.Color) error
	setDepartmentColor func(ctx context.Context, vesselID uuid.UUID, d domain.Department, color domain.Color) error
	unset              func(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error
}

func (m *mockColorPrefServicer) GetByVessel(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error) {
	return m.getByVessel(ctx, vesselID)
}
func (m *mockColorPrefServicer) SetTripTypeColor(ctx context.Context, vesselID uuid.UUID, t domain.TripType, color domain.Color) error {
	return m.setTripTypeColor(ctx, vesselID, t, color)
}
func (m *mockColorPrefServicer) SetDepartmentColor(ctx context.Context, vesselID uuid.UUID, d domain.Department, color domain.Color) error {
	return m.setDepartmentColor(ctx, vesselID, d, color)
}
func (m *mockColorPrefServicer) Unset(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error {
	return m.unset(ctx, vesselID, dim, key)
}

var _ handler.ColorPrefServicer = (*mockColorPrefServicer)(nil)

type mockScheduleServicer struct {
	overlay          func(ctx context.Context, vesselID uuid.UUID, mode schedule.ColorMode, visible map[domain.TripType]bool) (map[domain.Date]domain.DayMarking, error)
	tasksWithUrgency func(ctx context.Context, vesselID uuid.UUID) ([]service.TaskWithUrgency, error)
}

func (m *mockScheduleServicer) Overlay(ctx context.Context, vesselID uuid.UUID, mode schedule.ColorMode, visible map[domain.TripType]bool) (map[domain.Date]domain.DayMarking, error) {
	return m.overlay(ctx, vesselID, mode, visible)
}
func (m *mockScheduleServicer) TasksWithUrgency(ctx context.Context, vesselID uuid.UUID) ([]service.TaskWithUrgency, error) {
	return m.tasksWithUrgency(ctx, vesselID)
}

var _ handler.ScheduleServicer = (*mockScheduleServicer)(nil)

type mockReportServicer struct {
	watchBill func(ctx context.Context, timetableID uuid.UUID) ([]report.Page, error)
}

func (m *mockReportServicer) WatchBill(ctx context.Context, timetableID uuid.UUID) ([]report.Page, error) {
	return m.watchBill(ctx, timetableID)
}

var _ handler.ReportServicer = (*mockReportServicer)(nil)

type mockTaskServicer struct {
	create  func(ctx context.Context, task domain.Task) (domain.Task, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Task, error)
	update  func(ctx context.Context, task domain.Task) (domain.Task, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTaskServicer) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	return m.create(ctx, task)
}
func (m *mockTaskServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	return m.getByID(ctx, id)
}
func (m *mockTaskServicer) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	return m.update(ctx, task)
}
func (m *mockTaskServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TaskServicer = (*mockTaskServicer)(nil)

// ---- wiring helpers --------------------------------------------------------

// deps bundles the per-test mock set; zero fields are fine for routes the
// test never exercises.
type deps struct {
	trips      handler.TripServicer
	timetables handler.TimetableServicer
	colors     handler.ColorPrefServicer
	schedules  handler.ScheduleServicer
	reports    handler.ReportServicer
	tasks      handler.TaskServicer
}

// newHTTPHandler wires a Server from the given mocks and returns its router.
func newHTTPHandler(d deps) http.Handler {
	srv := handler.NewServer(d.trips, d.timetables, d.colors, d.schedules, d.reports, d.tasks)
	return srv.Routes()
}
