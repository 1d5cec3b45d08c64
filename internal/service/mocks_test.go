package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listByVessel func(ctx context.Context, vesselID uuid.UUID) ([]domain.Trip, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Trip, error) {
	return m.listByVessel(ctx, vesselID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockColorPreferenceRepo struct {
	getByVessel func(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error)
	upsert      func(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string, color domain.Color) error
	unset       func(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error
}

func (m *mockColorPreferenceRepo) GetByVessel(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error) {
	return m.getByVessel(ctx, vesselID)
}
func (m *mockColorPreferenceRepo) Upsert(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string, color domain.Color) error {
	return m.upsert(ctx, vesselID, dim, key, color)
}
func (m *mockColorPreferenceRepo) Unset(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error {
	return m.unset(ctx, vesselID, dim, key)
}

var _ repo.ColorPreferenceRepo = (*mockColorPreferenceRepo)(nil)

type mockWatchTimetableRepo struct {
	publish      func(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error)
	listByVessel func(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error)
	update       func(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockWatchTimetableRepo) Publish(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	return m.publish(ctx, tt)
}
func (m *mockWatchTimetableRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error) {
	return m.getByID(ctx, id)
}
func (m *mockWatchTimetableRepo) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error) {
	return m.listByVessel(ctx, vesselID)
}
func (m *mockWatchTimetableRepo) Update(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	return m.update(ctx, tt)
}
func (m *mockWatchTimetableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.WatchTimetableRepo = (*mockWatchTimetableRepo)(nil)

type mockTaskRepo struct {
	create       func(ctx context.Context, task domain.Task) (domain.Task, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Task, error)
	listByVessel func(ctx context.Context, vesselID uuid.UUID) ([]domain.Task, error)
	update       func(ctx context.Context, task domain.Task) (domain.Task, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTaskRepo) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	return m.create(ctx, task)
}
func (m *mockTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	return m.getByID(ctx, id)
}
func (m *mockTaskRepo) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Task, error) {
	return m.listByVessel(ctx, vesselID)
}
func (m *mockTaskRepo) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	return m.update(ctx, task)
}
func (m *mockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TaskRepo = (*mockTaskRepo)(nil)
