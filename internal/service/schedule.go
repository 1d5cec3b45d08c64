package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/repo"
	"github.com/crewdeck/backend/internal/schedule"
)

// ScheduleService ties the stored entities to the pure scheduling transforms:
// it fetches a vessel's trips and preference snapshot, then delegates to the
// overlay resolver; and it annotates tasks with urgency computed against the
// vessel's local calendar date.
type ScheduleService struct {
	trips repo.TripRepo
	prefs repo.ColorPreferenceRepo
	tasks repo.TaskRepo

	mu     sync.Mutex
	caches map[uuid.UUID]*PrefCache

	dueSoonDays int
	loc         *time.Location
	now         func() time.Time
}

// NewScheduleService constructs a ScheduleService.
// dueSoonDays is the due-soon look-ahead window (values < 0 fall back to the
// shipped default); loc is the vessel's local time zone used to derive
// "today" (nil means UTC).
func NewScheduleService(trips repo.TripRepo, prefs repo.ColorPreferenceRepo, tasks repo.TaskRepo, dueSoonDays int, loc *time.Location) *ScheduleService {
	if dueSoonDays < 0 {
		dueSoonDays = schedule.DefaultDueSoonDays
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleService{
		trips:       trips,
		prefs:       prefs,
		tasks:       tasks,
		caches:      make(map[uuid.UUID]*PrefCache),
		dueSoonDays: dueSoonDays,
		loc:         loc,
		now:         time.Now,
	}
}

// prefCache returns the vessel's preference cache, creating it on first use.
func (s *ScheduleService) prefCache(vesselID uuid.UUID) *PrefCache {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.caches[vesselID]
	if !ok {
		c = NewPrefCache(s.prefs, vesselID)
		s.caches[vesselID] = c
	}
	return c
}

// Overlay resolves a vessel's calendar overlay: it loads the vessel's trips,
// refreshes the vessel's preference cache, and hands the snapshot to the pure
// resolver. A failed refresh falls back to the last loaded snapshot; only an
// unloaded cache propagates the error. The visible set pre-filters trip
// types; nil means all types are visible.
func (s *ScheduleService) Overlay(
	ctx context.Context,
	vesselID uuid.UUID,
	mode schedule.ColorMode,
	visible map[domain.TripType]bool,
) (map[domain.Date]domain.DayMarking, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown color mode %q", domain.ErrValidation, mode)
	}
	if visible == nil {
		visible = make(map[domain.TripType]bool, len(domain.TripTypes))
		for _, t := range domain.TripTypes {
			visible[t] = true
		}
	}

	trips, err := s.trips.ListByVessel(ctx, vesselID)
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.Overlay: %w", err)
	}

	cache := s.prefCache(vesselID)
	if err := cache.Refresh(ctx); err != nil && !cache.Loaded() {
		return nil, fmt.Errorf("service.ScheduleService.Overlay: %w", err)
	}

	return schedule.ResolveOverlay(trips, mode, cache.Snapshot(), visible), nil
}

// TaskWithUrgency pairs a task with its computed urgency level.
type TaskWithUrgency struct {
	Task    domain.Task
	Urgency domain.Urgency
}

// TasksWithUrgency returns a vessel's tasks, each annotated with the urgency
// of its deadline relative to today in the vessel's local time zone.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ScheduleService) TasksWithUrgency(ctx context.Context, vesselID uuid.UUID) ([]TaskWithUrgency, error) {
	tasks, err := s.tasks.ListByVessel(ctx, vesselID)
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.TasksWithUrgency: %w", err)
	}

	today := domain.DateOf(s.now().In(s.loc))
	out := make([]TaskWithUrgency, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskWithUrgency{
			Task:    t,
			Urgency: schedule.ClassifyUrgency(t.Deadline, today, s.dueSoonDays),
		})
	}
	return out, nil
}
