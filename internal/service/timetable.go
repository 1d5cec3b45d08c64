package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/repo"
)

// TimetableService implements the watch-timetable publication lifecycle:
// publish → (edit by full replace)* → delete. A draft lives only in the
// composing caller; the first thing this service ever sees is a publish.
type TimetableService struct {
	repo repo.WatchTimetableRepo
}

// NewTimetableService constructs a TimetableService backed by the provided repo.
func NewTimetableService(r repo.WatchTimetableRepo) *TimetableService {
	return &TimetableService{repo: r}
}

// Publish validates and persists a new timetable as one atomic unit of
// metadata plus slots. Returns domain.ErrValidation if input violates
// business rules.
func (s *TimetableService) Publish(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	if err := validateTimetable(tt); err != nil {
		return domain.WatchTimetable{}, err
	}
	result, err := s.repo.Publish(ctx, tt)
	if err != nil {
		return domain.WatchTimetable{}, fmt.Errorf("service.TimetableService.Publish: %w", err)
	}
	return result, nil
}

// GetByID returns a single timetable with its ordered slots.
// Returns domain.ErrNotFound if no timetable with that ID exists.
func (s *TimetableService) GetByID(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.WatchTimetable{}, fmt.Errorf("service.TimetableService.GetByID: %w", err)
	}
	return result, nil
}

// ListByVessel returns all of a vessel's timetables, most recent date first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TimetableService) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error) {
	timetables, err := s.repo.ListByVessel(ctx, vesselID)
	if err != nil {
		return nil, fmt.Errorf("service.TimetableService.ListByVessel: %w", err)
	}
	if timetables == nil {
		return []domain.WatchTimetable{}, nil
	}
	return timetables, nil
}

// Update validates and fully replaces an existing timetable: metadata and the
// entire slot list, no merge, no retained prior version. Two editors racing on
// the same id are last-write-wins.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// timetable does not exist.
func (s *TimetableService) Update(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	if err := validateTimetable(tt); err != nil {
		return domain.WatchTimetable{}, err
	}
	result, err := s.repo.Update(ctx, tt)
	if err != nil {
		return domain.WatchTimetable{}, fmt.Errorf("service.TimetableService.Update: %w", err)
	}
	return result, nil
}

// Delete permanently removes a timetable and its slots.
// Returns domain.ErrNotFound if the timetable does not exist.
func (s *TimetableService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TimetableService.Delete: %w", err)
	}
	return nil
}

// validateTimetable enforces business rules common to Publish and Update.
//   - WatchTitle must be non-empty.
//   - ForDate is required.
//   - Every slot needs a crew name and start/end time strings; durations
//     must not be negative. An empty slot list is allowed — the watch bill
//     then prints as a single header-only page.
func validateTimetable(tt domain.WatchTimetable) error {
	if strings.TrimSpace(tt.WatchTitle) == "" {
		return fmt.Errorf("%w: watch_title is required", domain.ErrValidation)
	}
	if tt.ForDate.IsZero() {
		return fmt.Errorf("%w: for_date is required", domain.ErrValidation)
	}
	for i, slot := range tt.Slots {
		if strings.TrimSpace(slot.CrewName) == "" {
			return fmt.Errorf("%w: slot %d: crew_name is required", domain.ErrValidation, i)
		}
		if slot.StartTimeStr == "" || slot.EndTimeStr == "" {
			return fmt.Errorf("%w: slot %d: start and end times are required", domain.ErrValidation, i)
		}
		if slot.DurationHours < 0 {
			return fmt.Errorf("%w: slot %d: duration_hours must not be negative", domain.ErrValidation, i)
		}
	}
	return nil
}
