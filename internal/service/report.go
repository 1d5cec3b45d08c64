package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/repo"
	"github.com/crewdeck/backend/internal/report"
)

// ReportService turns a published timetable into a paginated, print-ready
// watch bill. Its responsibility ends at correct partitioning — handing the
// page sequence to a document renderer is the caller's job.
type ReportService struct {
	timetables repo.WatchTimetableRepo
	capacity   int
}

// NewReportService constructs a ReportService.
// capacity is the rows-per-page limit; values < 1 fall back to the default.
func NewReportService(r repo.WatchTimetableRepo, capacity int) *ReportService {
	if capacity < 1 {
		capacity = report.DefaultPageCapacity
	}
	return &ReportService{timetables: r, capacity: capacity}
}

// WatchBill loads a timetable and paginates its slots into self-contained
// pages. Returns domain.ErrNotFound if the timetable does not exist.
func (s *ReportService) WatchBill(ctx context.Context, timetableID uuid.UUID) ([]report.Page, error) {
	tt, err := s.timetables.GetByID(ctx, timetableID)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.WatchBill: %w", err)
	}

	header := report.PageHeader{
		WatchTitle:    tt.WatchTitle,
		ForDate:       tt.ForDate,
		StartTime:     tt.StartTime,
		StartLocation: tt.StartLocation,
		Destination:   tt.Destination,
	}
	return report.Paginate(header, tt.Slots, s.capacity), nil
}
