package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crewdeck/backend/internal/domain"
)

// TripRepo defines the persistence operations for calendar Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListByVessel returns all of a vessel's trips ordered by start_date
	// ascending, created_at breaking ties — the documented input order for
	// calendar overlay resolution.
	ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, vessel_id, type, title, start_date, end_date, department, notes, created_by, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (vessel_id, type, title, start_date, end_date, department, notes, created_by)
		VALUES (@vessel_id, @type, @title, @start_date, @end_date, @department, @notes, @created_by)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"vessel_id":  trip.VesselID,
		"type":       trip.Type,
		"title":      trip.Title,
		"start_date": trip.StartDate.Time(),
		"end_date":   trip.EndDate.Time(),
		"department": trip.Department, // nil becomes NULL
		"notes":      trip.Notes,
		"created_by": trip.CreatedBy,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByVessel returns all trips for one vessel, earliest start first.
func (r *pgTripRepo) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE vessel_id = @vessel_id
		ORDER BY start_date ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vessel_id": vesselID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByVessel: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListByVessel: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByVessel: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET type       = @type,
		    title      = @title,
		    start_date = @start_date,
		    end_date   = @end_date,
		    department = @department,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":         trip.ID,
		"type":       trip.Type,
		"title":      trip.Title,
		"start_date": trip.StartDate.Time(),
		"end_date":   trip.EndDate.Time(),
		"department": trip.Department,
		"notes":      trip.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, date, and nullable department conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t     domain.Trip
		id    pgtype.UUID
		vID   pgtype.UUID
		start pgtype.Date
		end   pgtype.Date
		dept  *string
	)

	err := s.Scan(&id, &vID, &t.Type, &t.Title, &start, &end, &dept, &t.Notes, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.VesselID = uuid.UUID(vID.Bytes)
	t.StartDate = domain.DateOf(start.Time)
	t.EndDate = domain.DateOf(end.Time)
	if dept != nil {
		d := domain.Department(*dept)
		t.Department = &d
	}

	return t, nil
}
