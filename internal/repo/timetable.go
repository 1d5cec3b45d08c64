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

// WatchTimetableRepo defines the persistence operations for watch timetables.
//
// A timetable's metadata and its slot list always move together: Publish
// writes both in one transaction, Update replaces both in one transaction,
// and reads always return both. No caller can observe metadata without its
// slots or vice versa, even though the store models them as two tables.
//
// Update carries no optimistic-concurrency guard: two editors racing on the
// same id are last-write-wins, and the losing edit is silently replaced.
type WatchTimetableRepo interface {
	// Publish inserts a new timetable with its slots as one atomic unit and
	// returns the persisted record.
	Publish(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)

	// GetByID retrieves a single timetable with its ordered slots.
	// Returns domain.ErrNotFound if no timetable with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error)

	// ListByVessel returns all of a vessel's timetables ordered by for_date
	// descending (most recent first), each with its ordered slots.
	ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error)

	// Update replaces the timetable's metadata and its ENTIRE slot list in one
	// transaction. No merge, no history of the replaced version.
	// Returns domain.ErrNotFound if no timetable with that ID exists.
	Update(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error)

	// Delete removes a timetable and its slots permanently.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgWatchTimetableRepo is the Postgres implementation of WatchTimetableRepo.
type pgWatchTimetableRepo struct {
	db db
}

// NewWatchTimetableRepo constructs a WatchTimetableRepo backed by the provided
// db connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx —
// Publish and Update open a nested transaction (savepoint) in that case, so
// rollback isolation still holds.
func NewWatchTimetableRepo(db db) WatchTimetableRepo {
	return &pgWatchTimetableRepo{db: db}
}

const timetableColumns = `id, vessel_id, watch_title, for_date, start_time, start_location, destination, notes, created_by, created_at`

// Publish writes the metadata row and all slot rows in one transaction.
func (r *pgWatchTimetableRepo) Publish(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	result, err := r.inTx(ctx, func(tx pgx.Tx) (domain.WatchTimetable, error) {
		const q = `
			INSERT INTO watch_timetables (vessel_id, watch_title, for_date, start_time, start_location, destination, notes, created_by)
			VALUES (@vessel_id, @watch_title, @for_date, @start_time, @start_location, @destination, @notes, @created_by)
			RETURNING ` + timetableColumns

		args := pgx.NamedArgs{
			"vessel_id":      tt.VesselID,
			"watch_title":    tt.WatchTitle,
			"for_date":       tt.ForDate.Time(),
			"start_time":     tt.StartTime,
			"start_location": tt.StartLocation,
			"destination":    tt.Destination,
			"notes":          tt.Notes,
			"created_by":     tt.CreatedBy,
		}

		created, err := scanTimetable(tx.QueryRow(ctx, q, args))
		if err != nil {
			return domain.WatchTimetable{}, err
		}

		if err := insertSlots(ctx, tx, created.ID, tt.Slots); err != nil {
			return domain.WatchTimetable{}, err
		}
		created.Slots = tt.Slots
		return created, nil
	})
	if err != nil {
		return domain.WatchTimetable{}, fmt.Errorf("repo.WatchTimetableRepo.Publish: %w", err)
	}
	return result, nil
}

// GetByID retrieves a timetable and its ordered slots.
func (r *pgWatchTimetableRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.WatchTimetable, error) {
	const q = `SELECT ` + timetableColumns + ` FROM watch_timetables WHERE id = @id`

	tt, err := scanTimetable(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.WatchTimetable{}, fmt.Errorf("repo.WatchTimetableRepo.GetByID: %w", err)
	}

	tt.Slots, err = r.loadSlots(ctx, tt.ID)
	if err != nil {
		return domain.WatchTimetable{}, fmt.Errorf("repo.WatchTimetableRepo.GetByID: %w", err)
	}
	return tt, nil
}

// ListByVessel returns all timetables for one vessel, most recent date first.
func (r *pgWatchTimetableRepo) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.WatchTimetable, error) {
	const q = `
		SELECT ` + timetableColumns + `
		FROM watch_timetables
		WHERE vessel_id = @vessel_id
		ORDER BY for_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vessel_id": vesselID})
	if err != nil {
		return nil, fmt.Errorf("repo.WatchTimetableRepo.ListByVessel: %w", err)
	}
	defer rows.Close()

	var timetables []domain.WatchTimetable
	for rows.Next() {
		tt, err := scanTimetable(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.WatchTimetableRepo.ListByVessel: scan: %w", err)
		}
		timetables = append(timetables, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.WatchTimetableRepo.ListByVessel: rows: %w", err)
	}

	for i := range timetables {
		timetables[i].Slots, err = r.loadSlots(ctx, timetables[i].ID)
		if err != nil {
			return nil, fmt.Errorf("repo.WatchTimetableRepo.ListByVessel: %w", err)
		}
	}

	return timetables, nil
}

// Update replaces metadata and the entire slot list in one transaction.
func (r *pgWatchTimetableRepo) Update(ctx context.Context, tt domain.WatchTimetable) (domain.WatchTimetable, error) {
	result, err := r.inTx(ctx, func(tx pgx.Tx) (domain.WatchTimetable, error) {
		const q = `
			UPDATE watch_timetables
			SET watch_title    = @watch_title,
			    for_date       = @for_date,
			    start_time     = @start_time,
			    start_location = @start_location,
			    destination    = @destination,
			    notes          = @notes
			WHERE id = @id
			RETURNING ` + timetableColumns

		args := pgx.NamedArgs{
			"id":             tt.ID,
			"watch_title":    tt.WatchTitle,
			"for_date":       tt.ForDate.Time(),
			"start_time":     tt.StartTime,
			"start_location": tt.StartLocation,
			"destination":    tt.Destination,
			"notes":          tt.Notes,
		}

		updated, err := scanTimetable(tx.QueryRow(ctx, q, args))
		if err != nil {
			return domain.WatchTimetable{}, err
		}

		// Full replace: every prior slot goes, the new list comes in whole.
		const del = `DELETE FROM watch_timetable_slots WHERE timetable_id = @id`
		if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"id": tt.ID}); err != nil {
			return domain.WatchTimetable{}, err
		}
		if err := insertSlots(ctx, tx, tt.ID, tt.Slots); err != nil {
			return domain.WatchTimetable{}, err
		}
		updated.Slots = tt.Slots
		return updated, nil
	})
	if err != nil {
		return domain.WatchTimetable{}, fmt.Errorf("repo.WatchTimetableRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a timetable; slot rows go with it via ON DELETE CASCADE.
func (r *pgWatchTimetableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM watch_timetables WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.WatchTimetableRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.WatchTimetableRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// inTx runs fn inside a transaction, committing on success and rolling back
// on error. When the repo itself was constructed over a pgx.Tx this opens a
// savepoint, so the caller's outer transaction is unaffected.
func (r *pgWatchTimetableRepo) inTx(ctx context.Context, fn func(pgx.Tx) (domain.WatchTimetable, error)) (domain.WatchTimetable, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.WatchTimetable{}, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	result, err := fn(tx)
	if err != nil {
		return domain.WatchTimetable{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.WatchTimetable{}, err
	}
	return result, nil
}

// insertSlots writes the slot list with explicit positions preserving order.
func insertSlots(ctx context.Context, tx pgx.Tx, timetableID uuid.UUID, slots []domain.TimetableSlot) error {
	const q = `
		INSERT INTO watch_timetable_slots (timetable_id, position, crew_id, crew_name, crew_position, start_time, end_time, duration_hours)
		VALUES (@timetable_id, @position, @crew_id, @crew_name, @crew_position, @start_time, @end_time, @duration_hours)`

	for i, s := range slots {
		args := pgx.NamedArgs{
			"timetable_id":   timetableID,
			"position":       i,
			"crew_id":        s.CrewID,
			"crew_name":      s.CrewName,
			"crew_position":  s.CrewPosition,
			"start_time":     s.StartTimeStr,
			"end_time":       s.EndTimeStr,
			"duration_hours": s.DurationHours,
		}
		if _, err := tx.Exec(ctx, q, args); err != nil {
			return fmt.Errorf("insert slot %d: %w", i, err)
		}
	}
	return nil
}

// loadSlots fetches a timetable's slots ordered by their stored position.
func (r *pgWatchTimetableRepo) loadSlots(ctx context.Context, timetableID uuid.UUID) ([]domain.TimetableSlot, error) {
	const q = `
		SELECT crew_id, crew_name, crew_position, start_time, end_time, duration_hours
		FROM watch_timetable_slots
		WHERE timetable_id = @timetable_id
		ORDER BY position ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"timetable_id": timetableID})
	if err != nil {
		return nil, fmt.Errorf("load slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.TimetableSlot
	for rows.Next() {
		var (
			s      domain.TimetableSlot
			crewID pgtype.UUID
		)
		if err := rows.Scan(&crewID, &s.CrewName, &s.CrewPosition, &s.StartTimeStr, &s.EndTimeStr, &s.DurationHours); err != nil {
			return nil, fmt.Errorf("load slots: scan: %w", err)
		}
		s.CrewID = uuid.UUID(crewID.Bytes)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load slots: rows: %w", err)
	}

	return slots, nil
}

// scanTimetable maps a metadata row into a domain.WatchTimetable (slots are
// loaded separately).
func scanTimetable(s scanner) (domain.WatchTimetable, error) {
	var (
		tt      domain.WatchTimetable
		id      pgtype.UUID
		vID     pgtype.UUID
		forDate pgtype.Date
	)

	err := s.Scan(&id, &vID, &tt.WatchTitle, &forDate, &tt.StartTime, &tt.StartLocation, &tt.Destination, &tt.Notes, &tt.CreatedBy, &tt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.WatchTimetable{}, domain.ErrNotFound
		}
		return domain.WatchTimetable{}, err
	}

	tt.ID = uuid.UUID(id.Bytes)
	tt.VesselID = uuid.UUID(vID.Bytes)
	tt.ForDate = domain.DateOf(forDate.Time)

	return tt, nil
}
