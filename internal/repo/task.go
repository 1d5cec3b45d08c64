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

// TaskRepo defines the persistence operations for deadline-bearing tasks.
type TaskRepo interface {
	// Create inserts a new task and returns the persisted record.
	Create(ctx context.Context, task domain.Task) (domain.Task, error)

	// GetByID retrieves a single task by its UUID primary key.
	// Returns domain.ErrNotFound if no task with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error)

	// ListByVessel returns all of a vessel's tasks, soonest deadline first,
	// deadline-less tasks last.
	ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Task, error)

	// Update overwrites the mutable fields of an existing task and returns the
	// updated record. Returns domain.ErrNotFound if no task with that ID exists.
	Update(ctx context.Context, task domain.Task) (domain.Task, error)

	// Delete removes a task by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTaskRepo is the Postgres implementation of TaskRepo.
type pgTaskRepo struct {
	db db
}

// NewTaskRepo constructs a TaskRepo backed by the provided db connection.
func NewTaskRepo(db db) TaskRepo {
	return &pgTaskRepo{db: db}
}

const taskColumns = `id, vessel_id, title, notes, done, deadline, created_at, updated_at`

func (r *pgTaskRepo) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	const q = `
		INSERT INTO tasks (vessel_id, title, notes, done, deadline)
		VALUES (@vessel_id, @title, @notes, @done, @deadline)
		RETURNING ` + taskColumns

	args := pgx.NamedArgs{
		"vessel_id": task.VesselID,
		"title":     task.Title,
		"notes":     task.Notes,
		"done":      task.Done,
		"deadline":  deadlineArg(task.Deadline),
	}

	result, err := scanTask(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Task{}, fmt.Errorf("repo.TaskRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id = @id`

	result, err := scanTask(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Task{}, fmt.Errorf("repo.TaskRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTaskRepo) ListByVessel(ctx context.Context, vesselID uuid.UUID) ([]domain.Task, error) {
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE vessel_id = @vessel_id
		ORDER BY deadline ASC NULLS LAST, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vessel_id": vesselID})
	if err != nil {
		return nil, fmt.Errorf("repo.TaskRepo.ListByVessel: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TaskRepo.ListByVessel: scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TaskRepo.ListByVessel: rows: %w", err)
	}

	return tasks, nil
}

func (r *pgTaskRepo) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	const q = `
		UPDATE tasks
		SET title      = @title,
		    notes      = @notes,
		    done       = @done,
		    deadline   = @deadline,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + taskColumns

	args := pgx.NamedArgs{
		"id":       task.ID,
		"title":    task.Title,
		"notes":    task.Notes,
		"done":     task.Done,
		"deadline": deadlineArg(task.Deadline),
	}

	result, err := scanTask(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Task{}, fmt.Errorf("repo.TaskRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM tasks WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TaskRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TaskRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// deadlineArg converts an optional domain.Date into a nullable SQL argument.
func deadlineArg(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.Time()
}

// scanTask maps a single database row into a domain.Task.
func scanTask(s scanner) (domain.Task, error) {
	var (
		t        domain.Task
		id       pgtype.UUID
		vID      pgtype.UUID
		deadline pgtype.Date
	)

	err := s.Scan(&id, &vID, &t.Title, &t.Notes, &t.Done, &deadline, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.VesselID = uuid.UUID(vID.Bytes)
	if deadline.Valid {
		d := domain.DateOf(deadline.Time)
		t.Deadline = &d
	}

	return t, nil
}
