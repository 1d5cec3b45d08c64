package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crewdeck/backend/internal/domain"
)

// ColorPreferenceRepo defines the persistence operations for per-vessel color
// preferences. Preferences are stored one row per configured key; absence of
// a row means "unset", and the no-color sentinel is the stored literal "none",
// so "unset" and "explicitly no color" stay distinct all the way down.
type ColorPreferenceRepo interface {
	// GetByVessel returns the vessel's full preference snapshot.
	// A vessel with no configured keys yields an empty (all-defaults) snapshot,
	// not an error.
	GetByVessel(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error)

	// Upsert writes one (dimension, key) entry, inserting or overwriting it.
	// Single-key only — no batch atomicity is promised across calls.
	Upsert(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string, color domain.Color) error

	// Unset removes one (dimension, key) entry, returning the key to the
	// system default. Removing an absent entry is not an error.
	Unset(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error
}

// pgColorPreferenceRepo is the Postgres implementation of ColorPreferenceRepo.
type pgColorPreferenceRepo struct {
	db db
}

// NewColorPreferenceRepo constructs a ColorPreferenceRepo backed by the
// provided db connection.
func NewColorPreferenceRepo(db db) ColorPreferenceRepo {
	return &pgColorPreferenceRepo{db: db}
}

// GetByVessel loads every configured key for the vessel into a snapshot.
func (r *pgColorPreferenceRepo) GetByVessel(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error) {
	const q = `
		SELECT dimension, key, color
		FROM color_preferences
		WHERE vessel_id = @vessel_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vessel_id": vesselID})
	if err != nil {
		return domain.ColorPreferences{}, fmt.Errorf("repo.ColorPreferenceRepo.GetByVessel: %w", err)
	}
	defer rows.Close()

	prefs := domain.NewColorPreferences(vesselID)
	for rows.Next() {
		var dim, key, color string
		if err := rows.Scan(&dim, &key, &color); err != nil {
			return domain.ColorPreferences{}, fmt.Errorf("repo.ColorPreferenceRepo.GetByVessel: scan: %w", err)
		}
		switch domain.Dimension(dim) {
		case domain.DimensionTripType:
			prefs.TripTypeColors[domain.TripType(key)] = domain.Color(color)
		case domain.DimensionDepartment:
			prefs.DepartmentColors[domain.Department(key)] = domain.Color(color)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.ColorPreferences{}, fmt.Errorf("repo.ColorPreferenceRepo.GetByVessel: rows: %w", err)
	}

	return prefs, nil
}

// Upsert inserts or overwrites one preference entry.
func (r *pgColorPreferenceRepo) Upsert(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string, color domain.Color) error {
	const q = `
		INSERT INTO color_preferences (vessel_id, dimension, key, color)
		VALUES (@vessel_id, @dimension, @key, @color)
		ON CONFLICT (vessel_id, dimension, key)
		DO UPDATE SET color = EXCLUDED.color, updated_at = now()`

	args := pgx.NamedArgs{
		"vessel_id": vesselID,
		"dimension": dim,
		"key":       key,
		"color":     color,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.ColorPreferenceRepo.Upsert: %w", err)
	}
	return nil
}

// Unset deletes one preference entry if present.
func (r *pgColorPreferenceRepo) Unset(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error {
	const q = `
		DELETE FROM color_preferences
		WHERE vessel_id = @vessel_id AND dimension = @dimension AND key = @key`

	args := pgx.NamedArgs{
		"vessel_id": vesselID,
		"dimension": dim,
		"key":       key,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.ColorPreferenceRepo.Unset: %w", err)
	}
	return nil
}
