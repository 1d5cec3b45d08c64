package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/repo"
)

// PrefCache holds one vessel's color-preference snapshot in memory.
//
// It is an explicit cache object — not a hidden package-level singleton — with
// an explicit loaded flag and an explicit Refresh call. ScheduleService owns
// one per vessel and refreshes it before each overlay resolution; resolver
// functions receive the Snapshot by value and never trigger I/O.
//
// The mutex exists because snapshots are read from concurrent request
// goroutines; the cache itself never spawns goroutines or retries.
type PrefCache struct {
	repo repo.ColorPreferenceRepo

	mu       sync.RWMutex
	vesselID uuid.UUID
	prefs    domain.ColorPreferences
	loaded   bool
}

// NewPrefCache constructs an unloaded cache for one vessel.
func NewPrefCache(r repo.ColorPreferenceRepo, vesselID uuid.UUID) *PrefCache {
	return &PrefCache{
		repo:     r,
		vesselID: vesselID,
		prefs:    domain.NewColorPreferences(vesselID),
	}
}

// Loaded reports whether the cache holds a fetched snapshot.
func (c *PrefCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Refresh fetches the vessel's preferences from the store and replaces the
// cached snapshot. On failure the previous snapshot (and loaded flag) are left
// untouched — the cache only changes state on a confirmed success response.
func (c *PrefCache) Refresh(ctx context.Context) error {
	prefs, err := c.repo.GetByVessel(ctx, c.vesselID)
	if err != nil {
		return fmt.Errorf("service.PrefCache.Refresh: %w", err)
	}

	c.mu.Lock()
	c.prefs = prefs
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached preferences. The copy is safe to read
// without holding any lock and reflects the last successful Refresh (or the
// all-defaults empty state before the first one).
func (c *PrefCache) Snapshot() domain.ColorPreferences {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := domain.NewColorPreferences(c.vesselID)
	for k, v := range c.prefs.TripTypeColors {
		out.TripTypeColors[k] = v
	}
	for k, v := range c.prefs.DepartmentColors {
		out.DepartmentColors[k] = v
	}
	return out
}

// ColorPreferenceService implements color-preference reads and single-key
// writes. Every write is an independent upsert; no batch atomicity is
// promised across keys.
type ColorPreferenceService struct {
	repo repo.ColorPreferenceRepo
}

// NewColorPreferenceService constructs a ColorPreferenceService backed by the
// provided repo.
func NewColorPreferenceService(r repo.ColorPreferenceRepo) *ColorPreferenceService {
	return &ColorPreferenceService{repo: r}
}

// GetByVessel returns the vessel's stored preference snapshot.
func (s *ColorPreferenceService) GetByVessel(ctx context.Context, vesselID uuid.UUID) (domain.ColorPreferences, error) {
	prefs, err := s.repo.GetByVessel(ctx, vesselID)
	if err != nil {
		return domain.ColorPreferences{}, fmt.Errorf("service.ColorPreferenceService.GetByVessel: %w", err)
	}
	return prefs, nil
}

// SetTripTypeColor upserts one trip-type key. The color may be the explicit
// no-color sentinel; it is stored as such, never collapsed with "unset".
func (s *ColorPreferenceService) SetTripTypeColor(ctx context.Context, vesselID uuid.UUID, t domain.TripType, color domain.Color) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown trip type %q", domain.ErrValidation, t)
	}
	if err := validateColor(color); err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, vesselID, domain.DimensionTripType, string(t), color); err != nil {
		return fmt.Errorf("service.ColorPreferenceService.SetTripTypeColor: %w", err)
	}
	return nil
}

// SetDepartmentColor upserts one department key, sentinel included.
func (s *ColorPreferenceService) SetDepartmentColor(ctx context.Context, vesselID uuid.UUID, d domain.Department, color domain.Color) error {
	if !d.Valid() {
		return fmt.Errorf("%w: unknown department %q", domain.ErrValidation, d)
	}
	if err := validateColor(color); err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, vesselID, domain.DimensionDepartment, string(d), color); err != nil {
		return fmt.Errorf("service.ColorPreferenceService.SetDepartmentColor: %w", err)
	}
	return nil
}

// Unset removes one configured key, returning it to the system default.
// Distinct from setting the no-color sentinel.
func (s *ColorPreferenceService) Unset(ctx context.Context, vesselID uuid.UUID, dim domain.Dimension, key string) error {
	if !dim.Valid() {
		return fmt.Errorf("%w: unknown dimension %q", domain.ErrValidation, dim)
	}
	if err := s.repo.Unset(ctx, vesselID, dim, key); err != nil {
		return fmt.Errorf("service.ColorPreferenceService.Unset: %w", err)
	}
	return nil
}

// validateColor accepts the no-color sentinel or a "#RRGGBB" hex value.
func validateColor(c domain.Color) error {
	if c == domain.ColorNone {
		return nil
	}
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("%w: color must be \"#RRGGBB\" or %q", domain.ErrValidation, domain.ColorNone)
	}
	for _, ch := range s[1:] {
		switch {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f', ch >= 'A' && ch <= 'F':
		default:
			return fmt.Errorf("%w: color must be \"#RRGGBB\" or %q", domain.ErrValidation, domain.ColorNone)
		}
	}
	return nil
}
