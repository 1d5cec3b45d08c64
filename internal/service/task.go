package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/repo"
)

// TaskService implements business logic for deadline-bearing task operations.
// Urgency annotation lives on ScheduleService; this service is plain CRUD
// with validation.
type TaskService struct {
	repo repo.TaskRepo
}

// NewTaskService constructs a TaskService backed by the provided TaskRepo.
func NewTaskService(r repo.TaskRepo) *TaskService {
	return &TaskService{repo: r}
}

// Create validates and persists a new task.
func (s *TaskService) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := validateTask(task); err != nil {
		return domain.Task{}, err
	}
	result, err := s.repo.Create(ctx, task)
	if err != nil {
		return domain.Task{}, fmt.Errorf("service.TaskService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single task by ID.
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, fmt.Errorf("service.TaskService.GetByID: %w", err)
	}
	return result, nil
}

// Update validates and persists changes to an existing task.
func (s *TaskService) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := validateTask(task); err != nil {
		return domain.Task{}, err
	}
	result, err := s.repo.Update(ctx, task)
	if err != nil {
		return domain.Task{}, fmt.Errorf("service.TaskService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a task by ID.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TaskService.Delete: %w", err)
	}
	return nil
}

// validateTask enforces the one business rule tasks have: a title.
// A nil deadline is fine — such tasks classify as urgency "none".
func validateTask(task domain.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	return nil
}
