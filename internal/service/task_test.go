package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/backend/internal/domain"
	"github.com/crewdeck/backend/internal/service"
)

func TestTaskService_Create(t *testing.T) {
	repo := &mockTaskRepo{
		create: func(_ context.Context, task domain.Task) (domain.Task, error) {
			task.ID = uuid.New()
			return task, nil
		},
	}
	svc := service.NewTaskService(repo)

	deadline, err := domain.NewDate(2026, 9, 15)
	require.NoError(t, err)
	created, err := svc.Create(context.Background(), domain.Task{
		VesselID: uuid.New(),
		Title:    "Renew EPIRB battery",
		Deadline: &deadline,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Renew EPIRB battery", created.Title)
}

func TestTaskService_Create_TitleRequired(t *testing.T) {
	svc := service.NewTaskService(&mockTaskRepo{})

	_, err := svc.Create(context.Background(), domain.Task{Title: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "title is required")
}

// A task without a deadline is legal; urgency classification elsewhere
// treats it as "none".
func TestTaskService_Create_NoDeadline(t *testing.T) {
	repo := &mockTaskRepo{
		create: func(_ context.Context, task domain.Task) (domain.Task, error) {
			assert.Nil(t, task.Deadline)
			return task, nil
		},
	}
	svc := service.NewTaskService(repo)

	_, err := svc.Create(context.Background(), domain.Task{Title: "Restock galley"})

	assert.NoError(t, err)
}

func TestTaskService_GetByID(t *testing.T) {
	taskID := uuid.New()
	repo := &mockTaskRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Task, error) {
			return domain.Task{ID: id, Title: "Renew EPIRB battery"}, nil
		},
	}
	svc := service.NewTaskService(repo)

	got, err := svc.GetByID(context.Background(), taskID)

	require.NoError(t, err)
	assert.Equal(t, taskID, got.ID)
}

func TestTaskService_GetByID_NotFound(t *testing.T) {
	repo := &mockTaskRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Task, error) {
			return domain.Task{}, fmt.Errorf("repo.TaskRepo.GetByID: %w", domain.ErrNotFound)
		},
	}
	svc := service.NewTaskService(repo)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	repo := &mockTaskRepo{
		update: func(_ context.Context, _ domain.Task) (domain.Task, error) {
			return domain.Task{}, fmt.Errorf("repo.TaskRepo.Update: %w", domain.ErrNotFound)
		},
	}
	svc := service.NewTaskService(repo)

	_, err := svc.Update(context.Background(), domain.Task{ID: uuid.New(), Title: "Ghost"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	taskID := uuid.New()
	repo := &mockTaskRepo{
		delete: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, taskID, id)
			return nil
		},
	}
	svc := service.NewTaskService(repo)

	assert.NoError(t, svc.Delete(context.Background(), taskID))
}
