package service

import (
	"context"
	"strings"
	"time"

	"github.com/andreluizn/tasktrack/internal/common"
	"github.com/andreluizn/tasktrack/internal/models"
)

// TaskRepository defines the persistence operations needed by the TaskService.
type TaskRepository interface {
	// ListByOwner retrieves all active tasks for the owner in creation order.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	// Create persists a new task, filling in its generated ID and creation
	// timestamp.
	Create(ctx context.Context, task *models.Task) error
	// GetByID fetches a single task. Returns common.ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.Task, error)
	// UpdateStatus overwrites only the status field and returns the updated
	// task. Returns common.ErrNotFound if absent.
	UpdateStatus(ctx context.Context, id, status string) (*models.Task, error)
	// Archive snapshots the task into the finished collection and deletes
	// the original, atomically.
	Archive(ctx context.Context, id string) error
	// ListFinishedByOwner retrieves the owner's archived snapshots.
	ListFinishedByOwner(ctx context.Context, ownerID string) ([]models.FinishedTask, error)
}

// TaskService implements task management scoped to an owning user.
type TaskService struct {
	repo TaskRepository
}

// NewTaskService constructs a TaskService with the provided repository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns all active tasks belonging to ownerID in creation order.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create persists a new pending task for ownerID. Fails with
// common.ErrValidation when the title is empty or blank.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string, dueDate *time.Time) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrValidation
	}

	task := &models.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      models.StatusPending,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus sets the task's status to either "pendente" or "finalizada".
// Fails with common.ErrValidation for any other status value,
// common.ErrNotFound if the task does not exist, and common.ErrForbidden if
// it belongs to a different user.
func (s *TaskService) UpdateStatus(ctx context.Context, ownerID, taskID, status string) (*models.Task, error) {
	if !models.ValidStatus(status) {
		return nil, common.ErrValidation
	}

	if err := s.checkOwnership(ctx, ownerID, taskID); err != nil {
		return nil, err
	}

	return s.repo.UpdateStatus(ctx, taskID, status)
}

// Remove archives the task into the finished collection and deletes the
// original. Fails with common.ErrNotFound if the task does not exist and
// common.ErrForbidden if it belongs to a different user. A repeated Remove
// of the same ID reports common.ErrNotFound and leaves exactly one snapshot.
func (s *TaskService) Remove(ctx context.Context, ownerID, taskID string) error {
	if err := s.checkOwnership(ctx, ownerID, taskID); err != nil {
		return err
	}

	return s.repo.Archive(ctx, taskID)
}

// ListFinished returns the owner's archived task snapshots.
func (s *TaskService) ListFinished(ctx context.Context, ownerID string) ([]models.FinishedTask, error) {
	return s.repo.ListFinishedByOwner(ctx, ownerID)
}

func (s *TaskService) checkOwnership(ctx context.Context, ownerID, taskID string) error {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.OwnerID != ownerID {
		return common.ErrForbidden
	}
	return nil
}
