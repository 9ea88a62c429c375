package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/andreluizn/tasktrack/internal/common"
	"github.com/andreluizn/tasktrack/internal/models"
	"github.com/google/uuid"
)

// PostgresTaskRepository implements task persistence and the archival
// workflow using a PostgreSQL database.
type PostgresTaskRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using the
// provided *sql.DB.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// ListByOwner fetches all active tasks for the given owner, oldest first.
func (r *PostgresTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, title, description, due_date, status, created_at
		  FROM tasks WHERE owner_id = $1 ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create inserts a new task record, generating its ID and creation
// timestamp. The caller's task is updated in place with both values.
func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UTC()

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO tasks (id, owner_id, title, description, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, task.ID, task.OwnerID, task.Title, task.Description, task.DueDate, task.Status, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID fetches a single task by ID. Returns common.ErrNotFound when no
// row matches.
func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	t := &models.Task{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, title, description, due_date, status, created_at
		  FROM tasks WHERE id = $1
	`, id).Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// UpdateStatus overwrites only the status field and returns the updated
// task. Returns common.ErrNotFound when no row matches.
func (r *PostgresTaskRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	t := &models.Task{}
	err := r.DB.QueryRowContext(ctx, `
		UPDATE tasks SET status = $1 WHERE id = $2
		RETURNING id, owner_id, title, description, due_date, status, created_at
	`, status, id).Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return t, nil
}

// Archive snapshots the task into finished_tasks and deletes the original
// inside a single transaction, so a deletion can never silently lose data.
// The snapshot insert must succeed before the delete is attempted; a failure
// in either step rolls the whole operation back. Returns common.ErrNotFound
// if the task does not exist, common.ErrArchivalFailed if the snapshot could
// not be written, and common.ErrCleanupFailed if the delete failed after it.
func (r *PostgresTaskRepository) Archive(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t := models.Task{}
	err = tx.QueryRowContext(ctx, `
		SELECT id, owner_id, title, description, due_date, status, created_at
		  FROM tasks WHERE id = $1
	`, id).Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("read task for archive: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO finished_tasks (id, owner_id, title, description, due_date, status, created_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.NewString(), t.OwnerID, t.Title, t.Description, t.DueDate, t.Status, t.CreatedAt, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrArchivalFailed, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCleanupFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive: %w", err)
	}
	return nil
}

// ListFinishedByOwner fetches the owner's archived snapshots, most recently
// finished last.
func (r *PostgresTaskRepository) ListFinishedByOwner(ctx context.Context, ownerID string) ([]models.FinishedTask, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, title, description, due_date, status, created_at, finished_at
		  FROM finished_tasks WHERE owner_id = $1 ORDER BY finished_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list finished tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.FinishedTask
	for rows.Next() {
		var t models.FinishedTask
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.CreatedAt, &t.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan finished task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
