// Package models defines the core data structures for users and tasks.
package models

import "time"

// Task status values as stored and sent on the wire. The JSON contract
// (field names and status strings) is inherited from the original
// application and kept so existing clients continue to work.
const (
	// StatusPending marks a task that is still open.
	StatusPending = "pendente"
	// StatusDone marks a task the user has completed.
	StatusDone = "finalizada"
)

// ValidStatus reports whether s is one of the accepted task statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusDone
}

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Name is the display name chosen by the user.
	Name string `json:"nome"`
	// Email is the unique login email.
	Email string `json:"email"`
	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized to clients.
	PasswordHash string `json:"-"`
	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"dataCriacao"`
}

// Task is an active to-do item owned by a single user.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`
	// OwnerID references the user the task belongs to.
	OwnerID string `json:"usuarioId"`
	// Title is the short task summary. Always non-empty.
	Title string `json:"titulo"`
	// Description holds optional free-form detail.
	Description string `json:"descricao"`
	// DueDate is the optional date the task is due.
	DueDate *time.Time `json:"data"`
	// Status is either StatusPending or StatusDone.
	Status string `json:"status"`
	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"dataCriacao"`
}

// FinishedTask is a write-once snapshot of a Task taken at deletion time.
type FinishedTask struct {
	// ID is the unique identifier for the snapshot itself.
	ID string `json:"id"`
	// OwnerID references the user the archived task belonged to.
	OwnerID string `json:"usuarioId"`
	// Title is copied from the task.
	Title string `json:"titulo"`
	// Description is copied from the task.
	Description string `json:"descricao"`
	// DueDate is copied from the task.
	DueDate *time.Time `json:"data"`
	// Status is the task status at the moment of deletion.
	Status string `json:"status"`
	// CreatedAt is the original task creation time.
	CreatedAt time.Time `json:"dataCriacao"`
	// FinishedAt is when the task was archived.
	FinishedAt time.Time `json:"dataFinalizacao"`
}
