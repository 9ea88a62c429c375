// Package common holds sentinel errors shared across services, repositories
// and HTTP handlers. Handlers map them to status codes with errors.Is.
package common

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique constraint would be violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredential indicates a password mismatch on login.
	ErrInvalidCredential = errors.New("invalid credentials")
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden indicates the caller does not own the target record.
	ErrForbidden = errors.New("forbidden")

	// ErrTokenMissing indicates no bearer token was supplied.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenMalformed indicates a structurally invalid token or a
	// signature mismatch.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenExpired indicates a token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrArchivalFailed indicates the finished-task snapshot could not be
	// written; the original task is left untouched.
	ErrArchivalFailed = errors.New("archival failed")
	// ErrCleanupFailed indicates the task could not be deleted after its
	// snapshot was written; the whole archive is rolled back.
	ErrCleanupFailed = errors.New("cleanup failed")
)
