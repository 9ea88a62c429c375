// Package http provides HTTP handlers for user authentication and task
// management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreluizn/tasktrack/internal/common"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, name, email, password string) error
	// Login verifies the credentials and returns a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	// Name is the display name of the new user.
	Name string `json:"nome"`
	// Email is the login email to register.
	Email string `json:"email"`
	// Password is the plaintext password; it is hashed before storage.
	Password string `json:"senha"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Register handles POST /register requests.
// It expects a JSON body with non-empty "nome", "email" and "senha" fields.
// Responds 201 on success, 400 if the email is already registered or the
// body is invalid, and 500 on persistence failures.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, "user registered")
	case errors.Is(err, common.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, common.ErrAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "user already exists")
	default:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

// Login handles POST /login requests.
// It expects a JSON body with "email" and "senha" fields and responds with
// a bearer token on success. Unknown emails and wrong passwords both yield
// 400 with a specific message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	case errors.Is(err, common.ErrNotFound):
		writeMessage(w, http.StatusBadRequest, "user not found")
	case errors.Is(err, common.ErrInvalidCredential):
		writeMessage(w, http.StatusBadRequest, "invalid password")
	default:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
