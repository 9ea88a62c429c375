package service

import (
	"context"

	"github.com/andreluizn/tasktrack/internal/common"
	"github.com/andreluizn/tasktrack/internal/models"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// EmailExists returns true if a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create persists a new user record, filling in its generated ID and
	// creation timestamp.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail fetches a user by email. Returns common.ErrNotFound if no
	// such user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer mints a bearer token for a user ID.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService using the provided repository and
// token issuer.
func NewAuthService(repo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user with a hashed password. Fails with
// common.ErrValidation when any field is empty and common.ErrAlreadyExists
// when the email is already registered. No token is returned; the user logs
// in separately.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return common.ErrValidation
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrAlreadyExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and returns a fresh bearer token. Fails
// with common.ErrNotFound if no user has that email and
// common.ErrInvalidCredential on a password mismatch.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredential
	}

	return s.tokens.Issue(user.ID)
}
