package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andreluizn/tasktrack/internal/common"
	"github.com/andreluizn/tasktrack/internal/models"
	"github.com/andreluizn/tasktrack/internal/service"
)

type mockUserRepo struct {
	EmailExistsFunc func(ctx context.Context, email string) (bool, error)
	CreateFunc      func(ctx context.Context, user *models.User) error
	GetByEmailFunc  func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.EmailExistsFunc(ctx, email)
}
func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.CreateFunc(ctx, user)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

// memUserRepo is an in-memory UserRepository for roundtrip tests.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (m *memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = "id-" + user.Email
	user.CreatedAt = time.Now()
	m.users[user.Email] = user
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func TestRegister_EmptyFields(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, nil)

	for _, tt := range []struct{ name, email, password string }{
		{"", "a@b.c", "pw"},
		{"Ana", "", "pw"},
		{"Ana", "a@b.c", ""},
	} {
		err := svc.Register(context.Background(), tt.name, tt.email, tt.password)
		if !errors.Is(err, common.ErrValidation) {
			t.Errorf("Register(%q,%q,%q) error = %v; want ErrValidation", tt.name, tt.email, tt.password, err)
		}
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	repo := &mockUserRepo{
		EmailExistsFunc: func(context.Context, string) (bool, error) { return true, nil },
	}
	svc := service.NewAuthService(repo, nil)

	err := svc.Register(context.Background(), "Ana", "ana@example.com", "pw")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("Register error = %v; want ErrAlreadyExists", err)
	}
}

func TestRegister_RepoError(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &mockUserRepo{
		EmailExistsFunc: func(context.Context, string) (bool, error) { return false, wantErr },
	}
	svc := service.NewAuthService(repo, nil)

	err := svc.Register(context.Background(), "Ana", "ana@example.com", "pw")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Register error = %v; want %v", err, wantErr)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	var created *models.User
	repo := &mockUserRepo{
		EmailExistsFunc: func(context.Context, string) (bool, error) { return false, nil },
		CreateFunc: func(_ context.Context, user *models.User) error {
			created = user
			return nil
		},
	}
	svc := service.NewAuthService(repo, nil)

	if err := svc.Register(context.Background(), "Ana", "ana@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("Create was not called")
	}
	if created.PasswordHash == "pw" || created.PasswordHash == "" {
		t.Fatalf("password stored as %q; want a hash", created.PasswordHash)
	}
	if !service.CheckPassword("pw", created.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestLogin_NotFound(t *testing.T) {
	repo := &mockUserRepo{
		GetByEmailFunc: func(context.Context, string) (*models.User, error) { return nil, common.ErrNotFound },
	}
	svc := service.NewAuthService(repo, nil)

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Login error = %v; want ErrNotFound", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := service.HashPassword("right")
	if err != nil {
		t.Fatal(err)
	}
	repo := &mockUserRepo{
		GetByEmailFunc: func(context.Context, string) (*models.User, error) {
			return &models.User{ID: "u1", Email: "ana@example.com", PasswordHash: hash}, nil
		},
	}
	svc := service.NewAuthService(repo, nil)

	_, err = svc.Login(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, common.ErrInvalidCredential) {
		t.Fatalf("Login error = %v; want ErrInvalidCredential", err)
	}
}

func TestRegisterLogin_Roundtrip(t *testing.T) {
	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)
	repo := newMemUserRepo()
	svc := service.NewAuthService(repo, tokens)
	ctx := context.Background()

	if err := svc.Register(ctx, "Ana", "ana@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// A second registration with the same email must fail and leave the
	// first record untouched.
	firstHash := repo.users["ana@example.com"].PasswordHash
	if err := svc.Register(ctx, "Impostor", "ana@example.com", "other"); !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("second Register error = %v; want ErrAlreadyExists", err)
	}
	if repo.users["ana@example.com"].PasswordHash != firstHash {
		t.Error("first user record was modified by the duplicate registration")
	}
	if repo.users["ana@example.com"].Name != "Ana" {
		t.Error("first user name was modified by the duplicate registration")
	}

	token, err := svc.Login(ctx, "ana@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if want := repo.users["ana@example.com"].ID; userID != want {
		t.Errorf("token user ID = %q; want %q", userID, want)
	}
}
