package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andreluizn/tasktrack/internal/common"
)

// fakeVerifier implements TokenVerifier for testing.
type fakeVerifier struct {
	userID string
	err    error
}

func (f *fakeVerifier) Verify(string) (string, error) {
	return f.userID, f.err
}

// recordingHandler records whether it was called and the context it received.
type recordingHandler struct {
	called bool
	ctx    context.Context
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		verifier     *fakeVerifier
		expectedCode int
		expectNext   bool
	}{
		{
			name:         "missing header",
			header:       "",
			verifier:     &fakeVerifier{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong scheme",
			header:       "Basic dXNlcjpwYXNz",
			verifier:     &fakeVerifier{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "expired token",
			header:       "Bearer some.token",
			verifier:     &fakeVerifier{err: common.ErrTokenExpired},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "malformed token",
			header:       "Bearer garbage",
			verifier:     &fakeVerifier{err: common.ErrTokenMalformed},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "verify error",
			header:       "Bearer some.token",
			verifier:     &fakeVerifier{err: errors.New("boom")},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "valid token",
			header:       "Bearer some.token",
			verifier:     &fakeVerifier{userID: "u1"},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &recordingHandler{}
			handler := Auth(tt.verifier)(next)

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("status = %d; want %d", rec.Code, tt.expectedCode)
			}
			if next.called != tt.expectNext {
				t.Fatalf("next called = %v; want %v", next.called, tt.expectNext)
			}
			if tt.expectNext {
				if got := UserIDFromContext(next.ctx); got != "u1" {
					t.Errorf("user ID in context = %q; want %q", got, "u1")
				}
			}
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	if got := UserIDFromContext(context.Background()); got != "" {
		t.Errorf("UserIDFromContext = %q; want empty string", got)
	}
}

func TestWithUserID(t *testing.T) {
	ctx := WithUserID(context.Background(), "u42")
	if got := UserIDFromContext(ctx); got != "u42" {
		t.Errorf("UserIDFromContext = %q; want %q", got, "u42")
	}
}
