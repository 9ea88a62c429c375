package http

import (
	"net/http"

	"github.com/andreluizn/tasktrack/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns the HTTP handler serving the task
// tracker API. It applies JSON content-type enforcement and request
// logging globally, and bearer-token authentication on the task routes.
//
// Routes:
//
//	POST   /register        → authHandler.Register
//	POST   /login           → authHandler.Login
//	GET    /tasks           → taskHandler.List          (bearer token)
//	POST   /tasks           → taskHandler.Create        (bearer token)
//	GET    /tasks/finished  → taskHandler.Finished      (bearer token)
//	PUT    /tasks/{id}      → taskHandler.UpdateStatus  (bearer token)
//	DELETE /tasks/{id}      → taskHandler.Delete        (bearer token)
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	tokens middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected group: requires a valid bearer token
	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.Auth(tokens))

		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Get("/finished", taskHandler.Finished)
		r.Put("/{id}", taskHandler.UpdateStatus)
		r.Delete("/{id}", taskHandler.Delete)
	})

	return r
}
