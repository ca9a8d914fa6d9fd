// internal/server/server.go
package server

import (
	"log/slog"
	"net/http"
	"time"

	"elibrary/internal/book"
	"elibrary/internal/httpx"
	"elibrary/internal/library"
	"elibrary/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps is everything the router needs. Metrics and Limiter are optional.
type Deps struct {
	Logger         *slog.Logger
	Users          user.Service
	Books          book.Service
	Libraries      library.Service
	Metrics        *httpx.Metrics
	Limiter        *httpx.RateLimiter
	AllowedOrigins []string
	MaxBodyBytes   int64
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter assembles the middleware chain and mounts every collection.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpx.EchoRequestID)
	r.Use(httpx.Recover(logger))
	r.Use(httpx.AccessLog(logger))
	r.Use(httpx.CORS(d.AllowedOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.Get("/health", handleHealth)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Middleware)
		}
		if d.MaxBodyBytes > 0 {
			r.Use(httpx.BodyLimit(d.MaxBodyBytes))
		}
		r.Route("/users", user.NewHandler(d.Users).Routes)
		r.Route("/books", book.NewHandler(d.Books).Routes)
		r.Route("/libraries", library.NewHandler(d.Libraries).Routes)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, r, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
