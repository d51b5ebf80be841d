package chi

import (
	"clipshare/internal/adapters/handlers/http/chi/api/image"
	"clipshare/internal/adapters/handlers/http/chi/api/video"
	"clipshare/internal/adapters/handlers/http/response"
	"clipshare/internal/core/port"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions carries the server settings the router needs
type RouterOptions struct {
	Env            string
	SessionCookie  string
	StaticDir      string
	RequestTimeout time.Duration
}

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, videoHandler *video.Handler, imageHandler *image.Handler, sessions port.SessionVerifier, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	if opts.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = response.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		})
	})

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(AccessGateMiddleware(sessions, opts.SessionCookie, logger))

		r.Route("/api", func(r chi.Router) {
			videoHandler.Register(r)
			imageHandler.Register(r)
		})

		r.Get("/*", pageHandler(opts.StaticDir))
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
