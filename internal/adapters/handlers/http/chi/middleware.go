package chi

import (
	"clipshare/internal/adapters/handlers/http/response"
	"clipshare/internal/core/access"
	"clipshare/internal/core/port"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware is a custom logging middleware
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path != "/health" {
					attrs := []any{
						"request_id", middleware.GetReqID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"status", ww.Status(),
						"bytes", ww.BytesWritten(),
						"duration", time.Since(start),
					}
					if session, ok := access.SessionFromContext(r.Context()); ok {
						attrs = append(attrs, "user_id", session.UserID)
					}
					l.Info("http_request", attrs...)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// AccessGateMiddleware resolves the caller's session and applies access.Decide.
// API paths that would be sent to sign-in get a 401 instead of a redirect.
func AccessGateMiddleware(verifier port.SessionVerifier, cookieName string, l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authenticated := false

			if token := sessionToken(r, cookieName); token != "" {
				session, err := verifier.Verify(ctx, token)
				if err != nil {
					l.Debug("session rejected", "request_id", middleware.GetReqID(ctx), "error", err)
				} else {
					authenticated = true
					ctx = access.WithSession(ctx, session)
				}
			}

			decision := access.Decide(authenticated, r.URL.Path)
			if decision.Kind == access.Redirect {
				if access.IsAPI(r.URL.Path) {
					_ = response.Error(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				http.Redirect(w, r, decision.Location, http.StatusTemporaryRedirect)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
