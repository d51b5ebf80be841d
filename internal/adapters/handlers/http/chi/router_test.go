package chi_test

import (
	"clipshare/internal/adapters/auth"
	"clipshare/internal/adapters/handlers/http/chi"
	"clipshare/internal/adapters/handlers/http/chi/api/image"
	"clipshare/internal/adapters/handlers/http/chi/api/video"
	"clipshare/internal/core/domain"
	imageservice "clipshare/internal/core/service/image"
	videoservice "clipshare/internal/core/service/video"
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRouter(t *testing.T, staticDir string) httpgo.Handler {
	t.Helper()
	verifier := auth.NewMockSessionVerifier()
	verifier.On("Verify", mock.Anything, validToken).Return(&domain.Session{UserID: "user_1"}, nil)
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	videoHandler := video.NewVideoHandler(&videoservice.MockVideoService{}, 70<<20, discardLogger)
	imageHandler := image.NewImageHandler(&imageservice.MockImageService{}, 10<<20, discardLogger)
	return chi.NewRouter(discardLogger, videoHandler, imageHandler, verifier, chi.RouterOptions{
		Env:           "prod",
		SessionCookie: "__session",
		StaticDir:     staticDir,
	})
}

func TestRouter_Health(t *testing.T) {
	// Arrange
	h := newRouter(t, "")
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(httpgo.MethodGet, "/health", nil))

	// Assert
	require.Equal(t, httpgo.StatusOK, w.Code)
	var resp chi.HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestRouter_Gate(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		token        string
		wantStatus   int
		wantLocation string
	}{
		{name: "signed out upload page", path: "/video-upload", wantStatus: httpgo.StatusTemporaryRedirect, wantLocation: "/sign-in"},
		{name: "signed out social page", path: "/social-share", wantStatus: httpgo.StatusTemporaryRedirect, wantLocation: "/sign-in"},
		{name: "signed in sign-in page", path: "/sign-in", token: validToken, wantStatus: httpgo.StatusTemporaryRedirect, wantLocation: "/home"},
		{name: "signed in root", path: "/", token: validToken, wantStatus: httpgo.StatusTemporaryRedirect, wantLocation: "/home"},
		{name: "signed out home", path: "/home", wantStatus: httpgo.StatusNotFound},
		{name: "signed in upload page", path: "/video-upload", token: validToken, wantStatus: httpgo.StatusNotFound},
		{name: "forged token", path: "/video-upload", token: "forged", wantStatus: httpgo.StatusTemporaryRedirect, wantLocation: "/sign-in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := newRouter(t, "")
			req := httptest.NewRequest(httpgo.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&httpgo.Cookie{Name: "__session", Value: tt.token})
			}
			w := httptest.NewRecorder()

			// Act
			h.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestRouter_PrivateAPIIsUnauthorizedNotRedirected(t *testing.T) {
	// Arrange
	h := newRouter(t, "")
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(httpgo.MethodPost, "/api/image-upload", nil))

	// Assert
	assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestRouter_ServesPagesFromStaticDir(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("index"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("home"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("js"), 0o644))
	h := newRouter(t, dir)

	tests := map[string]string{
		"/home":         "home",
		"/sign-in":      "index",
		"/app.js":       "js",
		"/sign-up/deep": "index",
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()

			// Act
			h.ServeHTTP(w, httptest.NewRequest(httpgo.MethodGet, path, nil))

			// Assert
			if path == "/sign-up/deep" {
				assert.Equal(t, httpgo.StatusTemporaryRedirect, w.Code)
				return
			}
			assert.Equal(t, httpgo.StatusOK, w.Code)
			assert.Equal(t, want, w.Body.String())
		})
	}
}

func TestRouter_PageFilesAreGated(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "social-share"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("index"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "video-upload.html"), []byte("upload page"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "social-share", "index.html"), []byte("social page"), 0o644))
	h := newRouter(t, dir)

	for _, path := range []string{"/video-upload.html", "/social-share/index.html", "/home/../video-upload.html"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()

			// Act
			h.ServeHTTP(w, httptest.NewRequest(httpgo.MethodGet, path, nil))

			// Assert
			assert.Equal(t, httpgo.StatusTemporaryRedirect, w.Code)
			assert.Equal(t, "/sign-in", w.Header().Get("Location"))
			assert.NotContains(t, w.Body.String(), "page")
		})
	}
}

func TestRouter_MissingAssetIsNotFound(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("index"), 0o644))
	h := newRouter(t, dir)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(httpgo.MethodGet, "/missing.js", nil))

	// Assert
	assert.Equal(t, httpgo.StatusNotFound, w.Code)
}
