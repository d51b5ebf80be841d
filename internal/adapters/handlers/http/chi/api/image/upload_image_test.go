package image_test

import (
	"bytes"
	"clipshare/internal/adapters/auth"
	"clipshare/internal/adapters/handlers/http/chi"
	"clipshare/internal/adapters/handlers/http/chi/api/image"
	"clipshare/internal/adapters/handlers/http/chi/api/video"
	"clipshare/internal/core/domain"
	imageservice "clipshare/internal/core/service/image"
	videoservice "clipshare/internal/core/service/video"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newRouter(service *imageservice.MockImageService, maxSize int64) httpgo.Handler {
	verifier := auth.NewMockSessionVerifier()
	verifier.On("Verify", mock.Anything, validToken).Return(&domain.Session{UserID: "user_1"}, nil)
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	videoHandler := video.NewVideoHandler(&videoservice.MockVideoService{}, 70<<20, discardLogger)
	imageHandler := image.NewImageHandler(service, maxSize, discardLogger)
	return chi.NewRouter(discardLogger, videoHandler, imageHandler, verifier, chi.RouterOptions{SessionCookie: "__session"})
}

func imageRequest(t *testing.T, fileName string, content []byte, token string) *httpgo.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if content != nil {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(httpgo.MethodPost, "/api/image-upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestUploadImage_Success(t *testing.T) {
	// Arrange
	service := &imageservice.MockImageService{}
	service.On("UploadImage", mock.Anything, mock.MatchedBy(func(u domain.ImageUpload) bool {
		return u.File != nil && u.FileName == "cat.png"
	})).Return("social-share/cat", nil)
	h := newRouter(service, 10<<20)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, imageRequest(t, "cat.png", pngHeader, validToken))

	// Assert
	require.Equal(t, httpgo.StatusOK, w.Code)
	var resp image.UploadImageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "social-share/cat", resp.PublicID)
	service.AssertExpectations(t)
}

func TestUploadImage_Unauthorized(t *testing.T) {
	// Arrange
	service := &imageservice.MockImageService{}
	h := newRouter(service, 10<<20)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, imageRequest(t, "cat.png", pngHeader, ""))

	// Assert
	assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything)
}

func TestUploadImage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "missing file", err: domain.ErrMissingFile, wantStatus: httpgo.StatusBadRequest, wantBody: `{"error":"File not found"}`},
		{name: "too big", err: domain.ErrFileSizeTooBig, wantStatus: httpgo.StatusRequestEntityTooLarge, wantBody: `{"error":"File size too large. Maximum size is 10MB."}`},
		{name: "wrong type", err: domain.ErrInvalidFileType, wantStatus: httpgo.StatusUnsupportedMediaType, wantBody: `{"error":"Unsupported file type, expected an image"}`},
		{name: "not configured", err: domain.ErrMediaNotConfigured, wantStatus: httpgo.StatusInternalServerError, wantBody: `{"error":"Media service credentials not found"}`},
		{name: "upstream", err: fmt.Errorf("%w: boom", domain.ErrUpstream), wantStatus: httpgo.StatusInternalServerError, wantBody: `{"error":"Error uploading image"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := &imageservice.MockImageService{}
			service.On("UploadImage", mock.Anything, mock.Anything).Return("", tt.err)
			h := newRouter(service, 10<<20)
			w := httptest.NewRecorder()

			// Act
			h.ServeHTTP(w, imageRequest(t, "cat.png", pngHeader, validToken))

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestUploadImage_NoFilePart(t *testing.T) {
	// Arrange
	service := &imageservice.MockImageService{}
	service.On("UploadImage", mock.Anything, domain.ImageUpload{}).Return("", domain.ErrMissingFile)
	h := newRouter(service, 10<<20)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, imageRequest(t, "", nil, validToken))

	// Assert
	assert.Equal(t, httpgo.StatusBadRequest, w.Code)
	service.AssertExpectations(t)
}
