package video_test

import (
	"clipshare/internal/core/domain"
	videoservice "clipshare/internal/core/service/video"
	"encoding/json"
	httpgo "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListVideos_Public(t *testing.T) {
	// Arrange
	now := time.Now().UTC().Truncate(time.Second)
	videos := []domain.Video{
		{ID: uuid.New(), Title: "a", PublicID: "pa", OriginalSize: 10, CompressedSize: 4, Duration: 125, CreatedAt: now, UpdatedAt: now},
	}
	service := &videoservice.MockVideoService{}
	service.On("ListVideos", mock.Anything).Return(videos, nil)
	h := newRouter(service, 70<<20)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(httpgo.MethodGet, "/api/video", nil)

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var raw []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	require.Len(t, raw, 1)
	for _, key := range []string{"id", "title", "description", "publicId", "originalSize", "compressedSize", "duration", "createdAt", "updatedAt"} {
		assert.Contains(t, raw[0], key)
	}
	assert.Equal(t, "pa", raw[0]["publicId"])
	service.AssertExpectations(t)
}

func TestListVideos_EmptyIsArray(t *testing.T) {
	// Arrange
	service := &videoservice.MockVideoService{}
	service.On("ListVideos", mock.Anything).Return(nil, nil)
	h := newRouter(service, 70<<20)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(httpgo.MethodGet, "/api/video", nil))

	// Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListVideos_Error(t *testing.T) {
	// Arrange
	service := &videoservice.MockVideoService{}
	service.On("ListVideos", mock.Anything).Return(nil, assert.AnError)
	h := newRouter(service, 70<<20)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(httpgo.MethodGet, "/api/video", nil))

	// Assert
	assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error fetching videos"}`, w.Body.String())
}
