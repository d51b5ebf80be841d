package video_test

import (
	"bytes"
	"clipshare/internal/adapters/auth"
	"clipshare/internal/adapters/handlers/http/chi"
	"clipshare/internal/adapters/handlers/http/chi/api/image"
	"clipshare/internal/adapters/handlers/http/chi/api/video"
	"clipshare/internal/core/domain"
	imageservice "clipshare/internal/core/service/image"
	videoservice "clipshare/internal/core/service/video"
	"io"
	"log/slog"
	"mime/multipart"
	httpgo "net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRouter(service *videoservice.MockVideoService, maxSize int64) httpgo.Handler {
	verifier := auth.NewMockSessionVerifier()
	verifier.On("Verify", mock.Anything, validToken).Return(&domain.Session{UserID: "user_1"}, nil)
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	videoHandler := video.NewVideoHandler(service, maxSize, discardLogger)
	imageHandler := image.NewImageHandler(&imageservice.MockImageService{}, maxSize, discardLogger)
	return chi.NewRouter(discardLogger, videoHandler, imageHandler, verifier, chi.RouterOptions{SessionCookie: "__session"})
}

type formFile struct {
	name    string
	content []byte
}

func multipartBody(t *testing.T, fields map[string]string, file *formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if file != nil {
		part, err := writer.CreateFormFile("file", file.name)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func uploadFields(size int) map[string]string {
	return map[string]string{
		"title":        "Holiday",
		"description":  "beach day",
		"originalSize": strconv.Itoa(size),
	}
}
