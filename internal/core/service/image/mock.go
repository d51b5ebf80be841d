package image

import (
	"clipshare/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

// MockImageService is a mock implementation of ImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}
