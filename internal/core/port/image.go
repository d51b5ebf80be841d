package port

import (
	"clipshare/internal/core/domain"
	"context"
)

// ImageService is an interface to define image service
type ImageService interface {
	UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error)
}
