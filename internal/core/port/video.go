package port

import (
	"clipshare/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

// VideoRepository is an interface to define video record store interactions
type VideoRepository interface {
	Create(ctx context.Context, video domain.Video) (uuid.UUID, error)
	List(ctx context.Context) ([]domain.Video, error)
	FindByPublicID(ctx context.Context, publicID string) (*domain.Video, error)
}

// VideoService is an interface to define video service
type VideoService interface {
	UploadVideo(ctx context.Context, upload domain.VideoUpload) (*domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
}
