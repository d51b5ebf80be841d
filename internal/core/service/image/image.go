package image

import (
	"clipshare/internal/config"
	"clipshare/internal/core/port"
	"log/slog"
)

type imageService struct {
	gateway port.MediaGateway
	cfg     config.UploadConfig
	logger  *slog.Logger
}

// NewImageService creates a new image service
func NewImageService(gateway port.MediaGateway, cfg config.UploadConfig, logger *slog.Logger) port.ImageService {
	return &imageService{
		gateway: gateway,
		cfg:     cfg,
		logger:  logger,
	}
}
