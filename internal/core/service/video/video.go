package video

import (
	"clipshare/internal/config"
	"clipshare/internal/core/port"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
)

// incomingTransformation asks the media service to re-encode at automatic quality on ingest
const incomingTransformation = "q_auto"

type videoService struct {
	gateway   port.MediaGateway
	repo      port.VideoRepository
	publisher port.EventPublisher
	cfg       config.UploadConfig
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

// NewVideoService creates a new video service
func NewVideoService(gateway port.MediaGateway, repo port.VideoRepository, publisher port.EventPublisher, cfg config.UploadConfig, logger *slog.Logger) port.VideoService {
	return &videoService{
		gateway:   gateway,
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}
