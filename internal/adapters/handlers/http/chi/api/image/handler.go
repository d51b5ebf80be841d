package image

import (
	"clipshare/internal/core/port"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

const multipartMemory = 8 << 20

const multipartOverhead = 64 << 10

// Handler serves the image API routes
type Handler struct {
	imageService port.ImageService
	maxSize      int64
	logger       *slog.Logger
}

// NewImageHandler creates Handler
func NewImageHandler(service port.ImageService, maxSize int64, logger *slog.Logger) *Handler {
	return &Handler{
		imageService: service,
		maxSize:      maxSize,
		logger:       logger,
	}
}

// Register mounts the routes on an /api router
func (h *Handler) Register(router chi.Router) {
	router.Post("/image-upload", h.UploadImage)
}
