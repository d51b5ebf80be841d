package video

import (
	"clipshare/internal/core/port"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart body kept in memory, the rest spills to temp files
const multipartMemory = 8 << 20

// multipartOverhead leaves room for form fields and boundaries above the file ceiling
const multipartOverhead = 1 << 20

// Handler serves the video API routes
type Handler struct {
	videoService port.VideoService
	maxSize      int64
	logger       *slog.Logger
}

// NewVideoHandler creates Handler
func NewVideoHandler(service port.VideoService, maxSize int64, logger *slog.Logger) *Handler {
	return &Handler{
		videoService: service,
		maxSize:      maxSize,
		logger:       logger,
	}
}

// Register mounts the routes on an /api router
func (h *Handler) Register(router chi.Router) {
	router.Get("/video", h.ListVideos)
	router.Post("/video-upload", h.UploadVideo)
}
