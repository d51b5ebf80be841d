package video

import (
	"clipshare/internal/adapters/handlers/http/response"
	"clipshare/internal/core/domain"
	"net/http"
)

// ListVideos answers with a JSON array of every displayable video
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoService.ListVideos(r.Context())
	if err != nil {
		h.logger.Error("error listing videos", "error", err)
		_ = response.Error(w, http.StatusInternalServerError, "Error fetching videos")
		return
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	if err := response.WriteJSON(w, http.StatusOK, videos); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
