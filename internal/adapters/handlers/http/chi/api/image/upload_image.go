package image

import (
	"clipshare/internal/adapters/handlers/http/response"
	"clipshare/internal/core/access"
	"clipshare/internal/core/domain"
	"errors"
	"fmt"
	"net/http"
)

// UploadImageResponse carries the reference token of the stored image
type UploadImageResponse struct {
	PublicID string `json:"publicId"`
}

// UploadImage accepts a multipart file field and relays it to the media service
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := access.SessionFromContext(r.Context()); !ok {
		_ = response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)

	upload := domain.ImageUpload{}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, fmt.Errorf("%w: %w", domain.ErrFileSizeTooBig, err))
			return
		}
		h.logger.Warn("could not parse multipart form", "error", err)
	} else {
		defer func() {
			_ = r.MultipartForm.RemoveAll()
		}()

		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			upload.File = file
			upload.FileName = header.Filename
		}
	}

	publicID, err := h.imageService.UploadImage(r.Context(), upload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := response.WriteJSON(w, http.StatusOK, UploadImageResponse{PublicID: publicID}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		_ = response.Error(w, http.StatusBadRequest, "File not found")
	case errors.Is(err, domain.ErrFileSizeTooBig):
		_ = response.Error(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File size too large. Maximum size is %dMB.", h.maxSize>>20))
	case errors.Is(err, domain.ErrInvalidFileType):
		h.logger.Warn("rejected upload", "error", err)
		_ = response.Error(w, http.StatusUnsupportedMediaType, "Unsupported file type, expected an image")
	case errors.Is(err, domain.ErrMediaNotConfigured):
		h.logger.Error("media service is not configured")
		_ = response.Error(w, http.StatusInternalServerError, "Media service credentials not found")
	default:
		h.logger.Error("error uploading image", "error", err)
		_ = response.Error(w, http.StatusInternalServerError, "Error uploading image")
	}
}
