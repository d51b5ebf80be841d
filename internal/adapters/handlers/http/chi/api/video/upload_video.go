package video

import (
	"clipshare/internal/adapters/handlers/http/response"
	"clipshare/internal/core/access"
	"clipshare/internal/core/domain"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// UploadVideo accepts multipart fields file, title, description and originalSize
func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	if _, ok := access.SessionFromContext(r.Context()); !ok {
		_ = response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)

	upload := domain.VideoUpload{}
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

		upload.Title = r.FormValue("title")
		upload.Description = r.FormValue("description")
		upload.OriginalSize, _ = strconv.ParseInt(r.FormValue("originalSize"), 10, 64)

		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			upload.File = file
			upload.FileName = header.Filename
		}
	}

	record, err := h.videoService.UploadVideo(r.Context(), upload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := response.WriteJSON(w, http.StatusOK, record); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		_ = response.Error(w, http.StatusBadRequest, response.ValidationMessage(validationErrs))
	case errors.Is(err, domain.ErrInvalidInput):
		_ = response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrMissingFile):
		_ = response.Error(w, http.StatusBadRequest, "File not found")
	case errors.Is(err, domain.ErrFileSizeTooBig):
		_ = response.Error(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File size too large. Maximum size is %dMB.", h.maxSize>>20))
	case errors.Is(err, domain.ErrInvalidFileType):
		h.logger.Warn("rejected upload", "error", err)
		_ = response.Error(w, http.StatusUnsupportedMediaType, "Unsupported file type, expected a video")
	case errors.Is(err, domain.ErrMediaNotConfigured):
		h.logger.Error("media service is not configured")
		_ = response.Error(w, http.StatusInternalServerError, "Media service credentials not found")
	case errors.Is(err, domain.ErrPersistence):
		h.logger.Error("error saving video", "error", err)
		_ = response.Error(w, http.StatusInternalServerError, "Error saving video")
	default:
		h.logger.Error("error uploading video", "error", err)
		_ = response.Error(w, http.StatusInternalServerError, "Error uploading video")
	}
}
