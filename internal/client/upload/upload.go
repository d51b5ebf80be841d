// Package upload submits the video upload form.
package upload

import (
	"clipshare/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultMaxFileSize = 70 << 20

	MissingFileMessage  = "Please select a file to upload."
	MissingTitleMessage = "Please enter a title."
	FailedMessage       = "An error occurred while uploading the video. Please try again."
)

// Error carries the message shown above the form
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Uploader posts a video
type Uploader interface {
	UploadVideo(ctx context.Context, upload domain.VideoUpload) (*domain.Video, error)
}

// File is the selected file. Size is the size the user's system reports for it.
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Form is the upload form content
type Form struct {
	File        *File
	Title       string `validate:"required,max=255"`
	Description string `validate:"max=5000"`
}

type Submitter struct {
	uploader Uploader
	maxSize  int64
	validate *validator.Validate
	logger   *slog.Logger
}

// NewSubmitter returns Submitter. A maxSize of 0 means DefaultMaxFileSize.
func NewSubmitter(uploader Uploader, maxSize int64, logger *slog.Logger) *Submitter {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &Submitter{
		uploader: uploader,
		maxSize:  maxSize,
		validate: validator.New(),
		logger:   logger,
	}
}

// Submit checks the form locally then posts it with originalSize set to the file size.
// Nothing is sent when a local check fails.
func (s *Submitter) Submit(ctx context.Context, form Form) (*domain.Video, error) {
	if form.File == nil || form.File.Reader == nil {
		return nil, &Error{Message: MissingFileMessage, Err: domain.ErrMissingFile}
	}
	if form.File.Size > s.maxSize {
		return nil, &Error{
			Message: fmt.Sprintf("File size too large. Maximum size is %dMB.", s.maxSize>>20),
			Err:     domain.ErrFileSizeTooBig,
		}
	}

	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	if err := s.validate.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && validationErrs[0].Field() == "Title" {
			return nil, &Error{Message: MissingTitleMessage, Err: fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)}
		}
		return nil, &Error{Message: FailedMessage, Err: fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)}
	}

	video, err := s.uploader.UploadVideo(ctx, domain.VideoUpload{
		File:         form.File.Reader,
		FileName:     form.File.Name,
		Title:        form.Title,
		Description:  form.Description,
		OriginalSize: form.File.Size,
	})
	if err != nil {
		s.logger.Error("video upload failed", "file_name", form.File.Name, "error", err)
		return nil, &Error{Message: FailedMessage, Err: err}
	}
	return video, nil
}
