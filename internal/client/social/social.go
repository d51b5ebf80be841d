// Package social drives the social image crop flow: upload once, preview any preset, download.
package social

import (
	"clipshare/internal/client/platform"
	"clipshare/internal/core/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
)

const UploadErrorMessage = "Failed to upload image. Please try again."

// Status is the state of a Flow
type Status int

const (
	Idle Status = iota
	Uploading
	Transforming
	Ready
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Uploading:
		return "uploading"
	case Transforming:
		return "transforming"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Uploader stores an image and returns its reference token
type Uploader interface {
	UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error)
}

// Fetcher downloads a rendition
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// RenditionURLBuilder derives delivery URLs, no I/O
type RenditionURLBuilder interface {
	RenditionURL(publicID string, transform domain.Transform) string
}

// Flow is not safe for concurrent use
type Flow struct {
	uploader Uploader
	fetcher  Fetcher
	urls     RenditionURLBuilder
	saver    platform.Saver
	logger   *slog.Logger

	status   Status
	message  string
	publicID string
	format   domain.SocialFormat
	url      string
}

// New returns an Idle flow with the default preset selected
func New(uploader Uploader, fetcher Fetcher, urls RenditionURLBuilder, saver platform.Saver, logger *slog.Logger) *Flow {
	format, _ := domain.LookupSocialFormat(domain.DefaultSocialFormat)
	return &Flow{
		uploader: uploader,
		fetcher:  fetcher,
		urls:     urls,
		saver:    saver,
		logger:   logger,
		status:   Idle,
		format:   format,
	}
}

// Upload sends the image. On success the rendition for the selected preset starts transforming.
// On failure the flow is Idle with UploadErrorMessage and any previous image is dropped.
func (f *Flow) Upload(ctx context.Context, fileName string, r io.Reader) error {
	f.status = Uploading
	f.message = ""

	publicID, err := f.uploader.UploadImage(ctx, domain.ImageUpload{File: r, FileName: fileName})
	if err != nil {
		f.logger.Error("image upload failed", "file_name", fileName, "error", err)
		f.status = Idle
		f.message = UploadErrorMessage
		f.publicID = ""
		f.url = ""
		return err
	}

	f.publicID = publicID
	f.transform()
	return nil
}

// SelectPreset switches the preset. It never uploads again.
func (f *Flow) SelectPreset(name string) error {
	format, err := domain.LookupSocialFormat(name)
	if err != nil {
		return err
	}
	f.format = format
	if f.publicID != "" {
		f.transform()
	}
	return nil
}

// RenditionLoaded marks the current rendition as displayed
func (f *Flow) RenditionLoaded() {
	if f.status == Transforming {
		f.status = Ready
	}
}

// Render loads the current rendition over HTTP and marks it loaded, for runtimes without an image element
func (f *Flow) Render(ctx context.Context) error {
	if f.publicID == "" {
		return domain.ErrNotReady
	}
	url := f.url
	if _, err := f.fetcher.FetchBytes(ctx, url); err != nil {
		return fmt.Errorf("failed to render %s: %w", url, err)
	}
	// the preset may have changed while fetching
	if url == f.url {
		f.RenditionLoaded()
	}
	return nil
}

// Download saves the ready rendition as "<preset name>.png"
func (f *Flow) Download(ctx context.Context) error {
	if f.status != Ready {
		return domain.ErrNotReady
	}

	data, err := f.fetcher.FetchBytes(ctx, f.url)
	if err != nil {
		return fmt.Errorf("failed to fetch rendition: %w", err)
	}
	return f.saver.SaveBytes(ctx, data, f.format.FileName())
}

func (f *Flow) transform() {
	f.url = f.urls.RenditionURL(f.publicID, f.format.Transform())
	f.status = Transforming
}

func (f *Flow) Status() Status {
	return f.status
}

// Message is the error shown after a failed upload
func (f *Flow) Message() string {
	return f.message
}

func (f *Flow) PublicID() string {
	return f.publicID
}

func (f *Flow) Format() domain.SocialFormat {
	return f.format
}

// RenditionURL is empty until an image is uploaded
func (f *Flow) RenditionURL() string {
	return f.url
}
