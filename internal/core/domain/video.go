package domain

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

// Video is a processed video stored in the media service and referenced by PublicID.
type Video struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PublicID       string    `json:"publicId"`
	OriginalSize   int64     `json:"originalSize"`
	CompressedSize int64     `json:"compressedSize"`
	Duration       float64   `json:"duration"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// HasValidSizes reports whether the record can be shown with a compression ratio.
func (v Video) HasValidSizes() bool {
	return v.OriginalSize > 0 && v.CompressedSize > 0
}

// VideoUpload is an incoming video upload, never persisted as such.
type VideoUpload struct {
	File         io.Reader
	FileName     string
	Title        string `validate:"required,max=255"`
	Description  string `validate:"max=5000"`
	OriginalSize int64  `validate:"gte=1"`
}

// ImageUpload is an incoming image upload for the social crop flow.
type ImageUpload struct {
	File     io.Reader
	FileName string
}

// CompressionPercentage returns round((1 - compressed/original) * 100).
func CompressionPercentage(originalSize, compressedSize int64) (int, error) {
	if originalSize <= 0 || compressedSize <= 0 {
		return 0, fmt.Errorf("%w: original=%d compressed=%d", ErrInvalidSize, originalSize, compressedSize)
	}
	ratio := 1 - float64(compressedSize)/float64(originalSize)
	return int(math.Round(ratio * 100)), nil
}

// FormatDuration renders seconds as m:ss, 125 -> "2:05".
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(math.Floor(seconds / 60))
	remaining := int(math.Round(math.Mod(seconds, 60)))
	if remaining == 60 {
		minutes++
		remaining = 0
	}
	return fmt.Sprintf("%d:%02d", minutes, remaining)
}
