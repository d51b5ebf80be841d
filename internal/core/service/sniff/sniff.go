// Package sniff validates upload content by its leading bytes and enforces size ceilings on streams.
package sniff

import (
	"bytes"
	"clipshare/internal/core/domain"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Family is the top level MIME type an upload must belong to
type Family string

const (
	FamilyImage Family = "image"
	FamilyVideo Family = "video"
)

const headerSize = 3072

// AllowedMimeTypes lists the accepted media types per family
var AllowedMimeTypes = map[Family][]string{
	FamilyImage: {
		"image/jpeg",
		"image/png",
		"image/webp",
		"image/gif",
		"image/bmp",
		"image/tiff",
		"image/heic",
		"image/heif",
		"image/avif",
	},
	FamilyVideo: {
		"video/mp4",
		"video/webm",
		"video/quicktime",
		"video/x-msvideo",
		"video/x-matroska",
		"video/ogg",
		"video/3gpp",
		"video/mpeg",
	},
}

// Detect reads the head of r and checks it against family. The returned reader replays the
// consumed head followed by the rest of r.
func Detect(r io.Reader, family Family) (io.Reader, string, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", err
	}
	head = head[:n]
	if n == 0 {
		return nil, "", fmt.Errorf("%w: empty file", domain.ErrMissingFile)
	}

	detected := mimetype.Detect(head)
	mimeType := detected.String()
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}

	if !allowed(family, detected) {
		return nil, mimeType, fmt.Errorf("%w: %s is not an accepted %s type", domain.ErrInvalidFileType, mimeType, family)
	}
	return io.MultiReader(bytes.NewReader(head), r), mimeType, nil
}

func allowed(family Family, detected *mimetype.MIME) bool {
	for _, candidate := range AllowedMimeTypes[family] {
		if detected.Is(candidate) {
			return true
		}
	}
	return false
}

// LimitedReader fails with domain.ErrFileSizeTooBig once more than Max bytes were read.
type LimitedReader struct {
	R        io.Reader
	Max      int64
	read     int64
	exceeded bool
}

// NewLimitedReader returns LimitedReader
func NewLimitedReader(r io.Reader, max int64) *LimitedReader {
	return &LimitedReader{R: r, Max: max}
}

func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.exceeded {
		return 0, domain.ErrFileSizeTooBig
	}
	n, err := l.R.Read(p)
	l.read += int64(n)
	if l.read > l.Max {
		l.exceeded = true
		return n, domain.ErrFileSizeTooBig
	}
	return n, err
}

// Exceeded reports whether the ceiling was crossed
func (l *LimitedReader) Exceeded() bool {
	return l.exceeded
}

// BytesRead returns the number of bytes read so far
func (l *LimitedReader) BytesRead() int64 {
	return l.read
}
