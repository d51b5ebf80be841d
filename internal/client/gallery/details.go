package gallery

import (
	"clipshare/internal/core/domain"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

const PreviewPlaceholder = "Preview not available"

// Details is the text of a card. Compression is empty when the sizes cannot produce a percentage.
type Details struct {
	Title          string
	Description    string
	Duration       string
	Uploaded       string
	OriginalSize   string
	CompressedSize string
	Compression    string
}

func newDetails(v domain.Video, now time.Time) Details {
	d := Details{
		Title:          v.Title,
		Description:    v.Description,
		Duration:       domain.FormatDuration(v.Duration),
		OriginalSize:   formatSize(v.OriginalSize),
		CompressedSize: formatSize(v.CompressedSize),
	}
	if !v.CreatedAt.IsZero() {
		d.Uploaded = "Uploaded " + humanize.RelTime(v.CreatedAt, now, "ago", "from now")
	}
	if pct, err := domain.CompressionPercentage(v.OriginalSize, v.CompressedSize); err == nil {
		d.Compression = strconv.Itoa(pct) + "%"
	}
	return d
}

func formatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}
