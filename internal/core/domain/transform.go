package domain

import "fmt"

// AssetType is the media service resource type
type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
)

// PreviewClip trims a video into a short muted loop
type PreviewClip struct {
	Duration           int
	MaxSegments        int
	MinSegmentDuration int
}

// Directive renders the clip as a media service effect
func (p PreviewClip) Directive() string {
	return fmt.Sprintf("e_preview:duration_%d:max_seg_%d:min_seg_dur_%d", p.Duration, p.MaxSegments, p.MinSegmentDuration)
}

// Transform describes a rendition of a stored asset
type Transform struct {
	AssetType   AssetType
	Crop        string
	Width       int
	Height      int
	AspectRatio string
	Gravity     string
	Quality     string
	Format      string
	Preview     *PreviewClip
}

const (
	thumbnailWidth  = 400
	thumbnailHeight = 225
)

// ThumbnailTransform is the still image shown on a gallery card.
func ThumbnailTransform() Transform {
	return Transform{
		AssetType: AssetTypeVideo,
		Crop:      "fill",
		Width:     thumbnailWidth,
		Height:    thumbnailHeight,
		Gravity:   "auto",
		Quality:   "auto",
		Format:    "jpg",
	}
}

// FullResolutionTransform is the downloadable rendition of a video.
func FullResolutionTransform() Transform {
	return Transform{
		AssetType: AssetTypeVideo,
		Crop:      "limit",
		Width:     1920,
		Height:    1080,
		Format:    "mp4",
	}
}

// PreviewClipTransform is the short muted loop played on hover.
func PreviewClipTransform() Transform {
	return Transform{
		AssetType: AssetTypeVideo,
		Crop:      "fill",
		Width:     thumbnailWidth,
		Height:    thumbnailHeight,
		Format:    "mp4",
		Preview: &PreviewClip{
			Duration:           15,
			MaxSegments:        9,
			MinSegmentDuration: 1,
		},
	}
}
