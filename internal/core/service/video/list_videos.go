package video

import (
	"clipshare/internal/core/domain"
	"context"
)

// ListVideos returns every record that can be displayed. Records with a zero size are skipped.
func (v *videoService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := v.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Video, 0, len(videos))
	for _, video := range videos {
		if !video.HasValidSizes() {
			v.logger.Warn("skipping video with invalid sizes",
				"id", video.ID.String(),
				"original_size", video.OriginalSize,
				"compressed_size", video.CompressedSize,
			)
			continue
		}
		visible = append(visible, video)
	}
	return visible, nil
}
