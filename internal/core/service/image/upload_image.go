package image

import (
	"clipshare/internal/core/domain"
	"clipshare/internal/core/service/sniff"
	"context"
	"errors"
	"fmt"
)

// UploadImage stores the image in the media service and returns its publicId. Nothing is persisted locally.
func (i *imageService) UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error) {
	if !i.gateway.Configured() {
		return "", domain.ErrMediaNotConfigured
	}
	if upload.File == nil {
		return "", domain.ErrMissingFile
	}

	limited := sniff.NewLimitedReader(upload.File, i.cfg.ImageMaxSize)
	body, mimeType, err := sniff.Detect(limited, sniff.FamilyImage)
	if err != nil {
		return "", err
	}

	asset, err := i.gateway.Upload(ctx, body, upload.FileName, domain.UploadOptions{
		Folder:    i.cfg.ImageFolder,
		AssetType: domain.AssetTypeImage,
	})
	if limited.Exceeded() {
		return "", fmt.Errorf("%w: body exceeds %d bytes", domain.ErrFileSizeTooBig, i.cfg.ImageMaxSize)
	}
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotConfigured) || errors.Is(err, domain.ErrUpstream) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	i.logger.Info("image uploaded", "public_id", asset.PublicID, "mime_type", mimeType, "bytes", limited.BytesRead())
	return asset.PublicID, nil
}
