package video

import (
	"clipshare/internal/core/domain"
	"clipshare/internal/core/service/sniff"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// orphanPublishTimeout bounds the announcement once the request context is gone
const orphanPublishTimeout = 5 * time.Second

// UploadVideo relays the upload to the media service and stores exactly one record for it.
// A record that cannot be stored leaves an orphaned remote asset, which is announced for reconciliation.
func (v *videoService) UploadVideo(ctx context.Context, upload domain.VideoUpload) (*domain.Video, error) {
	if !v.gateway.Configured() {
		return nil, domain.ErrMediaNotConfigured
	}
	if upload.File == nil {
		return nil, domain.ErrMissingFile
	}

	upload.Title = strings.TrimSpace(upload.Title)
	upload.Description = strings.TrimSpace(upload.Description)
	if err := v.validate.Struct(upload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if upload.OriginalSize > v.cfg.VideoMaxSize {
		return nil, fmt.Errorf("%w: declared %d bytes, max %d", domain.ErrFileSizeTooBig, upload.OriginalSize, v.cfg.VideoMaxSize)
	}

	limited := sniff.NewLimitedReader(upload.File, v.cfg.VideoMaxSize)
	body, mimeType, err := sniff.Detect(limited, sniff.FamilyVideo)
	if err != nil {
		return nil, err
	}

	asset, err := v.gateway.Upload(ctx, body, upload.FileName, domain.UploadOptions{
		Folder:         v.cfg.VideoFolder,
		AssetType:      domain.AssetTypeVideo,
		Transformation: incomingTransformation,
	})
	if limited.Exceeded() {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrFileSizeTooBig, v.cfg.VideoMaxSize)
	}
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotConfigured) || errors.Is(err, domain.ErrUpstream) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	if asset.Bytes <= 0 {
		v.announceOrphan(ctx, asset.PublicID, "media service reported no compressed size")
		return nil, fmt.Errorf("%w: no compressed size for %s", domain.ErrUpstream, asset.PublicID)
	}

	record := domain.Video{
		Title:          upload.Title,
		Description:    upload.Description,
		PublicID:       asset.PublicID,
		OriginalSize:   upload.OriginalSize,
		CompressedSize: asset.Bytes,
		Duration:       asset.Duration,
	}

	id, err := v.repo.Create(ctx, record)
	if err != nil {
		v.announceOrphan(ctx, asset.PublicID, err.Error())
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	now := v.now().UTC()
	record.ID = id
	record.CreatedAt = now
	record.UpdatedAt = now

	v.logger.Info("video uploaded",
		"id", id.String(),
		"public_id", asset.PublicID,
		"mime_type", mimeType,
		"original_size", record.OriginalSize,
		"compressed_size", record.CompressedSize,
	)
	return &record, nil
}

func (v *videoService) announceOrphan(ctx context.Context, publicID, reason string) {
	event := domain.OrphanedAsset{
		PublicID:   publicID,
		AssetType:  domain.AssetTypeVideo,
		Reason:     reason,
		OccurredAt: v.now().UTC(),
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), orphanPublishTimeout)
	defer cancel()
	if err := v.publisher.PublishOrphanedAsset(pubCtx, event); err != nil {
		v.logger.Error("failed to announce orphaned asset", "public_id", publicID, "error", err)
		return
	}
	v.logger.Warn("orphaned asset announced", "public_id", publicID, "reason", reason)
}
