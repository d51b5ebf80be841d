package port

import (
	"clipshare/internal/core/domain"
	"context"
	"io"
)

// MediaGateway is an interface to define media service interactions
type MediaGateway interface {
	Configured() bool
	Upload(ctx context.Context, r io.Reader, fileName string, opts domain.UploadOptions) (*domain.UploadedAsset, error)
	Destroy(ctx context.Context, publicID string, assetType domain.AssetType) error
	RenditionURL(publicID string, transform domain.Transform) string
}
