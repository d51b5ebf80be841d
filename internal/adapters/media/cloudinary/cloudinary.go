package cloudinary

import (
	"clipshare/internal/config"
	"clipshare/internal/core/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	sdkconfig "github.com/cloudinary/cloudinary-go/v2/config"
)

// Adapter is an adapter for the media service upload and admin API
type Adapter struct {
	URLBuilder
	cld    *cloudinary.Cloudinary
	config config.MediaConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter. Uploads go to cfg.APIBaseURL and are bounded by cfg.Timeout.
// Missing credentials are not an error here, they surface on the first Upload or Destroy.
func NewAdapter(cfg config.MediaConfig, logger *slog.Logger) (*Adapter, error) {
	conf, err := sdkconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure media service: %w", err)
	}
	conf.API.UploadPrefix = strings.TrimRight(cfg.APIBaseURL, "/")
	conf.API.UploadTimeout = int64(cfg.Timeout / time.Second)

	cld, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("failed to configure media service: %w", err)
	}
	cld.Upload.Client.Timeout = cfg.Timeout

	return &Adapter{
		URLBuilder: newURLBuilder(cfg.DeliveryBaseURL, cld),
		cld:        cld,
		config:     cfg,
		logger:     logger,
	}, nil
}

// Configured reports whether credentials for the upload and admin API are present
func (a *Adapter) Configured() bool {
	return a.config.Configured()
}

// Upload streams r to the media service as a signed upload
func (a *Adapter) Upload(ctx context.Context, r io.Reader, fileName string, opts domain.UploadOptions) (*domain.UploadedAsset, error) {
	if !a.Configured() {
		return nil, domain.ErrMediaNotConfigured
	}
	assetType := opts.AssetType
	if assetType == "" {
		assetType = domain.AssetTypeImage
	}

	res, err := a.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         opts.Folder,
		Transformation: opts.Transformation,
		ResourceType:   string(assetType),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty upload response", domain.ErrUpstream)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, res.Error.Message)
	}
	if res.PublicID == "" {
		return nil, fmt.Errorf("%w: upload response has no public_id", domain.ErrUpstream)
	}

	a.logger.Debug("asset uploaded", "file_name", fileName, "public_id", res.PublicID, "bytes", res.Bytes, "asset_type", assetType)

	return &domain.UploadedAsset{
		PublicID:  res.PublicID,
		Bytes:     int64(res.Bytes),
		Duration:  durationOf(res.Response),
		Format:    res.Format,
		Width:     int(res.Width),
		Height:    int(res.Height),
		SecureURL: res.SecureURL,
	}, nil
}

// Destroy removes an asset. An asset that is already gone counts as destroyed.
func (a *Adapter) Destroy(ctx context.Context, publicID string, assetType domain.AssetType) error {
	if !a.Configured() {
		return domain.ErrMediaNotConfigured
	}
	if assetType == "" {
		assetType = domain.AssetTypeImage
	}

	res, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: string(assetType),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	if res == nil {
		return fmt.Errorf("%w: empty destroy response", domain.ErrUpstream)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("%w: %s", domain.ErrUpstream, res.Error.Message)
	}

	switch res.Result {
	case "ok", "not found":
		a.logger.Debug("asset destroyed", "public_id", publicID, "result", res.Result)
		return nil
	default:
		return fmt.Errorf("%w: destroy %s returned %q", domain.ErrUpstream, publicID, res.Result)
	}
}

// durationOf reads the video duration, which the typed upload result does not carry
func durationOf(raw interface{}) float64 {
	var fields map[string]interface{}
	switch v := raw.(type) {
	case map[string]interface{}:
		fields = v
	case *map[string]interface{}:
		if v != nil {
			fields = *v
		}
	case json.RawMessage:
		_ = json.Unmarshal(v, &fields)
	case []byte:
		_ = json.Unmarshal(v, &fields)
	}
	switch d := fields["duration"].(type) {
	case float64:
		return d
	case json.Number:
		f, _ := d.Float64()
		return f
	}
	return 0
}
