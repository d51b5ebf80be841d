package domain

import "time"

// OrphanedAsset announces a remote asset that has no matching video record
type OrphanedAsset struct {
	PublicID   string    `json:"publicId"`
	AssetType  AssetType `json:"assetType"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

// UploadedAsset is what the media service reports after an upload
type UploadedAsset struct {
	PublicID  string
	Bytes     int64
	Duration  float64
	Format    string
	Width     int
	Height    int
	SecureURL string
}

// UploadOptions controls where and how an asset is stored
type UploadOptions struct {
	Folder         string
	AssetType      AssetType
	Transformation string
}
