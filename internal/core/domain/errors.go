package domain

import "errors"

// ErrUnauthorized is returned when the caller has no valid session
var ErrUnauthorized = errors.New("unauthorized")

// ErrMissingFile is returned when a multipart upload carries no file
var ErrMissingFile = errors.New("file not found")

// ErrInvalidInput is returned when a required form field is missing or malformed
var ErrInvalidInput = errors.New("invalid input")

// ErrFileSizeTooBig is returned when an upload exceeds its ceiling
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrInvalidFileType is returned when the sniffed content type is not accepted
var ErrInvalidFileType = errors.New("invalid file type")

// ErrMediaNotConfigured is returned when media service credentials are missing
var ErrMediaNotConfigured = errors.New("media service credentials not found")

// ErrUpstream is returned when the media service rejects or fails a call
var ErrUpstream = errors.New("media service error")

// ErrPersistence is returned when the record store write fails after a successful upload
var ErrPersistence = errors.New("persistence error")

// ErrVideoNotFound is returned when no video record matches
var ErrVideoNotFound = errors.New("video not found")

// ErrInvalidSize is returned when a size cannot be used to compute a compression ratio
var ErrInvalidSize = errors.New("invalid size")

// ErrUnexpectedFormat is returned when the video listing payload is not an array
var ErrUnexpectedFormat = errors.New("unexpected response format")

// ErrPreviewUnavailable is returned when a preview rendition cannot be loaded
var ErrPreviewUnavailable = errors.New("preview not available")

// ErrUnknownFormat is returned for a social format name outside the catalog
var ErrUnknownFormat = errors.New("unknown social format")

// ErrNotReady is returned when an action needs a rendition that is not loaded yet
var ErrNotReady = errors.New("rendition not ready")

// ErrAlreadyExists is returned when a record with the same public id exists
var ErrAlreadyExists = errors.New("already exists")
