package service

import "context"

// UploadTarget is a one-time destination for a client-side image upload.
// The client PUTs the image bytes to URL; BlobID is the stable reference
// it then attaches to the receipt.
type UploadTarget struct {
	BlobID string `json:"blob_id"`
	URL    string `json:"url"`
}

// BlobStorage defines the interface for the object store holding receipt images.
type BlobStorage interface {
	// CreateUploadTarget mints a fresh blob id and a signed, time-limited
	// URL the client can upload to.
	CreateUploadTarget(ctx context.Context) (*UploadTarget, error)

	// ResolveURL returns a retrievable URL for a stored blob, or nil when
	// the blob no longer exists. A missing blob is not an error.
	ResolveURL(ctx context.Context, blobID string) (*string, error)
}
