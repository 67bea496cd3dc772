// Package storage implements the receipt-image blob store on top of
// gocloud.dev portable buckets (S3, GCS or local files/memory in dev).
package storage

import (
	"context"
	"log/slog"
	"time"

	"tally/config"
	"tally/internal/domain/lifecycle"
	"tally/internal/domain/service"
	"tally/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// bucketStorage implements the domain's BlobStorage interface.
type bucketStorage struct {
	bucket       *blob.Bucket
	signedURLTTL time.Duration
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and wires its lifecycle.
func New(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			accessible, err := bucket.IsAccessible(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to check bucket accessibility")
			}
			if !accessible {
				return errors.Errorf("bucket %s is not accessible", cfg.BucketURL)
			}

			params.Logger.Info("Blob bucket ready", slog.String("bucketUrl", cfg.BucketURL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, cfg.SignedURLTTL), nil
}

// NewBucketStorage wraps an already-open bucket. Split out so tests can
// back the storage with an in-memory bucket.
func NewBucketStorage(bucket *blob.Bucket, signedURLTTL time.Duration) service.BlobStorage {
	return &bucketStorage{
		bucket:       bucket,
		signedURLTTL: signedURLTTL,
	}
}

// CreateUploadTarget mints a fresh blob id and a signed PUT URL for it.
// The service never proxies image bytes; clients upload directly.
func (s *bucketStorage) CreateUploadTarget(ctx context.Context) (*service.UploadTarget, error) {
	blobID := uuid.New().String()

	url, err := s.bucket.SignedURL(ctx, blobID, &blob.SignedURLOptions{
		Method: "PUT",
		Expiry: s.signedURLTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign upload URL")
	}

	return &service.UploadTarget{
		BlobID: blobID,
		URL:    url,
	}, nil
}

// ResolveURL returns a signed GET URL for a stored blob, or nil when the
// blob no longer exists. Absence is a degraded state, not an error.
func (s *bucketStorage) ResolveURL(ctx context.Context, blobID string) (*string, error) {
	exists, err := s.bucket.Exists(ctx, blobID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check blob %s", blobID)
	}
	if !exists {
		return nil, nil
	}

	url, err := s.bucket.SignedURL(ctx, blobID, &blob.SignedURLOptions{
		Method: "GET",
		Expiry: s.signedURLTTL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign download URL for blob %s", blobID)
	}

	return &url, nil
}
