package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"tally/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

func newTestStorage(t *testing.T) (service.BlobStorage, *blob.Bucket) {
	t.Helper()

	base, err := url.Parse("http://localhost:8080/blobs")
	require.NoError(t, err)

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{
		URLSigner: fileblob.NewURLSignerHMAC(base, []byte("test-signing-secret")),
	})
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	return NewBucketStorage(bucket, 15*time.Minute), bucket
}

func TestBucketStorage_CreateUploadTarget(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	target, err := storage.CreateUploadTarget(ctx)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.NotEmpty(t, target.BlobID)
	assert.NotEmpty(t, target.URL)

	// Each call mints a fresh blob id.
	second, err := storage.CreateUploadTarget(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, target.BlobID, second.BlobID)
}

func TestBucketStorage_ResolveURL_ExistingBlob(t *testing.T) {
	storage, bucket := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, "receipt-image-1", []byte("fake image bytes"), nil))

	resolved, err := storage.ResolveURL(ctx, "receipt-image-1")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.NotEmpty(t, *resolved)
}

func TestBucketStorage_ResolveURL_MissingBlobIsNil(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	resolved, err := storage.ResolveURL(ctx, "never-uploaded")
	require.NoError(t, err)
	assert.Nil(t, resolved)
}
