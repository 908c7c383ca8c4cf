package repositories

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const signedUrlExpiry = 1 * time.Hour

// BlobRepository stores church cover photos, diocese logos and virtual tour
// panoramas. Upload resumability and image compression are handled upstream.
type BlobRepository interface {
	GetBlob(ctx context.Context, bucketUrl, key string) (io.ReadCloser, error)
	OpenStream(ctx context.Context, bucketUrl, key string) (io.WriteCloser, error)
	DeleteFile(ctx context.Context, bucketUrl, key string) error
	GenerateSignedUrl(ctx context.Context, bucketUrl, key string) (string, error)
}

type blobRepository struct {
	m       sync.Mutex
	buckets map[string]*blob.Bucket
}

func NewBlobRepository() BlobRepository {
	return &blobRepository{
		buckets: make(map[string]*blob.Bucket),
	}
}

func (repo *blobRepository) openBlobBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	repo.m.Lock()
	defer repo.m.Unlock()

	if bucket, ok := repo.buckets[bucketUrl]; ok {
		return bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, bucketUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketUrl)
	}
	repo.buckets[bucketUrl] = bucket
	return bucket, nil
}

func (repo *blobRepository) GetBlob(ctx context.Context, bucketUrl, key string) (io.ReadCloser, error) {
	bucket, err := repo.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return nil, err
	}
	reader, err := bucket.NewReader(ctx, key, nil)
	return reader, errors.Wrapf(err, "failed to read blob %s", key)
}

func (repo *blobRepository) OpenStream(ctx context.Context, bucketUrl, key string) (io.WriteCloser, error) {
	bucket, err := repo.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return nil, err
	}
	writer, err := bucket.NewWriter(ctx, key, nil)
	return writer, errors.Wrapf(err, "failed to open writer for blob %s", key)
}

func (repo *blobRepository) DeleteFile(ctx context.Context, bucketUrl, key string) error {
	bucket, err := repo.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return err
	}
	return errors.Wrapf(bucket.Delete(ctx, key), "failed to delete blob %s", key)
}

func (repo *blobRepository) GenerateSignedUrl(ctx context.Context, bucketUrl, key string) (string, error) {
	bucket, err := repo.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return "", err
	}
	url, err := bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: signedUrlExpiry})
	return url, errors.Wrapf(err, "failed to sign url for blob %s", key)
}
