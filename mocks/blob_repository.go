package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type BlobRepository struct {
	mock.Mock
}

func (r *BlobRepository) GetBlob(ctx context.Context, bucketUrl, key string) (io.ReadCloser, error) {
	args := r.Called(ctx, bucketUrl, key)
	reader, _ := args.Get(0).(io.ReadCloser)
	return reader, args.Error(1)
}

func (r *BlobRepository) OpenStream(ctx context.Context, bucketUrl, key string) (io.WriteCloser, error) {
	args := r.Called(ctx, bucketUrl, key)
	writer, _ := args.Get(0).(io.WriteCloser)
	return writer, args.Error(1)
}

func (r *BlobRepository) DeleteFile(ctx context.Context, bucketUrl, key string) error {
	args := r.Called(ctx, bucketUrl, key)
	return args.Error(0)
}

func (r *BlobRepository) GenerateSignedUrl(ctx context.Context, bucketUrl, key string) (string, error) {
	args := r.Called(ctx, bucketUrl, key)
	return args.String(0), args.Error(1)
}
