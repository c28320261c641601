package feed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSource fetches feed documents from an object storage bucket. Used when
// the ERP drops export files into a bucket instead of exposing an endpoint.
type BucketSource struct {
	client storage.Client
	bucket string
}

// NewBucketSource creates a bucket-backed feed source.
func NewBucketSource(client storage.Client, bucket string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket}
}

// Fetch downloads the object at path (leading slash stripped) from the bucket.
func (s *BucketSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	object := strings.TrimPrefix(path, "/")

	reader, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch feed object %s/%s: %w", s.bucket, object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read feed object %s/%s: %w", s.bucket, object, err)
	}
	return data, nil
}
