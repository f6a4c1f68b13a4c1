// Package storage removes orphaned artwork image objects. Uploads happen
// in the client-facing app; this side only cleans up after deletions.
package storage

import (
	"context"

	"github.com/minio/minio-go/v7"
)

type MediaStore interface {
	Remove(ctx context.Context, key string) error
}

type minioStore struct {
	client *minio.Client
	bucket string
}

func NewMinIOStore(client *minio.Client, bucket string) MediaStore {
	return &minioStore{client: client, bucket: bucket}
}

func (s *minioStore) Remove(ctx context.Context, key string) error {
	if s.client == nil {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
