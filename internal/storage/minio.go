package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"lumiere-photography/internal/config"
)

type minioStore struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOStore(client *minio.Client, cfg *config.Config) BlobStore {
	return &minioStore{client: client, cfg: cfg}
}

func (s *minioStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.MinIOBucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return s.publicURL(key), nil
}

func (s *minioStore) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.cfg.MinIOBucket, key, minio.RemoveObjectOptions{})
}

func (s *minioStore) publicURL(key string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	// Keys are uuid-derived, so no escaping is needed.
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, key)
}
