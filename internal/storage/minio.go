package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/romch007/youtube/internal/config"
	apperrors "github.com/romch007/youtube/internal/errors"
)

// MinioStore stores objects in a single MinIO/S3 bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		Secure: cfg.S3.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create object storage client: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.S3.Bucket}, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Called once
// at process start; failure aborts startup.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("cannot check if bucket exists: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("cannot create bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindStorageUnavailable, "cannot store object", err)
	}
	return nil
}
