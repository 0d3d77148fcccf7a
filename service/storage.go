package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/greeshma-prabhu/marketing-tool/config"
)

// StorageService stores rendered onepager documents in S3-compatible
// object storage and hands out presigned download URLs.
type StorageService struct {
	client *minio.Client
	bucket string
	config *config.StorageConfig
}

func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &StorageService{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *StorageService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// UploadDocument uploads a rendered HTML document under the given object key
func (s *StorageService) UploadDocument(ctx context.Context, objectKey string, document []byte) error {
	reader := bytes.NewReader(document)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, int64(len(document)), minio.PutObjectOptions{
		ContentType: "text/html; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to upload document: %w", err)
	}

	return nil
}

// GetPresignedURL generates a presigned URL for the object with expiration
func (s *StorageService) GetPresignedURL(ctx context.Context, objectKey string) (string, error) {
	expiry := time.Duration(s.config.ExpireDays) * 24 * time.Hour
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// DeleteDocument deletes a document from storage
func (s *StorageService) DeleteDocument(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// GetPublicURL returns a public URL for the object (if bucket policy allows)
func (s *StorageService) GetPublicURL(objectKey string) string {
	protocol := "http"
	if s.config.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.config.Endpoint, s.bucket, objectKey)
}
