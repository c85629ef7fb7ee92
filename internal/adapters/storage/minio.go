// Package storage keeps career application attachments in an S3-compatible
// bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/config"
	"github.com/plazasales/storefront/internal/ports"
)

const serviceName = "object-storage"

// ErrDisabled is returned by every operation of a store built from a
// disabled configuration.
var ErrDisabled = errors.New("object storage is disabled")

var (
	_ ports.FileStore      = (*MinIO)(nil)
	_ ports.OptionalChecker = (*MinIO)(nil)
)

// MinIO implements ports.FileStore over minio-go. It is safe for concurrent use.
type MinIO struct {
	client *minio.Client
	bucket string
	region string
}

// NewMinIO creates the store without contacting the server; call
// EnsureBucket once at startup.
func NewMinIO(cfg config.StorageConfig) (*MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("storage endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinIO{client: cli, bucket: cfg.Bucket, region: cfg.Region}, nil
}

// EnsureBucket creates the bucket when it does not exist.
func (m *MinIO) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", m.bucket, err)
	}

	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: m.region}); err != nil {
		return fmt.Errorf("create bucket %q: %w", m.bucket, err)
	}

	return nil
}

// Put uploads r as key. size may be -1 when unknown.
func (m *MinIO) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (*ports.StoredObject, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, fmt.Sprintf("put %s: %v", key, err))
	}

	return &ports.StoredObject{Key: key, Size: info.Size}, nil
}

// Delete removes key. Removing a missing key is not an error.
func (m *MinIO) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("delete %s: %v", key, err))
	}

	return nil
}

// PresignGet returns a pre-signed GET URL valid for ttl.
func (m *MinIO) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, ttl, url.Values{})
	if err != nil {
		return "", domain.NewUnavailableError(serviceName, fmt.Sprintf("presign %s: %v", key, err))
	}

	return u.String(), nil
}

// Name implements ports.HealthChecker.
func (m *MinIO) Name() string { return serviceName }

// Check implements ports.HealthChecker.
func (m *MinIO) Check(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("bucket %q does not exist", m.bucket)
	}

	return nil
}

// Optional implements ports.OptionalChecker. Pages render without storage.
func (m *MinIO) Optional() bool { return true }

// Disabled is the store used when storage is not configured. Applications
// fail with ErrUnavailable; everything else keeps working.
type Disabled struct{}

var _ ports.FileStore = Disabled{}

func (Disabled) Put(context.Context, string, io.Reader, int64, string) (*ports.StoredObject, error) {
	return nil, domain.NewUnavailableError(serviceName, ErrDisabled.Error())
}

func (Disabled) Delete(context.Context, string) error {
	return nil
}

func (Disabled) PresignGet(context.Context, string, time.Duration) (string, error) {
	return "", domain.NewUnavailableError(serviceName, ErrDisabled.Error())
}
