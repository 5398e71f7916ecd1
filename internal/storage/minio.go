// Package storage uploads run artifacts (imagery, GeoJSON) to S3-compatible
// object storage. A failed upload is fatal for the run: the report cannot be
// assembled without its URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
)

// Uploader stores a payload under a path and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, objectPath, contentType string) (string, error)
}

// StorageError marks an upload failure; it surfaces to the caller.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage upload %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// MinioUploader stores objects in a single bucket.
type MinioUploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewMinioUploader connects to the endpoint and ensures the bucket exists.
func NewMinioUploader(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioUploader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	return &MinioUploader{client: client, bucket: bucket, endpoint: endpoint, useSSL: useSSL}, nil
}

// Upload stores the payload and returns its public URL.
func (u *MinioUploader) Upload(ctx context.Context, data []byte, objectPath, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, u.bucket, objectPath,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", &StorageError{Path: objectPath, Err: err}
	}

	scheme := "http"
	if u.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, objectPath), nil
}

// ObjectPath builds the storage path convention
// {district}/{analysisType}/{timestamp}/{name}.{ext}.
func ObjectPath(district string, t models.AnalysisType, ts time.Time, name, ext string) string {
	return fmt.Sprintf("%s/%s/%d/%s.%s", slug(district), t, ts.Unix(), name, ext)
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ', r == '/', r == '_':
			out = append(out, '-')
		}
	}
	return string(out)
}
