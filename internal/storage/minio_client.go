package storage

import (
	"context"
	"employabilityWeb/internal/config"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// CertificateStorage hands out download links for course certificates.
type CertificateStorage interface {
	CertificateURL(ctx context.Context, objectKey, fileName string) (string, error)
}

type objectPresigner interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

type MinIOClient struct {
	client objectPresigner
	bucket string
	expiry time.Duration
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	return newMinIOClient(client, cfg.MinIO.BucketName, cfg.MinIO.URLExpiry), nil
}

func newMinIOClient(client objectPresigner, bucket string, expiry time.Duration) *MinIOClient {
	// presigned URLs are capped at 7 days by S3
	if expiry <= 0 || expiry > 7*24*time.Hour {
		expiry = 24 * time.Hour
	}
	return &MinIOClient{client: client, bucket: bucket, expiry: expiry}
}

// CertificateURL presigns a GET for objectKey. objectKey may be a bare key,
// "bucket/key" or a full URL as stored by the backend.
func (m *MinIOClient) CertificateURL(ctx context.Context, objectKey, fileName string) (string, error) {
	key := normalizeObjectKey(objectKey, m.bucket)
	if key == "" {
		return "", fmt.Errorf("empty certificate object key")
	}

	params := url.Values{}
	if fileName == "" {
		fileName = path.Base(key)
	}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", fileName))

	signed, err := m.client.PresignedGetObject(ctx, m.bucket, key, m.expiry, params)
	if err != nil {
		return "", fmt.Errorf("presign certificate %s: %w", key, err)
	}
	return signed.String(), nil
}

func normalizeObjectKey(objectKey, bucket string) string {
	key := strings.TrimSpace(objectKey)
	if parsed, err := url.Parse(key); err == nil && parsed.Scheme != "" {
		key = parsed.Path
	}
	key = strings.TrimPrefix(key, "/")
	key = strings.TrimPrefix(key, bucket+"/")
	return key
}
