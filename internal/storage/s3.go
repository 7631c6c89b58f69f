package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cycleparking/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const geoJSONContentType = "application/geo+json"

// objectStore is the subset of *minio.Client the publisher uses.
type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// S3Service publishes the collection to S3-compatible storage.
type S3Service struct {
	client objectStore
	bucket string
	logger *zap.Logger
}

// NewS3Service connects to the MinIO endpoint from cfg.
func NewS3Service(cfg config.MinioConfig, logger *zap.Logger) (*S3Service, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("missing one or more required settings: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.Info("Connected to MinIO endpoint", zap.String("endpoint", cfg.Endpoint), zap.String("bucket", cfg.Bucket))
	return &S3Service{client: minioClient, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *S3Service) Bucket() string {
	return s.bucket
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *S3Service) EnsureBucket(ctx context.Context, location string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: location}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	return nil
}

// Put stores a GeoJSON document under key, overwriting any previous version.
func (s *S3Service) Put(ctx context.Context, key string, data []byte, metadata map[string]string) (minio.UploadInfo, error) {
	info, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: geoJSONContentType, UserMetadata: metadata},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to store object %s in S3: %w", key, err)
	}

	s.logger.Info("Stored collection", zap.String("bucket", s.bucket), zap.String("key", key), zap.Int64("size", info.Size))
	return info, nil
}
