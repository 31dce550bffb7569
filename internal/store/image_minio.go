package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
)

// minioImageStorage keeps images as objects in a MinIO/S3 bucket.
type minioImageStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinIOImageStorage connects to the configured endpoint and makes sure
// the bucket exists.
func NewMinIOImageStorage(ctx context.Context, cfg config.MinIO, log *logger.Logger) (ImageStorage, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	s := &minioImageStorage{client: client, bucket: cfg.Bucket, logger: log}
	if err = s.ensureBucket(ctx); err != nil {
		log.Err(err).Str("func", "NewMinIOImageStorage").Str("bucket", cfg.Bucket).Msg("error ensuring bucket")
		return nil, err
	}
	log.Debug().Str("bucket", cfg.Bucket).Msg("creating minio image storage")
	return s, nil
}

func (s *minioImageStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *minioImageStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := validateImageKey(key); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioImageStorage.Put").Str("key", key).Msg("error uploading object")
		return fmt.Errorf("error uploading image: %w", err)
	}
	return nil
}

// Get stats the object first so a missing key surfaces as
// [ErrImageNotFound] instead of failing on the first read.
func (s *minioImageStorage) Get(ctx context.Context, key string) (io.ReadCloser, ImageInfo, error) {
	if err := validateImageKey(key); err != nil {
		return nil, ImageInfo{}, err
	}

	st, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ImageInfo{}, ErrImageNotFound
		}
		return nil, ImageInfo{}, fmt.Errorf("error reading image: %w", err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ImageInfo{}, fmt.Errorf("error reading image: %w", err)
	}

	return obj, ImageInfo{
		Size:        st.Size,
		ContentType: st.ContentType,
		ModTime:     st.LastModified,
	}, nil
}

func (s *minioImageStorage) Delete(ctx context.Context, key string) error {
	if err := validateImageKey(key); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("error deleting image: %w", err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return string(resp.Code) == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
