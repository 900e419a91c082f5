package objectStore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/customHttpClient"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrObjectNotFound = errors.New("object not found")

var (
	instance *MinioStore
	initErr  error
	once     sync.Once
)

// MinioStore keeps uploaded documents in a single bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	logger *logger_i.Logger
}

// GetMinioStore connects once and makes sure the bucket exists.
func GetMinioStore(ctx context.Context) (*MinioStore, error) {
	once.Do(func() {
		logger := logger_i.NewLogger("Object Store")
		if config.MinioEndpoint == "" {
			initErr = errors.New("minio endpoint is not configured")
			return
		}

		client, err := minio.New(config.MinioEndpoint, &minio.Options{
			Creds:     credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
			Secure:    config.MinioUseSSL,
			Transport: customHttpClient.Transport(),
		})
		if err != nil {
			initErr = fmt.Errorf("failed to create minio client: %w", err)
			return
		}

		checkCtx, cancel := context.WithTimeout(ctx, config.MinioConnectTimeout)
		defer cancel()
		if err = ensureBucket(checkCtx, client, config.MinioBucket); err != nil {
			initErr = err
			return
		}

		logger.Info("Minio store init successfully", "bucket", config.MinioBucket)
		instance = &MinioStore{client: client, bucket: config.MinioBucket, logger: logger}
	})
	return instance, initErr
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	if exists {
		return nil
	}
	if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *MinioStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.WithTrace(ctx).Error("failed uploading object", "key", key, "error", err)
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *MinioStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *MinioStore) RemoveObject(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *MinioStore) objectURL(key string) string {
	u := *s.client.EndpointURL()
	u.Path = path.Join(u.Path, s.bucket, key)
	return u.String()
}
