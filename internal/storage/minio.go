package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig configures an S3-compatible object store.
type MinioConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Prefix          string
	UseSSL          bool
	Region          string
}

// MinioStore keeps one object per key in a bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinioStore connects to the endpoint and creates the bucket when missing.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("minio endpoint and bucket are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(checkCtx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(checkCtx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
		log.Printf("[STORE] Created bucket %s", cfg.Bucket)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// ObjectName returns the object key backing key.
func (m *MinioStore) ObjectName(key string) string {
	return objectName(m.prefix, key)
}

func objectName(prefix, key string) string {
	return prefix + key + ".json"
}

func (m *MinioStore) Load(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, m.ObjectName(key), minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "load", Key: key, Message: "get object failed", Cause: err}
	}
	defer obj.Close()

	// GetObject is lazy; a missing key surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "load", Key: key, Message: "read object failed", Cause: err}
	}
	return data, nil
}

func (m *MinioStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := m.client.PutObject(ctx, m.bucket, m.ObjectName(key), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return &StoreError{Op: "save", Key: key, Message: "put object failed", Cause: err}
	}
	return nil
}

func (m *MinioStore) Close() error {
	return nil
}
