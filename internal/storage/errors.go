// Package storage persists serialized resume documents as key-value blobs.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned by Load when no blob is stored under the key.
var ErrNotFound = errors.New("blob not found")

// StoreError represents a failure of the underlying storage backend
type StoreError struct {
	Op      string
	Key     string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s %q: %s: %v", e.Op, e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s %q: %s", e.Op, e.Key, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// isNoSuchKey reports whether an S3/MinIO error means the object does not exist.
func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch strings.ToLower(strings.TrimSpace(minioErr.Code)) {
		case "nosuchkey", "notfound":
			return true
		}
	}

	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "nosuchkey") ||
		strings.Contains(lower, "specified key does not exist")
}
