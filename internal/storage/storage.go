package storage

import (
	"context"
	"fmt"
	"strings"
)

// DefaultKey is the key under which the editor keeps its document.
const DefaultKey = "resume-data"

// BlobStore loads and saves opaque blobs by key. Save overwrites.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindFile     = "file"
	KindMemory   = "memory"
	KindPostgres = "postgres"
	KindMinio    = "minio"
)

// Options selects and configures a backend.
type Options struct {
	Kind        string
	Dir         string
	DatabaseURL string
	Minio       MinioConfig
}

// Open creates the backend named by opts.Kind. Postgres backends are migrated
// before use.
func Open(ctx context.Context, opts Options) (BlobStore, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case "", KindFile:
		return NewFileStore(opts.Dir)
	case KindMemory:
		return NewMemoryStore(), nil
	case KindPostgres:
		store, err := OpenPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, store.DB); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return store, nil
	case KindMinio:
		return NewMinioStore(ctx, opts.Minio)
	default:
		return nil, fmt.Errorf("unknown store kind %q", opts.Kind)
	}
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
