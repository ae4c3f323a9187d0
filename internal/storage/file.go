package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per key in a directory.
type FileStore struct {
	Dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StoreError{Op: "open", Key: dir, Message: "failed to create data directory", Cause: err}
	}
	return &FileStore{Dir: dir}, nil
}

// Path returns the file backing key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "load", Key: key, Message: "failed to read file", Cause: err}
	}
	return data, nil
}

// Save writes to a temporary file and renames it over the target, so a
// reader never sees a partial blob.
func (f *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.Dir, "."+key+"-*.tmp")
	if err != nil {
		return &StoreError{Op: "save", Key: key, Message: "failed to create temp file", Cause: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &StoreError{Op: "save", Key: key, Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &StoreError{Op: "save", Key: key, Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmp.Name(), f.Path(key)); err != nil {
		return &StoreError{Op: "save", Key: key, Message: fmt.Sprintf("failed to replace %s", f.Path(key)), Cause: err}
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
