// Package attachment defines evidence-file ownership: the file store port,
// the owner kinds that hold committed files and the naming rules for staged
// and committed files.
package attachment

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrExists is returned by a write-once Create when the key is taken.
	ErrExists = errors.New("attachment: file already exists")
	// ErrNotExist is returned when a key has no file.
	ErrNotExist = errors.New("attachment: file does not exist")
)

// FileInfo describes a stored file.
type FileInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// FileStore is a flat key/value store for files. Keys use "/" separators.
type FileStore interface {
	// Create writes r under key and fails with ErrExists if key is taken.
	Create(ctx context.Context, key string, r io.Reader) error
	// Move renames src to dst, failing with ErrNotExist if src is missing.
	Move(ctx context.Context, src, dst string) error
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes key, failing with ErrNotExist if it is missing.
	Delete(ctx context.Context, key string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns the files whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]FileInfo, error)
}
