// Package storage persists uploaded images on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadStore writes uploads under a single directory with randomized
// filenames, so client-supplied names cannot collide or escape the directory.
type UploadStore struct {
	dir string
}

// NewUploadStore creates dir when missing and returns a store rooted there.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Save writes data under a fresh random name, keeping only the extension of
// the client-supplied filename (".jpg" when absent), and returns the stored
// path.
func (s *UploadStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" {
		ext = ".jpg"
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}
