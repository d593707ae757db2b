package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AvatarStore persists uploaded profile images and returns a reference
// path the client can use to fetch them.
type AvatarStore interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

// FileStore saves avatars to disk under a base directory and serves them
// from a public URL prefix.
type FileStore struct {
	basePath  string
	urlPrefix string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(basePath, urlPrefix string) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	if urlPrefix == "" {
		urlPrefix = "/uploads/profiles"
	}
	return &FileStore{basePath: basePath, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Save writes the file and returns its public reference path.
func (f *FileStore) Save(_ context.Context, filename string, r io.Reader, _ int64, _ string) (string, error) {
	name := safeFilename(filename)
	target := filepath.Join(f.basePath, name)
	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return f.urlPrefix + "/" + name, nil
}

func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.TrimSpace(name)
	if name == "" {
		return "avatar"
	}
	return name
}
