package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes objects under Dir; the router serves Dir at /uploads.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocal(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	clean := filepath.Clean("/" + key)
	full := filepath.Join(s.Dir, clean)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return s.BaseURL + path.Join("/uploads", filepath.ToSlash(clean)), nil
}
