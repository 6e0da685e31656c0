package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// URLPrefix is where locally stored files are served from.
const URLPrefix = "/uploads/"

// LocalStore writes uploads below a directory on disk.
type LocalStore struct {
	root string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid upload dir: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", root, err)
	}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) Save(ctx context.Context, key, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full, err := s.Resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(full)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return URLPrefix + key, nil
}

func (s *LocalStore) Delete(_ context.Context, url string) error {
	full, err := s.Resolve(strings.TrimPrefix(url, URLPrefix))
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Resolve maps a relative upload path to a file below root. Paths that
// would escape root, directly or through a symlink, are rejected.
func (s *LocalStore) Resolve(rel string) (string, error) {
	clean := path.Clean("/" + strings.ReplaceAll(rel, "\\", "/"))
	if clean == "/" {
		return "", ErrOutside
	}
	full := filepath.Join(s.root, filepath.FromSlash(clean))

	if real, err := filepath.EvalSymlinks(full); err == nil {
		full = real
	}
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", ErrOutside
	}
	return full, nil
}
