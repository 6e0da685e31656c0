package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Kyz7/corporate-site/internal/config"
)

// MaxUploadSize bounds every accepted upload.
const MaxUploadSize = 10 * 1024 * 1024

// Store persists uploaded files and returns their public URL.
type Store interface {
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

var current Store

// Init selects the configured store: S3 when USE_S3 is set, otherwise the
// local upload directory.
func Init(cfg config.StorageConfig) (Store, error) {
	if cfg.UseS3 {
		s, err := NewS3Store(cfg.S3Bucket, cfg.S3Region, cfg.CloudFrontURL)
		if err != nil {
			return nil, err
		}
		current = s
		return s, nil
	}

	s, err := NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	current = s
	return s, nil
}

// Use replaces the active store.
func Use(s Store) { current = s }

func Current() Store { return current }

var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
}

// ContentTypeFor infers the served type from the file extension.
// Unknown extensions are served as opaque binary.
func ContentTypeFor(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Allowed reports whether the extension of name is one of exts.
func Allowed(name string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

var (
	ImageAndDocumentExts = []string{".png", ".jpg", ".jpeg", ".webp", ".svg", ".pdf"}
	DocumentExts         = []string{".pdf"}
)

// SanitizeFilename keeps only [A-Za-z0-9.-] and prefixes the creation time
// in unix milliseconds.
func SanitizeFilename(name string, now time.Time) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}

	clean := strings.TrimLeft(b.String(), ".-")
	if clean == "" || clean == strings.Repeat(".", len(clean)) {
		clean = "file"
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + clean
}

// Key is the date partitioned object key of a new upload.
func Key(name string, now time.Time) string {
	return fmt.Sprintf("%04d/%02d/%s", now.Year(), int(now.Month()), SanitizeFilename(name, now))
}

// SaveFile stores a multipart upload after checking its size and extension.
func SaveFile(ctx context.Context, fh *multipart.FileHeader, exts []string) (string, error) {
	if current == nil {
		return "", fmt.Errorf("storage not initialised")
	}
	if fh.Size > MaxUploadSize {
		return "", ErrTooLarge
	}
	if !Allowed(fh.Filename, exts...) {
		return "", ErrExtension
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	return current.Save(ctx, Key(fh.Filename, time.Now()), ContentTypeFor(fh.Filename), io.LimitReader(src, MaxUploadSize))
}
