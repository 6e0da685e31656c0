package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kyz7/corporate-site/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	cases := map[string]string{
		"Ürün Kataloğu 2024.pdf": "1700000000123-rnKatalou2024.pdf",
		"../../etc/passwd":       "1700000000123-passwd",
		`C:\temp\logo.png`:       "1700000000123-logo.png",
		"a b_c-d.JPG":            "1700000000123-abc-d.JPG",
		"...":                    "1700000000123-file",
		"çşğ":                    "1700000000123-file",
	}
	for in, want := range cases {
		assert.Equal(t, want, storage.SanitizeFilename(in, now), in)
	}
}

func TestKeyIsDatePartitioned(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	key := storage.Key("logo.png", now)
	assert.True(t, strings.HasPrefix(key, "2024/03/"), key)
	assert.True(t, strings.HasSuffix(key, "-logo.png"), key)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", storage.ContentTypeFor("a.PNG"))
	assert.Equal(t, "image/jpeg", storage.ContentTypeFor("a.jpg"))
	assert.Equal(t, "image/jpeg", storage.ContentTypeFor("a.jpeg"))
	assert.Equal(t, "image/webp", storage.ContentTypeFor("a.webp"))
	assert.Equal(t, "image/svg+xml", storage.ContentTypeFor("a.svg"))
	assert.Equal(t, "application/pdf", storage.ContentTypeFor("a.pdf"))
	assert.Equal(t, "application/octet-stream", storage.ContentTypeFor("a.exe"))
	assert.Equal(t, "application/octet-stream", storage.ContentTypeFor("noext"))
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "2024/03/1-a.txt", "text/plain", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/2024/03/1-a.txt", url)

	data, err := os.ReadFile(filepath.Join(dir, "2024", "03", "1-a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	t.Run("Error - same key is not overwritten", func(t *testing.T) {
		_, err := s.Save(context.Background(), "2024/03/1-a.txt", "text/plain", strings.NewReader("x"))
		assert.Error(t, err)
	})

	t.Run("Success - traversal stays inside root", func(t *testing.T) {
		full, err := s.Resolve("../../2024/03/1-a.txt")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(full, s.Root()))
	})

	t.Run("Error - root itself is not a file", func(t *testing.T) {
		_, err := s.Resolve("")
		assert.ErrorIs(t, err, storage.ErrOutside)
	})

	t.Run("Success - delete", func(t *testing.T) {
		require.NoError(t, s.Delete(context.Background(), url))
		_, err := os.Stat(filepath.Join(dir, "2024", "03", "1-a.txt"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestAllowed(t *testing.T) {
	assert.True(t, storage.Allowed("x.PDF", storage.DocumentExts...))
	assert.False(t, storage.Allowed("x.exe", storage.ImageAndDocumentExts...))
}
