package storage

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler stores the "file" form field and returns its public URL.
func UploadHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	if file.Size > MaxUploadSize {
		return response.BadRequest(c, "File too large", fiber.Map{
			"max_size_mb":  MaxUploadSize / (1024 * 1024),
			"file_size_mb": file.Size / (1024 * 1024),
		})
	}

	url, err := SaveFile(c.UserContext(), file, ImageAndDocumentExts)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return response.BadRequest(c, err.Error(), fiber.Map{"allowed": ImageAndDocumentExts})
		}
		return response.FromError(c, "File", err)
	}

	return response.Created(c, fiber.Map{
		"url":         url,
		"name":        filepath.Base(url),
		"size":        file.Size,
		"contentType": ContentTypeFor(file.Filename),
		"uploadedAt":  time.Now().UTC(),
	}, "File uploaded successfully")
}

// ServeHandler streams a locally stored upload with a type inferred from
// its extension.
func ServeHandler(c *fiber.Ctx) error {
	local, ok := current.(*LocalStore)
	if !ok {
		return fiber.ErrNotFound
	}

	full, err := local.Resolve(c.Params("*"))
	if err != nil {
		return fiber.ErrNotFound
	}

	f, err := os.Open(full)
	if err != nil {
		return fiber.ErrNotFound
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return fiber.ErrNotFound
	}

	ct := ContentTypeFor(full)
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	if ct == "image/svg+xml" {
		c.Set(fiber.HeaderContentSecurityPolicy, "default-src 'none'; style-src 'unsafe-inline'; sandbox")
	}
	return c.SendStream(f, int(info.Size()))
}
