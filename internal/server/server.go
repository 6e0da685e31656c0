package server

import (
	"errors"
	"strings"

	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/public"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/Kyz7/corporate-site/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// bodyLimit leaves room for multipart overhead around a MaxUploadSize file.
const bodyLimit = storage.MaxUploadSize + 2*1024*1024

// New builds the app. Handlers reach the database through database.DB.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "corporate-site",
		BodyLimit:    bodyLimit,
		Views:        public.NewEngine(),
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())

	SetupRoutes(app)

	return app
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/") ||
		strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// errorHandler answers API callers with the JSON envelope and browsers with
// the localized error page.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		logger.SLog.Errorw("request failed", "path", c.Path(), "error", err)
	}

	if wantsJSON(c) {
		switch code {
		case fiber.StatusNotFound:
			return response.NotFound(c, "Route")
		case fiber.StatusRequestEntityTooLarge:
			return response.Error(c, code, "VALIDATION_ERROR", "Request body too large", nil)
		case fiber.StatusTooManyRequests:
			return response.Error(c, code, "RATE_LIMITED", "Too many requests", nil)
		}
		if code < fiber.StatusInternalServerError {
			return response.Error(c, code, "BAD_REQUEST", fe.Message, nil)
		}
		return response.InternalError(c, "Internal server error")
	}

	status := fiber.StatusInternalServerError
	if code == fiber.StatusNotFound {
		status = fiber.StatusNotFound
	}
	if rerr := public.RenderError(c, status); rerr != nil {
		logger.SLog.Errorw("render error page", "status", status, "error", rerr)
		return c.Status(status).SendString(fiber.ErrInternalServerError.Message)
	}
	return nil
}
