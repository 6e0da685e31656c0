package server

import (
	"time"

	"github.com/Kyz7/corporate-site/internal/admin"
	"github.com/Kyz7/corporate-site/internal/auth"
	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/public"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/Kyz7/corporate-site/internal/settings"
	"github.com/Kyz7/corporate-site/internal/storage"
	"github.com/Kyz7/corporate-site/internal/submission"
	"github.com/Kyz7/corporate-site/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	// Middleware
	app.Use(logger.New())
	app.Use("/api", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Site is running",
		})
	})

	api := app.Group("/api")

	// ==========================================
	// AUTH
	// ==========================================
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimited,
	}), auth.LoginHandler)
	authGroup.Get("/google/login", auth.GoogleLogin)
	authGroup.Get("/google/callback", auth.GoogleCallback)
	authGroup.Get("/me", auth.JWTProtected(), auth.MeHandler)

	// ==========================================
	// PUBLIC FORMS
	// ==========================================
	forms := limiter.New(limiter.Config{
		Max:          10,
		Expiration:   10 * time.Minute,
		LimitReached: rateLimited,
	})
	api.Post("/contact", forms, submission.ContactHandler)
	api.Post("/quote", forms, submission.QuoteHandler)
	api.Post("/job-application", forms, submission.JobApplicationHandler)

	// ==========================================
	// ADMIN
	// ==========================================
	staff := []fiber.Handler{auth.JWTProtected(), auth.RoleProtected(models.RoleAdmin, models.RoleEditor)}

	api.Post("/upload", append(staff, storage.UploadHandler)...)

	adminGroup := api.Group("/admin", staff...)
	adminGroup.Get("/dashboard", admin.DashboardHandler)
	adminGroup.Get("/settings", settings.GetSettingsHandler)
	adminGroup.Put("/settings", settings.UpdateSettingsHandler)

	for _, r := range admin.Resources() {
		g := adminGroup.Group("/" + r.Path())
		g.Get("/", r.List)
		g.Post("/", r.Create)
		g.Get("/:id", r.Get)
		g.Put("/:id", r.Update)
		g.Delete("/:id", r.Delete)
	}

	for _, b := range admin.Inboxes() {
		g := adminGroup.Group("/" + b.Path())
		g.Get("/", b.List)
		g.Get("/:id", b.Get)
		g.Post("/:id/read", b.MarkRead)
		g.Delete("/:id", b.Delete)
	}

	// User management (admin only)
	userGroup := adminGroup.Group("/users", auth.RoleProtected(models.RoleAdmin))
	userGroup.Post("/", user.CreateUserHandler)
	userGroup.Get("/", user.ListUsersHandler)
	userGroup.Get("/:id", user.GetUserHandler)
	userGroup.Put("/:id", user.UpdateUserHandler)
	userGroup.Delete("/:id", user.DeleteUserHandler)

	api.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Route")
	})

	// ==========================================
	// PUBLIC SITE
	// ==========================================
	app.Get("/uploads/*", storage.ServeHandler)
	app.Get("/robots.txt", public.Robots)
	app.Get("/sitemap.xml", public.Sitemap)
	app.Get("/", public.RootRedirect)

	for _, l := range locale.Supported {
		g := app.Group("/"+l.String(), public.WithLocale(l))
		g.Get("/", public.Home)

		g.Get("/"+locale.SectionPath(locale.SectionProducts, l), public.Products)
		g.Get("/"+locale.SectionPath(locale.SectionProducts, l)+"/:slug", public.Product)
		g.Get("/"+locale.SectionPath(locale.SectionIndustries, l), public.Industries)
		g.Get("/"+locale.SectionPath(locale.SectionIndustries, l)+"/:slug", public.Industry)
		g.Get("/"+locale.SectionPath(locale.SectionBlogTag, l)+"/:slug", public.BlogCategory)
		g.Get("/"+locale.SectionPath(locale.SectionBlog, l), public.Blog)
		g.Get("/"+locale.SectionPath(locale.SectionBlog, l)+"/:slug", public.BlogPost)
		g.Get("/"+locale.SectionPath(locale.SectionCatalogs, l), public.Catalogs)
		g.Get("/"+locale.SectionPath(locale.SectionVideos, l), public.Videos)
		g.Get("/"+locale.SectionPath(locale.SectionContact, l), public.Contact)

		// Pages own every remaining single-segment path.
		g.Get("/:slug", public.Page)
	}
}

func rateLimited(c *fiber.Ctx) error {
	return response.Error(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, try again later", nil)
}
