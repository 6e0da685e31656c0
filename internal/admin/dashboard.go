package admin

import (
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler returns row counts for the admin landing screen.
func DashboardHandler(c *fiber.Ctx) error {
	db := database.DB.WithContext(c.UserContext())

	content := map[string]interface{}{
		"pages":             &models.Page{},
		"productCategories": &models.ProductCategory{},
		"industries":        &models.Industry{},
		"blogPosts":         &models.BlogPost{},
		"catalogs":          &models.Catalog{},
		"videos":            &models.Video{},
		"references":        &models.Reference{},
		"heroSlides":        &models.HeroSlide{},
	}
	unread := map[string]interface{}{
		"contactMessages": &models.ContactMessage{},
		"quoteRequests":   &models.QuoteRequest{},
		"jobApplications": &models.JobApplication{},
	}

	counts := make(map[string]int64, len(content))
	for key, model := range content {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return response.FromError(c, "Dashboard", err)
		}
		counts[key] = n
	}

	unreadCounts := make(map[string]int64, len(unread))
	for key, model := range unread {
		var n int64
		if err := db.Model(model).Where("is_read = ?", false).Count(&n).Error; err != nil {
			return response.FromError(c, "Dashboard", err)
		}
		unreadCounts[key] = n
	}

	return response.Success(c, fiber.Map{
		"content": counts,
		"unread":  unreadCounts,
	}, "")
}
