package admin

import (
	"errors"
	"fmt"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"github.com/Kyz7/corporate-site/internal/models"
	"gorm.io/gorm"
)

// Resources lists every editable content collection under /api/admin.
func Resources() []Routes {
	return []Routes{
		NewResource[models.Page]("pages", "Page", "slug", "title_tr", "title_en"),
		NewResource[models.ProductCategory]("product-categories", "Product category", "slug", "title_tr", "title_en"),
		NewResource[models.Industry]("industries", "Industry", "slug", "title_tr", "title_en"),
		&Resource[models.BlogCategory, *models.BlogCategory]{
			Name:         "blog-categories",
			Label:        "Blog category",
			Search:       []string{"slug", "name_tr", "name_en"},
			BeforeDelete: blogCategoryUnused,
		},
		&Resource[models.BlogPost, *models.BlogPost]{
			Name:    "blog-posts",
			Label:   "Blog post",
			Search:  []string{"slug", "title_tr", "title_en"},
			Preload: []string{"Category"},
			Check:   blogPostCategoryExists,
		},
		NewResource[models.Catalog]("catalogs", "Catalog", "title_tr", "title_en"),
		NewResource[models.HeroSlide]("hero-slides", "Hero slide", "title_tr", "title_en"),
		NewResource[models.Reference]("references", "Reference", "name"),
		NewResource[models.Video]("videos", "Video", "title_tr", "title_en", "youtube_url"),
	}
}

// Inboxes lists the visitor submission collections.
func Inboxes() []InboxRoutes {
	return []InboxRoutes{
		NewInbox[models.ContactMessage]("contact-messages", "Contact message"),
		NewInbox[models.QuoteRequest]("quote-requests", "Quote request"),
		NewInbox[models.JobApplication]("job-applications", "Job application"),
	}
}

func blogCategoryUnused(db *gorm.DB, c *models.BlogCategory) error {
	var posts int64
	if err := db.Model(&models.BlogPost{}).Where("category_id = ?", c.ID).Count(&posts).Error; err != nil {
		return err
	}
	if posts > 0 {
		return fmt.Errorf("%w: category %q still has %d blog post(s); move or delete them first",
			apperr.ErrDependent, c.NameTr, posts)
	}
	return nil
}

func blogPostCategoryExists(db *gorm.DB, p *models.BlogPost) error {
	if p.CategoryID == nil {
		return nil
	}
	err := db.Select("id").First(&models.BlogCategory{}, "id = ?", *p.CategoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: blog category %s does not exist", apperr.ErrValidation, *p.CategoryID)
	}
	return err
}
