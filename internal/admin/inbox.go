package admin

import (
	"errors"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InboxRoutes is the handler set of a submission collection. Submissions
// are never edited; the only mutation is marking them read.
type InboxRoutes interface {
	Path() string
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
	MarkRead(c *fiber.Ctx) error
}

type submission[T any] interface {
	*T
	models.Submission
}

type Inbox[T any, PT submission[T]] struct {
	Name  string
	Label string
}

func NewInbox[T any, PT submission[T]](name, label string) *Inbox[T, PT] {
	return &Inbox[T, PT]{Name: name, Label: label}
}

func (b *Inbox[T, PT]) Path() string { return b.Name }

// List returns newest first; ?unread=true keeps only unread rows.
func (b *Inbox[T, PT]) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = 20
	}

	query := database.DB.WithContext(c.UserContext()).Model(new(T))
	if c.QueryBool("unread") {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.FromError(c, b.Label, err)
	}

	items := make([]T, 0, limit)
	err := query.Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&items).Error
	if err != nil {
		return response.FromError(c, b.Label, err)
	}

	return response.SuccessWithMeta(c, items, response.CalculateMeta(page, limit, total), "")
}

func (b *Inbox[T, PT]) find(c *fiber.Ctx) (PT, error) {
	item := PT(new(T))
	err := database.DB.WithContext(c.UserContext()).First(item, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (b *Inbox[T, PT]) Get(c *fiber.Ctx) error {
	item, err := b.find(c)
	if err != nil {
		return response.FromError(c, b.Label, err)
	}
	return response.Success(c, item, "")
}

func (b *Inbox[T, PT]) Delete(c *fiber.Ctx) error {
	item, err := b.find(c)
	if err != nil {
		return response.FromError(c, b.Label, err)
	}
	if err := database.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return response.FromError(c, b.Label, err)
	}
	return response.Success(c, fiber.Map{"id": item.Record().ID}, b.Label+" deleted successfully")
}

// MarkRead sets is_read. It only ever moves to true, so repeating the
// call returns the same result.
func (b *Inbox[T, PT]) MarkRead(c *fiber.Ctx) error {
	item, err := b.find(c)
	if err != nil {
		return response.FromError(c, b.Label, err)
	}

	db := database.DB.WithContext(c.UserContext())
	if err := db.Model(item).UpdateColumn("is_read", true).Error; err != nil {
		return response.FromError(c, b.Label, err)
	}
	if err := db.First(item, "id = ?", item.Record().ID).Error; err != nil {
		return response.FromError(c, b.Label, err)
	}

	return response.Success(c, item, b.Label+" marked as read")
}
