package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var policy = bluemonday.UGCPolicy()

func sanitizeHTML(input string) string {
	return policy.Sanitize(input)
}

const maxPageSize = 100

// Routes is the handler set of one admin collection.
type Routes interface {
	Path() string
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

type entity[T any] interface {
	*T
	models.Record
	models.Validatable
}

// Resource serves CRUD for one content model. Admin reads never filter on
// is_active.
type Resource[T any, PT entity[T]] struct {
	Name   string
	Label  string
	Search []string
	// Preload names associations returned with the rows.
	Preload []string
	// Check runs after validation on create and update.
	Check func(db *gorm.DB, item PT) error
	// BeforeDelete may refuse a delete, e.g. while dependents exist.
	BeforeDelete func(db *gorm.DB, item PT) error
}

func NewResource[T any, PT entity[T]](name, label string, search ...string) *Resource[T, PT] {
	return &Resource[T, PT]{Name: name, Label: label, Search: search}
}

func (r *Resource[T, PT]) Path() string { return r.Name }

func (r *Resource[T, PT]) db(c *fiber.Ctx) *gorm.DB {
	db := database.DB.WithContext(c.UserContext())
	for _, p := range r.Preload {
		db = db.Preload(p)
	}
	return db
}

func (r *Resource[T, PT]) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = 20
	}

	query := r.db(c).Model(new(T))
	if q := strings.TrimSpace(c.Query("q")); q != "" && len(r.Search) > 0 {
		like := "%" + strings.ToLower(q) + "%"
		conds := make([]string, 0, len(r.Search))
		args := make([]interface{}, 0, len(r.Search))
		for _, col := range r.Search {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, like)
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}
	switch c.Query("active") {
	case "true":
		query = query.Where("is_active = ?", true)
	case "false":
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.FromError(c, r.Label, err)
	}

	items := make([]T, 0, limit)
	err := query.Order("sort_order ASC").Order("created_at ASC").Order("id ASC").
		Offset((page - 1) * limit).Limit(limit).Find(&items).Error
	if err != nil {
		return response.FromError(c, r.Label, err)
	}

	return response.SuccessWithMeta(c, items, response.CalculateMeta(page, limit, total), "")
}

func (r *Resource[T, PT]) find(c *fiber.Ctx) (PT, error) {
	item := PT(new(T))
	err := r.db(c).First(item, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Resource[T, PT]) Get(c *fiber.Ctx) error {
	item, err := r.find(c)
	if err != nil {
		return response.FromError(c, r.Label, err)
	}
	return response.Success(c, item, "")
}

func (r *Resource[T, PT]) Create(c *fiber.Ctx) error {
	item := PT(new(T))
	if d, ok := any(item).(models.Defaulter); ok {
		d.SetDefaults()
	}
	if err := c.BodyParser(item); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	*item.Record() = models.Base{}

	db := database.DB.WithContext(c.UserContext())
	if err := r.prepare(db, item); err != nil {
		return response.FromError(c, r.Label, err)
	}

	if err := translateWrite(r.Label, db.Omit(clause.Associations).Create(item).Error); err != nil {
		return response.FromError(c, r.Label, err)
	}

	return response.Created(c, item, r.Label+" created successfully")
}

// Update overlays the body on the stored row and saves every column.
// Concurrent edits are last write wins.
func (r *Resource[T, PT]) Update(c *fiber.Ctx) error {
	item, err := r.find(c)
	if err != nil {
		return response.FromError(c, r.Label, err)
	}
	kept := *item.Record()

	if err := c.BodyParser(item); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	*item.Record() = kept
	item.Record().UpdatedAt = time.Now()

	db := database.DB.WithContext(c.UserContext())
	if err := r.prepare(db, item); err != nil {
		return response.FromError(c, r.Label, err)
	}

	if err := translateWrite(r.Label, db.Omit(clause.Associations).Save(item).Error); err != nil {
		return response.FromError(c, r.Label, err)
	}

	return response.Success(c, item, r.Label+" updated successfully")
}

func (r *Resource[T, PT]) Delete(c *fiber.Ctx) error {
	item, err := r.find(c)
	if err != nil {
		return response.FromError(c, r.Label, err)
	}

	db := database.DB.WithContext(c.UserContext())
	if r.BeforeDelete != nil {
		if err := r.BeforeDelete(db, item); err != nil {
			return response.FromError(c, r.Label, err)
		}
	}

	if err := db.Delete(item).Error; err != nil {
		return response.FromError(c, r.Label, err)
	}

	return response.Success(c, fiber.Map{"id": item.Record().ID}, r.Label+" deleted successfully")
}

// prepare derives and cleans fields, validates, and rejects slug clashes.
func (r *Resource[T, PT]) prepare(db *gorm.DB, item PT) error {
	if s, ok := any(item).(models.Sluggable); ok {
		source := s.GetSlug()
		if strings.TrimSpace(source) == "" {
			source = s.SlugSource()
		}
		s.SetSlug(MakeSlug(source))
	}
	if n, ok := any(item).(models.Normalizer); ok {
		n.Normalize()
	}
	if s, ok := any(item).(models.Sanitizable); ok {
		s.Sanitize(sanitizeHTML)
	}

	if err := item.Validate(); err != nil {
		return err
	}
	if r.Check != nil {
		if err := r.Check(db, item); err != nil {
			return err
		}
	}

	if s, ok := any(item).(models.Sluggable); ok {
		var count int64
		err := db.Model(new(T)).
			Where("slug = ? AND id <> ?", s.GetSlug(), item.Record().ID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: a %s with slug %q already exists", apperr.ErrConflict, strings.ToLower(r.Label), s.GetSlug())
		}
	}
	return nil
}
