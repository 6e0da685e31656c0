package site

import (
	"errors"
	"fmt"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"gorm.io/gorm"
)

// slugged is satisfied by the pointer type of every slug-addressed model.
type slugged[T any] interface {
	*T
	GetSlug() string
}

// FindActiveBySlug loads the active row of T owning slug. A missing row and
// an inactive one give the same ErrNotFound outcome.
func FindActiveBySlug[T any](db *gorm.DB, slug string) (*T, error) {
	var out T
	err := db.Where("slug = ? AND is_active = ?", slug, true).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", apperr.ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveOrdered scopes a query to public rows in manual order. Equal orders
// keep creation order; ids are time ordered so they settle exact ties.
func ActiveOrdered(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("created_at ASC").
		Order("id ASC")
}

// ListActive returns the public rows of T. limit <= 0 means no limit.
func ListActive[T any](db *gorm.DB, limit int) ([]T, error) {
	var out []T
	q := ActiveOrdered(db)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ExpandRelated resolves a stored slug list into active rows of T, in the
// order the slugs were stored. Slugs that no longer resolve are skipped and
// repeated slugs appear once.
func ExpandRelated[T any, PT slugged[T]](db *gorm.DB, slugs []string) ([]T, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var rows []T
	if err := db.Where("slug IN ? AND is_active = ?", slugs, true).Find(&rows).Error; err != nil {
		return nil, err
	}

	bySlug := make(map[string]int, len(rows))
	for i := range rows {
		bySlug[PT(&rows[i]).GetSlug()] = i
	}

	out := make([]T, 0, len(rows))
	seen := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		i, ok := bySlug[s]
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, rows[i])
	}
	return out, nil
}
