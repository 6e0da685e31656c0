package site_test

import (
	"testing"
	"time"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/site"
	"github.com/Kyz7/corporate-site/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createIndustry(t *testing.T, db *gorm.DB, slug string, order int, active bool) *models.Industry {
	in := &models.Industry{Slug: slug, TitleTr: slug}
	in.SetDefaults()
	in.Order = order
	in.IsActive = active
	require.NoError(t, db.Create(in).Error)
	return in
}

func TestFindActiveBySlug(t *testing.T) {
	db := testutils.TestDB(t)
	createIndustry(t, db, "otomotiv", 0, true)
	createIndustry(t, db, "savunma", 0, false)

	t.Run("Success - active row resolves", func(t *testing.T) {
		in, err := site.FindActiveBySlug[models.Industry](db, "otomotiv")
		require.NoError(t, err)
		assert.Equal(t, "otomotiv", in.Slug)
	})

	t.Run("Error - inactive row is not found", func(t *testing.T) {
		_, err := site.FindActiveBySlug[models.Industry](db, "savunma")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("Error - missing slug is not found", func(t *testing.T) {
		_, err := site.FindActiveBySlug[models.Industry](db, "yok")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("Error - slug of another type is not found", func(t *testing.T) {
		_, err := site.FindActiveBySlug[models.ProductCategory](db, "otomotiv")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestListActiveOrdering(t *testing.T) {
	db := testutils.TestDB(t)

	createIndustry(t, db, "c", 2, true)
	createIndustry(t, db, "a1", 1, true)
	time.Sleep(2 * time.Millisecond)
	createIndustry(t, db, "hidden", 0, false)
	createIndustry(t, db, "a2", 1, true)
	time.Sleep(2 * time.Millisecond)
	createIndustry(t, db, "a3", 1, true)
	createIndustry(t, db, "first", 0, true)

	list, err := site.ListActive[models.Industry](db, 0)
	require.NoError(t, err)

	var slugs []string
	for _, in := range list {
		slugs = append(slugs, in.Slug)
	}
	assert.Equal(t, []string{"first", "a1", "a2", "a3", "c"}, slugs)

	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Order, list[i].Order)
	}

	t.Run("Success - limit caps results", func(t *testing.T) {
		list, err := site.ListActive[models.Industry](db, 2)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestExpandRelated(t *testing.T) {
	db := testutils.TestDB(t)
	createIndustry(t, db, "gida", 5, true)
	createIndustry(t, db, "enerji", 1, true)
	gone := createIndustry(t, db, "silinen", 0, true)
	createIndustry(t, db, "pasif", 0, false)
	require.NoError(t, db.Delete(gone).Error)

	t.Run("Success - dangling reference is dropped", func(t *testing.T) {
		out, err := site.ExpandRelated[models.Industry](db, []string{"silinen", "gida"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "gida", out[0].Slug)
	})

	t.Run("Success - stored order wins over row order", func(t *testing.T) {
		out, err := site.ExpandRelated[models.Industry](db, []string{"gida", "pasif", "enerji", "gida"})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "gida", out[0].Slug)
		assert.Equal(t, "enerji", out[1].Slug)
	})

	t.Run("Success - empty list", func(t *testing.T) {
		out, err := site.ExpandRelated[models.Industry](db, nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
