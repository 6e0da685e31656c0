package site_test

import (
	"testing"

	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/site"
	"github.com/stretchr/testify/assert"
)

const base = "https://example.com"

func TestProductViewLocales(t *testing.T) {
	p := &models.ProductCategory{
		Slug:               "vana",
		TitleTr:            "Vanalar",
		TitleEn:            "Widgets",
		ShortDescriptionTr: "Kısa",
		DescriptionTr:      "<p>Gövde</p>",
		ImageAltTr:         "Vana görseli",
	}
	p.SetDefaults()

	en := site.NewProductView(locale.EN, p, nil, base)
	assert.Equal(t, "Widgets", en.Title)
	assert.Equal(t, "Widgets", en.Meta.Title)
	assert.Empty(t, string(en.Description))
	assert.Empty(t, en.ShortDescription)
	assert.Equal(t, "Kısa", en.Meta.Description)
	assert.Equal(t, "Vana görseli", en.ImageAlt)
	assert.Equal(t, base+"/en/products/vana", en.Meta.Canonical)
	assert.Equal(t, base+"/tr/urunler/vana", en.Meta.Alternates[locale.TR])

	tr := site.NewProductView(locale.TR, p, nil, base)
	assert.Equal(t, "<p>Gövde</p>", string(tr.Description))
	assert.Equal(t, "Vanalar", tr.Meta.Title)
}

func TestProductViewRelatedLinks(t *testing.T) {
	p := &models.ProductCategory{Slug: "pompa", TitleTr: "Pompa"}
	related := []models.Industry{{Slug: "gida", TitleTr: "Gıda", TitleEn: "Food"}}

	v := site.NewProductView(locale.EN, p, related, base)
	if assert.Len(t, v.Industries, 1) {
		assert.Equal(t, "Food", v.Industries[0].Title)
		assert.Equal(t, "/en/industries/gida", v.Industries[0].URL)
	}
}

func TestPageViewBodyDoesNotFallBack(t *testing.T) {
	p := &models.Page{Slug: "kvkk", TitleTr: "KVKK", ContentTr: "<p>Metin</p>"}
	p.SetDefaults()

	v := site.NewPageView(locale.EN, p, base)
	assert.Empty(t, v.Title)
	assert.Empty(t, string(v.Body))
	assert.Equal(t, "KVKK", v.Meta.Title)
	assert.Equal(t, base+"/en/kvkk", v.Meta.Canonical)
	assert.Equal(t, "index,follow", v.Meta.Robots)
}

func TestPostViewHidesInactiveCategory(t *testing.T) {
	cat := &models.BlogCategory{Slug: "haber", NameTr: "Haber"}
	p := &models.BlogPost{Slug: "yeni", TitleTr: "Yeni", Category: cat}

	v := site.NewPostView(locale.TR, p, base)
	assert.Nil(t, v.Category)

	cat.IsActive = true
	v = site.NewPostView(locale.TR, p, base)
	if assert.NotNil(t, v.Category) {
		assert.Equal(t, "/tr/blog/kategori/haber", v.Category.URL)
	}
}

func TestSectionMeta(t *testing.T) {
	m := site.SectionMeta(locale.TR, locale.SectionCatalogs, locale.T("Kataloglar", "Catalogs"), locale.Text{}, base)
	assert.Equal(t, base+"/tr/kataloglar", m.Canonical)
	assert.Equal(t, base+"/en/catalogs", m.Alternates[locale.EN])

	home := site.SectionMeta(locale.EN, "", locale.T("Ana Sayfa", ""), locale.Text{}, base)
	assert.Equal(t, base+"/en", home.Canonical)
	assert.Equal(t, "Ana Sayfa", home.Title)
}
