package public

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/site"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Robots disallows the admin and API surfaces and points at the sitemap.
func Robots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(fmt.Sprintf("User-agent: *\nDisallow: /admin\nDisallow: /api\n\nSitemap: %s/sitemap.xml\n", siteBase))
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	Xhtml   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string        `xml:"loc"`
	LastMod string        `xml:"lastmod,omitempty"`
	Links   []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// entries yields one <url> per locale, each listing every locale as an
// alternate.
func entries(paths map[locale.Locale]string, updated time.Time) []sitemapURL {
	links := make([]sitemapLink, 0, len(locale.Supported))
	for _, l := range locale.Supported {
		links = append(links, sitemapLink{Rel: "alternate", Hreflang: l.String(), Href: locale.URL(siteBase, l, paths[l])})
	}

	lastMod := ""
	if !updated.IsZero() {
		lastMod = updated.UTC().Format("2006-01-02")
	}

	out := make([]sitemapURL, 0, len(locale.Supported))
	for _, l := range locale.Supported {
		out = append(out, sitemapURL{Loc: locale.URL(siteBase, l, paths[l]), LastMod: lastMod, Links: links})
	}
	return out
}

type sitemapRow struct {
	Slug      string
	UpdatedAt time.Time
}

func indexedRows(q *gorm.DB, model interface{}) ([]sitemapRow, error) {
	var rows []sitemapRow
	err := site.ActiveOrdered(q.Model(model)).
		Where("is_indexed = ?", true).
		Select("slug", "updated_at").
		Find(&rows).Error
	return rows, err
}

// Sitemap lists the section roots and every active, indexed entity.
func Sitemap(c *fiber.Ctx) error {
	q := db(c)
	set := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		Xhtml: "http://www.w3.org/1999/xhtml",
	}

	set.URLs = append(set.URLs, entries(map[locale.Locale]string{}, time.Time{})...)
	for _, s := range []locale.Section{
		locale.SectionProducts, locale.SectionIndustries, locale.SectionBlog,
		locale.SectionCatalogs, locale.SectionVideos, locale.SectionContact,
	} {
		set.URLs = append(set.URLs, entries(locale.Paths(s, ""), time.Time{})...)
	}

	sources := []struct {
		model   interface{}
		section locale.Section
	}{
		{&models.Page{}, ""},
		{&models.ProductCategory{}, locale.SectionProducts},
		{&models.Industry{}, locale.SectionIndustries},
		{&models.BlogCategory{}, locale.SectionBlogTag},
		{&models.BlogPost{}, locale.SectionBlog},
	}
	for _, src := range sources {
		rows, err := indexedRows(q, src.model)
		if err != nil {
			return err
		}
		for _, r := range rows {
			set.URLs = append(set.URLs, entries(locale.Paths(src.section, r.Slug), r.UpdatedAt)...)
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(append([]byte(xml.Header), out...))
}
