package public

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/settings"
	"github.com/Kyz7/corporate-site/internal/site"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

//go:embed views
var viewsFS embed.FS

const (
	localeKey = "locale"
	layout    = "layouts/main"
)

var siteBase = "http://localhost:8080"

// Init sets the absolute base used for canonical and alternate URLs.
func Init(siteURL string) {
	siteBase = strings.TrimRight(siteURL, "/")
}

// NewEngine loads the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("date", func(t *time.Time, l locale.Locale) string {
		if t == nil {
			return ""
		}
		if l == locale.EN {
			return t.Format("January 2, 2006")
		}
		return t.Format("02.01.2006")
	})
	engine.AddFunc("year", func() int { return time.Now().Year() })
	engine.AddFunc("safeURL", func(s string) template.URL { return template.URL(s) })
	return engine
}

// WithLocale pins the locale of a route group.
func WithLocale(l locale.Locale) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localeKey, l)
		return c.Next()
	}
}

func currentLocale(c *fiber.Ctx) locale.Locale {
	if l, ok := c.Locals(localeKey).(locale.Locale); ok {
		return l
	}
	return LocaleFromPath(c.Path())
}

// LocaleFromPath reads the locale from the first path segment.
func LocaleFromPath(p string) locale.Locale {
	first := strings.SplitN(strings.TrimPrefix(p, "/"), "/", 2)[0]
	if l, ok := locale.Parse(first); ok {
		return l
	}
	return locale.Default
}

func db(c *fiber.Ctx) *gorm.DB {
	return database.DB.WithContext(c.UserContext())
}

// fail maps resolver errors to a 404; everything else goes to the error
// handler as a server error.
func fail(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return fiber.ErrNotFound
	}
	return err
}

type navItem struct {
	Label  string
	URL    string
	Active bool
}

type langLink struct {
	Code   string
	URL    string
	Active bool
}

func navigation(c *fiber.Ctx, l locale.Locale) []navItem {
	items := []struct {
		key     string
		section locale.Section
	}{
		{"products", locale.SectionProducts},
		{"industries", locale.SectionIndustries},
		{"blog", locale.SectionBlog},
		{"catalogs", locale.SectionCatalogs},
		{"videos", locale.SectionVideos},
		{"contact", locale.SectionContact},
	}

	out := make([]navItem, 0, len(items))
	for _, it := range items {
		url := site.Href(l, locale.SectionPath(it.section, l))
		out = append(out, navItem{
			Label:  label(l, it.key),
			URL:    url,
			Active: c.Path() == url || strings.HasPrefix(c.Path(), url+"/"),
		})
	}
	return out
}

func languages(l locale.Locale, meta locale.Meta) []langLink {
	out := make([]langLink, 0, len(locale.Supported))
	for _, loc := range locale.Supported {
		out = append(out, langLink{Code: loc.String(), URL: meta.Alternates[loc], Active: loc == l})
	}
	return out
}

// render fills the data every page shares and renders view in the main
// layout. Settings are read per request.
func render(c *fiber.Ctx, view string, meta locale.Meta, data fiber.Map) error {
	l := currentLocale(c)

	s, err := settings.Get(db(c))
	if err != nil {
		return err
	}
	if meta.OGImage == "" {
		meta.OGImage = s.DefaultOgImage
	}

	if data == nil {
		data = fiber.Map{}
	}
	data["L"] = l
	data["T"] = labels[l]
	data["Meta"] = meta
	data["Settings"] = s
	data["Address"] = s.Address().In(l, locale.FallbackToDefault)
	data["WorkingHours"] = s.WorkingHours().In(l, locale.FallbackToDefault)
	data["Nav"] = navigation(c, l)
	data["Languages"] = languages(l, meta)
	data["HomeURL"] = site.Href(l, "")
	if _, ok := data["Schema"]; !ok && meta.SchemaEnabled {
		data["Schema"] = webPageSchema(meta)
	}
	if !meta.SchemaEnabled {
		delete(data, "Schema")
	}

	return c.Render(view, data, layout)
}

func settingsFor(c *fiber.Ctx) *models.SiteSettings {
	s, err := settings.Get(db(c))
	if err != nil {
		return &models.SiteSettings{}
	}
	return s
}
