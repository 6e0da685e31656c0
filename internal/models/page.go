package models

import (
	"github.com/Kyz7/corporate-site/internal/locale"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const PageTypeStatic = "static"

// Page is a static informational or legal page served from the catch-all route.
type Page struct {
	Base
	Slug      string `gorm:"size:191;uniqueIndex;not null" json:"slug"`
	Type      string `gorm:"size:20;not null" json:"type"`
	TitleTr   string `gorm:"size:255;not null" json:"titleTr"`
	TitleEn   string `gorm:"size:255" json:"titleEn"`
	ContentTr string `gorm:"type:text" json:"contentTr"`
	ContentEn string `gorm:"type:text" json:"contentEn"`
	Listing
	SEO
}

func (p *Page) GetSlug() string    { return p.Slug }
func (p *Page) SetSlug(s string)   { p.Slug = s }
func (p *Page) SlugSource() string { return p.TitleTr }
func (p *Page) Title() locale.Text { return locale.T(p.TitleTr, p.TitleEn) }
func (p *Page) Body() locale.Text  { return locale.T(p.ContentTr, p.ContentEn) }

func (p *Page) SetDefaults() {
	p.Type = PageTypeStatic
	p.IsActive = true
	p.SEO.setDefaults()
}

func (p *Page) Sanitize(clean func(string) string) {
	p.ContentTr = clean(p.ContentTr)
	p.ContentEn = clean(p.ContentEn)
}

func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, slugRules...),
		validation.Field(&p.Type, validation.Required, validation.In(PageTypeStatic)),
		validation.Field(&p.TitleTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.TitleEn, validation.Length(0, 255)),
	)
}
