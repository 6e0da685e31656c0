package models

import (
	"time"

	"github.com/Kyz7/corporate-site/internal/locale"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type BlogCategory struct {
	Base
	Slug          string `gorm:"size:191;uniqueIndex;not null" json:"slug"`
	NameTr        string `gorm:"size:255;not null" json:"nameTr"`
	NameEn        string `gorm:"size:255" json:"nameEn"`
	DescriptionTr string `gorm:"type:text" json:"descriptionTr"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	Listing
	SEO
}

func (c *BlogCategory) GetSlug() string    { return c.Slug }
func (c *BlogCategory) SetSlug(s string)   { c.Slug = s }
func (c *BlogCategory) SlugSource() string { return c.NameTr }
func (c *BlogCategory) Name() locale.Text  { return locale.T(c.NameTr, c.NameEn) }

func (c *BlogCategory) SetDefaults() {
	c.IsActive = true
	c.SEO.setDefaults()
}

func (c BlogCategory) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Slug, slugRules...),
		validation.Field(&c.NameTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.NameEn, validation.Length(0, 255)),
	)
}

// BlogPost belongs to at most one category. Categories that still own posts
// cannot be deleted.
type BlogPost struct {
	Base
	Slug        string        `gorm:"size:191;uniqueIndex;not null" json:"slug"`
	TitleTr     string        `gorm:"size:255;not null" json:"titleTr"`
	TitleEn     string        `gorm:"size:255" json:"titleEn"`
	ExcerptTr   string        `gorm:"type:text" json:"excerptTr"`
	ExcerptEn   string        `gorm:"type:text" json:"excerptEn"`
	ContentTr   string        `gorm:"type:text" json:"contentTr"`
	ContentEn   string        `gorm:"type:text" json:"contentEn"`
	CoverImage  string        `gorm:"size:500" json:"coverImage"`
	Author      string        `gorm:"size:100" json:"author"`
	PublishedAt *time.Time    `gorm:"index" json:"publishedAt"`
	CategoryID  *string       `gorm:"size:36;index" json:"categoryId"`
	Category    *BlogCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE" json:"category,omitempty"`
	Listing
	SEO
}

func (p *BlogPost) GetSlug() string    { return p.Slug }
func (p *BlogPost) SetSlug(s string)   { p.Slug = s }
func (p *BlogPost) SlugSource() string { return p.TitleTr }
func (p *BlogPost) Title() locale.Text { return locale.T(p.TitleTr, p.TitleEn) }

func (p *BlogPost) Excerpt() locale.Text { return locale.T(p.ExcerptTr, p.ExcerptEn) }

func (p *BlogPost) SetDefaults() {
	p.IsActive = true
	p.SEO.setDefaults()
}

func (p *BlogPost) Normalize() {
	if p.CategoryID != nil && *p.CategoryID == "" {
		p.CategoryID = nil
	}
	p.Category = nil
	if p.PublishedAt == nil && p.IsActive {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
}

func (p *BlogPost) Sanitize(clean func(string) string) {
	p.ContentTr = clean(p.ContentTr)
	p.ContentEn = clean(p.ContentEn)
}

func (p BlogPost) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, slugRules...),
		validation.Field(&p.TitleTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.TitleEn, validation.Length(0, 255)),
		validation.Field(&p.Author, validation.Length(0, 100)),
	)
}
