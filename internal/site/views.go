package site

import (
	"html/template"
	"time"

	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/models"
)

// Link is a card pointing at another public page.
type Link struct {
	Title    string
	Summary  string
	URL      string
	Image    string
	ImageAlt string
	Icon     string
}

type PageView struct {
	Slug  string
	Title string
	Body  template.HTML
	Meta  locale.Meta
}

type ProductView struct {
	Slug             string
	Title            string
	ShortDescription string
	Description      template.HTML
	Features         template.HTML
	Applications     template.HTML
	Image            string
	ImageAlt         string
	Icon             string
	Industries       []Link
	Meta             locale.Meta
}

type IndustryView struct {
	Slug             string
	Title            string
	ShortDescription string
	Description      template.HTML
	Challenges       template.HTML
	Solutions        template.HTML
	Image            string
	ImageAlt         string
	Icon             string
	Products         []Link
	Meta             locale.Meta
}

type PostView struct {
	Slug        string
	Title       string
	Excerpt     string
	Content     template.HTML
	CoverImage  string
	Author      string
	PublishedAt *time.Time
	URL         string
	Category    *Link
	Meta        locale.Meta
}

type SlideView struct {
	Title      string
	Subtitle   string
	ButtonText string
	ButtonLink string
	Image      string
}

type CatalogView struct {
	Title       string
	Description string
	FileURL     string
	CoverImage  string
}

type VideoView struct {
	Title       string
	Description string
	EmbedID     string
	WatchURL    string
}

func rich(t locale.Text, l locale.Locale) template.HTML {
	// Rich text is sanitised before it is stored.
	return template.HTML(t.Field(l, locale.FieldBody))
}

// Href is the site-relative URL of path in l.
func Href(l locale.Locale, path string) string {
	if path == "" {
		return "/" + l.String()
	}
	return "/" + l.String() + "/" + path
}

func NewPageView(l locale.Locale, p *models.Page, siteBase string) PageView {
	return PageView{
		Slug:  p.Slug,
		Title: p.Title().Field(l, locale.FieldTitle),
		Body:  rich(p.Body(), l),
		Meta:  locale.BuildMeta(l, p.SEO.Input(p.Title(), locale.Text{}), siteBase, locale.Paths("", p.Slug)),
	}
}

func ProductLink(l locale.Locale, p *models.ProductCategory) Link {
	return Link{
		Title:    p.Title().Field(l, locale.FieldTitle),
		Summary:  p.ShortDescription().Field(l, locale.FieldShortDescription),
		URL:      Href(l, locale.Paths(locale.SectionProducts, p.Slug)[l]),
		Image:    p.Image,
		ImageAlt: imageAlt(l, locale.T(p.ImageAltTr, p.ImageAltEn), p.Title()),
		Icon:     p.Icon,
	}
}

func IndustryLink(l locale.Locale, i *models.Industry) Link {
	return Link{
		Title:    i.Title().Field(l, locale.FieldTitle),
		Summary:  i.ShortDescription().Field(l, locale.FieldShortDescription),
		URL:      Href(l, locale.Paths(locale.SectionIndustries, i.Slug)[l]),
		Image:    i.Image,
		ImageAlt: imageAlt(l, locale.T(i.ImageAltTr, i.ImageAltEn), i.Title()),
		Icon:     i.Icon,
	}
}

func CategoryLink(l locale.Locale, c *models.BlogCategory) Link {
	return Link{
		Title:   c.Name().Field(l, locale.FieldName),
		Summary: locale.T(c.DescriptionTr, c.DescriptionEn).Field(l, locale.FieldShortDescription),
		URL:     Href(l, locale.Paths(locale.SectionBlogTag, c.Slug)[l]),
	}
}

func PostLink(l locale.Locale, p *models.BlogPost) Link {
	return Link{
		Title:   p.Title().Field(l, locale.FieldTitle),
		Summary: p.Excerpt().Field(l, locale.FieldShortDescription),
		URL:     Href(l, locale.Paths(locale.SectionBlog, p.Slug)[l]),
		Image:   p.CoverImage,
	}
}

// imageAlt is a metadata-like field: it falls back to Turkish and then to
// the title so images are never unlabelled.
func imageAlt(l locale.Locale, alt, title locale.Text) string {
	if v := alt.Field(l, locale.FieldImageAlt); v != "" {
		return v
	}
	return title.In(l, locale.FallbackToDefault)
}

func NewProductView(l locale.Locale, p *models.ProductCategory, industries []models.Industry, siteBase string) ProductView {
	v := ProductView{
		Slug:             p.Slug,
		Title:            p.Title().Field(l, locale.FieldTitle),
		ShortDescription: p.ShortDescription().Field(l, locale.FieldShortDescription),
		Description:      rich(locale.T(p.DescriptionTr, p.DescriptionEn), l),
		Features:         rich(locale.T(p.FeaturesTr, p.FeaturesEn), l),
		Applications:     rich(locale.T(p.ApplicationsTr, p.ApplicationsEn), l),
		Image:            p.Image,
		ImageAlt:         imageAlt(l, locale.T(p.ImageAltTr, p.ImageAltEn), p.Title()),
		Icon:             p.Icon,
		Meta:             locale.BuildMeta(l, p.SEO.Input(p.Title(), p.ShortDescription()), siteBase, locale.Paths(locale.SectionProducts, p.Slug)),
	}
	if v.Meta.OGImage == "" {
		v.Meta.OGImage = p.Image
	}
	for i := range industries {
		v.Industries = append(v.Industries, IndustryLink(l, &industries[i]))
	}
	return v
}

func NewIndustryView(l locale.Locale, in *models.Industry, products []models.ProductCategory, siteBase string) IndustryView {
	v := IndustryView{
		Slug:             in.Slug,
		Title:            in.Title().Field(l, locale.FieldTitle),
		ShortDescription: in.ShortDescription().Field(l, locale.FieldShortDescription),
		Description:      rich(locale.T(in.DescriptionTr, in.DescriptionEn), l),
		Challenges:       rich(locale.T(in.ChallengesTr, in.ChallengesEn), l),
		Solutions:        rich(locale.T(in.SolutionsTr, in.SolutionsEn), l),
		Image:            in.Image,
		ImageAlt:         imageAlt(l, locale.T(in.ImageAltTr, in.ImageAltEn), in.Title()),
		Icon:             in.Icon,
		Meta:             locale.BuildMeta(l, in.SEO.Input(in.Title(), in.ShortDescription()), siteBase, locale.Paths(locale.SectionIndustries, in.Slug)),
	}
	if v.Meta.OGImage == "" {
		v.Meta.OGImage = in.Image
	}
	for i := range products {
		v.Products = append(v.Products, ProductLink(l, &products[i]))
	}
	return v
}

func NewPostView(l locale.Locale, p *models.BlogPost, siteBase string) PostView {
	v := PostView{
		Slug:        p.Slug,
		Title:       p.Title().Field(l, locale.FieldTitle),
		Excerpt:     p.Excerpt().Field(l, locale.FieldShortDescription),
		Content:     rich(locale.T(p.ContentTr, p.ContentEn), l),
		CoverImage:  p.CoverImage,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		URL:         Href(l, locale.Paths(locale.SectionBlog, p.Slug)[l]),
		Meta:        locale.BuildMeta(l, p.SEO.Input(p.Title(), p.Excerpt()), siteBase, locale.Paths(locale.SectionBlog, p.Slug)),
	}
	if v.Meta.OGImage == "" {
		v.Meta.OGImage = p.CoverImage
	}
	if p.Category != nil && p.Category.IsActive {
		link := CategoryLink(l, p.Category)
		v.Category = &link
	}
	return v
}

func NewSlideView(l locale.Locale, s *models.HeroSlide) SlideView {
	return SlideView{
		Title:      locale.T(s.TitleTr, s.TitleEn).Field(l, locale.FieldTitle),
		Subtitle:   locale.T(s.SubtitleTr, s.SubtitleEn).Field(l, locale.FieldSection),
		ButtonText: locale.T(s.ButtonTextTr, s.ButtonTextEn).Field(l, locale.FieldSection),
		ButtonLink: s.ButtonLink,
		Image:      s.Image,
	}
}

func NewCatalogView(l locale.Locale, c *models.Catalog) CatalogView {
	return CatalogView{
		Title:       locale.T(c.TitleTr, c.TitleEn).Field(l, locale.FieldTitle),
		Description: locale.T(c.DescriptionTr, c.DescriptionEn).Field(l, locale.FieldShortDescription),
		FileURL:     c.FileURL,
		CoverImage:  c.CoverImage,
	}
}

func NewVideoView(l locale.Locale, v *models.Video) VideoView {
	return VideoView{
		Title:       v.Title().Field(l, locale.FieldTitle),
		Description: locale.T(v.DescriptionTr, v.DescriptionEn).Field(l, locale.FieldShortDescription),
		EmbedID:     v.EmbedID(),
		WatchURL:    v.YoutubeURL,
	}
}

// SectionMeta builds head metadata for a listing page that has no stored
// SEO bundle of its own.
func SectionMeta(l locale.Locale, s locale.Section, title, description locale.Text, siteBase string) locale.Meta {
	in := locale.SEOInput{
		Title:       title,
		Description: description,
		IsIndexed:   true,
		IsFollowed:  true,
	}
	paths := map[locale.Locale]string{locale.TR: "", locale.EN: ""}
	if s != "" {
		paths = locale.Paths(s, "")
	}
	return locale.BuildMeta(l, in, siteBase, paths)
}
