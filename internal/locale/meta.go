package locale

import (
	"strings"
)

// SEOInput carries the stored SEO bundle of an entity plus the display
// fields the meta values fall back to.
type SEOInput struct {
	MetaTitle       Text
	MetaDescription Text
	OGTitle         Text
	OGDescription   Text
	OGImage         string
	CanonicalURL    string

	Title       Text
	Description Text

	IsIndexed     bool
	IsFollowed    bool
	SchemaEnabled bool
}

// Meta is the resolved head metadata of one page in one locale.
type Meta struct {
	Locale        Locale
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	OGImage       string
	Canonical     string
	Robots        string
	IsIndexed     bool
	IsFollowed    bool
	SchemaEnabled bool
	Alternates    map[Locale]string
}

// BuildMeta derives head metadata for l. path is the locale-independent
// route of the entity given per locale, e.g. {"tr": "urunler/vana", "en": "products/vana"}.
// The boolean directives are copied as stored.
func BuildMeta(l Locale, in SEOInput, siteBase string, paths map[Locale]string) Meta {
	m := Meta{
		Locale:        l,
		OGImage:       in.OGImage,
		IsIndexed:     in.IsIndexed,
		IsFollowed:    in.IsFollowed,
		SchemaEnabled: in.SchemaEnabled,
		Alternates:    make(map[Locale]string, len(Supported)),
	}

	m.Title = firstOwn(l, PolicyFor(FieldMetaTitle), in.MetaTitle, in.Title)
	m.Description = firstOwn(l, PolicyFor(FieldMetaDescription), in.MetaDescription, in.Description)
	m.OGTitle = in.OGTitle.In(l, NoFallback)
	if m.OGTitle == "" {
		m.OGTitle = m.Title
	}
	m.OGDescription = in.OGDescription.In(l, NoFallback)
	if m.OGDescription == "" {
		m.OGDescription = m.Description
	}

	for _, loc := range Supported {
		m.Alternates[loc] = URL(siteBase, loc, paths[loc])
	}
	if c := strings.TrimSpace(in.CanonicalURL); c != "" {
		m.Canonical = c
	} else {
		m.Canonical = m.Alternates[l]
	}

	m.Robots = robots(in.IsIndexed, in.IsFollowed)
	return m
}

// firstOwn prefers values written for l itself and only then applies fb,
// walking the candidates in order each time.
func firstOwn(l Locale, fb Fallback, candidates ...Text) string {
	for _, t := range candidates {
		if t.Has(l) {
			return t.In(l, NoFallback)
		}
	}
	for _, t := range candidates {
		if v := t.In(l, fb); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func robots(index, follow bool) string {
	r := "noindex"
	if index {
		r = "index"
	}
	if follow {
		return r + ",follow"
	}
	return r + ",nofollow"
}

// URL joins the site base, locale and path into an absolute URL.
func URL(siteBase string, l Locale, path string) string {
	base := strings.TrimRight(siteBase, "/")
	path = strings.Trim(path, "/")
	if path == "" {
		return base + "/" + l.String()
	}
	return base + "/" + l.String() + "/" + path
}
