package locale

// Section identifies a specialised content listing with its own route prefix.
type Section string

const (
	SectionProducts   Section = "products"
	SectionIndustries Section = "industries"
	SectionBlog       Section = "blog"
	SectionBlogTag    Section = "blog-category"
	SectionCatalogs   Section = "catalogs"
	SectionVideos     Section = "videos"
	SectionContact    Section = "contact"
)

var sectionPrefixes = map[Section]map[Locale]string{
	SectionProducts:   {TR: "urunler", EN: "products"},
	SectionIndustries: {TR: "sektorler", EN: "industries"},
	SectionBlog:       {TR: "blog", EN: "blog"},
	SectionBlogTag:    {TR: "blog/kategori", EN: "blog/category"},
	SectionCatalogs:   {TR: "kataloglar", EN: "catalogs"},
	SectionVideos:     {TR: "videolar", EN: "videos"},
	SectionContact:    {TR: "iletisim", EN: "contact"},
}

// SectionPath returns the route prefix of s in l.
func SectionPath(s Section, l Locale) string {
	return sectionPrefixes[s][l]
}

// Paths builds the per-locale route of an entity living under s.
// An empty section means a top-level page.
func Paths(s Section, slug string) map[Locale]string {
	out := make(map[Locale]string, len(Supported))
	for _, l := range Supported {
		prefix := ""
		if s != "" {
			prefix = SectionPath(s, l)
		}
		switch {
		case prefix == "":
			out[l] = slug
		case slug == "":
			out[l] = prefix
		default:
			out[l] = prefix + "/" + slug
		}
	}
	return out
}
