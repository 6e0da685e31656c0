package models

// Record is satisfied by every model embedding Base.
type Record interface {
	Record() *Base
}

// Sluggable models are addressed publicly by a unique slug.
type Sluggable interface {
	GetSlug() string
	SetSlug(string)
	SlugSource() string
}

// Defaulter applies creation-time defaults before the payload is decoded,
// so only fields missing from the payload keep them.
type Defaulter interface {
	SetDefaults()
}

type Validatable interface {
	Validate() error
}

// Sanitizable models hold editor HTML that is cleaned before it is stored.
type Sanitizable interface {
	Sanitize(clean func(string) string)
}

// Normalizer models tidy derived or list-valued fields before saving.
type Normalizer interface {
	Normalize()
}

// All lists every table for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Page{},
		&ProductCategory{},
		&Industry{},
		&BlogCategory{},
		&BlogPost{},
		&Catalog{},
		&HeroSlide{},
		&Reference{},
		&Video{},
		&ContactMessage{},
		&QuoteRequest{},
		&JobApplication{},
		&SiteSettings{},
	}
}
