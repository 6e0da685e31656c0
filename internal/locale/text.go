package locale

import "strings"

// Fallback states what an empty optional-locale value resolves to.
type Fallback int

const (
	// NoFallback renders the empty string rather than the wrong language.
	NoFallback Fallback = iota
	// FallbackToDefault substitutes the Turkish value.
	FallbackToDefault
)

// Field names the display fields whose fallback behaviour is fixed here.
type Field string

const (
	FieldTitle            Field = "title"
	FieldShortDescription Field = "short_description"
	FieldBody             Field = "body"
	FieldSection          Field = "section"
	FieldImageAlt         Field = "image_alt"
	FieldName             Field = "name"

	FieldMetaTitle       Field = "meta_title"
	FieldMetaDescription Field = "meta_description"
	FieldOGTitle         Field = "og_title"
	FieldOGDescription   Field = "og_description"
)

// Policy is the per-field fallback table. Metadata crosses locales so a
// <title> is never empty; primary content never does.
var Policy = map[Field]Fallback{
	FieldTitle:            NoFallback,
	FieldShortDescription: NoFallback,
	FieldBody:             NoFallback,
	FieldSection:          NoFallback,
	FieldName:             NoFallback,
	FieldImageAlt:         FallbackToDefault,

	FieldMetaTitle:       FallbackToDefault,
	FieldMetaDescription: FallbackToDefault,
	FieldOGTitle:         FallbackToDefault,
	FieldOGDescription:   FallbackToDefault,
}

// PolicyFor returns the declared fallback, NoFallback for unknown fields.
func PolicyFor(f Field) Fallback {
	if fb, ok := Policy[f]; ok {
		return fb
	}
	return NoFallback
}

// Text is one value stored once per locale.
type Text struct {
	Tr string
	En string
}

func T(tr, en string) Text { return Text{Tr: tr, En: en} }

// In resolves the value for l. Turkish is returned as stored; English
// falls back only when fb asks for it.
func (t Text) In(l Locale, fb Fallback) string {
	if l != EN {
		return t.Tr
	}
	if strings.TrimSpace(t.En) != "" {
		return t.En
	}
	if fb == FallbackToDefault {
		return t.Tr
	}
	return ""
}

// Field resolves t using the fallback declared for f.
func (t Text) Field(l Locale, f Field) string {
	return t.In(l, PolicyFor(f))
}

// Has reports whether the locale has its own non-blank value.
func (t Text) Has(l Locale) bool {
	if l == EN {
		return strings.TrimSpace(t.En) != ""
	}
	return strings.TrimSpace(t.Tr) != ""
}
