package admin

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"
)

var turkishFold = strings.NewReplacer(
	"ı", "i", "İ", "i", "I", "i",
	"ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g",
	"ç", "c", "Ç", "c",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
	"â", "a", "Â", "a",
	"î", "i", "Î", "i",
	"û", "u", "Û", "u",
	"&", " ve ",
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// MakeSlug turns a title or a hand-typed slug into the canonical form:
// Turkish letters folded to ASCII, lowercase words joined by single hyphens.
func MakeSlug(value string) string {
	folded := turkishFold.Replace(strings.TrimSpace(value))

	if normalized, err := slug.Normalize(folded); err == nil && normalized != "" {
		folded = normalized
	}

	out := nonSlugChars.ReplaceAllString(strings.ToLower(folded), "-")
	out = edgeHyphens.ReplaceAllString(out, "")
	if len(out) > 191 {
		out = strings.TrimRight(out[:191], "-")
	}
	return out
}
