// Package locale resolves the parallel Turkish/English fields stored on every
// content row into a single display value for one request locale.
//
// Turkish is the required locale and English the optional one. Whether an
// empty English value falls back to Turkish is never implicit: each call site
// states a Fallback, and the Policy table below records the choice per field.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	TR Locale = "tr"
	EN Locale = "en"

	Default = TR
)

var Supported = []Locale{TR, EN}

var supportedTags = []language.Tag{language.Turkish, language.English}

var matcher = language.NewMatcher(supportedTags)

func Parse(value string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(value))) {
	case TR:
		return TR, true
	case EN:
		return EN, true
	}
	return "", false
}

func (l Locale) String() string { return string(l) }

// Negotiate picks the best supported locale for an Accept-Language header.
// Anything unparseable or unmatched lands on the default locale.
func Negotiate(acceptLanguage string) Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}
