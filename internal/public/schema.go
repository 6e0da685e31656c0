package public

import (
	"time"

	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/site"
)

// JSON-LD blocks are plain maps; html/template encodes them as JSON inside
// the ld+json script element.

func organizationSchema(l locale.Locale, s *models.SiteSettings) map[string]interface{} {
	org := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     s.CompanyName,
		"url":      siteBase,
	}
	if s.ContactEmail != "" || s.Phone != "" {
		org["contactPoint"] = map[string]interface{}{
			"@type":       "ContactPoint",
			"email":       s.ContactEmail,
			"telephone":   s.Phone,
			"contactType": "customer service",
		}
	}
	if addr := s.Address().In(l, locale.FallbackToDefault); addr != "" {
		org["address"] = addr
	}

	var sameAs []string
	for _, u := range []string{s.LinkedinURL, s.InstagramURL, s.FacebookURL, s.YoutubeURL, s.TwitterURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		org["sameAs"] = sameAs
	}
	return org
}

func webPageSchema(meta locale.Meta) map[string]interface{} {
	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        meta.Title,
		"description": meta.Description,
		"url":         meta.Canonical,
		"inLanguage":  meta.Locale.String(),
	}
}

func articleSchema(v site.PostView, s *models.SiteSettings) map[string]interface{} {
	a := map[string]interface{}{
		"@context":         "https://schema.org",
		"@type":            "Article",
		"headline":         v.Meta.Title,
		"description":      v.Meta.Description,
		"mainEntityOfPage": v.Meta.Canonical,
		"inLanguage":       v.Meta.Locale.String(),
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  s.CompanyName,
		},
	}
	if v.Author != "" {
		a["author"] = map[string]interface{}{"@type": "Person", "name": v.Author}
	}
	if v.PublishedAt != nil {
		a["datePublished"] = v.PublishedAt.UTC().Format(time.RFC3339)
	}
	if v.Meta.OGImage != "" {
		a["image"] = v.Meta.OGImage
	}
	return a
}
