package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/Kyz7/corporate-site/internal/locale"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base is embedded by every row that owns a generated id. Ids are UUIDv7 so
// that id order follows creation order.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID != "" {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	b.ID = id.String()
	return nil
}

func (b *Base) Record() *Base { return b }

// Listing carries the public visibility flag and manual sort position.
type Listing struct {
	IsActive bool `gorm:"index;not null" json:"isActive"`
	Order    int  `gorm:"column:sort_order;index;not null" json:"order"`
}

// SEO is the optional metadata bundle shared by routable entities.
type SEO struct {
	MetaTitleTr       string `gorm:"size:255" json:"metaTitleTr"`
	MetaTitleEn       string `gorm:"size:255" json:"metaTitleEn"`
	MetaDescriptionTr string `gorm:"size:500" json:"metaDescriptionTr"`
	MetaDescriptionEn string `gorm:"size:500" json:"metaDescriptionEn"`
	OgTitleTr         string `gorm:"size:255" json:"ogTitleTr"`
	OgTitleEn         string `gorm:"size:255" json:"ogTitleEn"`
	OgDescriptionTr   string `gorm:"size:500" json:"ogDescriptionTr"`
	OgDescriptionEn   string `gorm:"size:500" json:"ogDescriptionEn"`
	OgImage           string `gorm:"size:500" json:"ogImage"`
	CanonicalURL      string `gorm:"size:500" json:"canonicalUrl"`
	IsIndexed         bool   `gorm:"not null" json:"isIndexed"`
	IsFollowed        bool   `gorm:"not null" json:"isFollowed"`
	SchemaEnabled     bool   `gorm:"not null" json:"schemaEnabled"`
}

func (s *SEO) setDefaults() {
	s.IsIndexed = true
	s.IsFollowed = true
	s.SchemaEnabled = true
}

// Input pairs the stored bundle with the display fields it falls back to.
func (s SEO) Input(title, description locale.Text) locale.SEOInput {
	return locale.SEOInput{
		MetaTitle:       locale.T(s.MetaTitleTr, s.MetaTitleEn),
		MetaDescription: locale.T(s.MetaDescriptionTr, s.MetaDescriptionEn),
		OGTitle:         locale.T(s.OgTitleTr, s.OgTitleEn),
		OGDescription:   locale.T(s.OgDescriptionTr, s.OgDescriptionEn),
		OGImage:         s.OgImage,
		CanonicalURL:    s.CanonicalURL,
		Title:           title,
		Description:     description,
		IsIndexed:       s.IsIndexed,
		IsFollowed:      s.IsFollowed,
		SchemaEnabled:   s.SchemaEnabled,
	}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var slugRules = []validation.Rule{
	validation.Required,
	validation.Length(1, 191),
	validation.Match(slugPattern).Error("must contain lowercase letters, digits and hyphens only"),
}

// DecodeSlugs reads a JSON array of slugs, ignoring malformed payloads.
func DecodeSlugs(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var slugs []string
	if err := json.Unmarshal(raw, &slugs); err != nil {
		return nil
	}
	return slugs
}

// normalizeSlugs re-encodes a slug list, leaving payloads that are not a
// JSON array of strings untouched for validation to reject.
func normalizeSlugs(raw datatypes.JSON) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return raw
	}
	var slugs []string
	if err := json.Unmarshal(raw, &slugs); err != nil {
		return raw
	}
	return EncodeSlugs(slugs)
}

// EncodeSlugs stores slugs trimmed and de-duplicated, keeping the given order.
func EncodeSlugs(slugs []string) datatypes.JSON {
	seen := make(map[string]bool, len(slugs))
	clean := make([]string, 0, len(slugs))
	for _, s := range slugs {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		clean = append(clean, s)
	}
	out, _ := json.Marshal(clean)
	return datatypes.JSON(out)
}
