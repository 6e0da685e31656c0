package models

import (
	"net/url"
	"strings"

	"github.com/Kyz7/corporate-site/internal/locale"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Catalog is a downloadable PDF brochure.
type Catalog struct {
	Base
	TitleTr       string `gorm:"size:255;not null" json:"titleTr"`
	TitleEn       string `gorm:"size:255" json:"titleEn"`
	DescriptionTr string `gorm:"type:text" json:"descriptionTr"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	FileURL       string `gorm:"size:500;not null" json:"fileUrl"`
	CoverImage    string `gorm:"size:500" json:"coverImage"`
	Listing
}

func (c *Catalog) SetDefaults() { c.IsActive = true }

func (c Catalog) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TitleTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.FileURL, validation.Required, validation.Length(1, 500)),
	)
}

// HeroSlide is one homepage carousel item.
type HeroSlide struct {
	Base
	TitleTr      string `gorm:"size:255;not null" json:"titleTr"`
	TitleEn      string `gorm:"size:255" json:"titleEn"`
	SubtitleTr   string `gorm:"size:500" json:"subtitleTr"`
	SubtitleEn   string `gorm:"size:500" json:"subtitleEn"`
	ButtonTextTr string `gorm:"size:100" json:"buttonTextTr"`
	ButtonTextEn string `gorm:"size:100" json:"buttonTextEn"`
	ButtonLink   string `gorm:"size:500" json:"buttonLink"`
	Image        string `gorm:"size:500;not null" json:"image"`
	Listing
}

func (h *HeroSlide) SetDefaults() { h.IsActive = true }

func (h HeroSlide) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.TitleTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&h.Image, validation.Required),
	)
}

// Reference is a client or partner logo.
type Reference struct {
	Base
	Name    string `gorm:"size:255;not null" json:"name"`
	Logo    string `gorm:"size:500;not null" json:"logo"`
	Website string `gorm:"size:500" json:"website"`
	Listing
}

func (r *Reference) SetDefaults() { r.IsActive = true }

func (r Reference) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Logo, validation.Required),
		validation.Field(&r.Website, is.URL),
	)
}

// Video is a YouTube item keyed by its watch URL.
type Video struct {
	Base
	TitleTr       string `gorm:"size:255;not null" json:"titleTr"`
	TitleEn       string `gorm:"size:255" json:"titleEn"`
	DescriptionTr string `gorm:"type:text" json:"descriptionTr"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	YoutubeURL    string `gorm:"size:500;uniqueIndex;not null" json:"youtubeUrl"`
	Listing
}

func (v *Video) SetDefaults() { v.IsActive = true }

func (v *Video) Title() locale.Text { return locale.T(v.TitleTr, v.TitleEn) }

// EmbedID extracts the video id from watch, short and embed URLs.
func (v *Video) EmbedID() string {
	return YouTubeID(v.YoutubeURL)
}

func (v Video) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.TitleTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&v.YoutubeURL, validation.Required, is.URL, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if YouTubeID(s) == "" {
				return validation.NewError("validation_youtube_url", "must be a YouTube video URL")
			}
			return nil
		})),
	)
}

func YouTubeID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")
	switch host {
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	case "youtube.com", "youtube-nocookie.com":
		if id := u.Query().Get("v"); id != "" {
			return id
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				return strings.Trim(strings.TrimPrefix(u.Path, prefix), "/")
			}
		}
	}
	return ""
}
