package models

import (
	"time"

	"github.com/Kyz7/corporate-site/internal/locale"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SettingsID is the primary key of the only SiteSettings row.
const SettingsID = "settings"

type SiteSettings struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	CompanyName    string    `gorm:"size:255" json:"companyName"`
	AdminEmail     string    `gorm:"size:255" json:"adminEmail"`
	ContactEmail   string    `gorm:"size:255" json:"contactEmail"`
	Phone          string    `gorm:"size:50" json:"phone"`
	Whatsapp       string    `gorm:"size:50" json:"whatsapp"`
	AddressTr      string    `gorm:"type:text" json:"addressTr"`
	AddressEn      string    `gorm:"type:text" json:"addressEn"`
	WorkingHoursTr string    `gorm:"size:255" json:"workingHoursTr"`
	WorkingHoursEn string    `gorm:"size:255" json:"workingHoursEn"`
	MapEmbedURL    string    `gorm:"size:1000" json:"mapEmbedUrl"`
	LinkedinURL    string    `gorm:"size:500" json:"linkedinUrl"`
	InstagramURL   string    `gorm:"size:500" json:"instagramUrl"`
	FacebookURL    string    `gorm:"size:500" json:"facebookUrl"`
	YoutubeURL     string    `gorm:"size:500" json:"youtubeUrl"`
	TwitterURL     string    `gorm:"size:500" json:"twitterUrl"`
	DefaultOgImage string    `gorm:"size:500" json:"defaultOgImage"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s *SiteSettings) Address() locale.Text { return locale.T(s.AddressTr, s.AddressEn) }

func (s *SiteSettings) WorkingHours() locale.Text {
	return locale.T(s.WorkingHoursTr, s.WorkingHoursEn)
}

func (s SiteSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.AdminEmail, is.EmailFormat),
		validation.Field(&s.ContactEmail, is.EmailFormat),
		validation.Field(&s.LinkedinURL, is.URL),
		validation.Field(&s.InstagramURL, is.URL),
		validation.Field(&s.FacebookURL, is.URL),
		validation.Field(&s.YoutubeURL, is.URL),
		validation.Field(&s.TwitterURL, is.URL),
	)
}
