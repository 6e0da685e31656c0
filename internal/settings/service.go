package settings

import (
	"errors"

	"github.com/Kyz7/corporate-site/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Get reads the settings row on every call. A missing row yields zero
// values; only Upsert ever writes it.
func Get(db *gorm.DB) (*models.SiteSettings, error) {
	var s models.SiteSettings
	err := db.First(&s, "id = ?", models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.SiteSettings{ID: models.SettingsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert creates or replaces the single settings row.
func Upsert(db *gorm.DB, in models.SiteSettings) (*models.SiteSettings, error) {
	in.ID = models.SettingsID
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&in).Error
	if err != nil {
		return nil, err
	}
	return Get(db)
}
