package models

import (
	"encoding/json"

	"github.com/Kyz7/corporate-site/internal/locale"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"
)

// ProductCategory is a product family page. RelatedIndustries holds industry
// slugs as a weak reference; unknown slugs are dropped at render time.
type ProductCategory struct {
	Base
	Slug               string         `gorm:"size:191;uniqueIndex;not null" json:"slug"`
	TitleTr            string         `gorm:"size:255;not null" json:"titleTr"`
	TitleEn            string         `gorm:"size:255" json:"titleEn"`
	ShortDescriptionTr string         `gorm:"type:text" json:"shortDescriptionTr"`
	ShortDescriptionEn string         `gorm:"type:text" json:"shortDescriptionEn"`
	DescriptionTr      string         `gorm:"type:text" json:"descriptionTr"`
	DescriptionEn      string         `gorm:"type:text" json:"descriptionEn"`
	FeaturesTr         string         `gorm:"type:text" json:"featuresTr"`
	FeaturesEn         string         `gorm:"type:text" json:"featuresEn"`
	ApplicationsTr     string         `gorm:"type:text" json:"applicationsTr"`
	ApplicationsEn     string         `gorm:"type:text" json:"applicationsEn"`
	Image              string         `gorm:"size:500" json:"image"`
	ImageAltTr         string         `gorm:"size:255" json:"imageAltTr"`
	ImageAltEn         string         `gorm:"size:255" json:"imageAltEn"`
	Icon               string         `gorm:"size:100" json:"icon"`
	RelatedIndustries  datatypes.JSON `json:"relatedIndustries"`
	Listing
	SEO
}

func (p *ProductCategory) GetSlug() string    { return p.Slug }
func (p *ProductCategory) SetSlug(s string)   { p.Slug = s }
func (p *ProductCategory) SlugSource() string { return p.TitleTr }

func (p *ProductCategory) SetDefaults() {
	p.IsActive = true
	p.SEO.setDefaults()
}

func (p *ProductCategory) Normalize() {
	p.RelatedIndustries = normalizeSlugs(p.RelatedIndustries)
}

func (p *ProductCategory) Sanitize(clean func(string) string) {
	for _, f := range []*string{
		&p.DescriptionTr, &p.DescriptionEn,
		&p.FeaturesTr, &p.FeaturesEn,
		&p.ApplicationsTr, &p.ApplicationsEn,
	} {
		*f = clean(*f)
	}
}

func (p *ProductCategory) RelatedIndustrySlugs() []string { return DecodeSlugs(p.RelatedIndustries) }

func (p *ProductCategory) Title() locale.Text { return locale.T(p.TitleTr, p.TitleEn) }

func (p *ProductCategory) ShortDescription() locale.Text {
	return locale.T(p.ShortDescriptionTr, p.ShortDescriptionEn)
}

func (p ProductCategory) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, slugRules...),
		validation.Field(&p.TitleTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.TitleEn, validation.Length(0, 255)),
		validation.Field(&p.RelatedIndustries, validation.By(slugListRule)),
	)
}

// Industry is a sector page listing the product categories used in it.
type Industry struct {
	Base
	Slug               string         `gorm:"size:191;uniqueIndex;not null" json:"slug"`
	TitleTr            string         `gorm:"size:255;not null" json:"titleTr"`
	TitleEn            string         `gorm:"size:255" json:"titleEn"`
	ShortDescriptionTr string         `gorm:"type:text" json:"shortDescriptionTr"`
	ShortDescriptionEn string         `gorm:"type:text" json:"shortDescriptionEn"`
	DescriptionTr      string         `gorm:"type:text" json:"descriptionTr"`
	DescriptionEn      string         `gorm:"type:text" json:"descriptionEn"`
	ChallengesTr       string         `gorm:"type:text" json:"challengesTr"`
	ChallengesEn       string         `gorm:"type:text" json:"challengesEn"`
	SolutionsTr        string         `gorm:"type:text" json:"solutionsTr"`
	SolutionsEn        string         `gorm:"type:text" json:"solutionsEn"`
	Image              string         `gorm:"size:500" json:"image"`
	ImageAltTr         string         `gorm:"size:255" json:"imageAltTr"`
	ImageAltEn         string         `gorm:"size:255" json:"imageAltEn"`
	Icon               string         `gorm:"size:100" json:"icon"`
	RelatedProducts    datatypes.JSON `json:"relatedProducts"`
	Listing
	SEO
}

func (i *Industry) GetSlug() string    { return i.Slug }
func (i *Industry) SetSlug(s string)   { i.Slug = s }
func (i *Industry) SlugSource() string { return i.TitleTr }

func (i *Industry) SetDefaults() {
	i.IsActive = true
	i.SEO.setDefaults()
}

func (i *Industry) Normalize() {
	i.RelatedProducts = normalizeSlugs(i.RelatedProducts)
}

func (i *Industry) Sanitize(clean func(string) string) {
	for _, f := range []*string{
		&i.DescriptionTr, &i.DescriptionEn,
		&i.ChallengesTr, &i.ChallengesEn,
		&i.SolutionsTr, &i.SolutionsEn,
	} {
		*f = clean(*f)
	}
}

func (i *Industry) RelatedProductSlugs() []string { return DecodeSlugs(i.RelatedProducts) }

func (i *Industry) Title() locale.Text { return locale.T(i.TitleTr, i.TitleEn) }

func (i *Industry) ShortDescription() locale.Text {
	return locale.T(i.ShortDescriptionTr, i.ShortDescriptionEn)
}

func (i Industry) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Slug, slugRules...),
		validation.Field(&i.TitleTr, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.TitleEn, validation.Length(0, 255)),
		validation.Field(&i.RelatedProducts, validation.By(slugListRule)),
	)
}

func slugListRule(value interface{}) error {
	raw, _ := value.(datatypes.JSON)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var slugs []string
	if err := json.Unmarshal(raw, &slugs); err != nil {
		return validation.NewError("validation_slug_list", "must be a list of slugs")
	}
	return validation.Validate(slugs, validation.Each(
		validation.Length(1, 191),
		validation.Match(slugPattern).Error("must contain lowercase letters, digits and hyphens only"),
	))
}
