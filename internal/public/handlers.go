package public

import (
	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/Kyz7/corporate-site/internal/site"
	"github.com/gofiber/fiber/v2"
)

const (
	homePostCount = 3
	blogPageSize  = 9
)

// RootRedirect sends / to the best matching locale.
func RootRedirect(c *fiber.Ctx) error {
	l := locale.Negotiate(c.Get(fiber.HeaderAcceptLanguage))
	c.Set(fiber.HeaderVary, fiber.HeaderAcceptLanguage)
	return c.Redirect(site.Href(l, ""), fiber.StatusFound)
}

func Home(c *fiber.Ctx) error {
	l := currentLocale(c)
	q := db(c)

	slides, err := site.ListActive[models.HeroSlide](q, 0)
	if err != nil {
		return err
	}
	products, err := site.ListActive[models.ProductCategory](q, 0)
	if err != nil {
		return err
	}
	industries, err := site.ListActive[models.Industry](q, 0)
	if err != nil {
		return err
	}
	references, err := site.ListActive[models.Reference](q, 0)
	if err != nil {
		return err
	}
	videos, err := site.ListActive[models.Video](q, 3)
	if err != nil {
		return err
	}

	var posts []models.BlogPost
	err = q.Where("is_active = ?", true).
		Order("published_at DESC").Order("created_at DESC").
		Limit(homePostCount).Find(&posts).Error
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Slides":     mapSlides(l, slides),
		"Products":   productLinks(l, products),
		"Industries": industryLinks(l, industries),
		"References": references,
		"Posts":      postLinks(l, posts),
		"Videos":     mapVideos(l, videos),
	}

	meta := site.SectionMeta(l, "", labelText("home"), labelText("homeDescription"), siteBase)
	s := settingsFor(c)
	if s.CompanyName != "" {
		meta.Title = s.CompanyName
		meta.OGTitle = s.CompanyName
	}
	meta.SchemaEnabled = true
	data["Schema"] = organizationSchema(l, s)

	return render(c, "home", meta, data)
}

func Products(c *fiber.Ctx) error {
	l := currentLocale(c)
	items, err := site.ListActive[models.ProductCategory](db(c), 0)
	if err != nil {
		return err
	}
	meta := site.SectionMeta(l, locale.SectionProducts, labelText("products"), locale.Text{}, siteBase)
	return render(c, "listing", meta, fiber.Map{
		"Heading": label(l, "products"),
		"Items":   productLinks(l, items),
	})
}

func Product(c *fiber.Ctx) error {
	l := currentLocale(c)
	q := db(c)

	p, err := site.FindActiveBySlug[models.ProductCategory](q, c.Params("slug"))
	if err != nil {
		return fail(err)
	}
	related, err := site.ExpandRelated[models.Industry](q, p.RelatedIndustrySlugs())
	if err != nil {
		return err
	}

	v := site.NewProductView(l, p, related, siteBase)
	return render(c, "product", v.Meta, fiber.Map{"Product": v})
}

func Industries(c *fiber.Ctx) error {
	l := currentLocale(c)
	items, err := site.ListActive[models.Industry](db(c), 0)
	if err != nil {
		return err
	}
	meta := site.SectionMeta(l, locale.SectionIndustries, labelText("industries"), locale.Text{}, siteBase)
	return render(c, "listing", meta, fiber.Map{
		"Heading": label(l, "industries"),
		"Items":   industryLinks(l, items),
	})
}

func Industry(c *fiber.Ctx) error {
	l := currentLocale(c)
	q := db(c)

	in, err := site.FindActiveBySlug[models.Industry](q, c.Params("slug"))
	if err != nil {
		return fail(err)
	}
	related, err := site.ExpandRelated[models.ProductCategory](q, in.RelatedProductSlugs())
	if err != nil {
		return err
	}

	v := site.NewIndustryView(l, in, related, siteBase)
	return render(c, "industry", v.Meta, fiber.Map{"Industry": v})
}

func Blog(c *fiber.Ctx) error {
	l := currentLocale(c)
	meta := site.SectionMeta(l, locale.SectionBlog, labelText("blog"), locale.Text{}, siteBase)
	return blogListing(c, l, meta, label(l, "blog"), "")
}

func BlogCategory(c *fiber.Ctx) error {
	l := currentLocale(c)

	cat, err := site.FindActiveBySlug[models.BlogCategory](db(c), c.Params("slug"))
	if err != nil {
		return fail(err)
	}

	meta := locale.BuildMeta(l, cat.SEO.Input(cat.Name(), locale.T(cat.DescriptionTr, cat.DescriptionEn)),
		siteBase, locale.Paths(locale.SectionBlogTag, cat.Slug))
	return blogListing(c, l, meta, cat.Name().Field(l, locale.FieldName), cat.ID)
}

func blogListing(c *fiber.Ctx, l locale.Locale, meta locale.Meta, heading, categoryID string) error {
	q := db(c)
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	scope := site.ActiveOrdered(q.Model(&models.BlogPost{}))
	if categoryID != "" {
		scope = scope.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return err
	}
	var posts []models.BlogPost
	if err := scope.Offset((page - 1) * blogPageSize).Limit(blogPageSize).Find(&posts).Error; err != nil {
		return err
	}

	categories, err := site.ListActive[models.BlogCategory](q, 0)
	if err != nil {
		return err
	}
	catLinks := make([]site.Link, 0, len(categories))
	for i := range categories {
		catLinks = append(catLinks, site.CategoryLink(l, &categories[i]))
	}

	pm := response.CalculateMeta(page, blogPageSize, total)
	return render(c, "blog", meta, fiber.Map{
		"Heading":    heading,
		"Posts":      postLinks(l, posts),
		"Categories": catLinks,
		"Page":       page,
		"PrevPage":   page - 1,
		"NextPage":   nextPage(page, pm.TotalPages),
	})
}

func nextPage(page int, totalPages int64) int {
	if int64(page) < totalPages {
		return page + 1
	}
	return 0
}

func BlogPost(c *fiber.Ctx) error {
	l := currentLocale(c)

	p, err := site.FindActiveBySlug[models.BlogPost](db(c).Preload("Category"), c.Params("slug"))
	if err != nil {
		return fail(err)
	}

	v := site.NewPostView(l, p, siteBase)
	data := fiber.Map{"Post": v}
	if v.Meta.SchemaEnabled {
		data["Schema"] = articleSchema(v, settingsFor(c))
	}
	return render(c, "post", v.Meta, data)
}

func Catalogs(c *fiber.Ctx) error {
	l := currentLocale(c)
	items, err := site.ListActive[models.Catalog](db(c), 0)
	if err != nil {
		return err
	}
	views := make([]site.CatalogView, 0, len(items))
	for i := range items {
		views = append(views, site.NewCatalogView(l, &items[i]))
	}
	meta := site.SectionMeta(l, locale.SectionCatalogs, labelText("catalogs"), locale.Text{}, siteBase)
	return render(c, "catalogs", meta, fiber.Map{"Catalogs": views})
}

func Videos(c *fiber.Ctx) error {
	l := currentLocale(c)
	items, err := site.ListActive[models.Video](db(c), 0)
	if err != nil {
		return err
	}
	meta := site.SectionMeta(l, locale.SectionVideos, labelText("videos"), locale.Text{}, siteBase)
	return render(c, "videos", meta, fiber.Map{"Videos": mapVideos(l, items)})
}

func Contact(c *fiber.Ctx) error {
	l := currentLocale(c)
	products, err := site.ListActive[models.ProductCategory](db(c), 0)
	if err != nil {
		return err
	}
	meta := site.SectionMeta(l, locale.SectionContact, labelText("contact"), locale.Text{}, siteBase)
	return render(c, "contact", meta, fiber.Map{"Products": productLinks(l, products)})
}

// Page resolves the catch-all /{lang}/{slug} route against pages only.
func Page(c *fiber.Ctx) error {
	l := currentLocale(c)

	p, err := site.FindActiveBySlug[models.Page](db(c), c.Params("slug"))
	if err != nil {
		return fail(err)
	}

	v := site.NewPageView(l, p, siteBase)
	return render(c, "page", v.Meta, fiber.Map{"Page": v})
}

// RenderError renders the HTML error page for status in the locale of the
// requested path.
func RenderError(c *fiber.Ctx, status int) error {
	l := LocaleFromPath(c.Path())
	c.Locals(localeKey, l)

	key := "error"
	if status == fiber.StatusNotFound {
		key = "notFound"
	}
	meta := site.SectionMeta(l, "", labelText(key+"Title"), locale.Text{}, siteBase)
	meta.IsIndexed = false
	meta.Robots = "noindex,nofollow"

	c.Status(status)
	view := "errors/500"
	if status == fiber.StatusNotFound {
		view = "errors/404"
	}
	return render(c, view, meta, fiber.Map{
		"Heading": label(l, key+"Title"),
		"Text":    label(l, key+"Text"),
	})
}

func productLinks(l locale.Locale, items []models.ProductCategory) []site.Link {
	out := make([]site.Link, 0, len(items))
	for i := range items {
		out = append(out, site.ProductLink(l, &items[i]))
	}
	return out
}

func industryLinks(l locale.Locale, items []models.Industry) []site.Link {
	out := make([]site.Link, 0, len(items))
	for i := range items {
		out = append(out, site.IndustryLink(l, &items[i]))
	}
	return out
}

func postLinks(l locale.Locale, items []models.BlogPost) []site.Link {
	out := make([]site.Link, 0, len(items))
	for i := range items {
		out = append(out, site.PostLink(l, &items[i]))
	}
	return out
}

func mapSlides(l locale.Locale, items []models.HeroSlide) []site.SlideView {
	out := make([]site.SlideView, 0, len(items))
	for i := range items {
		out = append(out, site.NewSlideView(l, &items[i]))
	}
	return out
}

func mapVideos(l locale.Locale, items []models.Video) []site.VideoView {
	out := make([]site.VideoView, 0, len(items))
	for i := range items {
		out = append(out, site.NewVideoView(l, &items[i]))
	}
	return out
}
