package submission

import (
	"strings"

	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/mail"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/Kyz7/corporate-site/internal/storage"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func submissionLocale(value string) string {
	if l, ok := locale.Parse(value); ok {
		return l.String()
	}
	return locale.Default.String()
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func ContactHandler(c *fiber.Ctx) error {
	var m models.ContactMessage
	if err := c.BodyParser(&m); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	m.Base = models.Base{}
	m.IsRead = false
	m.Locale = submissionLocale(m.Locale)
	trimAll(&m.Name, &m.Email, &m.Phone, &m.Company, &m.Subject, &m.Message)

	if err := m.Validate(); err != nil {
		return response.FromError(c, "Contact message", err)
	}
	if err := database.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return response.FromError(c, "Contact message", err)
	}

	notifyAdmin(subjectLine("Yeni iletişim mesajı", m.Subject), m.Email, []mail.Field{
		{Label: "Ad Soyad", Value: m.Name},
		{Label: "E-posta", Value: m.Email},
		{Label: "Telefon", Value: m.Phone},
		{Label: "Firma", Value: m.Company},
		{Label: "Konu", Value: m.Subject},
		{Label: "Mesaj", Value: m.Message},
	})

	return response.Created(c, fiber.Map{"id": m.ID}, "Message received")
}

func QuoteHandler(c *fiber.Ctx) error {
	var q models.QuoteRequest
	if err := c.BodyParser(&q); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	q.Base = models.Base{}
	q.IsRead = false
	q.Locale = submissionLocale(q.Locale)
	trimAll(&q.Name, &q.Email, &q.Phone, &q.Company, &q.Product, &q.Quantity, &q.Message)

	if err := q.Validate(); err != nil {
		return response.FromError(c, "Quote request", err)
	}
	if err := database.DB.WithContext(c.UserContext()).Create(&q).Error; err != nil {
		return response.FromError(c, "Quote request", err)
	}

	notifyAdmin(subjectLine("Yeni teklif talebi", q.Product), q.Email, []mail.Field{
		{Label: "Ad Soyad", Value: q.Name},
		{Label: "E-posta", Value: q.Email},
		{Label: "Telefon", Value: q.Phone},
		{Label: "Firma", Value: q.Company},
		{Label: "Ürün", Value: q.Product},
		{Label: "Miktar", Value: q.Quantity},
		{Label: "Mesaj", Value: q.Message},
	})

	return response.Created(c, fiber.Map{"id": q.ID}, "Quote request received")
}

// JobApplicationHandler accepts a form with an optional "cv" PDF. The file
// is stored first and removed again if the row cannot be written.
func JobApplicationHandler(c *fiber.Ctx) error {
	var j models.JobApplication
	if err := c.BodyParser(&j); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	j.Base = models.Base{}
	j.IsRead = false
	j.CVURL = ""
	j.Locale = submissionLocale(j.Locale)
	trimAll(&j.Name, &j.Email, &j.Phone, &j.Position, &j.Message)

	if err := j.Validate(); err != nil {
		return response.FromError(c, "Job application", err)
	}

	ctx := c.UserContext()
	if fh, err := c.FormFile("cv"); err == nil {
		url, err := storage.SaveFile(ctx, fh, storage.DocumentExts)
		if err != nil {
			return response.FromError(c, "Job application", err)
		}
		j.CVURL = url
	}

	if err := database.DB.WithContext(ctx).Create(&j).Error; err != nil {
		if j.CVURL != "" {
			if derr := storage.Current().Delete(ctx, j.CVURL); derr != nil {
				logger.Log.Warn("failed to remove orphaned cv", zap.String("url", j.CVURL), zap.Error(derr))
			}
		}
		return response.FromError(c, "Job application", err)
	}

	notifyAdmin(subjectLine("Yeni iş başvurusu", j.Position), j.Email, []mail.Field{
		{Label: "Ad Soyad", Value: j.Name},
		{Label: "E-posta", Value: j.Email},
		{Label: "Telefon", Value: j.Phone},
		{Label: "Pozisyon", Value: j.Position},
		{Label: "Mesaj", Value: j.Message},
		{Label: "CV", Value: j.CVURL},
	})

	return response.Created(c, fiber.Map{"id": j.ID}, "Application received")
}
