package settings

import (
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
)

func GetSettingsHandler(c *fiber.Ctx) error {
	s, err := Get(database.DB.WithContext(c.UserContext()))
	if err != nil {
		return response.FromError(c, "Settings", err)
	}
	return response.Success(c, s, "")
}

// UpdateSettingsHandler overlays the payload on the stored row, so fields
// left out of the body keep their value.
func UpdateSettingsHandler(c *fiber.Ctx) error {
	db := database.DB.WithContext(c.UserContext())

	current, err := Get(db)
	if err != nil {
		return response.FromError(c, "Settings", err)
	}

	in := *current
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	in.CreatedAt = current.CreatedAt

	s, err := Upsert(db, in)
	if err != nil {
		return response.FromError(c, "Settings", err)
	}
	return response.Success(c, s, "Settings updated successfully")
}

// AdminEmail is the notification recipient: the stored setting, else the
// configured fallback.
func AdminEmail(fallback string) string {
	s, err := Get(database.DB)
	if err != nil || s.AdminEmail == "" {
		return fallback
	}
	return s.AdminEmail
}
