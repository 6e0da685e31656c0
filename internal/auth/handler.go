package auth

import (
	"errors"

	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
)

func LoginHandler(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}

	accessToken, user, err := LoginUser(body.Email, body.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return response.Unauthorized(c, "Invalid email or password")
	}
	if err != nil {
		return response.FromError(c, "User", err)
	}

	return response.Success(c, fiber.Map{
		"access_token": accessToken,
		"expires_in":   int(TokenTTL.Seconds()),
		"user":         user,
	}, "Login successful")
}

func MeHandler(c *fiber.Ctx) error {
	userID, _ := c.Locals(LocalUserID).(string)

	u, err := CurrentUser(userID)
	if err != nil {
		return response.Unauthorized(c, "User not found")
	}
	return response.Success(c, u, "")
}
