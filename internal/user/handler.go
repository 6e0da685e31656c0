package user

import (
	"github.com/Kyz7/corporate-site/internal/auth"
	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
)

func CreateUserHandler(c *fiber.Ctx) error {
	var body CreateInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	u, err := CreateUser(body)
	if err != nil {
		return response.FromError(c, "User", err)
	}
	return response.Created(c, u, "User created successfully")
}

func ListUsersHandler(c *fiber.Ctx) error {
	users, err := ListUsers()
	if err != nil {
		return response.FromError(c, "User", err)
	}
	return response.Success(c, users, "Users retrieved successfully")
}

func GetUserHandler(c *fiber.Ctx) error {
	u, err := GetUser(c.Params("id"))
	if err != nil {
		return response.FromError(c, "User", err)
	}
	return response.Success(c, u, "User retrieved successfully")
}

func UpdateUserHandler(c *fiber.Ctx) error {
	var body UpdateInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	u, err := UpdateUser(c.Params("id"), body)
	if err != nil {
		return response.FromError(c, "User", err)
	}
	return response.Success(c, u, "User updated successfully")
}

func DeleteUserHandler(c *fiber.Ctx) error {
	currentUserID, _ := c.Locals(auth.LocalUserID).(string)

	if err := DeleteUser(c.Params("id"), currentUserID); err != nil {
		return response.FromError(c, "User", err)
	}
	return response.Success(c, nil, "User deleted successfully")
}
