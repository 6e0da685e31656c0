package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kyz7/corporate-site/internal/apperr"
	"github.com/Kyz7/corporate-site/internal/auth"
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/gorm"
)

type CreateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&in.Role, validation.In(models.RoleAdmin, models.RoleEditor)),
	)
}

type UpdateInput struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

func (in UpdateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&in.Role, validation.NilOrNotEmpty, validation.In(models.RoleAdmin, models.RoleEditor)),
		validation.Field(&in.Password, validation.NilOrNotEmpty, validation.Length(8, 72)),
	)
}

func CreateUser(in CreateInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = models.RoleEditor
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: user with this email already exists", apperr.ErrConflict)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Provider: "local",
		Role:     in.Role,
	}
	if err := database.DB.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	if err := database.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func GetUser(id string) (*models.User, error) {
	var u models.User
	err := database.DB.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func UpdateUser(id string, in UpdateInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	u, err := GetUser(id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil && *in.Role != models.RoleAdmin && u.Role == models.RoleAdmin {
		if err := ensureAnotherAdmin(u.ID); err != nil {
			return nil, err
		}
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil {
		hashed, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hashed
	}

	if err := database.DB.Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser refuses to remove the caller's own account or the last admin.
func DeleteUser(id, currentUserID string) error {
	if id == currentUserID {
		return fmt.Errorf("%w: cannot delete your own account", apperr.ErrValidation)
	}
	u, err := GetUser(id)
	if err != nil {
		return err
	}
	if u.Role == models.RoleAdmin {
		if err := ensureAnotherAdmin(u.ID); err != nil {
			return err
		}
	}
	return database.DB.Delete(u).Error
}

func ensureAnotherAdmin(exceptID string) error {
	var admins int64
	if err := database.DB.Model(&models.User{}).Where("role = ? AND id <> ?", models.RoleAdmin, exceptID).Count(&admins).Error; err != nil {
		return err
	}
	if admins == 0 {
		return fmt.Errorf("%w: at least one admin account must remain", apperr.ErrDependent)
	}
	return nil
}

// SeedAdmin creates the first admin from configuration when no account
// exists yet.
func SeedAdmin(email, password string) error {
	var count int64
	if err := database.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		logger.Log.Warn("no admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		return nil
	}

	u, err := CreateUser(CreateInput{Name: "Admin", Email: email, Password: password, Role: models.RoleAdmin})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.SLog.Infow("seeded admin account", "email", u.Email)
	return nil
}
