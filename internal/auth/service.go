package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginUser checks a password login and issues a token.
func LoginUser(email, password string) (string, *models.User, error) {
	var user models.User
	err := database.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	return issue(&user)
}

func issue(user *models.User) (string, *models.User, error) {
	token, err := GenerateJWT(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := database.DB.Model(user).UpdateColumn("last_login_at", now).Error; err != nil {
		logger.Log.Warn("failed to record last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	return token, user, nil
}

func CurrentUser(id string) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
