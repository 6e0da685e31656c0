package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Kyz7/corporate-site/internal/config"
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var googleOauthConfig = &oauth2.Config{
	Scopes:   []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
	Endpoint: google.Endpoint,
}

var (
	stateStore = make(map[string]time.Time)
	stateMutex sync.Mutex
)

func ConfigureGoogle(cfg config.GoogleConfig) {
	googleOauthConfig.ClientID = cfg.ClientID
	googleOauthConfig.ClientSecret = cfg.ClientSecret
	googleOauthConfig.RedirectURL = cfg.RedirectURL
}

func googleEnabled() bool {
	return googleOauthConfig.ClientID != "" && googleOauthConfig.ClientSecret != ""
}

func generateState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func storeState(state string) {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	now := time.Now()
	for k, v := range stateStore {
		if now.After(v) {
			delete(stateStore, k)
		}
	}
	stateStore[state] = now.Add(5 * time.Minute)
}

func validateState(state string) bool {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	expiry, exists := stateStore[state]
	if !exists || time.Now().After(expiry) {
		return false
	}
	delete(stateStore, state)
	return true
}

func GoogleLogin(c *fiber.Ctx) error {
	if !googleEnabled() {
		return response.NotFound(c, "Google sign-in")
	}
	state := generateState()
	storeState(state)
	return c.Redirect(googleOauthConfig.AuthCodeURL(state))
}

// GoogleCallback signs in an existing admin account. Unknown Google
// accounts are refused; accounts are only created by an admin.
func GoogleCallback(c *fiber.Ctx) error {
	if !googleEnabled() {
		return response.NotFound(c, "Google sign-in")
	}
	if !validateState(c.Query("state")) {
		return response.BadRequest(c, "Invalid state parameter", nil)
	}

	ctx := c.UserContext()
	token, err := googleOauthConfig.Exchange(ctx, c.Query("code"))
	if err != nil {
		logger.Log.Warn("google token exchange failed", zap.Error(err))
		return response.Unauthorized(c, "Failed to exchange token")
	}

	resp, err := googleOauthConfig.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return response.FromError(c, "Google account", err)
	}
	defer resp.Body.Close()

	var info struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		return response.Unauthorized(c, "Failed to get user info")
	}
	if !info.VerifiedEmail {
		return response.Forbidden(c, "Google account email is not verified")
	}

	var u models.User
	err = database.DB.Where("email = ?", strings.ToLower(info.Email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.Forbidden(c, "No admin account exists for this Google account")
	}
	if err != nil {
		return response.FromError(c, "User", err)
	}

	if u.Provider == "" {
		if err := database.DB.Model(&u).UpdateColumn("provider", "google").Error; err != nil {
			logger.Log.Warn("failed to record login provider", zap.String("user_id", u.ID), zap.Error(err))
		}
	}

	accessToken, user, err := issue(&u)
	if err != nil {
		return response.FromError(c, "User", err)
	}

	return response.Success(c, fiber.Map{
		"access_token": accessToken,
		"expires_in":   int(TokenTTL.Seconds()),
		"user":         user,
	}, "Login successful")
}
