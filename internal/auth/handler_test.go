package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Kyz7/corporate-site/internal/auth"
	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestLoginHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	u := testutils.CreateTestUser(t, app.DB, "admin@example.com", "password123", models.RoleAdmin)

	t.Run("Success - Valid credentials", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    " Admin@Example.com ",
			"password": "password123",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Code)

		var data struct {
			AccessToken string      `json:"access_token"`
			ExpiresIn   int         `json:"expires_in"`
			User        models.User `json:"user"`
		}
		testutils.DecodeData(t, resp, &data)
		assert.NotEmpty(t, data.AccessToken)
		assert.Equal(t, int(auth.TokenTTL.Seconds()), data.ExpiresIn)
		assert.Equal(t, u.ID, data.User.ID)
		assert.NotNil(t, data.User.LastLoginAt)

		var stored models.User
		require.NoError(t, app.DB.First(&stored, "id = ?", u.ID).Error)
		assert.NotNil(t, stored.LastLoginAt)

		claims, err := auth.ParseJWT(data.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.Subject)
		assert.Equal(t, models.RoleAdmin, claims.Role)
	})

	t.Run("Error - Wrong password", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "admin@example.com",
			"password": "wrong-password",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})

	t.Run("Error - Unknown email", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("Error - Missing fields", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/auth/login", map[string]string{}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})
}

func TestMeHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	u := testutils.CreateTestUser(t, app.DB, "editor@example.com", "password123", models.RoleEditor)

	t.Run("Success - Current account", func(t *testing.T) {
		token := testutils.GetAuthToken(t, u.ID, u.Role)
		resp, err := testutils.MakeRequest(app.App, http.MethodGet, "/api/auth/me", nil, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Code)

		var got models.User
		testutils.DecodeData(t, resp, &got)
		assert.Equal(t, "editor@example.com", got.Email)
		assert.Empty(t, got.Password)
	})

	t.Run("Error - Malformed header", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodGet, "/api/auth/me", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("Error - Tampered token", func(t *testing.T) {
		token := testutils.GetAuthToken(t, u.ID, u.Role) + "x"
		resp, err := testutils.MakeRequest(app.App, http.MethodGet, "/api/auth/me", nil, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		testutils.AssertError(t, resp, "INVALID_TOKEN")
	})
}

func TestGoogleDisabled(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app.App, http.MethodGet, "/api/auth/google/login", nil, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestValidateJWTSecret(t *testing.T) {
	assert.Error(t, auth.ValidateJWTSecret(""))
	assert.Error(t, auth.ValidateJWTSecret("short"))
	assert.NoError(t, auth.ValidateJWTSecret("a-production-secret-that-is-long-enough-1234"))
}

func TestPasswordHash(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("password123", hash))
	assert.False(t, auth.CheckPasswordHash("password124", hash))
}

func TestLoginLogsLastLoginWriteFailure(t *testing.T) {
	app := testutils.SetupTestApp(t)
	testutils.CreateTestUser(t, app.DB, "admin@example.com", "password123", models.RoleAdmin)

	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	require.NoError(t, app.DB.Callback().Update().Before("gorm:update").Register("fail_user_update", func(db *gorm.DB) {
		if db.Statement.Table == "users" {
			_ = db.AddError(errors.New("disk full"))
		}
	}))

	resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, logs.FilterMessage("failed to record last login").Len())
}
