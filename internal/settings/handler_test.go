package settings_test

import (
	"net/http"
	"testing"

	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/settings"
	"github.com/Kyz7/corporate-site/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.AdminToken(t, app.DB)

	t.Run("Success - Empty settings before first save", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodGet, "/api/admin/settings", nil, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Code)

		var s models.SiteSettings
		testutils.DecodeData(t, resp, &s)
		assert.Equal(t, models.SettingsID, s.ID)
		assert.Empty(t, s.CompanyName)
	})

	t.Run("Success - Partial updates keep other fields", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPut, "/api/admin/settings", map[string]string{
			"companyName": "Örnek A.Ş.",
			"phone":       "+90 212 000 00 00",
		}, token)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Code)

		resp, err = testutils.MakeRequest(app.App, http.MethodPut, "/api/admin/settings", map[string]string{
			"addressEn": "Istanbul",
		}, token)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Code)

		var s models.SiteSettings
		testutils.DecodeData(t, resp, &s)
		assert.Equal(t, "Örnek A.Ş.", s.CompanyName)
		assert.Equal(t, "+90 212 000 00 00", s.Phone)
		assert.Equal(t, "Istanbul", s.AddressEn)

		var count int64
		app.DB.Model(&models.SiteSettings{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Error - Invalid admin email", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPut, "/api/admin/settings", map[string]string{
			"adminEmail": "nope",
		}, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("Success - Admin email falls back", func(t *testing.T) {
		assert.Equal(t, "fallback@example.com", settings.AdminEmail("fallback@example.com"))
	})
}
