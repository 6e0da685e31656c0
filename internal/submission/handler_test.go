package submission_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/settings"
	"github.com/Kyz7/corporate-site/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	t.Run("Success - Stored unread and admin notified", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/contact", map[string]interface{}{
			"name":    "  Ayşe Yılmaz ",
			"email":   "ayse@example.com",
			"message": "Fiyat listesi rica ediyorum.",
			"subject": "Fiyat",
			"locale":  "en",
			"isRead":  true,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.Code)

		var data struct {
			ID string `json:"id"`
		}
		testutils.DecodeData(t, resp, &data)
		require.NotEmpty(t, data.ID)

		var stored models.ContactMessage
		require.NoError(t, app.DB.First(&stored, "id = ?", data.ID).Error)
		assert.False(t, stored.IsRead)
		assert.Equal(t, "Ayşe Yılmaz", stored.Name)
		assert.Equal(t, "en", stored.Locale)

		msgs := app.Mail.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, []string{testutils.AdminEmail}, msgs[0].To)
		assert.Equal(t, "ayse@example.com", msgs[0].ReplyTo)
		assert.Contains(t, msgs[0].Subject, "Fiyat")
	})

	t.Run("Success - Unknown locale falls back to Turkish", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/contact", map[string]interface{}{
			"name":    "Ali",
			"email":   "ali@example.com",
			"message": "Merhaba",
			"locale":  "de",
		}, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.Code)

		var data struct {
			ID string `json:"id"`
		}
		testutils.DecodeData(t, resp, &data)
		var stored models.ContactMessage
		require.NoError(t, app.DB.First(&stored, "id = ?", data.ID).Error)
		assert.Equal(t, "tr", stored.Locale)
	})

	t.Run("Error - Invalid email", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/contact", map[string]interface{}{
			"name":    "Ali",
			"email":   "not-an-email",
			"message": "Merhaba",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Error - Blank message", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/contact", map[string]interface{}{
			"name":    "Ali",
			"email":   "ali@example.com",
			"message": "   ",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestNotificationUsesStoredAdminEmail(t *testing.T) {
	app := testutils.SetupTestApp(t)

	_, err := settings.Upsert(app.DB, models.SiteSettings{AdminEmail: "sales@example.com"})
	require.NoError(t, err)

	resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/quote", map[string]interface{}{
		"name":     "Mehmet",
		"email":    "mehmet@example.com",
		"product":  "Vana",
		"quantity": "100",
		"message":  "Teklif",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Code)

	msgs := app.Mail.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"sales@example.com"}, msgs[0].To)
	assert.Contains(t, msgs[0].HTML, "Vana")
}

func TestMailFailureDoesNotFailSubmission(t *testing.T) {
	app := testutils.SetupTestApp(t)
	app.Mail.Err = errors.New("smtp down")

	resp, err := testutils.MakeRequest(app.App, http.MethodPost, "/api/quote", map[string]interface{}{
		"name":    "Mehmet",
		"email":   "mehmet@example.com",
		"message": "Teklif",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Code)
	testutils.AssertSuccess(t, resp)

	var count int64
	app.DB.Model(&models.QuoteRequest{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestJobApplicationHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	fields := map[string]string{
		"name":     "Zeynep",
		"email":    "zeynep@example.com",
		"position": "Satış Mühendisi",
	}

	t.Run("Success - With CV", func(t *testing.T) {
		resp, err := testutils.MakeMultipartRequest(app.App, http.MethodPost, "/api/job-application", fields,
			map[string]testutils.File{"cv": {Name: "Özgeçmiş.pdf", Content: []byte("%PDF-1.4 test")}}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.Code)

		var data struct {
			ID string `json:"id"`
		}
		testutils.DecodeData(t, resp, &data)

		var stored models.JobApplication
		require.NoError(t, app.DB.First(&stored, "id = ?", data.ID).Error)
		assert.True(t, strings.HasPrefix(stored.CVURL, "/uploads/"), stored.CVURL)
		assert.True(t, strings.HasSuffix(stored.CVURL, ".pdf"), stored.CVURL)

		served, err := testutils.MakePageRequest(app.App, stored.CVURL, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, served.Code)
		assert.Equal(t, "application/pdf", served.Header().Get("Content-Type"))
	})

	t.Run("Success - Without CV", func(t *testing.T) {
		resp, err := testutils.MakeMultipartRequest(app.App, http.MethodPost, "/api/job-application", fields, nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("Error - CV must be a PDF", func(t *testing.T) {
		resp, err := testutils.MakeMultipartRequest(app.App, http.MethodPost, "/api/job-application", fields,
			map[string]testutils.File{"cv": {Name: "cv.exe", Content: []byte("MZ")}}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Error - Missing position", func(t *testing.T) {
		resp, err := testutils.MakeMultipartRequest(app.App, http.MethodPost, "/api/job-application", map[string]string{
			"name":  "Zeynep",
			"email": "zeynep@example.com",
		}, nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}
