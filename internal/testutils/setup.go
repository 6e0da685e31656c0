package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kyz7/corporate-site/internal/auth"
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/mail"
	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/Kyz7/corporate-site/internal/public"
	"github.com/Kyz7/corporate-site/internal/server"
	"github.com/Kyz7/corporate-site/internal/storage"
	"github.com/Kyz7/corporate-site/internal/submission"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	SiteURL    = "https://example.com"
	AdminEmail = "admin@example.com"
)

// TestDB opens a private in-memory database with the full schema.
func TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db), "Failed to migrate test database")
	require.NoError(t, database.RunMigrations(db), "Failed to run SQL migrations")

	return db
}

// TestApp bundles the app with the fakes it was wired to.
type TestApp struct {
	*fiber.App
	DB     *gorm.DB
	Mail   *mail.Recorder
	Upload *storage.LocalStore
}

func SetupTestApp(t *testing.T) *TestApp {
	db := TestDB(t)
	database.DB = db

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err, "Failed to initialize storage")
	storage.Use(store)

	recorder := &mail.Recorder{}
	submission.Init(recorder, AdminEmail)
	public.Init(SiteURL)

	return &TestApp{
		App:    server.New(),
		DB:     db,
		Mail:   recorder,
		Upload: store,
	}
}

func CreateTestUser(t *testing.T, db *gorm.DB, email, password, role string) *models.User {
	hashedPassword, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: hashedPassword,
		Provider: "local",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error, "Failed to create test user")

	return user
}

func GetAuthToken(t *testing.T, userID, role string) string {
	token, err := auth.GenerateJWT(userID, role)
	assert.NoError(t, err, "Failed to generate test token")
	return token
}

// AdminToken creates an admin account and returns a token for it.
func AdminToken(t *testing.T, db *gorm.DB) string {
	u := CreateTestUser(t, db, AdminEmail, "password123", models.RoleAdmin)
	return GetAuthToken(t, u.ID, u.Role)
}

func MakeRequest(app *fiber.App, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return do(app, req)
}

// MakePageRequest fetches a page the way a browser would.
func MakePageRequest(app *fiber.App, url string, headers map[string]string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(fiber.MethodGet, url, nil)
	req.Header.Set("Accept", "text/html")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return do(app, req)
}

func do(app *fiber.App, req *http.Request) (*httptest.ResponseRecorder, error) {
	rec := httptest.NewRecorder()

	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode
	for k, v := range resp.Header {
		for _, val := range v {
			rec.Header().Add(k, val)
		}
	}

	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	if resp.Body.Len() == 0 {
		t.Log("Warning: Response body is empty")
		return
	}

	err := json.Unmarshal(resp.Body.Bytes(), v)
	if err != nil {
		t.Logf("Response body: %s", resp.Body.String())
		assert.NoError(t, err, "Failed to parse response")
	}
}

type StandardResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorDetail    `json:"error"`
	Meta    *Meta           `json:"meta"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// DecodeData unmarshals the data member of an envelope into v.
func DecodeData(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) StandardResponse {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	if v != nil && len(result.Data) > 0 {
		require.NoError(t, json.Unmarshal(result.Data, v))
	}
	return result
}

func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.True(t, result.Success, "Expected success response")
	assert.Empty(t, result.Error, "Expected no error")
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, expectedCode string) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.False(t, result.Success, "Expected error response")
	if assert.NotNil(t, result.Error, "Expected error object") {
		assert.Equal(t, expectedCode, result.Error.Code, "Error code mismatch")
	}
}

// File is one multipart file part.
type File struct {
	Name    string
	Content []byte
}

func MakeMultipartRequest(app *fiber.App, method, url string, fields map[string]string, files map[string]File, token string) (*httptest.ResponseRecorder, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, val := range fields {
		writer.WriteField(key, val)
	}

	for fieldName, f := range files {
		part, err := writer.CreateFormFile(fieldName, f.Name)
		if err != nil {
			return nil, err
		}
		part.Write(f.Content)
	}

	contentType := writer.FormDataContentType()
	writer.Close()

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return do(app, req)
}
