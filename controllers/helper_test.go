package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/routes"
	"massagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// envelope mirrors the API response wrapper for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// setupRouter builds the full router against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err, "open sqlite")

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.ServiceTranslation{},
		&models.Therapist{},
		&models.TherapistTranslation{},
		&models.Booking{},
		&models.Message{},
		&models.ContactMethod{},
		&models.Setting{},
		&models.NotificationLog{},
	), "migrate schema")

	config.DB = db
	return routes.SetupRouter()
}

// adminToken mints a bearer token with an admin role claim. The admin
// middleware trusts the claims, so no user row is needed.
func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(uuid.NewString(), "ADMIN")
	require.NoError(t, err)
	return token
}

type requestOpts struct {
	token  string
	cookie *http.Cookie
	header map[string]string
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, opts requestOpts) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}
	if opts.cookie != nil {
		req.AddCookie(opts.cookie)
	}
	for k, v := range opts.header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "decode envelope: %s", w.Body.String())
	}
	return w, env
}

// generateRoleToken mints a token with an arbitrary role claim.
func generateRoleToken(role string) (string, error) {
	return utils.GenerateToken(uuid.NewString(), role)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

// createService inserts a service with translations directly.
func createService(t *testing.T, price float64, duration int, translations ...models.ServiceTranslation) models.Service {
	t.Helper()
	service := models.Service{
		Price:        price,
		Duration:     duration,
		ImageURL:     "/images/test.jpg",
		Translations: translations,
	}
	require.NoError(t, config.DB.Create(&service).Error)
	return service
}
