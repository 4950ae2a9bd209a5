package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"massagepro-backend/config"
	"massagepro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceValidation(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	translations := []map[string]string{
		{"locale": "en", "name": "Test Service"},
	}

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing duration", map[string]interface{}{
			"price": 1500.0, "imageUrl": "/i.jpg", "translations": translations,
		}},
		{"missing price", map[string]interface{}{
			"duration": 90, "imageUrl": "/i.jpg", "translations": translations,
		}},
		{"missing translations", map[string]interface{}{
			"price": 1500.0, "duration": 90, "imageUrl": "/i.jpg",
		}},
		{"unsupported locale", map[string]interface{}{
			"price": 1500.0, "duration": 90, "imageUrl": "/i.jpg",
			"translations": []map[string]string{{"locale": "fr", "name": "Massage"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(t, r, http.MethodPost, "/api/services", tt.body, requestOpts{token: token})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		})
	}
}

func TestServiceLocaleRoundTrip(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	body := map[string]interface{}{
		"price":    1500.0,
		"duration": 90,
		"imageUrl": "/images/test.jpg",
		"translations": []map[string]string{
			{"locale": "en", "name": "Test Service", "description": "A test"},
			{"locale": "zh", "name": "测试服务", "description": "测试"},
		},
	}
	w, env := doRequest(t, r, http.MethodPost, "/api/services", body, requestOpts{token: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, env.Success)

	var created models.Service
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, created.Translations, 2)

	tests := []struct {
		locale string
		name   string
	}{
		{"en", "Test Service"},
		{"zh", "测试服务"},
		{"th", "Test Service"}, // unsupported locale falls back to English
	}
	for _, tt := range tests {
		w, env := doRequest(t, r, http.MethodGet, "/api/services/"+created.ID.String()+"?locale="+tt.locale, nil, requestOpts{})
		require.Equal(t, http.StatusOK, w.Code)

		var view map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, tt.name, view["name"], "locale %s", tt.locale)
		assert.Equal(t, 1500.0, view["price"])
		assert.Equal(t, 90.0, view["duration"])
	}
}

func TestGetServiceNotFound(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/services/"+uuid.NewString(), nil, requestOpts{})
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestDeleteServiceNotFound(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w, env := doRequest(t, r, http.MethodDelete, "/api/services/"+uuid.NewString(), nil, requestOpts{token: token})
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestDeleteServiceRemovesTranslations(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	service := createService(t, 1000, 60,
		models.ServiceTranslation{Locale: "en", Name: "Herbal Compress", Slug: "herbal-compress"},
		models.ServiceTranslation{Locale: "zh", Name: "草药热敷", Slug: "草药热敷"},
	)

	w, _ := doRequest(t, r, http.MethodDelete, "/api/services/"+service.ID.String(), nil, requestOpts{token: token})
	require.Equal(t, http.StatusOK, w.Code)

	var translations int64
	config.DB.Model(&models.ServiceTranslation{}).Where("service_id = ?", service.ID).Count(&translations)
	assert.Zero(t, translations)
}

func TestBatchDeleteServices(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	a := createService(t, 1000, 60, models.ServiceTranslation{Locale: "en", Name: "Service A", Slug: "service-a"})
	b := createService(t, 2000, 90, models.ServiceTranslation{Locale: "en", Name: "Service B", Slug: "service-b"})

	body := map[string]interface{}{
		"action":     "delete",
		"serviceIds": []string{a.ID.String(), b.ID.String()},
	}
	w, env := doRequest(t, r, http.MethodPatch, "/api/services", body, requestOpts{token: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result map[string]int64
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, int64(2), result["deleted"])

	w, env = doRequest(t, r, http.MethodGet, "/api/services/"+a.ID.String(), nil, requestOpts{})
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	var translations int64
	config.DB.Model(&models.ServiceTranslation{}).Count(&translations)
	assert.Zero(t, translations)
}

func TestBatchServicesInvalidAction(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	body := map[string]interface{}{
		"action":     "rename",
		"serviceIds": []string{uuid.NewString()},
	}
	w, env := doRequest(t, r, http.MethodPatch, "/api/services", body, requestOpts{token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ACTION", env.Error.Code)
}

func TestListServicesEmptyTableFallback(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/services?locale=zh", nil, requestOpts{})
	require.Equal(t, http.StatusOK, w.Code)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.NotEmpty(t, views)
	assert.Equal(t, "传统泰式按摩", views[0]["name"])
}

func TestUpdateServiceUpsertsTranslations(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	service := createService(t, 1000, 60,
		models.ServiceTranslation{Locale: "en", Name: "Hot Stone", Slug: "hot-stone"},
	)

	body := map[string]interface{}{
		"price": 1200.0,
		"translations": []map[string]string{
			{"locale": "en", "name": "Hot Stone Massage"},
			{"locale": "zh", "name": "热石按摩"},
		},
	}
	w, _ := doRequest(t, r, http.MethodPut, "/api/services/"+service.ID.String(), body, requestOpts{token: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var translations int64
	config.DB.Model(&models.ServiceTranslation{}).Where("service_id = ?", service.ID).Count(&translations)
	assert.Equal(t, int64(2), translations)

	_, env := doRequest(t, r, http.MethodGet, "/api/services/"+service.ID.String()+"?locale=zh", nil, requestOpts{})
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "热石按摩", view["name"])
	assert.Equal(t, 1200.0, view["price"])
}

func TestAdminCreateServiceRequiresAllLocales(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	body := map[string]interface{}{
		"price":    1500.0,
		"duration": 90,
		"imageUrl": "/images/test.jpg",
		"translations": []map[string]string{
			{"locale": "en", "name": "Test Service", "slug": "test-service"},
		},
	}
	w, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/services", body, requestOpts{token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAdminCreateServiceRejectsBadSlug(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	body := map[string]interface{}{
		"price":    1500.0,
		"duration": 90,
		"imageUrl": "/images/test.jpg",
		"translations": []map[string]string{
			{"locale": "en", "name": "Test Service", "slug": "Bad Slug!"},
			{"locale": "zh", "name": "测试服务"},
			{"locale": "ko", "name": "테스트 서비스"},
		},
	}
	w, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/services", body, requestOpts{token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestServiceMutationsRequireAdmin(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/services", map[string]interface{}{}, requestOpts{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_ERROR", env.Error.Code)
}

func TestAPIVersionRejected(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/public/services", nil, requestOpts{
		header: map[string]string{"API-Version": "v2"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_ERROR", env.Error.Code)
	assert.Equal(t, "Unsupported API version", env.Error.Message)

	// The rejection message is localized like every other error.
	_, env = doRequest(t, r, http.MethodGet, "/api/v1/public/services?locale=zh", nil, requestOpts{
		header: map[string]string{"API-Version": "v2"},
	})
	require.NotNil(t, env.Error)
	assert.Equal(t, "不支持的 API 版本", env.Error.Message)
}
