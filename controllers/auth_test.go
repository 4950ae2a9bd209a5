package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"massagepro-backend/config"
	"massagepro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndMe(t *testing.T) {
	r := setupRouter(t)

	user := models.User{
		Email:    "admin@example.com",
		Password: "super-secret-1",
		Name:     "Administrator",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	w, env := doRequest(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "admin@example.com", "password": "super-secret-1",
	}, requestOpts{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotEmpty(t, payload.Token)

	w, env = doRequest(t, r, http.MethodGet, "/auth/me", nil, requestOpts{token: payload.Token})
	require.Equal(t, http.StatusOK, w.Code)

	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "admin@example.com", me["email"])
	assert.Equal(t, models.RoleAdmin, me["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	user := models.User{
		Email:    "admin@example.com",
		Password: "super-secret-1",
		Name:     "Administrator",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	w, env := doRequest(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	}, requestOpts{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_ERROR", env.Error.Code)
}

func TestLoginCookieMatchesTokenLifetime(t *testing.T) {
	r := setupRouter(t)
	t.Setenv("JWT_EXPIRY_HOURS", "2")

	user := models.User{
		Email:    "admin@example.com",
		Password: "super-secret-1",
		Name:     "Administrator",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	w, _ := doRequest(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "admin@example.com", "password": "super-secret-1",
	}, requestOpts{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=7200")
}

func TestAdminRouteRejectsNonAdminRole(t *testing.T) {
	r := setupRouter(t)

	token, err := generateRoleToken("staff")
	require.NoError(t, err)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil, requestOpts{token: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_ERROR", env.Error.Code)
}

func TestAdminRoleIsCaseInsensitive(t *testing.T) {
	r := setupRouter(t)

	token, err := generateRoleToken("Admin")
	require.NoError(t, err)

	w, _ := doRequest(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil, requestOpts{token: token})
	assert.Equal(t, http.StatusOK, w.Code)
}
