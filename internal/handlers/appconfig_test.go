package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnshRaj112/shopora-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"timestamp"`)
}

func TestGetAppConfig(t *testing.T) {
	t.Setenv("SHOP_ADMIN_ID", "admin-7")
	Init(config.Load())

	rec := httptest.NewRecorder()
	GetAppConfig(rec, httptest.NewRequest(http.MethodGet, "/api/app-config", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"shopName":"Shopora"`)
	assert.Contains(t, body, `"shopAdminId":"admin-7"`)
	assert.Contains(t, body, `"cart":true`)
	assert.Contains(t, body, `"guestCheckout":false`)
	assert.Contains(t, body, `"lastUpdated"`)
}
