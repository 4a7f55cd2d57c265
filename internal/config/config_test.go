package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MONGODB_URI", "MONGO_URI", "REDIS_URI", "PORT", "MAIN_SERVER_URL", "SHOP_ADMIN_ID", "ALLOWED_ORIGINS", "FRONTEND_URL", "FRONTEND_URL_2", "ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/shopora", cfg.MongoURI)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://main-server.shopora.app", cfg.MainServerURL)
	assert.NotEmpty(t, cfg.ShopAdminID)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017/shop")
	t.Setenv("PORT", "9090")
	t.Setenv("MAIN_SERVER_URL", "http://main.internal")
	t.Setenv("SHOP_ADMIN_ID", "admin-9")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example.com, https://www.shop.example.com")
	t.Setenv("ENV", "Production")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017/shop", cfg.MongoURI)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://main.internal", cfg.MainServerURL)
	assert.Equal(t, "admin-9", cfg.ShopAdminID)
	assert.Equal(t, []string{"https://shop.example.com", "https://www.shop.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestFrontendURLFallbackForOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "https://shop.example.com")
	t.Setenv("FRONTEND_URL_2", "https://staging.shop.example.com")

	cfg := Load()

	assert.Equal(t, []string{"https://shop.example.com", "https://staging.shop.example.com"}, cfg.AllowedOrigins)
}
