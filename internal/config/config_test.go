package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "12")
	t.Setenv("TEST_BAD_INT", "twelve")
	t.Setenv("TEST_NEG_INT", "-3")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BAD_DURATION", "soon")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BAD_BOOL", "maybe")

	assert.Equal(t, "value", envString("TEST_STRING", "def"))
	assert.Equal(t, "def", envString("TEST_UNSET", "def"))

	assert.Equal(t, 12, envInt("TEST_INT", 5))
	assert.Equal(t, 5, envInt("TEST_BAD_INT", 5))
	assert.Equal(t, 5, envInt("TEST_NEG_INT", 5))
	assert.Equal(t, 5, envInt("TEST_UNSET", 5))

	assert.Equal(t, 90*time.Second, envDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, envDuration("TEST_BAD_DURATION", time.Minute))

	assert.True(t, envBool("TEST_BOOL", false))
	assert.False(t, envBool("TEST_BAD_BOOL", false))
	assert.True(t, envBool("TEST_UNSET", true))
}

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_URL", "http://localhost:8090")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("RESEND_API_KEY", "secret")
	t.Setenv("TRUST_PROXY", "")

	cfg := Load()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.StorageEnabled())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.ContactRateWindow)
	assert.False(t, cfg.TrustProxy)

	sanitized := cfg.Sanitized()
	assert.Equal(t, cfg.AppURL, sanitized.AppURL)
	assert.Empty(t, sanitized.ResendAPIKey)
	assert.Empty(t, sanitized.DBConnection)
	assert.Equal(t, cfg.TrustProxy, sanitized.TrustProxy)
}
