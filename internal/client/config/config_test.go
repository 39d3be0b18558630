package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{orig[0]}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, "Health Dashboard", cfg.AppName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, "healthdash.db", cfg.SessionDBPath)
	assert.Empty(t, cfg.AWSRegion)
	assert.Empty(t, cfg.CognitoClientID)
	assert.False(t, cfg.DebugMode)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.com/api")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("COGNITO_CLIENT_ID", "client-123")
	t.Setenv("DEBUG_MODE", "true")
	t.Setenv("API_TIMEOUT", "30s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "client-123", cfg.CognitoClientID)
	assert.True(t, cfg.DebugMode)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)

	// untouched fields keep defaults
	assert.Equal(t, "Health Dashboard", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", "https://flags.example.com/api", "-l", "debug", "-s", "custom.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://flags.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "custom.db", cfg.SessionDBPath)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	withArgs(t, "-unknown", "x", "-a", "https://flags.example.com/api")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://flags.example.com/api", cfg.APIBaseURL)
}
