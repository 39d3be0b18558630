package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJson_OverlaysSelectedFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "https://json.example.com/api",
		"aws_region": "us-east-1",
		"cognito_client_id": "json-client",
		"api_timeout": "5s",
		"debug_mode": true
	}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "json-client", cfg.CognitoClientID)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.True(t, cfg.DebugMode)

	// fields absent from the file keep defaults
	assert.Equal(t, "Health Dashboard", cfg.AppName)
	assert.Equal(t, "healthdash.db", cfg.SessionDBPath)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	withArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
