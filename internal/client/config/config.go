package config

import "time"

// Config holds runtime settings for the HealthDash CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API; relative endpoints are
//     resolved against it.
//   - AWSRegion / CognitoClientID / CognitoUserPoolID: identity-provider
//     coordinates. Empty values are tolerated here and reported inline by
//     the auth gateway on first use.
//   - APITimeout: transport-level deadline for backend calls (0 disables).
//   - SessionDBPath: location of the local sqlite session store.
type Config struct {
	APIBaseURL        string
	AppName           string
	Environment       string
	AWSRegion         string
	CognitoClientID   string
	CognitoUserPoolID string
	DebugMode         bool
	LogLevel          string
	APITimeout        time.Duration
	SessionDBPath     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.AppName = "Health Dashboard"
	c.Environment = "development"
	c.LogLevel = "info"
	c.APITimeout = 10 * time.Second
	c.SessionDBPath = "healthdash.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
