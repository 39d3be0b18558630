package config

import (
	"log"
	"os"
	"time"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment parsing. Pointer fields
// distinguish "unset" from a deliberate zero value.
type envConfig struct {
	APIBaseURL        *string        `env:"API_URL"`
	AppName           *string        `env:"APP_NAME"`
	Environment       *string        `env:"APP_ENV"`
	AWSRegion         *string        `env:"AWS_REGION"`
	CognitoClientID   *string        `env:"COGNITO_CLIENT_ID"`
	CognitoUserPoolID *string        `env:"COGNITO_USER_POOL_ID"`
	DebugMode         *bool          `env:"DEBUG_MODE"`
	LogLevel          *string        `env:"LOG_LEVEL"`
	APITimeout        *time.Duration `env:"API_TIMEOUT"`
	SessionDBPath     *string        `env:"SESSION_DB_PATH"`
}

// parseEnv overlays cfg with values from a .env file (if present in the
// working directory) and the process environment. Unset variables keep
// their earlier values.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("unable to load .env file: %v", err)
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != nil {
		cfg.APIBaseURL = *ec.APIBaseURL
	}
	if ec.AppName != nil {
		cfg.AppName = *ec.AppName
	}
	if ec.Environment != nil {
		cfg.Environment = *ec.Environment
	}
	if ec.AWSRegion != nil {
		cfg.AWSRegion = *ec.AWSRegion
	}
	if ec.CognitoClientID != nil {
		cfg.CognitoClientID = *ec.CognitoClientID
	}
	if ec.CognitoUserPoolID != nil {
		cfg.CognitoUserPoolID = *ec.CognitoUserPoolID
	}
	if ec.DebugMode != nil {
		cfg.DebugMode = *ec.DebugMode
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	if ec.APITimeout != nil {
		cfg.APITimeout = *ec.APITimeout
	}
	if ec.SessionDBPath != nil {
		cfg.SessionDBPath = *ec.SessionDBPath
	}
}
