package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/healthdash/internal/flagx"
	"github.com/dmitrijs2005/healthdash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the API timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL        *string         `json:"api_base_url"`
	AppName           *string         `json:"app_name"`
	Environment       *string         `json:"environment"`
	AWSRegion         *string         `json:"aws_region"`
	CognitoClientID   *string         `json:"cognito_client_id"`
	CognitoUserPoolID *string         `json:"cognito_user_pool_id"`
	DebugMode         *bool           `json:"debug_mode"`
	LogLevel          *string         `json:"log_level"`
	APITimeout        *timex.Duration `json:"api_timeout"`
	SessionDBPath     *string         `json:"session_db_path"`
}

// parseJson overlays cfg with values loaded from a JSON file selected via
// the -c or -config flags. Absent file path means no JSON is loaded. Fields
// missing from the file keep their earlier values. Panics on read or
// unmarshal errors (startup-time misconfiguration).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.AppName != nil {
		cfg.AppName = *jc.AppName
	}
	if jc.Environment != nil {
		cfg.Environment = *jc.Environment
	}
	if jc.AWSRegion != nil {
		cfg.AWSRegion = *jc.AWSRegion
	}
	if jc.CognitoClientID != nil {
		cfg.CognitoClientID = *jc.CognitoClientID
	}
	if jc.CognitoUserPoolID != nil {
		cfg.CognitoUserPoolID = *jc.CognitoUserPoolID
	}
	if jc.DebugMode != nil {
		cfg.DebugMode = *jc.DebugMode
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.APITimeout != nil {
		cfg.APITimeout = time.Duration(jc.APITimeout.Duration)
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
}
