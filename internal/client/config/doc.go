// Package config loads runtime configuration for the HealthDash CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. A .env file in the working directory and the process environment
//     (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-l string   log level (debug, info, warn, error)
//	-s string   path to the local session database
//	-debug      enable debug logging
//
// Environment variables
//
//	API_URL, APP_NAME, APP_ENV, AWS_REGION, COGNITO_CLIENT_ID,
//	COGNITO_USER_POOL_ID, DEBUG_MODE, LOG_LEVEL, API_TIMEOUT,
//	SESSION_DB_PATH
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the API timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com/api",
//	  "aws_region": "eu-west-1",
//	  "cognito_client_id": "abc123",
//	  "api_timeout": "10s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the client
//   - func LoadConfig() *Config       — builds Config by layering all sources
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
