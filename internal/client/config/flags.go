package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/healthdash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-l string   log level (default from Config)
//	-s string   path to the local session database (default from Config)
//	-debug      enable debug logging
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-s", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path to the local session database")
	fs.BoolVar(&cfg.DebugMode, "debug", cfg.DebugMode, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
