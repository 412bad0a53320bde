package internal

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger from the environment.
// All log output goes to stderr; stdout is reserved for request reports.
// TICKETOFFICE_LOG_FORMAT=JSON keeps the raw JSON writer,
// TICKETOFFICE_DEBUG=YES lowers the level to debug.
func InitLogging() {
	if os.Getenv("TICKETOFFICE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TICKETOFFICE_DEBUG") == "YES" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// ApplyLogConfig overrides the logger level and format after configuration
// has been loaded. Empty values leave the environment defaults in place.
func ApplyLogConfig(level, format string) error {
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("unknown log level %q: %w", level, err)
		}
		zerolog.SetGlobalLevel(parsed)
	}

	switch strings.ToLower(format) {
	case "":
	case "json":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	case "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
