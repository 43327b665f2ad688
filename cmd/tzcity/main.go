// Command tzcity resolves city names to time zones and capitalizes place names.
//
// Usage:
//
//	tzcity find port au prince      # America/Port-au-Prince
//	tzcity cap rio de janeiro       # Rio de Janeiro
//	tzcity list --aliases
//	tzcity validate
//
// Logging is controlled by TZCITY_LOG_LEVEL (default "warn") and
// TZCITY_LOG_FORMAT ("console" or "json").
package main

import (
	"os"
)

func main() {
	logger := newLogger(os.Stderr, os.Getenv("TZCITY_LOG_LEVEL"), os.Getenv("TZCITY_LOG_FORMAT"))

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
