// Package logging derives component loggers from the global zerolog logger.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a component identifier under the
// "cmp" key, so one grep isolates a subsystem in the log file.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
