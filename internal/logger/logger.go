// Package logger configures the application's structured logging.
//
// It uses zerolog: a human-friendly console writer in the local
// environment and JSON everywhere else, so log aggregators receive
// structured lines in deployment.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application's main logger for the given environment.
func New(env string) *zerolog.Logger {
	var l zerolog.Logger
	if env == "local" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return &l
}
