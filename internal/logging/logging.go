// Package logging wires up the zerolog logger every subcommand shares,
// the way mbflow's internal/config package reaches for
// github.com/rs/zerolog/log rather than the standard library's log
// package.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New configures the global zerolog logger at the given level name
// (any name zerolog.ParseLevel accepts, such as "debug", "info", "warn",
// "error"; a name it rejects falls back to "info") and returns a
// console-writer logger for CLI output.
func New(level string) zerolog.Logger {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}
