// Package logging configures the zerolog logger shared by apx-lint.
//
// The wrapper's own output is the header, box and footer printed by the
// output package; logging is for diagnosing discovery and process
// decisions and stays quiet unless APX_LINT_LOG_LEVEL asks for more.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel hides everything below warnings.
const DefaultLevel = zerolog.WarnLevel

func init() {
	zerolog.SetGlobalLevel(DefaultLevel)
	log.Logger = newLogger(os.Stderr, true)
}

// Setup sets the global level and sends console-formatted logs to w.
// Unknown level names fall back to DefaultLevel.
func Setup(level string, w io.Writer, noColor bool) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = newLogger(w, noColor)
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}
	log.Debug().Str("level", zerolog.GlobalLevel().String()).Msg("logger initialized")
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return DefaultLevel
	}
	return lvl
}

// Get returns a logger tagged with the component name.
func Get(component string) *zerolog.Logger {
	l := log.With().Str("component", component).Logger()
	return &l
}

func newLogger(w io.Writer, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}).With().Timestamp().Logger()
}
