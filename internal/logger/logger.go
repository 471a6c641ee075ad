package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewWithLevel returns a console logger in development and a JSON logger
// otherwise. An empty or unknown level picks debug in development, info
// elsewhere.
func NewWithLevel(env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
		if isDevelopment(env) {
			lvl = zerolog.DebugLevel
		}
	}

	if isDevelopment(env) {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "bakusoq").Logger()
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Str("service", "bakusoq").Logger()
}

func isDevelopment(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "development", "dev", "local":
		return true
	}
	return false
}
