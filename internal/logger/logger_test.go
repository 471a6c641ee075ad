package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithLevel(t *testing.T) {
	tests := []struct {
		env, level string
		want       zerolog.Level
	}{
		{"development", "", zerolog.DebugLevel},
		{"production", "", zerolog.InfoLevel},
		{"production", "warn", zerolog.WarnLevel},
		{"production", "nonsense", zerolog.InfoLevel},
		{"local", "ERROR", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := NewWithLevel(tt.env, tt.level).GetLevel(); got != tt.want {
			t.Errorf("NewWithLevel(%q, %q) level = %s, expected %s", tt.env, tt.level, got, tt.want)
		}
	}
}
