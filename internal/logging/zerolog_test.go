package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "warn")

	log.Info().Msg("quiet")
	log.Warn().Str("db", "sqlite").Msg("fallback")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "fallback")
	assert.Contains(t, out, "db=sqlite")
}

func TestZerologLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, zerologLevel(tt.input))
		})
	}
}
