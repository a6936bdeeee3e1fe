package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
}

func TestInitWritesToWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	lg := Init("info", &buf)
	lg.Info().Int("rounds", 47).Msg("battle over")
	lg.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "battle over")
	assert.Contains(t, out, "rounds=")
	assert.NotContains(t, out, "hidden")
}
