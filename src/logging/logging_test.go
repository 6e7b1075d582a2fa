package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" error ", zerolog.ErrorLevel},
		{"", DefaultLevel},
		{"chatty", DefaultLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(DefaultLevel)

	var buf bytes.Buffer
	Setup("warn", &buf, true)

	Get("config").Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	Get("config").Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "component=config")

	buf.Reset()
	Setup("debug", &buf, true)
	Get("lint").Debug().Str("tool", "eslint").Msg("resolved")
	assert.Contains(t, buf.String(), "resolved")
	assert.Contains(t, buf.String(), "tool=eslint")
}
