package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerTo(&buf, tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	SetupLoggerTo(&buf, 0)

	logger := GetLogger("render")
	logger.Warn().Msg("row dropped")

	assert.Contains(t, buf.String(), "component=render")
	assert.Contains(t, buf.String(), "row dropped")
}

func TestLogOperationStart(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	SetupLoggerTo(&buf, 2)

	done := LogOperationStart(GetLogger("test"), "render")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
}
