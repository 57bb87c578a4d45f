package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"nil config uses defaults", nil, false},
		{"console format", &Config{Level: "info", Format: "console"}, false},
		{"json format", &Config{Level: "debug", Format: "json"}, false},
		{"bad format", &Config{Level: "info", Format: "xml"}, true},
		{"bad level", &Config{Level: "loud", Format: "console"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	tl := NewTestLogger()

	tl.Debug("debug msg")
	tl.Info("info msg", zap.String("feature", "F-0001"))
	tl.Warn("warn msg")
	tl.Error("error msg")

	assert.Len(t, tl.All(), 4)
	tl.AssertLogged(t, zapcore.InfoLevel, "info msg")
	tl.AssertLogged(t, zapcore.ErrorLevel, "error msg")
}

func TestNamedAndWith(t *testing.T) {
	tl := NewTestLogger()

	child := tl.Named("checks").With(zap.String("check", "shipped-completeness"))
	child.Info("ran")

	entries := tl.FilterMessage("ran").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "checks", entries[0].LoggerName)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, l)

	_, err = ParseLevel("nope")
	assert.Error(t, err)
}
