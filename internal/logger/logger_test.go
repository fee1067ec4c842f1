package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, InfoLevel, ParseLevel(" INFO "))
	assert.Equal(t, ErrorLevel, ParseLevel("Error"))
	assert.Equal(t, WarnLevel, ParseLevel("verbose"))
	assert.Equal(t, WarnLevel, ParseLevel(""))
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: WarnLevel, Output: &buf})

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("shown warn", "line", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "line=3")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing")
	})
}
