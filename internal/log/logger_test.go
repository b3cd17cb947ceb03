package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithOutputLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("warn", &buf)

	logger.Info().Msg("should be filtered")
	logger.Warn().Msg("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Error("info message logged despite warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestNewWithOutputUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("verbose", &buf)

	if got := logger.GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", got)
	}

	logger.Info().Msg("visible at info")
	if !strings.Contains(buf.String(), "visible at info") {
		t.Error("info message missing after level fallback")
	}
}
