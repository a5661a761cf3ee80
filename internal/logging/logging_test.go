package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogFilePath(t *testing.T) {
	start := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)

	got := LogFilePath("logs", "robosketch", start)

	if !strings.Contains(got, "robosketch.20260827_103000.log") {
		t.Errorf("unexpected log file path: %s", got)
	}
}

func TestSetup_WritesToConsole(t *testing.T) {
	var console bytes.Buffer

	logger := Setup("info", &console, nil)
	logger.Info().Msg("hello")

	if !strings.Contains(console.String(), "hello") {
		t.Errorf("expected console output, got %q", console.String())
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	var console bytes.Buffer

	logger := Setup("error", &console, nil)
	logger.Info().Msg("filtered")

	if strings.Contains(console.String(), "filtered") {
		t.Error("info message not filtered at error level")
	}
}

func TestSetup_FileOutput(t *testing.T) {
	var console, file bytes.Buffer

	logger := Setup("info", &console, &file)
	logger.Info().Msg("both sinks")

	if !strings.Contains(file.String(), "both sinks") {
		t.Errorf("expected file output, got %q", file.String())
	}
}

func TestZerologAdapter_KeyValuePairs(t *testing.T) {
	var console bytes.Buffer
	adapter := NewZerologAdapter(Setup("debug", &console, nil))

	adapter.Info("processed", "points", 42)

	out := console.String()
	if !strings.Contains(out, "processed") || !strings.Contains(out, "points") {
		t.Errorf("expected structured fields in output, got %q", out)
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()
	// Must not panic.
	log.Debug("a")
	log.Info("b", "k", 1)
	log.Error("c")
}
