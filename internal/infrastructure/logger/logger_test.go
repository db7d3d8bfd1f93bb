package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewWithWriterJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	log.Info().Str("key", "value").Msg("hello")

	output := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Fatalf("expected json output to start with '{', got %q", output)
	}
	if !strings.Contains(output, `"message":"hello"`) {
		t.Fatalf("expected message field in output, got %q", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Fatalf("expected structured field in output, got %q", output)
	}
}

func TestNewWithWriterConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "info", Format: "console"}, &buf)

	log.Info().Msg("hello")

	output := buf.String()
	if strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Fatalf("expected console output, got json: %q", output)
	}
	if !strings.Contains(output, "hello") {
		t.Fatalf("expected message in output, got %q", output)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "error", Format: "json"}, &buf)

	log.Info().Msg("suppressed")
	log.Error().Msg("emitted")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Fatalf("expected info log to be filtered out, got %q", output)
	}
	if !strings.Contains(output, "emitted") {
		t.Fatalf("expected error log to be emitted, got %q", output)
	}
}
