package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record should be written at warn level")
	}

	log.SetLevel("debug")
	log.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug record should be written after SetLevel(debug)")
	}
}

func TestWithSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithWriter(&buf, "error")
	child := parent.With("section", "news")

	child.Info("dropped")
	parent.SetLevel("info")
	child.Info("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("child should inherit the parent's level")
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "section=news") {
		t.Errorf("child record missing message or attribute: %q", out)
	}
}
