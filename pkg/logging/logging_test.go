package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug lowercase", level: "debug", want: slog.LevelDebug},
		{name: "debug uppercase", level: "DEBUG", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "warning alias", level: "Warning", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "empty defaults to info", level: "", want: slog.LevelInfo},
		{name: "whitespace tolerated", level: "  error  ", want: slog.LevelError},
		{name: "unknown defaults to info", level: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestStructuredLoggerAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "pulsed", "v1.2.3", slog.LevelInfo)

	logger.Info("server started", "port", 8080)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}

	if record["module"] != "pulsed" {
		t.Errorf("expected module attribute 'pulsed', got %v", record["module"])
	}
	if record["version"] != "v1.2.3" {
		t.Errorf("expected version attribute 'v1.2.3', got %v", record["version"])
	}
	if record["msg"] != "server started" {
		t.Errorf("expected msg 'server started', got %v", record["msg"])
	}
	if record["port"] != float64(8080) {
		t.Errorf("expected port 8080, got %v", record["port"])
	}
}

func TestStructuredLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "pulse", "dev", slog.LevelWarn)

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("info record should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("should appear")
	if buf.Len() == 0 {
		t.Error("warn record should pass at warn level")
	}
}

func TestStructuredLoggerDebugSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "pulse", "dev", slog.LevelDebug)

	logger.Debug("with source")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if _, ok := record["source"]; !ok {
		t.Error("debug-level logger should record source location")
	}
}

func TestNewLogLogger(t *testing.T) {
	std := NewLogLogger(slog.LevelInfo, false)
	if std == nil {
		t.Fatal("expected non-nil standard logger")
	}
}
