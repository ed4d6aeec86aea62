package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/zapponejosh/feriados-api/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{LogLevel: "info", LogFormat: "json"}, &buf)

	log.Debug("hidden")
	log.Info("visible", slog.Int("year", 2023))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1:\n%s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "visible" {
		t.Errorf("msg = %v, want visible", entry["msg"])
	}
	if entry["year"] != float64(2023) {
		t.Errorf("year = %v, want 2023", entry["year"])
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{LogLevel: "debug", LogFormat: "text"}, &buf)

	log.Debug("details")

	if !strings.Contains(buf.String(), "msg=details") {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := New(&config.Config{LogLevel: "info", LogFormat: "text"}, &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID() = %q, want req-123", got)
	}

	FromContext(ctx, base).Info("tagged")
	if !strings.Contains(buf.String(), "request_id=req-123") {
		t.Errorf("output missing request id: %q", buf.String())
	}

	if RequestID(context.Background()) != "" {
		t.Error("RequestID() of empty context should be empty")
	}
}
