package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&config.LoggerConfig{Level: "info", Format: "json"}, &buf)

	Component(l, "poll").Info("cycle done", slog.Int("sent", 2))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if rec["level"] != "INFO" {
		t.Fatalf("unexpected level: %v", rec["level"])
	}
	if rec["service"] != serviceName || rec["component"] != "poll" {
		t.Fatalf("missing static attrs: %v", rec)
	}
	src, _ := rec["source"].(string)
	if !strings.HasPrefix(src, "logger_test.go:") {
		t.Fatalf("source not shortened: %q", src)
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&config.LoggerConfig{Level: "warn", Format: "text"}, &buf)

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info must be filtered at warn level: %s", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected WARN line, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if _, err := parseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	lv, err := parseLevel(" Debug ")
	if err != nil || lv != slog.LevelDebug {
		t.Fatalf("unexpected: %v %v", lv, err)
	}
}
