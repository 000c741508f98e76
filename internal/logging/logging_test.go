package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/example/todod/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Error("expected JSON formatter")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("expected logfmt formatter")
	}
	if ParseFormatter("") != log.TextFormatter {
		t.Error("expected text formatter by default")
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LogConfig{Level: "info", Format: "json"})

	logger.Info("Server will listen", "addr", "127.0.0.1:8080")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "Server will listen" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["addr"] != "127.0.0.1:8080" {
		t.Errorf("unexpected addr: %v", entry["addr"])
	}
	if entry["prefix"] != Prefix {
		t.Errorf("expected prefix %s, got %v", Prefix, entry["prefix"])
	}
	if _, ok := entry["v"]; !ok {
		t.Error("expected version field on every entry")
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LogConfig{Level: "error", Format: "text"})

	logger.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered at error level, got %q", buf.String())
	}
}
