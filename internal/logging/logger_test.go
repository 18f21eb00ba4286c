package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relparse/internal/config"
	"relparse/internal/logging"
)

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "scan").Info("indexed file",
		logging.String("title", "The Matrix"),
		logging.Int("year", 1999),
	)

	line := buf.String()
	for _, want := range []string{"INFO [scan]", "– indexed file", `title="The Matrix"`, "year=1999"} {
		if !strings.Contains(line, want) {
			t.Fatalf("unexpected console line: got %q want substring %q", line, want)
		}
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("debug with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller in debug line, got %q", buf.String())
	}
}

func TestConsoleLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("parsed", logging.String("title", "Arrow"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json line %q: %v", buf.String(), err)
	}
	if entry["level"] != "info" {
		t.Fatalf("unexpected level: got %v want %q", entry["level"], "info")
	}
	if entry["msg"] != "parsed" {
		t.Fatalf("unexpected msg: got %v want %q", entry["msg"], "parsed")
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFileOutputWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "relparse.log")
	logger, err := logging.New(logging.Options{
		Level:  "info",
		Format: "console",
		Output: &buf,
		File:   &logging.FileOptions{Path: logPath, MaxSizeMB: 1},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("rotating output", logging.String("kind", "tv"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"rotating output"`) {
		t.Fatalf("unexpected file content: %q", content)
	}
	if !strings.Contains(buf.String(), "rotating output") {
		t.Fatalf("expected console output as well, got %q", buf.String())
	}
}

func TestNewFromConfigWithFileLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.File = true

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("config logger")
	if _, err := os.Stat(cfg.LogFilePath()); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestWithContextAddsScanAndRequestIDs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithScanID(context.Background(), "0123456789abcdef")
	ctx = logging.WithRequestID(ctx, "req-1")

	logging.WithContext(ctx, logger).Info("tagged")

	line := buf.String()
	if !strings.Contains(line, "scan 01234567 · req req-1") {
		t.Fatalf("unexpected subject: got %q", line)
	}
	if strings.Contains(line, "scan_id=") {
		t.Fatalf("expected scan id folded into subject, got %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"bogus":   "INFO",
	}
	for input, want := range tests {
		if got := logging.ParseLevel(input).String(); got != want {
			t.Fatalf("unexpected level for %q: got %q want %q", input, got, want)
		}
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("expected nop logger to be disabled")
	}
	logger.Error("ignored")
}
