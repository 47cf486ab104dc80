package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"scenesync/internal/logging"
)

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn message missing: %q", out)
	}
}

func TestNewJSONEmitsStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("aligned", logging.Args(logging.Int("scenes", 7))...)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "aligned" {
		t.Fatalf("msg %v, want aligned", record["msg"])
	}
	if record["scenes"] != float64(7) {
		t.Fatalf("scenes %v, want 7", record["scenes"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(base, "aligner").Info("ready")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record[logging.FieldComponent] != "aligner" {
		t.Fatalf("component %v, want aligner", record[logging.FieldComponent])
	}
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "aligner")
	if logger == nil {
		t.Fatal("expected usable logger from nil base")
	}
	logger.Info("discarded")
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("no-op logger should report disabled")
	}
}
