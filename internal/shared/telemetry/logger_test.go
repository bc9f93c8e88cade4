package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestInfoWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Info("pipeline.stage", map[string]any{"stage": "extract", "bytes": 42})

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level %v", payload["level"])
	}
	if payload["msg"] != "pipeline.stage" {
		t.Fatalf("unexpected msg %v", payload["msg"])
	}
	if payload["stage"] != "extract" {
		t.Fatalf("unexpected stage %v", payload["stage"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("missing ts field")
	}
}

func TestErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Error("boom", nil)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload["level"] != "error" {
		t.Fatalf("unexpected level %v", payload["level"])
	}
}
