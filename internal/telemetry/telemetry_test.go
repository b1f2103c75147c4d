package telemetry_test

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/VladimirB-prog/ai-agents-showcase/internal/telemetry"
)

// chtmp moves the test into a fresh working directory so .agent/ lands there.
func chtmp(t *testing.T) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
}

func TestEmit_GatingOff(t *testing.T) {
	chtmp(t)
	t.Setenv("ATP_OBSERVE_JSON", "0")

	telemetry.Emit("test_event", map[string]any{"foo": "bar"})

	if _, err := os.Stat(".agent/events.jsonl"); !os.IsNotExist(err) {
		t.Fatalf("expected no events file with gating off, got err=%v", err)
	}
}

func TestEmit_HappyPath(t *testing.T) {
	chtmp(t)
	t.Setenv("ATP_OBSERVE_JSON", "1")

	telemetry.Emit("test_event", map[string]any{"foo": "bar", "num": 42})

	data, err := os.ReadFile(".agent/events.jsonl")
	if err != nil {
		t.Fatalf("failed to read events.jsonl: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var event map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if event["event"] != "test_event" {
		t.Errorf("expected event=test_event, got %v", event["event"])
	}
	if event["foo"] != "bar" {
		t.Errorf("expected foo=bar, got %v", event["foo"])
	}
	if event["num"] != float64(42) { // JSON numbers are float64
		t.Errorf("expected num=42, got %v", event["num"])
	}

	timeStr, ok := event["time"].(string)
	if !ok {
		t.Fatal("expected time field as string")
	}
	if _, err := time.Parse(time.RFC3339Nano, timeStr); err != nil {
		t.Errorf("time field not valid RFC3339Nano: %v", err)
	}
}

func TestEmit_MultipleEmissions(t *testing.T) {
	chtmp(t)
	t.Setenv("ATP_OBSERVE_JSON", "1")

	telemetry.Emit("event1", map[string]any{"id": 1})
	telemetry.Emit("event2", map[string]any{"id": 2})
	telemetry.Emit("event3", map[string]any{"id": 3})

	data, err := os.ReadFile(".agent/events.jsonl")
	if err != nil {
		t.Fatalf("failed to read events.jsonl: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	expectedEvents := []string{"event1", "event2", "event3"}
	for i, line := range lines {
		var event map[string]any
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			t.Fatalf("line %d invalid JSON: %v", i+1, err)
		}
		if event["event"] != expectedEvents[i] {
			t.Errorf("line %d: expected event=%s, got %v", i+1, expectedEvents[i], event["event"])
		}
	}
}

func TestEmit_MapIsolation(t *testing.T) {
	chtmp(t)
	t.Setenv("ATP_OBSERVE_JSON", "1")

	fields := map[string]any{"key": "value"}
	telemetry.Emit("test", fields)

	if len(fields) != 1 {
		t.Errorf("expected fields to have 1 key, got %d", len(fields))
	}
	if _, ok := fields["time"]; ok {
		t.Error("fields should not contain 'time' key")
	}
	if _, ok := fields["event"]; ok {
		t.Error("fields should not contain 'event' key")
	}
}

func TestEmit_ErrorHandling_MarshalError(t *testing.T) {
	chtmp(t)
	t.Setenv("ATP_OBSERVE_JSON", "1")

	// NaN cannot be marshaled by encoding/json (will error)
	telemetry.Emit("bad", map[string]any{"x": math.NaN()})

	if _, err := os.Stat(".agent/events.jsonl"); !os.IsNotExist(err) {
		t.Fatalf("expected no events file on marshal error, got err=%v", err)
	}
}

func TestEmit_NilFields(t *testing.T) {
	chtmp(t)
	t.Setenv("ATP_OBSERVE_JSON", "1")

	telemetry.Emit("nil_fields", nil)

	data, err := os.ReadFile(".agent/events.jsonl")
	if err != nil {
		t.Fatalf("failed to read events.jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var event map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if event["event"] != "nil_fields" {
		t.Errorf("expected event=nil_fields, got %v", event["event"])
	}
	// Expect exactly 2 keys: event and time
	if len(event) != 2 {
		t.Fatalf("expected exactly 2 keys (event,time), got %d: %#v", len(event), event)
	}
}
