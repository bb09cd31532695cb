package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logJSON(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsUnitEvent(t *testing.T) {
	entry := logJSON(t, Event{
		Timestamp: time.Now(),
		RunID:     "run-123",
		Stage:     StageDefinitions,
		Category:  CategoryUnit,
		Unit:      &UnitEvent{Kind: "struct", Name: "Extent2D", Source: "VkExtent2D", Items: 2},
	})

	want := map[string]any{
		"msg":      "trace",
		"level":    "DEBUG",
		"run_id":   "run-123",
		"stage":    "DEFINITIONS",
		"category": "UNIT",
		"kind":     "struct",
		"name":     "Extent2D",
		"source":   "VkExtent2D",
		"items":    float64(2),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterLogsDropEvent(t *testing.T) {
	entry := logJSON(t, Event{
		RunID:    "run-1",
		Stage:    StageExtensions,
		Category: CategoryDrop,
		Drop:     &DropEvent{Origin: "VK_KHR_surface", Command: "vkMissingKHR"},
	})

	if entry["origin"] != "VK_KHR_surface" {
		t.Errorf("origin: got %v", entry["origin"])
	}
	if entry["command"] != "vkMissingKHR" {
		t.Errorf("command: got %v", entry["command"])
	}
}

func TestSlogAdapterLogsErrorAtErrorLevel(t *testing.T) {
	entry := logJSON(t, Event{
		RunID:    "run-1",
		Stage:    StageConstants,
		Category: CategoryError,
		Error:    &ErrorEventData{Stage: StageConstants, Message: "unsupported", Context: "VK_BROKEN"},
	})

	if entry["level"] != "ERROR" {
		t.Errorf("level: got %v, want ERROR", entry["level"])
	}
	if entry["error_context"] != "VK_BROKEN" {
		t.Errorf("error_context: got %v", entry["error_context"])
	}
}

func TestSlogAdapterLogsRunFinished(t *testing.T) {
	entry := logJSON(t, Event{
		RunID:    "run-1",
		Category: CategoryRun,
		Run:      &RunEvent{State: RunFinished, Digest: "blake2b-256:ab", Units: 10, Dropped: 3},
	})

	if entry["state"] != "FINISHED" {
		t.Errorf("state: got %v", entry["state"])
	}
	if entry["units"] != float64(10) || entry["dropped"] != float64(3) {
		t.Errorf("totals: got units=%v dropped=%v", entry["units"], entry["dropped"])
	}
	if entry["digest"] != "blake2b-256:ab" {
		t.Errorf("digest: got %v", entry["digest"])
	}
}
