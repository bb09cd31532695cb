package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func writeTrace(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.vtrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, ev := range events {
		logger.Log(ev)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, ev)
	}
}

func sampleEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, RunID: "r1", Stage: StageIndex, Category: CategoryRun, Run: &RunEvent{State: RunStarted}},
		{Timestamp: base.Add(1 * time.Second), RunID: "r1", Stage: StageFeatures, Category: CategoryDrop, Drop: &DropEvent{Origin: "1.0", Command: "vkMissing"}},
		{Timestamp: base.Add(2 * time.Second), RunID: "r1", Stage: StageFeatures, Category: CategoryUnit, Unit: &UnitEvent{Kind: "fntable", Name: "InstanceFnV1_0"}},
		{Timestamp: base.Add(3 * time.Second), RunID: "r1", Stage: StageDefinitions, Category: CategorySkip, Skip: &SkipEvent{Kind: "handle", Reason: "empty name"}},
		{Timestamp: base.Add(4 * time.Second), RunID: "r1", Stage: StageDefinitions, Category: CategoryUnit, Unit: &UnitEvent{Kind: "handle", Name: "Instance"}},
		{Timestamp: base.Add(5 * time.Second), RunID: "r1", Stage: StageConstants, Category: CategoryRun, Run: &RunEvent{State: RunFinished, Units: 2, Dropped: 1}},
	}
}

func TestReaderReadsAll(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	path := writeTrace(t, sampleEvents(base))

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	events := readAll(t, r)
	if len(events) != 6 {
		t.Fatalf("events = %d, want 6", len(events))
	}
	if events[1].Drop == nil || events[1].Drop.Command != "vkMissing" {
		t.Errorf("events[1] = %+v", events[1])
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	path := writeTrace(t, sampleEvents(base))

	unit := CategoryUnit
	features := StageFeatures
	start := base.Add(2 * time.Second)
	end := base.Add(5 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"empty", Filter{}, 6},
		{"category", Filter{Category: &unit}, 2},
		{"stage", Filter{Stage: &features}, 2},
		{"stage and category", Filter{Stage: &features, Category: &unit}, 1},
		{"name", Filter{Name: "Instance"}, 1},
		{"dropped command name", Filter{Name: "vkMissing"}, 1},
		{"run id", Filter{RunID: "other"}, 0},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer r.Close()

			if got := len(readAll(t, r)); got != tt.want {
				t.Errorf("events = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.vtrace"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
