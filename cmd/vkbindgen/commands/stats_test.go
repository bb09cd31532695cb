package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vkbind/vkbind-go/pkg/log"
)

func TestStatsAggregates(t *testing.T) {
	stats := newStats()
	for _, e := range sampleRun() {
		stats.add(e)
	}

	if stats.TotalEvents != 6 {
		t.Errorf("TotalEvents = %d, want 6", stats.TotalEvents)
	}
	if stats.EventsByStage[log.StageFeatures] != 2 {
		t.Errorf("FEATURES events = %d, want 2", stats.EventsByStage[log.StageFeatures])
	}
	if stats.EventsByCategory[log.CategoryRun] != 2 {
		t.Errorf("RUN events = %d, want 2", stats.EventsByCategory[log.CategoryRun])
	}

	fntable := stats.Kinds["fntable"]
	if fntable == nil || fntable.Units != 1 || fntable.Items != 3 || fntable.Skipped != 1 {
		t.Errorf("fntable stats = %+v, want 1 unit, 3 items, 1 skipped", fntable)
	}
	if stats.DropsByOrigin["1.0"] != 1 {
		t.Errorf("drops for 1.0 = %d, want 1", stats.DropsByOrigin["1.0"])
	}

	run := stats.Runs["7d1c2f9e-0000-4000-8000-000000000001"]
	if run == nil {
		t.Fatal("expected run stats")
	}
	if run.State != log.RunFinished || run.Units != 2 || run.Dropped != 1 {
		t.Errorf("run stats = %+v", run)
	}
}

func TestRunStatsCommand(t *testing.T) {
	path := createTestTrace(t, sampleRun())

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 6",
		"FEATURES:",
		"DROP:",
		"KIND",
		"SKIPPED",
		"ORIGIN",
		"Runs: 1",
		"[7d1c2f9e] FINISHED, 6 events",
		"Units: 2, dropped: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Errors:") {
		t.Errorf("no errors were traced:\n%s", output)
	}

	var handleRow []string
	for _, line := range strings.Split(output, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 && fields[0] == "handle" {
			handleRow = fields
		}
	}
	if strings.Join(handleRow, " ") != "handle 1 0 0" {
		t.Errorf("handle row = %q, want \"handle 1 0 0\"", handleRow)
	}
}

func TestRunStatsCountsErrors(t *testing.T) {
	path := createTestTrace(t, []log.Event{
		{RunID: "r1", Category: log.CategoryError, Error: &log.ErrorEventData{Message: "boom"}},
		{RunID: "r1", Category: log.CategoryRun, Run: &log.RunEvent{State: log.RunFailed}},
	})

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Errors: 1") {
		t.Errorf("expected error count:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "FAILED") {
		t.Errorf("expected failed run:\n%s", buf.String())
	}
}
