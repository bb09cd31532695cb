package commands

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/vkbind/vkbind-go/pkg/log"
)

func testRegistryPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "registry.yaml")
}

func createTestTrace(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.vtrace")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}
	return path
}

// sampleRun is a short finished run with one unit, one skip and one drop.
func sampleRun() []log.Event {
	ts := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	runID := "7d1c2f9e-0000-4000-8000-000000000001"
	return []log.Event{
		{Timestamp: ts, RunID: runID, Stage: log.StageIndex, Category: log.CategoryRun,
			Run: &log.RunEvent{State: log.RunStarted, Digest: "blake2b-256:ab"}},
		{Timestamp: ts.Add(time.Millisecond), RunID: runID, Stage: log.StageFeatures, Category: log.CategoryUnit,
			Unit: &log.UnitEvent{Kind: "fntable", Name: "InstanceFnV1_0", Source: "1.0", Items: 3}},
		{Timestamp: ts.Add(2 * time.Millisecond), RunID: runID, Stage: log.StageFeatures, Category: log.CategoryDrop,
			Drop: &log.DropEvent{Origin: "1.0", Command: "vkMissingCommand"}},
		{Timestamp: ts.Add(3 * time.Millisecond), RunID: runID, Stage: log.StageExtensions, Category: log.CategorySkip,
			Skip: &log.SkipEvent{Kind: "fntable", Name: "VK_EXT_empty", Reason: "no resolved commands"}},
		{Timestamp: ts.Add(4 * time.Millisecond), RunID: runID, Stage: log.StageDefinitions, Category: log.CategoryUnit,
			Unit: &log.UnitEvent{Kind: "handle", Name: "Instance", Source: "VkInstance"}},
		{Timestamp: ts.Add(5 * time.Millisecond), RunID: runID, Stage: log.StageConstants, Category: log.CategoryRun,
			Run: &log.RunEvent{State: log.RunFinished, Digest: "blake2b-256:ab", Units: 2, Dropped: 1}},
	}
}
