package gen

import (
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/vkbind/vkbind-go/pkg/log"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

// testdataDir returns the absolute path to the repository testdata/ directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata")
}

func loadTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Load(filepath.Join(testdataDir(t), "registry.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return reg
}

// recordingLogger keeps every trace event in memory.
type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *recordingLogger) Log(e log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *recordingLogger) byCategory(c log.Category) []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []log.Event
	for _, e := range l.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

func num(n int64) *int64   { return &n }
func str(s string) *string { return &s }
func bit(p uint32) *uint32 { return &p }
