package log

import (
	"sync"
	"testing"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}
	m := NewMultiLogger(a, b)

	m.Log(Event{RunID: "run-1"})
	m.Log(Event{RunID: "run-2"})

	for i, r := range []*recordingLogger{a, b} {
		if len(r.events) != 2 {
			t.Errorf("logger %d received %d events, want 2", i, len(r.events))
		}
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	a := &recordingLogger{}
	m := NewMultiLogger(nil, a, nil)

	m.Log(Event{RunID: "run-1"})

	if len(a.events) != 1 {
		t.Errorf("received %d events, want 1", len(a.events))
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(Event{})
}
