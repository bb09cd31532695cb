package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		RunID:     "run-1",
		Stage:     StageIndex,
		Category:  CategoryRun,
	}
	logger.Log(event)

	event.Run = &RunEvent{State: RunStarted}
	logger.Log(event)

	event.Run = nil
	event.Unit = &UnitEvent{Kind: "handle", Name: "Instance"}
	logger.Log(event)

	event.Unit = nil
	event.Skip = &SkipEvent{Kind: "handle", Reason: "empty name"}
	logger.Log(event)

	event.Skip = nil
	event.Drop = &DropEvent{Origin: "1.0", Command: "vkMissing"}
	logger.Log(event)

	event.Drop = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}
