package log

import "time"

// Event represents one generation trace event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the generation run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Stage of the run that produced the event.
	Stage Stage `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Run   *RunEvent       `cbor:"10,keyasint,omitempty"`
	Unit  *UnitEvent      `cbor:"11,keyasint,omitempty"`
	Skip  *SkipEvent      `cbor:"12,keyasint,omitempty"`
	Drop  *DropEvent      `cbor:"13,keyasint,omitempty"`
	Error *ErrorEventData `cbor:"14,keyasint,omitempty"`
}

// Stage indicates which part of the generation pass emitted the event.
type Stage uint8

const (
	// StageIndex builds the run-scoped command and type indexes.
	StageIndex Stage = 0
	// StageFeatures assembles core version tables.
	StageFeatures Stage = 1
	// StageExtensions assembles extension tables and constants.
	StageExtensions Stage = 2
	// StageDefinitions generates handles, typedefs, structs and unions.
	StageDefinitions Stage = 3
	// StageEnums generates enumerations and bit-flag types.
	StageEnums Stage = 4
	// StageConstants generates top-level constants.
	StageConstants Stage = 5
	// StageEmit prints and writes output files.
	StageEmit Stage = 6
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageIndex:
		return "INDEX"
	case StageFeatures:
		return "FEATURES"
	case StageExtensions:
		return "EXTENSIONS"
	case StageDefinitions:
		return "DEFINITIONS"
	case StageEnums:
		return "ENUMS"
	case StageConstants:
		return "CONSTANTS"
	case StageEmit:
		return "EMIT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRun indicates a run lifecycle change.
	CategoryRun Category = 0
	// CategoryUnit indicates an emitted unit.
	CategoryUnit Category = 1
	// CategorySkip indicates a registry node that produced no output.
	CategorySkip Category = 2
	// CategoryDrop indicates an unresolved command reference.
	CategoryDrop Category = 3
	// CategoryError indicates the error that aborted the run.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRun:
		return "RUN"
	case CategoryUnit:
		return "UNIT"
	case CategorySkip:
		return "SKIP"
	case CategoryDrop:
		return "DROP"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// RunState is the lifecycle state of a run.
type RunState uint8

const (
	// RunStarted is recorded before the first unit.
	RunStarted RunState = 0
	// RunFinished is recorded after the last unit.
	RunFinished RunState = 1
	// RunFailed is recorded when a fatal error aborts the run.
	RunFailed RunState = 2
)

// String returns the run state name.
func (r RunState) String() string {
	switch r {
	case RunStarted:
		return "STARTED"
	case RunFinished:
		return "FINISHED"
	case RunFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// RunEvent captures run lifecycle changes.
type RunEvent struct {
	State RunState `cbor:"1,keyasint"`

	// Digest identifies the input registry.
	Digest string `cbor:"2,keyasint,omitempty"`

	// Units and Dropped are totals, set on RunFinished.
	Units   int `cbor:"3,keyasint,omitempty"`
	Dropped int `cbor:"4,keyasint,omitempty"`
}

// UnitEvent captures an emitted unit.
type UnitEvent struct {
	// Kind is the declaration kind ("handle", "enum", "fntable", ...).
	Kind string `cbor:"1,keyasint"`

	// Name is the declared binding name.
	Name string `cbor:"2,keyasint"`

	// Source is the registry name the unit was generated from.
	Source string `cbor:"3,keyasint,omitempty"`

	// Items counts slots, fields, variants or flag values.
	Items int `cbor:"4,keyasint,omitempty"`
}

// SkipEvent captures a registry node that produced no output.
type SkipEvent struct {
	Kind   string `cbor:"1,keyasint"`
	Name   string `cbor:"2,keyasint,omitempty"`
	Reason string `cbor:"3,keyasint"`
}

// DropEvent captures a command reference that did not resolve against the
// command index.
type DropEvent struct {
	// Origin is the feature version or extension name holding the reference.
	Origin string `cbor:"1,keyasint"`

	// Command is the unresolved command name.
	Command string `cbor:"2,keyasint"`
}

// ErrorEventData captures the error that aborted a run.
type ErrorEventData struct {
	// Stage where the error occurred.
	Stage Stage `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context names the registry node being generated.
	Context string `cbor:"3,keyasint,omitempty"`
}
