// Package log provides structured generation tracing for vkbind.
//
// This package defines the Logger interface and Event types for recording
// what a generation run did: every emitted unit, every skipped placeholder,
// every dropped command reference and the error that aborted a run, if any.
// It is separate from operational logging (slog); a trace is a complete
// machine-readable record for debugging registry changes.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// For CI: write to a trace file
//	cfg.Trace, _ = log.NewFileLogger("build/vk.vtrace")
//
//	// Both: use MultiLogger
//	cfg.Trace = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with the .vtrace
// extension. The vkbindgen trace command views and summarizes them.
package log
