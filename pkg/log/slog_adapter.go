package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see the trace in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Errors are logged at Error
// level, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("stage", event.Stage.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Run != nil:
		attrs = append(attrs, slog.String("state", event.Run.State.String()))
		if event.Run.Digest != "" {
			attrs = append(attrs, slog.String("digest", event.Run.Digest))
		}
		if event.Run.State == RunFinished {
			attrs = append(attrs,
				slog.Int("units", event.Run.Units),
				slog.Int("dropped", event.Run.Dropped),
			)
		}
	case event.Unit != nil:
		attrs = append(attrs,
			slog.String("kind", event.Unit.Kind),
			slog.String("name", event.Unit.Name),
		)
		if event.Unit.Source != "" {
			attrs = append(attrs, slog.String("source", event.Unit.Source))
		}
		if event.Unit.Items > 0 {
			attrs = append(attrs, slog.Int("items", event.Unit.Items))
		}
	case event.Skip != nil:
		attrs = append(attrs,
			slog.String("kind", event.Skip.Kind),
			slog.String("name", event.Skip.Name),
			slog.String("reason", event.Skip.Reason),
		)
	case event.Drop != nil:
		attrs = append(attrs,
			slog.String("origin", event.Drop.Origin),
			slog.String("command", event.Drop.Command),
		)
	case event.Error != nil:
		level = slog.LevelError
		attrs = append(attrs,
			slog.String("error_stage", event.Error.Stage.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
