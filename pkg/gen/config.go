package gen

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/vkbind/vkbind-go/pkg/log"
)

// Config controls a generation run. The zero value is usable.
type Config struct {
	// Logger receives operational records. Defaults to slog.Default().
	Logger *slog.Logger

	// Trace receives generation trace events. Defaults to log.NoopLogger.
	Trace log.Logger

	// RunID tags trace events. Defaults to a random UUID.
	RunID string
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Trace == nil {
		c.Trace = log.NoopLogger{}
	}
	if c.RunID == "" {
		c.RunID = uuid.NewString()
	}
	return c
}
