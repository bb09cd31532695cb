package main

import (
	"log/slog"
	"os"

	"github.com/vkbind/vkbind-go/pkg/golang"
)

// Environment variables consulted when the matching flag is not given.
const (
	envRegistry = "VKBIND_REGISTRY"
	envOutput   = "VKBIND_OUTPUT"
	envPackage  = "VKBIND_PACKAGE"
	envTrace    = "VKBIND_TRACE"
)

// Defaults used when neither flag nor environment provide a value.
const (
	defaultRegistry = "vk.yaml"
	defaultOutput   = "vk"
)

// envOr returns the value of the environment variable key, or def when it
// is unset or empty. Flags registered with envOr defaults resolve as
// flag > env > default.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// config holds the resolved generate flags.
type config struct {
	registry string
	output   string
	pkg      string
	header   string
	manifest string
	trace    string
	snapshot bool
	verbose  bool
}

func defaultConfig() config {
	return config{
		registry: envOr(envRegistry, defaultRegistry),
		output:   envOr(envOutput, defaultOutput),
		pkg:      envOr(envPackage, golang.DefaultPackage),
		trace:    envOr(envTrace, ""),
	}
}

// newLogger returns the operational logger. Debug records are shown only
// in verbose mode.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
