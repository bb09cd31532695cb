package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/tools/imports"

	"github.com/vkbind/vkbind-go/pkg/gen"
	"github.com/vkbind/vkbind-go/pkg/golang"
	"github.com/vkbind/vkbind-go/pkg/log"
	"github.com/vkbind/vkbind-go/pkg/manifest"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

// SnapshotFileName is the snapshot written next to generated files when
// GenerateOptions.Snapshot is set.
const SnapshotFileName = "registry.cbor"

// GenerateOptions configures the generate command.
type GenerateOptions struct {
	Registry string
	Output   string
	Package  string
	Header   string

	// Manifest, when set, is the path of the YAML manifest to write.
	Manifest string

	// Trace, when set, is the path of the CBOR trace file to write.
	Trace string

	// Snapshot writes a CBOR snapshot of the input into Output.
	Snapshot bool

	// Verbose mirrors trace events to Logger.
	Verbose bool

	Logger *slog.Logger
}

// LoadRegistry loads a registry from YAML, or from a CBOR snapshot when
// the path ends in ".cbor".
func LoadRegistry(path string) (*registry.Registry, error) {
	if strings.HasSuffix(path, ".cbor") {
		return registry.LoadSnapshot(path)
	}
	return registry.Load(path)
}

// RunGenerate loads the registry, generates the bindings and writes one
// formatted file per category into opts.Output.
func RunGenerate(opts GenerateOptions, w io.Writer) (err error) {
	if opts.Registry == "" {
		return fmt.Errorf("no registry given")
	}
	if opts.Output == "" {
		return fmt.Errorf("no output directory given")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg, err := LoadRegistry(opts.Registry)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	var loggers []log.Logger
	if opts.Trace != "" {
		fl, ferr := log.NewFileLogger(opts.Trace)
		if ferr != nil {
			return fmt.Errorf("creating trace file: %w", ferr)
		}
		defer func() {
			if cerr := fl.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("writing trace file: %w", cerr)
			}
		}()
		loggers = append(loggers, fl)
	}
	if opts.Verbose {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}
	trace := log.NewMultiLogger(loggers...)
	runID := uuid.NewString()

	mod, err := gen.Generate(reg, gen.Config{Logger: logger, Trace: trace, RunID: runID})
	if err != nil {
		return fmt.Errorf("generating bindings: %w", err)
	}

	// Emit failures are traced under the same run as the generation pass.
	emitErr := func(context string, err error) error {
		trace.Log(log.Event{
			Timestamp: time.Now(),
			RunID:     runID,
			Stage:     log.StageEmit,
			Category:  log.CategoryError,
			Error:     &log.ErrorEventData{Stage: log.StageEmit, Message: err.Error(), Context: context},
		})
		return err
	}

	files, err := golang.PrintFiles(mod, golang.Options{Package: opts.Package, Header: opts.Header})
	if err != nil {
		return emitErr("print", fmt.Errorf("printing bindings: %w", err))
	}

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return emitErr(opts.Output, fmt.Errorf("creating output dir: %w", err))
	}

	if name, err := writeFiles(opts.Output, files, w); err != nil {
		return emitErr(name, fmt.Errorf("writing %s: %w", name, err))
	}

	if opts.Manifest != "" {
		data, err := manifest.Marshal(manifest.Derive(mod))
		if err != nil {
			return emitErr("manifest", err)
		}
		if err := os.WriteFile(opts.Manifest, data, 0o644); err != nil {
			return emitErr("manifest", fmt.Errorf("writing manifest: %w", err))
		}
		fmt.Fprintf(w, "  generated %s\n", opts.Manifest)
	}

	if opts.Snapshot {
		outPath := filepath.Join(opts.Output, SnapshotFileName)
		if err := writeSnapshot(reg, outPath); err != nil {
			return emitErr("snapshot", err)
		}
		fmt.Fprintf(w, "  generated %s\n", outPath)
	}

	fmt.Fprintf(w, "%d units from %s (%s)\n", len(mod.Units), opts.Registry, mod.Digest)
	return nil
}

// writeFiles runs goimports over every file, then writes them all to dir.
// Nothing is written unless every file formats; the raw code of the file
// that failed is kept next to its path for inspection. On failure the name
// of that file is returned with the error.
func writeFiles(dir string, files []golang.File, w io.Writer) (string, error) {
	formatted := make([][]byte, len(files))
	for i, f := range files {
		path := filepath.Join(dir, f.Name)
		code, err := imports.Process(path, f.Source, nil)
		if err != nil {
			_ = os.WriteFile(path+".broken", f.Source, 0o644)
			return f.Name, fmt.Errorf("goimports %s: %w", f.Name, err)
		}
		formatted[i] = code
	}

	for i, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, formatted[i], 0o644); err != nil {
			return f.Name, err
		}
		fmt.Fprintf(w, "  generated %s\n", path)
	}
	return "", nil
}
