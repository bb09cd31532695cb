package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/vkbind/vkbind-go/pkg/registry"
)

// RunSnapshot converts the registry at in into a CBOR snapshot at out and
// prints its digest.
func RunSnapshot(in, out string, w io.Writer) error {
	if in == "" || out == "" {
		return fmt.Errorf("snapshot needs both a registry and an output path")
	}

	reg, err := LoadRegistry(in)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}
	if err := writeSnapshot(reg, out); err != nil {
		return err
	}

	digest, err := registry.Digest(reg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", digest, out)
	return nil
}

func writeSnapshot(reg *registry.Registry, path string) error {
	data, err := registry.EncodeSnapshot(reg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
