package registry

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// snapshotEncMode is deterministic so that equal registries produce equal
// bytes, and therefore equal digests.
var snapshotEncMode cbor.EncMode

var snapshotDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	snapshotEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	snapshotDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeSnapshot encodes a registry as canonical CBOR.
func EncodeSnapshot(reg *Registry) ([]byte, error) {
	data, err := snapshotEncMode.Marshal(ToRaw(reg))
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot decodes a registry from CBOR produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*Registry, error) {
	var raw RawRegistry
	if err := snapshotDecMode.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	reg, err := FromRaw(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return reg, nil
}

// LoadSnapshot loads a registry from a CBOR snapshot file.
func LoadSnapshot(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeSnapshot(data)
}

// Digest returns "blake2b-256:<hex>" computed over the canonical snapshot
// encoding of the registry.
func Digest(reg *Registry) (string, error) {
	data, err := EncodeSnapshot(reg)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return "blake2b-256:" + hex.EncodeToString(sum[:]), nil
}
