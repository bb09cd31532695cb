package manifest

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkbind/vkbind-go/pkg/gen"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

func generateTestModule(t *testing.T) *ir.Module {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "registry.yaml")

	reg, err := registry.Load(path)
	require.NoError(t, err)
	mod, err := gen.Generate(reg, gen.Config{
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	require.NoError(t, err)
	return mod
}

func TestDerive(t *testing.T) {
	mod := generateTestModule(t)
	m := Derive(mod)

	assert.Equal(t, mod.Digest, m.Digest)
	require.Len(t, m.Tables, 5)
	assert.Equal(t, Table{
		Name:        "KhrSurfaceFn",
		Level:       "extension",
		Origin:      "VK_KHR_surface",
		EntryPoints: []string{"vkDestroySurfaceKHR", "vkGetPhysicalDeviceSurfaceSupportKHR"},
	}, m.Tables[3])

	assert.Len(t, m.Handles, 8)
	assert.Equal(t, Handle{Name: "Instance", Dispatchable: true}, m.Handles[0])
	assert.Equal(t, Handle{Name: "Buffer"}, m.Handles[5])

	assert.Contains(t, m.Typedefs, Typedef{Name: "DeviceSize", Base: "uint64"})
	assert.Equal(t, []string{"PFN_vkVoidFunction", "PFN_vkAllocationFunction"}, m.FuncPtrs)
	assert.Len(t, m.Structs, 10)
	assert.Len(t, m.Enums, 5)
	assert.Len(t, m.Bitflags, 3)
	assert.Len(t, m.Constants, 10)
}

func TestDeriveDetails(t *testing.T) {
	m := Derive(generateTestModule(t))

	var clear *Struct
	for i := range m.Structs {
		if m.Structs[i].Name == "ClearValue" {
			clear = &m.Structs[i]
		}
	}
	require.NotNil(t, clear)
	assert.True(t, clear.Union)
	assert.Equal(t, int64(16), clear.Size)
	assert.Equal(t, []string{"color ClearColorValue", "depth_stencil ClearDepthStencilValue"}, clear.Fields)

	var queue Bitflags
	for _, b := range m.Bitflags {
		if b.Name == "QueueFlags" {
			queue = b
		}
	}
	assert.Equal(t, "0x7", queue.All)
	assert.Equal(t, []string{"QUEUE_GRAPHICS_BIT", "QUEUE_COMPUTE_BIT", "QUEUE_TRANSFER_BIT"}, queue.Values)

	byName := make(map[string]Constant)
	for _, c := range m.Constants {
		byName[c.Name] = c
	}
	assert.Equal(t, Constant{Name: "WHOLE_SIZE", Type: "u64", Value: "!0"}, byName["WHOLE_SIZE"])
	assert.Equal(t, Constant{Name: "MAX_MEMORY_TYPES", Type: "usize", Value: "0x20"}, byName["MAX_MEMORY_TYPES"])
	assert.Equal(t, Constant{Name: "KHR_SURFACE_EXTENSION_NAME", Type: "text", Value: "VK_KHR_surface"}, byName["KHR_SURFACE_EXTENSION_NAME"])
}

func TestMarshalRoundTrip(t *testing.T) {
	m := Derive(generateTestModule(t))

	data, err := Marshal(m)
	require.NoError(t, err)

	out := string(data)
	if !strings.HasPrefix(out, "digest: ") {
		t.Errorf("manifest should start with the digest:\n%s", out)
	}
	assert.Contains(t, out, "  - name: KhrSurfaceFn\n    level: extension\n")
	assert.Contains(t, out, "entry_points:")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("tables: {not: [a list"))
	assert.Error(t, err)
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want string
	}{
		{ir.Void{}, "void"},
		{ir.Primitive{Kind: ir.Uint32}, "uint32"},
		{ir.Named{Name: "Device"}, "Device"},
		{ir.Pointer{Elem: ir.Primitive{Kind: ir.Char}, Const: true}, "*const char"},
		{ir.Pointer{Elem: ir.Void{}}, "*void"},
		{ir.Array{Elem: ir.Primitive{Kind: ir.Uint8}, Len: "16"}, "[16]uint8"},
	}
	for _, tt := range tests {
		if got := TypeString(tt.typ); got != tt.want {
			t.Errorf("TypeString(%#v) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
