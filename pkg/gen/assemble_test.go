package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		cmd   registry.Command
		level Level
	}{
		{"no params", registry.Command{Name: "vkEnumerateInstanceVersionless"}, LevelInstance},
		{"device", registry.Command{Name: "vkDestroyDevice", Params: []registry.Field{{BaseType: "VkDevice"}}}, LevelDevice},
		{"queue", registry.Command{Name: "vkQueueWaitIdle", Params: []registry.Field{{BaseType: "VkQueue"}}}, LevelDevice},
		{"command buffer", registry.Command{Name: "vkCmdDraw", Params: []registry.Field{{BaseType: "VkCommandBuffer"}}}, LevelDevice},
		{"instance", registry.Command{Name: "vkDestroyInstance", Params: []registry.Field{{BaseType: "VkInstance"}}}, LevelInstance},
		{"create info", registry.Command{Name: "vkCreateInstance", Params: []registry.Field{{BaseType: "VkInstanceCreateInfo", Reference: registry.RefPointer}}}, LevelInstance},
		{"device second", registry.Command{Name: "vkOdd", Params: []registry.Field{{BaseType: "VkPhysicalDevice"}, {BaseType: "VkDevice"}}}, LevelInstance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.cmd); got != tt.level {
				t.Errorf("Classify = %s, want %s", got, tt.level)
			}
		})
	}
}

func TestCommandIndexFirstWins(t *testing.T) {
	idx := NewCommandIndex([]registry.Command{
		{Name: "vkThing", Params: []registry.Field{{BaseType: "VkDevice"}}},
		{Name: "vkThing"},
	})

	assert.Equal(t, 1, idx.Len())
	c, ok := idx.Lookup("vkThing")
	require.True(t, ok)
	assert.Equal(t, LevelDevice, c.Level)

	_, ok = idx.Lookup("vkMissing")
	assert.False(t, ok)
}

func TestGenerateFnTable(t *testing.T) {
	reg := loadTestRegistry(t)
	idx := NewCommandIndex(reg.Commands)

	var cmds []ClassifiedCommand
	for _, name := range []string{"vkDestroyDevice", "vkCmdDraw", "vkDestroyDevice"} {
		c, ok := idx.Lookup(name)
		require.True(t, ok, name)
		cmds = append(cmds, c)
	}

	tbl, err := GenerateFnTable("DeviceFnV1_0", ir.TableDevice, "1.0", cmds)
	require.NoError(t, err)
	require.Len(t, tbl.Slots, 2, "duplicate reference collapses")

	destroy := tbl.Slots[0]
	assert.Equal(t, "destroy_device", destroy.Name)
	assert.Equal(t, "vkDestroyDevice", destroy.EntryPoint)
	assert.Equal(t, ir.Void{}, destroy.Return)
	assert.Equal(t, []ir.Field{
		{Name: "device", Type: ir.Named{Name: "Device"}},
		{Name: "p_allocator", Type: ir.Pointer{Elem: ir.Named{Name: "AllocationCallbacks"}}},
	}, destroy.Params)

	assert.Equal(t, "cmd_draw", tbl.Slots[1].Name)
	assert.Len(t, tbl.Slots[1].Params, 5)
}

func TestGenerateFnTableEmpty(t *testing.T) {
	tbl, err := GenerateFnTable("InstanceFnV9_9", ir.TableInstance, "9.9", nil)
	require.NoError(t, err)
	assert.Empty(t, tbl.Slots)
}

func TestAssembleFeature(t *testing.T) {
	reg := loadTestRegistry(t)
	idx := NewCommandIndex(reg.Commands)

	out, err := AssembleFeature(reg.Features[0], idx)
	require.NoError(t, err)

	assert.Equal(t, []string{"vkCmdDispatchNotLoaded"}, out.Dropped)
	require.Len(t, out.Tables, 2)

	inst, dev := out.Tables[0], out.Tables[1]
	assert.Equal(t, "InstanceFnV1_0", inst.Name)
	assert.Equal(t, ir.TableInstance, inst.Level)
	assert.Equal(t, "1.0", inst.Origin)
	assert.Equal(t, []string{"vkCreateInstance", "vkDestroyInstance", "vkEnumeratePhysicalDevices", "vkGetInstanceProcAddr"}, entryPoints(inst))

	assert.Equal(t, "DeviceFnV1_0", dev.Name)
	assert.Equal(t, ir.TableDevice, dev.Level)
	assert.Equal(t, []string{"vkDestroyDevice", "vkGetDeviceQueue", "vkQueueWaitIdle", "vkCmdDraw"}, entryPoints(dev))
}

func TestAssembleFeatureSingleBucket(t *testing.T) {
	reg := loadTestRegistry(t)
	out, err := AssembleFeature(reg.Features[1], NewCommandIndex(reg.Commands))
	require.NoError(t, err)
	require.Len(t, out.Tables, 1)
	assert.Equal(t, "InstanceFnV1_1", out.Tables[0].Name)
	assert.Empty(t, out.Dropped)
}

func TestAssembleFeatureBadVersion(t *testing.T) {
	_, err := AssembleFeature(registry.Feature{Name: "VK_VERSION_X", Version: "x"}, NewCommandIndex(nil))
	assert.Error(t, err)
}

func TestAssembleExtension(t *testing.T) {
	reg := loadTestRegistry(t)
	idx := NewCommandIndex(reg.Commands)

	out, err := AssembleExtension(reg.Extensions[0], idx)
	require.NoError(t, err)
	require.NotNil(t, out.Table)
	assert.Equal(t, "KhrSurfaceFn", out.Table.Name)
	assert.Equal(t, ir.TableExtension, out.Table.Level)
	assert.Equal(t, "VK_KHR_surface", out.Table.Origin)
	assert.Equal(t, []string{"vkDestroySurfaceKHR", "vkGetPhysicalDeviceSurfaceSupportKHR"}, entryPoints(out.Table))

	require.Len(t, out.Constants, 2)
	assert.Equal(t, "KHR_SURFACE_SPEC_VERSION", out.Constants[0].Name)
	assert.Equal(t, "KHR_SURFACE_EXTENSION_NAME", out.Constants[1].Name)
	assert.Equal(t, ir.FormText, out.Constants[1].Value.Form)
}

func TestAssembleExtensionEmpty(t *testing.T) {
	reg := loadTestRegistry(t)
	out, err := AssembleExtension(reg.Extensions[2], NewCommandIndex(reg.Commands))
	require.NoError(t, err)
	assert.Nil(t, out.Table)
	assert.Equal(t, []string{"vkNotInThisRegistryEXT"}, out.Dropped)
}

func TestExtensionTableName(t *testing.T) {
	tests := map[string]string{
		"VK_KHR_surface":              "KhrSurfaceFn",
		"VK_KHR_swapchain":            "KhrSwapchainFn",
		"VK_EXT_debug_report":         "ExtDebugReportFn",
		"VK_NV_external_memory_win32": "NvExternalMemoryWin32Fn",
	}
	for in, want := range tests {
		if got := ExtensionTableName(in); got != want {
			t.Errorf("ExtensionTableName(%q) = %q, want %q", in, got, want)
		}
	}
}

func entryPoints(tbl *ir.FnTable) []string {
	out := make([]string, len(tbl.Slots))
	for i, s := range tbl.Slots {
		out[i] = s.EntryPoint
	}
	return out
}
