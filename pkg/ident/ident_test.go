package ident

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"VkImageType", []string{"Vk", "Image", "Type"}},
		{"VK_IMAGE_TYPE_1D", []string{"VK", "IMAGE", "TYPE", "1D"}},
		{"pCreateInfo", []string{"p", "Create", "Info"}},
		{"VkPhysicalDeviceIDProperties", []string{"Vk", "Physical", "Device", "ID", "Properties"}},
		{"pipelineCacheUUID", []string{"pipeline", "Cache", "UUID"}},
		{"VkExtent2D", []string{"Vk", "Extent2", "D"}},
		{"__leading__", []string{"leading"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Words(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCaseConversions(t *testing.T) {
	tests := []struct {
		in    string
		camel string
		lower string
		snake string
	}{
		{"VK_KHR_surface", "VkKhrSurface", "vkKhrSurface", "vk_khr_surface"},
		{"vkCreateInstance", "VkCreateInstance", "vkCreateInstance", "vk_create_instance"},
		{"queue_family_index", "QueueFamilyIndex", "queueFamilyIndex", "queue_family_index"},
		{"VK_IMAGE_TYPE_2D", "VkImageType2d", "vkImageType2d", "vk_image_type_2d"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CamelCase(tt.in); got != tt.camel {
				t.Errorf("CamelCase = %q, want %q", got, tt.camel)
			}
			if got := LowerCamelCase(tt.in); got != tt.lower {
				t.Errorf("LowerCamelCase = %q, want %q", got, tt.lower)
			}
			if got := SnakeCase(tt.in); got != tt.snake {
				t.Errorf("SnakeCase = %q, want %q", got, tt.snake)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := map[string]string{
		"VkInstance":         "Instance",
		"VkQueueFlagBits":    "QueueFlags",
		"VkQueueFlags":       "QueueFlags",
		"PFN_vkVoidFunction": "PFN_vkVoidFunction",
		"uint32_t":           "uint32_t",
	}
	for in, want := range tests {
		if got := TypeName(in); got != want {
			t.Errorf("TypeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTrimNamespace(t *testing.T) {
	if got := TrimNamespace("vkCmdDraw"); got != "CmdDraw" {
		t.Errorf("TrimNamespace = %q, want CmdDraw", got)
	}
	if got := TrimNamespace("V"); got != "V" {
		t.Errorf("TrimNamespace(short) = %q, want V", got)
	}
	if got := TrimConstNamespace("VK_UUID_SIZE"); got != "UUID_SIZE" {
		t.Errorf("TrimConstNamespace = %q, want UUID_SIZE", got)
	}
	if got := TrimConstNamespace("UUID_SIZE"); got != "UUID_SIZE" {
		t.Errorf("TrimConstNamespace(no prefix) = %q, want UUID_SIZE", got)
	}
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"type":              "ty",
		"":                  "field",
		"pCreateInfo":       "p_create_info",
		"sType":             "s_type",
		"queueFamilyIndex":  "queue_family_index",
		"pipelineCacheUUID": "pipeline_cache_uuid",
	}
	for in, want := range tests {
		if got := FieldName(in); got != want {
			t.Errorf("FieldName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCommandName(t *testing.T) {
	if got := CommandName("vkGetPhysicalDeviceSurfaceSupportKHR"); got != "get_physical_device_surface_support_khr" {
		t.Errorf("CommandName = %q", got)
	}
}

func TestVariantName(t *testing.T) {
	tests := []struct {
		enum     string
		constant string
		want     string
	}{
		{"Result", "VK_SUCCESS", "Success"},
		{"Result", "VK_NOT_READY", "NotReady"},
		{"Result", "VK_ERROR_SURFACE_LOST_KHR", "ErrorSurfaceLostKhr"},
		{"ImageType", "VK_IMAGE_TYPE_1D", "Type1d"},
		{"PresentModeKHR", "VK_PRESENT_MODE_MAILBOX_KHR", "Mailbox"},
		{"StructureType", "VK_STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR", "SwapchainCreateInfoKhr"},
		{"DescriptorType", "VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER", "UniformBuffer"},
		// The tag is removed wherever it occurs, not only as a suffix.
		{"NvTestNV", "VK_NV_TEST_NVIDIA_NV", "TestIdia"},
		// A constant that is nothing but the enumeration name keeps its name.
		{"Filter", "VK_FILTER", "Filter"},
	}

	for _, tt := range tests {
		t.Run(tt.constant, func(t *testing.T) {
			if got := VariantName(tt.enum, tt.constant); got != tt.want {
				t.Errorf("VariantName(%q, %q) = %q, want %q", tt.enum, tt.constant, got, tt.want)
			}
		})
	}
}

func TestNamer(t *testing.T) {
	n := NewNamer()
	got := []string{n.Call("Success"), n.Call("Success"), n.Call("Other"), n.Call("Success")}
	want := []string{"Success", "Success_1", "Other", "Success_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Namer = %q, want %q", got, want)
	}
}

func TestGoIdent(t *testing.T) {
	if got := GoIdent("type"); got != "type_" {
		t.Errorf("GoIdent(type) = %q", got)
	}
	if got := GoIdent("device"); got != "device" {
		t.Errorf("GoIdent(device) = %q", got)
	}
	if got := GoParam("p_create_info"); got != "pCreateInfo" {
		t.Errorf("GoParam = %q", got)
	}
	if got := GoParam("ty"); got != "ty" {
		t.Errorf("GoParam(ty) = %q", got)
	}
	if got := GoField("p_next"); got != "PNext" {
		t.Errorf("GoField = %q", got)
	}
	if got := GoParam("range"); got != "range_" {
		t.Errorf("GoParam(range) = %q", got)
	}
}
