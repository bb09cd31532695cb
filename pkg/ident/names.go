package ident

import (
	"fmt"
	"strings"
	"unicode"
)

// namespaceLen is the length of the prefix carried by registry type and command names.
const namespaceLen = 2

// constNamespace prefixes registry constant names.
const constNamespace = "VK_"

// vendorTags are tested in order; the first tag the enumeration name ends
// with is stripped from both the enumeration and the constant name.
var vendorTags = []string{"AMD", "NN", "KHR", "NV", "EXT", "NVX", "KHX"}

// TrimNamespace removes the fixed two-character namespace prefix
// ("Vk", "vk") from a type or command name.
func TrimNamespace(name string) string {
	if len(name) < namespaceLen {
		return name
	}
	return name[namespaceLen:]
}

// TrimConstNamespace removes the "VK_" prefix from a constant name.
func TrimConstNamespace(name string) string {
	return strings.TrimPrefix(name, constNamespace)
}

// FlagsName renames a "FlagBits" type name to its "Flags" spelling.
func FlagsName(name string) string {
	return strings.ReplaceAll(name, "FlagBits", "Flags")
}

// TypeName maps a registry type name to its binding type name. Names
// without the "Vk" prefix are kept as they are.
func TypeName(name string) string {
	if strings.HasPrefix(name, "Vk") {
		name = name[namespaceLen:]
	}
	return FlagsName(name)
}

// FieldName returns the snake_case name for a member or parameter. A missing
// name becomes "field" and "type" becomes "ty".
func FieldName(name string) string {
	switch name {
	case "":
		name = "field"
	case "type":
		name = "ty"
	}
	return SnakeCase(name)
}

// CommandName returns the snake_case slot name of a command:
// "vkCreateInstance" -> "create_instance".
func CommandName(name string) string {
	return SnakeCase(TrimNamespace(name))
}

// VariantName computes the variant identifier of constName inside the
// enumeration typeName, where typeName has already lost its namespace
// ("Result", "PresentModeKHR").
//
// Vendor tags are removed with a plain substring replace, so a tag that also
// occurs inside the base name is removed there as well.
func VariantName(typeName, constName string) string {
	enumName, variant := typeName, constName
	for _, tag := range vendorTags {
		if strings.HasSuffix(typeName, tag) {
			enumName = strings.ReplaceAll(typeName, tag, "")
			variant = strings.ReplaceAll(constName, tag, "")
			break
		}
	}

	camel := TrimNamespace(CamelCase(variant))
	name := strings.ReplaceAll(camel, CamelCase(enumName), "")
	if name == "" {
		return camel
	}
	if unicode.IsDigit(rune(name[0])) {
		return "Type" + name
	}
	return name
}

// Namer hands out identifiers unique within one scope, appending "_N" to
// repeated candidates.
type Namer struct {
	used    map[string]struct{}
	counter int
}

// NewNamer creates an empty naming scope.
func NewNamer() *Namer {
	return &Namer{used: make(map[string]struct{})}
}

// Call returns base if unused, otherwise the first free "base_N".
func (n *Namer) Call(base string) string {
	if _, taken := n.used[base]; !taken {
		n.used[base] = struct{}{}
		return base
	}
	for {
		n.counter++
		candidate := fmt.Sprintf("%s_%d", base, n.counter)
		if _, taken := n.used[candidate]; !taken {
			n.used[candidate] = struct{}{}
			return candidate
		}
	}
}
