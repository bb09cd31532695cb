package gen

import (
	"fmt"

	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
	"github.com/vkbind/vkbind-go/pkg/version"
)

// FeatureTables is the output of assembling one feature.
type FeatureTables struct {
	Version version.FeatureVersion

	// Tables holds the instance table then the device table. Empty buckets
	// produce no table.
	Tables []*ir.FnTable

	// Dropped lists command references missing from the index.
	Dropped []string
}

// AssembleFeature resolves the commands of a core version and partitions
// them into instance and device tables.
func AssembleFeature(f registry.Feature, idx *CommandIndex) (FeatureTables, error) {
	v, err := version.Parse(f.Version)
	if err != nil {
		return FeatureTables{}, fmt.Errorf("feature %s: %w", f.Name, err)
	}

	out := FeatureTables{Version: v}
	var instance, device []ClassifiedCommand

	for _, name := range f.Commands {
		c, ok := idx.Lookup(name)
		if !ok {
			out.Dropped = append(out.Dropped, name)
			continue
		}
		if c.Level == LevelDevice {
			device = append(device, c)
		} else {
			instance = append(instance, c)
		}
	}

	buckets := []struct {
		name  string
		level ir.TableLevel
		cmds  []ClassifiedCommand
	}{
		{v.InstanceTable(), ir.TableInstance, instance},
		{v.DeviceTable(), ir.TableDevice, device},
	}
	for _, b := range buckets {
		if len(b.cmds) == 0 {
			continue
		}
		tbl, err := GenerateFnTable(b.name, b.level, v.String(), b.cmds)
		if err != nil {
			return FeatureTables{}, fmt.Errorf("feature %s: %w", f.Name, err)
		}
		out.Tables = append(out.Tables, tbl)
	}
	return out, nil
}

// ExtensionTable is the output of assembling one extension.
type ExtensionTable struct {
	// Table is nil when none of the extension's commands resolved.
	Table *ir.FnTable

	Constants []*ir.Constant
	Dropped   []string
}

// ExtensionTableName returns the table name of an extension:
// "VK_KHR_surface" becomes "KhrSurfaceFn".
func ExtensionTableName(name string) string {
	return ident.TrimNamespace(ident.CamelCase(name) + "Fn")
}

// AssembleExtension resolves the commands of an extension into a single
// table and generates its constants.
func AssembleExtension(ext registry.Extension, idx *CommandIndex) (ExtensionTable, error) {
	var out ExtensionTable
	var cmds []ClassifiedCommand

	for _, name := range ext.Commands {
		c, ok := idx.Lookup(name)
		if !ok {
			out.Dropped = append(out.Dropped, name)
			continue
		}
		cmds = append(cmds, c)
	}

	if len(cmds) > 0 {
		tbl, err := GenerateFnTable(ExtensionTableName(ext.Name), ir.TableExtension, ext.Name, cmds)
		if err != nil {
			return ExtensionTable{}, fmt.Errorf("extension %s: %w", ext.Name, err)
		}
		out.Table = tbl
	}

	for _, c := range ext.Constants {
		k, err := GenerateConstant(c)
		if err != nil {
			return ExtensionTable{}, fmt.Errorf("extension %s: %w", ext.Name, err)
		}
		out.Constants = append(out.Constants, k)
	}
	return out, nil
}
