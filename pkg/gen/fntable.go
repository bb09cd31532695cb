package gen

import (
	"fmt"

	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/typemap"
)

// GenerateFnTable generates a function table with one slot per command.
// Repeated commands keep their first slot.
func GenerateFnTable(name string, level ir.TableLevel, origin string, cmds []ClassifiedCommand) (*ir.FnTable, error) {
	tbl := &ir.FnTable{Name: name, Level: level, Origin: origin}
	seen := make(map[string]bool, len(cmds))

	for _, c := range cmds {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true

		slot, err := generateSlot(c)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		tbl.Slots = append(tbl.Slots, slot)
	}
	return tbl, nil
}

func generateSlot(c ClassifiedCommand) (ir.Slot, error) {
	params, err := typemap.Fields(c.Params)
	if err != nil {
		return ir.Slot{}, fmt.Errorf("command %s: %w", c.Name, err)
	}
	ret, err := typemap.Field(c.Return)
	if err != nil {
		return ir.Slot{}, fmt.Errorf("command %s: %w", c.Name, err)
	}
	return ir.Slot{
		Name:       ident.CommandName(c.Name),
		EntryPoint: c.Name,
		Params:     params,
		Return:     ret,
	}, nil
}
