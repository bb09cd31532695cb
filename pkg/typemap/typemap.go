// Package typemap maps registry base types and field modifiers onto
// declaration-tree types.
package typemap

import (
	"errors"
	"fmt"

	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

// ErrMissingArraySize is returned for a static array with neither an
// explicit size nor a size constant.
var ErrMissingArraySize = errors.New("static array without size")

// foreign maps platform type names to portable types.
var foreign = map[string]ir.Type{
	"HANDLE":  ir.Pointer{Elem: ir.Void{}, Const: true},
	"LPCWSTR": ir.Pointer{Elem: ir.Primitive{Kind: ir.WChar}, Const: true},
	"DWORD":   ir.Primitive{Kind: ir.Uint32},
	"int":     ir.Primitive{Kind: ir.Int32},
	"void":    ir.Void{},
	"char":    ir.Primitive{Kind: ir.Char},
	"float":   ir.Primitive{Kind: ir.Float32},
	"long":    ir.Primitive{Kind: ir.Uint64},

	"int8_t":   ir.Primitive{Kind: ir.Int8},
	"uint8_t":  ir.Primitive{Kind: ir.Uint8},
	"int16_t":  ir.Primitive{Kind: ir.Int16},
	"uint16_t": ir.Primitive{Kind: ir.Uint16},
	"int32_t":  ir.Primitive{Kind: ir.Int32},
	"uint32_t": ir.Primitive{Kind: ir.Uint32},
	"int64_t":  ir.Primitive{Kind: ir.Int64},
	"uint64_t": ir.Primitive{Kind: ir.Uint64},
	"size_t":   ir.Primitive{Kind: ir.USize},
	"double":   ir.Primitive{Kind: ir.Float64},
}

// Base maps a base type name. Platform names come from a fixed table; any
// other name loses its "Vk" prefix and has "FlagBits" renamed to "Flags".
func Base(name string) ir.Type {
	if t, ok := foreign[name]; ok {
		return t
	}
	return ir.Named{Name: ident.TypeName(name)}
}

// Field maps a field's base type together with its reference and array
// modifiers. Each reference kind adds exactly one pointer level; only
// pointer-to-const-pointer marks it const. A static array replaces the
// pointer form with a fixed-size array of the base type.
func Field(f registry.Field) (ir.Type, error) {
	base := Base(f.BaseType)

	if f.Array == registry.ArrayStatic {
		switch {
		case f.Size != "":
			return ir.Array{Elem: base, Len: f.Size}, nil
		case f.SizeEnumRef != "":
			return ir.Array{Elem: base, Len: ident.TrimConstNamespace(f.SizeEnumRef)}, nil
		default:
			return nil, fmt.Errorf("%w: field %s", ErrMissingArraySize, f.Name)
		}
	}

	switch f.Reference {
	case registry.RefPointer, registry.RefPointerToPointer:
		return ir.Pointer{Elem: base}, nil
	case registry.RefPointerToConstPointer:
		return ir.Pointer{Elem: base, Const: true}, nil
	default:
		return base, nil
	}
}

// Fields maps a member or parameter list, normalizing names.
func Fields(fs []registry.Field) ([]ir.Field, error) {
	out := make([]ir.Field, 0, len(fs))
	for _, f := range fs {
		t, err := Field(f)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Field{Name: ident.FieldName(f.Name), Type: t})
	}
	return out, nil
}
