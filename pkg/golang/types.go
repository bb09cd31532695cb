package golang

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vkbind/vkbind-go/pkg/ir"
)

var primTypes = map[ir.PrimKind]string{
	ir.Char:    "byte",
	ir.WChar:   "int32",
	ir.Int8:    "int8",
	ir.Uint8:   "uint8",
	ir.Int16:   "int16",
	ir.Uint16:  "uint16",
	ir.Int32:   "int32",
	ir.Uint32:  "uint32",
	ir.Int64:   "int64",
	ir.Uint64:  "uint64",
	ir.Float32: "float32",
	ir.Float64: "float64",
	ir.USize:   "uintptr",
}

// goType renders a type expression. Untyped pointers become unsafe.Pointer.
func goType(t ir.Type) (string, error) {
	switch t := t.(type) {
	case ir.Primitive:
		if s, ok := primTypes[t.Kind]; ok {
			return s, nil
		}
		return "", fmt.Errorf("unknown primitive %s", t.Kind)
	case ir.Named:
		return t.Name, nil
	case ir.Pointer:
		if ir.IsVoid(t.Elem) {
			return "unsafe.Pointer", nil
		}
		elem, err := goType(t.Elem)
		if err != nil {
			return "", err
		}
		return "*" + elem, nil
	case ir.Array:
		elem, err := goType(t.Elem)
		if err != nil {
			return "", err
		}
		return "[" + t.Len + "]" + elem, nil
	case ir.Void:
		return "", fmt.Errorf("void used as a value type")
	default:
		return "", fmt.Errorf("unknown type %T", t)
	}
}

// goReturn renders a result type. Void renders as nothing.
func goReturn(t ir.Type) (string, error) {
	if ir.IsVoid(t) {
		return "", nil
	}
	return goType(t)
}

const puregoImport = "github.com/ebitengine/purego"

// importSet collects the imports needed by a group of declarations.
type importSet map[string]bool

func (s importSet) add(d ir.Decl) {
	switch d := d.(type) {
	case *ir.Prelude:
		s["fmt"] = true
		s["strings"] = true
	case *ir.Handle:
		if !d.Dispatchable {
			s["cmp"] = true
			s["fmt"] = true
		}
	case *ir.Typedef:
		s.addType(d.Base)
	case *ir.Struct:
		for _, f := range d.Fields {
			s.addType(f.Type)
		}
	case *ir.Union:
		s["unsafe"] = true
	case *ir.Enum, *ir.Bitflags:
		s["fmt"] = true
	case *ir.FnTable:
		if len(d.Slots) > 0 {
			s[puregoImport] = true
		}
		for _, slot := range d.Slots {
			for _, p := range slot.Params {
				s.addType(p.Type)
			}
			s.addType(slot.Return)
		}
	}
}

func (s importSet) addType(t ir.Type) {
	switch t := t.(type) {
	case ir.Pointer:
		if ir.IsVoid(t.Elem) {
			s["unsafe"] = true
			return
		}
		s.addType(t.Elem)
	case ir.Array:
		s.addType(t.Elem)
	}
}

// block renders the import declaration, standard library first.
func (s importSet) block() string {
	if len(s) == 0 {
		return ""
	}
	var std, ext []string
	for path := range s {
		if strings.Contains(path, ".") {
			ext = append(ext, path)
		} else {
			std = append(std, path)
		}
	}
	sort.Strings(std)
	sort.Strings(ext)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	if len(std) > 0 && len(ext) > 0 {
		b.WriteString("\n")
	}
	for _, p := range ext {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	b.WriteString(")\n")
	return b.String()
}
