// Package manifest summarizes a generated module as YAML.
//
// A manifest lists every declaration the generator produced, keyed by the
// registry digest, so that two runs can be compared without diffing Go
// source.
package manifest

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vkbind/vkbind-go/pkg/ir"
)

// Manifest is the YAML summary of one module.
type Manifest struct {
	Digest    string     `yaml:"digest"`
	Tables    []Table    `yaml:"tables,omitempty"`
	Handles   []Handle   `yaml:"handles,omitempty"`
	Typedefs  []Typedef  `yaml:"typedefs,omitempty"`
	FuncPtrs  []string   `yaml:"funcptrs,omitempty"`
	Structs   []Struct   `yaml:"structs,omitempty"`
	Enums     []Enum     `yaml:"enums,omitempty"`
	Bitflags  []Bitflags `yaml:"bitflags,omitempty"`
	Constants []Constant `yaml:"constants,omitempty"`
}

// Table summarizes a function table.
type Table struct {
	Name        string   `yaml:"name"`
	Level       string   `yaml:"level"`
	Origin      string   `yaml:"origin"`
	EntryPoints []string `yaml:"entry_points,omitempty"`
}

// Handle summarizes a handle type.
type Handle struct {
	Name         string `yaml:"name"`
	Dispatchable bool   `yaml:"dispatchable"`
}

// Typedef summarizes a type alias.
type Typedef struct {
	Name string `yaml:"name"`
	Base string `yaml:"base"`
}

// Struct summarizes a struct or union.
type Struct struct {
	Name   string   `yaml:"name"`
	Union  bool     `yaml:"union,omitempty"`
	Size   int64    `yaml:"size,omitempty"`
	Fields []string `yaml:"fields,omitempty"`
}

// Enum summarizes a plain enumeration.
type Enum struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants,omitempty"`
}

// Bitflags summarizes a bit-flag type. All is written in hex.
type Bitflags struct {
	Name   string   `yaml:"name"`
	All    string   `yaml:"all"`
	Values []string `yaml:"values,omitempty"`
}

// Constant summarizes a constant with its value as written in the registry.
type Constant struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// Derive builds the manifest of a module. Entries keep module order.
func Derive(mod *ir.Module) *Manifest {
	m := &Manifest{Digest: mod.Digest}

	for _, u := range mod.Units {
		switch d := u.Decl.(type) {
		case *ir.FnTable:
			t := Table{Name: d.Name, Level: string(d.Level), Origin: d.Origin}
			for _, s := range d.Slots {
				t.EntryPoints = append(t.EntryPoints, s.EntryPoint)
			}
			m.Tables = append(m.Tables, t)

		case *ir.Handle:
			m.Handles = append(m.Handles, Handle{Name: d.Name, Dispatchable: d.Dispatchable})

		case *ir.Typedef:
			m.Typedefs = append(m.Typedefs, Typedef{Name: d.Name, Base: TypeString(d.Base)})

		case *ir.FuncPtr:
			m.FuncPtrs = append(m.FuncPtrs, d.Name)

		case *ir.Struct:
			m.Structs = append(m.Structs, Struct{Name: d.Name, Fields: fieldNames(d.Fields)})

		case *ir.Union:
			m.Structs = append(m.Structs, Struct{Name: d.Name, Union: true, Size: d.Size, Fields: fieldNames(d.Fields)})

		case *ir.Enum:
			e := Enum{Name: d.Name}
			for _, v := range d.Variants {
				e.Variants = append(e.Variants, v.Name)
			}
			m.Enums = append(m.Enums, e)

		case *ir.Bitflags:
			b := Bitflags{Name: d.Name, All: "0x" + strconv.FormatUint(d.All, 16)}
			for _, v := range d.Values {
				b.Values = append(b.Values, v.Name)
			}
			m.Bitflags = append(m.Bitflags, b)

		case *ir.Constant:
			m.Constants = append(m.Constants, Constant{
				Name:  d.Name,
				Type:  d.Value.Scalar.String(),
				Value: valueString(d.Value),
			})
		}
	}
	return m
}

func fieldNames(fs []ir.Field) []string {
	var out []string
	for _, f := range fs {
		out = append(out, f.Name+" "+TypeString(f.Type))
	}
	return out
}

// TypeString renders a type expression in a compact C-like notation:
// "*const char", "[16]uint8", "Device".
func TypeString(t ir.Type) string {
	switch t := t.(type) {
	case ir.Void:
		return "void"
	case ir.Primitive:
		return t.Kind.String()
	case ir.Named:
		return t.Name
	case ir.Pointer:
		if t.Const {
			return "*const " + TypeString(t.Elem)
		}
		return "*" + TypeString(t.Elem)
	case ir.Array:
		return "[" + t.Len + "]" + TypeString(t.Elem)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func valueString(v ir.ConstValue) string {
	switch v.Form {
	case ir.FormNumber:
		return strconv.FormatInt(v.Number, 10)
	case ir.FormHex:
		return "0x" + v.Hex
	case ir.FormBitPos:
		return fmt.Sprintf("1 << %d", v.BitPos)
	case ir.FormExpr:
		return v.Expr.Text
	case ir.FormText:
		return v.Text
	default:
		return ""
	}
}

// Marshal encodes a manifest as YAML with two-space indentation.
func Marshal(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes a manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
