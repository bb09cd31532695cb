package registry

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition is returned when a registry document contains a node
// that does not map onto the registry model.
var ErrInvalidDefinition = errors.New("invalid registry definition")

// RawRegistry is the serialized form of a Registry, shared by the YAML
// document format and CBOR snapshots.
type RawRegistry struct {
	Commands    []RawCommand    `yaml:"commands" cbor:"1,keyasint,omitempty"`
	Features    []RawFeature    `yaml:"features" cbor:"2,keyasint,omitempty"`
	Extensions  []RawExtension  `yaml:"extensions" cbor:"3,keyasint,omitempty"`
	Definitions []RawDefinition `yaml:"definitions" cbor:"4,keyasint,omitempty"`
	Enums       []RawEnum       `yaml:"enums" cbor:"5,keyasint,omitempty"`
	Constants   []RawConstant   `yaml:"constants" cbor:"6,keyasint,omitempty"`
}

// RawCommand represents a command definition.
type RawCommand struct {
	Name   string     `yaml:"name" cbor:"1,keyasint"`
	Params []RawField `yaml:"params" cbor:"2,keyasint,omitempty"`
	Return RawField   `yaml:"return" cbor:"3,keyasint"`
}

// RawField represents a member, parameter or return type.
type RawField struct {
	Name     string `yaml:"name" cbor:"1,keyasint,omitempty"`
	Type     string `yaml:"type" cbor:"2,keyasint"`
	Ref      string `yaml:"ref" cbor:"3,keyasint,omitempty"`   // "pointer", "pointer-to-pointer", "pointer-to-const-pointer"
	Array    string `yaml:"array" cbor:"4,keyasint,omitempty"` // "static", "dynamic"
	Size     string `yaml:"size" cbor:"5,keyasint,omitempty"`
	SizeEnum string `yaml:"size_enum" cbor:"6,keyasint,omitempty"`
}

// RawFeature represents a core API revision.
type RawFeature struct {
	Name     string   `yaml:"name" cbor:"1,keyasint"`
	Version  string   `yaml:"version" cbor:"2,keyasint"`
	Commands []string `yaml:"commands" cbor:"3,keyasint,omitempty"`
}

// RawExtension represents an optional API extension.
type RawExtension struct {
	Name      string        `yaml:"name" cbor:"1,keyasint"`
	Number    int           `yaml:"number" cbor:"2,keyasint,omitempty"`
	Commands  []string      `yaml:"commands" cbor:"3,keyasint,omitempty"`
	Constants []RawConstant `yaml:"constants" cbor:"4,keyasint,omitempty"`
}

// RawEnum represents an enumeration.
type RawEnum struct {
	Name      string        `yaml:"name" cbor:"1,keyasint"`
	Constants []RawConstant `yaml:"values" cbor:"2,keyasint,omitempty"`
}

// RawConstant represents a constant with its value forms.
type RawConstant struct {
	Name     string  `yaml:"name" cbor:"1,keyasint"`
	Number   *int64  `yaml:"number" cbor:"2,keyasint,omitempty"`
	Hex      *string `yaml:"hex" cbor:"3,keyasint,omitempty"`
	BitPos   *uint32 `yaml:"bitpos" cbor:"4,keyasint,omitempty"`
	Expr     *string `yaml:"expr" cbor:"5,keyasint,omitempty"`
	Text     *string `yaml:"text" cbor:"6,keyasint,omitempty"`
	Notation string  `yaml:"notation" cbor:"7,keyasint,omitempty"`
}

// RawDefinition holds exactly one definition variant.
type RawDefinition struct {
	Typedef *RawTypedef `yaml:"typedef,omitempty" cbor:"1,keyasint,omitempty"`
	Struct  *RawStruct  `yaml:"struct,omitempty" cbor:"2,keyasint,omitempty"`
	Bitmask *RawBitmask `yaml:"bitmask,omitempty" cbor:"3,keyasint,omitempty"`
	Handle  *RawHandle  `yaml:"handle,omitempty" cbor:"4,keyasint,omitempty"`
	FuncPtr *RawFuncPtr `yaml:"funcptr,omitempty" cbor:"5,keyasint,omitempty"`
	Union   *RawStruct  `yaml:"union,omitempty" cbor:"6,keyasint,omitempty"`
}

// RawTypedef represents a type alias.
type RawTypedef struct {
	Name string `yaml:"name" cbor:"1,keyasint"`
	Type string `yaml:"type" cbor:"2,keyasint"`
}

// RawStruct represents a struct or union.
type RawStruct struct {
	Name    string     `yaml:"name" cbor:"1,keyasint"`
	Members []RawField `yaml:"members" cbor:"2,keyasint,omitempty"`
}

// RawBitmask represents a flags type.
type RawBitmask struct {
	Name    string `yaml:"name" cbor:"1,keyasint"`
	EnumRef string `yaml:"enum" cbor:"2,keyasint,omitempty"`
}

// RawHandle represents an opaque handle.
type RawHandle struct {
	Name string `yaml:"name" cbor:"1,keyasint"`
	Kind string `yaml:"kind" cbor:"2,keyasint"` // "dispatchable", "non-dispatchable"
}

// RawFuncPtr represents a function pointer type.
type RawFuncPtr struct {
	Name   string   `yaml:"name" cbor:"1,keyasint"`
	Return RawField `yaml:"return" cbor:"2,keyasint"`
}

// FromRaw converts the serialized form into a Registry.
func FromRaw(raw *RawRegistry) (*Registry, error) {
	reg := &Registry{}

	for _, rc := range raw.Commands {
		cmd, err := commandFromRaw(rc)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", rc.Name, err)
		}
		reg.Commands = append(reg.Commands, cmd)
	}

	for _, rf := range raw.Features {
		reg.Features = append(reg.Features, Feature{
			Name:     rf.Name,
			Version:  rf.Version,
			Commands: rf.Commands,
		})
	}

	for _, re := range raw.Extensions {
		reg.Extensions = append(reg.Extensions, Extension{
			Name:      re.Name,
			Number:    re.Number,
			Commands:  re.Commands,
			Constants: constantsFromRaw(re.Constants),
		})
	}

	for i, rd := range raw.Definitions {
		def, err := definitionFromRaw(rd)
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		reg.Definitions = append(reg.Definitions, def)
	}

	for _, re := range raw.Enums {
		reg.Enums = append(reg.Enums, Enumeration{
			Name:      re.Name,
			Constants: constantsFromRaw(re.Constants),
		})
	}

	reg.Constants = constantsFromRaw(raw.Constants)

	return reg, nil
}

// ToRaw converts a Registry into its serialized form.
func ToRaw(reg *Registry) *RawRegistry {
	raw := &RawRegistry{}

	for _, cmd := range reg.Commands {
		rc := RawCommand{Name: cmd.Name, Return: fieldToRaw(cmd.Return)}
		for _, p := range cmd.Params {
			rc.Params = append(rc.Params, fieldToRaw(p))
		}
		raw.Commands = append(raw.Commands, rc)
	}

	for _, f := range reg.Features {
		raw.Features = append(raw.Features, RawFeature{
			Name:     f.Name,
			Version:  f.Version,
			Commands: f.Commands,
		})
	}

	for _, e := range reg.Extensions {
		raw.Extensions = append(raw.Extensions, RawExtension{
			Name:      e.Name,
			Number:    e.Number,
			Commands:  e.Commands,
			Constants: constantsToRaw(e.Constants),
		})
	}

	for _, def := range reg.Definitions {
		raw.Definitions = append(raw.Definitions, definitionToRaw(def))
	}

	for _, e := range reg.Enums {
		raw.Enums = append(raw.Enums, RawEnum{
			Name:      e.Name,
			Constants: constantsToRaw(e.Constants),
		})
	}

	raw.Constants = constantsToRaw(reg.Constants)

	return raw
}

func commandFromRaw(rc RawCommand) (Command, error) {
	cmd := Command{Name: rc.Name}
	for _, rp := range rc.Params {
		p, err := fieldFromRaw(rp)
		if err != nil {
			return Command{}, fmt.Errorf("param %s: %w", rp.Name, err)
		}
		cmd.Params = append(cmd.Params, p)
	}
	ret, err := fieldFromRaw(rc.Return)
	if err != nil {
		return Command{}, fmt.Errorf("return: %w", err)
	}
	if ret.BaseType == "" {
		ret.BaseType = "void"
	}
	cmd.Return = ret
	return cmd, nil
}

func fieldFromRaw(rf RawField) (Field, error) {
	f := Field{
		Name:        rf.Name,
		BaseType:    rf.Type,
		Size:        rf.Size,
		SizeEnumRef: rf.SizeEnum,
	}

	switch rf.Ref {
	case "":
		f.Reference = RefNone
	case "pointer":
		f.Reference = RefPointer
	case "pointer-to-pointer":
		f.Reference = RefPointerToPointer
	case "pointer-to-const-pointer":
		f.Reference = RefPointerToConstPointer
	default:
		return Field{}, fmt.Errorf("%w: unknown reference %q", ErrInvalidDefinition, rf.Ref)
	}

	switch rf.Array {
	case "":
		f.Array = ArrayNone
	case "static":
		f.Array = ArrayStatic
	case "dynamic":
		f.Array = ArrayDynamic
	default:
		return Field{}, fmt.Errorf("%w: unknown array kind %q", ErrInvalidDefinition, rf.Array)
	}

	return f, nil
}

func fieldToRaw(f Field) RawField {
	return RawField{
		Name:     f.Name,
		Type:     f.BaseType,
		Ref:      f.Reference.String(),
		Array:    f.Array.String(),
		Size:     f.Size,
		SizeEnum: f.SizeEnumRef,
	}
}

func fieldsFromRaw(rfs []RawField) ([]Field, error) {
	var out []Field
	for _, rf := range rfs {
		f, err := fieldFromRaw(rf)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", rf.Name, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func fieldsToRaw(fs []Field) []RawField {
	var out []RawField
	for _, f := range fs {
		out = append(out, fieldToRaw(f))
	}
	return out
}

func constantsFromRaw(rcs []RawConstant) []Constant {
	var out []Constant
	for _, rc := range rcs {
		out = append(out, Constant{
			Name:     rc.Name,
			Number:   rc.Number,
			Hex:      rc.Hex,
			BitPos:   rc.BitPos,
			Expr:     rc.Expr,
			Text:     rc.Text,
			Notation: rc.Notation,
		})
	}
	return out
}

func constantsToRaw(cs []Constant) []RawConstant {
	var out []RawConstant
	for _, c := range cs {
		out = append(out, RawConstant{
			Name:     c.Name,
			Number:   c.Number,
			Hex:      c.Hex,
			BitPos:   c.BitPos,
			Expr:     c.Expr,
			Text:     c.Text,
			Notation: c.Notation,
		})
	}
	return out
}

func definitionFromRaw(rd RawDefinition) (Definition, error) {
	var defs []Definition

	if rd.Typedef != nil {
		defs = append(defs, &Typedef{Name: rd.Typedef.Name, BaseType: rd.Typedef.Type})
	}
	if rd.Struct != nil {
		members, err := fieldsFromRaw(rd.Struct.Members)
		if err != nil {
			return nil, fmt.Errorf("struct %s: %w", rd.Struct.Name, err)
		}
		defs = append(defs, &Struct{Name: rd.Struct.Name, Members: members})
	}
	if rd.Bitmask != nil {
		defs = append(defs, &Bitmask{Name: rd.Bitmask.Name, EnumRef: rd.Bitmask.EnumRef})
	}
	if rd.Handle != nil {
		var kind HandleKind
		switch rd.Handle.Kind {
		case "dispatchable", "":
			kind = HandleDispatchable
		case "non-dispatchable":
			kind = HandleNonDispatchable
		default:
			return nil, fmt.Errorf("%w: handle %s: unknown kind %q", ErrInvalidDefinition, rd.Handle.Name, rd.Handle.Kind)
		}
		defs = append(defs, &Handle{Name: rd.Handle.Name, Kind: kind})
	}
	if rd.FuncPtr != nil {
		ret, err := fieldFromRaw(rd.FuncPtr.Return)
		if err != nil {
			return nil, fmt.Errorf("funcptr %s: %w", rd.FuncPtr.Name, err)
		}
		if ret.BaseType == "" {
			ret.BaseType = "void"
		}
		defs = append(defs, &FuncPtr{Name: rd.FuncPtr.Name, Return: ret})
	}
	if rd.Union != nil {
		members, err := fieldsFromRaw(rd.Union.Members)
		if err != nil {
			return nil, fmt.Errorf("union %s: %w", rd.Union.Name, err)
		}
		defs = append(defs, &Union{Name: rd.Union.Name, Members: members})
	}

	if len(defs) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one variant, got %d", ErrInvalidDefinition, len(defs))
	}
	return defs[0], nil
}

func definitionToRaw(def Definition) RawDefinition {
	switch d := def.(type) {
	case *Typedef:
		return RawDefinition{Typedef: &RawTypedef{Name: d.Name, Type: d.BaseType}}
	case *Struct:
		return RawDefinition{Struct: &RawStruct{Name: d.Name, Members: fieldsToRaw(d.Members)}}
	case *Bitmask:
		return RawDefinition{Bitmask: &RawBitmask{Name: d.Name, EnumRef: d.EnumRef}}
	case *Handle:
		return RawDefinition{Handle: &RawHandle{Name: d.Name, Kind: d.Kind.String()}}
	case *FuncPtr:
		return RawDefinition{FuncPtr: &RawFuncPtr{Name: d.Name, Return: fieldToRaw(d.Return)}}
	case *Union:
		return RawDefinition{Union: &RawStruct{Name: d.Name, Members: fieldsToRaw(d.Members)}}
	default:
		return RawDefinition{}
	}
}
