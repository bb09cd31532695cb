package ir

// Kind names the variant of a declaration.
type Kind string

const (
	KindPrelude  Kind = "prelude"
	KindHandle   Kind = "handle"
	KindTypedef  Kind = "typedef"
	KindStruct   Kind = "struct"
	KindUnion    Kind = "union"
	KindFuncPtr  Kind = "funcptr"
	KindEnum     Kind = "enum"
	KindBitflags Kind = "bitflags"
	KindConstant Kind = "constant"
	KindFnTable  Kind = "fntable"
)

// Decl is one generated declaration. The concrete type is one of *Prelude,
// *Handle, *Typedef, *Struct, *Union, *FuncPtr, *Enum, *Bitflags, *Constant
// or *FnTable.
type Decl interface {
	DeclName() string
	Kind() Kind
}

// Prelude declares the loader contract shared by all function tables.
type Prelude struct{}

// Handle is an opaque object reference.
type Handle struct {
	Name         string
	Dispatchable bool
}

// Typedef aliases Base under Name.
type Typedef struct {
	Name string
	Base Type
}

// Field is a named member or parameter. Name is in snake_case.
type Field struct {
	Name string
	Type Type
}

// Struct is a plain record. Field order is the binary layout order.
type Struct struct {
	Name   string
	Fields []Field
}

// Union is a record whose fields share storage. Size and Align describe the
// storage in bytes.
type Union struct {
	Name   string
	Fields []Field
	Size   int64
	Align  int64
}

// FuncPtr is an opaque function pointer type.
type FuncPtr struct {
	Name   string
	Return Type
}

// Variant is one member of a plain enumeration.
type Variant struct {
	Name     string // variant identifier, unique within the enum
	Constant string // registry constant name
	Value    int64

	// Description is the notation text of Result-style enums.
	Description string

	// Alias marks a variant whose value repeats an earlier variant.
	Alias bool
}

// Enum is a closed enumeration.
type Enum struct {
	Name     string
	Variants []Variant

	// Describe marks an enumeration whose variants carry descriptions.
	Describe bool
}

// FlagValue is a named bit-flag value.
type FlagValue struct {
	Name  string
	Value ConstValue
}

// Bitflags is a bit-flag set type together with its named values. All is
// the OR of every non-zero value.
type Bitflags struct {
	Name   string
	All    uint64
	Values []FlagValue
}

// Constant is a named top-level or extension constant.
type Constant struct {
	Name  string
	Value ConstValue
}

// TableLevel classifies a function table by the objects its commands
// dispatch on.
type TableLevel string

const (
	TableInstance  TableLevel = "instance"
	TableDevice    TableLevel = "device"
	TableExtension TableLevel = "extension"
)

// Slot is one dynamic-dispatch entry of a function table.
type Slot struct {
	Name       string // snake_case slot name
	EntryPoint string // source command name used for resolution
	Params     []Field
	Return     Type
}

// FnTable is a dynamic-dispatch table loaded by entry-point name.
type FnTable struct {
	Name   string
	Level  TableLevel
	Origin string // feature version or extension name
	Slots  []Slot
}

func (*Prelude) DeclName() string    { return "" }
func (d *Handle) DeclName() string   { return d.Name }
func (d *Typedef) DeclName() string  { return d.Name }
func (d *Struct) DeclName() string   { return d.Name }
func (d *Union) DeclName() string    { return d.Name }
func (d *FuncPtr) DeclName() string  { return d.Name }
func (d *Enum) DeclName() string     { return d.Name }
func (d *Bitflags) DeclName() string { return d.Name }
func (d *Constant) DeclName() string { return d.Name }
func (d *FnTable) DeclName() string  { return d.Name }

func (*Prelude) Kind() Kind  { return KindPrelude }
func (*Handle) Kind() Kind   { return KindHandle }
func (*Typedef) Kind() Kind  { return KindTypedef }
func (*Struct) Kind() Kind   { return KindStruct }
func (*Union) Kind() Kind    { return KindUnion }
func (*FuncPtr) Kind() Kind  { return KindFuncPtr }
func (*Enum) Kind() Kind     { return KindEnum }
func (*Bitflags) Kind() Kind { return KindBitflags }
func (*Constant) Kind() Kind { return KindConstant }
func (*FnTable) Kind() Kind  { return KindFnTable }

// Category groups units that are emitted together.
type Category string

const (
	CategoryLoader   Category = "loader"
	CategoryHandle   Category = "handles"
	CategoryType     Category = "types"
	CategoryEnum     Category = "enums"
	CategoryConstant Category = "constants"
	CategoryCommand  Category = "commands"
)

// CategoryOf returns the emission category of a declaration.
func CategoryOf(d Decl) Category {
	switch d.(type) {
	case *Prelude:
		return CategoryLoader
	case *Handle:
		return CategoryHandle
	case *Enum, *Bitflags:
		return CategoryEnum
	case *Constant:
		return CategoryConstant
	case *FnTable:
		return CategoryCommand
	default:
		return CategoryType
	}
}

// Unit is one independently emitted declaration.
type Unit struct {
	Decl Decl
}

// NewUnit wraps a declaration.
func NewUnit(d Decl) Unit {
	return Unit{Decl: d}
}

// Name returns the declared name.
func (u Unit) Name() string { return u.Decl.DeclName() }

// Kind returns the declaration kind.
func (u Unit) Kind() Kind { return u.Decl.Kind() }

// Category returns the emission category.
func (u Unit) Category() Category { return CategoryOf(u.Decl) }

// Module is the output of one generation run.
type Module struct {
	// Digest identifies the registry the module was generated from.
	Digest string
	Units  []Unit
}

// Compile-time interface satisfaction checks.
var (
	_ Decl = (*Prelude)(nil)
	_ Decl = (*Handle)(nil)
	_ Decl = (*Typedef)(nil)
	_ Decl = (*Struct)(nil)
	_ Decl = (*Union)(nil)
	_ Decl = (*FuncPtr)(nil)
	_ Decl = (*Enum)(nil)
	_ Decl = (*Bitflags)(nil)
	_ Decl = (*Constant)(nil)
	_ Decl = (*FnTable)(nil)
)
