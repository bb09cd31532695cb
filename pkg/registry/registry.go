package registry

// Registry is the full structured specification of an API.
type Registry struct {
	Commands    []Command
	Features    []Feature
	Extensions  []Extension
	Definitions []Definition
	Enums       []Enumeration
	Constants   []Constant
}

// Command is an API entry point with an ordered parameter list and a return type.
type Command struct {
	Name   string
	Params []Field
	Return Field
}

// Feature is a versioned bundle of required commands forming a core API revision.
type Feature struct {
	Name     string
	Version  string // "major.minor"
	Commands []string
}

// Extension is an optional bundle of required commands and constants.
type Extension struct {
	Name      string
	Number    int
	Commands  []string
	Constants []Constant
}

// Enumeration is a named, ordered list of constants.
type Enumeration struct {
	Name      string
	Constants []Constant
}

// Constant is a named value. At least one value form should be set; when
// several are, Number takes precedence over Hex, BitPos, Expr and Text in
// that order.
type Constant struct {
	Name     string
	Number   *int64
	Hex      *string
	BitPos   *uint32
	Expr     *string
	Text     *string
	Notation string // free-text description, used by Result-style enums
}

// Reference is the pointer modifier of a field.
type Reference uint8

const (
	RefNone Reference = iota
	RefPointer
	RefPointerToPointer
	RefPointerToConstPointer
)

// String returns the YAML spelling of the reference.
func (r Reference) String() string {
	switch r {
	case RefNone:
		return ""
	case RefPointer:
		return "pointer"
	case RefPointerToPointer:
		return "pointer-to-pointer"
	case RefPointerToConstPointer:
		return "pointer-to-const-pointer"
	default:
		return "unknown"
	}
}

// ArrayKind is the array modifier of a field.
type ArrayKind uint8

const (
	ArrayNone ArrayKind = iota
	ArrayStatic
	ArrayDynamic
)

// String returns the YAML spelling of the array kind.
func (a ArrayKind) String() string {
	switch a {
	case ArrayNone:
		return ""
	case ArrayStatic:
		return "static"
	case ArrayDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Field is a struct member, union member, command parameter or return type.
type Field struct {
	Name        string
	BaseType    string
	Reference   Reference
	Array       ArrayKind
	Size        string // explicit element count for static arrays
	SizeEnumRef string // named size constant for static arrays
}

// HandleKind distinguishes the two opaque reference kinds.
type HandleKind uint8

const (
	HandleDispatchable HandleKind = iota
	HandleNonDispatchable
)

// String returns the YAML spelling of the handle kind.
func (k HandleKind) String() string {
	switch k {
	case HandleDispatchable:
		return "dispatchable"
	case HandleNonDispatchable:
		return "non-dispatchable"
	default:
		return "unknown"
	}
}

// Definition is one node of the type definitions forest. The concrete type is
// one of *Typedef, *Struct, *Bitmask, *Handle, *FuncPtr or *Union.
type Definition interface {
	DefinitionName() string
	isDefinition()
}

// Typedef names an alias of a base type.
type Typedef struct {
	Name     string
	BaseType string
}

// Struct is an aggregate record with ordered members.
type Struct struct {
	Name    string
	Members []Field
}

// Bitmask is a flags type, optionally linked to the enumeration holding its bits.
type Bitmask struct {
	Name    string
	EnumRef string
}

// Handle is an opaque object reference.
type Handle struct {
	Name string
	Kind HandleKind
}

// FuncPtr is a function pointer type.
type FuncPtr struct {
	Name   string
	Return Field
}

// Union is a set of members sharing storage.
type Union struct {
	Name    string
	Members []Field
}

func (d *Typedef) DefinitionName() string { return d.Name }
func (d *Struct) DefinitionName() string  { return d.Name }
func (d *Bitmask) DefinitionName() string { return d.Name }
func (d *Handle) DefinitionName() string  { return d.Name }
func (d *FuncPtr) DefinitionName() string { return d.Name }
func (d *Union) DefinitionName() string   { return d.Name }

func (*Typedef) isDefinition() {}
func (*Struct) isDefinition()  {}
func (*Bitmask) isDefinition() {}
func (*Handle) isDefinition()  {}
func (*FuncPtr) isDefinition() {}
func (*Union) isDefinition()   {}

// Compile-time interface satisfaction checks.
var (
	_ Definition = (*Typedef)(nil)
	_ Definition = (*Struct)(nil)
	_ Definition = (*Bitmask)(nil)
	_ Definition = (*Handle)(nil)
	_ Definition = (*FuncPtr)(nil)
	_ Definition = (*Union)(nil)
)
