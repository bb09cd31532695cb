package ir

// Type is a mapped type expression. The concrete type is one of Void,
// Primitive, Named, Pointer or Array.
type Type interface {
	isType()
}

// Void is the absence of a value, or the pointee of an untyped pointer.
type Void struct{}

// PrimKind enumerates the portable primitive types.
type PrimKind uint8

const (
	Char PrimKind = iota + 1
	WChar
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	USize
)

var primNames = map[PrimKind]string{
	Char:    "char",
	WChar:   "wchar",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	USize:   "usize",
}

// String returns the portable name of the primitive.
func (k PrimKind) String() string {
	if s, ok := primNames[k]; ok {
		return s
	}
	return "unknown"
}

// Primitive is a portable scalar type.
type Primitive struct {
	Kind PrimKind
}

// Named refers to a generated declaration by its binding name.
type Named struct {
	Name string
}

// Pointer points at Elem. Const marks a pointer to read-only data.
type Pointer struct {
	Elem  Type
	Const bool
}

// Array is a fixed-size array. Len is either a decimal count or the name of
// a generated constant.
type Array struct {
	Elem Type
	Len  string
}

func (Void) isType()      {}
func (Primitive) isType() {}
func (Named) isType()     {}
func (Pointer) isType()   {}
func (Array) isType()     {}

// IsVoid reports whether t is Void.
func IsVoid(t Type) bool {
	_, ok := t.(Void)
	return ok
}
