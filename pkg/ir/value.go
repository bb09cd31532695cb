package ir

import "github.com/vkbind/vkbind-go/pkg/cexpr"

// Form identifies which source form a constant value was taken from.
type Form uint8

const (
	FormNumber Form = iota + 1
	FormHex
	FormBitPos
	FormExpr
	FormText
)

// String returns the registry spelling of the form.
func (f Form) String() string {
	switch f {
	case FormNumber:
		return "number"
	case FormHex:
		return "hex"
	case FormBitPos:
		return "bitpos"
	case FormExpr:
		return "expr"
	case FormText:
		return "text"
	default:
		return "unknown"
	}
}

// Scalar is the inferred type of a constant value.
type Scalar uint8

const (
	ScalarUSize Scalar = iota + 1
	ScalarU32
	ScalarU64
	ScalarFloat
	ScalarText
)

// String returns the portable name of the scalar type.
func (s Scalar) String() string {
	switch s {
	case ScalarUSize:
		return "usize"
	case ScalarU32:
		return "u32"
	case ScalarU64:
		return "u64"
	case ScalarFloat:
		return "float"
	case ScalarText:
		return "text"
	default:
		return "unknown"
	}
}

// ConstValue is a resolved constant. Exactly one form is recorded.
type ConstValue struct {
	Form   Form
	Scalar Scalar

	// Bits is the numeric value of the number, hex and bitpos forms.
	Bits uint64

	Number int64
	Hex    string // digits as written, without 0x
	BitPos uint32
	Expr   cexpr.Expr
	Text   string
}

// Resolvable reports whether the value has a numeric value in Bits.
func (v ConstValue) Resolvable() bool {
	switch v.Form {
	case FormNumber, FormHex, FormBitPos:
		return true
	default:
		return false
	}
}
