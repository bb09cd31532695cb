// Package cexpr recognizes the closed set of C literal idioms found in
// registry constant expressions.
//
// Two forms are accepted, tried in order:
//
//	1000.0f       float literal with an f/F suffix
//	(~0ULL)       inverted integer, 64-bit
//	(~0U-1)       inverted integer, 32-bit, with a subtraction
//
// Anything else is rejected with ErrUnsupported; expressions are never evaluated
// beyond these forms.
package cexpr

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnsupported is returned for expressions outside the supported grammar.
var ErrUnsupported = errors.New("unsupported constant expression")

// Type is the scalar type inferred for an expression.
type Type uint8

const (
	U32 Type = iota + 1
	U64
	Float
)

// String returns the name of the type.
func (t Type) String() string {
	switch t {
	case U32:
		return "u32"
	case U64:
		return "u64"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Expr is a parsed constant expression.
type Expr struct {
	Type Type

	// Text is the normalized textual form: "1000.00", "!0" or "!0-1".
	Text string

	// Float holds the value of a float literal.
	Float float32

	// Operand is the inverted integer, Subtrahend the optional value
	// subtracted from the inversion.
	Operand       uint64
	Subtrahend    uint64
	HasSubtrahend bool
}

var (
	floatRe   = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)[fF]$`)
	inverseRe = regexp.MustCompile(`^\(~(\d+)(ULL|U)(?:-(\d+))?\)$`)
)

// Parse parses s. Surrounding whitespace is ignored; the rest must match one
// of the supported forms entirely.
func Parse(s string) (Expr, error) {
	in := strings.TrimSpace(s)

	if m := floatRe.FindStringSubmatch(in); m != nil {
		f, err := strconv.ParseFloat(m[1], 32)
		if err != nil {
			return Expr{}, fmt.Errorf("%w: %q: %v", ErrUnsupported, s, err)
		}
		return Expr{
			Type:  Float,
			Text:  fmt.Sprintf("%.2f", float32(f)),
			Float: float32(f),
		}, nil
	}

	if m := inverseRe.FindStringSubmatch(in); m != nil {
		e := Expr{Type: U32, Text: "!" + m[1]}
		if m[2] == "ULL" {
			e.Type = U64
		}

		var err error
		if e.Operand, err = strconv.ParseUint(m[1], 10, 64); err != nil {
			return Expr{}, fmt.Errorf("%w: %q: %v", ErrUnsupported, s, err)
		}
		if m[3] != "" {
			if e.Subtrahend, err = strconv.ParseUint(m[3], 10, 64); err != nil {
				return Expr{}, fmt.Errorf("%w: %q: %v", ErrUnsupported, s, err)
			}
			e.HasSubtrahend = true
			e.Text += "-" + m[3]
		}
		return e, nil
	}

	return Expr{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// Uint evaluates an inverted integer expression at its own width. It
// reports false for float literals.
func (e Expr) Uint() (uint64, bool) {
	switch e.Type {
	case U32:
		return uint64(^uint32(e.Operand) - uint32(e.Subtrahend)), true
	case U64:
		return ^e.Operand - e.Subtrahend, true
	default:
		return 0, false
	}
}
