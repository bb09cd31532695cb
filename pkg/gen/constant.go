package gen

import (
	"fmt"
	"strconv"

	"github.com/vkbind/vkbind-go/pkg/cexpr"
	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

// ResolveConstant resolves the value of a constant. When several forms are
// present the first of number, hex, bitpos, expr and text wins.
//
// Number and hex values are platform-word sized, bit positions are 32-bit
// below bit 32 and 64-bit above, expressions take the type inferred by the
// expression parser and text stays text.
func ResolveConstant(c registry.Constant) (ir.ConstValue, error) {
	switch {
	case c.Number != nil:
		return ir.ConstValue{
			Form:   ir.FormNumber,
			Scalar: ir.ScalarUSize,
			Number: *c.Number,
			Bits:   uint64(*c.Number),
		}, nil

	case c.Hex != nil:
		bits, err := strconv.ParseUint(*c.Hex, 16, 64)
		if err != nil {
			return ir.ConstValue{}, fmt.Errorf("%w: %s: %q", ErrBadHexValue, c.Name, *c.Hex)
		}
		return ir.ConstValue{
			Form:   ir.FormHex,
			Scalar: ir.ScalarUSize,
			Hex:    *c.Hex,
			Bits:   bits,
		}, nil

	case c.BitPos != nil:
		pos := *c.BitPos
		if pos >= 64 {
			return ir.ConstValue{}, fmt.Errorf("%w: %s: %d", ErrBadBitPos, c.Name, pos)
		}
		scalar := ir.ScalarU32
		if pos >= 32 {
			scalar = ir.ScalarU64
		}
		return ir.ConstValue{
			Form:   ir.FormBitPos,
			Scalar: scalar,
			BitPos: pos,
			Bits:   1 << pos,
		}, nil

	case c.Expr != nil:
		e, err := cexpr.Parse(*c.Expr)
		if err != nil {
			return ir.ConstValue{}, fmt.Errorf("constant %s: %w", c.Name, err)
		}
		return ir.ConstValue{
			Form:   ir.FormExpr,
			Scalar: exprScalar(e.Type),
			Expr:   e,
		}, nil

	case c.Text != nil:
		return ir.ConstValue{
			Form:   ir.FormText,
			Scalar: ir.ScalarText,
			Text:   *c.Text,
		}, nil

	default:
		return ir.ConstValue{}, fmt.Errorf("%w: %s", ErrNoConstantValue, c.Name)
	}
}

func exprScalar(t cexpr.Type) ir.Scalar {
	switch t {
	case cexpr.U32:
		return ir.ScalarU32
	case cexpr.U64:
		return ir.ScalarU64
	default:
		return ir.ScalarFloat
	}
}

// GenerateConstant generates a named constant binding.
func GenerateConstant(c registry.Constant) (*ir.Constant, error) {
	v, err := ResolveConstant(c)
	if err != nil {
		return nil, err
	}
	return &ir.Constant{Name: ident.TrimConstNamespace(c.Name), Value: v}, nil
}
