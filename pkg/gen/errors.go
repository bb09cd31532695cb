package gen

import (
	"errors"

	"github.com/vkbind/vkbind-go/pkg/cexpr"
	"github.com/vkbind/vkbind-go/pkg/typemap"
)

// Fatal generation errors. Any of them aborts a run; they are wrapped with
// the name of the registry node being generated.
var (
	// ErrNoConstantValue is returned for a constant with no value form.
	ErrNoConstantValue = errors.New("constant has no value")

	// ErrBadHexValue is returned for a hex form that is not valid hexadecimal.
	ErrBadHexValue = errors.New("invalid hex constant")

	// ErrBadBitPos is returned for a bit position outside a 64-bit mask.
	ErrBadBitPos = errors.New("bit position out of range")

	// ErrUnknownLayout is returned when a union member's size cannot be
	// computed from the registry.
	ErrUnknownLayout = errors.New("cannot compute layout")

	// ErrMissingArraySize is returned for a static array without a size.
	ErrMissingArraySize = typemap.ErrMissingArraySize

	// ErrUnsupportedExpr is returned for constant expressions outside the
	// supported grammar.
	ErrUnsupportedExpr = cexpr.ErrUnsupported
)
