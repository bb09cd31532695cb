package gen

import (
	"fmt"
	"strings"

	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
)

// resultEnum is the enumeration whose variants carry descriptions.
const resultEnum = "Result"

// IsBitflags reports whether an enumeration describes independent bits.
func IsBitflags(e registry.Enumeration) bool {
	return strings.Contains(ident.TrimNamespace(e.Name), "Bit")
}

// GenerateEnum generates a bit-flag type or a plain enumeration. The
// returned declaration is an *ir.Bitflags or an *ir.Enum.
func GenerateEnum(e registry.Enumeration) (ir.Decl, error) {
	if IsBitflags(e) {
		return generateBitflags(e)
	}
	return generatePlainEnum(e)
}

func generateBitflags(e registry.Enumeration) (*ir.Bitflags, error) {
	bf := &ir.Bitflags{Name: ident.FlagsName(ident.TrimNamespace(e.Name))}

	for _, c := range e.Constants {
		v, err := ResolveConstant(c)
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", e.Name, err)
		}
		if v.Resolvable() {
			// Zero values are aliases or placeholders, not bits.
			if v.Bits == 0 {
				continue
			}
			bf.All |= v.Bits
		}
		bf.Values = append(bf.Values, ir.FlagValue{
			Name:  ident.TrimConstNamespace(c.Name),
			Value: v,
		})
	}
	return bf, nil
}

func generatePlainEnum(e registry.Enumeration) (*ir.Enum, error) {
	name := ident.FlagsName(ident.TrimNamespace(e.Name))
	en := &ir.Enum{Name: name, Describe: name == resultEnum}

	namer := ident.NewNamer()
	seen := make(map[int64]bool)

	for _, c := range e.Constants {
		v, err := ResolveConstant(c)
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", e.Name, err)
		}
		if !v.Resolvable() {
			continue
		}

		value := int64(v.Bits)
		if v.Form == ir.FormNumber {
			value = v.Number
		}

		variant := ir.Variant{
			Name:     namer.Call(ident.VariantName(name, c.Name)),
			Constant: c.Name,
			Value:    value,
			Alias:    seen[value],
		}
		if en.Describe {
			variant.Description = c.Notation
		}
		seen[value] = true
		en.Variants = append(en.Variants, variant)
	}
	return en, nil
}

// GenerateBitmask generates the empty flag type for a bitmask definition
// that has no linked enumeration. It returns nil with a reason when the
// definition produces no output: placeholders with an empty name, and
// bitmasks whose values come from a linked enumeration.
func GenerateBitmask(b *registry.Bitmask) (*ir.Bitflags, string) {
	if b.Name == "" {
		return nil, "empty name"
	}
	if b.EnumRef != "" {
		return nil, "generated from " + b.EnumRef
	}
	return &ir.Bitflags{Name: ident.FlagsName(ident.TrimNamespace(b.Name))}, ""
}
