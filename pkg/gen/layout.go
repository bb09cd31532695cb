package gen

import (
	"fmt"
	"strconv"

	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
	"github.com/vkbind/vkbind-go/pkg/typemap"
)

// Layout computes C sizes and alignments of mapped types on LP64 targets.
// It is built once per run from the registry and caches its results.
type Layout struct {
	defs    map[string]registry.Definition
	scalars map[string]struct{}
	consts  map[string]uint64

	cache  map[string]typeLayout
	active map[string]struct{}
}

type typeLayout struct {
	size  int64
	align int64
}

var primLayouts = map[ir.PrimKind]typeLayout{
	ir.Char:    {1, 1},
	ir.WChar:   {4, 4},
	ir.Int8:    {1, 1},
	ir.Uint8:   {1, 1},
	ir.Int16:   {2, 2},
	ir.Uint16:  {2, 2},
	ir.Int32:   {4, 4},
	ir.Uint32:  {4, 4},
	ir.Int64:   {8, 8},
	ir.Uint64:  {8, 8},
	ir.Float32: {4, 4},
	ir.Float64: {8, 8},
	ir.USize:   {8, 8},
}

const pointerSize = 8

// NewLayout indexes the definitions, enumerations and numeric constants of
// a registry by their binding names.
func NewLayout(reg *registry.Registry) *Layout {
	l := &Layout{
		defs:    make(map[string]registry.Definition),
		scalars: make(map[string]struct{}),
		consts:  make(map[string]uint64),
		cache:   make(map[string]typeLayout),
		active:  make(map[string]struct{}),
	}

	for _, def := range reg.Definitions {
		if def.DefinitionName() == "" {
			continue
		}
		name := ident.TypeName(def.DefinitionName())
		if _, ok := l.defs[name]; !ok {
			l.defs[name] = def
		}
	}
	for _, e := range reg.Enums {
		l.scalars[ident.TypeName(e.Name)] = struct{}{}
	}

	addConsts := func(cs []registry.Constant) {
		for _, c := range cs {
			v, err := ResolveConstant(c)
			if err != nil {
				continue
			}
			bits, ok := v.Bits, v.Resolvable()
			if v.Form == ir.FormExpr {
				bits, ok = v.Expr.Uint()
			}
			if ok {
				l.consts[ident.TrimConstNamespace(c.Name)] = bits
			}
		}
	}
	addConsts(reg.Constants)
	for _, ext := range reg.Extensions {
		addConsts(ext.Constants)
	}
	return l
}

// Of returns the size and alignment of t in bytes.
func (l *Layout) Of(t ir.Type) (size, align int64, err error) {
	tl, err := l.of(t)
	if err != nil {
		return 0, 0, err
	}
	return tl.size, tl.align, nil
}

func (l *Layout) of(t ir.Type) (typeLayout, error) {
	switch t := t.(type) {
	case ir.Primitive:
		if tl, ok := primLayouts[t.Kind]; ok {
			return tl, nil
		}
		return typeLayout{}, fmt.Errorf("%w: primitive %s", ErrUnknownLayout, t.Kind)
	case ir.Pointer:
		return typeLayout{pointerSize, pointerSize}, nil
	case ir.Array:
		n, err := l.arrayLen(t.Len)
		if err != nil {
			return typeLayout{}, err
		}
		elem, err := l.of(t.Elem)
		if err != nil {
			return typeLayout{}, err
		}
		return typeLayout{elem.size * n, elem.align}, nil
	case ir.Named:
		return l.named(t.Name)
	default:
		return typeLayout{}, fmt.Errorf("%w: %T", ErrUnknownLayout, t)
	}
}

func (l *Layout) arrayLen(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if n, ok := l.consts[s]; ok {
		return int64(n), nil
	}
	return 0, fmt.Errorf("%w: array length %s", ErrUnknownLayout, s)
}

func (l *Layout) named(name string) (typeLayout, error) {
	if tl, ok := l.cache[name]; ok {
		return tl, nil
	}
	if _, ok := l.active[name]; ok {
		return typeLayout{}, fmt.Errorf("%w: %s contains itself", ErrUnknownLayout, name)
	}

	var tl typeLayout
	var err error

	switch def := l.defs[name].(type) {
	case *registry.Handle, *registry.FuncPtr:
		tl = typeLayout{pointerSize, pointerSize}
	case *registry.Bitmask:
		tl = typeLayout{4, 4}
	case *registry.Typedef:
		l.active[name] = struct{}{}
		tl, err = l.of(typemap.Base(def.BaseType))
		delete(l.active, name)
	case *registry.Struct:
		l.active[name] = struct{}{}
		tl, err = l.record(def.Members, false)
		delete(l.active, name)
	case *registry.Union:
		l.active[name] = struct{}{}
		tl, err = l.record(def.Members, true)
		delete(l.active, name)
	case nil:
		if _, ok := l.scalars[name]; !ok {
			return typeLayout{}, fmt.Errorf("%w: unknown type %s", ErrUnknownLayout, name)
		}
		tl = typeLayout{4, 4}
	}
	if err != nil {
		return typeLayout{}, fmt.Errorf("%s: %w", name, err)
	}

	l.cache[name] = tl
	return tl, nil
}

// record lays out struct members one after another, or union members on
// top of each other, padding the total to the largest alignment.
func (l *Layout) record(members []registry.Field, overlap bool) (typeLayout, error) {
	var offset, maxAlign int64 = 0, 1

	for _, m := range members {
		t, err := typemap.Field(m)
		if err != nil {
			return typeLayout{}, err
		}
		ml, err := l.of(t)
		if err != nil {
			return typeLayout{}, err
		}
		maxAlign = max(maxAlign, ml.align)
		if overlap {
			offset = max(offset, ml.size)
		} else {
			offset = alignUp(offset, ml.align) + ml.size
		}
	}
	return typeLayout{alignUp(offset, maxAlign), maxAlign}, nil
}

func alignUp(n, align int64) int64 {
	return (n + align - 1) / align * align
}
