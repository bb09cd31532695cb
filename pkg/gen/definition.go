package gen

import (
	"fmt"

	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
	"github.com/vkbind/vkbind-go/pkg/registry"
	"github.com/vkbind/vkbind-go/pkg/typemap"
)

// GenerateHandle generates an opaque handle. Placeholder handles with an
// empty name produce nil.
func GenerateHandle(h *registry.Handle) *ir.Handle {
	if h.Name == "" {
		return nil
	}
	return &ir.Handle{
		Name:         ident.TypeName(h.Name),
		Dispatchable: h.Kind == registry.HandleDispatchable,
	}
}

// GenerateTypedef generates a type alias.
func GenerateTypedef(t *registry.Typedef) *ir.Typedef {
	return &ir.Typedef{
		Name: ident.TypeName(t.Name),
		Base: typemap.Base(t.BaseType),
	}
}

// GenerateStruct generates a record with fields in declaration order.
func GenerateStruct(s *registry.Struct) (*ir.Struct, error) {
	fields, err := typemap.Fields(s.Members)
	if err != nil {
		return nil, fmt.Errorf("struct %s: %w", s.Name, err)
	}
	return &ir.Struct{Name: ident.TypeName(s.Name), Fields: fields}, nil
}

// GenerateUnion generates a union whose storage is sized by the layout.
func GenerateUnion(u *registry.Union, layout *Layout) (*ir.Union, error) {
	fields, err := typemap.Fields(u.Members)
	if err != nil {
		return nil, fmt.Errorf("union %s: %w", u.Name, err)
	}

	name := ident.TypeName(u.Name)
	size, align, err := layout.Of(ir.Named{Name: name})
	if err != nil {
		return nil, fmt.Errorf("union %s: %w", u.Name, err)
	}
	return &ir.Union{Name: name, Fields: fields, Size: size, Align: align}, nil
}

// GenerateFuncPtr generates an opaque function pointer type. The registry
// name is kept as is.
func GenerateFuncPtr(f *registry.FuncPtr) (*ir.FuncPtr, error) {
	ret, err := typemap.Field(f.Return)
	if err != nil {
		return nil, fmt.Errorf("funcptr %s: %w", f.Name, err)
	}
	return &ir.FuncPtr{Name: f.Name, Return: ret}, nil
}
