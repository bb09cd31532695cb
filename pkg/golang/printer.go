package golang

import (
	"fmt"
	"strings"

	"github.com/vkbind/vkbind-go/pkg/ir"
)

// DefaultPackage is the package name used when Options.Package is empty.
const DefaultPackage = "vk"

// Options controls file-level output.
type Options struct {
	// Package is the package clause of every file.
	Package string

	// Header is added as comment lines below the generated-code notice.
	Header string
}

// File is one printed Go source file.
type File struct {
	Name     string
	Category ir.Category
	Source   []byte
}

// fileOrder fixes the file set and its order.
var fileOrder = []struct {
	category ir.Category
	name     string
}{
	{ir.CategoryLoader, "loader_gen.go"},
	{ir.CategoryHandle, "handles_gen.go"},
	{ir.CategoryType, "types_gen.go"},
	{ir.CategoryEnum, "enums_gen.go"},
	{ir.CategoryConstant, "constants_gen.go"},
	{ir.CategoryCommand, "commands_gen.go"},
}

// PrintUnit renders one declaration without package clause or imports.
func PrintUnit(u ir.Unit) (string, error) {
	var b strings.Builder
	if err := printDecl(&b, u.Decl); err != nil {
		return "", err
	}
	return b.String(), nil
}

func printDecl(b *strings.Builder, d ir.Decl) error {
	switch d := d.(type) {
	case *ir.Prelude:
		return renderTemplate(b, "prelude", nil)

	case *ir.Handle:
		if d.Dispatchable {
			return renderTemplate(b, "dispatchable", d)
		}
		return renderTemplate(b, "nonDispatchable", d)

	case *ir.Typedef:
		base, err := goType(d.Base)
		if err != nil {
			return fmt.Errorf("typedef %s: %w", d.Name, err)
		}
		return renderTemplate(b, "typedef", typedefData{Name: d.Name, Base: base})

	case *ir.FuncPtr:
		return renderTemplate(b, "funcptr", d)

	case *ir.Struct:
		data, err := newStructData(d)
		if err != nil {
			return err
		}
		return renderTemplate(b, "struct", data)

	case *ir.Union:
		data, err := newUnionData(d)
		if err != nil {
			return err
		}
		return renderTemplate(b, "union", data)

	case *ir.Bitflags:
		return renderTemplate(b, "bitflags", newBitflagsData(d))

	case *ir.Enum:
		return renderTemplate(b, "enum", newEnumData(d))

	case *ir.Constant:
		data, err := newConstantData(d)
		if err != nil {
			return err
		}
		return renderTemplate(b, "constant", data)

	case *ir.FnTable:
		data, err := newTableData(d)
		if err != nil {
			return err
		}
		return renderTemplate(b, "table", data)

	default:
		return fmt.Errorf("unsupported declaration %T", d)
	}
}

// PrintFiles renders a module into one file per non-empty category. Units
// keep their module order within a file.
func PrintFiles(mod *ir.Module, opts Options) ([]File, error) {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}

	groups := make(map[ir.Category][]ir.Unit)
	for _, u := range mod.Units {
		groups[u.Category()] = append(groups[u.Category()], u)
	}

	var files []File
	for _, f := range fileOrder {
		units := groups[f.category]
		if len(units) == 0 {
			continue
		}

		var body strings.Builder
		imports := make(importSet)
		for _, u := range units {
			if err := printDecl(&body, u.Decl); err != nil {
				return nil, fmt.Errorf("%s: %w", f.name, err)
			}
			imports.add(u.Decl)
		}

		var src strings.Builder
		writeHeader(&src, mod.Digest, opts)
		fmt.Fprintf(&src, "package %s\n\n", opts.Package)
		src.WriteString(imports.block())
		src.WriteString(body.String())

		files = append(files, File{Name: f.name, Category: f.category, Source: []byte(src.String())})
	}
	return files, nil
}

func writeHeader(b *strings.Builder, digest string, opts Options) {
	b.WriteString("// Code generated by vkbindgen. DO NOT EDIT.\n")
	if digest != "" {
		fmt.Fprintf(b, "// Registry digest: %s\n", digest)
	}
	if opts.Header != "" {
		for _, line := range strings.Split(strings.TrimRight(opts.Header, "\n"), "\n") {
			b.WriteString(strings.TrimRight("// "+line, " ") + "\n")
		}
	}
	b.WriteString("\n")
}
