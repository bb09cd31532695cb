package golang

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	preludeTmpl +
		dispatchableTmpl +
		nonDispatchableTmpl +
		typedefTmpl +
		funcPtrTmpl +
		structTmpl +
		unionTmpl +
		bitflagsTmpl +
		enumTmpl +
		constantTmpl +
		tableTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) error {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}

// --- Template definitions ---

const preludeTmpl = `{{define "prelude"}}
// EntryPointResolver returns the address of the named entry point. It
// reports false when the entry point is not available.
type EntryPointResolver func(name string) (uintptr, bool)

// MissingEntryPointsError lists every entry point a table failed to resolve,
// in declaration order.
type MissingEntryPointsError struct {
	Table string
	Names []string
}

func (e *MissingEntryPointsError) Error() string {
	return fmt.Sprintf("load %s: unresolved entry points: %s", e.Table, strings.Join(e.Names, ", "))
}
{{end}}`

const dispatchableTmpl = `{{define "dispatchable"}}
// {{.Name}} is a dispatchable handle.
type {{.Name}} uintptr

// Null{{.Name}} returns the null {{.Name}}.
func Null{{.Name}}() {{.Name}} {
	return 0
}
{{end}}`

const nonDispatchableTmpl = `{{define "nonDispatchable"}}
// {{.Name}} is a non-dispatchable handle.
type {{.Name}} uint64

// Null{{.Name}} returns the null {{.Name}}.
func Null{{.Name}}() {{.Name}} {
	return 0
}

// Compare orders handles by value.
func (h {{.Name}}) Compare(other {{.Name}}) int {
	return cmp.Compare(h, other)
}

// Hash returns a hash of the handle.
func (h {{.Name}}) Hash() uint64 {
	return uint64(h)
}

func (h {{.Name}}) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

func (h {{.Name}}) GoString() string {
	return h.String()
}
{{end}}`

const typedefTmpl = `{{define "typedef"}}
type {{.Name}} = {{.Base}}
{{end}}`

const funcPtrTmpl = `{{define "funcptr"}}
// {{.Name}} is an opaque function pointer.
type {{.Name}} uintptr
{{end}}`

const structTmpl = `{{define "struct"}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}
{{end}}`

const unionTmpl = `{{define "union"}}
// {{.Name}} is a {{.Size}}-byte union. Each member method views the same
// storage.
type {{.Name}} struct {
	raw {{.Storage}}
}
{{- $name := .Name}}
{{range .Members}}
func (u *{{$name}}) {{.Name}}() *{{.Type}} {
	return (*{{.Type}})(unsafe.Pointer(&u.raw))
}
{{end}}
{{- end}}`

const bitflagsTmpl = `{{define "bitflags"}}
{{- $name := .Name}}
type {{$name}} Flags
{{if .Values}}
const (
{{- range .Values}}
	{{.Name}} {{$name}} = {{.Value}}
{{- end}}
)
{{end}}
// {{$name}}Empty returns the set with no flags.
func {{$name}}Empty() {{$name}} {
	return 0
}

// {{$name}}All returns the set of every known flag.
func {{$name}}All() {{$name}} {
	return {{.All}}
}

// {{$name}}FromFlags converts raw flags. It reports false when flags has
// bits outside {{$name}}All.
func {{$name}}FromFlags(flags Flags) ({{$name}}, bool) {
	if flags&^Flags({{$name}}All()) != 0 {
		return 0, false
	}
	return {{$name}}(flags), true
}

// {{$name}}FromFlagsTruncate converts raw flags, dropping unknown bits.
func {{$name}}FromFlagsTruncate(flags Flags) {{$name}} {
	return {{$name}}(flags) & {{$name}}All()
}

func (f {{$name}}) Flags() Flags {
	return Flags(f)
}

func (f {{$name}}) IsEmpty() bool {
	return f == {{$name}}Empty()
}

func (f {{$name}}) IsAll() bool {
	return f&{{$name}}All() == {{$name}}All()
}

func (f {{$name}}) Intersects(other {{$name}}) bool {
	return f&other != 0
}

// IsSubsetOf reports whether every flag in f is also in other.
func (f {{$name}}) IsSubsetOf(other {{$name}}) bool {
	return f&other == f
}

func (f {{$name}}) Union(other {{$name}}) {{$name}} {
	return f | other
}

func (f {{$name}}) Intersection(other {{$name}}) {{$name}} {
	return f & other
}

func (f {{$name}}) SymmetricDifference(other {{$name}}) {{$name}} {
	return f ^ other
}

func (f {{$name}}) Difference(other {{$name}}) {{$name}} {
	return f & other.Complement()
}

// Complement returns the known flags not in f.
func (f {{$name}}) Complement() {{$name}} {
	return f ^ {{$name}}All()
}

func (f {{$name}}) String() string {
	return fmt.Sprintf("{{$name}}(%b)", Flags(f))
}
{{end}}`

const enumTmpl = `{{define "enum"}}
{{- $name := .Name}}
type {{$name}} int32
{{if .Variants}}
const (
{{- range .Variants}}
	{{.Const}} {{$name}} = {{.Value}}
{{- end}}
)
{{end}}
func (v {{$name}}) String() string {
	switch v {
{{- range .Variants}}{{if not .Alias}}
	case {{.Const}}:
		return {{quote .Name}}
{{- end}}{{end}}
	default:
		return fmt.Sprintf("{{$name}}(%d)", int32(v))
	}
}
{{- if .Describe}}

// Description returns the documented meaning of the code.
func (v {{$name}}) Description() string {
	switch v {
{{- range .Variants}}{{if and (not .Alias) .Description}}
	case {{.Const}}:
		return {{quote .Description}}
{{- end}}{{end}}
	default:
		return ""
	}
}

func (v {{$name}}) Error() string {
	if d := v.Description(); d != "" {
		return v.String() + ": " + d
	}
	return v.String()
}
{{- end}}
{{end}}`

const constantTmpl = `{{define "constant"}}
const {{.Name}} {{.Type}} = {{.Value}}
{{end}}`

const tableTmpl = `{{define "table"}}
{{- $name := .Name}}
// {{.Doc}}
type {{$name}} struct {
{{- range .Slots}}
	{{.Field}} func({{.Params}}){{if .Return}} {{.Return}}{{end}}
{{- end}}
}

// Clone returns a copy of the table.
func (tbl *{{$name}}) Clone() *{{$name}} {
	c := *tbl
	return &c
}
{{range .Slots}}
// {{.Method}} calls {{.EntryPoint}}.
func (tbl *{{$name}}) {{.Method}}({{.Params}}){{if .Return}} {{.Return}}{{end}} {
	{{if .Return}}return {{end}}tbl.{{.Field}}({{.Args}})
}
{{end}}
// Load{{$name}} resolves every entry point of {{$name}}. Resolution continues
// past failures so the error names all missing entry points.
func Load{{$name}}(resolve EntryPointResolver) (*{{$name}}, error) {
	tbl := &{{$name}}{}
	var missing []string
{{- range .Slots}}
	if addr, ok := resolve({{quote .EntryPoint}}); ok && addr != 0 {
		purego.RegisterFunc(&tbl.{{.Field}}, addr)
	} else {
		missing = append(missing, {{quote .EntryPoint}})
	}
{{- end}}
	if len(missing) > 0 {
		return nil, &MissingEntryPointsError{Table: {{quote $name}}, Names: missing}
	}
	return tbl, nil
}
{{end}}`
