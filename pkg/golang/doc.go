// Package golang prints declaration trees as Go source.
//
// Each unit renders on its own with PrintUnit. PrintFiles groups the units
// of a module into one file per category, with a generated-code header and
// the import block the declarations need:
//
//	files, err := golang.PrintFiles(mod, golang.Options{Package: "vk"})
//
// Function tables bind entry points with purego, so the generated package
// needs no cgo. Output is valid Go but not gofmt-formatted; callers format
// it before writing.
package golang
