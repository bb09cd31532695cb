package ident

// goKeywords contains Go's reserved words and the predeclared identifiers
// that generated code must not shadow.
var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},

	"append": {}, "cap": {}, "clear": {}, "close": {}, "copy": {},
	"len": {}, "make": {}, "max": {}, "min": {}, "new": {},
	"panic": {}, "print": {}, "println": {}, "recover": {},
	"nil": {}, "true": {}, "false": {}, "iota": {},
	"unsafe": {}, "purego": {},
}

// IsGoKeyword reports whether name is reserved in generated Go code.
func IsGoKeyword(name string) bool {
	_, ok := goKeywords[name]
	return ok
}

// GoIdent escapes name by appending "_" when it is reserved.
func GoIdent(name string) string {
	if IsGoKeyword(name) {
		return name + "_"
	}
	return name
}

// GoField returns the exported Go field name for a snake_case field name.
func GoField(snake string) string {
	return GoIdent(CamelCase(snake))
}

// GoParam returns the Go parameter name for a snake_case field name.
func GoParam(snake string) string {
	return GoIdent(LowerCamelCase(snake))
}
