// Package ident converts registry names into target-language identifiers.
//
// Word splitting follows the rules of the Rust "heck" crate so that names are
// stable across generator implementations: words are separated by any
// non-alphanumeric character, after a lowercase letter that is followed by an
// uppercase letter, and before the last letter of an uppercase run that is
// followed by a lowercase letter. Digits take the mode of the preceding letter
// and never start a word on their own.
package ident

import (
	"strings"
	"unicode"
)

type wordMode uint8

const (
	modeBoundary wordMode = iota
	modeLower
	modeUpper
)

// Words splits s into words.
func Words(s string) []string {
	var words []string

	chunks := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, chunk := range chunks {
		rs := []rune(chunk)
		init := 0
		mode := modeBoundary

		for i, c := range rs {
			if i+1 == len(rs) {
				words = append(words, string(rs[init:]))
				break
			}
			next := rs[i+1]

			nextMode := mode
			switch {
			case unicode.IsLower(c):
				nextMode = modeLower
			case unicode.IsUpper(c):
				nextMode = modeUpper
			}

			switch {
			case nextMode == modeLower && unicode.IsUpper(next):
				words = append(words, string(rs[init:i+1]))
				init = i + 1
				mode = modeBoundary
			case mode == modeUpper && unicode.IsUpper(c) && unicode.IsLower(next):
				if i > init {
					words = append(words, string(rs[init:i]))
				}
				init = i
				mode = modeBoundary
			default:
				mode = nextMode
			}
		}
	}
	return words
}

// CamelCase returns s in type-name case: "VK_IMAGE_TYPE_2D" -> "VkImageType2d".
func CamelCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// LowerCamelCase returns s in camel case with a lowercase first word.
func LowerCamelCase(s string) string {
	var b strings.Builder
	for i, w := range Words(s) {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// SnakeCase returns s in field case: "pCreateInfo" -> "p_create_info".
func SnakeCase(s string) string {
	return join(Words(s), "_", strings.ToLower)
}

func join(words []string, sep string, conv func(string) string) string {
	for i, w := range words {
		words[i] = conv(w)
	}
	return strings.Join(words, sep)
}

func capitalize(w string) string {
	rs := []rune(strings.ToLower(w))
	if len(rs) == 0 {
		return ""
	}
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
