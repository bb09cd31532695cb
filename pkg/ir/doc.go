// Package ir defines the declaration tree produced by the generators.
//
// The tree is independent of any output language: generators build it from a
// registry and printers render it. A Module is an ordered list of Units, one
// per emitted entity. Units have no ordering dependency on each other, except
// that a bit-flag type carries its named values inside the same unit.
//
// Types, declarations and constant values are sealed sum types; consumers
// switch over the concrete variants.
package ir
