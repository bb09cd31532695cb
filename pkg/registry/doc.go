// Package registry defines the structured API registry consumed by the binding
// generator: commands, features, extensions, type definitions, enumerations and
// constants.
//
// A Registry is treated as an immutable, fully materialized input. It is read
// from a YAML document (Parse, Load) or from a CBOR snapshot (DecodeSnapshot),
// and identified by a content digest (Digest) that generated files carry in
// their headers.
//
// # Definitions
//
// Type definitions form a closed set of variants. Consumers traverse them with
// a type switch:
//
//	for _, def := range reg.Definitions {
//	    switch d := def.(type) {
//	    case *registry.Struct:
//	        ...
//	    case *registry.Handle:
//	        ...
//	    }
//	}
//
// In YAML each definition is a single-key mapping naming its variant:
//
//	definitions:
//	  - typedef: { name: VkFlags, type: uint32_t }
//	  - handle: { name: VkDevice, kind: dispatchable }
//	  - struct:
//	      name: VkExtent2D
//	      members:
//	        - { name: width, type: uint32_t }
//	        - { name: height, type: uint32_t }
package registry
