// Package bytecode defines the traversal bytecode model consumed by the
// script translator.
//
// A Bytecode is an ordered list of source instructions (traversal-source
// configuration such as withSack or withStrategies) followed by step
// instructions. Every argument is a Value.
//
// SEALED INTERFACES:
//
// Value and Predicate are sealed using the marker method pattern. Only types in
// this package implement them, so the translator can switch over the full set
// of kinds and keep a single explicit fallback (Opaque) for everything else:
//
//	switch v := value.(type) {
//	case bytecode.String:
//	    // quote and escape
//	case bytecode.List:
//	    // recurse
//	case bytecode.Opaque:
//	    // generic textual form
//	}
//
// OWNERSHIP:
//
// Values form an owned tree. Composite values (List, Set, Map, predicates,
// nested *Bytecode) own their children and there are no back-references; a
// sub-traversal never refers to the traversal that encloses it. Values are
// built once and treated as read-only afterwards.
//
// Go natives are lifted into Values by Of, which is what the Traversal builder
// uses for its arguments:
//
//	bc := bytecode.G().Step("V").Step("has", "name", "marko").Bytecode()
package bytecode
