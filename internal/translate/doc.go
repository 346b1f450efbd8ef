// Package translate renders traversal bytecode as Groovy script text.
//
// Two pieces cooperate:
//
//	[Bytecode] → Assemble → g.V().has("name","marko")
//	                ↓ per argument
//	[Value]    → Render   → "marko", 5L, P.gt((int) 5), __.out("knows")
//
// Assemble writes the root marker followed by one .operator(args) fragment per
// instruction. Render dispatches on the value kind and recurses into
// collections, predicates and nested bytecode; nested bytecode always uses the
// anonymous root marker "__".
//
// Rendering is pure. Nothing here holds state between calls, so concurrent
// calls on independent inputs need no coordination.
//
// The output is meant for logs and replay, not as an exact inverse: values of
// unknown kinds (bytecode.Opaque) fall back to their default textual form,
// which may not parse or execute. That fallback is intentional and never an
// error.
package translate
