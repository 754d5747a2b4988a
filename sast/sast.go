// Package sast defines the semantically-checked abstract syntax tree for the
// Grad language: the fully typed program representation handed to the back end
// by the front end's semantic analyzer.  The nodes here are pure data; all
// behavior lives in the packages that consume them.
//
// Every expression reachable from a Program must carry a concrete inferred
// type before the tree is handed to the emitter.  The emitter trusts this
// precondition and does not re-check it.
package sast

import "gradc/types"

// Program is the root of a checked Grad program: the ordered list of
// top-level statements together with the global variable table.  The tree is
// produced once by semantic analysis and is immutable afterwards.
type Program struct {
	// The global variables of the program in declaration order.
	Globals []Binding

	// The top-level statements of the program in source order.  These become
	// the body of the entry point in emitted output.
	Body []Stmt
}

// Binding is a single name/type pair: a global declaration, a formal
// parameter, a local variable, or a loop variable.
type Binding struct {
	Name string
	Type types.Type
}

// FuncDecl represents a checked function declaration.
type FuncDecl struct {
	Name string

	// The return type of the function.
	ReturnType types.Type

	// The formal parameters of the function in order.
	Params []Binding

	// The local variables of the function as recorded by the checker.  The
	// formals are always a subset of this list by name; bindings that match a
	// formal exactly are filtered out when the declaration preamble is
	// emitted.
	Locals []Binding

	// The body of the function.  Always a *Block.
	Body Stmt
}
