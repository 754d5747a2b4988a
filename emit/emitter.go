// Package emit renders a checked Grad program (a sast.Program) as source text
// in the C-ish target dialect.  The translation is syntax directed: one
// rendering case per node variant, with function definitions collected into a
// per-emitter table and spliced in ahead of the entry point.
package emit

import (
	"sort"
	"strings"

	"gradc/report"
	"gradc/sast"
)

// Emitter renders one program.  Each top-level rendering call must own its
// own Emitter: the function table is per-invocation state, never shared.
type Emitter struct {
	// funcs is the program's function table: callee identifier to definition.
	// It is built up front by the collection pass, before any text is
	// rendered.
	funcs map[string]*sast.FuncDef

	// classes is the list of class definitions reachable from the program
	// body, in the order the marking pass found them.
	classes []*sast.ClassDef

	// referenced is the set of function names transitively reachable from the
	// program body through call sites.  Only referenced functions appear in
	// the output.
	referenced map[string]bool
}

// New creates a new emitter with an empty function table.
func New() *Emitter {
	return &Emitter{
		funcs:      make(map[string]*sast.FuncDef),
		referenced: make(map[string]bool),
	}
}

// Program renders a checked program as target source text.  It is shorthand
// for emitting with a fresh emitter.
func Program(prog *sast.Program) (string, error) {
	return New().EmitProgram(prog)
}

// EmitProgram renders the given program.  On failure no partial text is
// returned: the first emit error aborts the whole rendering.
func (e *Emitter) EmitProgram(prog *sast.Program) (out string, err error) {
	defer report.CatchEmitErrors(&err)

	// Build the function table and reference set before rendering anything.
	e.collectProgram(prog)

	// Render the entry point first: definition splicing is deferred until
	// assembly, so rendering order does not affect output order.
	entry := e.emitEntryPoint(prog)

	var b strings.Builder

	// Global declarations, insertion order preserved.
	for _, g := range prog.Globals {
		b.WriteString(g.Type.Target() + " " + g.Name + ";\n")
	}

	// Referenced definitions precede the entry point even though they are
	// discovered while walking a body that textually follows them.
	for _, def := range e.emitDefinitions() {
		b.WriteString(def + "\n\n")
	}

	b.WriteString(entry + "\n")

	return b.String(), nil
}

// emitEntryPoint renders the program's top-level statement list as the body
// of the designated entry point.
func (e *Emitter) emitEntryPoint(prog *sast.Program) string {
	body := e.emitBlockBody(1, prog.Body)
	if body == "" {
		return "void main() {}"
	}

	return "void main() {\n" + body + "\n}"
}

// emitDefinitions renders every referenced function plus every discovered
// class, then normalizes the result: duplicates collapse and the definitions
// are put in lexicographic order of their rendered text so output is stable
// regardless of discovery order.
func (e *Emitter) emitDefinitions() []string {
	var defs []string

	for name := range e.referenced {
		if fd, ok := e.funcs[name]; ok {
			defs = append(defs, e.emitFuncDef(fd))
		}
	}

	for _, cd := range e.classes {
		defs = append(defs, e.emitClassDef(cd))
	}

	sort.Strings(defs)

	// Collapse identical rendered definitions.
	normalized := defs[:0]
	for i, def := range defs {
		if i == 0 || defs[i-1] != def {
			normalized = append(normalized, def)
		}
	}

	return normalized
}

// indent returns the indentation run for the given nesting depth.
func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
