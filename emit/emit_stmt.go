package emit

import (
	"strings"

	"gradc/report"
	"gradc/sast"
	"gradc/types"
	"gradc/util"
)

// emitStmt renders a statement at the given nesting depth.  The rendered text
// carries no leading indentation and no terminator on its first line; the
// enclosing block adds both.  Continuation lines of nested blocks are
// indented relative to depth.
//
// Definition statements, boxing markers, and no-ops render as empty text:
// their effect is either captured by the collection pass or is invisible in
// the target language.  The enclosing block drops empty renderings.
func (e *Emitter) emitStmt(depth int, s sast.Stmt) string {
	switch v := s.(type) {
	case *sast.Block:
		return e.emitBlockBody(depth, v.Stmts)
	case *sast.ExprStmt:
		return e.emitExpr(v.Expr)
	case *sast.IfStmt:
		// An absent else branch still renders its wrapper: the else block is
		// emitted unconditionally, as `{}` when its body is empty.
		return "if (" + e.emitExpr(v.Cond) + ") " + e.emitBraced(depth, v.Then) +
			" else " + e.emitBraced(depth, v.Else)
	case *sast.ForEachStmt:
		return "for (" + v.Var.Type.Target() + " " + v.Var.Name + " : " + e.emitExpr(v.Seq) + ") " +
			e.emitBraced(depth, v.Body)
	case *sast.RangeStmt:
		// The induction variable is always an integer counter, whatever type
		// the checker recorded for the loop binding.
		return "for (int " + v.Var.Name + " = 0; " + v.Var.Name + " < " + e.emitExpr(v.Bound) +
			"; " + v.Var.Name + "++) " + e.emitBraced(depth, v.Body)
	case *sast.WhileStmt:
		return "while (" + e.emitExpr(v.Cond) + ") " + e.emitBraced(depth, v.Body)
	case *sast.ReturnStmt:
		if value := e.emitExpr(v.Value); value != "" {
			return "return " + value
		}

		return "return"
	case *sast.AssignStmt:
		targets := util.Map(v.Targets, func(lv sast.LValue) string {
			return e.emitLValue(lv, v.RHS.Type())
		})

		return strings.Join(targets, ", ") + " = " + e.emitExpr(v.RHS)
	case *sast.PrintStmt:
		return "print(" + e.emitExpr(v.Value) + ")"
	case *sast.TypeOfStmt:
		return "print(typeof(" + e.emitExpr(v.Value) + "))"
	case *sast.BreakStmt:
		return "break"
	case *sast.ContinueStmt:
		return "continue"
	case *sast.StagedStmt:
		// Entry and exit are a reserved instrumentation hook: only the body
		// has a textual form.
		return e.emitStmt(depth, v.Body)
	case *sast.FuncDef, *sast.ClassDef, *sast.BoxStmt, *sast.NopStmt:
		// Invisible at this layer: definitions reach the output through the
		// dedicated definition renderers, markers have no textual form.
		return ""
	}

	report.ThrowEmitError("unrecognized statement: %T", s)
	return ""
}

// emitBlockBody renders a statement list as block content: empty renderings
// are dropped, each remaining statement gets the terminator, and every
// statement line is indented to depth.
func (e *Emitter) emitBlockBody(depth int, stmts []sast.Stmt) string {
	var lines []string

	for _, s := range stmts {
		if text := e.emitStmt(depth, s); text != "" {
			lines = append(lines, indent(depth)+text+";")
		}
	}

	return strings.Join(lines, "\n")
}

// emitBraced renders a statement as a brace-delimited block whose content
// sits one depth level in.
func (e *Emitter) emitBraced(depth int, s sast.Stmt) string {
	body := e.emitStmt(depth+1, s)
	if body == "" {
		return "{}"
	}

	return "{\n" + body + "\n" + indent(depth) + "}"
}

// emitLValue renders an assignment target.  The assignment's static type is
// passed as context; only reserved target shapes would consume it.
func (e *Emitter) emitLValue(lv sast.LValue, typ types.Type) string {
	switch v := lv.(type) {
	case *sast.VarTarget:
		return v.Name
	case *sast.IndexTarget:
		report.ThrowEmitError("unsupported construct: indexed assignment")
	case *sast.SliceTarget:
		report.ThrowEmitError("unsupported construct: slice assignment")
	}

	report.ThrowEmitError("unrecognized lvalue: %T", lv)
	return ""
}

// -----------------------------------------------------------------------------

// emitFuncDef renders a function definition for the definition section.  The
// statement must be a function definition node.
func (e *Emitter) emitFuncDef(s sast.Stmt) string {
	fd, ok := s.(*sast.FuncDef)
	if !ok {
		report.ThrowEmitError("expected a function definition, found %T", s)
	}

	decl := fd.Decl

	params := util.Map(decl.Params, func(b sast.Binding) string {
		return b.Type.Target() + " " + b.Name
	})

	sig := decl.ReturnType.Target() + " " + decl.Name + "(" + strings.Join(params, ", ") + ") "

	// Locals that exactly match a formal are already introduced by the
	// parameter list and are excluded from the declaration preamble.
	locals := filterLocals(decl.Locals, decl.Params)

	report.DisplayDebugMessage("locals "+decl.Name,
		strings.Join(util.Map(locals, func(b sast.Binding) string { return b.Name }), ", "))

	var lines []string
	for _, l := range locals {
		lines = append(lines, indent(1)+l.Type.Target()+" "+l.Name+";")
	}

	if body := e.emitStmt(1, decl.Body); body != "" {
		lines = append(lines, body)
	}

	if len(lines) == 0 {
		return sig + "{}"
	}

	return sig + "{\n" + strings.Join(lines, "\n") + "\n}"
}

// emitClassDef renders a class definition as a named aggregate type.  The
// statement must be a class definition node.
func (e *Emitter) emitClassDef(s sast.Stmt) string {
	cd, ok := s.(*sast.ClassDef)
	if !ok {
		report.ThrowEmitError("expected a class definition, found %T", s)
	}

	return "struct " + cd.Name + " " + e.emitBraced(0, cd.Body)
}

// filterLocals removes from locals every binding that matches a formal
// parameter exactly, by both name and type.
func filterLocals(locals, params []sast.Binding) []sast.Binding {
	return util.Filter(locals, func(l sast.Binding) bool {
		return !util.Any(params, func(p sast.Binding) bool {
			return l.Name == p.Name && types.Equals(l.Type, p.Type)
		})
	})
}
