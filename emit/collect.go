package emit

import "gradc/sast"

// collectProgram builds the emitter's function table, class list, and
// reference set.  The first pass records every function definition in the
// tree; the second marks the definitions transitively reachable from the
// program body.  A definition only reachable through a never-called function
// produces no output.
func (e *Emitter) collectProgram(prog *sast.Program) {
	for _, s := range prog.Body {
		e.collectStmt(s)
	}

	for _, s := range prog.Body {
		e.markStmt(s)
	}
}

// collectStmt records the function definitions of a statement subtree into
// the table.  The first definition recorded for a name wins: repeated
// definitions of the same function collapse to one table entry.  The table
// covers the whole tree, reachable or not, so that marking can resolve any
// call site it encounters; classes are registered during marking instead,
// since they have no call sites of their own.
func (e *Emitter) collectStmt(s sast.Stmt) {
	switch v := s.(type) {
	case *sast.FuncDef:
		if _, ok := e.funcs[v.Decl.Name]; !ok {
			e.funcs[v.Decl.Name] = v
		}

		// Definitions may nest.
		e.collectStmt(v.Decl.Body)
	case *sast.ClassDef:
		e.collectStmt(v.Body)
	case *sast.Block:
		for _, child := range v.Stmts {
			e.collectStmt(child)
		}
	case *sast.IfStmt:
		e.collectStmt(v.Then)
		e.collectStmt(v.Else)
	case *sast.ForEachStmt:
		e.collectStmt(v.Body)
	case *sast.RangeStmt:
		e.collectStmt(v.Body)
	case *sast.WhileStmt:
		e.collectStmt(v.Body)
	case *sast.StagedStmt:
		e.collectStmt(v.Entry)
		e.collectStmt(v.Body)
		e.collectStmt(v.Exit)
	}
}

// markStmt walks a statement subtree marking every function referenced by a
// call site and registering every class it passes.  It does not descend into
// function bodies at their definition site: a function's own references only
// count once the function itself is referenced, and likewise a class inside
// an unreferenced function is never registered.
func (e *Emitter) markStmt(s sast.Stmt) {
	switch v := s.(type) {
	case *sast.ClassDef:
		for _, cd := range e.classes {
			if cd.Name == v.Name {
				return
			}
		}

		e.classes = append(e.classes, v)
		e.markStmt(v.Body)
	case *sast.Block:
		for _, child := range v.Stmts {
			e.markStmt(child)
		}
	case *sast.ExprStmt:
		e.markExpr(v.Expr)
	case *sast.IfStmt:
		e.markExpr(v.Cond)
		e.markStmt(v.Then)
		e.markStmt(v.Else)
	case *sast.ForEachStmt:
		e.markExpr(v.Seq)
		e.markStmt(v.Body)
	case *sast.RangeStmt:
		e.markExpr(v.Bound)
		e.markStmt(v.Body)
	case *sast.WhileStmt:
		e.markExpr(v.Cond)
		e.markStmt(v.Body)
	case *sast.ReturnStmt:
		e.markExpr(v.Value)
	case *sast.AssignStmt:
		for _, target := range v.Targets {
			e.markLValue(target)
		}

		e.markExpr(v.RHS)
	case *sast.StagedStmt:
		e.markStmt(v.Entry)
		e.markStmt(v.Body)
		e.markStmt(v.Exit)
	case *sast.PrintStmt:
		e.markExpr(v.Value)
	case *sast.TypeOfStmt:
		e.markExpr(v.Value)
	}
}

// markExpr walks an expression subtree marking call references.
func (e *Emitter) markExpr(expr sast.Expr) {
	switch v := expr.(type) {
	case *sast.BinaryExpr:
		e.markExpr(v.Lhs)
		e.markExpr(v.Rhs)
	case *sast.UnaryExpr:
		e.markExpr(v.Operand)
	case *sast.CallExpr:
		if v.FuncName != "" && !e.referenced[v.FuncName] {
			e.referenced[v.FuncName] = true

			// A newly referenced function pulls in everything its own body
			// references.
			if fd, ok := e.funcs[v.FuncName]; ok {
				e.markStmt(fd.Decl.Body)
			}
		}

		e.markExpr(v.Callee)
		for _, arg := range v.Args {
			e.markExpr(arg)
		}
	case *sast.MethodCall:
		e.markExpr(v.Recv)
		for _, arg := range v.Args {
			e.markExpr(arg)
		}
	case *sast.FieldAccess:
		e.markExpr(v.Root)
	case *sast.ListLit:
		for _, elem := range v.Elems {
			e.markExpr(elem)
		}
	case *sast.IndexExpr:
		e.markExpr(v.Root)
		e.markExpr(v.Index)
	case *sast.SliceExpr:
		e.markExpr(v.Root)
		e.markExpr(v.Start)
		e.markExpr(v.End)
	case *sast.CastExpr:
		e.markExpr(v.Src)
	}
}

// markLValue walks an lvalue marking call references in any embedded
// expressions.
func (e *Emitter) markLValue(lv sast.LValue) {
	switch v := lv.(type) {
	case *sast.IndexTarget:
		e.markExpr(v.Root)
		e.markExpr(v.Index)
	case *sast.SliceTarget:
		e.markExpr(v.Root)
		e.markExpr(v.Start)
		e.markExpr(v.End)
	}
}
