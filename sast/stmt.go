package sast

import "gradc/types"

// Stmt is the interface implemented by all checked statement nodes.
type Stmt interface {
	stmtNode()
}

// StmtBase is the base struct for all statement nodes.
type StmtBase struct{}

func (StmtBase) stmtNode() {}

// -----------------------------------------------------------------------------

// FuncDef represents a function definition statement.  Definitions carry no
// textual form where they occur: the emitter collects them into the program's
// function table and splices them in ahead of the entry point.
type FuncDef struct {
	StmtBase

	Decl *FuncDecl
}

// Block represents an ordered statement sequence.  A block's statement list
// has no implicit terminal value.
type Block struct {
	StmtBase

	Stmts []Stmt
}

// ExprStmt represents an expression evaluated for its effects.
type ExprStmt struct {
	StmtBase

	Expr Expr
}

// IfStmt represents a conditional.  Else is a *NopStmt when the source had no
// else branch.
type IfStmt struct {
	StmtBase

	Cond Expr
	Then Stmt
	Else Stmt
}

// -----------------------------------------------------------------------------

// ForEachStmt represents a by-value iteration over a sequence.
type ForEachStmt struct {
	StmtBase

	// The loop variable binding.
	Var Binding

	// The sequence being iterated.
	Seq Expr

	Body Stmt
}

// RangeStmt represents a counting loop from 0 up to an exclusive bound,
// incrementing by 1.
type RangeStmt struct {
	StmtBase

	// The loop variable binding.  The induction variable is always emitted as
	// an integer counter regardless of this binding's recorded type.
	Var Binding

	// The exclusive upper bound.
	Bound Expr

	Body Stmt
}

// WhileStmt represents a while loop.
type WhileStmt struct {
	StmtBase

	Cond Expr
	Body Stmt
}

// ReturnStmt represents a return statement.  Value is an *EmptyExpr for a
// bare return.
type ReturnStmt struct {
	StmtBase

	Value Expr
}

// -----------------------------------------------------------------------------

// ClassDef represents a class definition.  Reserved: the checker accepts the
// syntax but never produces full class semantics.
type ClassDef struct {
	StmtBase

	Name string
	Body Stmt
}

// AssignStmt represents an assignment of one expression to one or more
// lvalues.  Multiple targets denote a destructuring assignment.
type AssignStmt struct {
	StmtBase

	Targets []LValue
	RHS     Expr
}

// BoxStmt is the internal boxing/unboxing marker inserted by the checker when
// control-flow branches with divergent static types merge, or when a
// dynamically-typed call site requires coercion.  It carries no textual form
// in the target language: it records that the named variable's runtime
// representation changes from SrcType to DestType at this point.
type BoxStmt struct {
	StmtBase

	VarName  string
	SrcType  types.Type
	DestType types.Type
}

// StagedStmt brackets a body with setup and teardown statements.  Only the
// body is significant to emitted code shape; entry and exit are a reserved
// instrumentation hook.
type StagedStmt struct {
	StmtBase

	Entry Stmt
	Body  Stmt
	Exit  Stmt
}

// -----------------------------------------------------------------------------

// PrintStmt represents a print statement.
type PrintStmt struct {
	StmtBase

	Value Expr
}

// TypeOfStmt represents a type-introspection statement: it prints the runtime
// type of its expression.
type TypeOfStmt struct {
	StmtBase

	Value Expr
}

// ContinueStmt represents a continue statement.
type ContinueStmt struct {
	StmtBase
}

// BreakStmt represents a break statement.
type BreakStmt struct {
	StmtBase
}

// NopStmt represents a no-op: it renders as nothing.
type NopStmt struct {
	StmtBase
}
