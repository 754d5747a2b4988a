package sast

import "gradc/types"

// Expr is the interface implemented by all checked expression nodes.  A
// checked expression is a pair of (node, inferred static type): the type is
// always the one the checker computed, which may differ from the runtime type
// a dynamically-typed value carries.  Cast nodes mark the places where the
// two meet.
type Expr interface {
	// Type is the inferred static type of the expression.
	Type() types.Type
}

// ExprBase is the base struct for all expression nodes.
type ExprBase struct {
	typ types.Type
}

// NewExprBase creates a new expression base with the given inferred type.
func NewExprBase(typ types.Type) ExprBase {
	return ExprBase{typ: typ}
}

func (eb *ExprBase) Type() types.Type {
	return eb.typ
}

// -----------------------------------------------------------------------------

// BinaryExpr represents a binary operator application.
type BinaryExpr struct {
	ExprBase

	Lhs Expr

	// The operator lexeme, eg. `+`.
	Op string

	Rhs Expr
}

// UnaryExpr represents a unary operator application.
type UnaryExpr struct {
	ExprBase

	// The operator lexeme, eg. `!`.
	Op string

	Operand Expr
}

// Literal represents a single literal value.  The value is stored as the
// lexeme the front end produced for it.
type Literal struct {
	ExprBase

	Value string
}

// Identifier represents a named value reference.
type Identifier struct {
	ExprBase

	Name string
}

// -----------------------------------------------------------------------------

// CallExpr represents a function call.  The callee is an expression: either a
// plain identifier or a nested call in the higher-order case.  FuncName is
// the stable identifier of the callee's declaration in the program's function
// table; it is empty when the callee is not a statically-known function (a
// dynamically-typed call site).
type CallExpr struct {
	ExprBase

	Callee Expr
	Args   []Expr

	FuncName string
}

// MethodCall represents a method invocation.  Reserved: the checker never
// produces this node.
type MethodCall struct {
	ExprBase

	Recv       Expr
	MethodName string
	Args       []Expr
}

// FieldAccess represents a field access.  Reserved: the checker never
// produces this node.
type FieldAccess struct {
	ExprBase

	Root      Expr
	FieldName string
}

// -----------------------------------------------------------------------------

// ListLit represents a list literal.
type ListLit struct {
	ExprBase

	Elems []Expr

	// The element type of the list.
	ElemType types.Type
}

// EmptyExpr represents the absence of an expression in a grammatical slot
// that requires one, such as the value of a bare return.
type EmptyExpr struct {
	ExprBase
}

// IndexExpr represents an indexed access.  Reserved: the checker never
// produces this node.
type IndexExpr struct {
	ExprBase

	Root  Expr
	Index Expr
}

// SliceExpr represents a slice access.  Reserved: the checker never produces
// this node.
type SliceExpr struct {
	ExprBase

	Root  Expr
	Start Expr
	End   Expr
}

// -----------------------------------------------------------------------------

// CastExpr represents a gradual-typing coercion inserted by the checker:
// either a narrowing runtime check or a widening box.  The destination type
// is also the expression's inferred type.
type CastExpr struct {
	ExprBase

	SrcType  types.Type
	DestType types.Type

	Src Expr
}
