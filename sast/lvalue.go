package sast

// LValue is the interface implemented by all assignment targets.
type LValue interface {
	lvalueNode()
}

// LValueBase is the base struct for all lvalue nodes.
type LValueBase struct{}

func (LValueBase) lvalueNode() {}

// VarTarget is a plain variable assignment target.
type VarTarget struct {
	LValueBase

	Name string
}

// IndexTarget is an indexed-element assignment target.  Reserved: the checker
// never produces this node.
type IndexTarget struct {
	LValueBase

	Root  Expr
	Index Expr
}

// SliceTarget is a slice assignment target.  Reserved: the checker never
// produces this node.
type SliceTarget struct {
	LValueBase

	Root  Expr
	Start Expr
	End   Expr
}
