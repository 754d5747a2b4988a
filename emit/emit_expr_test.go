package emit

import (
	"strings"
	"testing"

	"gradc/sast"
	"gradc/types"
)

func TestExprBinaryRendersFlat(t *testing.T) {
	// No precedence-driven parenthesization: operands render as-is.
	expr := &sast.BinaryExpr{
		ExprBase: sast.NewExprBase(types.PrimTypeInt),
		Lhs:      ident("x", types.PrimTypeInt),
		Op:       "+",
		Rhs: &sast.BinaryExpr{
			ExprBase: sast.NewExprBase(types.PrimTypeInt),
			Lhs:      ident("y", types.PrimTypeInt),
			Op:       "*",
			Rhs:      intLit("2"),
		},
	}

	if out := New().emitExpr(expr); out != "x + y * 2" {
		t.Fatalf("binary expression rendered as %q", out)
	}
}

func TestExprUnary(t *testing.T) {
	expr := &sast.UnaryExpr{
		ExprBase: sast.NewExprBase(types.PrimTypeBool),
		Op:       "!",
		Operand:  ident("b", types.PrimTypeBool),
	}

	if out := New().emitExpr(expr); out != "!b" {
		t.Fatalf("unary expression rendered as %q", out)
	}
}

func TestExprListLiteral(t *testing.T) {
	expr := &sast.ListLit{
		ExprBase: sast.NewExprBase(&types.ListType{ElemType: types.PrimTypeInt}),
		Elems:    []sast.Expr{intLit("1"), intLit("2"), intLit("3")},
		ElemType: types.PrimTypeInt,
	}

	if out := New().emitExpr(expr); out != "{1, 2, 3}" {
		t.Fatalf("list literal rendered as %q", out)
	}
}

func TestExprEmptyRendersNothing(t *testing.T) {
	expr := &sast.EmptyExpr{ExprBase: sast.NewExprBase(types.PrimTypeUnit)}

	if out := New().emitExpr(expr); out != "" {
		t.Fatalf("empty expression rendered as %q", out)
	}
}

func TestExprCastUsesBothTypeNames(t *testing.T) {
	expr := &sast.CastExpr{
		ExprBase: sast.NewExprBase(types.DynType{}),
		SrcType:  types.PrimTypeInt,
		DestType: types.DynType{},
		Src:      ident("x", types.PrimTypeInt),
	}

	if out := New().emitExpr(expr); out != "cast<int, dyn>(x)" {
		t.Fatalf("cast rendered as %q", out)
	}
}

func TestExprNestedCallCallee(t *testing.T) {
	// A higher-order call site: the callee is itself a call.
	inner := callTo("f", &types.FuncType{ReturnType: types.PrimTypeInt}, intLit("1"))
	outer := &sast.CallExpr{
		ExprBase: sast.NewExprBase(types.PrimTypeInt),
		Callee:   inner,
		Args:     []sast.Expr{intLit("2")},
	}

	if out := New().emitExpr(outer); out != "f(1)(2)" {
		t.Fatalf("nested call rendered as %q", out)
	}
}

func TestExprReservedConstructsRejected(t *testing.T) {
	base := sast.NewExprBase(types.DynType{})
	root := ident("obj", types.DynType{})

	reserved := map[string]sast.Expr{
		"method call":  &sast.MethodCall{ExprBase: base, Recv: root, MethodName: "m"},
		"field access": &sast.FieldAccess{ExprBase: base, Root: root, FieldName: "f"},
		"index":        &sast.IndexExpr{ExprBase: base, Root: root, Index: intLit("0")},
		"slice":        &sast.SliceExpr{ExprBase: base, Root: root, Start: intLit("0"), End: intLit("1")},
	}

	for label, expr := range reserved {
		prog := &sast.Program{Body: []sast.Stmt{&sast.ExprStmt{Expr: expr}}}

		out, err := Program(prog)
		if err == nil {
			t.Fatalf("%s: expected an unsupported-construct error", label)
		}

		if out != "" {
			t.Fatalf("%s: expected no partial output, got %q", label, out)
		}

		if !strings.Contains(err.Error(), "unsupported construct") {
			t.Fatalf("%s: unexpected error message: %v", label, err)
		}
	}
}
