package emit

import (
	"strings"
	"testing"

	"gradc/sast"
	"gradc/types"
)

// -----------------------------------------------------------------------------
// Tree-building helpers shared by the emit tests.

func intLit(value string) *sast.Literal {
	return &sast.Literal{ExprBase: sast.NewExprBase(types.PrimTypeInt), Value: value}
}

func ident(name string, typ types.Type) *sast.Identifier {
	return &sast.Identifier{ExprBase: sast.NewExprBase(typ), Name: name}
}

func callTo(name string, ret types.Type, args ...sast.Expr) *sast.CallExpr {
	sig := &types.FuncType{ReturnType: ret}
	for _, arg := range args {
		sig.ParamTypes = append(sig.ParamTypes, arg.Type())
	}

	return &sast.CallExpr{
		ExprBase: sast.NewExprBase(ret),
		Callee:   ident(name, sig),
		Args:     args,
		FuncName: name,
	}
}

func block(stmts ...sast.Stmt) *sast.Block {
	return &sast.Block{Stmts: stmts}
}

func defineFunc(name string, ret types.Type, params []sast.Binding, locals []sast.Binding, body *sast.Block) *sast.FuncDef {
	return &sast.FuncDef{Decl: &sast.FuncDecl{
		Name:       name,
		ReturnType: ret,
		Params:     params,
		Locals:     locals,
		Body:       body,
	}}
}

func mustEmit(t *testing.T, prog *sast.Program) string {
	t.Helper()

	out, err := Program(prog)
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	return out
}

// -----------------------------------------------------------------------------

func TestEmitEmptyProgram(t *testing.T) {
	out := mustEmit(t, &sast.Program{})

	if out != "void main() {}\n" {
		t.Fatalf("empty program rendered as %q", out)
	}
}

func TestEmitGlobalAssignAndPrint(t *testing.T) {
	prog := &sast.Program{
		Globals: []sast.Binding{{Name: "x", Type: types.PrimTypeInt}},
		Body: []sast.Stmt{
			&sast.AssignStmt{
				Targets: []sast.LValue{&sast.VarTarget{Name: "x"}},
				RHS: &sast.BinaryExpr{
					ExprBase: sast.NewExprBase(types.PrimTypeInt),
					Lhs:      intLit("1"),
					Op:       "+",
					Rhs:      intLit("2"),
				},
			},
			&sast.PrintStmt{Value: ident("x", types.PrimTypeInt)},
		},
	}

	want := "int x;\n" +
		"void main() {\n" +
		"  x = 1 + 2;\n" +
		"  print(x);\n" +
		"}\n"

	if out := mustEmit(t, prog); out != want {
		t.Fatalf("program rendered as %q, want %q", out, want)
	}
}

func TestEmitFunctionDefinitionPrecedesEntryPoint(t *testing.T) {
	f := defineFunc("f", types.PrimTypeInt,
		[]sast.Binding{{Name: "n", Type: types.PrimTypeInt}},
		[]sast.Binding{{Name: "n", Type: types.PrimTypeInt}},
		block(&sast.ReturnStmt{Value: ident("n", types.PrimTypeInt)}),
	)

	prog := &sast.Program{
		Body: []sast.Stmt{
			f,
			&sast.ExprStmt{Expr: callTo("f", types.PrimTypeInt, intLit("5"))},
		},
	}

	want := "int f(int n) {\n" +
		"  return n;\n" +
		"}\n" +
		"\n" +
		"void main() {\n" +
		"  f(5);\n" +
		"}\n"

	if out := mustEmit(t, prog); out != want {
		t.Fatalf("program rendered as %q, want %q", out, want)
	}
}

func TestEmitUncalledFunctionIsOmitted(t *testing.T) {
	f := defineFunc("f", types.PrimTypeUnit, nil, nil, block())

	prog := &sast.Program{
		Globals: []sast.Binding{{Name: "x", Type: types.PrimTypeInt}},
		Body: []sast.Stmt{
			f,
			&sast.PrintStmt{Value: ident("x", types.PrimTypeInt)},
		},
	}

	want := "int x;\n" +
		"void main() {\n" +
		"  print(x);\n" +
		"}\n"

	if out := mustEmit(t, prog); out != want {
		t.Fatalf("program with no call sites rendered as %q, want %q", out, want)
	}
}

func TestEmitRepeatedCallsProduceOneDefinition(t *testing.T) {
	f := defineFunc("f", types.PrimTypeInt,
		[]sast.Binding{{Name: "n", Type: types.PrimTypeInt}},
		[]sast.Binding{{Name: "n", Type: types.PrimTypeInt}},
		block(&sast.ReturnStmt{Value: ident("n", types.PrimTypeInt)}),
	)

	var body []sast.Stmt
	body = append(body, f)
	for i := 0; i < 4; i++ {
		body = append(body, &sast.ExprStmt{Expr: callTo("f", types.PrimTypeInt, intLit("5"))})
	}

	out := mustEmit(t, &sast.Program{Body: body})

	if n := strings.Count(out, "int f(int n)"); n != 1 {
		t.Fatalf("function f defined %d times in output:\n%s", n, out)
	}
}

func TestEmitDefinitionsSortedByRenderedText(t *testing.T) {
	g := defineFunc("g", types.PrimTypeUnit, nil, nil, block())
	f := defineFunc("f", types.PrimTypeUnit, nil, nil, block())

	// g is discovered first; f must still precede it in the output.
	prog := &sast.Program{
		Body: []sast.Stmt{
			g,
			f,
			&sast.ExprStmt{Expr: callTo("g", types.PrimTypeUnit)},
			&sast.ExprStmt{Expr: callTo("f", types.PrimTypeUnit)},
		},
	}

	out := mustEmit(t, prog)

	fAt := strings.Index(out, "void f()")
	gAt := strings.Index(out, "void g()")
	if fAt < 0 || gAt < 0 || fAt > gAt {
		t.Fatalf("definitions out of order (f at %d, g at %d):\n%s", fAt, gAt, out)
	}
}

func TestEmitDeterministic(t *testing.T) {
	build := func() *sast.Program {
		var body []sast.Stmt
		for _, name := range []string{"c", "a", "b"} {
			body = append(body, defineFunc(name, types.PrimTypeUnit, nil, nil, block()))
		}
		for _, name := range []string{"b", "c", "a"} {
			body = append(body, &sast.ExprStmt{Expr: callTo(name, types.PrimTypeUnit)})
		}

		return &sast.Program{Body: body}
	}

	first := mustEmit(t, build())
	for i := 0; i < 8; i++ {
		if out := mustEmit(t, build()); out != first {
			t.Fatalf("rendering not deterministic:\n%q\nvs\n%q", first, out)
		}
	}
}

func TestEmitTransitiveFunctionReferences(t *testing.T) {
	// helper is only called from inside outer; it must still be emitted.
	helper := defineFunc("helper", types.PrimTypeUnit, nil, nil, block())
	outer := defineFunc("outer", types.PrimTypeUnit, nil, nil,
		block(&sast.ExprStmt{Expr: callTo("helper", types.PrimTypeUnit)}))

	prog := &sast.Program{
		Body: []sast.Stmt{
			helper,
			outer,
			&sast.ExprStmt{Expr: callTo("outer", types.PrimTypeUnit)},
		},
	}

	out := mustEmit(t, prog)

	if !strings.Contains(out, "void helper()") {
		t.Fatalf("transitively referenced function missing from output:\n%s", out)
	}
}

func TestEmitRecursiveFunction(t *testing.T) {
	rec := defineFunc("rec", types.PrimTypeUnit, nil, nil,
		block(&sast.ExprStmt{Expr: callTo("rec", types.PrimTypeUnit)}))

	prog := &sast.Program{
		Body: []sast.Stmt{
			rec,
			&sast.ExprStmt{Expr: callTo("rec", types.PrimTypeUnit)},
		},
	}

	out := mustEmit(t, prog)

	if n := strings.Count(out, "void rec() {"); n != 1 {
		t.Fatalf("recursive function defined %d times in output:\n%s", n, out)
	}

	if n := strings.Count(out, "rec();"); n != 2 {
		t.Fatalf("expected a call site in the body and one in main, got %d:\n%s", n, out)
	}
}

func TestEmitInvisibleStatementsLeaveBlockEmpty(t *testing.T) {
	prog := &sast.Program{
		Body: []sast.Stmt{
			&sast.NopStmt{},
			&sast.BoxStmt{VarName: "x", SrcType: types.PrimTypeInt, DestType: types.DynType{}},
			&sast.NopStmt{},
		},
	}

	if out := mustEmit(t, prog); out != "void main() {}\n" {
		t.Fatalf("invisible statements rendered as %q", out)
	}
}

func TestEmitClassDefinition(t *testing.T) {
	prog := &sast.Program{
		Body: []sast.Stmt{
			&sast.ClassDef{
				Name: "Point",
				Body: block(&sast.NopStmt{}),
			},
		},
	}

	out := mustEmit(t, prog)

	if !strings.Contains(out, "struct Point {}") {
		t.Fatalf("class definition missing from output:\n%s", out)
	}
}

func TestEmitClassReachabilityFollowsFunctions(t *testing.T) {
	// A class inside a never-called function is omitted just like the
	// function itself; one inside a called function is emitted.
	dead := defineFunc("dead", types.PrimTypeUnit, nil, nil,
		block(&sast.ClassDef{Name: "Hidden", Body: block()}))
	live := defineFunc("live", types.PrimTypeUnit, nil, nil,
		block(&sast.ClassDef{Name: "Seen", Body: block()}))

	prog := &sast.Program{
		Body: []sast.Stmt{
			dead,
			live,
			&sast.ExprStmt{Expr: callTo("live", types.PrimTypeUnit)},
		},
	}

	out := mustEmit(t, prog)

	if strings.Contains(out, "struct Hidden") {
		t.Fatalf("class inside an uncalled function was emitted:\n%s", out)
	}

	if !strings.Contains(out, "struct Seen {}") {
		t.Fatalf("class inside a called function missing from output:\n%s", out)
	}
}
