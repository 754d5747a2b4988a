package codec

import (
	"encoding/json"
	"fmt"

	"gradc/sast"
	"gradc/types"
)

// EncodeProgram encodes a checked program into its JSON form.  The encoding
// round-trips through DecodeProgram.
func EncodeProgram(prog *sast.Program) ([]byte, error) {
	globals := []interface{}{}
	for _, g := range prog.Globals {
		jb, err := encodeBinding(g)
		if err != nil {
			return nil, err
		}

		globals = append(globals, jb)
	}

	body := []interface{}{}
	for _, s := range prog.Body {
		js, err := encodeStmt(s)
		if err != nil {
			return nil, err
		}

		body = append(body, js)
	}

	return json.MarshalIndent(map[string]interface{}{
		"globals": globals,
		"body":    body,
	}, "", "  ")
}

func encodeBinding(b sast.Binding) (interface{}, error) {
	typ, err := encodeType(b.Type)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"name": b.Name, "type": typ}, nil
}

func encodeBindings(bs []sast.Binding) ([]interface{}, error) {
	encoded := []interface{}{}
	for _, b := range bs {
		jb, err := encodeBinding(b)
		if err != nil {
			return nil, err
		}

		encoded = append(encoded, jb)
	}

	return encoded, nil
}

// -----------------------------------------------------------------------------

func encodeType(t types.Type) (interface{}, error) {
	switch v := t.(type) {
	case types.PrimitiveType:
		return map[string]interface{}{"kind": v.Repr()}, nil
	case types.DynType:
		return map[string]interface{}{"kind": "dyn"}, nil
	case *types.ListType:
		elem, err := encodeType(v.ElemType)
		if err != nil {
			return nil, err
		}

		return map[string]interface{}{"kind": "list", "elem": elem}, nil
	case *types.FuncType:
		params := []interface{}{}
		for _, pt := range v.ParamTypes {
			jp, err := encodeType(pt)
			if err != nil {
				return nil, err
			}

			params = append(params, jp)
		}

		ret, err := encodeType(v.ReturnType)
		if err != nil {
			return nil, err
		}

		return map[string]interface{}{"kind": "func", "params": params, "return": ret}, nil
	default:
		return nil, fmt.Errorf("unencodable type: %T", t)
	}
}

// -----------------------------------------------------------------------------

func encodeExpr(expr sast.Expr) (interface{}, error) {
	typ, err := encodeType(expr.Type())
	if err != nil {
		return nil, err
	}

	node := map[string]interface{}{"type": typ}

	switch v := expr.(type) {
	case *sast.BinaryExpr:
		node["kind"] = "binary"
		node["op"] = v.Op

		if node["lhs"], err = encodeExpr(v.Lhs); err != nil {
			return nil, err
		}

		if node["rhs"], err = encodeExpr(v.Rhs); err != nil {
			return nil, err
		}
	case *sast.UnaryExpr:
		node["kind"] = "unary"
		node["op"] = v.Op

		if node["operand"], err = encodeExpr(v.Operand); err != nil {
			return nil, err
		}
	case *sast.Literal:
		node["kind"] = "literal"
		node["value"] = v.Value
	case *sast.Identifier:
		node["kind"] = "ident"
		node["name"] = v.Name
	case *sast.CallExpr:
		node["kind"] = "call"
		node["func"] = v.FuncName

		if node["callee"], err = encodeExpr(v.Callee); err != nil {
			return nil, err
		}

		if node["args"], err = encodeExprs(v.Args); err != nil {
			return nil, err
		}
	case *sast.MethodCall:
		node["kind"] = "method"
		node["name"] = v.MethodName

		if node["recv"], err = encodeExpr(v.Recv); err != nil {
			return nil, err
		}

		if node["args"], err = encodeExprs(v.Args); err != nil {
			return nil, err
		}
	case *sast.FieldAccess:
		node["kind"] = "field"
		node["name"] = v.FieldName

		if node["root"], err = encodeExpr(v.Root); err != nil {
			return nil, err
		}
	case *sast.ListLit:
		node["kind"] = "list"

		if node["elems"], err = encodeExprs(v.Elems); err != nil {
			return nil, err
		}

		if node["elem"], err = encodeType(v.ElemType); err != nil {
			return nil, err
		}
	case *sast.EmptyExpr:
		node["kind"] = "empty"
	case *sast.IndexExpr:
		node["kind"] = "index"

		if node["root"], err = encodeExpr(v.Root); err != nil {
			return nil, err
		}

		if node["index"], err = encodeExpr(v.Index); err != nil {
			return nil, err
		}
	case *sast.SliceExpr:
		node["kind"] = "slice"

		if node["root"], err = encodeExpr(v.Root); err != nil {
			return nil, err
		}

		if node["start"], err = encodeExpr(v.Start); err != nil {
			return nil, err
		}

		if node["end"], err = encodeExpr(v.End); err != nil {
			return nil, err
		}
	case *sast.CastExpr:
		node["kind"] = "cast"

		if node["from"], err = encodeType(v.SrcType); err != nil {
			return nil, err
		}

		if node["to"], err = encodeType(v.DestType); err != nil {
			return nil, err
		}

		if node["src"], err = encodeExpr(v.Src); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unencodable expression: %T", expr)
	}

	return node, nil
}

func encodeExprs(exprs []sast.Expr) ([]interface{}, error) {
	encoded := []interface{}{}
	for _, expr := range exprs {
		je, err := encodeExpr(expr)
		if err != nil {
			return nil, err
		}

		encoded = append(encoded, je)
	}

	return encoded, nil
}

// -----------------------------------------------------------------------------

func encodeStmt(s sast.Stmt) (interface{}, error) {
	node := map[string]interface{}{}

	var err error

	switch v := s.(type) {
	case *sast.FuncDef:
		node["kind"] = "func"

		if node["decl"], err = encodeFuncDecl(v.Decl); err != nil {
			return nil, err
		}
	case *sast.Block:
		node["kind"] = "block"

		stmts := []interface{}{}
		for _, child := range v.Stmts {
			js, err := encodeStmt(child)
			if err != nil {
				return nil, err
			}

			stmts = append(stmts, js)
		}

		node["stmts"] = stmts
	case *sast.ExprStmt:
		node["kind"] = "expr"

		if node["expr"], err = encodeExpr(v.Expr); err != nil {
			return nil, err
		}
	case *sast.IfStmt:
		node["kind"] = "if"

		if node["cond"], err = encodeExpr(v.Cond); err != nil {
			return nil, err
		}

		if node["then"], err = encodeStmt(v.Then); err != nil {
			return nil, err
		}

		if node["else"], err = encodeStmt(v.Else); err != nil {
			return nil, err
		}
	case *sast.ForEachStmt:
		node["kind"] = "foreach"

		if node["var"], err = encodeBinding(v.Var); err != nil {
			return nil, err
		}

		if node["seq"], err = encodeExpr(v.Seq); err != nil {
			return nil, err
		}

		if node["body"], err = encodeStmt(v.Body); err != nil {
			return nil, err
		}
	case *sast.RangeStmt:
		node["kind"] = "range"

		if node["var"], err = encodeBinding(v.Var); err != nil {
			return nil, err
		}

		if node["bound"], err = encodeExpr(v.Bound); err != nil {
			return nil, err
		}

		if node["body"], err = encodeStmt(v.Body); err != nil {
			return nil, err
		}
	case *sast.WhileStmt:
		node["kind"] = "while"

		if node["cond"], err = encodeExpr(v.Cond); err != nil {
			return nil, err
		}

		if node["body"], err = encodeStmt(v.Body); err != nil {
			return nil, err
		}
	case *sast.ReturnStmt:
		node["kind"] = "return"

		if node["value"], err = encodeExpr(v.Value); err != nil {
			return nil, err
		}
	case *sast.ClassDef:
		node["kind"] = "class"
		node["name"] = v.Name

		if node["body"], err = encodeStmt(v.Body); err != nil {
			return nil, err
		}
	case *sast.AssignStmt:
		node["kind"] = "assign"

		targets := []interface{}{}
		for _, target := range v.Targets {
			jt, err := encodeLValue(target)
			if err != nil {
				return nil, err
			}

			targets = append(targets, jt)
		}

		node["targets"] = targets

		if node["rhs"], err = encodeExpr(v.RHS); err != nil {
			return nil, err
		}
	case *sast.BoxStmt:
		node["kind"] = "box"
		node["name"] = v.VarName

		if node["from"], err = encodeType(v.SrcType); err != nil {
			return nil, err
		}

		if node["to"], err = encodeType(v.DestType); err != nil {
			return nil, err
		}
	case *sast.StagedStmt:
		node["kind"] = "staged"

		if node["entry"], err = encodeStmt(v.Entry); err != nil {
			return nil, err
		}

		if node["body"], err = encodeStmt(v.Body); err != nil {
			return nil, err
		}

		if node["exit"], err = encodeStmt(v.Exit); err != nil {
			return nil, err
		}
	case *sast.PrintStmt:
		node["kind"] = "print"

		if node["value"], err = encodeExpr(v.Value); err != nil {
			return nil, err
		}
	case *sast.TypeOfStmt:
		node["kind"] = "typeof"

		if node["value"], err = encodeExpr(v.Value); err != nil {
			return nil, err
		}
	case *sast.ContinueStmt:
		node["kind"] = "continue"
	case *sast.BreakStmt:
		node["kind"] = "break"
	case *sast.NopStmt:
		node["kind"] = "nop"
	default:
		return nil, fmt.Errorf("unencodable statement: %T", s)
	}

	return node, nil
}

func encodeFuncDecl(decl *sast.FuncDecl) (interface{}, error) {
	ret, err := encodeType(decl.ReturnType)
	if err != nil {
		return nil, err
	}

	params, err := encodeBindings(decl.Params)
	if err != nil {
		return nil, err
	}

	locals, err := encodeBindings(decl.Locals)
	if err != nil {
		return nil, err
	}

	body, err := encodeStmt(decl.Body)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"name":   decl.Name,
		"return": ret,
		"params": params,
		"locals": locals,
		"body":   body,
	}, nil
}

func encodeLValue(lv sast.LValue) (interface{}, error) {
	node := map[string]interface{}{}

	var err error

	switch v := lv.(type) {
	case *sast.VarTarget:
		node["kind"] = "var"
		node["name"] = v.Name
	case *sast.IndexTarget:
		node["kind"] = "index"

		if node["root"], err = encodeExpr(v.Root); err != nil {
			return nil, err
		}

		if node["index"], err = encodeExpr(v.Index); err != nil {
			return nil, err
		}
	case *sast.SliceTarget:
		node["kind"] = "slice"

		if node["root"], err = encodeExpr(v.Root); err != nil {
			return nil, err
		}

		if node["start"], err = encodeExpr(v.Start); err != nil {
			return nil, err
		}

		if node["end"], err = encodeExpr(v.End); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unencodable lvalue: %T", lv)
	}

	return node, nil
}
