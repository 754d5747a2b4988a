// Package codec implements the on-disk JSON form of a checked Grad program.
// The front end serializes the tree it checked; gradc decodes it here before
// rendering.  Every node is a tagged object: the `kind` field selects the
// variant and the remaining fields are variant specific.
package codec

import (
	"encoding/json"
	"fmt"

	"gradc/sast"
	"gradc/types"
)

// DecodeProgram decodes a checked program from its JSON form.
func DecodeProgram(data []byte) (*sast.Program, error) {
	var jp struct {
		Globals []jsonBinding     `json:"globals"`
		Body    []json.RawMessage `json:"body"`
	}

	if err := json.Unmarshal(data, &jp); err != nil {
		return nil, fmt.Errorf("malformed program: %s", err.Error())
	}

	prog := &sast.Program{}

	for _, jb := range jp.Globals {
		b, err := decodeBinding(jb)
		if err != nil {
			return nil, err
		}

		prog.Globals = append(prog.Globals, b)
	}

	for _, raw := range jp.Body {
		s, err := decodeStmt(raw)
		if err != nil {
			return nil, err
		}

		prog.Body = append(prog.Body, s)
	}

	return prog, nil
}

// -----------------------------------------------------------------------------

type jsonBinding struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

func decodeBinding(jb jsonBinding) (sast.Binding, error) {
	typ, err := decodeType(jb.Type)
	if err != nil {
		return sast.Binding{}, err
	}

	return sast.Binding{Name: jb.Name, Type: typ}, nil
}

func decodeBindings(jbs []jsonBinding) ([]sast.Binding, error) {
	var bindings []sast.Binding

	for _, jb := range jbs {
		b, err := decodeBinding(jb)
		if err != nil {
			return nil, err
		}

		bindings = append(bindings, b)
	}

	return bindings, nil
}

// -----------------------------------------------------------------------------

func decodeType(raw json.RawMessage) (types.Type, error) {
	var env struct {
		Kind   string            `json:"kind"`
		Elem   json.RawMessage   `json:"elem"`
		Params []json.RawMessage `json:"params"`
		Return json.RawMessage   `json:"return"`
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed type: %s", err.Error())
	}

	switch env.Kind {
	case "unit":
		return types.PrimTypeUnit, nil
	case "bool":
		return types.PrimTypeBool, nil
	case "int":
		return types.PrimTypeInt, nil
	case "float":
		return types.PrimTypeFloat, nil
	case "string":
		return types.PrimTypeString, nil
	case "dyn":
		return types.DynType{}, nil
	case "list":
		elem, err := decodeType(env.Elem)
		if err != nil {
			return nil, err
		}

		return &types.ListType{ElemType: elem}, nil
	case "func":
		var params []types.Type
		for _, p := range env.Params {
			pt, err := decodeType(p)
			if err != nil {
				return nil, err
			}

			params = append(params, pt)
		}

		ret, err := decodeType(env.Return)
		if err != nil {
			return nil, err
		}

		return &types.FuncType{ParamTypes: params, ReturnType: ret}, nil
	default:
		return nil, fmt.Errorf("unknown type kind `%s`", env.Kind)
	}
}

// -----------------------------------------------------------------------------

func decodeExpr(raw json.RawMessage) (sast.Expr, error) {
	var env struct {
		Kind string          `json:"kind"`
		Type json.RawMessage `json:"type"`

		Lhs     json.RawMessage   `json:"lhs"`
		Op      string            `json:"op"`
		Rhs     json.RawMessage   `json:"rhs"`
		Operand json.RawMessage   `json:"operand"`
		Value   string            `json:"value"`
		Name    string            `json:"name"`
		Callee  json.RawMessage   `json:"callee"`
		Args    []json.RawMessage `json:"args"`
		Func    string            `json:"func"`
		Recv    json.RawMessage   `json:"recv"`
		Root    json.RawMessage   `json:"root"`
		Elems   []json.RawMessage `json:"elems"`
		Elem    json.RawMessage   `json:"elem"`
		Index   json.RawMessage   `json:"index"`
		Start   json.RawMessage   `json:"start"`
		End     json.RawMessage   `json:"end"`
		From    json.RawMessage   `json:"from"`
		To      json.RawMessage   `json:"to"`
		Src     json.RawMessage   `json:"src"`
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed expression: %s", err.Error())
	}

	typ, err := decodeType(env.Type)
	if err != nil {
		return nil, err
	}

	base := sast.NewExprBase(typ)

	switch env.Kind {
	case "binary":
		lhs, err := decodeExpr(env.Lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := decodeExpr(env.Rhs)
		if err != nil {
			return nil, err
		}

		return &sast.BinaryExpr{ExprBase: base, Lhs: lhs, Op: env.Op, Rhs: rhs}, nil
	case "unary":
		operand, err := decodeExpr(env.Operand)
		if err != nil {
			return nil, err
		}

		return &sast.UnaryExpr{ExprBase: base, Op: env.Op, Operand: operand}, nil
	case "literal":
		return &sast.Literal{ExprBase: base, Value: env.Value}, nil
	case "ident":
		return &sast.Identifier{ExprBase: base, Name: env.Name}, nil
	case "call":
		callee, err := decodeExpr(env.Callee)
		if err != nil {
			return nil, err
		}

		args, err := decodeExprs(env.Args)
		if err != nil {
			return nil, err
		}

		return &sast.CallExpr{ExprBase: base, Callee: callee, Args: args, FuncName: env.Func}, nil
	case "method":
		recv, err := decodeExpr(env.Recv)
		if err != nil {
			return nil, err
		}

		args, err := decodeExprs(env.Args)
		if err != nil {
			return nil, err
		}

		return &sast.MethodCall{ExprBase: base, Recv: recv, MethodName: env.Name, Args: args}, nil
	case "field":
		root, err := decodeExpr(env.Root)
		if err != nil {
			return nil, err
		}

		return &sast.FieldAccess{ExprBase: base, Root: root, FieldName: env.Name}, nil
	case "list":
		elems, err := decodeExprs(env.Elems)
		if err != nil {
			return nil, err
		}

		elemType, err := decodeType(env.Elem)
		if err != nil {
			return nil, err
		}

		return &sast.ListLit{ExprBase: base, Elems: elems, ElemType: elemType}, nil
	case "empty":
		return &sast.EmptyExpr{ExprBase: base}, nil
	case "index":
		root, err := decodeExpr(env.Root)
		if err != nil {
			return nil, err
		}

		index, err := decodeExpr(env.Index)
		if err != nil {
			return nil, err
		}

		return &sast.IndexExpr{ExprBase: base, Root: root, Index: index}, nil
	case "slice":
		root, err := decodeExpr(env.Root)
		if err != nil {
			return nil, err
		}

		start, err := decodeExpr(env.Start)
		if err != nil {
			return nil, err
		}

		end, err := decodeExpr(env.End)
		if err != nil {
			return nil, err
		}

		return &sast.SliceExpr{ExprBase: base, Root: root, Start: start, End: end}, nil
	case "cast":
		from, err := decodeType(env.From)
		if err != nil {
			return nil, err
		}

		to, err := decodeType(env.To)
		if err != nil {
			return nil, err
		}

		src, err := decodeExpr(env.Src)
		if err != nil {
			return nil, err
		}

		return &sast.CastExpr{ExprBase: base, SrcType: from, DestType: to, Src: src}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind `%s`", env.Kind)
	}
}

func decodeExprs(raws []json.RawMessage) ([]sast.Expr, error) {
	var exprs []sast.Expr

	for _, raw := range raws {
		expr, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, expr)
	}

	return exprs, nil
}
