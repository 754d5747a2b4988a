package codec

import (
	"encoding/json"
	"fmt"

	"gradc/sast"
)

func decodeStmt(raw json.RawMessage) (sast.Stmt, error) {
	var env struct {
		Kind string `json:"kind"`

		Decl    *jsonFuncDecl     `json:"decl"`
		Stmts   []json.RawMessage `json:"stmts"`
		Expr    json.RawMessage   `json:"expr"`
		Cond    json.RawMessage   `json:"cond"`
		Then    json.RawMessage   `json:"then"`
		Else    json.RawMessage   `json:"else"`
		Var     *jsonBinding      `json:"var"`
		Seq     json.RawMessage   `json:"seq"`
		Bound   json.RawMessage   `json:"bound"`
		Body    json.RawMessage   `json:"body"`
		Value   json.RawMessage   `json:"value"`
		Name    string            `json:"name"`
		Targets []json.RawMessage `json:"targets"`
		RHS     json.RawMessage   `json:"rhs"`
		From    json.RawMessage   `json:"from"`
		To      json.RawMessage   `json:"to"`
		Entry   json.RawMessage   `json:"entry"`
		Exit    json.RawMessage   `json:"exit"`
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed statement: %s", err.Error())
	}

	switch env.Kind {
	case "func":
		decl, err := decodeFuncDecl(env.Decl)
		if err != nil {
			return nil, err
		}

		return &sast.FuncDef{Decl: decl}, nil
	case "block":
		var stmts []sast.Stmt
		for _, rawStmt := range env.Stmts {
			s, err := decodeStmt(rawStmt)
			if err != nil {
				return nil, err
			}

			stmts = append(stmts, s)
		}

		return &sast.Block{Stmts: stmts}, nil
	case "expr":
		expr, err := decodeExpr(env.Expr)
		if err != nil {
			return nil, err
		}

		return &sast.ExprStmt{Expr: expr}, nil
	case "if":
		cond, err := decodeExpr(env.Cond)
		if err != nil {
			return nil, err
		}

		then, err := decodeStmt(env.Then)
		if err != nil {
			return nil, err
		}

		// A missing else decodes as a no-op branch.
		var elseStmt sast.Stmt = &sast.NopStmt{}
		if len(env.Else) > 0 {
			if elseStmt, err = decodeStmt(env.Else); err != nil {
				return nil, err
			}
		}

		return &sast.IfStmt{Cond: cond, Then: then, Else: elseStmt}, nil
	case "foreach":
		if env.Var == nil {
			return nil, fmt.Errorf("foreach statement missing its loop variable")
		}

		loopVar, err := decodeBinding(*env.Var)
		if err != nil {
			return nil, err
		}

		seq, err := decodeExpr(env.Seq)
		if err != nil {
			return nil, err
		}

		body, err := decodeStmt(env.Body)
		if err != nil {
			return nil, err
		}

		return &sast.ForEachStmt{Var: loopVar, Seq: seq, Body: body}, nil
	case "range":
		if env.Var == nil {
			return nil, fmt.Errorf("range statement missing its loop variable")
		}

		loopVar, err := decodeBinding(*env.Var)
		if err != nil {
			return nil, err
		}

		bound, err := decodeExpr(env.Bound)
		if err != nil {
			return nil, err
		}

		body, err := decodeStmt(env.Body)
		if err != nil {
			return nil, err
		}

		return &sast.RangeStmt{Var: loopVar, Bound: bound, Body: body}, nil
	case "while":
		cond, err := decodeExpr(env.Cond)
		if err != nil {
			return nil, err
		}

		body, err := decodeStmt(env.Body)
		if err != nil {
			return nil, err
		}

		return &sast.WhileStmt{Cond: cond, Body: body}, nil
	case "return":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}

		return &sast.ReturnStmt{Value: value}, nil
	case "class":
		body, err := decodeStmt(env.Body)
		if err != nil {
			return nil, err
		}

		return &sast.ClassDef{Name: env.Name, Body: body}, nil
	case "assign":
		var targets []sast.LValue
		for _, rawTarget := range env.Targets {
			target, err := decodeLValue(rawTarget)
			if err != nil {
				return nil, err
			}

			targets = append(targets, target)
		}

		rhs, err := decodeExpr(env.RHS)
		if err != nil {
			return nil, err
		}

		return &sast.AssignStmt{Targets: targets, RHS: rhs}, nil
	case "box":
		from, err := decodeType(env.From)
		if err != nil {
			return nil, err
		}

		to, err := decodeType(env.To)
		if err != nil {
			return nil, err
		}

		return &sast.BoxStmt{VarName: env.Name, SrcType: from, DestType: to}, nil
	case "staged":
		entry, err := decodeStmt(env.Entry)
		if err != nil {
			return nil, err
		}

		body, err := decodeStmt(env.Body)
		if err != nil {
			return nil, err
		}

		exit, err := decodeStmt(env.Exit)
		if err != nil {
			return nil, err
		}

		return &sast.StagedStmt{Entry: entry, Body: body, Exit: exit}, nil
	case "print":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}

		return &sast.PrintStmt{Value: value}, nil
	case "typeof":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}

		return &sast.TypeOfStmt{Value: value}, nil
	case "continue":
		return &sast.ContinueStmt{}, nil
	case "break":
		return &sast.BreakStmt{}, nil
	case "nop":
		return &sast.NopStmt{}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind `%s`", env.Kind)
	}
}

// -----------------------------------------------------------------------------

type jsonFuncDecl struct {
	Name   string          `json:"name"`
	Return json.RawMessage `json:"return"`
	Params []jsonBinding   `json:"params"`
	Locals []jsonBinding   `json:"locals"`
	Body   json.RawMessage `json:"body"`
}

func decodeFuncDecl(jfd *jsonFuncDecl) (*sast.FuncDecl, error) {
	if jfd == nil {
		return nil, fmt.Errorf("function definition missing its declaration")
	}

	ret, err := decodeType(jfd.Return)
	if err != nil {
		return nil, err
	}

	params, err := decodeBindings(jfd.Params)
	if err != nil {
		return nil, err
	}

	locals, err := decodeBindings(jfd.Locals)
	if err != nil {
		return nil, err
	}

	body, err := decodeStmt(jfd.Body)
	if err != nil {
		return nil, err
	}

	return &sast.FuncDecl{
		Name:       jfd.Name,
		ReturnType: ret,
		Params:     params,
		Locals:     locals,
		Body:       body,
	}, nil
}

// -----------------------------------------------------------------------------

func decodeLValue(raw json.RawMessage) (sast.LValue, error) {
	var env struct {
		Kind  string          `json:"kind"`
		Name  string          `json:"name"`
		Root  json.RawMessage `json:"root"`
		Index json.RawMessage `json:"index"`
		Start json.RawMessage `json:"start"`
		End   json.RawMessage `json:"end"`
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed lvalue: %s", err.Error())
	}

	switch env.Kind {
	case "var":
		return &sast.VarTarget{Name: env.Name}, nil
	case "index":
		root, err := decodeExpr(env.Root)
		if err != nil {
			return nil, err
		}

		index, err := decodeExpr(env.Index)
		if err != nil {
			return nil, err
		}

		return &sast.IndexTarget{Root: root, Index: index}, nil
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

		return &sast.SliceTarget{Root: root, Start: start, End: end}, nil
	default:
		return nil, fmt.Errorf("unknown lvalue kind `%s`", env.Kind)
	}
}
