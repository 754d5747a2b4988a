package emit

import (
	"strings"

	"gradc/report"
	"gradc/sast"
	"gradc/util"
)

// emitExpr renders a checked expression.  Rendering is structural: operands
// are rendered as-is with no precedence-driven parenthesization, since the
// shape of the tree is the checker's responsibility.
func (e *Emitter) emitExpr(expr sast.Expr) string {
	switch v := expr.(type) {
	case *sast.BinaryExpr:
		return e.emitExpr(v.Lhs) + " " + v.Op + " " + e.emitExpr(v.Rhs)
	case *sast.UnaryExpr:
		return v.Op + e.emitExpr(v.Operand)
	case *sast.Literal:
		return v.Value
	case *sast.Identifier:
		return v.Name
	case *sast.CallExpr:
		return e.emitExpr(v.Callee) + "(" + strings.Join(util.Map(v.Args, e.emitExpr), ", ") + ")"
	case *sast.ListLit:
		return "{" + strings.Join(util.Map(v.Elems, e.emitExpr), ", ") + "}"
	case *sast.EmptyExpr:
		return ""
	case *sast.CastExpr:
		return "cast<" + v.SrcType.Target() + ", " + v.DestType.Target() + ">(" + e.emitExpr(v.Src) + ")"
	case *sast.MethodCall:
		report.ThrowEmitError("unsupported construct: method call")
	case *sast.FieldAccess:
		report.ThrowEmitError("unsupported construct: field access")
	case *sast.IndexExpr:
		report.ThrowEmitError("unsupported construct: indexed access")
	case *sast.SliceExpr:
		report.ThrowEmitError("unsupported construct: slice access")
	}

	report.ThrowEmitError("unrecognized expression: %T", expr)
	return ""
}
