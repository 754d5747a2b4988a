package types

import (
	"strings"

	"gradc/util"
)

// Type represents a Grad data type as computed by the checker.  The emitter
// only ever reads types: all inference happens upstream.
type Type interface {
	// Returns whether this type is equal to the other type.  This should only
	// be called within methods of type instances: external code should use the
	// package-level Equals function.
	equals(other Type) bool

	// Returns the representative string for this type in Grad syntax.
	Repr() string

	// Returns the rendering of this type in the target language.
	Target() string
}

// Equals returns whether two types are equal.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// PrimitiveType represents a primitive type.  This must be one of the
// enumerated primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	PrimTypeUnit = PrimitiveType(iota)
	PrimTypeBool
	PrimTypeInt
	PrimTypeFloat
	PrimTypeString
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimTypeUnit:
		return "unit"
	case PrimTypeBool:
		return "bool"
	case PrimTypeInt:
		return "int"
	case PrimTypeFloat:
		return "float"
	case PrimTypeString:
		return "string"
	default:
		return "<unknown>"
	}
}

func (pt PrimitiveType) Target() string {
	switch pt {
	case PrimTypeUnit:
		return "void"
	case PrimTypeBool:
		return "bool"
	case PrimTypeInt:
		return "int"
	case PrimTypeFloat:
		return "double"
	case PrimTypeString:
		return "string"
	default:
		return "<unknown>"
	}
}

// -----------------------------------------------------------------------------

// DynType represents the dynamic type: the type of values whose concrete type
// is only known at run time.  Values crossing between dyn and a static type do
// so through explicit cast and box/unbox nodes inserted by the checker.
type DynType struct{}

func (dt DynType) equals(other Type) bool {
	_, ok := other.(DynType)
	return ok
}

func (dt DynType) Repr() string {
	return "dyn"
}

// Target returns the target-language boxed value type.
func (dt DynType) Target() string {
	return "dyn"
}

// -----------------------------------------------------------------------------

// ListType represents a homogeneous list type.
type ListType struct {
	// The element type of the list.
	ElemType Type
}

func (lt *ListType) equals(other Type) bool {
	if olt, ok := other.(*ListType); ok {
		return Equals(lt.ElemType, olt.ElemType)
	}

	return false
}

func (lt *ListType) Repr() string {
	return "list[" + lt.ElemType.Repr() + "]"
}

func (lt *ListType) Target() string {
	return "list<" + lt.ElemType.Target() + ">"
}

// -----------------------------------------------------------------------------

// FuncType represents a function type.
type FuncType struct {
	// The parameter types of the function in order.
	ParamTypes []Type

	// The return type of the function.
	ReturnType Type
}

func (ft *FuncType) equals(other Type) bool {
	if oft, ok := other.(*FuncType); ok {
		if len(ft.ParamTypes) != len(oft.ParamTypes) {
			return false
		}

		for i, pt := range ft.ParamTypes {
			if !Equals(pt, oft.ParamTypes[i]) {
				return false
			}
		}

		return Equals(ft.ReturnType, oft.ReturnType)
	}

	return false
}

func (ft *FuncType) Repr() string {
	return "(" + strings.Join(util.Map(ft.ParamTypes, func(pt Type) string { return pt.Repr() }), ", ") +
		") -> " + ft.ReturnType.Repr()
}

// Target returns the target rendering of a function-typed value.  Function
// values that escape into variables are always boxed in the target runtime.
func (ft *FuncType) Target() string {
	return "funcref"
}
