package ast

import (
	types "github.com/csynth/csynth/internal/ast/types"
)

// NullEvalContext selects how a value-dependent expression would be treated
// during null-pointer-constant classification. Nothing this layer produces
// is value dependent, so all three contexts must classify identically;
// downstream consumers still pass the context they are evaluating under.
type NullEvalContext int

const (
	NullEvalNeverValueDependent NullEvalContext = iota
	NullEvalValueDependentIsNull
	NullEvalValueDependentIsNotNull
)

type NullPointerKind int

//go:generate go tool stringer -type=NullPointerKind -output=null_kind_string.go

const (
	NullKindNotNull NullPointerKind = iota
	NullKindZeroLiteral
)

// NullPointerConstantKind classifies an expression as a null pointer
// constant. A zero integer literal is one, and so is such a constant cast
// to void *, recursively, per the language's definition.
func NullPointerConstantKind(e Expr, _ NullEvalContext) NullPointerKind {
	switch expr := e.(type) {
	case *IntLitExpr:
		if types.IsIntegral(expr.Type) && expr.Value.Sign() == 0 {
			return NullKindZeroLiteral
		}

	case *CastExpr:
		ptr, ok := expr.Type.(*types.PointerType)
		if !ok {
			return NullKindNotNull
		}
		if _, isVoid := ptr.Pointee.(*types.VoidType); isVoid {
			return NullPointerConstantKind(expr.Operand, NullEvalNeverValueDependent)
		}
	}

	return NullKindNotNull
}
