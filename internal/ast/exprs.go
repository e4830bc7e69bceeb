package ast

import (
	"math/big"

	types "github.com/csynth/csynth/internal/ast/types"
)

// Expr is an immutable expression node. Nodes are created once by the
// builder and never mutated; the type registry that backed their types owns
// them for the rest of the compilation session.
type Expr interface {
	ExprNode()
	ExprType() types.Type
}

type IntLitExpr struct {
	types.Type
	Value *big.Int
}

type FPLitExpr struct {
	types.Type
	Value float64
}

type CharLitExpr struct {
	types.Type
	Value byte
}

// StrLitExpr holds string content verbatim: the declared char[N] length is
// exactly len(Value), and no terminator byte is ever appended here.
type StrLitExpr struct {
	types.Type
	Value []byte
}

type CastExpr struct {
	types.Type
	Kind    CastKind
	Operand Expr
}

type DerefExpr struct {
	types.Type
	Operand Expr
}

func (IntLitExpr) ExprNode()  {}
func (FPLitExpr) ExprNode()   {}
func (CharLitExpr) ExprNode() {}
func (StrLitExpr) ExprNode()  {}
func (CastExpr) ExprNode()    {}
func (DerefExpr) ExprNode()   {}

func (e *IntLitExpr) ExprType() types.Type  { return e.Type }
func (e *FPLitExpr) ExprType() types.Type   { return e.Type }
func (e *CharLitExpr) ExprType() types.Type { return e.Type }
func (e *StrLitExpr) ExprType() types.Type  { return e.Type }
func (e *CastExpr) ExprType() types.Type    { return e.Type }
func (e *DerefExpr) ExprType() types.Type   { return e.Type }

// IgnoreCasts strips any chain of explicit casts off an expression.
func IgnoreCasts(e Expr) Expr {
	for {
		cast, ok := e.(*CastExpr)
		if !ok {
			return e
		}
		e = cast.Operand
	}
}
