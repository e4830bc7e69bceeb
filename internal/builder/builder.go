// Package builder synthesizes C literal and cast expressions from raw
// scalar values. Every operation is a pure construction: it validates its
// inputs, asks the bound type registry for canonical types, and returns a
// fresh immutable node or an error before anything was allocated.
package builder

import (
	"errors"
	"fmt"

	"github.com/csynth/csynth/internal/ast"
	types "github.com/csynth/csynth/internal/ast/types"
	"github.com/csynth/csynth/internal/numeric"
)

var (
	ErrUnsupportedWidth  = errors.New("integer bit width outside the target data model")
	ErrUnsupportedFormat = errors.New("unsupported floating-point format")
	ErrIncompatibleCast  = errors.New("no conversion defined between these types")
	ErrSignedLiteral     = errors.New("signed literal synthesis is not supported")
)

// TypeRegistry is the capability the builder needs from its host: canonical
// type objects for the fixed target data model. *ast_types.Registry
// implements it; tests may substitute their own.
type TypeRegistry interface {
	IntegerType(bits int, signed bool) (*types.IntType, bool)
	FloatingType(bits int) (*types.FloatType, bool)
	CharacterType() *types.CharType
	PointerTo(t types.Type) *types.PointerType
	VoidPointer() *types.PointerType
	ArrayOf(elem types.Type, length int) *types.ArrayType
}

// Builder is bound to one registry for its lifetime and holds no other
// state. It is as concurrency-safe as the registry behind it: callers
// sharing a registry serialize their calls.
type Builder struct {
	reg TypeRegistry
}

func New(reg TypeRegistry) *Builder {
	return &Builder{reg: reg}
}

// CreateIntLit builds an integer literal for an unsigned value. C literal
// syntax starts at the int rank, so the declared type is the smallest of
// unsigned int / unsigned long that covers the value's width; the value
// itself is stored untruncated.
func (b *Builder) CreateIntLit(v numeric.Int) (*ast.IntLitExpr, error) {
	t, err := b.naturalRankType(v)
	if err != nil {
		return nil, err
	}

	return &ast.IntLitExpr{Type: t, Value: v.Value()}, nil
}

// CreateAdjustedIntLit builds an integer literal cast back down to the
// exact type of the value's width. Sub-int constants cannot be spelled
// directly in C, so an 8 bit value becomes an unsigned int literal wrapped
// in a cast to unsigned char.
func (b *Builder) CreateAdjustedIntLit(v numeric.Int) (*ast.CastExpr, error) {
	lit, err := b.CreateIntLit(v)
	if err != nil {
		return nil, err
	}

	exact, ok := b.reg.IntegerType(v.Bits(), false)
	if !ok {
		// CreateIntLit already validated the width.
		panic("registry lost a validated integer width")
	}

	return b.CreateCStyleCast(exact, lit)
}

func (b *Builder) naturalRankType(v numeric.Int) (*types.IntType, error) {
	if v.Signed() {
		return nil, ErrSignedLiteral
	}

	// The width must be one the data model supports exactly; values are
	// never truncated to make them fit.
	if _, ok := b.reg.IntegerType(v.Bits(), false); !ok {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, v.Bits())
	}

	rank := types.IntWidth
	if v.Bits() > types.IntWidth {
		rank = types.LongWidth
	}

	t, ok := b.reg.IntegerType(rank, false)
	if !ok {
		panic("registry has no type for a standard rank")
	}
	return t, nil
}

// CreateCharLit builds a character constant. Character constants have type
// int in C regardless of the width of char.
func (b *Builder) CreateCharLit(v byte) *ast.CharLitExpr {
	t, ok := b.reg.IntegerType(types.IntWidth, true)
	if !ok {
		panic("registry has no int type")
	}

	return &ast.CharLitExpr{Type: t, Value: v}
}

// CreateStrLit builds a string literal typed char[len(content)]. Content is
// taken verbatim: callers that need a terminator byte downstream must
// include it themselves.
func (b *Builder) CreateStrLit(content []byte) *ast.StrLitExpr {
	t := b.reg.ArrayOf(b.reg.CharacterType(), len(content))
	return &ast.StrLitExpr{Type: t, Value: append([]byte(nil), content...)}
}

// CreateFPLit builds a floating literal typed float or double according to
// the value's format tag.
func (b *Builder) CreateFPLit(v numeric.Float) (*ast.FPLitExpr, error) {
	var bits int
	switch v.Format() {
	case numeric.FormatSingle:
		bits = 32
	case numeric.FormatDouble:
		bits = 64
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, v.Format())
	}

	t, ok := b.reg.FloatingType(bits)
	if !ok {
		panic("registry has no type for a standard floating format")
	}

	return &ast.FPLitExpr{Type: t, Value: v.Value()}, nil
}

// CreateCStyleCast wraps an expression in an explicit cast to the target
// type. The cast kind is derived, never supplied, so every produced node
// carries exactly the tag its type pair allows.
func (b *Builder) CreateCStyleCast(target types.Type, e ast.Expr) (*ast.CastExpr, error) {
	kind, err := castKindFor(target, e)
	if err != nil {
		return nil, err
	}

	return &ast.CastExpr{Type: target, Kind: kind, Operand: e}, nil
}

func castKindFor(target types.Type, e ast.Expr) (ast.CastKind, error) {
	src := e.ExprType()

	switch {
	case src.SameAs(target):
		return ast.CastNoOp, nil

	case types.IsPointer(target):
		switch {
		case types.IsPointer(src):
			// Pointer to pointer is always a bit reinterpretation, even
			// for a pointer-typed null expression.
			return ast.CastBitCast, nil
		case types.IsIntegral(src):
			if ast.NullPointerConstantKind(e, ast.NullEvalNeverValueDependent) != ast.NullKindNotNull {
				return ast.CastNullToPointer, nil
			}
			return ast.CastIntegralToPointer, nil
		}

	case types.IsIntegral(target):
		switch {
		case types.IsPointer(src):
			return ast.CastPointerToIntegral, nil
		case types.IsIntegral(src):
			return ast.CastIntegralCast, nil
		case types.IsFloating(src):
			return ast.CastFloatingToIntegral, nil
		}

	case types.IsFloating(target):
		switch {
		case types.IsFloating(src):
			return ast.CastFloatingCast, nil
		case types.IsIntegral(src):
			return ast.CastIntegralToFloating, nil
		}
	}

	return 0, fmt.Errorf("%w: %s to %s", ErrIncompatibleCast, src.Type(), target.Type())
}

// CreateNull builds the canonical null pointer constant (void *)0U. The
// inner literal keeps the expression recognizable as a null pointer
// constant under every evaluation context.
func (b *Builder) CreateNull() *ast.CastExpr {
	lit, err := b.CreateIntLit(numeric.NewUint(types.IntWidth, 0))
	if err != nil {
		panic("cannot build a zero literal at int width")
	}

	cast, err := b.CreateCStyleCast(b.reg.VoidPointer(), lit)
	if err != nil {
		panic("cannot cast a null constant to void *")
	}
	return cast
}

// CreateUndef builds a placeholder of type t for a value the source
// program never defined: a dereference of a null pointer cast to pointer
// to t. It types correctly and must never be evaluated.
func (b *Builder) CreateUndef(t types.Type) *ast.DerefExpr {
	cast, err := b.CreateCStyleCast(b.reg.PointerTo(t), b.CreateNull())
	if err != nil {
		panic("cannot cast void * to another pointer type")
	}

	return &ast.DerefExpr{Type: t, Operand: cast}
}
