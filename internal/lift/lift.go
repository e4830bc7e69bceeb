// Package lift maps LLVM constants onto C expressions. It is the input
// edge of the synthesis layer: global initializers and other constants
// arrive as llvm.Value bit patterns and leave as typed literal and cast
// nodes produced by the expression builder.
package lift

import (
	"errors"
	"fmt"

	"tinygo.org/x/go-llvm"

	"github.com/csynth/csynth/internal/ast"
	ast_types "github.com/csynth/csynth/internal/ast/types"
	"github.com/csynth/csynth/internal/builder"
	"github.com/csynth/csynth/internal/numeric"
)

var (
	ErrUnsupportedConstant = errors.New("no C expression form for this constant")
	ErrUnsupportedType     = errors.New("no C type for this LLVM type")
)

// LiftError wraps a per-global failure for the error handler, so one bad
// initializer does not abort the rest of the module.
type LiftError struct {
	GlobalName string
	Err        error
}

func (e *LiftError) GetMessage() string {
	return fmt.Sprintf("%s: %v", e.GlobalName, e.Err)
}

type Lifter struct {
	reg *ast_types.Registry
	b   *builder.Builder
}

func NewLifter(reg *ast_types.Registry, b *builder.Builder) *Lifter {
	return &Lifter{reg: reg, b: b}
}

// TypeFor maps an LLVM type onto the canonical C type. LLVM integers are
// signless; they lift as the unsigned type of their width. Opaque pointers
// carry no pointee, so every pointer lifts as void *.
func (l *Lifter) TypeFor(t llvm.Type) (ast_types.Type, error) {
	switch t.TypeKind() {
	case llvm.IntegerTypeKind:
		intType, ok := l.reg.IntegerType(t.IntTypeWidth(), false)
		if !ok {
			return nil, fmt.Errorf("%w: i%d", ErrUnsupportedType, t.IntTypeWidth())
		}
		return intType, nil

	case llvm.FloatTypeKind:
		floatType, _ := l.reg.FloatingType(32)
		return floatType, nil

	case llvm.DoubleTypeKind:
		floatType, _ := l.reg.FloatingType(64)
		return floatType, nil

	case llvm.PointerTypeKind:
		return l.reg.VoidPointer(), nil

	case llvm.ArrayTypeKind:
		elem, err := l.TypeFor(t.ElementType())
		if err != nil {
			return nil, err
		}
		return l.reg.ArrayOf(elem, t.ArrayLength()), nil

	case llvm.VoidTypeKind:
		return l.reg.VoidType(), nil
	}

	return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedType, t.TypeKind())
}

// Constant lifts a single LLVM constant into a C expression.
func (l *Lifter) Constant(v llvm.Value) (ast.Expr, error) {
	switch {
	case !v.IsAConstantInt().IsNil():
		value := numeric.NewUint(v.Type().IntTypeWidth(), v.ZExtValue())
		return l.b.CreateAdjustedIntLit(value)

	case !v.IsAConstantFP().IsNil():
		return l.liftFloat(v)

	case !v.IsAConstantPointerNull().IsNil():
		t, err := l.TypeFor(v.Type())
		if err != nil {
			return nil, err
		}
		return l.b.CreateCStyleCast(t, l.b.CreateNull())

	case v.IsUndef():
		t, err := l.TypeFor(v.Type())
		if err != nil {
			return nil, err
		}
		return l.b.CreateUndef(t), nil

	case !v.IsAConstantArray().IsNil():
		return l.liftCharArray(v)

	case !v.IsAConstantAggregateZero().IsNil() && v.Type().TypeKind() == llvm.ArrayTypeKind:
		return l.liftZeroCharArray(v)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedConstant, v.Type().String())
}

func (l *Lifter) liftFloat(v llvm.Value) (ast.Expr, error) {
	// DoubleValue is exact for the two formats we accept.
	d, _ := v.DoubleValue()

	switch v.Type().TypeKind() {
	case llvm.FloatTypeKind:
		return l.b.CreateFPLit(numeric.NewSingle(float32(d)))
	case llvm.DoubleTypeKind:
		return l.b.CreateFPLit(numeric.NewDouble(d))
	}

	return nil, fmt.Errorf("%w: %s", builder.ErrUnsupportedFormat, v.Type().String())
}

func (l *Lifter) liftCharArray(v llvm.Value) (ast.Expr, error) {
	t := v.Type()
	if !isCharArray(t) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConstant, t.String())
	}

	content := make([]byte, t.ArrayLength())
	for i := range content {
		elem := v.Operand(i)
		if elem.IsAConstantInt().IsNil() {
			return nil, fmt.Errorf("%w: non-constant array element", ErrUnsupportedConstant)
		}
		content[i] = byte(elem.ZExtValue())
	}

	return l.b.CreateStrLit(content), nil
}

func (l *Lifter) liftZeroCharArray(v llvm.Value) (ast.Expr, error) {
	t := v.Type()
	if !isCharArray(t) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConstant, t.String())
	}

	return l.b.CreateStrLit(make([]byte, t.ArrayLength())), nil
}

func isCharArray(t llvm.Type) bool {
	elem := t.ElementType()
	return elem.TypeKind() == llvm.IntegerTypeKind && elem.IntTypeWidth() == 8
}
