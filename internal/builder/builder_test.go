package builder_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csynth/csynth/internal/ast"
	ast_types "github.com/csynth/csynth/internal/ast/types"
	"github.com/csynth/csynth/internal/builder"
	"github.com/csynth/csynth/internal/numeric"
)

func newBuilder() (*ast_types.Registry, *builder.Builder) {
	reg := ast_types.NewRegistry()
	return reg, builder.New(reg)
}

func TestCreateIntLit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits     int
		value    uint64
		wantType string
	}{
		{1, 0, "unsigned int"},
		{8, 42, "unsigned int"},
		{16, 42, "unsigned int"},
		{32, 42, "unsigned int"},
		{64, 42, "unsigned long"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dbit", tt.bits), func(t *testing.T) {
			_, b := newBuilder()

			lit, err := b.CreateIntLit(numeric.NewUint(tt.bits, tt.value))
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, lit.ExprType().Type())
			assert.Equal(t, tt.value, lit.Value.Uint64())
		})
	}
}

func TestCreateIntLitRejectsUnsupportedWidths(t *testing.T) {
	t.Parallel()

	_, b := newBuilder()

	for _, bits := range []int{0, 7, 24, 65, 128} {
		_, err := b.CreateIntLit(numeric.NewUint(bits, 1))
		assert.ErrorIs(t, err, builder.ErrUnsupportedWidth, "width %d", bits)
	}
}

func TestCreateIntLitRejectsSignedValues(t *testing.T) {
	t.Parallel()

	_, b := newBuilder()

	_, err := b.CreateIntLit(numeric.NewSint(32, -1))
	assert.ErrorIs(t, err, builder.ErrSignedLiteral)

	_, err = b.CreateAdjustedIntLit(numeric.NewSint(8, 42))
	assert.ErrorIs(t, err, builder.ErrSignedLiteral)
}

func TestCreateAdjustedIntLit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits      int
		value     uint64
		wantType  string
		wantKind  ast.CastKind
		innerType string
	}{
		{1, 1, "_Bool", ast.CastIntegralCast, "unsigned int"},
		{8, 42, "unsigned char", ast.CastIntegralCast, "unsigned int"},
		{16, 42, "unsigned short", ast.CastIntegralCast, "unsigned int"},
		{32, 42, "unsigned int", ast.CastNoOp, "unsigned int"},
		{64, 42, "unsigned long", ast.CastNoOp, "unsigned long"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dbit", tt.bits), func(t *testing.T) {
			_, b := newBuilder()

			cast, err := b.CreateAdjustedIntLit(numeric.NewUint(tt.bits, tt.value))
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, cast.ExprType().Type())
			assert.Equal(t, tt.wantKind, cast.Kind)

			lit, ok := ast.IgnoreCasts(cast).(*ast.IntLitExpr)
			require.True(t, ok, "expected an integer literal under the cast")
			assert.Equal(t, tt.innerType, lit.ExprType().Type())
			assert.Equal(t, tt.value, lit.Value.Uint64())
		})
	}
}

func TestCreateCharLit(t *testing.T) {
	t.Parallel()

	_, b := newBuilder()

	lit := b.CreateCharLit('x')
	assert.Equal(t, "int", lit.ExprType().Type())
	assert.Equal(t, byte('x'), lit.Value)
}

func TestCreateStrLit(t *testing.T) {
	t.Parallel()

	_, b := newBuilder()

	// Content is taken verbatim: the terminator is the caller's business.
	withNul := b.CreateStrLit([]byte("hello\x00"))
	arr, ok := withNul.ExprType().(*ast_types.ArrayType)
	require.True(t, ok)
	assert.Equal(t, 6, arr.Len)
	assert.True(t, arr.Elem.SameAs(&ast_types.CharType{}))
	assert.Equal(t, []byte("hello\x00"), withNul.Value)

	withoutNul := b.CreateStrLit([]byte("hello"))
	arr, ok = withoutNul.ExprType().(*ast_types.ArrayType)
	require.True(t, ok)
	assert.Equal(t, 5, arr.Len)
}

func TestCreateFPLit(t *testing.T) {
	t.Parallel()

	_, b := newBuilder()

	single, err := b.CreateFPLit(numeric.NewSingle(1.5))
	require.NoError(t, err)
	assert.Equal(t, "float", single.ExprType().Type())
	assert.Equal(t, 1.5, single.Value)

	double, err := b.CreateFPLit(numeric.NewDouble(2.25))
	require.NoError(t, err)
	assert.Equal(t, "double", double.ExprType().Type())
	assert.Equal(t, 2.25, double.Value)

	_, err = b.CreateFPLit(numeric.Float{})
	assert.ErrorIs(t, err, builder.ErrUnsupportedFormat)
}

func TestCreateNull(t *testing.T) {
	t.Parallel()

	reg, b := newBuilder()

	null := b.CreateNull()
	assert.True(t, null.ExprType().SameAs(reg.VoidPointer()))
	assert.Equal(t, ast.CastNullToPointer, null.Kind)

	lit, ok := ast.IgnoreCasts(null).(*ast.IntLitExpr)
	require.True(t, ok)
	assert.Equal(t, "unsigned int", lit.ExprType().Type())
	assert.Zero(t, lit.Value.Sign())

	contexts := []ast.NullEvalContext{
		ast.NullEvalNeverValueDependent,
		ast.NullEvalValueDependentIsNull,
		ast.NullEvalValueDependentIsNotNull,
	}
	for _, evalCtx := range contexts {
		assert.Equal(t, ast.NullKindZeroLiteral, ast.NullPointerConstantKind(null, evalCtx))
	}
}

func TestCreateUndef(t *testing.T) {
	t.Parallel()

	reg, b := newBuilder()

	uintType, _ := reg.IntegerType(32, false)
	doubleType, _ := reg.FloatingType(64)

	for _, target := range []ast_types.Type{uintType, doubleType, reg.VoidPointer()} {
		undef := b.CreateUndef(target)
		assert.True(t, undef.ExprType().SameAs(target))

		cast, ok := undef.Operand.(*ast.CastExpr)
		require.True(t, ok, "undef must dereference a cast")
		assert.True(t, cast.ExprType().SameAs(reg.PointerTo(target)))
		assert.Equal(t, ast.NullKindZeroLiteral,
			ast.NullPointerConstantKind(cast.Operand, ast.NullEvalNeverValueDependent))
	}

	spew.Dump(b.CreateUndef(uintType))
}

func TestCastKindSelection(t *testing.T) {
	t.Parallel()

	reg, b := newBuilder()

	uintType, _ := reg.IntegerType(32, false)
	ulongType, _ := reg.IntegerType(64, false)
	intType, _ := reg.IntegerType(32, true)
	floatType, _ := reg.FloatingType(32)
	doubleType, _ := reg.FloatingType(64)
	intPtr := reg.PointerTo(intType)

	zero, err := b.CreateIntLit(numeric.NewUint(32, 0))
	require.NoError(t, err)
	fortyTwo, err := b.CreateIntLit(numeric.NewUint(32, 42))
	require.NoError(t, err)
	half, err := b.CreateFPLit(numeric.NewSingle(0.5))
	require.NoError(t, err)

	cases := []struct {
		name   string
		target ast_types.Type
		src    ast.Expr
		want   ast.CastKind
	}{
		{"null constant to generic pointer", reg.VoidPointer(), zero, ast.CastNullToPointer},
		{"pointer-typed null to int pointer", intPtr, b.CreateNull(), ast.CastBitCast},
		{"non-null integer to pointer", intPtr, fortyTwo, ast.CastIntegralToPointer},
		{"unsigned int to unsigned long", ulongType, fortyTwo, ast.CastIntegralCast},
		{"pointer to integer", ulongType, b.CreateNull(), ast.CastPointerToIntegral},
		{"float to double", doubleType, half, ast.CastFloatingCast},
		{"integer to float", floatType, fortyTwo, ast.CastIntegralToFloating},
		{"float to integer", uintType, half, ast.CastFloatingToIntegral},
		{"identical types", uintType, fortyTwo, ast.CastNoOp},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cast, err := b.CreateCStyleCast(tt.target, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cast.Kind)
			assert.True(t, cast.ExprType().SameAs(tt.target))

			// Same classified inputs, same tag.
			again, err := b.CreateCStyleCast(tt.target, tt.src)
			require.NoError(t, err)
			assert.Equal(t, cast.Kind, again.Kind)
		})
	}
}

func TestCreateCStyleCastRejectsNonScalars(t *testing.T) {
	t.Parallel()

	reg, b := newBuilder()

	uintType, _ := reg.IntegerType(32, false)
	str := b.CreateStrLit([]byte("abc"))

	_, err := b.CreateCStyleCast(uintType, str)
	assert.ErrorIs(t, err, builder.ErrIncompatibleCast)

	fortyTwo, err := b.CreateIntLit(numeric.NewUint(32, 42))
	require.NoError(t, err)
	_, err = b.CreateCStyleCast(reg.ArrayOf(reg.CharacterType(), 3), fortyTwo)
	assert.ErrorIs(t, err, builder.ErrIncompatibleCast)
}

// recordingRegistry checks the builder really is independent of the
// concrete registry and that failed calls never mint nodes or types.
type recordingRegistry struct {
	*ast_types.Registry
	calls []string
}

func (r *recordingRegistry) IntegerType(bits int, signed bool) (*ast_types.IntType, bool) {
	r.calls = append(r.calls, fmt.Sprintf("integer(%d,%v)", bits, signed))
	return r.Registry.IntegerType(bits, signed)
}

func TestBuilderUsesInjectedRegistry(t *testing.T) {
	t.Parallel()

	reg := &recordingRegistry{Registry: ast_types.NewRegistry()}
	b := builder.New(reg)

	_, err := b.CreateIntLit(numeric.NewUint(24, 1))
	assert.ErrorIs(t, err, builder.ErrUnsupportedWidth)
	assert.Equal(t, []string{"integer(24,false)"}, reg.calls)

	lit, err := b.CreateIntLit(numeric.NewUint(8, 3))
	require.NoError(t, err)
	assert.Equal(t, "unsigned int", lit.ExprType().Type())
	assert.Contains(t, reg.calls, "integer(32,false)")
}
