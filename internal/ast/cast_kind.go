package ast

//go:generate go tool stringer -type=CastKind -output=cast_kind_string.go

// CastKind records why a cast is semantically valid. The set is closed: it
// mirrors the conversions C defines between scalar types, and the builder
// derives the kind from the source and target type categories, so a node
// can never carry an inconsistent tag.
type CastKind int

const (
	_ CastKind = iota // zero value stays invalid

	CastNoOp
	CastBitCast
	CastNullToPointer
	CastPointerToIntegral
	CastIntegralToPointer
	CastIntegralCast
	CastFloatingCast
	CastIntegralToFloating
	CastFloatingToIntegral
)
