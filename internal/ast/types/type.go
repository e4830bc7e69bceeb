package ast_types

type Type interface {
	Type() string
	SameAs(t Type) bool
}

func IsIntegral(t Type) bool {
	switch t.(type) {
	case *IntType, *CharType:
		return true
	}

	return false
}

func IsFloating(t Type) bool {
	_, ok := t.(*FloatType)
	return ok
}

func IsPointer(t Type) bool {
	_, ok := t.(*PointerType)
	return ok
}

func IsScalar(t Type) bool {
	return IsIntegral(t) || IsFloating(t) || IsPointer(t)
}
