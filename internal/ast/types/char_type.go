package ast_types

// CharType is plain char, a distinct type from both signed char and
// unsigned char in C.
type CharType struct{}

func (*CharType) Type() string {
	return "char"
}

func (*CharType) SameAs(t Type) bool {
	_, ok := t.(*CharType)
	return ok
}
