package ast_types

type VoidType struct{}

func (*VoidType) Type() string {
	return "void"
}

func (*VoidType) SameAs(t Type) bool {
	if _, ok := t.(*VoidType); ok {
		return true
	}
	return false
}
