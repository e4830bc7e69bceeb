package ast_types

type IntType struct {
	Name   string
	Signed bool
	Bits   int
}

func (i *IntType) Type() string {
	return i.Name
}

func (i *IntType) SameAs(t Type) bool {
	intType, ok := t.(*IntType)
	if !ok {
		return false
	}

	return i.Signed == intType.Signed && i.Bits == intType.Bits
}
