package ast_types

import "fmt"

type ArrayType struct {
	Elem Type
	Len  int
}

func (a *ArrayType) Type() string {
	return fmt.Sprintf("%s[%d]", a.Elem.Type(), a.Len)
}

func (a *ArrayType) SameAs(t Type) bool {
	if arrayType, ok := t.(*ArrayType); ok {
		return a.Len == arrayType.Len && a.Elem.SameAs(arrayType.Elem)
	}

	return false
}
