package ast_types

type FloatType struct {
	Name string
	Bits int
}

func (f *FloatType) Type() string {
	return f.Name
}

func (f *FloatType) SameAs(t Type) bool {
	floatType, ok := t.(*FloatType)
	if !ok {
		return false
	}

	return f.Bits == floatType.Bits
}
