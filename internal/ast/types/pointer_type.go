package ast_types

type PointerType struct {
	Pointee Type
}

func (t *PointerType) Type() string {
	return t.Pointee.Type() + " *"
}

func (t *PointerType) SameAs(other Type) bool {
	if pointerType, ok := other.(*PointerType); ok {
		return t.Pointee.SameAs(pointerType.Pointee)
	}
	return false
}
