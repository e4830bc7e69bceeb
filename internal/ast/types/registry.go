package ast_types

// The target data model is fixed (LP64): these are the widths of the two
// standard ranks integer literals can carry.
const (
	IntWidth  = 32
	LongWidth = 64
)

type intKey struct {
	bits   int
	signed bool
}

type arrayKey struct {
	elem Type
	len  int
}

// Registry owns the canonical type objects for one compilation session.
// Every accessor returns the same instance for the same request, so
// canonical types compare equal by pointer identity.
//
// A Registry is not safe for concurrent use; callers serialize access.
type Registry struct {
	ints     map[intKey]*IntType
	floats   map[int]*FloatType
	pointers map[Type]*PointerType
	arrays   map[arrayKey]*ArrayType

	char *CharType
	void *VoidType
}

func NewRegistry() *Registry {
	r := &Registry{
		ints:     make(map[intKey]*IntType),
		floats:   make(map[int]*FloatType),
		pointers: make(map[Type]*PointerType),
		arrays:   make(map[arrayKey]*ArrayType),

		char: &CharType{},
		void: &VoidType{},
	}
	r.defineBuiltinTypes()
	return r
}

func (r *Registry) defineBuiltinTypes() {
	r.ints[intKey{bits: 1, signed: false}] = &IntType{
		Name:   "_Bool",
		Signed: false,
		Bits:   1,
	}

	signedNames := map[int]string{
		8:  "signed char",
		16: "short",
		32: "int",
		64: "long",
	}
	unsignedNames := map[int]string{
		8:  "unsigned char",
		16: "unsigned short",
		32: "unsigned int",
		64: "unsigned long",
	}

	for bits, name := range signedNames {
		r.ints[intKey{bits: bits, signed: true}] = &IntType{
			Name:   name,
			Signed: true,
			Bits:   bits,
		}
	}
	for bits, name := range unsignedNames {
		r.ints[intKey{bits: bits, signed: false}] = &IntType{
			Name:   name,
			Signed: false,
			Bits:   bits,
		}
	}

	r.floats[32] = &FloatType{Name: "float", Bits: 32}
	r.floats[64] = &FloatType{Name: "double", Bits: 64}
}

// IntegerType returns the canonical integer type of the given width and
// signedness, or false when the data model has no such type.
func (r *Registry) IntegerType(bits int, signed bool) (*IntType, bool) {
	t, ok := r.ints[intKey{bits: bits, signed: signed}]
	return t, ok
}

// FloatingType returns the canonical floating type of the given width, or
// false when the data model has no such type.
func (r *Registry) FloatingType(bits int) (*FloatType, bool) {
	t, ok := r.floats[bits]
	return t, ok
}

func (r *Registry) CharacterType() *CharType {
	return r.char
}

func (r *Registry) VoidType() *VoidType {
	return r.void
}

func (r *Registry) PointerTo(t Type) *PointerType {
	if ptr, ok := r.pointers[t]; ok {
		return ptr
	}

	ptr := &PointerType{Pointee: t}
	r.pointers[t] = ptr
	return ptr
}

// VoidPointer is the generic pointer type, the target of null pointer
// constants.
func (r *Registry) VoidPointer() *PointerType {
	return r.PointerTo(r.void)
}

func (r *Registry) ArrayOf(elem Type, length int) *ArrayType {
	key := arrayKey{elem: elem, len: length}
	if arr, ok := r.arrays[key]; ok {
		return arr
	}

	arr := &ArrayType{Elem: elem, Len: length}
	r.arrays[key] = arr
	return arr
}
