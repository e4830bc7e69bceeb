// Package numeric carries raw scalar values into the expression builder:
// integers as explicit-width bit patterns of arbitrary precision, floats
// tagged with their IEEE format.
package numeric

import (
	"math/big"
)

// Int is an integer value with an explicit bit width and signedness flag.
// The width is part of the value: a 42 stored in 8 bits and a 42 stored in
// 32 bits are different values to the builder.
type Int struct {
	bits   int
	signed bool
	value  *big.Int
}

// NewUint builds an unsigned integer value of the given width. Bits above
// the width are dropped, matching two's-complement storage semantics.
func NewUint(bits int, v uint64) Int {
	value := new(big.Int).SetUint64(v)
	if bits < 64 {
		mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		value.And(value, mask.Sub(mask, big.NewInt(1)))
	}

	return Int{
		bits:   bits,
		signed: false,
		value:  value,
	}
}

// NewBigUint builds an unsigned integer value of the given width from an
// arbitrary-precision magnitude. Returns false when v does not fit in bits.
func NewBigUint(bits int, v *big.Int) (Int, bool) {
	if v.Sign() < 0 || v.BitLen() > bits {
		return Int{}, false
	}

	return Int{
		bits:   bits,
		signed: false,
		value:  new(big.Int).Set(v),
	}, true
}

// NewSint builds a signed integer value of the given width. The builder
// does not synthesize signed literals yet, but the lifting layer still
// needs to represent what it saw.
func NewSint(bits int, v int64) Int {
	return Int{
		bits:   bits,
		signed: true,
		value:  big.NewInt(v),
	}
}

func (v Int) Bits() int    { return v.bits }
func (v Int) Signed() bool { return v.signed }

func (v Int) IsZero() bool {
	return v.value != nil && v.value.Sign() == 0
}

// Value returns a copy of the magnitude; Int values stay immutable.
func (v Int) Value() *big.Int {
	if v.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.value)
}

// Uint64 returns the low 64 bits of the value.
func (v Int) Uint64() uint64 {
	if v.value == nil {
		return 0
	}
	return v.value.Uint64()
}

// Fits reports whether the value is representable in a width/signedness
// pair, independent of the width it was constructed with.
func (v Int) Fits(bits int, signed bool) bool {
	if bits <= 0 {
		return false
	}
	if v.value == nil {
		return true
	}

	if !signed {
		return v.value.Sign() >= 0 && v.value.BitLen() <= bits
	}

	// Signed range: -2^(bits-1) .. 2^(bits-1)-1.
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	upper := new(big.Int).Sub(limit, big.NewInt(1))
	lower := new(big.Int).Neg(limit)
	return v.value.Cmp(lower) >= 0 && v.value.Cmp(upper) <= 0
}

func (v Int) String() string {
	return v.Value().String()
}
