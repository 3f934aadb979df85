// Package core implements the field, polynomial and Merkle-commitment
// primitives the FRI ladder is built on.
package core

import (
	"math/big"
)

// ByteWidth is the fixed canonical encoding width for a field element, in bytes.
const ByteWidth = 32

// Field is a prime field Z/pZ. The zero value is not usable; construct one
// with NewField.
type Field struct {
	modulus   *big.Int
	generator *Element
}

// NewField creates a prime field with the given modulus and multiplicative
// generator. The generator is not validated to have full multiplicative
// order; callers are expected to supply a known-good one (see BLS12381Field).
func NewField(modulus *big.Int, generator int64) *Field {
	f := &Field{modulus: new(big.Int).Set(modulus)}
	f.generator = f.NewElement(big.NewInt(generator))
	return f
}

// Modulus returns the field's prime modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Generator returns the field's fixed multiplicative generator.
func (f *Field) Generator() *Element {
	return f.generator
}

// Equal reports whether two Field values share the same modulus.
func (f *Field) Equal(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// Element is a value in canonical reduced form, in [0, p).
type Element struct {
	field *Field
	value *big.Int
}

// NewElement reduces value modulo the field's modulus and returns the
// canonical element.
func (f *Field) NewElement(value *big.Int) *Element {
	v := new(big.Int).Mod(value, f.modulus)
	return &Element{field: f, value: v}
}

// NewElementFromInt64 is a convenience wrapper around NewElement.
func (f *Field) NewElementFromInt64(value int64) *Element {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 is a convenience wrapper around NewElement.
func (f *Field) NewElementFromUint64(value uint64) *Element {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// Zero returns the additive identity of the field.
func (f *Field) Zero() *Element {
	return f.NewElementFromInt64(0)
}

// One returns the multiplicative identity of the field.
func (f *Field) One() *Element {
	return f.NewElementFromInt64(1)
}

// Field returns the field this element belongs to.
func (e *Element) Field() *Field {
	return e.field
}

// Big returns a copy of the element's value as a big.Int.
func (e *Element) Big() *big.Int {
	return new(big.Int).Set(e.value)
}

// Add returns e + other.
func (e *Element) Add(other *Element) *Element {
	return e.field.NewElement(new(big.Int).Add(e.value, other.value))
}

// Sub returns e - other.
func (e *Element) Sub(other *Element) *Element {
	return e.field.NewElement(new(big.Int).Sub(e.value, other.value))
}

// Neg returns the additive inverse of e.
func (e *Element) Neg() *Element {
	return e.field.NewElement(new(big.Int).Neg(e.value))
}

// Mul returns e * other.
func (e *Element) Mul(other *Element) *Element {
	return e.field.NewElement(new(big.Int).Mul(e.value, other.value))
}

// Exp returns e raised to a non-negative integer exponent. e^0 == 1,
// including 0^0 == 1. The exponent is unsigned, so a negative exponent
// cannot be passed.
func (e *Element) Exp(exponent uint64) *Element {
	result := new(big.Int).Exp(e.value, new(big.Int).SetUint64(exponent), e.field.modulus)
	return e.field.NewElement(result)
}

// Equal reports whether e and other are the same canonical value in the
// same field.
func (e *Element) Equal(other *Element) bool {
	if !e.field.Equal(other.field) {
		return false
	}
	return e.value.Cmp(other.value) == 0
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

// HashKey returns a value suitable for use as a map key, consistent with
// Equal: equal elements produce equal keys.
func (e *Element) HashKey() string {
	return e.value.String()
}

// String renders the element's decimal value.
func (e *Element) String() string {
	return e.value.String()
}

// Bytes returns the element's canonical little-endian, fixed-width
// (ByteWidth-byte) encoding, zero-padded on the high end.
func (e *Element) Bytes() [ByteWidth]byte {
	var out [ByteWidth]byte
	raw := e.value.Bytes() // big-endian, no leading zeros
	for i, b := range raw {
		out[len(raw)-1-i] = b
	}
	return out
}

// BLS12381Modulus is the BLS12-381 scalar-field modulus, the reference
// prime for this system.
var BLS12381Modulus, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// BLS12381Field is the reference prime field, with multiplicative
// generator 7.
var BLS12381Field = NewField(BLS12381Modulus, 7)
