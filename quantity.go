// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

var (
	quantityT        = reflect.TypeOf(Quantity{})
	lenientQuantityT = reflect.TypeOf(LenientQuantity{})
)

// Quantity is an arbitrary precision unsigned integer, marshalling as a JSON
// string in the canonical 0x prefixed hex form.
//
// Quantities are immutable values: none of the methods modify the receiver and
// all accessors hand out copies. The zero value is the number zero.
//
// Quantities must be compared with Equal or Cmp. The == operator compares the
// internal pointers, so two quantities holding the same number (say, one
// decoded from text and one from RLP) are usually not ==. The zero value is
// the only exception, every zero quantity is == Quantity{}.
type Quantity struct {
	n *big.Int // nil for zero, never modified once the Quantity is created
}

// NewQuantity creates a quantity out of a native integer.
func NewQuantity(n uint64) Quantity {
	if n == 0 {
		return Quantity{}
	}
	return Quantity{n: new(big.Int).SetUint64(n)}
}

// QuantityFromBig creates a quantity out of a big integer. The integer is copied
// so that later changes to it are not reflected in the quantity. A nil integer
// is treated as zero, negative ones are rejected with ErrNegative.
func QuantityFromBig(n *big.Int) (Quantity, error) {
	if n == nil {
		return Quantity{}, nil
	}
	if n.Sign() < 0 {
		return Quantity{}, fmt.Errorf("%w: %v", ErrNegative, n)
	}
	return wrapQuantity(new(big.Int).Set(n)), nil
}

// QuantityFromUint256 creates a quantity out of a 256 bit integer. A nil integer
// is treated as zero.
func QuantityFromUint256(n *uint256.Int) Quantity {
	if n == nil {
		return Quantity{}
	}
	return wrapQuantity(n.ToBig())
}

// DecodeQuantity parses a quantity from its text form, either strictly (only
// the canonical form is accepted) or leniently (leading zeroes are tolerated).
func DecodeQuantity(text string, mode DecodeMode) (Quantity, error) {
	n, err := ParseQuantity(text, mode)
	if err != nil {
		return Quantity{}, err
	}
	return wrapQuantity(n), nil
}

// MustParseQuantity parses a quantity from its canonical text form, panicking
// on invalid input. It is meant for constants and tests.
func MustParseQuantity(text string) Quantity {
	q, err := DecodeQuantity(text, Strict)
	if err != nil {
		panic(err)
	}
	return q
}

// DecodeQuantityBytes creates a quantity out of its binary form: the big-endian
// encoding of the number with no length restriction. An empty input is zero.
//
// In strict mode the encoding must be minimal, a leading zero byte is rejected
// with ErrNonCanonicalEncoding. In lenient mode leading zeroes are skipped.
func DecodeQuantityBytes(blob []byte, mode DecodeMode) (Quantity, error) {
	if mode == Strict && len(blob) > 0 && blob[0] == 0 {
		return Quantity{}, fmt.Errorf("%w: leading zero byte in %d byte integer", ErrNonCanonicalEncoding, len(blob))
	}
	return wrapQuantity(new(big.Int).SetBytes(blob)), nil
}

// wrapQuantity takes ownership of a non-negative big integer and wraps it into
// a quantity, normalizing zero to the zero value.
func wrapQuantity(n *big.Int) Quantity {
	if n.Sign() == 0 {
		return Quantity{}
	}
	return Quantity{n: n}
}

// Big returns a copy of the quantity as a big integer.
func (q Quantity) Big() *big.Int {
	if q.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(q.n)
}

// Uint64 returns the quantity as a native integer, or ErrOverflow if it doesn't
// fit into 64 bits.
func (q Quantity) Uint64() (uint64, error) {
	if q.n == nil {
		return 0, nil
	}
	if !q.n.IsUint64() {
		return 0, fmt.Errorf("%w: %d bits > 64 bits", ErrOverflow, q.n.BitLen())
	}
	return q.n.Uint64(), nil
}

// Uint256 returns the quantity as a 256 bit integer, or ErrOverflow if it does
// not fit into 256 bits.
func (q Quantity) Uint256() (*uint256.Int, error) {
	if q.n == nil {
		return new(uint256.Int), nil
	}
	n, overflow := uint256.FromBig(q.n)
	if overflow {
		return nil, fmt.Errorf("%w: %d bits > 256 bits", ErrOverflow, q.n.BitLen())
	}
	return n, nil
}

// Bytes returns the binary form of the quantity: the minimal big-endian encoding
// of the number. Zero is encoded as an empty slice.
func (q Quantity) Bytes() []byte {
	if q.n == nil {
		return []byte{}
	}
	return q.n.Bytes()
}

// BitLen returns the number of bits needed to represent the quantity.
func (q Quantity) BitLen() int {
	return bitLen(q.n)
}

// IsZero reports whether the quantity is zero.
func (q Quantity) IsZero() bool {
	return q.n == nil
}

// Cmp compares two quantities, returning -1, 0 or +1 if q is smaller, equal or
// larger than other.
func (q Quantity) Cmp(other Quantity) int {
	switch {
	case q.n == nil && other.n == nil:
		return 0
	case q.n == nil:
		return -1
	case other.n == nil:
		return 1
	default:
		return q.n.Cmp(other.n)
	}
}

// Equal reports whether two quantities hold the same number, independent of
// how they were created or decoded.
func (q Quantity) Equal(other Quantity) bool {
	return q.Cmp(other) == 0
}

// String returns the canonical text form of the quantity.
func (q Quantity) String() string {
	return FormatQuantity(q.n)
}

// MarshalText implements encoding.TextMarshaler.
func (q Quantity) MarshalText() ([]byte, error) {
	return appendQuantity(nil, q.n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting only the
// canonical form. Use LenientQuantity for fields that tolerate leading zeroes.
func (q *Quantity) UnmarshalText(input []byte) error {
	v, err := DecodeQuantity(string(input), Strict)
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return errNonString(quantityT)
	}
	return q.UnmarshalText(input[1 : len(input)-1])
}

// LenientQuantity is a quantity which tolerates leading zero digits when being
// decoded from text. It always encodes into the canonical form.
//
// The binary codecs of the embedded Quantity are strict regardless.
type LenientQuantity struct {
	Quantity
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *LenientQuantity) UnmarshalText(input []byte) error {
	v, err := DecodeQuantity(string(input), Lenient)
	if err != nil {
		return err
	}
	q.Quantity = v
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *LenientQuantity) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return errNonString(lenientQuantityT)
	}
	return q.UnmarshalText(input[1 : len(input)-1])
}
