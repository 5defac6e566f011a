// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import "reflect"

var uint64T = reflect.TypeOf(Uint64(0))

// Uint64 is a quantity bounded to 64 bits, for the many RPC fields (block
// numbers, gas, nonces, timestamps) that never exceed it. It shares the text
// grammar of Quantity but decodes without big integer allocations.
type Uint64 uint64

// DecodeUint64 parses a 64 bit quantity from its text form in the given mode.
func DecodeUint64(text string, mode DecodeMode) (Uint64, error) {
	n, err := ParseUint64(text, mode)
	if err != nil {
		return 0, err
	}
	return Uint64(n), nil
}

// Quantity converts the number into an arbitrary precision quantity.
func (n Uint64) Quantity() Quantity {
	return NewQuantity(uint64(n))
}

// String returns the canonical text form of the number.
func (n Uint64) String() string {
	return FormatUint64(uint64(n))
}

// MarshalText implements encoding.TextMarshaler.
func (n Uint64) MarshalText() ([]byte, error) {
	return appendUint64(nil, uint64(n)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting only the
// canonical form.
func (n *Uint64) UnmarshalText(input []byte) error {
	v, err := DecodeUint64(string(input), Strict)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Uint64) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return errNonString(uint64T)
	}
	return n.UnmarshalText(input[1 : len(input)-1])
}
