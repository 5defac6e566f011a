// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"bytes"
	"reflect"
)

var bytesT = reflect.TypeOf(Bytes(nil))

// Bytes is a variable length byte sequence, marshalling as a JSON string of two
// hex digits per byte. The nil and the empty sequence are equal and both encode
// as "0x".
type Bytes []byte

// DecodeBytes parses a byte sequence from its text form.
func DecodeBytes(text string) (Bytes, error) {
	b, err := ParseBytes(text)
	if err != nil {
		return nil, err
	}
	return Bytes(b), nil
}

// String returns the canonical text form of the byte sequence.
func (b Bytes) String() string {
	return FormatBytes(b)
}

// Equal reports whether two byte sequences hold the same bytes.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b, other)
}

// Cmp compares two byte sequences lexicographically.
func (b Bytes) Cmp(other Bytes) int {
	return bytes.Compare(b, other)
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return appendBytes(make([]byte, 0, 2+2*len(b)), b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is only
// overwritten if the input is valid.
func (b *Bytes) UnmarshalText(input []byte) error {
	v, err := DecodeBytes(string(input))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return errNonString(bytesT)
	}
	return b.UnmarshalText(input[1 : len(input)-1])
}
