// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"encoding/hex"
	"fmt"
	"unsafe"
)

//go:generate go run ./cmd/fixedgen --type B64,Address,Hash,Signature,Bloom --out gen_fixed.go

// FixedBytes is the set of fixed size byte arrays with a JSON-RPC text form.
//
// Go's generics cannot express "an array of any length", so every supported
// length needs to be listed explicitly.
type FixedBytes interface {
	~[8]byte | ~[20]byte | ~[32]byte | ~[65]byte | ~[256]byte
}

// B64 is an 8 byte sequence, e.g. a proof-of-work block nonce.
type B64 [8]byte

// Address is a 20 byte account address.
type Address [20]byte

// Hash is a 32 byte hash, e.g. of a block, transaction or storage slot.
type Hash [32]byte

// Signature is a 65 byte recoverable secp256k1 signature in [R || S || V] form.
type Signature [65]byte

// Bloom is a 256 byte (2048 bit) log bloom filter.
type Bloom [256]byte

// ParseFixed decodes a 0x prefixed hex string into a fixed size byte array. On
// top of the byte sequence grammar checks, the number of decoded bytes must be
// exactly the array length, otherwise ErrLengthMismatch is returned.
func ParseFixed[T FixedBytes](text string) (T, error) {
	var v T

	raw, err := checkBytes(text)
	if err != nil {
		return v, err
	}
	if len(raw)/2 != len(v) {
		return v, fmt.Errorf("%w: have %d bytes, want %d", ErrLengthMismatch, len(raw)/2, len(v))
	}
	if _, err := hex.Decode(fixedSlice(&v), []byte(raw)); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrInvalidDigit, err)
	}
	return v, nil
}

// FixedFromBytes converts a byte slice into a fixed size byte array, failing
// with ErrLengthMismatch if the lengths differ. The input is copied.
func FixedFromBytes[T FixedBytes](b []byte) (T, error) {
	var v T
	if len(b) != len(v) {
		return v, fmt.Errorf("%w: have %d bytes, want %d", ErrLengthMismatch, len(b), len(v))
	}
	copy(fixedSlice(&v), b)
	return v, nil
}

// FormatFixed encodes a fixed size byte array into its canonical text form.
func FormatFixed[T FixedBytes](v T) string {
	return string(appendFixed(nil, &v))
}

// appendFixed appends the canonical text form of a fixed size array to dst.
func appendFixed[T FixedBytes](dst []byte, v *T) []byte {
	return appendBytes(dst, fixedSlice(v))
}

// unmarshalFixedText decodes the text form of a fixed size array into v. The
// target is left untouched on failure.
func unmarshalFixedText[T FixedBytes](v *T, input []byte) error {
	dec, err := ParseFixed[T](string(input))
	if err != nil {
		return err
	}
	*v = dec
	return nil
}

// fixedSlice returns a slice view of a fixed size array.
func fixedSlice[T FixedBytes](v *T) []byte {
	// The code below should have used `v[:]`, alas Go's generics compiler
	// is missing that: https://github.com/golang/go/issues/51740
	return unsafe.Slice(&(*v)[0], len(*v))
}
