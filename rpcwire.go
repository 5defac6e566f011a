// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rpcwire implements the canonical value types of the Ethereum JSON-RPC
// and engine APIs: quantities, byte sequences and fixed size byte sequences.
//
// Every type has a text form following the JSON-RPC hex grammar:
//
//   - Quantities are 0x prefixed, with the minimal number of lowercase digits.
//     Zero is encoded as "0x0".
//   - Byte sequences are 0x prefixed, with two lowercase digits per byte. The
//     empty sequence is encoded as "0x".
//
// Decoding accepts upper and lower case digits, but nothing else: a missing
// prefix, a stray character, an odd digit count on a byte sequence or (in
// strict mode) a leading zero on a quantity are all rejected.
//
// Binary forms are compiled in by default and can be removed with build tags:
// RLP (go-ethereum/rlp) is dropped by -tags norlp, SSZ (the rpcwire/ssz codec)
// by -tags nossz. The RLPEnabled and SSZEnabled constants report which ones a
// binary was built with.
package rpcwire

import (
	"encoding"
	"fmt"
)

// DecodeMode selects how strictly quantities are decoded from text or binary.
//
// Some RPC fields historically tolerated leading zeroes, so the mode is always
// picked by the call site (or a policy keyed by the call site), never globally.
type DecodeMode int

const (
	// Strict only accepts the canonical form (no leading zero digits or bytes).
	Strict DecodeMode = iota

	// Lenient additionally accepts leading zero digits or bytes.
	Lenient
)

// String implements fmt.Stringer.
func (m DecodeMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("DecodeMode(%d)", int(m))
	}
}

// ParseDecodeMode converts a mode name ("strict" or "lenient") into a mode.
func ParseDecodeMode(name string) (DecodeMode, error) {
	switch name {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return 0, fmt.Errorf("rpcwire: unknown decode mode %q", name)
	}
}

// TextCodec is the capability every value type in this package has: encoding
// to and decoding from the JSON-RPC hex grammar.
type TextCodec interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

var (
	_ TextCodec = (*Quantity)(nil)
	_ TextCodec = (*LenientQuantity)(nil)
	_ TextCodec = (*Uint64)(nil)
	_ TextCodec = (*Bytes)(nil)
	_ TextCodec = (*B64)(nil)
	_ TextCodec = (*Address)(nil)
	_ TextCodec = (*Hash)(nil)
	_ TextCodec = (*Signature)(nil)
	_ TextCodec = (*Bloom)(nil)
)
