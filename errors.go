// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import "errors"

// ErrMalformedHex is returned when a hex string is missing its 0x prefix, or
// when a quantity has no digits at all after the prefix.
var ErrMalformedHex = errors.New("rpcwire: malformed hex string")

// ErrInvalidDigit is returned when a character after the 0x prefix is not a
// hexadecimal digit.
var ErrInvalidDigit = errors.New("rpcwire: invalid hex digit")

// ErrOddLength is returned when a byte sequence is encoded with an odd number
// of hex digits. The input is never zero padded to fix it.
var ErrOddLength = errors.New("rpcwire: hex string of odd length")

// ErrLeadingZero is returned when a quantity decoded in strict mode has leading
// zero digits.
var ErrLeadingZero = errors.New("rpcwire: hex number with leading zero digits")

// ErrLengthMismatch is returned when a fixed size byte sequence is constructed
// or decoded from a different number of bytes than its declared length.
var ErrLengthMismatch = errors.New("rpcwire: byte length mismatch")

// ErrNonCanonicalEncoding is returned when a binary encoding of an integer is
// not minimal (e.g. contains leading zero bytes).
var ErrNonCanonicalEncoding = errors.New("rpcwire: non-canonical binary encoding")

// ErrOverflow is returned when a quantity does not fit into the bounded width
// requested by the caller (native integers, fixed width binary fields).
var ErrOverflow = errors.New("rpcwire: quantity exceeds width")

// ErrNegative is returned when a quantity is constructed from a negative big
// integer.
var ErrNegative = errors.New("rpcwire: negative quantity")
