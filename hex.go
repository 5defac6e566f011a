// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// hexPrefix is the only prefix accepted by the decoders and emitted by the
// encoders. The uppercase 0X variant is rejected.
const hexPrefix = "0x"

// ParseQuantity decodes a 0x prefixed hex string into an unsigned integer of
// arbitrary size. The checks are done in order:
//
//   - The input must start with 0x and contain at least one digit; otherwise
//     ErrMalformedHex is returned.
//   - Every character after the prefix must be a hex digit (either case);
//     otherwise ErrInvalidDigit is returned.
//   - In strict mode, a multi digit number must not start with 0; otherwise
//     ErrLeadingZero is returned.
func ParseQuantity(text string, mode DecodeMode) (*big.Int, error) {
	raw, err := checkQuantity(text, mode)
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(raw, 16)
	if !ok {
		// Digits were already validated, no way to get here really
		return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, text)
	}
	return n, nil
}

// FormatQuantity encodes an unsigned integer as a 0x prefixed hex string with
// the minimal number of lowercase digits. Zero (and nil) is encoded as "0x0".
//
// The number must not be negative. Negative numbers are encoded with a leading
// minus sign, which none of the decoders in this package accept.
func FormatQuantity(n *big.Int) string {
	return string(appendQuantity(make([]byte, 0, 2+(bitLen(n)+3)/4), n))
}

// appendQuantity appends the canonical text form of n to dst.
func appendQuantity(dst []byte, n *big.Int) []byte {
	if n == nil || n.Sign() == 0 {
		return append(dst, "0x0"...)
	}
	if n.Sign() < 0 {
		dst = append(dst, '-')
		return new(big.Int).Neg(n).Append(append(dst, hexPrefix...), 16)
	}
	return n.Append(append(dst, hexPrefix...), 16)
}

// ParseUint64 is a fast path of ParseQuantity for numbers that must fit into
// 64 bits. Larger numbers are rejected with ErrOverflow.
func ParseUint64(text string, mode DecodeMode) (uint64, error) {
	raw, err := checkQuantity(text, mode)
	if err != nil {
		return 0, err
	}
	// Leniently decoded numbers might have an arbitrary number of zeroes in
	// front, which strconv would count against the 64 bit limit.
	if raw = strings.TrimLeft(raw, "0"); raw == "" {
		return 0, nil
	}
	if len(raw) > 16 {
		return 0, fmt.Errorf("%w: %d digits > 64 bits", ErrOverflow, len(raw))
	}
	n, err := strconv.ParseUint(raw, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDigit, err)
	}
	return n, nil
}

// FormatUint64 is a fast path of FormatQuantity for 64 bit numbers.
func FormatUint64(n uint64) string {
	return string(appendUint64(make([]byte, 0, 18), n))
}

// appendUint64 appends the canonical text form of n to dst.
func appendUint64(dst []byte, n uint64) []byte {
	return strconv.AppendUint(append(dst, hexPrefix...), n, 16)
}

// ParseBytes decodes a 0x prefixed hex string into a byte sequence. The checks
// are done in order:
//
//   - The input must start with 0x; otherwise ErrMalformedHex is returned.
//   - The number of digits must be even; otherwise ErrOddLength is returned.
//   - Every character after the prefix must be a hex digit (either case);
//     otherwise ErrInvalidDigit is returned.
//
// The empty string "0x" decodes into an empty, non-nil slice.
func ParseBytes(text string) ([]byte, error) {
	raw, err := checkBytes(text)
	if err != nil {
		return nil, err
	}
	dec := make([]byte, len(raw)/2)
	if _, err := hex.Decode(dec, []byte(raw)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDigit, err)
	}
	return dec, nil
}

// FormatBytes encodes a byte sequence as a 0x prefixed string of lowercase hex
// digits, two per byte. The empty sequence is encoded as "0x".
func FormatBytes(b []byte) string {
	return string(appendBytes(make([]byte, 0, 2+2*len(b)), b))
}

// appendBytes appends the canonical text form of b to dst.
func appendBytes(dst []byte, b []byte) []byte {
	dst = append(dst, hexPrefix...)
	return hex.AppendEncode(dst, b)
}

// checkQuantity validates the quantity grammar and returns the digits after
// the 0x prefix.
func checkQuantity(text string, mode DecodeMode) (string, error) {
	if !has0xPrefix(text) {
		return "", fmt.Errorf("%w: missing 0x prefix in %s", ErrMalformedHex, quoteShort(text))
	}
	raw := text[len(hexPrefix):]
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: quantity without digits", ErrMalformedHex)
	}
	if i := invalidDigit(raw); i >= 0 {
		return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, raw[i], i+len(hexPrefix))
	}
	if mode == Strict && len(raw) > 1 && raw[0] == '0' {
		return "", fmt.Errorf("%w: %s", ErrLeadingZero, quoteShort(text))
	}
	return raw, nil
}

// checkBytes validates the byte sequence grammar and returns the digits after
// the 0x prefix.
func checkBytes(text string) (string, error) {
	if !has0xPrefix(text) {
		return "", fmt.Errorf("%w: missing 0x prefix in %s", ErrMalformedHex, quoteShort(text))
	}
	raw := text[len(hexPrefix):]
	if len(raw)%2 != 0 {
		return "", fmt.Errorf("%w: %d digits", ErrOddLength, len(raw))
	}
	if i := invalidDigit(raw); i >= 0 {
		return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, raw[i], i+len(hexPrefix))
	}
	return raw, nil
}

// has0xPrefix checks whether the input starts with the lowercase 0x prefix.
func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && input[1] == 'x'
}

// invalidDigit returns the index of the first non-hex character in the input,
// or -1 if all of them are valid.
func invalidDigit(raw string) int {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return i
		}
	}
	return -1
}

// quoteShort quotes the input for error messages, truncating it if it's long
// enough to drown out the actual error.
func quoteShort(text string) string {
	const limit = 24
	if len(text) > limit {
		return strconv.Quote(text[:limit]) + "..."
	}
	return strconv.Quote(text)
}

// bitLen returns the bit length of n, treating nil as zero.
func bitLen(n *big.Int) int {
	if n == nil {
		return 0
	}
	return n.BitLen()
}
