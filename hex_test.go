// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
)

// Tests that quantities are parsed correctly, with the errors detected in the
// documented order.
func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input string
		mode  DecodeMode
		want  string // decimal form
		err   error
	}{
		{input: "0x0", want: "0"},
		{input: "0x1", want: "1"},
		{input: "0x10", want: "16"},
		{input: "0xff", want: "255"},
		{input: "0xFF", want: "255"},
		{input: "0xAbCd", want: "43981"},
		{input: "0x10000000000000000", want: "18446744073709551616"},
		{input: "0x" + strings.Repeat("f", 64), want: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)).String()},
		{input: "0x" + strings.Repeat("f", 100), want: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 400), big.NewInt(1)).String()},

		{input: "0x0010", mode: Lenient, want: "16"},
		{input: "0x00", mode: Lenient, want: "0"},
		{input: "0x0000", mode: Lenient, want: "0"},

		{input: "", err: ErrMalformedHex},
		{input: "0", err: ErrMalformedHex},
		{input: "10", err: ErrMalformedHex},
		{input: "0x", err: ErrMalformedHex},
		{input: "0x", mode: Lenient, err: ErrMalformedHex},
		{input: "0X10", err: ErrMalformedHex},
		{input: "x10", err: ErrMalformedHex},
		{input: " 0x10", err: ErrMalformedHex},
		{input: "0x1g", err: ErrInvalidDigit},
		{input: "0x10 ", err: ErrInvalidDigit},
		{input: "0x-1", err: ErrInvalidDigit},
		{input: "0x0g", err: ErrInvalidDigit}, // digits checked before leading zeroes
		{input: "0x00", err: ErrLeadingZero},
		{input: "0x01", err: ErrLeadingZero},
		{input: "0x0abc", err: ErrLeadingZero},
	}
	for _, tt := range tests {
		n, err := ParseQuantity(tt.input, tt.mode)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q (%v): error mismatch: have %v, want %v", tt.input, tt.mode, err, tt.err)
			continue
		}
		if err != nil {
			if n != nil {
				t.Errorf("%q (%v): value returned alongside error: %v", tt.input, tt.mode, n)
			}
			continue
		}
		if n.String() != tt.want {
			t.Errorf("%q (%v): value mismatch: have %v, want %v", tt.input, tt.mode, n, tt.want)
		}
	}
}

// Tests that quantities are formatted in their canonical form.
func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		input *big.Int
		want  string
	}{
		{nil, "0x0"},
		{big.NewInt(0), "0x0"},
		{big.NewInt(1), "0x1"},
		{big.NewInt(16), "0x10"},
		{big.NewInt(0xabcdef), "0xabcdef"},
		{new(big.Int).Lsh(big.NewInt(1), 64), "0x10000000000000000"},
	}
	for _, tt := range tests {
		if have := FormatQuantity(tt.input); have != tt.want {
			t.Errorf("%v: format mismatch: have %s, want %s", tt.input, have, tt.want)
		}
	}
}

// Tests the 64 bit fast paths, especially around the overflow boundary.
func TestParseUint64(t *testing.T) {
	tests := []struct {
		input string
		mode  DecodeMode
		want  uint64
		err   error
	}{
		{input: "0x0", want: 0},
		{input: "0x1", want: 1},
		{input: "0xffffffffffffffff", want: 1<<64 - 1},
		{input: "0xFFFFFFFFFFFFFFFF", want: 1<<64 - 1},
		{input: "0x000000000000000000ffffffffffffffff", mode: Lenient, want: 1<<64 - 1},
		{input: "0x0000", mode: Lenient, want: 0},

		{input: "0x10000000000000000", err: ErrOverflow},
		{input: "0x0010000000000000000", mode: Lenient, err: ErrOverflow},
		{input: "0x", err: ErrMalformedHex},
		{input: "1", err: ErrMalformedHex},
		{input: "0xx", err: ErrInvalidDigit},
		{input: "0x01", err: ErrLeadingZero},
	}
	for _, tt := range tests {
		n, err := ParseUint64(tt.input, tt.mode)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q (%v): error mismatch: have %v, want %v", tt.input, tt.mode, err, tt.err)
			continue
		}
		if err == nil && n != tt.want {
			t.Errorf("%q (%v): value mismatch: have %d, want %d", tt.input, tt.mode, n, tt.want)
		}
	}
	for _, n := range []uint64{0, 1, 15, 16, 255, 256, 1<<32 - 1, 1 << 63, 1<<64 - 1} {
		if have, want := FormatUint64(n), FormatQuantity(new(big.Int).SetUint64(n)); have != want {
			t.Errorf("%d: format mismatch: have %s, want %s", n, have, want)
		}
	}
}

// Tests that byte sequences are parsed correctly, with the errors detected in
// the documented order.
func TestParseBytes(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
		err   error
	}{
		{input: "0x", want: []byte{}},
		{input: "0x00", want: []byte{0x00}},
		{input: "0x0000", want: []byte{0x00, 0x00}},
		{input: "0xdeadbeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{input: "0xDEADBEEF", want: []byte{0xde, 0xad, 0xbe, 0xef}},

		{input: "", err: ErrMalformedHex},
		{input: "00", err: ErrMalformedHex},
		{input: "0X00", err: ErrMalformedHex},
		{input: "0x0", err: ErrOddLength},
		{input: "0xabc", err: ErrOddLength},
		{input: "0xzzz", err: ErrOddLength}, // length checked before digits
		{input: "0xzz", err: ErrInvalidDigit},
		{input: "0x0z", err: ErrInvalidDigit},
	}
	for _, tt := range tests {
		b, err := ParseBytes(tt.input)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: error mismatch: have %v, want %v", tt.input, err, tt.err)
			continue
		}
		if err != nil {
			continue
		}
		if b == nil || !bytes.Equal(b, tt.want) {
			t.Errorf("%q: value mismatch: have %#v, want %#v", tt.input, b, tt.want)
		}
	}
}

// Tests that byte sequences are formatted with lowercase digits.
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input []byte
		want  string
	}{
		{nil, "0x"},
		{[]byte{}, "0x"},
		{[]byte{0x00}, "0x00"},
		{[]byte{0xAB, 0xCD}, "0xabcd"},
	}
	for _, tt := range tests {
		if have := FormatBytes(tt.input); have != tt.want {
			t.Errorf("%x: format mismatch: have %s, want %s", tt.input, have, tt.want)
		}
	}
}

// Tests that overly long inputs are truncated in error messages.
func TestErrorTruncation(t *testing.T) {
	_, err := ParseQuantity(strings.Repeat("1", 1000), Strict)
	if !errors.Is(err, ErrMalformedHex) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrMalformedHex)
	}
	if len(err.Error()) > 100 {
		t.Errorf("error message not truncated: %d chars", len(err.Error()))
	}
}
