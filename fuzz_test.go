// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"errors"
	"strings"
	"testing"
)

func FuzzParseQuantity(f *testing.F) {
	for _, seed := range []string{"", "0x", "0x0", "0x00", "0X1", "0x1", "0xAbC", "0x0001", "0xg", "0xffffffffffffffff", "0x10000000000000000"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, text string) {
		strict, serr := ParseQuantity(text, Strict)
		lenient, lerr := ParseQuantity(text, Lenient)

		// Strictness may only reject more inputs, never decode differently
		switch {
		case lerr != nil && serr == nil:
			t.Fatalf("strictly accepted, leniently rejected: %q: %v", text, lerr)
		case serr == nil && strict.Cmp(lenient) != 0:
			t.Fatalf("strict and lenient mismatch: %q: %v != %v", text, strict, lenient)
		case serr != nil && lerr == nil && !errors.Is(serr, ErrLeadingZero):
			t.Fatalf("strict only rejection not a leading zero: %q: %v", text, serr)
		}
		if lerr != nil {
			if _, err := ParseUint64(text, Lenient); err == nil {
				t.Fatalf("uint64 accepted invalid quantity: %q", text)
			}
			return
		}
		// Valid quantities must round trip through the canonical form
		canon := FormatQuantity(lenient)
		if serr == nil && canon != strings.ToLower(text) {
			t.Fatalf("canonical form mismatch: have %s, want %s", canon, strings.ToLower(text))
		}
		back, err := ParseQuantity(canon, Strict)
		if err != nil || back.Cmp(lenient) != 0 {
			t.Fatalf("canonical form didn't round trip: %s: %v", canon, err)
		}
		// The 64 bit fast path must agree with the big one
		n, err := ParseUint64(text, Lenient)
		switch {
		case lenient.IsUint64() && (err != nil || n != lenient.Uint64()):
			t.Fatalf("uint64 mismatch: %q: have %d/%v, want %v", text, n, err, lenient)
		case !lenient.IsUint64() && !errors.Is(err, ErrOverflow):
			t.Fatalf("uint64 overflow not detected: %q: %v", text, err)
		}
	})
}

func FuzzParseBytes(f *testing.F) {
	for _, seed := range []string{"", "0x", "0x0", "0x00", "0X00", "0xDEADbeef", "0xzz", "dead"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, text string) {
		b, err := ParseBytes(text)
		if err != nil {
			if _, ferr := ParseFixed[Hash](text); ferr == nil {
				t.Fatalf("hash accepted invalid bytes: %q", text)
			}
			return
		}
		if have, want := FormatBytes(b), strings.ToLower(text); have != want {
			t.Fatalf("canonical form mismatch: have %s, want %s", have, want)
		}
		h, err := ParseFixed[Hash](text)
		switch {
		case len(b) == len(h) && (err != nil || string(h[:]) != string(b)):
			t.Fatalf("hash mismatch: %q: have %x/%v, want %x", text, h, err, b)
		case len(b) != len(h) && !errors.Is(err, ErrLengthMismatch):
			t.Fatalf("hash length not checked: %q: %v", text, err)
		}
	})
}
