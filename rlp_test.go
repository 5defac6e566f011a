// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !norlp

package rpcwire

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
)

// Tests the RLP encoding of quantities against known values.
func TestQuantityRLP(t *testing.T) {
	tests := []struct {
		text string
		rlp  string
	}{
		{"0x0", "80"},
		{"0x1", "01"},
		{"0x7f", "7f"},
		{"0x80", "8180"},
		{"0x400", "820400"},
		{"0xffffffffffffffff", "88ffffffffffffffff"},
		{"0x10000000000000000", "89010000000000000000"},
	}
	for _, tt := range tests {
		q := MustParseQuantity(tt.text)

		blob, err := rlp.EncodeToBytes(q)
		if err != nil {
			t.Errorf("%s: failed to encode: %v", tt.text, err)
			continue
		}
		if have := hex.EncodeToString(blob); have != tt.rlp {
			t.Errorf("%s: encoding mismatch: have %s, want %s", tt.text, have, tt.rlp)
		}
		var dec Quantity
		if err := rlp.DecodeBytes(blob, &dec); err != nil {
			t.Errorf("%s: failed to decode: %v", tt.text, err)
			continue
		}
		if !dec.Equal(q) {
			t.Errorf("%s: round trip mismatch: have %v, want %v", tt.text, dec, q)
		}
		// Native quantities must encode identically where they fit
		if n, err := q.Uint64(); err == nil {
			nblob, err := rlp.EncodeToBytes(Uint64(n))
			if err != nil || !bytes.Equal(nblob, blob) {
				t.Errorf("%s: native encoding mismatch: have %x/%v, want %x", tt.text, nblob, err, blob)
			}
		}
	}
}

// Tests that non-canonical RLP integers are rejected.
func TestQuantityRLPNonCanonical(t *testing.T) {
	for _, input := range []string{"00", "8100", "817f", "820001", "8800000000000000ff"} {
		blob, _ := hex.DecodeString(input)

		var q Quantity
		if err := rlp.DecodeBytes(blob, &q); !errors.Is(err, ErrNonCanonicalEncoding) {
			t.Errorf("%s: quantity error mismatch: have %v, want %v", input, err, ErrNonCanonicalEncoding)
		}
		var n Uint64
		if err := rlp.DecodeBytes(blob, &n); !errors.Is(err, ErrNonCanonicalEncoding) {
			t.Errorf("%s: uint64 error mismatch: have %v, want %v", input, err, ErrNonCanonicalEncoding)
		}
	}
	var n Uint64
	if err := rlp.DecodeBytes([]byte{0x89, 1, 0, 0, 0, 0, 0, 0, 0, 0}, &n); !errors.Is(err, ErrOverflow) {
		t.Errorf("uint64 overflow mismatch: have %v, want %v", err, ErrOverflow)
	}
	var q Quantity
	if err := rlp.DecodeBytes([]byte{0xc0}, &q); !errors.Is(err, rlp.ErrExpectedString) {
		t.Errorf("list error mismatch: have %v, want %v", err, rlp.ErrExpectedString)
	}
}

// Tests the RLP encoding of byte sequences.
func TestBytesRLP(t *testing.T) {
	tests := []struct {
		text string
		rlp  string
	}{
		{"0x", "80"},
		{"0x00", "00"},
		{"0x7f", "7f"},
		{"0x80", "8180"},
		{"0xdeadbeef", "84deadbeef"},
		{"0x" + strings.Repeat("ab", 56), "b838" + strings.Repeat("ab", 56)},
	}
	for _, tt := range tests {
		b, _ := DecodeBytes(tt.text)

		blob, err := rlp.EncodeToBytes(b)
		if err != nil {
			t.Errorf("%s: failed to encode: %v", tt.text, err)
			continue
		}
		if have := hex.EncodeToString(blob); have != tt.rlp {
			t.Errorf("%s: encoding mismatch: have %s, want %s", tt.text, have, tt.rlp)
		}
		var dec Bytes
		if err := rlp.DecodeBytes(blob, &dec); err != nil {
			t.Errorf("%s: failed to decode: %v", tt.text, err)
			continue
		}
		if !dec.Equal(b) {
			t.Errorf("%s: round trip mismatch: have %v, want %v", tt.text, dec, b)
		}
	}
	var b Bytes
	if err := rlp.DecodeBytes([]byte{0x81, 0x05}, &b); !errors.Is(err, ErrNonCanonicalEncoding) {
		t.Errorf("single byte error mismatch: have %v, want %v", err, ErrNonCanonicalEncoding)
	}
}

// Tests the RLP encoding of fixed size types, which must be exact length.
func TestFixedRLP(t *testing.T) {
	addr, _ := ParseAddress("0x" + strings.Repeat("11", 20))

	blob, err := rlp.EncodeToBytes(addr)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if have, want := hex.EncodeToString(blob), "94"+strings.Repeat("11", 20); have != want {
		t.Errorf("encoding mismatch: have %s, want %s", have, want)
	}
	var dec Address
	if err := rlp.DecodeBytes(blob, &dec); err != nil || dec != addr {
		t.Errorf("round trip mismatch: have %v/%v, want %v", dec, err, addr)
	}
	short, _ := rlp.EncodeToBytes(addr[:19])
	if err := rlp.DecodeBytes(short, &dec); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short error mismatch: have %v, want %v", err, ErrLengthMismatch)
	}
	if dec != addr {
		t.Errorf("address modified on failure: %v", dec)
	}
	// Fixed types embedded into RLP lists
	type tx struct {
		Nonce Uint64
		To    Address
		Value Quantity
		Data  Bytes
		Sig   Signature
	}
	in := tx{Nonce: 7, To: addr, Value: NewQuantity(1e18), Data: Bytes{0xca, 0xfe}, Sig: Signature{64: 27}}
	enc, err := rlp.EncodeToBytes(&in)
	if err != nil {
		t.Fatalf("failed to encode list: %v", err)
	}
	var out tx
	if err := rlp.DecodeBytes(enc, &out); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if out.Nonce != in.Nonce || out.To != in.To || !out.Value.Equal(in.Value) || !out.Data.Equal(in.Data) || out.Sig != in.Sig {
		t.Errorf("list round trip mismatch: have %+v, want %+v", out, in)
	}
}

// Tests that the text and RLP forms of a value are decoded independently, each
// with its own canonicality rules, yet yield equal values.
func TestCrossFormatIndependence(t *testing.T) {
	fromText := MustParseQuantity("0x10")

	var fromRLP Quantity
	if err := rlp.DecodeBytes([]byte{0x10}, &fromRLP); err != nil {
		t.Fatalf("failed to decode rlp: %v", err)
	}
	if !fromText.Equal(fromRLP) {
		t.Errorf("cross format mismatch: text %v, rlp %v", fromText, fromRLP)
	}
	// Leniently decoded text with leading zeroes still encodes canonically
	var lenient LenientQuantity
	if err := lenient.UnmarshalText([]byte("0x0010")); err != nil {
		t.Fatalf("failed to decode lenient text: %v", err)
	}
	blob, err := rlp.EncodeToBytes(lenient)
	if err != nil || !bytes.Equal(blob, []byte{0x10}) {
		t.Errorf("lenient rlp mismatch: have %x/%v, want 10", blob, err)
	}
	if !RLPEnabled {
		t.Errorf("rlp codecs compiled in but reported disabled")
	}
}
