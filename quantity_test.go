// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

// Tests the various ways of constructing quantities, and that they all yield
// equal values for equal numbers.
func TestQuantityConstructors(t *testing.T) {
	want := MustParseQuantity("0x10")

	fromBig, err := QuantityFromBig(big.NewInt(16))
	if err != nil {
		t.Fatalf("failed to create from big: %v", err)
	}
	fromBytes, err := DecodeQuantityBytes([]byte{0x10}, Strict)
	if err != nil {
		t.Fatalf("failed to create from bytes: %v", err)
	}
	fromLenient, err := DecodeQuantity("0x00010", Lenient)
	if err != nil {
		t.Fatalf("failed to decode leniently: %v", err)
	}
	for i, q := range []Quantity{NewQuantity(16), fromBig, QuantityFromUint256(uint256.NewInt(16)), fromBytes, fromLenient} {
		if !q.Equal(want) {
			t.Errorf("constructor %d: value mismatch: have %v, want %v", i, q, want)
		}
	}
	// Zero in all its forms must be the zero value
	zeroBig, _ := QuantityFromBig(new(big.Int))
	zeroNil, _ := QuantityFromBig(nil)
	zeroBytes, _ := DecodeQuantityBytes(nil, Strict)
	for i, q := range []Quantity{NewQuantity(0), zeroBig, zeroNil, QuantityFromUint256(nil), QuantityFromUint256(new(uint256.Int)), zeroBytes, MustParseQuantity("0x0")} {
		if !q.IsZero() || q != (Quantity{}) {
			t.Errorf("zero constructor %d: not the zero value: %v", i, q)
		}
	}
}

// Tests that quantities don't alias the big integers they were created from or
// handed out.
func TestQuantityImmutable(t *testing.T) {
	n := big.NewInt(100)
	q, _ := QuantityFromBig(n)

	n.SetInt64(200)
	if q.String() != "0x64" {
		t.Errorf("quantity modified via source: %v", q)
	}
	q.Big().SetInt64(300)
	if q.String() != "0x64" {
		t.Errorf("quantity modified via accessor: %v", q)
	}
}

// Tests that invalid constructor inputs are rejected.
func TestQuantityConstructorErrors(t *testing.T) {
	if _, err := QuantityFromBig(big.NewInt(-1)); !errors.Is(err, ErrNegative) {
		t.Errorf("negative error mismatch: have %v, want %v", err, ErrNegative)
	}
	if _, err := DecodeQuantityBytes([]byte{0x00, 0x10}, Strict); !errors.Is(err, ErrNonCanonicalEncoding) {
		t.Errorf("leading zero byte error mismatch: have %v, want %v", err, ErrNonCanonicalEncoding)
	}
	if q, err := DecodeQuantityBytes([]byte{0x00, 0x10}, Lenient); err != nil || q.String() != "0x10" {
		t.Errorf("lenient leading zero byte mismatch: have %v/%v, want 0x10", q, err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("invalid constant did not panic")
		}
	}()
	MustParseQuantity("0x01")
}

// Tests the native integer accessors and their overflow detection.
func TestQuantityAccessors(t *testing.T) {
	maxU64 := MustParseQuantity("0xffffffffffffffff")
	if n, err := maxU64.Uint64(); err != nil || n != 1<<64-1 {
		t.Errorf("uint64 mismatch: have %d/%v, want %d", n, err, uint64(1<<64-1))
	}
	if _, err := MustParseQuantity("0x10000000000000000").Uint64(); !errors.Is(err, ErrOverflow) {
		t.Errorf("uint64 overflow mismatch: have %v, want %v", err, ErrOverflow)
	}
	if n, err := maxU64.Uint256(); err != nil || !n.IsUint64() || n.Uint64() != 1<<64-1 {
		t.Errorf("uint256 mismatch: have %v/%v", n, err)
	}
	big257 := new(big.Int).Lsh(big.NewInt(1), 256)
	q, _ := QuantityFromBig(big257)
	if _, err := q.Uint256(); !errors.Is(err, ErrOverflow) {
		t.Errorf("uint256 overflow mismatch: have %v, want %v", err, ErrOverflow)
	}
	if q.BitLen() != 257 {
		t.Errorf("bit length mismatch: have %d, want 257", q.BitLen())
	}
	if b := (Quantity{}).Bytes(); b == nil || len(b) != 0 {
		t.Errorf("zero bytes mismatch: have %#v, want empty", b)
	}
	if n, err := (Quantity{}).Uint64(); err != nil || n != 0 {
		t.Errorf("zero uint64 mismatch: have %d/%v", n, err)
	}
	if n, err := (Quantity{}).Uint256(); err != nil || !n.IsZero() {
		t.Errorf("zero uint256 mismatch: have %v/%v", n, err)
	}
}

// Tests that quantities are totally ordered.
func TestQuantityCmp(t *testing.T) {
	ordered := []Quantity{{}, NewQuantity(1), NewQuantity(255), MustParseQuantity("0x10000000000000000")}
	for i := range ordered {
		for j := range ordered {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if have := ordered[i].Cmp(ordered[j]); have != want {
				t.Errorf("cmp(%v, %v) mismatch: have %d, want %d", ordered[i], ordered[j], have, want)
			}
		}
	}
}

// Tests that equality of quantities is by value, independent of the codec they
// were decoded with, and that every zero quantity is the zero value.
func TestQuantityEqual(t *testing.T) {
	text, err := DecodeQuantity("0x1234", Strict)
	if err != nil {
		t.Fatalf("failed to decode text: %v", err)
	}
	binary, err := DecodeQuantityBytes([]byte{0x12, 0x34}, Strict)
	if err != nil {
		t.Fatalf("failed to decode bytes: %v", err)
	}
	if !text.Equal(binary) || text.Cmp(binary) != 0 {
		t.Errorf("text and binary quantities differ: %v, %v", text, binary)
	}
	if text == binary {
		t.Errorf("distinct quantities share their internal integer")
	}
	zeroes := []Quantity{NewQuantity(0), MustParseQuantity("0x0"), QuantityFromUint256(new(uint256.Int))}
	if q, err := DecodeQuantityBytes(nil, Strict); err != nil {
		t.Fatalf("failed to decode empty bytes: %v", err)
	} else {
		zeroes = append(zeroes, q)
	}
	if q, err := QuantityFromBig(new(big.Int)); err != nil {
		t.Fatalf("failed to convert zero integer: %v", err)
	} else {
		zeroes = append(zeroes, q)
	}
	for i, q := range zeroes {
		if q != (Quantity{}) {
			t.Errorf("zero %d: not the zero value: %#v", i, q)
		}
	}
}

// Tests the JSON encoding of quantities, both strict and lenient.
func TestQuantityJSON(t *testing.T) {
	type fields struct {
		Strict  Quantity        `json:"strict"`
		Lenient LenientQuantity `json:"lenient"`
		Native  Uint64          `json:"native"`
	}
	var v fields
	if err := json.Unmarshal([]byte(`{"strict":"0xff","lenient":"0x00ff","native":"0x10"}`), &v); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if v.Strict.String() != "0xff" || v.Lenient.String() != "0xff" || v.Native != 16 {
		t.Errorf("decoded mismatch: %+v", v)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if have, want := string(out), `{"strict":"0xff","lenient":"0xff","native":"0x10"}`; have != want {
		t.Errorf("encoded mismatch: have %s, want %s", have, want)
	}
	// Strict fields must reject what lenient ones accept
	if err := json.Unmarshal([]byte(`{"strict":"0x00ff"}`), &v); !errors.Is(err, ErrLeadingZero) {
		t.Errorf("strict error mismatch: have %v, want %v", err, ErrLeadingZero)
	}
	if err := json.Unmarshal([]byte(`{"native":"0x0010"}`), &v); !errors.Is(err, ErrLeadingZero) {
		t.Errorf("native error mismatch: have %v, want %v", err, ErrLeadingZero)
	}
	// Non-string JSON values must be rejected with type errors
	for _, input := range []string{`{"strict":255}`, `{"lenient":null}`, `{"native":true}`} {
		var typeErr *json.UnmarshalTypeError
		if err := json.Unmarshal([]byte(input), &v); !errors.As(err, &typeErr) {
			t.Errorf("%s: error mismatch: have %v, want type error", input, err)
		}
	}
}

// Tests that a failed decode does not modify the target.
func TestQuantityUnmarshalAtomic(t *testing.T) {
	q := NewQuantity(42)
	if err := q.UnmarshalText([]byte("0xzz")); err == nil {
		t.Fatalf("invalid input accepted")
	}
	if q.String() != "0x2a" {
		t.Errorf("quantity modified on failure: %v", q)
	}
	n := Uint64(42)
	if err := n.UnmarshalText([]byte("0x10000000000000000")); err == nil {
		t.Fatalf("overflowing input accepted")
	}
	if n != 42 {
		t.Errorf("uint64 modified on failure: %v", n)
	}
}

// Tests the decode mode names.
func TestDecodeModeNames(t *testing.T) {
	for _, mode := range []DecodeMode{Strict, Lenient} {
		parsed, err := ParseDecodeMode(mode.String())
		if err != nil || parsed != mode {
			t.Errorf("%v: round trip mismatch: have %v/%v", mode, parsed, err)
		}
	}
	if _, err := ParseDecodeMode("Strict"); err == nil {
		t.Errorf("mode names should be case sensitive")
	}
	if have := DecodeMode(7).String(); have != "DecodeMode(7)" {
		t.Errorf("unknown mode name mismatch: have %s", have)
	}
}
