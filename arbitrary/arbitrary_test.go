// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package arbitrary

import (
	"bytes"
	"slices"
	"testing"
	"testing/quick"

	"github.com/karalabe/rpcwire"
)

// Tests that the streams yield the boundary values followed by the requested
// number of random ones.
func TestStreamLengths(t *testing.T) {
	cfg := Config{Seed: 1, Count: 100}

	if have, want := len(slices.Collect(Quantities(cfg))), len(quantityBounds(defaultMaxBits))+100; have != want {
		t.Errorf("quantity count mismatch: have %d, want %d", have, want)
	}
	if have, want := len(slices.Collect(Uint64s(cfg))), len(uint64Bounds)+100; have != want {
		t.Errorf("uint64 count mismatch: have %d, want %d", have, want)
	}
	if have, want := len(slices.Collect(ByteSequences(cfg))), 4+100; have != want {
		t.Errorf("bytes count mismatch: have %d, want %d", have, want)
	}
	if have, want := len(slices.Collect(Fixed[rpcwire.Address](cfg))), 2+100; have != want {
		t.Errorf("address count mismatch: have %d, want %d", have, want)
	}
}

// Tests that ranging over the same stream twice yields the same values.
func TestStreamsRestartable(t *testing.T) {
	cfg := Config{Seed: 42, Count: 50}

	qs := Quantities(cfg)
	first, second := slices.Collect(qs), slices.Collect(qs)
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("quantity %d mismatch: first %v, second %v", i, first[i], second[i])
		}
	}
	bs := ByteSequences(cfg)
	firstBytes, secondBytes := slices.Collect(bs), slices.Collect(bs)
	for i := range firstBytes {
		if !bytes.Equal(firstBytes[i], secondBytes[i]) {
			t.Fatalf("bytes %d mismatch: first %v, second %v", i, firstBytes[i], secondBytes[i])
		}
	}
	hs := Fixed[rpcwire.Hash](cfg)
	if !slices.Equal(slices.Collect(hs), slices.Collect(hs)) {
		t.Fatalf("hash stream not restartable")
	}
}

// Tests that the configured limits are honored, and that the boundary values
// are reachable.
func TestStreamLimits(t *testing.T) {
	cfg := Config{Seed: 7, Count: 200, MaxBytes: 5, MaxBits: 70}

	var sawMax bool
	for q := range Quantities(cfg) {
		if q.BitLen() > cfg.MaxBits {
			t.Fatalf("quantity %v exceeds %d bits", q, cfg.MaxBits)
		}
		if q.BitLen() == cfg.MaxBits {
			sawMax = true
		}
	}
	if !sawMax {
		t.Errorf("no quantity of the maximum bit length generated")
	}
	for b := range ByteSequences(cfg) {
		if len(b) > cfg.MaxBytes {
			t.Fatalf("byte sequence %v exceeds %d bytes", b, cfg.MaxBytes)
		}
	}
	var zeroes, ones int
	for q := range Quantities(Config{MaxBits: 64}) {
		switch q.String() {
		case "0x0":
			zeroes++
		case "0xffffffffffffffff":
			ones++
		}
	}
	if zeroes != 1 || ones != 1 {
		t.Errorf("boundary duplication: zeroes %d, ones %d", zeroes, ones)
	}
}

// Tests that early termination of a range loop is respected.
func TestStreamBreak(t *testing.T) {
	var n int
	for range Uint64s(Config{Count: 1000}) {
		if n++; n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("iteration count mismatch: have %d, want 3", n)
	}
}

// Tests that the quick generators can drive property checks.
func TestQuickGenerators(t *testing.T) {
	if err := quick.Check(func(q Quantity) bool { return q.BitLen() <= 256 }, nil); err != nil {
		t.Error(err)
	}
	if err := quick.Check(func(n Uint64, b Bytes) bool {
		return rpcwire.Uint64(n).String() != "" && len(b) <= 100
	}, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
	if err := quick.Check(func(v Value[rpcwire.Bloom]) bool {
		return len(v.Fixed.Bytes()) == 256
	}, nil); err != nil {
		t.Error(err)
	}
}
