// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arbitrary generates values of the rpcwire types for property tests.
//
// The iterator functions yield a fixed set of boundary values first (zero, the
// single byte and nibble edges, the native integer limits, empty and maximum
// length sequences), followed by a configurable number of random values. The
// iterators are lazy and finite, and every range over them restarts from the
// configured seed, yielding the exact same values.
//
// The generator types implement testing/quick.Generator, mixing the boundary
// values into random draws.
package arbitrary

import (
	"iter"
	"math/big"
	"math/rand"

	"github.com/karalabe/rpcwire"
)

const (
	defaultMaxBytes = 64  // Byte sequence length cap if none configured
	defaultMaxBits  = 256 // Quantity bit length cap if none configured
)

// Config is the configuration of a generated value stream.
type Config struct {
	Seed     int64 // Seed of the random values, each iteration restarts from it
	Count    int   // Number of random values after the boundary ones
	MaxBytes int   // Maximum length of generated byte sequences (default 64)
	MaxBits  int   // Maximum bit length of generated quantities (default 256)
}

// sanitize fills in the defaults of any unset limits.
func (cfg Config) sanitize() Config {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if cfg.MaxBits <= 0 {
		cfg.MaxBits = defaultMaxBits
	}
	return cfg
}

// Quantities returns a stream of quantities of at most cfg.MaxBits bits.
// Boundary values exceeding the bit limit are skipped.
func Quantities(cfg Config) iter.Seq[rpcwire.Quantity] {
	cfg = cfg.sanitize()
	return func(yield func(rpcwire.Quantity) bool) {
		for _, q := range quantityBounds(cfg.MaxBits) {
			if !yield(q) {
				return
			}
		}
		r := rand.New(rand.NewSource(cfg.Seed))
		for i := 0; i < cfg.Count; i++ {
			if !yield(randomQuantity(r, cfg.MaxBits)) {
				return
			}
		}
	}
}

// Uint64s returns a stream of 64 bit quantities.
func Uint64s(cfg Config) iter.Seq[rpcwire.Uint64] {
	return func(yield func(rpcwire.Uint64) bool) {
		for _, n := range uint64Bounds {
			if !yield(n) {
				return
			}
		}
		r := rand.New(rand.NewSource(cfg.Seed))
		for i := 0; i < cfg.Count; i++ {
			if !yield(randomUint64(r)) {
				return
			}
		}
	}
}

// ByteSequences returns a stream of byte sequences of at most cfg.MaxBytes
// bytes.
func ByteSequences(cfg Config) iter.Seq[rpcwire.Bytes] {
	cfg = cfg.sanitize()
	return func(yield func(rpcwire.Bytes) bool) {
		for _, b := range bytesBounds(cfg.MaxBytes) {
			if !yield(b) {
				return
			}
		}
		r := rand.New(rand.NewSource(cfg.Seed))
		for i := 0; i < cfg.Count; i++ {
			if !yield(randomBytes(r, cfg.MaxBytes)) {
				return
			}
		}
	}
}

// Fixed returns a stream of fixed size byte sequences, starting with the all
// zero and the all 0xff values.
func Fixed[T rpcwire.FixedBytes](cfg Config) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range fixedBounds[T]() {
			if !yield(v) {
				return
			}
		}
		r := rand.New(rand.NewSource(cfg.Seed))
		for i := 0; i < cfg.Count; i++ {
			if !yield(randomFixed[T](r)) {
				return
			}
		}
	}
}

// quantityBounds returns the boundary quantities fitting into maxBits bits.
func quantityBounds(maxBits int) []rpcwire.Quantity {
	one := big.NewInt(1)
	pow := func(bits uint) *big.Int { return new(big.Int).Lsh(one, bits) }
	mask := func(bits uint) *big.Int { return new(big.Int).Sub(pow(bits), one) }

	candidates := []*big.Int{
		new(big.Int),           // zero
		big.NewInt(1),          // one
		big.NewInt(0xf),        // largest single nibble
		big.NewInt(0x10),       // smallest two nibbles
		big.NewInt(0xff),       // largest single byte
		big.NewInt(0x100),      // smallest two bytes
		mask(64),               // largest uint64
		pow(64),                // smallest beyond uint64
		mask(256),              // largest uint256
		mask(uint(maxBits)),    // largest allowed
		pow(uint(maxBits) - 1), // smallest with the full bit length
	}
	var (
		bounds []rpcwire.Quantity
		seen   = make(map[string]bool)
	)
	for _, n := range candidates {
		if n.BitLen() > maxBits || seen[n.String()] {
			continue
		}
		seen[n.String()] = true

		q, _ := rpcwire.QuantityFromBig(n)
		bounds = append(bounds, q)
	}
	return bounds
}

// uint64Bounds are the boundary 64 bit quantities.
var uint64Bounds = []rpcwire.Uint64{
	0, 1, 0xf, 0x10, 0xff, 0x100, 1<<32 - 1, 1 << 32, 1 << 63, 1<<64 - 1,
}

// bytesBounds returns the boundary byte sequences of at most maxBytes bytes.
func bytesBounds(maxBytes int) []rpcwire.Bytes {
	full := make(rpcwire.Bytes, maxBytes)
	for i := range full {
		full[i] = byte(i)
	}
	return []rpcwire.Bytes{{}, {0x00}, {0xff}, full}
}

// fixedBounds returns the all zero and all 0xff fixed size values.
func fixedBounds[T rpcwire.FixedBytes]() []T {
	var zero T

	ones := make([]byte, len(zero))
	for i := range ones {
		ones[i] = 0xff
	}
	full, _ := rpcwire.FixedFromBytes[T](ones)
	return []T{zero, full}
}

// randomQuantity generates a quantity with a uniformly random bit length up to
// maxBits and random bits below the top one.
func randomQuantity(r *rand.Rand, maxBits int) rpcwire.Quantity {
	bits := r.Intn(maxBits + 1)
	if bits == 0 {
		return rpcwire.Quantity{}
	}
	n := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
	n.SetBit(n, bits-1, 1)

	q, _ := rpcwire.QuantityFromBig(n)
	return q
}

// randomUint64 generates a 64 bit quantity with a uniformly random bit length.
func randomUint64(r *rand.Rand) rpcwire.Uint64 {
	bits := r.Intn(65)
	if bits == 0 {
		return 0
	}
	return rpcwire.Uint64(r.Uint64()>>(64-bits) | 1<<(bits-1))
}

// randomBytes generates a byte sequence of uniformly random length up to
// maxBytes.
func randomBytes(r *rand.Rand, maxBytes int) rpcwire.Bytes {
	b := make(rpcwire.Bytes, r.Intn(maxBytes+1))
	r.Read(b)
	return b
}

// randomFixed generates a fixed size value of random bytes.
func randomFixed[T rpcwire.FixedBytes](r *rand.Rand) T {
	var v T

	b := make([]byte, len(v))
	r.Read(b)
	v, _ = rpcwire.FixedFromBytes[T](b)
	return v
}
