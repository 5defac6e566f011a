// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package arbitrary

import (
	"math/rand"
	"reflect"
	"testing/quick"

	"github.com/karalabe/rpcwire"
)

var (
	_ quick.Generator = Quantity{}
	_ quick.Generator = Uint64(0)
	_ quick.Generator = Bytes(nil)
	_ quick.Generator = Value[rpcwire.Hash]{}
)

// boundaryOdds is the chance (one in boundaryOdds) that a generator returns a
// boundary value instead of a random one.
const boundaryOdds = 4

// Quantity is a quick.Generator of quantities up to 256 bits.
type Quantity struct {
	rpcwire.Quantity
}

// Generate implements quick.Generator.
func (Quantity) Generate(r *rand.Rand, size int) reflect.Value {
	if r.Intn(boundaryOdds) == 0 {
		bounds := quantityBounds(defaultMaxBits)
		return reflect.ValueOf(Quantity{bounds[r.Intn(len(bounds))]})
	}
	return reflect.ValueOf(Quantity{randomQuantity(r, defaultMaxBits)})
}

// Uint64 is a quick.Generator of 64 bit quantities.
type Uint64 rpcwire.Uint64

// Generate implements quick.Generator.
func (Uint64) Generate(r *rand.Rand, size int) reflect.Value {
	if r.Intn(boundaryOdds) == 0 {
		return reflect.ValueOf(Uint64(uint64Bounds[r.Intn(len(uint64Bounds))]))
	}
	return reflect.ValueOf(Uint64(randomUint64(r)))
}

// Bytes is a quick.Generator of byte sequences, sized by the quick config (at
// least one byte of headroom).
type Bytes rpcwire.Bytes

// Generate implements quick.Generator.
func (Bytes) Generate(r *rand.Rand, size int) reflect.Value {
	if size < 1 {
		size = 1
	}
	if r.Intn(boundaryOdds) == 0 {
		bounds := bytesBounds(size)
		return reflect.ValueOf(Bytes(bounds[r.Intn(len(bounds))]))
	}
	return reflect.ValueOf(Bytes(randomBytes(r, size)))
}

// Value is a quick.Generator of fixed size byte sequences.
type Value[T rpcwire.FixedBytes] struct {
	Fixed T
}

// Generate implements quick.Generator.
func (Value[T]) Generate(r *rand.Rand, size int) reflect.Value {
	if r.Intn(boundaryOdds) == 0 {
		bounds := fixedBounds[T]()
		return reflect.ValueOf(Value[T]{bounds[r.Intn(len(bounds))]})
	}
	return reflect.ValueOf(Value[T]{randomFixed[T](r)})
}
