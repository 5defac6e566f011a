// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"reflect"
	"sync"
)

// newableStaticObject constrains a static object to a struct pointer, so the
// decoder can allocate missing items with new(U).
type newableStaticObject[U any] interface {
	StaticObject
	*U
}

// commonBytesLengths lists the fixed size blobs the static bytes definitions
// accept. Go generics cannot express "any byte array", so every length has to
// be spelled out.
type commonBytesLengths interface {
	// nonce | address | hash | pubkey | signature | bls signature | bloom
	~[8]byte | ~[20]byte | ~[32]byte | ~[48]byte | ~[65]byte | ~[96]byte | ~[256]byte
}

// zeroStatics caches one zero value per static object type, used in place of
// nil items when encoding or hashing.
var zeroStatics sync.Map

// zeroValueStatic returns the cached zero value of a static object type.
func zeroValueStatic[T newableStaticObject[U], U any]() T {
	kind := reflect.TypeFor[U]()
	if val, ok := zeroStatics.Load(kind); ok {
		return val.(T)
	}
	val, _ := zeroStatics.LoadOrStore(kind, T(new(U)))
	return val.(T)
}
