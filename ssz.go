// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nossz

package rpcwire

import (
	"fmt"
	"math/big"

	"github.com/karalabe/rpcwire/ssz"
)

// SSZEnabled reports whether the SSZ codecs were compiled in.
const SSZEnabled = true

// SSZCodec is the capability of the fixed width value types in this package to
// be used directly as static SSZ objects. Quantities have no intrinsic width
// and are embedded into containers via DefineQuantity instead; byte sequences
// via DefineBytesOffset and DefineBytesContent.
type SSZCodec interface {
	ssz.StaticObject
}

var (
	_ SSZCodec = (*Uint64)(nil)
	_ SSZCodec = (*B64)(nil)
	_ SSZCodec = (*Address)(nil)
	_ SSZCodec = (*Hash)(nil)
	_ SSZCodec = (*Signature)(nil)
	_ SSZCodec = (*Bloom)(nil)
)

// checkSSZWidth validates that an integer width is one of the SSZ basic types.
func checkSSZWidth(width int) error {
	switch width {
	case 1, 2, 4, 8, 16, 32:
		return nil
	default:
		return fmt.Errorf("%w: unsupported integer width %d", ErrLengthMismatch, width)
	}
}

// MarshalSSZ encodes the quantity as a little-endian, zero filled unsigned
// integer of the given byte width (1, 2, 4, 8, 16 or 32). Values that do not fit
// are rejected with ErrOverflow.
func (q Quantity) MarshalSSZ(width int) ([]byte, error) {
	if err := checkSSZWidth(width); err != nil {
		return nil, err
	}
	if bits := q.BitLen(); bits > 8*width {
		return nil, fmt.Errorf("%w: %d bits > %d bits", ErrOverflow, bits, 8*width)
	}
	blob := make([]byte, width)
	if q.n != nil {
		q.n.FillBytes(blob)
		reverse(blob)
	}
	return blob, nil
}

// DecodeQuantitySSZ decodes a quantity from a little-endian unsigned integer.
// The width is the length of the blob, which must be a valid SSZ width.
//
// SSZ integers are fixed width, so there is no canonicality to enforce: any
// amount of high zero bytes is part of the encoding.
func DecodeQuantitySSZ(blob []byte) (Quantity, error) {
	if err := checkSSZWidth(len(blob)); err != nil {
		return Quantity{}, err
	}
	be := make([]byte, len(blob))
	for i, b := range blob {
		be[len(blob)-1-i] = b
	}
	return wrapQuantity(new(big.Int).SetBytes(be)), nil
}

// DefineQuantity defines the next field of an SSZ container as an unsigned
// integer of the given byte width (1, 2, 4, 8, 16 or 32), backed by a quantity.
// Any other width is a schema bug and panics.
//
// A quantity that doesn't fit into the width fails encoding and ssz.Hash with
// ssz.ErrUintOverflow. Quantities decoded from JSON have no upper bound, so
// containers filled from RPC input should be hashed via ssz.Hash.
func DefineQuantity(c *ssz.Codec, q *Quantity, width int) {
	if err := checkSSZWidth(width); err != nil {
		panic(err)
	}
	c.DefineEncoder(func(enc *ssz.Encoder) {
		ssz.EncodeUintBig(enc, q.n, width)
	})
	c.DefineDecoder(func(dec *ssz.Decoder) {
		var n *big.Int
		ssz.DecodeUintBig(dec, &n, width)
		if n != nil {
			*q = wrapQuantity(n)
		}
	})
	c.DefineHasher(func(has *ssz.Hasher) {
		ssz.HashUintBig(has, q.n, width)
	})
}

// DefineBytesOffset defines the next field of an SSZ container as a byte list
// of at most maxSize bytes. The content needs to be defined separately in the
// dynamic section via DefineBytesContent.
func DefineBytesOffset(c *ssz.Codec, b *Bytes, maxSize uint64) {
	ssz.DefineDynamicBytesOffset(c, b, maxSize)
}

// DefineBytesContent is the dynamic counterpart of DefineBytesOffset.
func DefineBytesContent(c *ssz.Codec, b *Bytes, maxSize uint64) {
	ssz.DefineDynamicBytesContent(c, b, maxSize)
}

// DefineFixed defines the next field of an SSZ container as a static byte
// vector, backed by any of the fixed size types.
func DefineFixed[T FixedBytes](c *ssz.Codec, v *T) {
	ssz.DefineStaticBytes(c, v)
}

// SizeSSZ returns the size of the number in SSZ encoding.
func (n *Uint64) SizeSSZ(siz *ssz.Sizer) uint32 {
	return 8
}

// DefineSSZ defines the number as an SSZ uint64.
func (n *Uint64) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineUint64(codec, n)
}

// reverse flips the byte order of a blob in place.
func reverse(blob []byte) {
	for i, j := 0, len(blob)-1; i < j; i, j = i+1, j-1 {
		blob[i], blob[j] = blob[j], blob[i]
	}
}
