// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !norlp

package rpcwire

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// RLPEnabled reports whether the RLP codecs were compiled in.
const RLPEnabled = true

// RLPCodec is the capability of every value type in this package to be encoded
// to and decoded from RLP, as used by the legacy execution layer wire paths.
type RLPCodec interface {
	rlp.Encoder
	rlp.Decoder
}

var (
	_ RLPCodec = (*Quantity)(nil)
	_ RLPCodec = (*LenientQuantity)(nil)
	_ RLPCodec = (*Uint64)(nil)
	_ RLPCodec = (*Bytes)(nil)
	_ RLPCodec = (*B64)(nil)
	_ RLPCodec = (*Address)(nil)
	_ RLPCodec = (*Hash)(nil)
	_ RLPCodec = (*Signature)(nil)
	_ RLPCodec = (*Bloom)(nil)
)

// rlpEmptyString is the RLP encoding of the empty string, which is also the
// encoding of the integer zero.
var rlpEmptyString = []byte{0x80}

// EncodeRLP implements rlp.Encoder, encoding the quantity as a minimal big-endian
// integer string. Zero is the empty string.
func (q Quantity) EncodeRLP(w io.Writer) error {
	if q.n == nil {
		_, err := w.Write(rlpEmptyString)
		return err
	}
	return rlp.Encode(w, q.n)
}

// DecodeRLP implements rlp.Decoder. Integers with leading zero bytes and single
// bytes wrapped into a string header are rejected with ErrNonCanonicalEncoding.
func (q *Quantity) DecodeRLP(s *rlp.Stream) error {
	n, err := s.BigInt()
	if err != nil {
		return mapRLPError(err)
	}
	*q = wrapQuantity(n)
	return nil
}

// EncodeRLP implements rlp.Encoder.
func (n Uint64) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, uint64(n))
}

// DecodeRLP implements rlp.Decoder, rejecting integers wider than 64 bits with
// ErrOverflow.
func (n *Uint64) DecodeRLP(s *rlp.Stream) error {
	v, err := s.BigInt()
	if err != nil {
		return mapRLPError(err)
	}
	if !v.IsUint64() {
		return fmt.Errorf("%w: %d bits > 64 bits", ErrOverflow, v.BitLen())
	}
	*n = Uint64(v.Uint64())
	return nil
}

// EncodeRLP implements rlp.Encoder, encoding the sequence as an opaque string.
func (b Bytes) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []byte(b))
}

// DecodeRLP implements rlp.Decoder.
func (b *Bytes) DecodeRLP(s *rlp.Stream) error {
	v, err := s.Bytes()
	if err != nil {
		return mapRLPError(err)
	}
	*b = v
	return nil
}

// encodeFixedRLP encodes a fixed size array as an RLP string.
func encodeFixedRLP[T FixedBytes](w io.Writer, v *T) error {
	return rlp.Encode(w, fixedSlice(v))
}

// decodeFixedRLP decodes an RLP string into a fixed size array, rejecting any
// other length with ErrLengthMismatch. The target is left untouched on failure.
func decodeFixedRLP[T FixedBytes](s *rlp.Stream, v *T) error {
	b, err := s.Bytes()
	if err != nil {
		return mapRLPError(err)
	}
	dec, err := FixedFromBytes[T](b)
	if err != nil {
		return err
	}
	*v = dec
	return nil
}

// mapRLPError converts the canonicality errors of the RLP stream into this
// package's sentinel, keeping the original message as context.
func mapRLPError(err error) error {
	if errors.Is(err, rlp.ErrCanonInt) || errors.Is(err, rlp.ErrCanonSize) {
		return fmt.Errorf("%w: %v", ErrNonCanonicalEncoding, err)
	}
	return err
}
