// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ssz is a simplified SSZ encoder/decoder/hasher, used to carry the
// JSON-RPC value types inside consensus layer (engine API) containers.
//
// Types define their schema once in a DefineSSZ method, which is then run in
// encoding, decoding or hashing mode depending on which top level method was
// invoked. Static objects (fixed size) and dynamic objects (containing offsets
// to variable sized data) are distinguished by the signature of their SizeSSZ
// method.
package ssz

import (
	"fmt"
	"io"
	"sync"
)

// Object is a type with an SSZ schema. The same DefineSSZ method drives the
// encoder, the decoder and the hasher.
type Object interface {
	// DefineSSZ walks the fields of the object in schema order.
	DefineSSZ(codec *Codec)
}

// StaticObject is an object whose encoding always has the same size, such as
// a withdrawal.
//
// The SizeSSZ signatures of StaticObject and DynamicObject clash on purpose,
// so a dynamic object placed into a static slot (or vice versa) fails to
// compile.
type StaticObject interface {
	Object

	// SizeSSZ returns the encoded size of the object.
	SizeSSZ(siz *Sizer) uint32
}

// DynamicObject is an object with variable sized fields behind offsets, such
// as an execution payload.
type DynamicObject interface {
	Object

	// SizeSSZ returns the size of the fixed part of the object (offsets
	// included) if fixed is set, or the full encoded size otherwise.
	SizeSSZ(siz *Sizer, fixed bool) uint32
}

// Codecs carry a few scratch buffers each, so they are recycled across calls.
var (
	encoderPool = sync.Pool{New: func() any { return newCodec(&Codec{enc: new(Encoder)}) }}
	decoderPool = sync.Pool{New: func() any { return newCodec(&Codec{dec: new(Decoder)}) }}
	hasherPool  = sync.Pool{New: func() any { return newCodec(&Codec{has: new(Hasher)}) }}
	sizerPool   = sync.Pool{New: func() any { return &Sizer{codec: new(Codec)} }}
)

// newCodec links the single mode specific engine of a codec back to it and
// gives it a sizer sharing the same fork context.
func newCodec(codec *Codec) *Codec {
	sizer := &Sizer{codec: codec}
	switch {
	case codec.enc != nil:
		codec.enc.codec, codec.enc.sizer = codec, sizer
	case codec.dec != nil:
		codec.dec.codec, codec.dec.sizer = codec, sizer
	case codec.has != nil:
		codec.has.codec, codec.has.sizer = codec, sizer
	}
	return codec
}

// EncodeToStream writes the SSZ encoding of obj into w. Prefer EncodeToBytes
// when the output ends up in memory anyway.
func EncodeToStream(w io.Writer, obj Object) error {
	return EncodeToStreamOnFork(w, obj, ForkUnknown)
}

// EncodeToStreamOnFork is EncodeToStream with the fields of obj filtered to
// those active on fork.
func EncodeToStreamOnFork(w io.Writer, obj Object, fork Fork) error {
	codec := encoderPool.Get().(*Codec)
	defer encoderPool.Put(codec)

	codec.fork, codec.enc.outWriter = fork, w
	encodeObject(codec, obj)

	err := codec.enc.err
	codec.enc.outWriter, codec.enc.err = nil, nil
	return err
}

// EncodeToBytes writes the SSZ encoding of obj into buf, which must be at
// least Size(obj) bytes long. Prefer EncodeToStream when the output is going
// to a writer.
func EncodeToBytes(buf []byte, obj Object) error {
	return EncodeToBytesOnFork(buf, obj, ForkUnknown)
}

// EncodeToBytesOnFork is EncodeToBytes with the fields of obj filtered to
// those active on fork.
func EncodeToBytesOnFork(buf []byte, obj Object, fork Fork) error {
	if size := SizeOnFork(obj, fork); int(size) > len(buf) {
		return fmt.Errorf("%w: buffer %d bytes, object %d bytes", ErrBufferTooSmall, len(buf), size)
	}
	codec := encoderPool.Get().(*Codec)
	defer encoderPool.Put(codec)

	codec.fork, codec.enc.outBuffer = fork, buf
	encodeObject(codec, obj)

	err := codec.enc.err
	codec.enc.outBuffer, codec.enc.err = nil, nil
	return err
}

// encodeObject runs the schema of a top level object through an encoder codec.
func encodeObject(codec *Codec, obj Object) {
	switch v := obj.(type) {
	case StaticObject:
		v.DefineSSZ(codec)
	case DynamicObject:
		// Dynamic content starts right after the fixed part
		codec.enc.offset = v.SizeSSZ(codec.enc.sizer, true)
		v.DefineSSZ(codec)
	default:
		panic(fmt.Sprintf("ssz: unsupported object type %T", obj))
	}
}

// DecodeFromStream reads an SSZ encoded object of exactly size bytes from r.
// Prefer DecodeFromBytes when the input is already in memory.
func DecodeFromStream(r io.Reader, obj Object, size uint32) error {
	return DecodeFromStreamOnFork(r, obj, size, ForkUnknown)
}

// DecodeFromStreamOnFork is DecodeFromStream with the fields of obj filtered
// to those active on fork.
func DecodeFromStreamOnFork(r io.Reader, obj Object, size uint32, fork Fork) error {
	codec := decoderPool.Get().(*Codec)
	defer decoderPool.Put(codec)

	codec.fork, codec.dec.inReader = fork, r
	decodeObject(codec, obj, size)

	err := codec.dec.err
	codec.dec.inReader, codec.dec.err = nil, nil
	return err
}

// DecodeFromBytes parses an SSZ encoded object, which must span the whole of
// blob. The decoded object does not alias blob.
func DecodeFromBytes(blob []byte, obj Object) error {
	return DecodeFromBytesOnFork(blob, obj, ForkUnknown)
}

// DecodeFromBytesOnFork is DecodeFromBytes with the fields of obj filtered to
// those active on fork.
func DecodeFromBytesOnFork(blob []byte, obj Object, fork Fork) error {
	if len(blob) == 0 {
		return io.ErrUnexpectedEOF
	}
	codec := decoderPool.Get().(*Codec)
	defer decoderPool.Put(codec)

	codec.fork, codec.dec.inBuffer = fork, blob
	decodeObject(codec, obj, uint32(len(blob)))

	err := codec.dec.err
	codec.dec.inBuffer, codec.dec.err = nil, nil
	return err
}

// decodeObject runs the schema of a top level object through a decoder codec,
// enforcing that exactly size bytes are consumed.
func decodeObject(codec *Codec, obj Object, size uint32) {
	codec.dec.descendIntoSlot(size)

	switch v := obj.(type) {
	case StaticObject:
		v.DefineSSZ(codec)
	case DynamicObject:
		codec.dec.startDynamics(v.SizeSSZ(codec.dec.sizer, true))
		v.DefineSSZ(codec)
		codec.dec.flushDynamics()
	default:
		panic(fmt.Sprintf("ssz: unsupported object type %T", obj))
	}
	codec.dec.ascendFromSlot()
	codec.dec.inRead = 0
}

// Hash computes the hash tree root of obj on the calling goroutine. Objects
// holding values that cannot be represented in their slots (an integer wider
// than its width, a list longer than its limit) fail with the error the encoder
// would return for them.
func Hash(obj Object) ([32]byte, error) {
	return HashOnFork(obj, ForkUnknown)
}

// HashOnFork is Hash with the fields of obj filtered to those active on fork.
func HashOnFork(obj Object, fork Fork) ([32]byte, error) {
	codec := hasherPool.Get().(*Codec)
	defer hasherPool.Put(codec)
	defer codec.has.reset()

	codec.fork = fork

	obj.DefineSSZ(codec)
	if err := codec.has.err; err != nil {
		return [32]byte{}, err
	}
	codec.has.merkleize(0)

	var root [32]byte
	copy(root[:], codec.has.scratch)
	return root, nil
}

// HashSequential is Hash for objects known to be representable, such as ones
// that were decoded from SSZ or built locally. It panics if hashing fails, so
// objects filled from untrusted input (JSON-RPC) should go through Hash.
func HashSequential(obj Object) [32]byte {
	return HashSequentialOnFork(obj, ForkUnknown)
}

// HashSequentialOnFork is HashSequential with the fields of obj filtered to
// those active on fork.
func HashSequentialOnFork(obj Object, fork Fork) [32]byte {
	root, err := HashOnFork(obj, fork)
	if err != nil {
		panic(err)
	}
	return root
}

// Size returns the encoded size of obj.
func Size(obj Object) uint32 {
	return SizeOnFork(obj, ForkUnknown)
}

// SizeOnFork is Size with the fields of obj filtered to those active on fork.
func SizeOnFork(obj Object, fork Fork) uint32 {
	sizer := sizerPool.Get().(*Sizer)
	defer sizerPool.Put(sizer)

	sizer.codec.fork = fork

	switch v := obj.(type) {
	case StaticObject:
		return v.SizeSSZ(sizer)
	case DynamicObject:
		return v.SizeSSZ(sizer, false)
	default:
		panic(fmt.Sprintf("ssz: unsupported object type %T", obj))
	}
}
