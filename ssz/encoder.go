// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"unsafe"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Some helpers to avoid occasional allocations
var (
	encoderZeroBytes = make([]byte, 32)
	encoderEmptyBits = bitfield.NewBitlist(0)
	encoderBoolFalse = []byte{0x00}
	encoderBoolTrue  = []byte{0x01}
)

// Encoder is a wrapper around an io.Writer or a []byte buffer to implement SSZ
// encoding in a streaming or buffered way. It has the following behaviors:
//
//  1. The encoder does not buffer, simply writes to the wrapped output stream
//     directly. If you need buffering (and flushing), that is up to you.
//
//  2. The encoder does not return errors that were hit during writing to the
//     underlying output stream from individual encoding methods. Since there
//     is no expectation (in general) for failure, user code can be denser if
//     error checking is done at the end. Internally, of course, an error will
//     halt all future output operations.
//
//  3. The offsets for dynamic fields are tracked internally by the encoder, so
//     the caller only needs to provide the field, the offset of which should be
//     included at the allotted slot. The contents are written in a second pass
//     via the XyzContent counterparts.
//
//  4. The encoder does not enforce defined size limits on the dynamic fields.
//     If the caller provided bad data to encode, it is a programming error and
//     a runtime error will not fix anything.
type Encoder struct {
	outWriter io.Writer // Underlying output stream to write into (streaming mode)
	outBuffer []byte    // Underlying output buffer to write into (buffered mode)

	err   error    // Any write error to halt future encoding calls
	codec *Codec   // Self-referencing to pass DefineSSZ calls through (API trick)
	sizer *Sizer   // Self-referencing to pass SizeSSZ call through (API trick)
	buf   [32]byte // Integer conversion buffer

	offset uint32 // Offset tracker for dynamic fields
}

// write pushes a chunk of data into whichever sink the encoder is wired to.
func (enc *Encoder) write(blob []byte) {
	if enc.outWriter != nil {
		_, enc.err = enc.outWriter.Write(blob)
		return
	}
	enc.outBuffer = enc.outBuffer[copy(enc.outBuffer, blob):]
}

// writeOffset serializes the current dynamic offset as a uint32 little-endian
// and shifts it by the size of the dynamic data it points to.
func (enc *Encoder) writeOffset(size uint32) {
	binary.LittleEndian.PutUint32(enc.buf[:4], enc.offset)
	enc.write(enc.buf[:4])
	enc.offset += size
}

// EncodeBool serializes a boolean.
func EncodeBool[T ~bool](enc *Encoder, v T) {
	if enc.err != nil {
		return
	}
	if v {
		enc.write(encoderBoolTrue)
	} else {
		enc.write(encoderBoolFalse)
	}
}

// EncodeUint64 serializes a uint64 as little-endian.
func EncodeUint64[T ~uint64](enc *Encoder, n T) {
	if enc.err != nil {
		return
	}
	binary.LittleEndian.PutUint64(enc.buf[:8], uint64(n))
	enc.write(enc.buf[:8])
}

// EncodeUint256 serializes a uint256 as little-endian.
//
// Note, a nil pointer is encoded as zero.
func EncodeUint256(enc *Encoder, n *uint256.Int) {
	if enc.err != nil {
		return
	}
	if n == nil {
		enc.write(encoderZeroBytes)
		return
	}
	// The limbs of a uint256 are already little-endian ordered
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(enc.buf[i*8:], n[i])
	}
	enc.write(enc.buf[:32])
}

// EncodeUintBig serializes an arbitrary precision integer as a little-endian,
// zero filled unsigned integer of the given byte width. If the number does not
// fit, ErrUintOverflow is raised.
//
// Note, a nil pointer is encoded as zero.
func EncodeUintBig(enc *Encoder, n *big.Int, width int) {
	if enc.err != nil {
		return
	}
	if err := fillUintBig(enc.buf[:], n, width); err != nil {
		enc.err = err
		return
	}
	enc.write(enc.buf[:width])
}

// fillUintBig writes n as a little-endian integer of the given width into the
// start of buf.
func fillUintBig(buf []byte, n *big.Int, width int) error {
	if !validUintWidth(width) {
		panic(fmt.Sprintf("ssz: unsupported integer width %d", width))
	}
	if n == nil {
		copy(buf[:width], encoderZeroBytes)
		return nil
	}
	if n.Sign() < 0 || n.BitLen() > 8*width {
		return fmt.Errorf("%w: %d bits, %d byte slot", ErrUintOverflow, n.BitLen(), width)
	}
	n.FillBytes(buf[:width])
	reverseBytes(buf[:width])
	return nil
}

// validUintWidth reports whether width is the byte size of an SSZ basic
// unsigned integer (uint8 up to uint256).
func validUintWidth(width int) bool {
	switch width {
	case 1, 2, 4, 8, 16, 32:
		return true
	default:
		return false
	}
}

// reverseBytes flips the byte order of a blob in place.
func reverseBytes(blob []byte) {
	for i, j := 0, len(blob)-1; i < j; i, j = i+1, j-1 {
		blob[i], blob[j] = blob[j], blob[i]
	}
}

// EncodeStaticBytes serializes a static binary blob.
//
// The blob is passed by pointer to avoid high stack copy costs and a potential
// escape to the heap.
func EncodeStaticBytes[T commonBytesLengths](enc *Encoder, blob *T) {
	if enc.err != nil {
		return
	}
	// The code below should have used `blob[:]`, alas Go's generics compiler
	// is missing that (i.e. a bug): https://github.com/golang/go/issues/51740
	enc.write(unsafe.Slice(&(*blob)[0], len(*blob)))
}

// EncodeCheckedStaticBytes serializes a static binary blob held in a plain byte
// slice, raising ErrCheckedSizeMismatch if it is not of the declared size.
func EncodeCheckedStaticBytes(enc *Encoder, blob []byte, size uint64) {
	if enc.err != nil {
		return
	}
	if uint64(len(blob)) != size {
		enc.err = fmt.Errorf("%w: have %d bytes, want %d", ErrCheckedSizeMismatch, len(blob), size)
		return
	}
	enc.write(blob)
}

// EncodeDynamicBytesOffset serializes a dynamic binary blob.
func EncodeDynamicBytesOffset[T ~[]byte](enc *Encoder, blob T) {
	if enc.err != nil {
		return
	}
	enc.writeOffset(uint32(len(blob)))
}

// EncodeDynamicBytesContent is the lazy data writer for EncodeDynamicBytesOffset.
func EncodeDynamicBytesContent[T ~[]byte](enc *Encoder, blob T) {
	if enc.err != nil {
		return
	}
	enc.write(blob)
}

// EncodeStaticObject serializes a static ssz object.
//
// Note, a nil pointer is encoded as a zero-value object.
func EncodeStaticObject[T newableStaticObject[U], U any](enc *Encoder, obj T) {
	if enc.err != nil {
		return
	}
	if obj == nil {
		obj = zeroValueStatic[T, U]()
	}
	obj.DefineSSZ(enc.codec)
}

// EncodeSliceOfBitsOffset serializes a dynamic slice of (packed) bits.
func EncodeSliceOfBitsOffset(enc *Encoder, bits bitfield.Bitlist) {
	if enc.err != nil {
		return
	}
	enc.writeOffset(SizeSliceOfBits(enc.sizer, bits))
}

// EncodeSliceOfBitsContent is the lazy data writer for EncodeSliceOfBitsOffset.
func EncodeSliceOfBitsContent(enc *Encoder, bits bitfield.Bitlist) {
	if enc.err != nil {
		return
	}
	if len(bits) == 0 {
		enc.write(encoderEmptyBits)
		return
	}
	enc.write(bits)
}

// EncodeSliceOfDynamicBytesOffset serializes a dynamic slice of dynamic binary
// blobs.
func EncodeSliceOfDynamicBytesOffset[T ~[]byte](enc *Encoder, blobs []T) {
	if enc.err != nil {
		return
	}
	enc.writeOffset(SizeSliceOfDynamicBytes(enc.sizer, blobs))
}

// EncodeSliceOfDynamicBytesContent is the lazy data writer for
// EncodeSliceOfDynamicBytesOffset.
func EncodeSliceOfDynamicBytesContent[T ~[]byte](enc *Encoder, blobs []T) {
	if enc.err != nil {
		return
	}
	// Nested dynamic list, write the inner offsets first, then the blobs
	offset := uint32(4 * len(blobs))
	for _, blob := range blobs {
		binary.LittleEndian.PutUint32(enc.buf[:4], offset)
		enc.write(enc.buf[:4])
		if enc.err != nil {
			return
		}
		offset += uint32(len(blob))
	}
	for _, blob := range blobs {
		enc.write(blob)
		if enc.err != nil {
			return
		}
	}
}

// EncodeSliceOfStaticObjectsOffset serializes a dynamic slice of static ssz
// objects.
func EncodeSliceOfStaticObjectsOffset[T newableStaticObject[U], U any](enc *Encoder, objects []T) {
	if enc.err != nil {
		return
	}
	size := uint32(len(objects)) * zeroValueStatic[T, U]().SizeSSZ(enc.sizer)
	enc.writeOffset(size)
}

// EncodeSliceOfStaticObjectsContent is the lazy data writer for
// EncodeSliceOfStaticObjectsOffset.
func EncodeSliceOfStaticObjectsContent[T newableStaticObject[U], U any](enc *Encoder, objects []T) {
	for _, obj := range objects {
		if enc.err != nil {
			return
		}
		if obj == nil {
			obj = zeroValueStatic[T, U]()
		}
		obj.DefineSSZ(enc.codec)
	}
}
