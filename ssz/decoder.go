// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"unsafe"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Decoder is a wrapper around an io.Reader or a []byte buffer to implement SSZ
// decoding in a streaming or buffered way. It has the following behaviors:
//
//  1. The decoder does not buffer, simply reads from the wrapped input stream
//     directly. If you need buffering, that is up to you.
//
//  2. The decoder does not return errors that were hit during reading from the
//     underlying input stream from individual decoding methods. Since there
//     is no expectation (in general) for failure, user code can be denser if
//     error checking is done at the end. Internally, of course, an error will
//     halt all future input operations.
//
//  3. Decoded data is always copied out of the input, the decoder never keeps
//     references to the caller's buffer once a decoding call returns.
type Decoder struct {
	inReader io.Reader // Underlying input stream to read from (streaming mode)
	inBuffer []byte    // Underlying input buffer to read from (buffered mode)

	inRead  uint32   // Bytes already consumed from the current data slot
	inReads []uint32 // Stack of consumed bytes from outer slots

	err   error    // Any read error to halt future decoding calls
	codec *Codec   // Self-referencing to pass DefineSSZ calls through (API trick)
	sizer *Sizer   // Self-referencing to pass SizeSSZ call through (API trick)
	buf   [32]byte // Integer conversion buffer

	length  uint32   // Length of the data slot being decoded
	lengths []uint32 // Stack of lengths from outer slots

	offset  uint32   // Starting offset we expect, or last offset seen after
	offsets []uint32 // Offsets seen in the static part of a dynamic object
	next    int      // Index of the next offset to consume for dynamic data
	nested  []uint32 // Scratch space for offsets of nested dynamic lists
}

// read fills dst from whichever source the decoder is wired to, enforcing that
// the current data slot is not overrun.
func (dec *Decoder) read(dst []byte) bool {
	if dec.inRead+uint32(len(dst)) > dec.length {
		dec.err = io.ErrUnexpectedEOF
		return false
	}
	if dec.inReader != nil {
		if _, err := io.ReadFull(dec.inReader, dst); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			dec.err = err
			return false
		}
	} else {
		if len(dec.inBuffer) < len(dst) {
			dec.err = io.ErrUnexpectedEOF
			return false
		}
		copy(dst, dec.inBuffer)
		dec.inBuffer = dec.inBuffer[len(dst):]
	}
	dec.inRead += uint32(len(dst))
	return true
}

// DecodeBool parses a boolean.
func DecodeBool[T ~bool](dec *Decoder, v *T) {
	if dec.err != nil {
		return
	}
	if !dec.read(dec.buf[:1]) {
		return
	}
	switch dec.buf[0] {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		dec.err = fmt.Errorf("%w: found %#x", ErrInvalidBoolean, dec.buf[0])
	}
}

// DecodeUint64 parses a uint64.
func DecodeUint64[T ~uint64](dec *Decoder, n *T) {
	if dec.err != nil {
		return
	}
	if !dec.read(dec.buf[:8]) {
		return
	}
	*n = T(binary.LittleEndian.Uint64(dec.buf[:8]))
}

// DecodeUint256 parses a uint256.
func DecodeUint256(dec *Decoder, n **uint256.Int) {
	if dec.err != nil {
		return
	}
	if !dec.read(dec.buf[:32]) {
		return
	}
	if *n == nil {
		*n = new(uint256.Int)
	}
	for i := 0; i < 4; i++ {
		(*n)[i] = binary.LittleEndian.Uint64(dec.buf[i*8:])
	}
}

// DecodeUintBig parses a little-endian unsigned integer of the given byte width
// into an arbitrary precision big integer.
func DecodeUintBig(dec *Decoder, n **big.Int, width int) {
	if dec.err != nil {
		return
	}
	if !validUintWidth(width) {
		panic(fmt.Sprintf("ssz: unsupported integer width %d", width))
	}
	if !dec.read(dec.buf[:width]) {
		return
	}
	reverseBytes(dec.buf[:width])
	if *n == nil {
		*n = new(big.Int)
	}
	(*n).SetBytes(dec.buf[:width])
}

// DecodeStaticBytes parses a static binary blob.
func DecodeStaticBytes[T commonBytesLengths](dec *Decoder, blob *T) {
	if dec.err != nil {
		return
	}
	// The code below should have used `*blob[:]`, alas Go's generics compiler
	// is missing that (i.e. a bug): https://github.com/golang/go/issues/51740
	dec.read(unsafe.Slice(&(*blob)[0], len(*blob)))
}

// DecodeCheckedStaticBytes parses a static binary blob into a plain byte slice.
func DecodeCheckedStaticBytes(dec *Decoder, blob *[]byte, size uint64) {
	if dec.err != nil {
		return
	}
	// Expand the byte slice if needed and fill it with the data
	if uint64(cap(*blob)) < size {
		*blob = make([]byte, size)
	} else {
		*blob = (*blob)[:size]
	}
	dec.read(*blob)
}

// DecodeDynamicBytesOffset parses a dynamic binary blob.
func DecodeDynamicBytesOffset[T ~[]byte](dec *Decoder, blob *T) {
	dec.decodeOffset()
}

// DecodeDynamicBytesContent is the lazy data reader of DecodeDynamicBytesOffset.
func DecodeDynamicBytesContent[T ~[]byte](dec *Decoder, blob *T, maxSize uint64) {
	if dec.err != nil {
		return
	}
	// Compute the length of the blob based on the seen offsets
	size := dec.retrieveSize()
	if uint64(size) > maxSize {
		dec.err = fmt.Errorf("%w: decoded %d, max %d", ErrMaxLengthExceeded, size, maxSize)
		return
	}
	// Expand the byte slice if needed and fill it with the data
	if cap(*blob) == 0 || uint32(cap(*blob)) < size {
		*blob = make(T, size)
	} else {
		*blob = (*blob)[:size]
	}
	dec.read(*blob)
}

// DecodeStaticObject parses a static ssz object.
func DecodeStaticObject[T newableStaticObject[U], U any](dec *Decoder, obj *T) {
	if dec.err != nil {
		return
	}
	if *obj == nil {
		*obj = T(new(U))
	}
	(*obj).DefineSSZ(dec.codec)
}

// DecodeSliceOfBitsOffset parses a dynamic slice of (packed) bits.
func DecodeSliceOfBitsOffset(dec *Decoder, bitlist *bitfield.Bitlist) {
	dec.decodeOffset()
}

// DecodeSliceOfBitsContent is the lazy data reader of DecodeSliceOfBitsOffset.
func DecodeSliceOfBitsContent(dec *Decoder, bitlist *bitfield.Bitlist, maxBits uint64) {
	if dec.err != nil {
		return
	}
	// Compute the length of the encoded bits based on the seen offsets. The
	// sentinel bit needs at least one byte, an empty slot is invalid.
	size := dec.retrieveSize()
	if size == 0 {
		dec.err = fmt.Errorf("%w: missing sentinel byte", ErrJunkInBitlist)
		return
	}
	if uint64(size) > (maxBits>>3)+1 {
		dec.err = fmt.Errorf("%w: decoded %d bytes, max %d bits", ErrMaxLengthExceeded, size, maxBits)
		return
	}
	if uint32(cap(*bitlist)) < size {
		*bitlist = make(bitfield.Bitlist, size)
	} else {
		*bitlist = (*bitlist)[:size]
	}
	if !dec.read(*bitlist) {
		return
	}
	// The last byte must contain the sentinel, which also marks the length
	last := (*bitlist)[size-1]
	if last == 0 {
		dec.err = fmt.Errorf("%w: zero trailing byte", ErrJunkInBitlist)
		return
	}
	if length := uint64(size-1)<<3 + uint64(bits.Len8(last)) - 1; length > maxBits {
		dec.err = fmt.Errorf("%w: decoded %d bits, max %d bits", ErrMaxLengthExceeded, length, maxBits)
	}
}

// DecodeSliceOfDynamicBytesOffset parses a dynamic slice of dynamic binary blobs.
func DecodeSliceOfDynamicBytesOffset[T ~[]byte](dec *Decoder, blobs *[]T) {
	dec.decodeOffset()
}

// DecodeSliceOfDynamicBytesContent is the lazy data reader of
// DecodeSliceOfDynamicBytesOffset.
func DecodeSliceOfDynamicBytesContent[T ~[]byte](dec *Decoder, blobs *[]T, maxItems uint64, maxSize uint64) {
	if dec.err != nil {
		return
	}
	// Compute the length of the encoded blobs based on the seen offsets and do
	// a quick sanity check that there's at least an item count
	size := dec.retrieveSize()
	if size == 0 {
		// Empty slice, remove anything extra
		if *blobs == nil {
			*blobs = make([]T, 0)
		} else {
			*blobs = (*blobs)[:0]
		}
		return
	}
	if size < 4 {
		dec.err = fmt.Errorf("%w: %d bytes available", ErrShortCounterOffset, size)
		return
	}
	// Descend into a new data slot to read the nested offsets from
	dec.descendIntoSlot(size)
	defer dec.ascendFromSlot()

	if !dec.read(dec.buf[:4]) {
		return
	}
	first := binary.LittleEndian.Uint32(dec.buf[:4])
	switch {
	case first == 0:
		dec.err = ErrZeroCounterOffset
		return
	case first&3 != 0:
		dec.err = fmt.Errorf("%w: %d bytes", ErrBadCounterOffset, first)
		return
	case first > size:
		dec.err = fmt.Errorf("%w: decoded %d, message length %d", ErrOffsetBeyondCapacity, first, size)
		return
	}
	items := uint64(first >> 2)
	if items > maxItems {
		dec.err = fmt.Errorf("%w: decoded %d, max %d", ErrMaxItemsExceeded, items, maxItems)
		return
	}
	// Read all the remaining offsets, ensuring they are monotonic
	offsets := append(dec.nested[:0], first)
	for i := uint64(1); i < items; i++ {
		if !dec.read(dec.buf[:4]) {
			return
		}
		offset := binary.LittleEndian.Uint32(dec.buf[:4])
		if offset > size {
			dec.err = fmt.Errorf("%w: decoded %d, message length %d", ErrOffsetBeyondCapacity, offset, size)
			return
		}
		if offset < offsets[len(offsets)-1] {
			dec.err = fmt.Errorf("%w: decoded %d, previous was %d", ErrBadOffsetProgression, offset, offsets[len(offsets)-1])
			return
		}
		offsets = append(offsets, offset)
	}
	dec.nested = offsets

	// Expand the blob slice if needed and fill in the data
	if uint64(cap(*blobs)) < items {
		*blobs = append((*blobs)[:cap(*blobs)], make([]T, items-uint64(cap(*blobs)))...)
	} else {
		*blobs = (*blobs)[:items]
	}
	for i := uint64(0); i < items; i++ {
		end := size
		if i < items-1 {
			end = offsets[i+1]
		}
		blobSize := end - offsets[i]
		if uint64(blobSize) > maxSize {
			dec.err = fmt.Errorf("%w: decoded %d, max %d", ErrMaxLengthExceeded, blobSize, maxSize)
			return
		}
		if cap((*blobs)[i]) == 0 || uint32(cap((*blobs)[i])) < blobSize {
			(*blobs)[i] = make(T, blobSize)
		} else {
			(*blobs)[i] = (*blobs)[i][:blobSize]
		}
		if !dec.read((*blobs)[i]) {
			return
		}
	}
}

// DecodeSliceOfStaticObjectsOffset parses a dynamic slice of static ssz objects.
func DecodeSliceOfStaticObjectsOffset[T newableStaticObject[U], U any](dec *Decoder, objects *[]T) {
	dec.decodeOffset()
}

// DecodeSliceOfStaticObjectsContent is the lazy data reader of
// DecodeSliceOfStaticObjectsOffset.
func DecodeSliceOfStaticObjectsContent[T newableStaticObject[U], U any](dec *Decoder, objects *[]T, maxItems uint64) {
	if dec.err != nil {
		return
	}
	// Compute the number of items based on the item size of the type
	size := dec.retrieveSize()

	itemSize := zeroValueStatic[T, U]().SizeSSZ(dec.sizer)
	if size%itemSize != 0 {
		dec.err = fmt.Errorf("%w: length %d, item size %d", ErrDynamicStaticsIndivisible, size, itemSize)
		return
	}
	itemCount := size / itemSize
	if uint64(itemCount) > maxItems {
		dec.err = fmt.Errorf("%w: decoded %d, max %d", ErrMaxItemsExceeded, itemCount, maxItems)
		return
	}
	// Expand the slice if needed and decode the objects
	if *objects == nil || uint32(cap(*objects)) < itemCount {
		*objects = make([]T, itemCount)
	} else {
		*objects = (*objects)[:itemCount]
	}
	for i := uint32(0); i < itemCount; i++ {
		if (*objects)[i] == nil {
			(*objects)[i] = T(new(U))
		}
		(*objects)[i].DefineSSZ(dec.codec)
		if dec.err != nil {
			return
		}
	}
}

// decodeOffset decodes the next uint32 as an offset and validates it against
// the data slot length and the previously seen offsets.
func (dec *Decoder) decodeOffset() {
	if dec.err != nil {
		return
	}
	if !dec.read(dec.buf[:4]) {
		return
	}
	offset := binary.LittleEndian.Uint32(dec.buf[:4])
	if offset > dec.length {
		dec.err = fmt.Errorf("%w: decoded %d, message length %d", ErrOffsetBeyondCapacity, offset, dec.length)
		return
	}
	if len(dec.offsets) == 0 && dec.offset != offset {
		dec.err = fmt.Errorf("%w: decoded %d, type expects %d", ErrFirstOffsetMismatch, offset, dec.offset)
		return
	}
	if len(dec.offsets) > 0 && dec.offset > offset {
		dec.err = fmt.Errorf("%w: decoded %d, previous was %d", ErrBadOffsetProgression, offset, dec.offset)
		return
	}
	dec.offset = offset
	dec.offsets = append(dec.offsets, offset)
}

// retrieveSize retrieves the length of the next dynamic item based on the seen
// offsets. The last item extends to the end of the data slot.
func (dec *Decoder) retrieveSize() uint32 {
	idx := dec.next
	dec.next++

	if idx == len(dec.offsets)-1 {
		return dec.length - dec.offsets[idx]
	}
	return dec.offsets[idx+1] - dec.offsets[idx]
}

// descendIntoSlot starts the decoding of a data slot with a new length. For the
// static objects, the length is used to enforce that all data is consumed. For
// the dynamic objects, the length is used to decode the last dynamic item.
func (dec *Decoder) descendIntoSlot(length uint32) {
	dec.lengths = append(dec.lengths, dec.length)
	dec.length = length

	dec.inReads = append(dec.inReads, dec.inRead)
	dec.inRead = 0
}

// ascendFromSlot is the counterpart of descendIntoSlot that enforces the read
// bytes and restores the previously suspended decoding state.
func (dec *Decoder) ascendFromSlot() {
	if dec.err == nil && dec.inRead != dec.length {
		dec.err = fmt.Errorf("%w: data size %d, object consumed %d", ErrObjectSlotSizeMismatch, dec.length, dec.inRead)
	}
	dec.inRead = dec.inReads[len(dec.inReads)-1] + dec.length // track the sub-reads, don't discard!
	dec.inReads = dec.inReads[:len(dec.inReads)-1]

	dec.length = dec.lengths[len(dec.lengths)-1]
	dec.lengths = dec.lengths[:len(dec.lengths)-1]
}

// startDynamics marks the item being decoded as a dynamic type, setting the
// starting offset for the dynamic fields.
func (dec *Decoder) startDynamics(offset uint32) {
	dec.offset = offset
	dec.offsets = dec.offsets[:0]
	dec.next = 0
}

// flushDynamics marks the end of the dynamic fields, clearing out any leftovers
// from partial dynamic decodes.
func (dec *Decoder) flushDynamics() {
	dec.offsets = dec.offsets[:0]
	dec.next = 0
}
