// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
	"unsafe"

	"github.com/holiman/uint256"
	"github.com/minio/sha256-simd"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/gohashtree"
)

// Some helpers to avoid occasional allocations
var (
	hasherBoolFalse = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	hasherBoolTrue  = []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	hasherUint64Pad = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	hasherZeroChunk = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
)

// zeroHashes contains the roots of all-zero subtrees of increasing depth.
var zeroHashes [65][32]byte

func init() {
	var pair [64]byte
	for i := 0; i < len(zeroHashes)-1; i++ {
		copy(pair[:32], zeroHashes[i][:])
		copy(pair[32:], zeroHashes[i][:])
		zeroHashes[i+1] = sha256.Sum256(pair[:])
	}
}

// Hasher is an SSZ Merkle Hash Root computer.
//
// Fields are appended to a scratch space as 32 byte chunks (any field larger
// than a chunk is merkleized into its root first), and a container is reduced
// into its own root once all its fields were visited.
type Hasher struct {
	scratch []byte // Scratch space for not-yet-merkleized chunks
	err     error  // First field that could not be hashed, halting the root

	codec *Codec   // Self-referencing to pass DefineSSZ calls through (API trick)
	sizer *Sizer   // Self-referencing to pass SizeSSZ call through (API trick)
	buf   [32]byte // Integer conversion buffer
}

// HashBool hashes a boolean.
func HashBool[T ~bool](h *Hasher, v T) {
	if !v {
		h.scratch = append(h.scratch, hasherBoolFalse...)
	} else {
		h.scratch = append(h.scratch, hasherBoolTrue...)
	}
}

// HashUint64 hashes a uint64.
func HashUint64[T ~uint64](h *Hasher, n T) {
	binary.LittleEndian.PutUint64(h.buf[:8], uint64(n))
	h.scratch = append(h.scratch, h.buf[:8]...)
	h.scratch = append(h.scratch, hasherUint64Pad...)
}

// HashUint256 hashes a uint256.
//
// Note, a nil pointer is hashed as zero.
func HashUint256(h *Hasher, n *uint256.Int) {
	if n == nil {
		h.scratch = append(h.scratch, hasherZeroChunk...)
		return
	}
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(h.buf[i*8:], n[i])
	}
	h.scratch = append(h.scratch, h.buf[:32]...)
}

// HashUintBig hashes an arbitrary precision integer as an unsigned integer of
// the given byte width. A value that doesn't fit fails the hash with
// ErrUintOverflow.
//
// Note, a nil pointer is hashed as zero.
func HashUintBig(h *Hasher, n *big.Int, width int) {
	if err := fillUintBig(h.buf[:], n, width); err != nil {
		h.fail(err)
		h.scratch = append(h.scratch, hasherZeroChunk...)
		return
	}
	h.scratch = append(h.scratch, h.buf[:width]...)
	h.scratch = append(h.scratch, hasherZeroChunk[:32-width]...)
}

// HashStaticBytes hashes a static binary blob.
//
// The blob is passed by pointer to avoid high stack copy costs and a potential
// escape to the heap.
func HashStaticBytes[T commonBytesLengths](h *Hasher, blob *T) {
	// The code below should have used `blob[:]`, alas Go's generics compiler
	// is missing that (i.e. a bug): https://github.com/golang/go/issues/51740
	h.hashBytes(unsafe.Slice(&(*blob)[0], len(*blob)))
}

// HashCheckedStaticBytes hashes a static binary blob held in a plain slice.
func HashCheckedStaticBytes(h *Hasher, blob []byte) {
	h.hashBytes(blob)
}

// HashDynamicBytes hashes a dynamic binary blob.
func HashDynamicBytes[T ~[]byte](h *Hasher, blob T, maxSize uint64) {
	pos := len(h.scratch)
	h.appendBytesChunks(blob)
	h.merkleizeWithMixin(pos, uint64(len(blob)), (maxSize+31)/32)
}

// HashStaticObject hashes a static ssz object.
//
// Note, a nil pointer is hashed as a zero-value object.
func HashStaticObject[T newableStaticObject[U], U any](h *Hasher, obj T) {
	if obj == nil {
		obj = zeroValueStatic[T, U]()
	}
	pos := len(h.scratch)
	obj.DefineSSZ(h.codec)
	h.merkleize(pos)
}

// HashSliceOfBits hashes a dynamic slice of (packed) bits.
func HashSliceOfBits(h *Hasher, bitlist bitfield.Bitlist, maxBits uint64) {
	if len(bitlist) == 0 {
		bitlist = encoderEmptyBits
	}
	// Strip the sentinel bit and any trailing zero bytes
	msb := uint8(bits.Len8(bitlist[len(bitlist)-1])) - 1
	size := uint64(8*(len(bitlist)-1) + int(msb))

	pos := len(h.scratch)
	h.scratch = append(h.scratch, bitlist...)
	h.scratch[len(h.scratch)-1] &^= uint8(1 << msb)
	for len(h.scratch) > pos && h.scratch[len(h.scratch)-1] == 0 {
		h.scratch = h.scratch[:len(h.scratch)-1]
	}
	h.fillUpTo32()
	h.merkleizeWithMixin(pos, size, (maxBits+255)/256)
}

// HashSliceOfDynamicBytes hashes a dynamic slice of dynamic binary blobs.
func HashSliceOfDynamicBytes[T ~[]byte](h *Hasher, blobs []T, maxItems uint64, maxSize uint64) {
	pos := len(h.scratch)
	for _, blob := range blobs {
		HashDynamicBytes(h, blob, maxSize)
	}
	h.merkleizeWithMixin(pos, uint64(len(blobs)), maxItems)
}

// HashSliceOfStaticObjects hashes a dynamic slice of static ssz objects.
func HashSliceOfStaticObjects[T newableStaticObject[U], U any](h *Hasher, objects []T, maxItems uint64) {
	pos := len(h.scratch)
	for _, obj := range objects {
		HashStaticObject(h, obj)
	}
	h.merkleizeWithMixin(pos, uint64(len(objects)), maxItems)
}

// hashBytes either appends the blob to the hasher's scratch space if it's small
// enough to fit into a single chunk, or chunks it up and merkleizes it first.
func (h *Hasher) hashBytes(blob []byte) {
	if len(blob) <= 32 {
		h.appendBytesChunks(blob)
		return
	}
	pos := len(h.scratch)
	h.appendBytesChunks(blob)
	h.merkleize(pos)
}

// appendBytesChunks appends the blob padded to the 32 byte chunk size.
func (h *Hasher) appendBytesChunks(blob []byte) {
	h.scratch = append(h.scratch, blob...)
	h.fillUpTo32()
}

// fillUpTo32 pads the scratch space with zeroes to the next chunk boundary.
func (h *Hasher) fillUpTo32() {
	if rest := len(h.scratch) & 0x1f; rest != 0 {
		h.scratch = append(h.scratch, hasherZeroChunk[:32-rest]...)
	}
}

// fail records the first error hit while hashing. The remaining fields are
// still walked so the scratch layout stays consistent, but the root is void.
func (h *Hasher) fail(err error) {
	if h.err == nil {
		h.err = err
	}
}

// reset clears the scratch space and any error so the hasher can be reused.
func (h *Hasher) reset() {
	h.scratch = h.scratch[:0]
	h.err = nil
}

// merkleize hashes everything in the scratch space from the starting position
// into a single root, padding the chunks to the next power of two.
func (h *Hasher) merkleize(pos int) {
	h.merkleizeLimit(pos, 0)
}

// merkleizeWithMixin hashes everything in the scratch space from the starting
// position, also mixing in the size of the dynamic slice of data.
func (h *Hasher) merkleizeWithMixin(pos int, num, limit uint64) {
	h.merkleizeLimit(pos, limit)

	var pair [64]byte
	copy(pair[:32], h.scratch[pos:])
	binary.LittleEndian.PutUint64(pair[32:], num)

	root := sha256.Sum256(pair[:])
	h.scratch = append(h.scratch[:pos], root[:]...)
}

// merkleizeLimit reduces the chunks in the scratch space from the starting
// position into a single root of a tree with limit leaves (or the number of
// chunks rounded to the next power of two if limit is zero).
func (h *Hasher) merkleizeLimit(pos int, limit uint64) {
	// The layer reduction will expand the chunks by 32 bytes if some hashing
	// depth hits an odd chunk length. Ensure there's always space to do so to
	// avoid reallocating over and over again.
	if len(h.scratch) == cap(h.scratch) {
		h.scratch = append(h.scratch, hasherZeroChunk...)
		h.scratch = h.scratch[:len(h.scratch)-len(hasherZeroChunk)]
	}
	input := h.scratch[pos:]

	count := uint64(len(input) / 32)
	if limit == 0 {
		limit = count
	} else if count > limit {
		h.fail(fmt.Errorf("%w: %d chunks > %d chunk limit", ErrMaxLengthExceeded, count, limit))
		h.scratch = append(h.scratch[:pos], hasherZeroChunk...)
		return
	}
	switch {
	case limit == 0:
		h.scratch = append(h.scratch[:pos], hasherZeroChunk...)
		return
	case limit == 1:
		if count == 0 {
			h.scratch = append(h.scratch[:pos], hasherZeroChunk...)
		}
		return
	}
	depth := depthOf(limit)
	if count == 0 {
		h.scratch = append(h.scratch[:pos], zeroHashes[depth][:]...)
		return
	}
	for i := 0; i < depth; i++ {
		layer := len(input) / 32
		if layer%2 == 1 {
			input = append(input, zeroHashes[i][:]...)
			layer++
		}
		if err := gohashtree.HashByteSlice(input, input); err != nil {
			panic(err) // layer is always even, cannot fail
		}
		input = input[:layer/2*32]
	}
	h.scratch = append(h.scratch[:pos], input...)
}

// depthOf returns the depth of a binary tree with at least leaves leaves.
func depthOf(leaves uint64) int {
	if leaves <= 1 {
		return 0
	}
	return bits.Len64(leaves - 1)
}
