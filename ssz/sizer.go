// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import "github.com/prysmaticlabs/go-bitfield"

// Sizer is an SSZ static and dynamic size computer.
type Sizer struct {
	codec *Codec // Self-referencing to have access to fork contexts
}

// Fork retrieves the current fork (if any) that the sizer is operating in.
func (siz *Sizer) Fork() Fork {
	return siz.codec.fork
}

// SizeDynamicBytes returns the serialized size of the dynamic part of a dynamic
// blob.
func SizeDynamicBytes[T ~[]byte](siz *Sizer, blob T) uint32 {
	return uint32(len(blob))
}

// SizeSliceOfBits returns the serialized size of the dynamic part of a slice of
// bits. A nil bitlist is encoded as an empty one, the sentinel byte only.
func SizeSliceOfBits(siz *Sizer, bits bitfield.Bitlist) uint32 {
	if len(bits) == 0 {
		return 1
	}
	return uint32(len(bits))
}

// SizeSliceOfDynamicBytes returns the serialized size of the dynamic part of a
// dynamic list of dynamic blobs.
func SizeSliceOfDynamicBytes[T ~[]byte](siz *Sizer, blobs []T) uint32 {
	var size uint32
	for _, blob := range blobs {
		size += uint32(4 + len(blob)) // 4-byte offset + dynamic data later
	}
	return size
}

// SizeSliceOfStaticObjects returns the serialized size of the dynamic part of a
// dynamic list of static objects.
func SizeSliceOfStaticObjects[T StaticObject](siz *Sizer, objects []T) uint32 {
	if len(objects) == 0 {
		return 0
	}
	return uint32(len(objects)) * objects[0].SizeSSZ(siz)
}
