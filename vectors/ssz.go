// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nossz

package vectors

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/karalabe/rpcwire"
	"github.com/karalabe/rpcwire/ssz"
)

// errNoStandaloneSSZ is returned for byte sequences, which only have an SSZ
// form as a field of a container (it needs a maximum length).
var errNoStandaloneSSZ = errors.New("byte sequences have no standalone ssz form")

// quantityObject wraps a quantity of a given width into a static SSZ object, so
// it can be hashed by the SSZ codec.
type quantityObject struct {
	q     *rpcwire.Quantity
	width int
}

func (obj *quantityObject) SizeSSZ(siz *ssz.Sizer) uint32 { return uint32(obj.width) }
func (obj *quantityObject) DefineSSZ(codec *ssz.Codec) {
	rpcwire.DefineQuantity(codec, obj.q, obj.width)
}

// decodeSSZ decodes an SSZ blob into a value. Quantities take their width from
// the length of the blob.
func decodeSSZ(value any, blob []byte) error {
	switch v := value.(type) {
	case *rpcwire.Quantity:
		q, err := rpcwire.DecodeQuantitySSZ(blob)
		if err != nil {
			return err
		}
		*v = q
		return nil

	case ssz.StaticObject:
		// The ssz package has its own length errors, convert them so vectors
		// can be written against the rpcwire sentinels
		if size := ssz.Size(v); uint32(len(blob)) != size {
			return fmt.Errorf("%w: have %d bytes, want %d", rpcwire.ErrLengthMismatch, len(blob), size)
		}
		return ssz.DecodeFromBytes(blob, v)

	default:
		return errNoStandaloneSSZ
	}
}

// checkSSZ checks that the SSZ encoding and hash tree root of a value match the
// expectations, and that the encoding decodes back into the same value.
func checkSSZ(value any, want string, root string, width int) error {
	var (
		have []byte
		hash [32]byte
		err  error
	)
	switch v := value.(type) {
	case *rpcwire.Quantity:
		if have, err = v.MarshalSSZ(width); err != nil {
			return fmt.Errorf("%w: ssz encoding failed: %v", ErrMismatch, err)
		}
		if root != "" {
			if hash, err = ssz.Hash(&quantityObject{q: v, width: width}); err != nil {
				return fmt.Errorf("%w: ssz hashing failed: %v", ErrMismatch, err)
			}
		}
	case ssz.StaticObject:
		have = make([]byte, ssz.Size(v))
		if err = ssz.EncodeToBytes(have, v); err != nil {
			return fmt.Errorf("%w: ssz encoding failed: %v", ErrMismatch, err)
		}
		if hash, err = ssz.Hash(v); err != nil {
			return fmt.Errorf("%w: ssz hashing failed: %v", ErrMismatch, err)
		}
	default:
		return errNoStandaloneSSZ
	}
	if want != "" {
		if enc := rpcwire.FormatBytes(have); enc != want {
			return fmt.Errorf("%w: ssz: have %s, want %s", ErrMismatch, enc, want)
		}
		blob, err := rpcwire.ParseBytes(want)
		if err != nil {
			return fmt.Errorf("invalid ssz field: %w", err)
		}
		dec := reflect.New(reflect.TypeOf(value).Elem()).Interface()
		if err := decodeSSZ(dec, blob); err != nil {
			return fmt.Errorf("%w: ssz decoding failed: %v", ErrMismatch, err)
		}
		if !sameText(value, dec) {
			return fmt.Errorf("%w: ssz round trip: have %v, want %v", ErrMismatch, dec, value)
		}
	}
	if root != "" {
		if enc := rpcwire.FormatBytes(hash[:]); enc != root {
			return fmt.Errorf("%w: root: have %s, want %s", ErrMismatch, enc, root)
		}
	}
	return nil
}
