// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !norlp

package vectors

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/karalabe/rpcwire"
)

// decodeRLP decodes an RLP blob into a value.
func decodeRLP(value any, blob []byte) error {
	return rlp.DecodeBytes(blob, value)
}

// checkRLP checks that the RLP encoding of a value matches the expectation and
// that the expectation decodes back into the same value.
func checkRLP(value any, want string) error {
	blob, err := rpcwire.ParseBytes(want)
	if err != nil {
		return fmt.Errorf("invalid rlp field: %w", err)
	}
	have, err := rlp.EncodeToBytes(value)
	if err != nil {
		return fmt.Errorf("%w: rlp encoding failed: %v", ErrMismatch, err)
	}
	if enc := rpcwire.FormatBytes(have); enc != want {
		return fmt.Errorf("%w: rlp: have %s, want %s", ErrMismatch, enc, want)
	}
	dec := reflect.New(reflect.TypeOf(value).Elem()).Interface()
	if err := rlp.DecodeBytes(blob, dec); err != nil {
		return fmt.Errorf("%w: rlp decoding failed: %v", ErrMismatch, err)
	}
	if !sameText(value, dec) {
		return fmt.Errorf("%w: rlp round trip: have %v, want %v", ErrMismatch, dec, value)
	}
	return nil
}
