// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !norlp

package commands

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/karalabe/rpcwire"
)

func decodeQuantityRLP(blob []byte) (rpcwire.Quantity, error) {
	var q rpcwire.Quantity
	if err := rlp.DecodeBytes(blob, &q); err != nil {
		return rpcwire.Quantity{}, err
	}
	return q, nil
}

func encodeQuantityRLP(q rpcwire.Quantity) ([]byte, error) {
	return rlp.EncodeToBytes(q)
}

func decodeBytesRLP(blob []byte) (rpcwire.Bytes, error) {
	var b rpcwire.Bytes
	if err := rlp.DecodeBytes(blob, &b); err != nil {
		return nil, err
	}
	return b, nil
}

func encodeBytesRLP(b rpcwire.Bytes) ([]byte, error) {
	return rlp.EncodeToBytes(b)
}
