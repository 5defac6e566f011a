// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nossz

package commands

import "github.com/karalabe/rpcwire"

func decodeQuantitySSZ(blob []byte) (rpcwire.Quantity, error) {
	return rpcwire.DecodeQuantitySSZ(blob)
}

func encodeQuantitySSZ(q rpcwire.Quantity, width int) ([]byte, error) {
	return q.MarshalSSZ(width)
}
