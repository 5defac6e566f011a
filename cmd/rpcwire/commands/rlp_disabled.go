// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build norlp

package commands

import (
	"fmt"

	"github.com/karalabe/rpcwire"
)

var errNoRLP = fmt.Errorf("%w: rlp", errUnsupported)

func decodeQuantityRLP(blob []byte) (rpcwire.Quantity, error) { return rpcwire.Quantity{}, errNoRLP }
func encodeQuantityRLP(q rpcwire.Quantity) ([]byte, error)    { return nil, errNoRLP }
func decodeBytesRLP(blob []byte) (rpcwire.Bytes, error)       { return nil, errNoRLP }
func encodeBytesRLP(b rpcwire.Bytes) ([]byte, error)          { return nil, errNoRLP }
