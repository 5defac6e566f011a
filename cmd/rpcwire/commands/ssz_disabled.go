// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nossz

package commands

import (
	"fmt"

	"github.com/karalabe/rpcwire"
)

var errNoSSZ = fmt.Errorf("%w: ssz", errUnsupported)

func decodeQuantitySSZ(blob []byte) (rpcwire.Quantity, error)         { return rpcwire.Quantity{}, errNoSSZ }
func encodeQuantitySSZ(q rpcwire.Quantity, width int) ([]byte, error) { return nil, errNoSSZ }
