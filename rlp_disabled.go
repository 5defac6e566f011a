// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build norlp

package rpcwire

// RLPEnabled reports whether the RLP codecs were compiled in.
const RLPEnabled = false
