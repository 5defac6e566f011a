// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nossz

package rpcwire

// SSZEnabled reports whether the SSZ codecs were compiled in.
const SSZEnabled = false
