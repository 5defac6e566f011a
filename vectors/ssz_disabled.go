// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nossz

package vectors

func decodeSSZ(value any, blob []byte) error {
	return ErrUnsupported
}

func checkSSZ(value any, want string, root string, width int) error {
	return nil
}
