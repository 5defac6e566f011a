// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command rpcwire converts JSON-RPC values between their text and binary forms
// and runs conformance vector files against the codecs.
package main

import (
	"os"

	"github.com/karalabe/rpcwire/cmd/rpcwire/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
