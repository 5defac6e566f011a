// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package commands

import (
	"fmt"

	"github.com/karalabe/rpcwire"
	"github.com/spf13/cobra"
)

func newCapabilitiesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "Show which binary forms were compiled in",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "text: enabled")
			fmt.Fprintln(out, "rlp:", enabled(rpcwire.RLPEnabled))
			fmt.Fprintln(out, "ssz:", enabled(rpcwire.SSZEnabled))
		},
	}
}

func enabled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
