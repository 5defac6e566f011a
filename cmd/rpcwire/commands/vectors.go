// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package commands

import (
	"errors"
	"fmt"

	"github.com/karalabe/rpcwire/vectors"
	"github.com/spf13/cobra"
)

// errVectorsFailed is returned if any of the checked vectors failed.
var errVectorsFailed = errors.New("conformance vectors failed")

func newVectorsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vectors <file.yaml>...",
		Short: "Run conformance vector files against the codecs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				vs, err := vectors.LoadFile(path)
				if err != nil {
					return err
				}
				var pass, fail, skip int
				for _, v := range vs {
					switch err := vectors.Check(v); {
					case err == nil:
						pass++
					case errors.Is(err, vectors.ErrUnsupported):
						app.log.Debugw("Skipped vector", "file", path, "name", v.Name, "err", err)
						skip++
					default:
						app.log.Warnw("Vector failed", "file", path, "name", v.Name, "err", err)
						fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %s: %v\n", path, v.Name, err)
						fail++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d passed, %d failed, %d unsupported\n", path, pass, fail, skip)
				failed += fail
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d", errVectorsFailed, failed)
			}
			return nil
		},
	}
}
