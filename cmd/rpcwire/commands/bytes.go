// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package commands

import (
	"fmt"

	"github.com/golang/snappy"
	"github.com/karalabe/rpcwire"
	"github.com/spf13/cobra"
)

func newBytesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes <value>",
		Short: "Convert a byte sequence between its text, RLP and SSZ forms",
		Long: `Convert a byte sequence between its text, RLP and SSZ forms.

Binary forms are given and printed as 0x prefixed hex. The SSZ form is the raw
content of the byte list (or vector, if --size is set), optionally snappy
compressed with --snappy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := app.cfg.GetString(flagFrom), app.cfg.GetString(flagTo)
			if err := checkForm(flagFrom, from, formText, formRLP, formSSZ); err != nil {
				return err
			}
			if err := checkForm(flagTo, to, formText, formRLP, formSSZ); err != nil {
				return err
			}
			compress := app.cfg.GetBool(flagSnappy)

			b, err := decodeBytes(args[0], from, compress)
			if err != nil {
				return err
			}
			if size := app.cfg.GetInt(flagSize); size > 0 && len(b) != size {
				return fmt.Errorf("%w: have %d bytes, want %d", rpcwire.ErrLengthMismatch, len(b), size)
			}
			out, err := encodeBytes(b, to, compress)
			if err != nil {
				return err
			}
			app.log.Debugw("Converted byte sequence", "from", from, "to", to, "size", len(b))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String(flagFrom, formText, "form of the input: text, rlp or ssz")
	cmd.Flags().String(flagTo, formText, "form of the output: text, rlp or ssz")
	cmd.Flags().Int(flagSize, 0, "exact number of bytes required (0 for any)")
	cmd.Flags().Bool(flagSnappy, false, "snappy compress the SSZ form")
	return cmd
}

// decodeBytes parses the input in the given form.
func decodeBytes(input string, form string, compressed bool) (rpcwire.Bytes, error) {
	if form == formText {
		return rpcwire.DecodeBytes(input)
	}
	blob, err := rpcwire.ParseBytes(input)
	if err != nil {
		return nil, err
	}
	if form == formRLP {
		return decodeBytesRLP(blob)
	}
	if !rpcwire.SSZEnabled {
		return nil, fmt.Errorf("%w: ssz", errUnsupported)
	}
	if compressed {
		if blob, err = snappy.Decode(nil, blob); err != nil {
			return nil, fmt.Errorf("invalid snappy payload: %w", err)
		}
	}
	return rpcwire.Bytes(blob), nil
}

// encodeBytes formats the byte sequence in the given form.
func encodeBytes(b rpcwire.Bytes, form string, compress bool) (string, error) {
	switch form {
	case formText:
		return b.String(), nil
	case formRLP:
		blob, err := encodeBytesRLP(b)
		if err != nil {
			return "", err
		}
		return rpcwire.FormatBytes(blob), nil
	}
	if !rpcwire.SSZEnabled {
		return "", fmt.Errorf("%w: ssz", errUnsupported)
	}
	if compress {
		return rpcwire.FormatBytes(snappy.Encode(nil, b)), nil
	}
	return b.String(), nil
}
