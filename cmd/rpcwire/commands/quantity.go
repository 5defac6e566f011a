// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package commands

import (
	"fmt"
	"math/big"

	"github.com/karalabe/rpcwire"
	"github.com/spf13/cobra"
)

func newQuantityCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quantity <value>",
		Short: "Convert a quantity between its text, decimal, RLP and SSZ forms",
		Long: `Convert a quantity between its text, decimal, RLP and SSZ forms.

Binary forms are given and printed as 0x prefixed hex. The SSZ form is a little
endian integer of --width bytes; when decoding, the width is the input length.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := app.cfg.GetString(flagFrom), app.cfg.GetString(flagTo)
			if err := checkForm(flagFrom, from, formText, formDec, formRLP, formSSZ); err != nil {
				return err
			}
			if err := checkForm(flagTo, to, formText, formDec, formRLP, formSSZ); err != nil {
				return err
			}
			q, err := app.decodeQuantity(args[0], from)
			if err != nil {
				return err
			}
			out, err := encodeQuantity(q, to, app.cfg.GetInt(flagWidth))
			if err != nil {
				return err
			}
			app.log.Debugw("Converted quantity", "from", from, "to", to, "bits", q.BitLen())
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String(flagFrom, formText, "form of the input: text, dec, rlp or ssz")
	cmd.Flags().String(flagTo, formText, "form of the output: text, dec, rlp or ssz")
	cmd.Flags().Int(flagWidth, 32, "SSZ integer width in bytes: 1, 2, 4, 8, 16 or 32")
	cmd.Flags().Bool(flagLenient, false, "tolerate leading zero digits in the text form")
	return cmd
}

// decodeQuantity parses the input in the given form.
func (a *app) decodeQuantity(input string, form string) (rpcwire.Quantity, error) {
	switch form {
	case formText:
		return rpcwire.DecodeQuantity(input, a.mode())
	case formDec:
		n, ok := new(big.Int).SetString(input, 10)
		if !ok {
			return rpcwire.Quantity{}, fmt.Errorf("invalid decimal number %q", input)
		}
		return rpcwire.QuantityFromBig(n)
	}
	blob, err := rpcwire.ParseBytes(input)
	if err != nil {
		return rpcwire.Quantity{}, err
	}
	if form == formRLP {
		return decodeQuantityRLP(blob)
	}
	return decodeQuantitySSZ(blob)
}

// encodeQuantity formats the quantity in the given form.
func encodeQuantity(q rpcwire.Quantity, form string, width int) (string, error) {
	var (
		blob []byte
		err  error
	)
	switch form {
	case formText:
		return q.String(), nil
	case formDec:
		return q.Big().String(), nil
	case formRLP:
		blob, err = encodeQuantityRLP(q)
	default:
		blob, err = encodeQuantitySSZ(q, width)
	}
	if err != nil {
		return "", err
	}
	return rpcwire.FormatBytes(blob), nil
}
