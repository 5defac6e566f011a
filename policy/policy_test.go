// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package policy

import (
	"strings"
	"testing"

	"github.com/karalabe/rpcwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	pol, err := LoadFile("testdata/policy.yaml")
	require.NoError(t, err)

	tests := []struct {
		field string
		mode  rpcwire.DecodeMode
	}{
		{"eth_feeHistory.oldestBlock", rpcwire.Lenient}, // exact key
		{"eth_feeHistory.blockCount", rpcwire.Strict},   // eth_* pattern
		{"eth_getLogs.fromBlock", rpcwire.Lenient},      // longer pattern wins
		{"eth_getLogs.toBlock", rpcwire.Strict},         // exact key beats pattern
		{"engine_newPayloadV3.gasUsed", rpcwire.Strict}, // default
	}
	for _, tt := range tests {
		assert.Equal(t, tt.mode, pol.Mode(tt.field), "field %s", tt.field)
	}
}

func TestLoadDefaults(t *testing.T) {
	pol, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, rpcwire.Strict, pol.Default)
	assert.Empty(t, pol.Fields)

	pol, err = Load(strings.NewReader("default: lenient\n"))
	require.NoError(t, err)
	assert.Equal(t, rpcwire.Lenient, pol.Mode("anything"))

	var nilPolicy *Policy
	assert.Equal(t, rpcwire.Strict, nilPolicy.Mode("anything"))
}

func TestLoadErrors(t *testing.T) {
	tests := []string{
		"default: loose\n",
		"fields:\n  eth_chainId: sloppy\n",
		"fields:\n  eth_*.number: lenient\n",
		"defaults: strict\n",
		"fields: [1, 2]\n",
	}
	for _, input := range tests {
		_, err := Load(strings.NewReader(input))
		assert.Error(t, err, "input %q", input)
	}
	_, err := LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	pol, err := LoadFile("testdata/policy.yaml")
	require.NoError(t, err)

	q, err := pol.DecodeQuantity("eth_feeHistory.oldestBlock", "0x00ff")
	require.NoError(t, err)
	assert.True(t, q.Equal(rpcwire.NewQuantity(255)), "have %v, want 0xff", q)

	_, err = pol.DecodeQuantity("eth_feeHistory.blockCount", "0x00ff")
	assert.ErrorIs(t, err, rpcwire.ErrLeadingZero)
	assert.Contains(t, err.Error(), "eth_feeHistory.blockCount")

	n, err := pol.DecodeUint64("eth_getLogs.fromBlock", "0x0010")
	require.NoError(t, err)
	assert.EqualValues(t, 16, n)

	_, err = pol.DecodeUint64("eth_getLogs.toBlock", "0x0010")
	assert.ErrorIs(t, err, rpcwire.ErrLeadingZero)

	_, err = pol.DecodeUint64("eth_getLogs.fromBlock", "0x10000000000000000")
	assert.ErrorIs(t, err, rpcwire.ErrOverflow)
}
