// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package vectors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/karalabe/rpcwire"
)

// Tests that the bundled conformance vectors all pass.
func TestConformance(t *testing.T) {
	vectors, err := LoadFile("../testdata/conformance.yaml")
	if err != nil {
		t.Fatalf("failed to load vectors: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatalf("no vectors loaded")
	}
	for _, v := range vectors {
		t.Run(v.Name, func(t *testing.T) {
			err := Check(v)
			if errors.Is(err, ErrUnsupported) {
				t.Skip(err)
			}
			if err != nil {
				t.Errorf("vector failed: %v", err)
			}
		})
	}
}

// Tests that wrong expectations are detected.
func TestCheckMismatch(t *testing.T) {
	tests := []Vector{
		{Name: "wrong text", Kind: "quantity", Input: "0x0010", Mode: "lenient", Text: "0x0010"},
		{Name: "wrong error", Kind: "quantity", Input: "0x01", Error: "ErrOddLength"},
		{Name: "missing error", Kind: "quantity", Input: "0x1", Error: "ErrLeadingZero"},
		{Name: "unexpected error", Kind: "bytes", Input: "0xabc"},
		{Name: "wrong snappy", Kind: "hash", Input: "0x" + strings.Repeat("00", 32), SSZ: "0x" + strings.Repeat("00", 32), SSZSnappy: "0x00"},
	}
	if rpcwire.RLPEnabled {
		tests = append(tests, Vector{Name: "wrong rlp", Kind: "uint64", Input: "0x10", RLP: "0x8110"})
	}
	if rpcwire.SSZEnabled {
		tests = append(tests,
			Vector{Name: "wrong ssz", Kind: "uint64", Input: "0x10", SSZ: "0x10"},
			Vector{Name: "wrong root", Kind: "address", Input: "0x" + strings.Repeat("00", 20), Root: "0x00"},
			Vector{Name: "overflowing width", Kind: "quantity", Input: "0x100", SSZ: "0x00", Width: 1},
		)
	}
	for _, tt := range tests {
		if err := Check(tt); !errors.Is(err, ErrMismatch) {
			t.Errorf("%s: error mismatch: have %v, want %v", tt.Name, err, ErrMismatch)
		}
	}
}

// Tests that malformed vectors are rejected during loading or checking.
func TestMalformedVectors(t *testing.T) {
	loads := []string{
		"- kind: quantity\n  input: \"0x1\"\n",
		"- name: x\n  kind: integer\n  input: \"0x1\"\n",
		"- name: x\n  kind: quantity\n  inptu: \"0x1\"\n",
	}
	for i, input := range loads {
		if _, err := Load(strings.NewReader(input)); err == nil {
			t.Errorf("load %d: expected error", i)
		}
	}
	checks := []Vector{
		{Name: "bad mode", Kind: "quantity", Input: "0x1", Mode: "sloppy"},
		{Name: "bad format", Kind: "quantity", Input: "0x1", Format: "json"},
		{Name: "bad error name", Kind: "quantity", Input: "0x01", Error: "LeadingZero"},
		{Name: "bad binary input", Kind: "quantity", Input: "0x1", Format: "rlp"},
	}
	for _, v := range checks {
		err := Check(v)
		if err == nil || errors.Is(err, ErrMismatch) {
			t.Errorf("%s: error mismatch: have %v, want non-mismatch error", v.Name, err)
		}
	}
}

// Tests that error names round trip through the sentinel lookup.
func TestErrorName(t *testing.T) {
	for name, sentinel := range errorsByName {
		if have := ErrorName(fmt.Errorf("%w: context", sentinel)); have != name {
			t.Errorf("name mismatch: have %s, want %s", have, name)
		}
	}
	if have := ErrorName(errors.New("other")); have != "" {
		t.Errorf("unexpected name for foreign error: %s", have)
	}
}
