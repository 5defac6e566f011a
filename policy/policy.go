// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package policy selects the decode mode of JSON-RPC fields by name, so that
// the handful of fields which historically tolerated leading zeroes can be
// decoded leniently without relaxing every other field.
//
// Policies are loaded from YAML files of the form:
//
//	default: strict
//	fields:
//	  eth_feeHistory.oldestBlock: lenient
//	  engine_*: strict
//
// Keys ending in '*' are prefix patterns. An exact key always wins over the
// patterns, and among patterns the longest matching one wins.
package policy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karalabe/rpcwire"
	"gopkg.in/yaml.v3"
)

// Policy maps field names to decode modes.
type Policy struct {
	Default rpcwire.DecodeMode            // Mode of fields not matched by any key
	Fields  map[string]rpcwire.DecodeMode // Exact field names or prefix patterns
}

// policyFile is the YAML layout of a policy.
type policyFile struct {
	Default string            `yaml:"default"`
	Fields  map[string]string `yaml:"fields"`
}

// New creates an empty policy, decoding everything strictly.
func New() *Policy {
	return &Policy{
		Default: rpcwire.Strict,
		Fields:  make(map[string]rpcwire.DecodeMode),
	}
}

// Load parses a YAML policy from a reader. An empty document is the strict
// policy. Unknown keys and unknown mode names are rejected.
func Load(r io.Reader) (*Policy, error) {
	var raw policyFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("policy: failed to parse: %w", err)
	}
	pol := New()
	if raw.Default != "" {
		mode, err := rpcwire.ParseDecodeMode(raw.Default)
		if err != nil {
			return nil, fmt.Errorf("policy: default: %w", err)
		}
		pol.Default = mode
	}
	for field, name := range raw.Fields {
		if i := strings.IndexByte(field, '*'); i >= 0 && i != len(field)-1 {
			return nil, fmt.Errorf("policy: field %q: wildcard only allowed at the end", field)
		}
		mode, err := rpcwire.ParseDecodeMode(name)
		if err != nil {
			return nil, fmt.Errorf("policy: field %q: %w", field, err)
		}
		pol.Fields[field] = mode
	}
	return pol, nil
}

// LoadFile parses a YAML policy from a file.
func LoadFile(path string) (*Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Mode returns the decode mode of a field. A nil policy is strict.
func (p *Policy) Mode(field string) rpcwire.DecodeMode {
	if p == nil {
		return rpcwire.Strict
	}
	if mode, ok := p.Fields[field]; ok {
		return mode
	}
	var (
		best  = -1
		found = p.Default
	)
	for key, mode := range p.Fields {
		prefix, ok := strings.CutSuffix(key, "*")
		if !ok || !strings.HasPrefix(field, prefix) {
			continue
		}
		if len(prefix) > best {
			best, found = len(prefix), mode
		}
	}
	return found
}

// DecodeQuantity decodes the text form of a quantity field in the field's mode.
func (p *Policy) DecodeQuantity(field string, text string) (rpcwire.Quantity, error) {
	q, err := rpcwire.DecodeQuantity(text, p.Mode(field))
	if err != nil {
		return rpcwire.Quantity{}, fmt.Errorf("%s: %w", field, err)
	}
	return q, nil
}

// DecodeUint64 decodes the text form of a 64 bit quantity field in the field's
// mode.
func (p *Policy) DecodeUint64(field string, text string) (rpcwire.Uint64, error) {
	n, err := rpcwire.DecodeUint64(text, p.Mode(field))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}
