// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import "fmt"

// Fork is an enum with the execution layer hard forks the engine API went
// through, which can be used to multiplex monolith types that encode/decode
// across a range of forks, not just for one specific.
//
// These enums are only meaningful in relation to one another, but are completely
// meaningless numbers otherwise. Do not persist them across code versions.
type Fork int

const (
	ForkUnknown Fork = iota // Placeholder if forks haven't been specified (must be index 0)

	ForkParis    // https://ethereum.org/en/history/#paris
	ForkShanghai // https://ethereum.org/en/history/#shapella
	ForkCancun   // https://ethereum.org/en/history/#dencun
	ForkPrague   // https://ethereum.org/en/history/#pectra

	ForkFuture // Use this for specifying future features (must be last index, no gaps)

	ForkMerge     = ForkParis    // Common alias for Paris
	ForkBellatrix = ForkParis    // CL alias for Paris
	ForkCapella   = ForkShanghai // CL alias for Shanghai
	ForkDeneb     = ForkCancun   // CL alias for Cancun
	ForkElectra   = ForkPrague   // CL alias for Prague
)

// ForkMapping maps fork names to fork values. This is used by the command line
// tooling to convert user input to values.
var ForkMapping = map[string]Fork{
	"paris":     ForkParis,
	"merge":     ForkMerge,
	"bellatrix": ForkBellatrix,
	"shanghai":  ForkShanghai,
	"capella":   ForkCapella,
	"cancun":    ForkCancun,
	"deneb":     ForkDeneb,
	"prague":    ForkPrague,
	"electra":   ForkElectra,
	"future":    ForkFuture,
}

// ParseFork converts a fork name into a fork value. The empty string maps to
// ForkUnknown.
func ParseFork(name string) (Fork, error) {
	if name == "" {
		return ForkUnknown, nil
	}
	if fork, ok := ForkMapping[name]; ok {
		return fork, nil
	}
	return ForkUnknown, fmt.Errorf("ssz: unknown fork %q", name)
}

// ForkFilter can be used by the DefineSSZ methods inside monolithic types to
// define certain fields appearing only in certain forks.
type ForkFilter struct {
	Added   Fork
	Removed Fork
}

// Contains reports whether a fork is inside the filter's [Added, Removed) range.
// A zero Removed means the field was never removed.
func (f ForkFilter) Contains(fork Fork) bool {
	if fork < f.Added {
		return false
	}
	return f.Removed == ForkUnknown || fork < f.Removed
}
