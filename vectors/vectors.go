// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vectors runs conformance vectors against the rpcwire codecs.
//
// A vector file is a YAML list of test cases:
//
//	- name: leading zero
//	  kind: quantity
//	  input: "0x01"
//	  error: ErrLeadingZero
//	- name: small quantity
//	  kind: quantity
//	  input: "0x10"
//	  rlp: "0x10"
//	  ssz: "0x1000"
//	  width: 2
//
// The input is decoded (from text by default, or from the format named by the
// format field), after which either the error is matched, or the canonical
// text form and the binary forms enabled in the build are compared against the
// expectations, each of them also decoding back into the same value.
package vectors

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/karalabe/rpcwire"
	"gopkg.in/yaml.v3"
)

// ErrMismatch is returned if a vector decoded fine, but some encoding of it did
// not match the expectation.
var ErrMismatch = errors.New("vectors: mismatch")

// ErrUnsupported is returned if a vector's input format was not compiled into
// the binary (norlp or nossz build tags).
var ErrUnsupported = errors.New("vectors: format not compiled in")

// Vector is a single conformance test case.
type Vector struct {
	Name   string `yaml:"name"`   // Human readable name for reporting
	Kind   string `yaml:"kind"`   // quantity, uint64, bytes, b64, address, hash, signature or bloom
	Input  string `yaml:"input"`  // Input to decode (hex for the binary formats)
	Format string `yaml:"format"` // Format of the input: text (default), rlp or ssz
	Mode   string `yaml:"mode"`   // Text decoding mode: strict (default) or lenient
	Error  string `yaml:"error"`  // Name of the expected error, if any

	Text      string `yaml:"text"`       // Canonical text form (defaults to the input for text vectors)
	RLP       string `yaml:"rlp"`        // Expected RLP encoding, hex
	SSZ       string `yaml:"ssz"`        // Expected SSZ encoding, hex
	SSZSnappy string `yaml:"ssz_snappy"` // Expected snappy compressed SSZ encoding, hex
	Root      string `yaml:"root"`       // Expected SSZ hash tree root, hex
	Width     int    `yaml:"width"`      // SSZ width of quantities
}

// Load parses a list of vectors from a YAML stream.
func Load(r io.Reader) ([]Vector, error) {
	var vectors []Vector

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&vectors); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("vectors: failed to parse: %w", err)
	}
	for i, v := range vectors {
		if v.Name == "" {
			return nil, fmt.Errorf("vectors: vector #%d has no name", i)
		}
		if _, err := newValue(v.Kind); err != nil {
			return nil, fmt.Errorf("vectors: vector %q: %w", v.Name, err)
		}
	}
	return vectors, nil
}

// LoadFile parses a list of vectors from a YAML file.
func LoadFile(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// errorsByName maps the error names usable in vector files to sentinels.
var errorsByName = map[string]error{
	"ErrMalformedHex":         rpcwire.ErrMalformedHex,
	"ErrInvalidDigit":         rpcwire.ErrInvalidDigit,
	"ErrOddLength":            rpcwire.ErrOddLength,
	"ErrLeadingZero":          rpcwire.ErrLeadingZero,
	"ErrLengthMismatch":       rpcwire.ErrLengthMismatch,
	"ErrNonCanonicalEncoding": rpcwire.ErrNonCanonicalEncoding,
	"ErrOverflow":             rpcwire.ErrOverflow,
	"ErrNegative":             rpcwire.ErrNegative,
}

// ErrorName returns the vector file name of an rpcwire error, or the empty
// string if the error does not wrap any of the package sentinels.
func ErrorName(err error) string {
	for name, sentinel := range errorsByName {
		if errors.Is(err, sentinel) {
			return name
		}
	}
	return ""
}

// Check runs a single vector, returning nil if all its expectations hold.
func Check(v Vector) error {
	mode := rpcwire.Strict
	if v.Mode != "" {
		var err error
		if mode, err = rpcwire.ParseDecodeMode(v.Mode); err != nil {
			return err
		}
	}
	value, err := newValue(v.Kind)
	if err != nil {
		return err
	}
	// Decode the input in whatever format it's in
	switch v.Format {
	case "", "text":
		err = decodeText(value, v.Input, mode)
	case "rlp", "ssz":
		blob, perr := rpcwire.ParseBytes(v.Input)
		if perr != nil {
			return fmt.Errorf("invalid %s input: %w", v.Format, perr)
		}
		if v.Format == "rlp" {
			err = decodeRLP(value, blob)
		} else {
			err = decodeSSZ(value, blob)
		}
	default:
		return fmt.Errorf("unknown input format %q", v.Format)
	}
	if errors.Is(err, ErrUnsupported) {
		return err
	}
	// If an error was expected, match it, otherwise require success
	if v.Error != "" {
		want, ok := errorsByName[v.Error]
		if !ok {
			return fmt.Errorf("unknown error name %q", v.Error)
		}
		if !errors.Is(err, want) {
			return fmt.Errorf("%w: decode error: have %v, want %v", ErrMismatch, err, want)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: unexpected decode error: %v", ErrMismatch, err)
	}
	// Decoding succeeded, check the canonical encodings
	text, err := value.(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return err
	}
	want := v.Text
	if want == "" && (v.Format == "" || v.Format == "text") {
		want = v.Input
	}
	if want != "" && string(text) != want {
		return fmt.Errorf("%w: text: have %s, want %s", ErrMismatch, text, want)
	}
	if v.RLP != "" && rpcwire.RLPEnabled {
		if err := checkRLP(value, v.RLP); err != nil {
			return err
		}
	}
	if (v.SSZ != "" || v.Root != "") && rpcwire.SSZEnabled {
		if err := checkSSZ(value, v.SSZ, v.Root, v.Width); err != nil {
			return err
		}
	}
	if v.SSZSnappy != "" {
		if err := checkSnappy(v.SSZSnappy, v.SSZ); err != nil {
			return err
		}
	}
	return nil
}

// newValue allocates a zero value of the given kind to decode into.
func newValue(kind string) (any, error) {
	switch strings.ToLower(kind) {
	case "quantity":
		return new(rpcwire.Quantity), nil
	case "uint64":
		return new(rpcwire.Uint64), nil
	case "bytes":
		return new(rpcwire.Bytes), nil
	case "b64":
		return new(rpcwire.B64), nil
	case "address":
		return new(rpcwire.Address), nil
	case "hash":
		return new(rpcwire.Hash), nil
	case "signature":
		return new(rpcwire.Signature), nil
	case "bloom":
		return new(rpcwire.Bloom), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// decodeText decodes the text form of a value in the requested mode. Only the
// quantities have a lenient form.
func decodeText(value any, text string, mode rpcwire.DecodeMode) error {
	switch v := value.(type) {
	case *rpcwire.Quantity:
		q, err := rpcwire.DecodeQuantity(text, mode)
		if err != nil {
			return err
		}
		*v = q
		return nil

	case *rpcwire.Uint64:
		n, err := rpcwire.DecodeUint64(text, mode)
		if err != nil {
			return err
		}
		*v = n
		return nil

	default:
		return value.(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
	}
}

// sameText checks whether two values have the same canonical text form, which
// is how value equality is compared across kinds.
func sameText(a, b any) bool {
	at, _ := a.(encoding.TextMarshaler).MarshalText()
	bt, _ := b.(encoding.TextMarshaler).MarshalText()
	return bytes.Equal(at, bt)
}

// checkSnappy checks that a snappy compressed blob decompresses into the given
// uncompressed one.
func checkSnappy(compressed string, want string) error {
	blob, err := rpcwire.ParseBytes(compressed)
	if err != nil {
		return fmt.Errorf("invalid ssz_snappy field: %w", err)
	}
	have, err := snappy.Decode(nil, blob)
	if err != nil {
		return fmt.Errorf("%w: ssz_snappy: %v", ErrMismatch, err)
	}
	if rpcwire.FormatBytes(have) != want {
		return fmt.Errorf("%w: ssz_snappy: have %s, want %s", ErrMismatch, rpcwire.FormatBytes(have), want)
	}
	return nil
}
