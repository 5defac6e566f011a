// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire

import (
	"encoding/json"
	"reflect"
)

// isString checks whether a raw JSON value is a string literal. Escapes are not
// interpreted, a valid hex string never contains any.
func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}

// errNonString is the error returned when a hex value is not encoded as a JSON
// string, mimicking the error encoding/json would return itself.
func errNonString(typ reflect.Type) error {
	return &json.UnmarshalTypeError{Value: "non-string", Type: typ}
}
