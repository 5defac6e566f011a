// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// supportedSizes are the array lengths accepted by rpcwire.FixedBytes.
var supportedSizes = []int{8, 20, 32, 65, 256}

// fixedType is a named byte array to generate the codecs for.
type fixedType struct {
	name string
	size int
}

// recv is the receiver name of the generated methods.
func (t fixedType) recv() string {
	return strings.ToLower(t.name[:1])
}

// reflectVar is the name of the cached reflect type of the array.
func (t fixedType) reflectVar() string {
	return strings.ToLower(t.name[:1]) + t.name[1:] + "T"
}

// article is the indefinite article to use in front of the type name.
func (t fixedType) article() string {
	return articleOf(t.name)
}

// sizeArticle is the indefinite article to use in front of the byte length.
func (t fixedType) sizeArticle() string {
	return articleOf(fmt.Sprint(t.size))
}

// articleOf returns "an" for words pronounced with a leading vowel and "a" for
// everything else. Numbers are only handled in the supported size range.
func articleOf(word string) string {
	switch {
	case strings.ContainsRune("AEIOUaeiou", rune(word[0])):
		return "an"
	case word[0] == '8', word == "11", word == "18":
		return "an"
	default:
		return "a"
	}
}

func parsePackage(pkg *packages.Package, names []string) ([]fixedType, error) {
	var fixed []fixedType
	for _, name := range names {
		size, err := lookupArray(pkg.Types.Scope(), name)
		if err != nil {
			return nil, err
		}
		fixed = append(fixed, fixedType{name: name, size: size})
	}
	return fixed, nil
}

// lookupArray resolves a type name to a named byte array of a supported size,
// returning its length.
func lookupArray(scope *types.Scope, name string) (int, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return 0, fmt.Errorf("identifier not found: %s", name)
	}
	typ, ok := obj.(*types.TypeName)
	if !ok {
		return 0, fmt.Errorf("identifier not a type: %s", name)
	}
	named, ok := typ.Type().(*types.Named)
	if !ok {
		return 0, fmt.Errorf("identifier not a named type: %s", name)
	}
	arr, ok := named.Underlying().(*types.Array)
	if !ok || !types.Identical(arr.Elem(), types.Typ[types.Byte]) {
		return 0, fmt.Errorf("identifier not a named byte array: %s", name)
	}
	if !slices.Contains(supportedSizes, int(arr.Len())) {
		return 0, fmt.Errorf("unsupported array length for %s: %d, want one of %v", name, arr.Len(), supportedSizes)
	}
	return int(arr.Len()), nil
}
