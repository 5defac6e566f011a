// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

const (
	generatorPath = "github.com/karalabe/rpcwire/cmd/fixedgen"
	rlpPkgPath    = "github.com/ethereum/go-ethereum/rlp"
	sszPkgPath    = "github.com/karalabe/rpcwire/ssz"
)

type genContext struct {
	pkg      *packages.Package
	buildTag string
	imports  map[string]string
}

func newGenContext(pkg *packages.Package, buildTag string) *genContext {
	return &genContext{
		pkg:      pkg,
		buildTag: buildTag,
		imports:  make(map[string]string),
	}
}

func (ctx *genContext) addImport(path string, alias string) error {
	if path == ctx.pkg.PkgPath {
		return nil
	}
	if n, ok := ctx.imports[path]; ok && n != alias {
		return fmt.Errorf("conflict import %s(alias: %s-%s)", path, n, alias)
	}
	ctx.imports[path] = alias
	return nil
}

// header emits the generated code banner, the build constraint, the package
// clause and the imports, standard library ones grouped first.
func (ctx *genContext) header() []byte {
	var std, ext sort.StringSlice
	for path := range ctx.imports {
		if strings.Contains(strings.Split(path, "/")[0], ".") {
			ext = append(ext, path)
		} else {
			std = append(std, path)
		}
	}
	sort.Sort(std)
	sort.Sort(ext)

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by %s. DO NOT EDIT.\n\n", generatorPath)
	if ctx.buildTag != "" {
		fmt.Fprintf(&b, "//go:build %s\n\n", ctx.buildTag)
	}
	fmt.Fprintf(&b, "package %s\n\n", ctx.pkg.Name)

	paths := append([]string(std), ext...)
	switch len(paths) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "import %s\n", ctx.importSpec(paths[0]))
	default:
		fmt.Fprintf(&b, "import (\n")
		for i, path := range paths {
			if i == len(std) && i > 0 {
				fmt.Fprintf(&b, "\n")
			}
			fmt.Fprintf(&b, "%s\n", ctx.importSpec(path))
		}
		fmt.Fprintf(&b, ")\n")
	}
	return b.Bytes()
}

func (ctx *genContext) importSpec(path string) string {
	if alias := ctx.imports[path]; alias != "" {
		return fmt.Sprintf("%s %q", alias, path)
	}
	return fmt.Sprintf("%q", path)
}

func generateText(ctx *genContext, typ fixedType) []byte {
	var b bytes.Buffer

	ctx.addImport("bytes", "")
	ctx.addImport("reflect", "")

	r, name := typ.recv(), typ.name
	fmt.Fprintf(&b, "var %s = reflect.TypeOf(%s{})\n\n", typ.reflectVar(), name)

	fmt.Fprintf(&b, "// %sFromBytes converts a byte slice into %s %s, failing with ErrLengthMismatch\n", name, typ.article(), name)
	fmt.Fprintf(&b, "// if it is not exactly %d bytes long.\n", typ.size)
	fmt.Fprintf(&b, "func %sFromBytes(b []byte) (%s, error) {\n", name, name)
	fmt.Fprintf(&b, "return FixedFromBytes[%s](b)\n}\n\n", name)

	fmt.Fprintf(&b, "// Parse%s decodes %s %s from its 0x prefixed hex form.\n", name, typ.article(), name)
	fmt.Fprintf(&b, "func Parse%s(text string) (%s, error) {\n", name, name)
	fmt.Fprintf(&b, "return ParseFixed[%s](text)\n}\n\n", name)

	fmt.Fprintf(&b, "// Bytes returns the %s as a freshly allocated byte slice.\n", name)
	fmt.Fprintf(&b, "func (%s %s) Bytes() []byte {\n", r, name)
	fmt.Fprintf(&b, "return %s[:]\n}\n\n", r)

	fmt.Fprintf(&b, "// String returns the canonical text form of the %s.\n", name)
	fmt.Fprintf(&b, "func (%s %s) String() string {\n", r, name)
	fmt.Fprintf(&b, "return FormatFixed(%s)\n}\n\n", r)

	fmt.Fprintf(&b, "// MarshalText implements encoding.TextMarshaler.\n")
	fmt.Fprintf(&b, "func (%s %s) MarshalText() ([]byte, error) {\n", r, name)
	fmt.Fprintf(&b, "return appendFixed(make([]byte, 0, %d), &%s), nil\n}\n\n", 2+2*typ.size, r)

	fmt.Fprintf(&b, "// UnmarshalText implements encoding.TextUnmarshaler.\n")
	fmt.Fprintf(&b, "func (%s *%s) UnmarshalText(input []byte) error {\n", r, name)
	fmt.Fprintf(&b, "return unmarshalFixedText(%s, input)\n}\n\n", r)

	fmt.Fprintf(&b, "// UnmarshalJSON implements json.Unmarshaler.\n")
	fmt.Fprintf(&b, "func (%s *%s) UnmarshalJSON(input []byte) error {\n", r, name)
	fmt.Fprintf(&b, "if !isString(input) {\nreturn errNonString(%s)\n}\n", typ.reflectVar())
	fmt.Fprintf(&b, "return %s.UnmarshalText(input[1 : len(input)-1])\n}\n\n", r)

	fmt.Fprintf(&b, "// Cmp compares two %s values byte by byte.\n", name)
	fmt.Fprintf(&b, "func (%s %s) Cmp(other %s) int {\n", r, name, name)
	fmt.Fprintf(&b, "return bytes.Compare(%s[:], other[:])\n}\n", r)

	return b.Bytes()
}

func generateRLP(ctx *genContext, typ fixedType) []byte {
	var b bytes.Buffer

	ctx.addImport("io", "")
	ctx.addImport(rlpPkgPath, "")

	r, name := typ.recv(), typ.name
	fmt.Fprintf(&b, "// EncodeRLP implements rlp.Encoder, encoding the %s as %s %d byte string.\n", name, typ.sizeArticle(), typ.size)
	fmt.Fprintf(&b, "func (%s %s) EncodeRLP(w io.Writer) error {\n", r, name)
	fmt.Fprintf(&b, "return encodeFixedRLP(w, &%s)\n}\n\n", r)

	fmt.Fprintf(&b, "// DecodeRLP implements rlp.Decoder, rejecting strings that are not %d bytes long.\n", typ.size)
	fmt.Fprintf(&b, "func (%s *%s) DecodeRLP(stream *rlp.Stream) error {\n", r, name)
	fmt.Fprintf(&b, "return decodeFixedRLP(stream, %s)\n}\n", r)

	return b.Bytes()
}

func generateSSZ(ctx *genContext, typ fixedType) []byte {
	var b bytes.Buffer

	ctx.addImport(sszPkgPath, "")

	r, name := typ.recv(), typ.name
	fmt.Fprintf(&b, "// SizeSSZ returns the size of the %s in SSZ encoding.\n", name)
	fmt.Fprintf(&b, "func (%s *%s) SizeSSZ(siz *ssz.Sizer) uint32 {\n", r, name)
	fmt.Fprintf(&b, "return %d\n}\n\n", typ.size)

	fmt.Fprintf(&b, "// DefineSSZ defines the %s as an SSZ static byte vector.\n", name)
	fmt.Fprintf(&b, "func (%s *%s) DefineSSZ(codec *ssz.Codec) {\n", r, name)
	fmt.Fprintf(&b, "ssz.DefineStaticBytes(codec, %s)\n}\n", r)

	return b.Bytes()
}

// genFile is a single formatted output file.
type genFile struct {
	name string
	code []byte
}

// generate produces the text codec file and its RLP and SSZ siblings, which
// are named after out with _rlp and _ssz suffixes.
func generate(pkg *packages.Package, types []fixedType, out string) ([]genFile, error) {
	base := strings.TrimSuffix(out, ".go")

	var files []genFile
	for _, kind := range []struct {
		name     string
		buildTag string
		gen      func(ctx *genContext, typ fixedType) []byte
	}{
		{out, "", generateText},
		{base + "_rlp.go", "!norlp", generateRLP},
		{base + "_ssz.go", "!nossz", generateSSZ},
	} {
		ctx := newGenContext(pkg, kind.buildTag)

		var codes [][]byte
		for _, typ := range types {
			codes = append(codes, kind.gen(ctx, typ))
		}
		code := append(ctx.header(), '\n')
		code = append(code, bytes.Join(codes, []byte("\n"))...)

		formatted, err := format.Source(code)
		if err != nil {
			return nil, fmt.Errorf("failed to format %s: %v", kind.name, err)
		}
		files = append(files, genFile{name: kind.name, code: formatted})
	}
	return files, nil
}
