// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command fixedgen generates the boilerplate methods of the fixed size byte
// array types: text and JSON codecs, plus the RLP and SSZ ones behind their
// build tags.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karalabe/rpcwire/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

var (
	flagTypes   []string
	flagOut     string
	flagDir     string
	flagVerbose bool
)

// RootCmd is the fixedgen command, run once from main.
var RootCmd = &cobra.Command{
	Use:   "fixedgen",
	Short: "Generate the codecs of fixed size byte array types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.NewSugaredLogger(flagVerbose)
		if err != nil {
			return err
		}
		defer log.Sync()

		if len(flagTypes) == 0 {
			return fmt.Errorf("no types given, use --type")
		}
		pkg, err := loadPackage(flagDir)
		if err != nil {
			return err
		}
		types, err := parsePackage(pkg, flagTypes)
		if err != nil {
			return err
		}
		files, err := generate(pkg, types, flagOut)
		if err != nil {
			return err
		}
		for _, file := range files {
			path := filepath.Join(flagDir, file.name)
			if err := os.WriteFile(path, file.code, 0644); err != nil {
				return err
			}
			log.Infow("Generated fixed type codecs", "file", path, "types", strings.Join(flagTypes, ","))
		}
		return nil
	},
}

func init() {
	RootCmd.Flags().StringSliceVar(&flagTypes, "type", nil, "comma separated list of the types to generate codecs for")
	RootCmd.Flags().StringVar(&flagOut, "out", "gen_fixed.go", "output file of the text codecs (RLP and SSZ ones are suffixed)")
	RootCmd.Flags().StringVar(&flagDir, "dir", ".", "directory of the package containing the types")
	RootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable development logging")
}

// loadPackage type checks the package in the given directory.
func loadPackage(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected 1 package in %s, found %d", dir, len(pkgs))
	}
	// Type errors are tolerated, the generated files might be missing or stale
	if pkgs[0].Types == nil || pkgs[0].Types.Scope() == nil {
		if len(pkgs[0].Errors) > 0 {
			return nil, pkgs[0].Errors[0]
		}
		return nil, fmt.Errorf("no type information for %s", dir)
	}
	return pkgs[0], nil
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
