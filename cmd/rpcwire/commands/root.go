// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package commands implements the subcommands of the rpcwire tool.
package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/karalabe/rpcwire"
	"github.com/karalabe/rpcwire/internal/logging"
	"github.com/karalabe/rpcwire/policy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix is the prefix of the environment variables overriding flags, e.g.
// RPCWIRE_LENIENT=true or RPCWIRE_POLICY=policy.yaml.
const envPrefix = "RPCWIRE"

const (
	flagVerbose = "verbose"
	flagPolicy  = "policy"
	flagField   = "field"
	flagFrom    = "from"
	flagTo      = "to"
	flagWidth   = "width"
	flagLenient = "lenient"
	flagSize    = "size"
	flagSnappy  = "snappy"
)

// Value forms accepted by --from and --to.
const (
	formText = "text"
	formDec  = "dec"
	formRLP  = "rlp"
	formSSZ  = "ssz"
)

// errUnsupported is returned if a binary form was not compiled into the binary.
var errUnsupported = errors.New("format not compiled in")

// app is the state shared by the commands of one command tree.
type app struct {
	cfg    *viper.Viper
	log    *zap.SugaredLogger
	policy *policy.Policy
}

// NewRootCmd assembles the rpcwire command tree. Every tree has its own flag
// and configuration state.
func NewRootCmd() *cobra.Command {
	app := &app{cfg: viper.New()}

	root := &cobra.Command{
		Use:          "rpcwire",
		Short:        "Ethereum JSON-RPC wire value converter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.log != nil {
				app.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolP(flagVerbose, "v", false, "enable development logging")
	root.PersistentFlags().String(flagPolicy, "", "YAML decode policy file picking the text decoding mode per field")
	root.PersistentFlags().String(flagField, "", "RPC field the value belongs to, looked up in the decode policy")

	root.AddCommand(
		newQuantityCmd(app),
		newBytesCmd(app),
		newVectorsCmd(app),
		newCapabilitiesCmd(app),
	)
	return root
}

// setup binds the flags of the running command into the configuration, then
// creates the logger and loads the decode policy.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()
	if err := a.cfg.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	log, err := logging.NewSugaredLogger(a.cfg.GetBool(flagVerbose))
	if err != nil {
		return err
	}
	a.log = logging.Command(log, cmd.Name())

	a.policy = policy.New()
	if path := a.cfg.GetString(flagPolicy); path != "" {
		if a.policy, err = policy.LoadFile(path); err != nil {
			return err
		}
		a.log.Debugw("Loaded decode policy", "path", path, "default", a.policy.Default, "fields", len(a.policy.Fields))
	}
	return nil
}

// mode returns the text decoding mode: lenient if explicitly requested,
// otherwise whatever the policy says for the field.
func (a *app) mode() rpcwire.DecodeMode {
	if a.cfg.GetBool(flagLenient) {
		return rpcwire.Lenient
	}
	return a.policy.Mode(a.cfg.GetString(flagField))
}

// checkForm validates a --from or --to flag against the forms a command knows.
func checkForm(flag string, form string, forms ...string) error {
	if slices.Contains(forms, form) {
		return nil
	}
	return fmt.Errorf("invalid --%s %q, want one of %s", flag, form, strings.Join(forms, ", "))
}
