// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package logging builds the loggers used by the rpcwire commands. Library
// packages never log, they return errors.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewSugaredLogger creates a sugared logger based on the verbose flag. If
// verbose is true, it creates a development logger, otherwise a production one.
func NewSugaredLogger(verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create development logger: %w", err)
		}
		return l.Sugar(), nil
	}
	l, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create production logger: %w", err)
	}
	return l.Sugar(), nil
}

// Command returns a logger tagged with the name of the command using it.
func Command(log *zap.SugaredLogger, name string) *zap.SugaredLogger {
	return log.With("cmd", name)
}
