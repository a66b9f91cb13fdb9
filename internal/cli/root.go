// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

// Package cli wires the sgf command line tool. All process concerns
// (flags, logging, exit codes) live here, outside the parser core.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/umutseven92/sgf-parser/internal/bootstrap"
	"github.com/umutseven92/sgf-parser/parser"
)

type rootOptions struct {
	configPath  string
	lenient     bool
	maxDepth    int
	catalogPath string
}

// Execute runs the sgf command line tool.
func Execute() error {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "sgf",
		Short:         "Parse and validate Smart Game Format files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", ".env", "path to the env config file")
	rootCmd.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "close unterminated game trees at end of input")
	rootCmd.PersistentFlags().IntVar(&opts.maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum variation nesting depth")
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML file with extra property definitions")

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))

	return rootCmd.Execute()
}

// setup resolves config file, environment and flags into parser options
// and loads any catalog extensions. Flags win over the config file.
func (o *rootOptions) setup(cmd *cobra.Command) ([]parser.Option, error) {
	cfg, err := bootstrap.Setup(o.configPath)
	if err != nil {
		return nil, err
	}

	if !cmd.Flags().Changed("lenient") {
		o.lenient = cfg.Lenient
	}

	if !cmd.Flags().Changed("max-depth") {
		o.maxDepth = cfg.MaxDepth
	}

	if !cmd.Flags().Changed("catalog") {
		o.catalogPath = cfg.CatalogPath
	}

	if o.catalogPath != "" {
		if err := loadCatalogFile(o.catalogPath); err != nil {
			return nil, err
		}
	}

	parserOpts := []parser.Option{parser.WithMaxDepth(o.maxDepth)}
	if o.lenient {
		parserOpts = append(parserOpts, parser.WithImplicitClose())
	}

	return parserOpts, nil
}

// NewLogger builds the tool logger.
func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
