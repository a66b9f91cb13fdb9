// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	sgf "github.com/umutseven92/sgf-parser"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Parse one SGF file and print the tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parserOpts, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			collection, warnings, err := sgf.ParseFile(args[0], parserOpts...)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(struct {
				Collection any `json:"collection"`
				Warnings   any `json:"warnings,omitempty"`
			}{collection, warnings}, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}
