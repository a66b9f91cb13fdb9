// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sgf "github.com/umutseven92/sgf-parser"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse SGF files and report warnings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parserOpts, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			logger, err := NewLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			failed := 0

			for _, path := range args {
				collection, warnings, err := sgf.ParseFile(path, parserOpts...)
				if err != nil {
					logger.Errorw("parse failed",
						"file", path,
						zap.Error(err),
					)

					failed++

					continue
				}

				for _, w := range warnings {
					logger.Warnw("recoverable problem",
						"file", path,
						"property", w.Ident,
						"message", w.Message,
						"position", w.Pos.String(),
					)
				}

				logger.Infow("parsed",
					"file", path,
					"gameTrees", len(collection.GameTrees),
					"warnings", len(warnings),
				)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(args))
			}

			return nil
		},
	}
}
