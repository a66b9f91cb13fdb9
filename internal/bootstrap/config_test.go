// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umutseven92/sgf-parser/parser"
)

func TestSetupDefaults(t *testing.T) {
	cfg, err := Setup(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.Lenient)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	assert.Empty(t, cfg.CatalogPath)
}

func TestSetupFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SGF_LENIENT=true\nSGF_MAX_DEPTH=16\nSGF_CATALOG=extra.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Setup(path)
	require.NoError(t, err)

	assert.True(t, cfg.Lenient)
	assert.Equal(t, 16, cfg.MaxDepth)
	assert.Equal(t, "extra.yaml", cfg.CatalogPath)
}
