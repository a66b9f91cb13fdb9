// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package sgf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r3labs/diff/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umutseven92/sgf-parser/parser"
)

func TestParseString(t *testing.T) {
	collection, warnings, err := ParseString("(;FF[4]C[hello])")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, collection.GameTrees, 1)

	node := collection.GameTrees[0].Sequence[0]
	assert.Equal(t, 4, node.Property("FF").Values[0].Number)
	assert.Equal(t, "hello", node.Property("C").Values[0].Text)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.sgf")
	src := "(;FF[4]GM[1]SZ[19];B[pd];W[dd])"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	collection, warnings, err := ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Len(t, collection.GameTrees[0].Sequence, 3)
}

func TestParseFileMissing(t *testing.T) {
	_, _, err := ParseFile(filepath.Join(t.TempDir(), "nope.sgf"))
	require.Error(t, err)
}

func TestParseEscaping(t *testing.T) {
	// Escaped ']' survives, a soft break vanishes and a hard break turns
	// into a space in a whitespace-collapsing value.
	collection, _, err := ParseString("(;N[a\\]b]C[a\\\nb]RE[a\nb])")
	require.NoError(t, err)

	node := collection.GameTrees[0].Sequence[0]
	assert.Equal(t, "a]b", node.Property("N").Values[0].Text)
	assert.Equal(t, "ab", node.Property("C").Values[0].Text)
	assert.Equal(t, "a b", node.Property("RE").Values[0].Text)
}

func TestParseOptionsArePassedThrough(t *testing.T) {
	_, _, err := ParseString("(;FF[4]")
	require.Error(t, err)

	_, _, err = ParseString("(;FF[4]", parser.WithImplicitClose())
	require.NoError(t, err)
}

func TestParseIsDeterministic(t *testing.T) {
	src := "(;FF[4]GM[1]YY[opaque](;B[aa])(;B[bb]))"

	first, firstWarnings, err := ParseString(src)
	require.NoError(t, err)

	second, secondWarnings, err := ParseString(src)
	require.NoError(t, err)

	changes, err := diff.Diff(first, second)
	require.NoError(t, err)
	assert.Empty(t, changes, "repeated parses must yield identical trees")

	assert.Equal(t, firstWarnings, secondWarnings)
	require.Len(t, firstWarnings, 1)
	assert.Equal(t, "YY", firstWarnings[0].Ident)
}
