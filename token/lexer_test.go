// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wantToken describes one expected token: its type and, for PropIdent and
// CharData, its text.
type wantToken struct {
	typ  TokenType
	text string
}

func lexAll(src string) ([]Token, error) {
	l := NewLexer("test.sgf", strings.NewReader(src))

	var tokens []Token

	for {
		tok, err := l.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}

			return tokens, err
		}

		tokens = append(tokens, tok)
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []wantToken
		wantErr bool
	}{
		{
			name: "empty",
			text: "",
		},
		{
			name: "minimal document",
			text: "(;)",
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name: "single property",
			text: "(;FF[4])",
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenPropIdent, "FF"},
				{TokenValueStart, ""},
				{TokenCharData, "4"},
				{TokenValueEnd, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name: "whitespace between tokens",
			text: "( ;\n\tFF [4] )",
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenPropIdent, "FF"},
				{TokenValueStart, ""},
				{TokenCharData, "4"},
				{TokenValueEnd, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name: "escaped bracket stays raw",
			text: `(;C[a\]b])`,
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenPropIdent, "C"},
				{TokenValueStart, ""},
				{TokenCharData, `a\]b`},
				{TokenValueEnd, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name: "whitespace inside value is preserved",
			text: "(;C[a  b])",
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenPropIdent, "C"},
				{TokenValueStart, ""},
				{TokenCharData, "a  b"},
				{TokenValueEnd, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name: "multiple values",
			text: "(;AB[aa][bb])",
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenPropIdent, "AB"},
				{TokenValueStart, ""},
				{TokenCharData, "aa"},
				{TokenValueEnd, ""},
				{TokenValueStart, ""},
				{TokenCharData, "bb"},
				{TokenValueEnd, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name: "empty value",
			text: "(;KO[])",
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenPropIdent, "KO"},
				{TokenValueStart, ""},
				{TokenCharData, ""},
				{TokenValueEnd, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name: "colon stays raw",
			text: "(;LB[aa:label])",
			want: []wantToken{
				{TokenTreeStart, ""},
				{TokenNodeStart, ""},
				{TokenPropIdent, "LB"},
				{TokenValueStart, ""},
				{TokenCharData, "aa:label"},
				{TokenValueEnd, ""},
				{TokenTreeEnd, ""},
			},
		},
		{
			name:    "unexpected char",
			text:    "x",
			wantErr: true,
		},
		{
			name:    "lowercase letter outside value",
			text:    "(;fF[4])",
			wantErr: true,
		},
		{
			name:    "unterminated value",
			text:    "(;C[abc",
			wantErr: true,
		},
		{
			name:    "unterminated value ending in backslash",
			text:    `(;C[abc\`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexAll(tt.text)
			if tt.wantErr {
				require.Error(t, err)

				var perr *PosError
				assert.ErrorAs(t, err, &perr)

				return
			}

			require.NoError(t, err)
			require.Len(t, tokens, len(tt.want))

			for i, want := range tt.want {
				got := tokens[i]
				assert.Equal(t, want.typ, got.TokenType(), "token %d", i)

				switch tok := got.(type) {
				case *PropIdent:
					assert.Equal(t, want.text, tok.Value, "token %d", i)
				case *CharData:
					assert.Equal(t, want.text, tok.Value, "token %d", i)
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, err := lexAll("(;FF[4])")
	require.NoError(t, err)
	require.Len(t, tokens, 7)

	pos := func(offset, col int) Pos {
		return Pos{File: "test.sgf", Offset: offset, Line: 1, Col: col}
	}

	// Each token begins at its first rune and ends at the rune behind it.
	assert.Equal(t, pos(1, 1), tokens[0].Pos().Begin(), "TreeStart begin")
	assert.Equal(t, pos(2, 2), tokens[0].Pos().End(), "TreeStart end")
	assert.Equal(t, pos(3, 3), tokens[2].Pos().Begin(), "PropIdent begin")
	assert.Equal(t, pos(5, 5), tokens[2].Pos().End(), "PropIdent end")
	assert.Equal(t, pos(6, 6), tokens[4].Pos().Begin(), "CharData begin")
	assert.Equal(t, pos(7, 7), tokens[4].Pos().End(), "CharData end")
	assert.Equal(t, pos(8, 8), tokens[6].Pos().Begin(), "TreeEnd begin")
}

func TestLexerPositionsAcrossLines(t *testing.T) {
	tokens, err := lexAll("(\n;)")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, Pos{File: "test.sgf", Offset: 3, Line: 2, Col: 1}, tokens[1].Pos().Begin())
}

func TestLexerErrorCarriesPosition(t *testing.T) {
	_, err := lexAll("(;C[abc")

	var perr *PosError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "unterminated property value")
	assert.Contains(t, perr.Error(), "test.sgf:1:8")
}
