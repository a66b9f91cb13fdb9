// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package token

// A Token is an interface for all possible token types.
type Token interface {
	TokenType() TokenType
	Pos() *Position
}

type TokenType string

const (
	TokenTreeStart  TokenType = "TreeStart"
	TokenTreeEnd    TokenType = "TreeEnd"
	TokenNodeStart  TokenType = "NodeStart"
	TokenPropIdent  TokenType = "PropIdent"
	TokenValueStart TokenType = "ValueStart"
	TokenCharData   TokenType = "CharData"
	TokenValueEnd   TokenType = "ValueEnd"
)

// TreeStart is a '(' that opens a game tree.
type TreeStart struct {
	Position
}

func (t *TreeStart) TokenType() TokenType { return TokenTreeStart }

// TreeEnd is a ')' that closes a game tree.
type TreeEnd struct {
	Position
}

func (t *TreeEnd) TokenType() TokenType { return TokenTreeEnd }

// NodeStart is a ';' that starts a node.
type NodeStart struct {
	Position
}

func (t *NodeStart) TokenType() TokenType { return TokenNodeStart }

// PropIdent is a run of uppercase letters naming a property.
type PropIdent struct {
	Position
	Value string
}

func (t *PropIdent) TokenType() TokenType { return TokenPropIdent }

// ValueStart is a '[' that opens a property value.
type ValueStart struct {
	Position
}

func (t *ValueStart) TokenType() TokenType { return TokenValueStart }

// CharData is the raw body of a bracketed property value.
// Backslash escapes are kept intact, because decoding depends on the
// value kind of the owning property and happens in the parser.
type CharData struct {
	Position
	Value string
}

func (t *CharData) TokenType() TokenType { return TokenCharData }

func (t *CharData) String() string {
	return t.Value
}

// ValueEnd is a ']' that closes a property value.
type ValueEnd struct {
	Position
}

func (t *ValueEnd) TokenType() TokenType { return TokenValueEnd }
