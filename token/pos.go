// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package token

import "strconv"

// Node contains access to the start and end positions of a token.
type Node interface {
	Begin() Pos
	End() Pos
}

// A Pos describes a resolved position within the input.
type Pos struct {
	// File contains the file path, or a caller-chosen label for
	// non-file input. May be empty.
	File string
	// Offset denotes the one-based rune offset in the input.
	Offset int
	// Line denotes the one-based line number in the denoted File.
	Line int
	// Col denotes the one-based column number in the denoted Line.
	Col int
}

// String returns the content in the "file:line:col" format.
func (p Pos) String() string {
	return p.File + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Position is a Node implementation that tokens embed.
type Position struct {
	BeginPos, EndPos Pos
}

func (p Position) Begin() Pos {
	return p.BeginPos
}

func (p Position) End() Pos {
	return p.EndPos
}

// Pos returns a pointer to this Position, which is handy to access
// the position of a token hidden behind the Token interface.
func (p *Position) Pos() *Position {
	return p
}

type defaultNode struct {
	begin, end Pos
}

func (d defaultNode) Begin() Pos {
	return d.begin
}

func (d defaultNode) End() Pos {
	return d.end
}

func NewNode(begin, end Pos) Node {
	return defaultNode{begin, end}
}
