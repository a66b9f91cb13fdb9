// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// WantMode is used to make sure the next token is lexed as a specific thing.
// Bracket bodies are special, as the whole text inside '[' and ']' has to
// be lexed as one CharData token regardless of its content.
type WantMode string

const (
	// WantNothing indicates that the lexer should operate as usual.
	WantNothing       WantMode = "Nothing"
	WantValueCharData WantMode = "ValueCharData"
	WantValueEnd      WantMode = "ValueEnd"
)

type runeWithPos struct {
	r    rune
	off  int32
	line int32
	col  int32
}

// Lexer can be used to get individual SGF tokens.
type Lexer struct {
	r      *bufio.Reader
	buf    []runeWithPos
	bufPos int
	// pos is the current lexer position.
	// It is the position of the rune that would be read next by nextR.
	pos  Pos
	want WantMode
}

// NewLexer creates a new instance, ready to start lexing.
// The filename is only used to label positions in diagnostics.
func NewLexer(filename string, r io.Reader) *Lexer {
	l := &Lexer{}
	l.r = bufio.NewReader(r)
	l.pos.File = filename
	l.pos.Offset = 1
	l.pos.Line = 1
	l.pos.Col = 1
	l.want = WantNothing

	return l
}

// Token returns the next SGF token in the input stream.
// At the end of the input stream, Token returns nil, io.EOF.
func (l *Lexer) Token() (Token, error) {
	var tok Token
	var err error

	// Bracket bodies must not be skipped or interpreted, handle them first.
	switch l.want {
	case WantValueCharData:
		tok, err = l.valueCharData()
		if err != nil {
			return nil, err
		}

		l.want = WantValueEnd

		return tok, nil
	case WantValueEnd:
		tok, err = l.valueEnd()
		if err != nil {
			return nil, err
		}

		l.want = WantNothing

		return tok, nil
	}

	// Whitespace may appear anywhere between values, properties, nodes,
	// sequences and trees.
	if err := l.skipWhitespace(); err != nil {
		return nil, err
	}

	r1, err := l.nextR()
	if err != nil {
		return nil, err
	}

	l.prevR()

	switch {
	case r1 == '(':
		tok, err = l.treeStart()
	case r1 == ')':
		tok, err = l.treeEnd()
	case r1 == ';':
		tok, err = l.nodeStart()
	case r1 == '[':
		tok, err = l.valueStart()
		if err == nil {
			l.want = WantValueCharData
		}
	case r1 >= 'A' && r1 <= 'Z':
		tok, err = l.propIdent()
	default:
		return nil, NewPosError(l.node(), fmt.Sprintf("unexpected char '%c'", r1))
	}

	if err != nil {
		return nil, err
	}

	return tok, nil
}

// Pos returns the current position of the lexer.
func (l *Lexer) Pos() Pos {
	return l.pos
}

// treeStart reads the '(' that opens a game tree.
func (l *Lexer) treeStart() (*TreeStart, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if r != '(' {
		return nil, NewPosError(l.node(), "expected '('")
	}

	treeStart := &TreeStart{}
	treeStart.Position.BeginPos = startPos
	treeStart.Position.EndPos = l.pos

	return treeStart, nil
}

// treeEnd reads the ')' that closes a game tree.
func (l *Lexer) treeEnd() (*TreeEnd, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if r != ')' {
		return nil, NewPosError(l.node(), "expected ')'")
	}

	treeEnd := &TreeEnd{}
	treeEnd.Position.BeginPos = startPos
	treeEnd.Position.EndPos = l.pos

	return treeEnd, nil
}

// nodeStart reads the ';' that starts a node.
func (l *Lexer) nodeStart() (*NodeStart, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if r != ';' {
		return nil, NewPosError(l.node(), "expected ';'")
	}

	nodeStart := &NodeStart{}
	nodeStart.Position.BeginPos = startPos
	nodeStart.Position.EndPos = l.pos

	return nodeStart, nil
}

// valueStart reads the '[' that opens a property value.
func (l *Lexer) valueStart() (*ValueStart, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if r != '[' {
		return nil, NewPosError(l.node(), "expected '['")
	}

	valueStart := &ValueStart{}
	valueStart.Position.BeginPos = startPos
	valueStart.Position.EndPos = l.pos

	return valueStart, nil
}

// valueEnd reads the ']' that closes a property value.
func (l *Lexer) valueEnd() (*ValueEnd, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if r != ']' {
		return nil, NewPosError(l.node(), "expected ']'")
	}

	valueEnd := &ValueEnd{}
	valueEnd.Position.BeginPos = startPos
	valueEnd.Position.EndPos = l.pos

	return valueEnd, nil
}

// propIdent reads a run of uppercase letters naming a property.
func (l *Lexer) propIdent() (*PropIdent, error) {
	startPos := l.Pos()

	var tmp bytes.Buffer

	for {
		r, err := l.nextR()
		if errors.Is(err, io.EOF) {
			if tmp.Len() == 0 {
				return nil, io.EOF
			}

			break
		}

		if err != nil {
			return nil, err
		}

		if r < 'A' || r > 'Z' {
			// We reached the end of this identifier, reset the rune and stop.
			l.prevR()

			break
		}

		tmp.WriteRune(r)
	}

	ident := &PropIdent{}
	ident.Value = tmp.String()
	ident.Position.BeginPos = startPos
	ident.Position.EndPos = l.pos

	return ident, nil
}

// valueCharData reads the raw body of a bracketed value until the closing
// unescaped ']'. A backslash keeps the following rune in the body, which
// is how an escaped ']' survives until the parser decodes the text.
func (l *Lexer) valueCharData() (*CharData, error) {
	startPos := l.Pos()

	var tmp bytes.Buffer

	for {
		r, err := l.nextR()
		if errors.Is(err, io.EOF) {
			return nil, NewPosError(l.node(), "unterminated property value, missing ']'")
		}

		if err != nil {
			return nil, err
		}

		if r == ']' {
			// That rune belongs to the ValueEnd token, revert the read and stop.
			l.prevR()

			break
		}

		if r == '\\' {
			next, err := l.nextR()
			if errors.Is(err, io.EOF) {
				return nil, NewPosError(l.node(), "unterminated property value, missing ']'")
			}

			if err != nil {
				return nil, err
			}

			tmp.WriteRune(r)
			tmp.WriteRune(next)

			continue
		}

		tmp.WriteRune(r)
	}

	text := &CharData{}
	text.Value = tmp.String()
	text.Position.BeginPos = startPos
	text.Position.EndPos = l.pos

	return text, nil
}

// skipWhitespace skips whitespace characters.
func (l *Lexer) skipWhitespace() error {
	const whitespaces = " \t\n\r\v\f"

	for {
		r, err := l.nextR()
		if err != nil {
			return err
		}

		if strings.ContainsRune(whitespaces, r) {
			continue
		}

		// We got a non-whitespace, rewind and return.
		l.prevR()

		return nil
	}
}

// nextR reads the next rune and updates the position.
func (l *Lexer) nextR() (rune, error) {
	if l.bufPos < len(l.buf) {
		r := l.buf[l.bufPos]
		l.bufPos++
		// The position needs to point behind the replayed rune, so that
		// the lexer points to the rune that would be read next.
		l.pos.Offset = int(r.off) + 1
		l.pos.Line = int(r.line)
		l.pos.Col = int(r.col) + 1

		if r.r == '\n' {
			l.pos.Line++
			l.pos.Col = 1
		}

		return r.r, nil
	}

	r, _, err := l.r.ReadRune()
	if r == unicode.ReplacementChar {
		return r, NewPosError(l.node(), "invalid unicode sequence")
	}

	if err != nil {
		return r, err
	}

	l.buf = append(l.buf, runeWithPos{
		r:    r,
		off:  int32(l.pos.Offset),
		line: int32(l.pos.Line),
		col:  int32(l.pos.Col),
	})
	l.bufPos++

	l.pos.Offset++
	l.pos.Col++

	if r == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	}

	return r, nil
}

// prevR unreads the current rune. panics if out of balance with nextR.
func (l *Lexer) prevR() rune {
	l.bufPos--
	r := l.buf[l.bufPos]
	l.pos.Offset = int(r.off)
	l.pos.Line = int(r.line)
	l.pos.Col = int(r.col)

	return r.r
}

// node returns a fake node for positional errors.
func (l *Lexer) node() Node {
	return NewNode(l.Pos(), l.Pos())
}
