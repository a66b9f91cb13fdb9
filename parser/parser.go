// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

// Package parser turns SGF text into a validated collection of game
// trees. Parsing is single-threaded and whole-document: it produces one
// collection together with accumulated warnings, or stops at the first
// fatal error. Independent documents may be parsed concurrently as long
// as the catalog is not mutated anymore, see Register.
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/umutseven92/sgf-parser/token"
)

// DefaultMaxDepth bounds the variation nesting, which in turn bounds the
// recursion of the tree parser.
const DefaultMaxDepth = 512

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth overrides the nesting bound for game trees.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithImplicitClose is the lenient mode: reaching the end of the input
// closes all open game trees instead of failing. By default an
// unterminated tree is a fatal structural error.
func WithImplicitClose() Option {
	return func(p *Parser) {
		p.implicitClose = true
	}
}

// tokenWithError is a struct that wraps a Token and an error that may
// have occurred while reading that Token.
// This type simplifies buffering tokens in the parser.
type tokenWithError struct {
	tok token.Token
	err error
}

// Parser is used to get a Collection from SGF input.
type Parser struct {
	lexer *token.Lexer
	// tokenBuffer contains peeked tokens that need to be processed next.
	// When it is empty, we can call lexer.Token() to get the next token.
	tokenBuffer []tokenWithError

	warnings []Warning

	maxDepth      int
	implicitClose bool

	// gameType selects the coordinate validator. It starts as Go and
	// follows a successfully parsed GM property.
	gameType int
}

// NewParser creates a parser for one SGF document. The filename is only
// used to label positions in diagnostics.
func NewParser(filename string, r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		lexer:    token.NewLexer(filename, r),
		maxDepth: DefaultMaxDepth,
		gameType: GameGo,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Warnings returns the recoverable diagnostics accumulated so far, in
// input order.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// Parse reads the whole document and returns the collection of game
// trees. The first fatal problem aborts the parse; warnings do not.
func (p *Parser) Parse() (*Collection, error) {
	collection := &Collection{}

	for {
		tok, err := p.peek()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		if tok.TokenType() != token.TokenTreeStart {
			return nil, newUnexpectedTokenError(tok, token.TokenTreeStart)
		}

		tree, err := p.parseGameTree(1)
		if err != nil {
			return nil, err
		}

		collection.GameTrees = append(collection.GameTrees, tree)
	}

	if len(collection.GameTrees) == 0 {
		return nil, token.NewPosError(p.node(), "document contains no game tree").
			SetCause(ErrStructural)
	}

	return collection, nil
}

// parseGameTree parses one '('...')' tree including all nested
// variations. The opening TreeStart is still in the token stream.
func (p *Parser) parseGameTree(depth int) (*GameTree, error) {
	if depth > p.maxDepth {
		return nil, token.NewPosError(p.node(),
			fmt.Sprintf("game trees nested deeper than %d levels", p.maxDepth)).
			SetCause(ErrStructural)
	}

	open, err := p.next()
	if err != nil {
		return nil, err
	}

	tree := &GameTree{}
	tree.Range.BeginPos = open.Pos().Begin()

	for {
		tok, err := p.peek()
		if errors.Is(err, io.EOF) {
			if p.implicitClose {
				tree.Range.EndPos = p.lexer.Pos()

				return tree, nil
			}

			return nil, token.NewPosError(
				token.NewNode(open.Pos().Begin(), p.lexer.Pos()),
				"unterminated game tree, missing ')'").
				SetCause(ErrStructural)
		}

		if err != nil {
			return nil, err
		}

		switch tok.TokenType() {
		case token.TokenNodeStart:
			node, err := p.parseNode()
			if err != nil {
				return nil, err
			}

			tree.Sequence = append(tree.Sequence, node)
		case token.TokenTreeStart:
			child, err := p.parseGameTree(depth + 1)
			if err != nil {
				return nil, err
			}

			tree.Children = append(tree.Children, child)
		case token.TokenTreeEnd:
			end, err := p.next()
			if err != nil {
				return nil, err
			}

			tree.Range.EndPos = end.Pos().End()

			return tree, nil
		default:
			return nil, newUnexpectedTokenError(tok,
				token.TokenNodeStart, token.TokenTreeStart, token.TokenTreeEnd)
		}
	}
}

// parseNode parses one ';' node and its properties. A node without
// properties is valid.
func (p *Parser) parseNode() (*Node, error) {
	start, err := p.next()
	if err != nil {
		return nil, err
	}

	node := &Node{}
	node.Range.BeginPos = start.Pos().Begin()
	node.Range.EndPos = start.Pos().End()

	for {
		tok, err := p.peek()
		if errors.Is(err, io.EOF) {
			// The enclosing tree decides whether this is an error.
			return node, nil
		}

		if err != nil {
			return nil, err
		}

		switch tok.TokenType() {
		case token.TokenPropIdent:
			prop, err := p.parseProperty()
			if err != nil {
				return nil, err
			}

			if node.Property(prop.Ident) != nil {
				return nil, token.NewPosError(&prop.Range,
					fmt.Sprintf("duplicate property %s in node", prop.Ident)).
					SetCause(ErrDuplicateProperty)
			}

			node.Properties = append(node.Properties, prop)
			node.Range.EndPos = prop.Range.EndPos
		case token.TokenNodeStart, token.TokenTreeStart, token.TokenTreeEnd:
			return node, nil
		default:
			return nil, newUnexpectedTokenError(tok, token.TokenPropIdent,
				token.TokenNodeStart, token.TokenTreeStart, token.TokenTreeEnd)
		}
	}
}

// parseProperty parses an identifier and its bracketed values. The first
// token that is not a '[' ends the property and stays in the stream for
// the caller.
func (p *Parser) parseProperty() (*Property, error) {
	identTok, err := p.next()
	if err != nil {
		return nil, err
	}

	ident, ok := identTok.(*token.PropIdent)
	if !ok {
		return nil, newUnexpectedTokenError(identTok, token.TokenPropIdent)
	}

	prop := &Property{Ident: ident.Value}
	prop.Range.BeginPos = ident.Pos().Begin()
	prop.Range.EndPos = ident.Pos().End()

	spec := LookupProperty(prop.Ident)
	if spec == nil {
		p.warn(prop.Ident, "unknown property, values kept as opaque text", ident.Pos().Begin())
	}

	for {
		tok, err := p.peek()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		if tok.TokenType() != token.TokenValueStart {
			break
		}

		if _, err := p.next(); err != nil {
			return nil, err
		}

		body, err := p.next()
		if err != nil {
			return nil, err
		}

		raw, ok := body.(*token.CharData)
		if !ok {
			return nil, newUnexpectedTokenError(body, token.TokenCharData)
		}

		end, err := p.next()
		if err != nil {
			return nil, err
		}

		if end.TokenType() != token.TokenValueEnd {
			return nil, newUnexpectedTokenError(end, token.TokenValueEnd)
		}

		value, err := decodeValue(spec, raw.Value)
		if err == nil {
			err = value.Validate(p.gameType)
		}

		if err == nil && spec != nil && spec.DisallowEmpty && value.Text == "" &&
			(value.Kind == KindSimpleText || value.Kind == KindText) {
			err = fmt.Errorf("empty value is not allowed")
		}

		if err != nil {
			return nil, token.NewPosError(raw.Pos(),
				fmt.Sprintf("property %s: %v", prop.Ident, err)).
				SetCause(ErrValueValidation)
		}

		prop.Values = append(prop.Values, value)
		prop.Range.EndPos = end.Pos().End()
	}

	if len(prop.Values) == 0 {
		return nil, token.NewPosError(ident.Pos(),
			fmt.Sprintf("property %s has no values, expected at least one '[...]'", prop.Ident)).
			SetCause(ErrStructural)
	}

	// GM declares the game type and with it the coordinate validator for
	// the rest of the document.
	if prop.Ident == "GM" && prop.Values[0].Kind == KindNumber {
		p.gameType = prop.Values[0].Number
	}

	return prop, nil
}

// next returns the next token or (nil, io.EOF) if there are no more tokens.
func (p *Parser) next() (token.Token, error) {
	if len(p.tokenBuffer) > 0 {
		twe := p.tokenBuffer[0]
		p.tokenBuffer = p.tokenBuffer[1:] // pop token

		return twe.tok, twe.err
	}

	tok, err := p.lexer.Token()
	if err != nil && !errors.Is(err, io.EOF) {
		err = asStructural(err)
	}

	return tok, err
}

// peek lets you look at the next token without advancing the parser.
// Under the hood it does advance the lexer, but by using only next() and
// peek() you will get expected behaviour.
func (p *Parser) peek() (token.Token, error) {
	if len(p.tokenBuffer) > 0 {
		twe := p.tokenBuffer[0]

		return twe.tok, twe.err
	}

	tok, err := p.next()

	// Store token+error for use in next()
	p.tokenBuffer = append(p.tokenBuffer, tokenWithError{
		tok: tok,
		err: err,
	})

	return tok, err
}

func (p *Parser) warn(ident, msg string, pos token.Pos) {
	p.warnings = append(p.warnings, Warning{
		Ident:   ident,
		Message: msg,
		Pos:     pos,
	})
}

// node returns a fake node at the current lexer position for errors.
func (p *Parser) node() token.Node {
	return token.NewNode(p.lexer.Pos(), p.lexer.Pos())
}

// asStructural attaches the structural category to uncategorized
// positional errors coming from the lexer.
func asStructural(err error) error {
	var perr *token.PosError
	if errors.As(err, &perr) && perr.Cause == nil {
		return perr.SetCause(ErrStructural)
	}

	return err
}
