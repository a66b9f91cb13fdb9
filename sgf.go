// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

// Package sgf parses Smart Game Format (SGF) documents into a validated
// in-memory tree. This package is the convenience boundary; the parsing
// itself lives in the parser and token packages.
package sgf

import (
	"io"
	"os"
	"strings"

	"github.com/umutseven92/sgf-parser/parser"
)

// Parse reads one SGF document from r and returns the collection of game
// trees together with the recoverable warnings that were collected, or
// the first fatal error. The filename is only used to label diagnostics.
func Parse(filename string, r io.Reader, opts ...parser.Option) (*parser.Collection, []parser.Warning, error) {
	p := parser.NewParser(filename, r, opts...)

	collection, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}

	return collection, p.Warnings(), nil
}

// ParseString parses an SGF document held in a string.
func ParseString(src string, opts ...parser.Option) (*parser.Collection, []parser.Warning, error) {
	return Parse("", strings.NewReader(src), opts...)
}

// ParseFile reads and parses the SGF file at the given path.
func ParseFile(path string, opts ...parser.Option) (*parser.Collection, []parser.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return Parse(path, f, opts...)
}
