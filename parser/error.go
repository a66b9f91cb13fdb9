// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/umutseven92/sgf-parser/token"
)

// Category sentinels attached as the cause of every fatal PosError,
// so that callers can classify failures with errors.Is.
var (
	// ErrStructural marks malformed nesting: unmatched delimiters,
	// a missing bracket terminator or a token in an illegal position.
	ErrStructural = errors.New("structural error")

	// ErrValueValidation marks a well-formed bracketed value that failed
	// the domain check of its catalog entry.
	ErrValueValidation = errors.New("invalid property value")

	// ErrDuplicateProperty marks the same identifier appearing twice
	// within one node.
	ErrDuplicateProperty = errors.New("duplicate property")
)

// newUnexpectedTokenError builds the uniform error for a token that the
// parser did not expect, listing the alternatives that were expected
// instead.
func newUnexpectedTokenError(tok token.Token, expected ...token.TokenType) *token.PosError {
	expectedStrings := make([]string, 0, len(expected))
	for _, tt := range expected {
		expectedStrings = append(expectedStrings, string(tt))
	}

	msg := fmt.Sprintf("unexpected %s, expected %s",
		tok.TokenType(), strings.Join(expectedStrings, ", "))

	return token.NewPosError(tok.Pos(), msg).SetCause(ErrStructural)
}

// Warning is a recoverable diagnostic. Warnings accumulate during a parse
// and are reported alongside a successful result.
type Warning struct {
	// Ident is the property identifier the warning is about.
	Ident string
	// Message is the human-readable description.
	Message string
	// Pos is the position of the offending input.
	Pos token.Pos
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s at %s", w.Ident, w.Message, w.Pos)
}
