// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package token

// PosError is the uniform fatal error of the parser. It carries a
// human-readable message and the position of the offending input.
// A category sentinel may be attached as the cause, so that callers
// can classify errors with errors.Is.
type PosError struct {
	Node    Node
	Message string
	Cause   error
}

// NewPosError creates a new PosError pointing at the given node.
func NewPosError(node Node, msg string) *PosError {
	return &PosError{
		Node:    node,
		Message: msg,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) Error() string {
	if p.Node == nil {
		return p.Message
	}

	return p.Message + " at " + p.Node.Begin().String()
}
