// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package parser

import "github.com/umutseven92/sgf-parser/token"

// Collection is an ordered sequence of independent game trees, as they
// appeared in the document.
type Collection struct {
	GameTrees []*GameTree
}

// GameTree holds the main line of nodes and the variations branching off
// after it. A tree with an empty sequence and no children is a valid,
// degenerate tree. Ownership is strictly downward, the tree is immutable
// once parsing returned it.
type GameTree struct {
	Sequence []*Node
	Children []*GameTree
	// Range spans the whole tree including both parentheses.
	Range token.Position
}

// Node is one entry in a game tree's sequence, holding properties.
// A node carries at most one property per identifier.
type Node struct {
	Properties []*Property
	Range      token.Position
}

// Property looks up one of its properties by identifier, or nil.
func (n *Node) Property(ident string) *Property {
	for _, p := range n.Properties {
		if p.Ident == ident {
			return p
		}
	}

	return nil
}

// Property is a typed, identified attribute attached to a node. It holds
// at least one value; value-less identifiers carry a single None value
// from their empty bracket pair.
type Property struct {
	Ident  string
	Values []PropertyValue
	Range  token.Position
}
