// Package literals decides whether a string literal occurrence is a hardcoded
// string or sits in a context that exempts it.
//
// The decision climbs the chain of syntax nodes enclosing the literal, from the
// innermost node up to the root, and runs three exemption passes over it in
// order: enum case values, immutable global/static/class declarations and
// arguments of whitelisted calls. A literal no pass exempts is flagged.
package literals

import (
	"slices"

	m "gooze.dev/pkg/hardlit/internal/model"
)

// ChainAt returns the tagged nodes whose range contains offset, root first.
// Untagged nodes are walked through but never collected.
func ChainAt(root *m.SyntaxNode, offset int) []*m.SyntaxNode {
	var chain []*m.SyntaxNode

	var visit func(n *m.SyntaxNode)

	visit = func(n *m.SyntaxNode) {
		if n == nil || !n.Range.Contains(offset) {
			return
		}

		if n.Kind != m.KindUnknown {
			chain = append(chain, n)
		}

		for _, child := range n.Children {
			visit(child)
		}
	}

	visit(root)

	return chain
}

// Ancestors returns the chain enclosing offset, innermost node first.
func Ancestors(root *m.SyntaxNode, offset int) []*m.SyntaxNode {
	chain := ChainAt(root, offset)
	slices.Reverse(chain)

	return chain
}
