package literals

import m "gooze.dev/pkg/hardlit/internal/model"

// Verdict is what a pass says about one node of the chain.
type Verdict uint8

const (
	// Continue keeps climbing and records the node as the best match so far.
	Continue Verdict = iota
	// AcceptHere stops and returns this node.
	AcceptHere
	// RejectHere stops and returns the best match recorded before this node.
	RejectHere
)

func (v Verdict) String() string {
	switch v {
	case Continue:
		return "continue"
	case AcceptHere:
		return "accept"
	case RejectHere:
		return "reject"
	}

	return "unknown"
}

// Walk runs classify over an innermost-first chain.
//
// An accept wins immediately. A reject ends the walk but keeps the nodes
// already matched with Continue, so a pass can credit several layers of an
// allowed wrapper before hitting a disallowed one.
func Walk(chain []*m.SyntaxNode, classify func(*m.SyntaxNode) Verdict) *m.SyntaxNode {
	var lastAccepted *m.SyntaxNode

	for _, node := range chain {
		switch classify(node) {
		case Continue:
			lastAccepted = node
		case AcceptHere:
			return node
		case RejectHere:
			return lastAccepted
		}
	}

	return lastAccepted
}
