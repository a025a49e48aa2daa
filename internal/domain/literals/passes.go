package literals

import m "gooze.dev/pkg/hardlit/internal/model"

// Exemption names the reason a literal was permitted.
type Exemption uint8

const (
	// ExemptionNone means no pass permitted the literal.
	ExemptionNone Exemption = iota
	// ExemptionEnumCase is a raw value of an enum case.
	ExemptionEnumCase
	// ExemptionImmutableDeclaration is the value of a global, static or class constant.
	ExemptionImmutableDeclaration
	// ExemptionWhitelistedCall is an argument of a whitelisted call.
	ExemptionWhitelistedCall
	// ExemptionUntraceable means no enclosing node was found.
	ExemptionUntraceable
)

func (e Exemption) String() string {
	switch e {
	case ExemptionNone:
		return "none"
	case ExemptionEnumCase:
		return "enum-case"
	case ExemptionImmutableDeclaration:
		return "immutable-declaration"
	case ExemptionWhitelistedCall:
		return "whitelisted-call"
	case ExemptionUntraceable:
		return "untraceable"
	}

	return "unknown"
}

// Decision is the outcome of classifying one literal.
type Decision struct {
	Exemption Exemption
	// Node is the node the winning pass stopped on, nil when none applies.
	Node *m.SyntaxNode
}

// Permitted reports whether the literal must not be flagged.
func (d Decision) Permitted() bool {
	return d.Exemption != ExemptionNone
}

// Classifier applies the exemption passes with a fixed whitelist.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	whitelist Whitelist
}

// NewClassifier creates a Classifier owning a private copy of whitelist.
func NewClassifier(whitelist Whitelist) *Classifier {
	return &Classifier{whitelist: whitelist.Clone()}
}

// Whitelist returns a copy of the classifier's whitelist.
func (c *Classifier) Whitelist() Whitelist {
	return c.whitelist.Clone()
}

// Classify decides the fate of a literal given its innermost-first ancestors.
func (c *Classifier) Classify(ancestors []*m.SyntaxNode) Decision {
	if len(ancestors) == 0 {
		return Decision{Exemption: ExemptionUntraceable}
	}

	if node := Walk(ancestors, classifyEnumCase); node != nil {
		return Decision{Exemption: ExemptionEnumCase, Node: node}
	}

	if node, ok := immutableDeclaration(ancestors); ok {
		return Decision{Exemption: ExemptionImmutableDeclaration, Node: node}
	}

	if node := Walk(ancestors, c.classifyCall); node != nil && node.Kind == m.KindCall {
		return Decision{Exemption: ExemptionWhitelistedCall, Node: node}
	}

	return Decision{Exemption: ExemptionNone}
}

// ClassifyAt extracts the ancestors of offset from root and classifies them.
func (c *Classifier) ClassifyAt(root *m.SyntaxNode, offset int) Decision {
	return c.Classify(Ancestors(root, offset))
}

func classifyEnumCase(node *m.SyntaxNode) Verdict {
	if node.Kind == m.KindEnumCaseElement {
		return AcceptHere
	}

	return RejectHere
}

func immutableDeclaration(ancestors []*m.SyntaxNode) (*m.SyntaxNode, bool) {
	candidate := Walk(ancestors, func(node *m.SyntaxNode) Verdict {
		return classifyDeclaration(node.Kind, true)
	})
	if candidate == nil {
		return nil, false
	}

	// A bare collection means the walk never reached a qualifying declaration.
	if classifyDeclaration(candidate.Kind, false) == RejectHere {
		return nil, false
	}

	if candidate.SetterAccessibility != "" {
		return nil, false
	}

	return candidate, true
}

func classifyDeclaration(kind m.Kind, allowCollections bool) Verdict {
	switch kind {
	case m.KindArrayLiteral, m.KindDictionaryLiteral:
		if allowCollections {
			return Continue
		}

		return RejectHere
	case m.KindGlobalVar, m.KindClassVar, m.KindStaticVar:
		return Continue
	default:
		return RejectHere
	}
}

func (c *Classifier) classifyCall(node *m.SyntaxNode) Verdict {
	switch node.Kind {
	case m.KindParameter:
		return Continue
	case m.KindCall:
		if node.Name == "" {
			return RejectHere
		}

		if c.whitelist.Allows(node.Name) {
			return AcceptHere
		}

		return RejectHere
	default:
		return RejectHere
	}
}
