package literals

import (
	"strings"
	"testing"

	m "gooze.dev/pkg/hardlit/internal/model"
)

// treeBuilder hand-assembles syntax trees over a source string so tests can
// address nodes by the text they cover.
type treeBuilder struct {
	t   *testing.T
	src string
}

func newTreeBuilder(t *testing.T, src string) treeBuilder {
	t.Helper()
	return treeBuilder{t: t, src: src}
}

func (b treeBuilder) span(text string) m.ByteRange {
	b.t.Helper()

	i := strings.Index(b.src, text)
	if i < 0 {
		b.t.Fatalf("fragment %q not found in source", text)
	}

	return m.ByteRange{Offset: i, Length: len(text)}
}

func (b treeBuilder) node(kind m.Kind, text string, children ...*m.SyntaxNode) *m.SyntaxNode {
	b.t.Helper()
	return &m.SyntaxNode{Kind: kind, Range: b.span(text), Children: children}
}

func (b treeBuilder) named(kind m.Kind, name, text string, children ...*m.SyntaxNode) *m.SyntaxNode {
	b.t.Helper()

	n := b.node(kind, text, children...)
	n.Name = name

	return n
}

func (b treeBuilder) mutable(kind m.Kind, text string, children ...*m.SyntaxNode) *m.SyntaxNode {
	b.t.Helper()

	n := b.node(kind, text, children...)
	n.SetterAccessibility = "internal"

	return n
}

func (b treeBuilder) root(children ...*m.SyntaxNode) *m.SyntaxNode {
	return &m.SyntaxNode{
		Kind:     m.KindUnknown,
		Range:    m.ByteRange{Offset: 0, Length: len(b.src)},
		Children: children,
	}
}

// literal returns the token for the first occurrence of quoted, which must
// include its delimiters.
func (b treeBuilder) literal(quoted string) m.LiteralToken {
	b.t.Helper()

	r := b.span(quoted)

	return m.LiteralToken{
		Offset:  r.Offset,
		Length:  r.Length,
		Content: m.ByteRange{Offset: r.Offset + 1, Length: r.Length - 2},
	}
}

func (b treeBuilder) file(root *m.SyntaxNode, tokens ...m.LiteralToken) *m.SyntaxFile {
	return m.NewSyntaxFile("Fixture.swift", []byte(b.src), root, tokens)
}
