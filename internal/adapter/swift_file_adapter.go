package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"

	m "gooze.dev/pkg/hardlit/internal/model"
)

const (
	// DefaultMaxFileSize is the largest Swift file the adapter accepts.
	DefaultMaxFileSize = 10 * 1024 * 1024
	// WarnFileSize is the size above which parsing is logged as slow.
	WarnFileSize = 1024 * 1024
)

var (
	// ErrFileTooLarge is returned for files above the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidContent is returned for files that are not valid UTF-8.
	ErrInvalidContent = errors.New("invalid content")
)

// SwiftFileAdapter turns Swift source into the syntax model the classifier
// consumes, hiding the parser behind a narrow port.
type SwiftFileAdapter interface {
	// Parse builds the syntax tree and the literal tokens of one file.
	Parse(ctx context.Context, path m.Path, content []byte) (*m.SyntaxFile, error)
}

// SwiftParserOption configures a LocalSwiftFileAdapter.
type SwiftParserOption func(*LocalSwiftFileAdapter)

// WithMaxFileSize sets the maximum file size in bytes. Non-positive values are ignored.
func WithMaxFileSize(bytes int64) SwiftParserOption {
	return func(a *LocalSwiftFileAdapter) {
		if bytes > 0 {
			a.maxFileSize = bytes
		}
	}
}

// LocalSwiftFileAdapter parses Swift with tree-sitter. Each Parse call uses its
// own parser instance, so one adapter may serve many goroutines.
type LocalSwiftFileAdapter struct {
	maxFileSize int64
}

// NewLocalSwiftFileAdapter constructs a LocalSwiftFileAdapter.
func NewLocalSwiftFileAdapter(opts ...SwiftParserOption) *LocalSwiftFileAdapter {
	a := &LocalSwiftFileAdapter{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Parse builds the syntax model for the provided path/content pair.
func (a *LocalSwiftFileAdapter) Parse(ctx context.Context, path m.Path, content []byte) (*m.SyntaxFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}

	if int64(len(content)) > a.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, path, len(content), a.maxFileSize)
	}

	if len(content) > WarnFileSize {
		slog.Warn("parsing large file", "path", path, "size_bytes", len(content))
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidContent, path)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(swift.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse of %s failed: %w", path, err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled after tree-sitter: %w", err)
	}

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		slog.Debug("swift source has syntax errors, continuing with partial tree", "path", path)
	}

	builder := &syntaxBuilder{content: content}
	root := builder.build(rootNode, "")

	slog.Debug("parsed swift file", "path", path, "literals", len(builder.literals))

	file := m.NewSyntaxFile(path, content, root, builder.literals)
	file.Comments = builder.comments

	return file, nil
}

// syntaxBuilder converts a tree-sitter tree into model nodes, collecting
// string literal tokens and line comments on the way.
type syntaxBuilder struct {
	content  []byte
	literals []m.LiteralToken
	comments []m.ByteRange
}

func (b *syntaxBuilder) build(n *sitter.Node, parentType string) *m.SyntaxNode {
	nodeType := n.Type()
	start := int(n.StartByte())
	end := int(n.EndByte())

	kind := kindFor(n, parentType, b.content)
	node := &m.SyntaxNode{
		Kind:  kind,
		Name:  nameFor(n, kind, b.content),
		Range: m.ByteRange{Offset: start, Length: end - start},
	}

	if nodeType == propertyDeclarationType {
		node.SetterAccessibility = setterAccessibility(n, b.content)
	}

	if stringLiteralTypes[nodeType] {
		b.literals = append(b.literals, m.LiteralToken{
			Offset:  start,
			Length:  end - start,
			Content: literalContent(string(b.content[start:end]), start),
		})
	}

	if nodeType == lineCommentType {
		b.comments = append(b.comments, m.ByteRange{Offset: start, Length: end - start})
	}

	count := int(n.NamedChildCount())
	if count > 0 {
		node.Children = make([]*m.SyntaxNode, 0, count)
	}

	for i := range count {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}

		node.Children = append(node.Children, b.build(child, nodeType))
	}

	return node
}
