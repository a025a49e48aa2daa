package model

import "sort"

// Kind is the closed set of syntax categories the literal classifier cares about.
// The zero value means the node carries no identifiable kind tag.
type Kind uint8

const (
	// KindUnknown marks nodes without a kind tag (plain expressions, wrappers, the root).
	KindUnknown Kind = iota
	// KindOther is any structural node that matters for nesting but not for exemptions.
	KindOther
	// KindEnumCaseElement is an enum case, including its raw value.
	KindEnumCaseElement
	// KindGlobalVar is a file-scope variable or constant declaration.
	KindGlobalVar
	// KindClassVar is a `class var` type member.
	KindClassVar
	// KindStaticVar is a `static let` / `static var` type member.
	KindStaticVar
	// KindInstanceVar is a stored or computed instance property.
	KindInstanceVar
	// KindLocalVar is a variable declared inside a function, closure or statement.
	KindLocalVar
	// KindArrayLiteral is an array literal expression.
	KindArrayLiteral
	// KindDictionaryLiteral is a dictionary literal expression.
	KindDictionaryLiteral
	// KindParameter is a function or closure parameter declaration.
	KindParameter
	// KindCall is a call expression.
	KindCall
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindOther:             "other",
	KindEnumCaseElement:   "enum-case",
	KindGlobalVar:         "global-var",
	KindClassVar:          "class-var",
	KindStaticVar:         "static-var",
	KindInstanceVar:       "instance-var",
	KindLocalVar:          "local-var",
	KindArrayLiteral:      "array",
	KindDictionaryLiteral: "dictionary",
	KindParameter:         "parameter",
	KindCall:              "call",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

// ByteRange is the half-open interval [Offset, Offset+Length).
type ByteRange struct {
	Offset int
	Length int
}

// End returns the first offset past the range.
func (r ByteRange) End() int {
	return r.Offset + r.Length
}

// Contains reports whether offset falls inside the range.
func (r ByteRange) Contains(offset int) bool {
	return offset >= r.Offset && offset < r.End()
}

// SyntaxNode is one parsed construct of a file.
// Trees are built once by a parser adapter and never mutated afterwards.
type SyntaxNode struct {
	Kind  Kind
	Name  string
	Range ByteRange
	// SetterAccessibility is set only on variable declarations that have a setter.
	SetterAccessibility string
	Children            []*SyntaxNode
}

// LiteralToken is a string literal occurrence. Offset and Length cover the
// delimiters; Content covers only the text between them.
type LiteralToken struct {
	Offset  int
	Length  int
	Content ByteRange
}

// SyntaxFile bundles everything the classifier needs about one parsed file.
type SyntaxFile struct {
	Path     Path
	Content  []byte
	Root     *SyntaxNode
	Literals []LiteralToken
	// Comments are the line comments of the file, "//" included, in source order.
	Comments []ByteRange

	lineStarts []int
}

// NewSyntaxFile builds a SyntaxFile and indexes its line starts.
func NewSyntaxFile(path Path, content []byte, root *SyntaxNode, literals []LiteralToken) *SyntaxFile {
	lineStarts := []int{0}

	for i, b := range content {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &SyntaxFile{
		Path:       path,
		Content:    content,
		Root:       root,
		Literals:   literals,
		lineStarts: lineStarts,
	}
}

// Text returns the source bytes covered by r, clamped to the file.
func (f *SyntaxFile) Text(r ByteRange) string {
	start := max(0, min(r.Offset, len(f.Content)))
	end := max(start, min(r.End(), len(f.Content)))

	return string(f.Content[start:end])
}

// Position converts a byte offset into a 1-based line and column.
func (f *SyntaxFile) Position(offset int) (int, int) {
	if len(f.lineStarts) == 0 {
		return 1, offset + 1
	}

	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})

	if line == 0 {
		return 1, offset + 1
	}

	return line, offset - f.lineStarts[line-1] + 1
}
