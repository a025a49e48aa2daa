package adapter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "gooze.dev/pkg/hardlit/internal/model"
)

const (
	propertyDeclarationType = "property_declaration"
	callExpressionType      = "call_expression"
	sourceFileType          = "source_file"
	lineCommentType         = "comment"

	defaultSetterAccessibility = "internal"
)

// directKinds maps tree-sitter-swift node types onto classifier kinds.
// property_declaration is resolved separately since its kind depends on scope.
// Node types missing here stay untagged, including computed_property and
// computed_getter so a getter body resolves to its declaration.
var directKinds = map[string]m.Kind{
	"enum_entry":         m.KindEnumCaseElement,
	"array_literal":      m.KindArrayLiteral,
	"dictionary_literal": m.KindDictionaryLiteral,
	"parameter":          m.KindParameter,
	"lambda_parameter":   m.KindParameter,
	callExpressionType:   m.KindCall,

	"class_declaration":             m.KindOther,
	"protocol_declaration":          m.KindOther,
	"function_declaration":          m.KindOther,
	"init_declaration":              m.KindOther,
	"deinit_declaration":            m.KindOther,
	"subscript_declaration":         m.KindOther,
	"typealias_declaration":         m.KindOther,
	"associatedtype_declaration":    m.KindOther,
	"operator_declaration":          m.KindOther,
	"precedence_group_declaration":  m.KindOther,
	"import_declaration":            m.KindOther,
	"protocol_property_declaration": m.KindOther,
	"protocol_function_declaration": m.KindOther,
	"computed_setter":               m.KindOther,
	"computed_modify":               m.KindOther,
	"lambda_literal":                m.KindOther,
	"if_statement":                  m.KindOther,
	"guard_statement":               m.KindOther,
	"for_statement":                 m.KindOther,
	"while_statement":               m.KindOther,
	"repeat_while_statement":        m.KindOther,
	"switch_statement":              m.KindOther,
	"switch_entry":                  m.KindOther,
	"do_statement":                  m.KindOther,
	"catch_block":                   m.KindOther,
}

// typeBodies are the node types whose direct property declarations are members.
var typeBodies = map[string]bool{
	"class_body":      true,
	"enum_class_body": true,
}

// stringLiteralTypes are the node types reported as literal tokens.
var stringLiteralTypes = map[string]bool{
	"line_string_literal":       true,
	"multi_line_string_literal": true,
	"raw_string_literal":        true,
}

// kindFor resolves the classifier kind of a node given its parent's type.
func kindFor(n *sitter.Node, parentType string, content []byte) m.Kind {
	nodeType := n.Type()
	if nodeType != propertyDeclarationType {
		return directKinds[nodeType]
	}

	switch {
	case parentType == sourceFileType:
		return m.KindGlobalVar
	case typeBodies[parentType]:
		switch propertyModifier(n, content) {
		case "static":
			return m.KindStaticVar
		case "class":
			return m.KindClassVar
		default:
			return m.KindInstanceVar
		}
	default:
		return m.KindLocalVar
	}
}

// nameFor returns the identifier a node should carry, empty when it has none.
func nameFor(n *sitter.Node, kind m.Kind, content []byte) string {
	if kind == m.KindCall {
		callee := n.NamedChild(0)
		if callee == nil {
			return ""
		}

		return strings.Join(strings.Fields(callee.Content(content)), "")
	}

	if kind == m.KindUnknown {
		return ""
	}

	if name := n.ChildByFieldName("name"); name != nil {
		return strings.TrimSpace(name.Content(content))
	}

	return ""
}

func modifiersOf(n *sitter.Node) *sitter.Node {
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child != nil && child.Type() == "modifiers" {
			return child
		}
	}

	return nil
}

func propertyModifier(n *sitter.Node, content []byte) string {
	modifiers := modifiersOf(n)
	if modifiers == nil {
		return ""
	}

	for i := range int(modifiers.NamedChildCount()) {
		child := modifiers.NamedChild(i)
		if child == nil || child.Type() != "property_modifier" {
			continue
		}

		switch text := strings.TrimSpace(child.Content(content)); text {
		case "static", "class":
			return text
		}
	}

	return ""
}

// bindingKeyword returns "var" or "let" for a property declaration.
func bindingKeyword(n *sitter.Node, content []byte) string {
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil {
			continue
		}

		switch child.Type() {
		case "value_binding_pattern":
			if strings.HasPrefix(strings.TrimSpace(child.Content(content)), "var") {
				return "var"
			}

			return "let"
		case "var", "let":
			return child.Type()
		}
	}

	return "let"
}

// isReadOnlyComputed reports whether the declaration is a computed property
// without a setter.
func isReadOnlyComputed(n *sitter.Node) bool {
	computed := n.ChildByFieldName("computed_value")
	if computed == nil {
		for i := range int(n.NamedChildCount()) {
			if child := n.NamedChild(i); child != nil && child.Type() == "computed_property" {
				computed = child
				break
			}
		}
	}

	if computed == nil {
		return false
	}

	for i := range int(computed.NamedChildCount()) {
		child := computed.NamedChild(i)
		if child == nil {
			continue
		}

		if t := child.Type(); t == "computed_setter" || t == "computed_modify" {
			return false
		}
	}

	return true
}

// setterAccessibility derives the setter visibility of a property declaration,
// empty when the property cannot be assigned.
func setterAccessibility(n *sitter.Node, content []byte) string {
	if bindingKeyword(n, content) != "var" || isReadOnlyComputed(n) {
		return ""
	}

	modifiers := modifiersOf(n)
	if modifiers == nil {
		return defaultSetterAccessibility
	}

	declared := ""

	for i := range int(modifiers.NamedChildCount()) {
		child := modifiers.NamedChild(i)
		if child == nil || child.Type() != "visibility_modifier" {
			continue
		}

		text := strings.Join(strings.Fields(child.Content(content)), "")
		if level, ok := strings.CutSuffix(text, "(set)"); ok {
			return level
		}

		declared = text
	}

	if declared != "" {
		return declared
	}

	return defaultSetterAccessibility
}

// literalContent returns the range between a string literal's delimiters.
func literalContent(text string, offset int) m.ByteRange {
	hashes := len(text) - len(strings.TrimLeft(text, "#"))

	quotes := 1
	if strings.HasPrefix(text[hashes:], `"""`) {
		quotes = 3
	}

	open := hashes + quotes
	closing := quotes + hashes

	if len(text) < open+closing {
		return m.ByteRange{Offset: offset + min(open, len(text)), Length: 0}
	}

	return m.ByteRange{Offset: offset + open, Length: len(text) - open - closing}
}
