package literals

import (
	"slices"
	"unicode"
	"unicode/utf8"

	m "gooze.dev/pkg/hardlit/internal/model"
)

// maxTrivialContent is the longest content, in characters, that is never
// considered. Delimiters are not counted.
const maxTrivialContent = 1

// LooksLikeText reports whether s holds at least one word-forming character that
// is not a digit. Digits, punctuation, symbols and whitespace alone never count.
func LooksLikeText(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.Is(unicode.Pc, r) {
			return true
		}
	}

	return false
}

// IsCandidate reports whether a token is worth classifying.
func IsCandidate(file *m.SyntaxFile, token m.LiteralToken) bool {
	content := file.Text(token.Content)
	if utf8.RuneCountInString(content) <= maxTrivialContent {
		return false
	}

	return LooksLikeText(content)
}

// Finding is the full reasoning about one literal token of a file.
type Finding struct {
	Token     m.LiteralToken
	Candidate bool
	Ancestors []*m.SyntaxNode
	Decision  Decision
}

// Flagged reports whether the literal is a violation.
func (f Finding) Flagged() bool {
	return f.Candidate && !f.Decision.Permitted()
}

// Inspect classifies every literal of file and keeps the reasoning.
// Tokens rejected by the filter are returned with Candidate unset.
func (c *Classifier) Inspect(file *m.SyntaxFile) []Finding {
	findings := make([]Finding, 0, len(file.Literals))

	for _, token := range file.Literals {
		finding := Finding{Token: token}

		if IsCandidate(file, token) {
			finding.Candidate = true
			finding.Ancestors = Ancestors(file.Root, token.Offset)
			finding.Decision = c.Classify(finding.Ancestors)
		}

		findings = append(findings, finding)
	}

	return findings
}

// FindViolations returns the offsets of flagged literals in ascending order.
func (c *Classifier) FindViolations(file *m.SyntaxFile) []int {
	var offsets []int

	for _, finding := range c.Inspect(file) {
		if finding.Flagged() {
			offsets = append(offsets, finding.Token.Offset)
		}
	}

	slices.Sort(offsets)

	return offsets
}
