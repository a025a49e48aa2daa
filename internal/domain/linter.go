package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"gooze.dev/pkg/hardlit/internal/adapter"
	"gooze.dev/pkg/hardlit/internal/domain/literals"
	m "gooze.dev/pkg/hardlit/internal/model"
)

const maxLiteralPreview = 80

var errSourceWithoutOrigin = errors.New("source without origin")

// LintConfig carries the rule settings shared by every file.
type LintConfig struct {
	Whitelist literals.Whitelist
	Severity  m.Severity
}

// Linter checks single Swift files for hardcoded strings.
type Linter interface {
	// Lint returns the violations of one source, honoring ignore annotations.
	Lint(ctx context.Context, source m.Source) (m.FileResult, error)
	// Estimate counts literals and candidates without classifying them.
	Estimate(ctx context.Context, source m.Source) (m.Estimate, error)
	// Explain reports how every literal of the file at path was judged.
	Explain(ctx context.Context, path m.Path) ([]m.Explanation, error)
	// Fingerprint identifies the rule settings; stored reports with another
	// fingerprint are stale.
	Fingerprint() string
}

type linter struct {
	fs         adapter.SourceFSAdapter
	parser     adapter.SwiftFileAdapter
	classifier *literals.Classifier
	severity   m.Severity
}

// NewLinter creates a Linter reading files through fs and parsing them with parser.
func NewLinter(fs adapter.SourceFSAdapter, parser adapter.SwiftFileAdapter, cfg LintConfig) Linter {
	severity := cfg.Severity
	if severity == "" {
		severity = m.SeverityWarning
	}

	return &linter{
		fs:         fs,
		parser:     parser,
		classifier: literals.NewClassifier(cfg.Whitelist),
		severity:   severity,
	}
}

func (l *linter) Fingerprint() string {
	wl := l.classifier.Whitelist()
	h := xxhash.New()

	for _, group := range [][]string{wl.Exact, wl.Suffix, wl.Prefix} {
		for _, entry := range group {
			_, _ = h.WriteString(entry)
			_, _ = h.WriteString("\x00")
		}

		_, _ = h.WriteString("\x01")
	}

	_, _ = h.WriteString(string(l.severity))

	return fmt.Sprintf("%016x", h.Sum64())
}

func (l *linter) parse(ctx context.Context, path m.Path) (*m.SyntaxFile, error) {
	content, err := l.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	file, err := l.parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return file, nil
}

func (l *linter) Lint(ctx context.Context, source m.Source) (m.FileResult, error) {
	result := m.FileResult{Source: source}

	if source.Origin == nil {
		return result, errSourceWithoutOrigin
	}

	file, err := l.parse(ctx, source.Origin.FullPath)
	if err != nil {
		return result, err
	}

	ignores := parseIgnoreAnnotations(file)

	for _, finding := range l.classifier.Inspect(file) {
		result.Literals++

		if finding.Candidate {
			result.Candidates++
		}

		if !finding.Flagged() {
			continue
		}

		line, column := file.Position(finding.Token.Offset)
		if ignores.suppresses(line) {
			result.Ignored++
			continue
		}

		result.Violations = append(result.Violations, m.Violation{
			Rule:     m.RuleID,
			Severity: l.severity,
			Path:     source.Origin.ShortPath,
			Offset:   finding.Token.Offset,
			Line:     line,
			Column:   column,
			Literal:  literalPreview(file, finding.Token),
		})
	}

	return result, nil
}

func (l *linter) Estimate(ctx context.Context, source m.Source) (m.Estimate, error) {
	if source.Origin == nil {
		return m.Estimate{}, errSourceWithoutOrigin
	}

	estimate := m.Estimate{Path: source.Origin.ShortPath}

	file, err := l.parse(ctx, source.Origin.FullPath)
	if err != nil {
		return estimate, err
	}

	for _, token := range file.Literals {
		estimate.Literals++

		if literals.IsCandidate(file, token) {
			estimate.Candidates++
		}
	}

	return estimate, nil
}

func (l *linter) Explain(ctx context.Context, path m.Path) ([]m.Explanation, error) {
	file, err := l.parse(ctx, path)
	if err != nil {
		return nil, err
	}

	ignores := parseIgnoreAnnotations(file)
	findings := l.classifier.Inspect(file)
	explanations := make([]m.Explanation, 0, len(findings))

	for _, finding := range findings {
		line, column := file.Position(finding.Token.Offset)

		explanation := m.Explanation{
			Offset:    finding.Token.Offset,
			Line:      line,
			Column:    column,
			Literal:   literalPreview(file, finding.Token),
			Candidate: finding.Candidate,
			Chain:     describeChain(finding.Ancestors),
		}

		if finding.Candidate {
			explanation.Exemption = finding.Decision.Exemption.String()
		}

		if finding.Flagged() {
			explanation.Ignored = ignores.suppresses(line)
			explanation.Flagged = !explanation.Ignored
		}

		explanations = append(explanations, explanation)
	}

	return explanations, nil
}

func describeChain(ancestors []*m.SyntaxNode) []string {
	if len(ancestors) == 0 {
		return nil
	}

	chain := make([]string, 0, len(ancestors))

	for _, node := range ancestors {
		if node.Name == "" {
			chain = append(chain, node.Kind.String())
			continue
		}

		chain = append(chain, fmt.Sprintf("%s(%s)", node.Kind, node.Name))
	}

	return chain
}

// literalPreview returns the literal source text on one line, shortened for display.
func literalPreview(file *m.SyntaxFile, token m.LiteralToken) string {
	text := file.Text(m.ByteRange{Offset: token.Offset, Length: token.Length})
	text = strings.ReplaceAll(text, "\r\n", `\n`)
	text = strings.ReplaceAll(text, "\n", `\n`)

	runes := []rune(text)
	if len(runes) > maxLiteralPreview {
		return string(runes[:maxLiteralPreview-1]) + "…"
	}

	return text
}
