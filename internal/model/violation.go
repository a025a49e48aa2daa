package model

import "strings"

// RuleID identifies the hardcoded string rule in reports.
const RuleID = "hardcoded_string"

// Severity is how a violation should be treated by the caller.
type Severity string

const (
	// SeverityWarning reports violations without failing the run.
	SeverityWarning Severity = "warning"
	// SeverityError makes the run fail when violations exist.
	SeverityError Severity = "error"
)

// ParseSeverity maps a config value onto a Severity, defaulting to warning.
func ParseSeverity(value string) Severity {
	if strings.EqualFold(strings.TrimSpace(value), string(SeverityError)) {
		return SeverityError
	}

	return SeverityWarning
}

// Violation is one flagged literal.
type Violation struct {
	Rule     string   `yaml:"rule"`
	Severity Severity `yaml:"severity"`
	Path     Path     `yaml:"path"`
	Offset   int      `yaml:"offset"`
	Line     int      `yaml:"line"`
	Column   int      `yaml:"column"`
	Literal  string   `yaml:"literal"`
}

// FileResult holds the lint outcome for a single source file.
type FileResult struct {
	Source     Source
	Literals   int // every string literal in the file
	Candidates int // literals that passed the length/content filter
	Ignored    int // flagged literals suppressed by annotations
	Violations []Violation
	Cached     bool
}

// Estimate is the pre-lint literal census of one file.
type Estimate struct {
	Path       Path
	Literals   int
	Candidates int
}

// Explanation describes how a single literal was judged.
type Explanation struct {
	Offset    int
	Line      int
	Column    int
	Literal   string
	Candidate bool
	Chain     []string // kinds, innermost first
	Exemption string
	Flagged   bool
	Ignored   bool
}

// Summary aggregates results across a run.
type Summary struct {
	Files      int
	Cached     int
	Literals   int
	Candidates int
	Violations int
	Ignored    int
}

// Density is the share of candidate literals that were flagged.
func (s Summary) Density() float64 {
	if s.Candidates == 0 {
		return 0
	}

	return float64(s.Violations) / float64(s.Candidates)
}
