// Package domain wires the hardcoded string rule into file level linting and
// the multi-file workflows behind the CLI commands.
package domain

import (
	"context"
	"errors"

	m "gooze.dev/pkg/hardlit/internal/model"
)

// ErrViolationsFound is returned by Lint when the rule severity is error and
// at least one violation was reported.
var ErrViolationsFound = errors.New("hardcoded strings found")

// EstimateArgs contains the arguments for the literal census.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// LintArgs contains the arguments for a lint run.
type LintArgs struct {
	Paths           []m.Path
	Exclude         []string
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
	UseCache        bool
	Severity        m.Severity
}

// ViewArgs contains the arguments for showing stored reports.
type ViewArgs struct {
	Reports m.Path
}

// MergeArgs contains the arguments for merging sharded reports.
type MergeArgs struct {
	Reports m.Path
}

// ExplainArgs contains the arguments for explaining one file.
type ExplainArgs struct {
	Path m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Lint(ctx context.Context, args LintArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	Explain(ctx context.Context, args ExplainArgs) error
}
