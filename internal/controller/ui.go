// Package controller provides output adapters for displaying lint results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gooze.dev/pkg/hardlit/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeLint
	ModeView
	ModeExplain
)

// String returns the display title of the mode.
func (s StartMode) String() string {
	switch s {
	case ModeEstimate:
		return "Literal census"
	case ModeLint:
		return "Lint results"
	case ModeView:
		return "Stored reports"
	case ModeExplain:
		return "Literal reasoning"
	default:
		return "hardlit"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeLint}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithLintMode sets the UI to lint mode.
func WithLintMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeLint
	}
}

// WithViewMode sets the UI to stored report mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithExplainMode sets the UI to single file reasoning mode.
func WithExplainMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeExplain
	}
}

// UI defines the interface for displaying lint progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayEstimation(ctx context.Context, estimates []m.Estimate, err error) error
	DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int)
	DisplayFileResult(ctx context.Context, result m.FileResult)
	DisplayViolations(ctx context.Context, violations []m.Violation) error
	DisplayExplanation(ctx context.Context, path m.Path, explanations []m.Explanation) error
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI picks the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func shortPath(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	return string(source.Origin.ShortPath)
}
