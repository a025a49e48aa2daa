package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/hardlit/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, mode: ModeLint}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayEstimation prints the literal census as a table.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimates []m.Estimate, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderEstimationTable(estimates))

	return nil
}

func renderEstimationTable(estimates []m.Estimate) string {
	var tableBuffer bytes.Buffer

	sorted := append([]m.Estimate(nil), estimates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Literals", "Candidates"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalLiterals, totalCandidates := 0, 0

	for _, estimate := range sorted {
		table.Append([]string{
			string(estimate.Path),
			fmt.Sprintf("%d", estimate.Literals),
			fmt.Sprintf("%d", estimate.Candidates),
		})

		totalLiterals += estimate.Literals
		totalCandidates += estimate.Candidates
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("%d", totalLiterals),
		fmt.Sprintf("%d", totalCandidates),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Linting with %d worker(s) (Shard %d/%d)\n", threads, shardIndex, shardCount)
}

// DisplayFileResult prints one line per linted file.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	status := "ok"
	if n := len(result.Violations); n > 0 {
		status = fmt.Sprintf("%d violation(s)", n)
	}

	if result.Cached {
		status += " (cached)"
	}

	s.printf("%s -> %s\n", shortPath(result.Source), status)
}

// DisplayViolations prints violations in compiler diagnostic form.
func (s *SimpleUI) DisplayViolations(ctx context.Context, violations []m.Violation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(violations) == 0 {
		s.printf("No hardcoded strings found\n")
		return nil
	}

	for _, v := range violations {
		s.printf("%s\n", formatViolation(v))
	}

	return nil
}

func formatViolation(v m.Violation) string {
	return fmt.Sprintf("%s:%d:%d: %s: hardcoded string %s (%s)", v.Path, v.Line, v.Column, v.Severity, v.Literal, v.Rule)
}

// DisplayExplanation prints the per-literal reasoning of one file as a table.
func (s *SimpleUI) DisplayExplanation(ctx context.Context, path m.Path, explanations []m.Explanation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n%s", path, renderExplanationTable(explanations))

	return nil
}

func renderExplanationTable(explanations []m.Explanation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Position", "Literal", "Chain", "Decision"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	flagged := 0

	for _, e := range explanations {
		if e.Flagged {
			flagged++
		}

		table.Append([]string{
			fmt.Sprintf("%d:%d", e.Line, e.Column),
			e.Literal,
			strings.Join(e.Chain, " < "),
			explanationDecision(e),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Literals %d", len(explanations)), "", "", fmt.Sprintf("Flagged %d", flagged)})
	table.Render()

	return tableBuffer.String()
}

func explanationDecision(e m.Explanation) string {
	switch {
	case !e.Candidate:
		return "filtered"
	case e.Ignored:
		return "ignored"
	case e.Flagged:
		return "flagged"
	default:
		return "permitted: " + e.Exemption
	}
}

// DisplaySummary prints the run totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Files: %d (cached %d) | Literals: %d | Candidates: %d | Violations: %d | Ignored: %d | Density: %.2f%%\n",
		summary.Files, summary.Cached, summary.Literals, summary.Candidates,
		summary.Violations, summary.Ignored, summary.Density()*100)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
