package domain

import (
	"sort"

	m "gooze.dev/pkg/hardlit/internal/model"
)

// Summarize aggregates per-file results into run totals.
func Summarize(results []m.FileResult) m.Summary {
	var summary m.Summary

	for _, result := range results {
		summary.Files++

		if result.Cached {
			summary.Cached++
		}

		summary.Literals += result.Literals
		summary.Candidates += result.Candidates
		summary.Violations += len(result.Violations)
		summary.Ignored += result.Ignored
	}

	return summary
}

// CollectViolations flattens the violations of all results, sorted by path
// and then by offset.
func CollectViolations(results []m.FileResult) []m.Violation {
	var violations []m.Violation

	for _, result := range results {
		violations = append(violations, result.Violations...)
	}

	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Path != violations[j].Path {
			return violations[i].Path < violations[j].Path
		}

		return violations[i].Offset < violations[j].Offset
	})

	return violations
}

func sortResults(results []m.FileResult) {
	sort.Slice(results, func(i, j int) bool {
		return resultPath(results[i]) < resultPath(results[j])
	})
}

func resultPath(result m.FileResult) m.Path {
	if result.Source.Origin == nil {
		return ""
	}

	return result.Source.Origin.FullPath
}
