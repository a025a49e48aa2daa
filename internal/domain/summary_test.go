package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gooze.dev/pkg/hardlit/internal/domain"
	m "gooze.dev/pkg/hardlit/internal/model"
)

func TestSummarize(t *testing.T) {
	results := []m.FileResult{
		{Literals: 5, Candidates: 4, Ignored: 1, Violations: []m.Violation{{}, {}}},
		{Literals: 3, Candidates: 0, Cached: true},
	}

	summary := domain.Summarize(results)

	assert.Equal(t, m.Summary{Files: 2, Cached: 1, Literals: 8, Candidates: 4, Violations: 2, Ignored: 1}, summary)
	assert.InDelta(t, 0.5, summary.Density(), 1e-9)
	assert.Zero(t, domain.Summarize(nil).Density())
}

func TestCollectViolations(t *testing.T) {
	results := []m.FileResult{
		{Violations: []m.Violation{{Path: "b.swift", Offset: 30}, {Path: "b.swift", Offset: 10}}},
		{Violations: []m.Violation{{Path: "a.swift", Offset: 50}}},
		{},
	}

	got := domain.CollectViolations(results)

	assert.Equal(t, []m.Violation{
		{Path: "a.swift", Offset: 50},
		{Path: "b.swift", Offset: 10},
		{Path: "b.swift", Offset: 30},
	}, got)
	assert.Empty(t, domain.CollectViolations(nil))
}

func TestShardSources(t *testing.T) {
	sources := make([]m.Source, 5)
	for i := range sources {
		sources[i] = m.Source{Origin: &m.File{FullPath: m.Path(string(rune('a'+i)) + ".swift")}}
	}

	assert.Equal(t, sources, domain.ShardSources(sources, 0, 0))
	assert.Equal(t, []m.Source{sources[0], sources[2], sources[4]}, domain.ShardSources(sources, 0, 2))
	assert.Equal(t, []m.Source{sources[1], sources[3]}, domain.ShardSources(sources, 1, 2))
	assert.Empty(t, domain.ShardSources(sources, 7, 3))

	total := 0
	for i := range 3 {
		total += len(domain.ShardSources(sources, i, 3))
	}

	assert.Equal(t, len(sources), total)
}
