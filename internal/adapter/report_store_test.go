package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/hardlit/internal/model"
)

func sampleReport(path string, violations ...m.Violation) m.Report {
	return m.Report{
		Path:       m.Path(path),
		Hash:       "00000000000000aa",
		Literals:   3,
		Candidates: 2,
		Violations: violations,
	}
}

func TestLocalReportStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	violation := m.Violation{
		Rule:     m.RuleID,
		Severity: m.SeverityWarning,
		Path:     "/src/B.swift",
		Offset:   12,
		Line:     2,
		Column:   5,
		Literal:  `"Hello"`,
	}

	reports := []m.Report{sampleReport("/src/B.swift", violation), sampleReport("/src/A.swift")}
	require.NoError(t, store.SaveReports(ctx, dir, reports))

	loaded, err := store.LoadReports(ctx, dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, m.Path("/src/A.swift"), loaded[0].Path)
	assert.Equal(t, m.Path("/src/B.swift"), loaded[1].Path)
	assert.Equal(t, []m.Violation{violation}, loaded[1].Violations)
	assert.Equal(t, 3, loaded[1].Literals)

	// Saving again overwrites instead of duplicating.
	require.NoError(t, store.SaveReports(ctx, dir, reports[:1]))

	loaded, err = store.LoadReports(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestLocalReportStore_LoadMissingDir(t *testing.T) {
	loaded, err := NewReportStore().LoadReports(context.Background(), m.Path(filepath.Join(t.TempDir(), "none")))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLocalReportStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("path: [unterminated"), 0o600))

	_, err := NewReportStore().LoadReports(context.Background(), m.Path(dir))
	require.Error(t, err)
}

func TestLocalReportStore_CleanReports(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()
	dir := m.Path(t.TempDir())

	require.NoError(t, store.SaveReports(ctx, dir, []m.Report{sampleReport("/a.swift"), sampleReport("/b.swift")}))
	require.NoError(t, store.CleanReports(ctx, dir, []m.Path{"/a.swift", "/never-saved.swift"}))

	loaded, err := store.LoadReports(ctx, dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, m.Path("/b.swift"), loaded[0].Path)
}

func TestLocalReportStore_ShardDirs(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()
	dir := m.Path(t.TempDir())

	require.NoError(t, store.SaveReports(ctx, ShardDir(dir, 1), []m.Report{sampleReport("/b.swift")}))
	require.NoError(t, store.SaveReports(ctx, ShardDir(dir, 0), []m.Report{sampleReport("/a.swift")}))
	require.NoError(t, os.MkdirAll(filepath.Join(string(dir), "other"), 0o750))

	shards, err := store.ShardDirs(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{ShardDir(dir, 0), ShardDir(dir, 1)}, shards)

	shards, err = store.ShardDirs(ctx, m.Path(filepath.Join(string(dir), "missing")))
	require.NoError(t, err)
	assert.Empty(t, shards)
}
