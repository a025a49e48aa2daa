package domain_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/hardlit/internal/adapter"
	"gooze.dev/pkg/hardlit/internal/controller"
	"gooze.dev/pkg/hardlit/internal/domain"
	"gooze.dev/pkg/hardlit/internal/domain/literals"
	m "gooze.dev/pkg/hardlit/internal/model"
)

const fixturesDir = "testdata/swift"

// copyFixtures copies the named Swift fixtures into a fresh temp dir.
func copyFixtures(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(fixturesDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o600))
	}

	return dir
}

func fixtureSource(t *testing.T, name string) m.Source {
	t.Helper()

	path, err := filepath.Abs(filepath.Join(fixturesDir, name))
	require.NoError(t, err)

	return m.Source{Origin: &m.File{FullPath: m.Path(path), ShortPath: m.Path(name)}}
}

func newLinter(cfg domain.LintConfig) domain.Linter {
	if cfg.Whitelist.Exact == nil && cfg.Whitelist.Suffix == nil && cfg.Whitelist.Prefix == nil {
		cfg.Whitelist = literals.DefaultWhitelist()
	}

	return domain.NewLinter(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalSwiftFileAdapter(), cfg)
}

func newSimpleWorkflow(linter domain.Linter) (domain.Workflow, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	wf := domain.NewWorkflowPipeline(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(),
		controller.NewSimpleUI(cmd),
		linter,
	)

	return wf, &buf
}

func literalTexts(violations []m.Violation) []string {
	texts := make([]string, 0, len(violations))
	for _, v := range violations {
		texts = append(texts, v.Literal)
	}

	sort.Strings(texts)

	return texts
}
