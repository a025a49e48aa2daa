package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/hardlit/internal/domain"
	m "gooze.dev/pkg/hardlit/internal/model"
)

func TestListCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newListCmd())

	mockWorkflow.On("Estimate", mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./Sources/...") &&
			len(args.Exclude) == 1 && args.Exclude[0] == "**/*Tests.swift"
	})).Return(nil)

	cmd.SetArgs([]string{"list", "-x", "**/*Tests.swift", "./Sources/..."})
	require.NoError(t, cmd.Execute())
}

func TestExplainCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newExplainCmd())

	mockWorkflow.On("Explain", mock.Anything, domain.ExplainArgs{Path: m.Path("App/View.swift")}).Return(nil)

	cmd.SetArgs([]string{"explain", "App/View.swift"})
	require.NoError(t, cmd.Execute())
}

func TestExplainCmd_RequiresOneFile(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newExplainCmd())

	cmd.SetArgs([]string{"explain"})
	require.Error(t, cmd.Execute())
}

func TestViewCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newViewCmd())

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{Reports: m.Path("custom-reports")}).Return(nil)

	cmd.SetArgs([]string{"view", "-o", "custom-reports"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalReportsDir(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newViewCmd())

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{Reports: m.Path("ci/reports")}).Return(nil)

	cmd.SetArgs([]string{"view", "-o", "ignored", "ci/reports"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RejectsExtraArgs(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newViewCmd())

	cmd.SetArgs([]string{"view", "a", "b"})
	require.Error(t, cmd.Execute())
}

func TestMergeCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newMergeCmd())

	mockWorkflow.On("Merge", mock.Anything, domain.MergeArgs{Reports: m.Path(defaultReportsDir)}).Return(nil)

	cmd.SetArgs([]string{"merge"})
	require.NoError(t, cmd.Execute())
}

func TestMergeCmd_PositionalReportsDir(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newMergeCmd())

	mockWorkflow.On("Merge", mock.Anything, domain.MergeArgs{Reports: m.Path("ci/reports")}).Return(nil)

	cmd.SetArgs([]string{"merge", "ci/reports"})
	require.NoError(t, cmd.Execute())
}

func TestReportsDir(t *testing.T) {
	assert.Equal(t, m.Path("given"), reportsDir([]string{"given"}))
	assert.Equal(t, m.Path(defaultReportsDir), reportsDir(nil))
	assert.Equal(t, m.Path(defaultReportsDir), reportsDir([]string{""}))
}

func TestMergeCmd_PropagatesError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(newMergeCmd())

	mockWorkflow.On("Merge", mock.Anything, mock.Anything).Return(domain.ErrNoShardReports)

	cmd.SetArgs([]string{"merge"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoShardReports))
}
