package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "hardlit ")
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name         string
		info         debug.BuildInfo
		wantVersion  string
		wantRevision string
	}{
		{"empty", debug.BuildInfo{}, unknownVersion, ""},
		{"tagged", debug.BuildInfo{Main: debug.Module{Version: "v0.3.0"}}, "v0.3.0", ""},
		{
			"with revision",
			debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.time", Value: "2026"}, {Key: "vcs.revision", Value: "abc123"}},
			},
			"v0.3.0", "abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, revision := buildVersion(&tt.info)
			assert.Equal(t, tt.wantVersion, version)
			assert.Equal(t, tt.wantRevision, revision)
		})
	}
}
