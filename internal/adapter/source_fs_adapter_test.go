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

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func shortPaths(sources []m.Source) []string {
	paths := make([]string, 0, len(sources))
	for _, s := range sources {
		paths = append(paths, filepath.Base(string(s.Origin.FullPath)))
	}

	return paths
}

func swiftTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "App.swift"), "let a = \"A\"\n")
	writeTestFile(t, filepath.Join(root, "README.md"), "# readme\n")
	writeTestFile(t, filepath.Join(root, "Sources", "Model.swift"), "let b = \"B\"\n")
	writeTestFile(t, filepath.Join(root, "Sources", "View.generated.swift"), "let c = \"C\"\n")
	writeTestFile(t, filepath.Join(root, "Pods", "Lib", "Lib.swift"), "let d = \"D\"\n")
	writeTestFile(t, filepath.Join(root, "Tests", "ModelTests.swift"), "let e = \"E\"\n")

	return root
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("non recursive keeps top level only", func(t *testing.T) {
		root := swiftTree(t)

		sources, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(root)})
		require.NoError(t, err)
		assert.Equal(t, []string{"App.swift"}, shortPaths(sources))
	})

	t.Run("recursive skips ignored dirs", func(t *testing.T) {
		root := swiftTree(t)

		sources, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(root + "/...")})
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]string{"App.swift", "Model.swift", "View.generated.swift", "ModelTests.swift"},
			shortPaths(sources))
	})

	t.Run("exclude globs", func(t *testing.T) {
		root := swiftTree(t)

		sources, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(root + "/...")}, "**/*.generated.swift", "Tests")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"App.swift", "Model.swift"}, shortPaths(sources))
	})

	t.Run("gitignore honored", func(t *testing.T) {
		root := swiftTree(t)
		writeTestFile(t, filepath.Join(root, ".gitignore"), "*.generated.swift\n")

		sources, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(root + "/...")})
		require.NoError(t, err)
		assert.NotContains(t, shortPaths(sources), "View.generated.swift")

		sources, err = NewLocalSourceFSAdapter(WithGitignore(false)).Get(ctx, []m.Path{m.Path(root + "/...")})
		require.NoError(t, err)
		assert.Contains(t, shortPaths(sources), "View.generated.swift")
	})

	t.Run("explicit file and duplicates", func(t *testing.T) {
		root := swiftTree(t)
		file := filepath.Join(root, "Sources", "Model.swift")

		sources, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(file), m.Path(root + "/Sources/...")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Model.swift", "View.generated.swift"}, shortPaths(sources))
	})

	t.Run("non swift file ignored", func(t *testing.T) {
		root := swiftTree(t)

		sources, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(filepath.Join(root, "README.md"))})
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))})
		require.Error(t, err)
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		_, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(t.TempDir())}, "[")
		require.Error(t, err)
	})

	t.Run("sources carry hashes and sorted paths", func(t *testing.T) {
		root := swiftTree(t)

		sources, err := NewLocalSourceFSAdapter().Get(ctx, []m.Path{m.Path(root + "/...")})
		require.NoError(t, err)

		for i, s := range sources {
			assert.Len(t, s.Origin.Hash, 16)
			assert.True(t, filepath.IsAbs(string(s.Origin.FullPath)))

			if i > 0 {
				assert.Less(t, sources[i-1].Origin.FullPath, s.Origin.FullPath)
			}
		}
	})
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern   string
		root      string
		recursive bool
	}{
		{"./...", ".", true},
		{"...", ".", true},
		{"Sources/...", "Sources", true},
		{"/...", "/", true},
		{"Sources", "Sources", false},
		{"App.swift", "App.swift", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			root, recursive := splitPattern(tt.pattern)
			assert.Equal(t, tt.root, root)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.swift")
	b := filepath.Join(dir, "b.swift")
	writeTestFile(t, a, "let x = \"1\"\n")
	writeTestFile(t, b, "let x = \"2\"\n")

	hashA, err := adapter.HashFile(ctx, m.Path(a))
	require.NoError(t, err)

	again, err := adapter.HashFile(ctx, m.Path(a))
	require.NoError(t, err)
	assert.Equal(t, hashA, again)

	hashB, err := adapter.HashFile(ctx, m.Path(b))
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)

	_, err = adapter.HashFile(ctx, m.Path(filepath.Join(dir, "missing.swift")))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	path := filepath.Join(t.TempDir(), "a.swift")
	writeTestFile(t, path, "let x = \"1\"\n")

	content, err := adapter.ReadFile(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "let x = \"1\"\n", string(content))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = adapter.ReadFile(ctx, m.Path(path))
	require.ErrorIs(t, err, context.Canceled)

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
