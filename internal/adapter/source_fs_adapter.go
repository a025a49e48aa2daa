// Package adapter contains the infrastructure ports of hardlit: Swift parsing,
// source discovery and report persistence.
package adapter

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	ignore "github.com/sabhiram/go-gitignore"

	m "gooze.dev/pkg/hardlit/internal/model"
)

const (
	swiftExt         = ".swift"
	recursiveSuffix  = "..."
	gitignoreFile    = ".gitignore"
	defaultPathQuery = "./..."
)

// IgnoredDirs are directories never scanned for sources.
var IgnoredDirs = map[string]bool{
	".git":         true,
	".build":       true,
	".swiftpm":     true,
	"build":        true,
	"Pods":         true,
	"Carthage":     true,
	"DerivedData":  true,
	"node_modules": true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
}

// SourceFSAdapter abstracts filesystem access so the workflow can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Get resolves path patterns into Swift sources sorted by path. Exclude
	// entries are doublestar globs matched against relative paths and base names.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint for the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// SourceFSOption configures a LocalSourceFSAdapter.
type SourceFSOption func(*LocalSourceFSAdapter)

// WithGitignore toggles honoring .gitignore files found at scan roots.
func WithGitignore(enabled bool) SourceFSOption {
	return func(a *LocalSourceFSAdapter) {
		a.useGitignore = enabled
	}
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	useGitignore bool
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter. .gitignore files
// are honored unless disabled with WithGitignore(false).
func NewLocalSourceFSAdapter(opts ...SourceFSOption) *LocalSourceFSAdapter {
	a := &LocalSourceFSAdapter{useGitignore: true}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Get walks every path pattern and returns the Swift sources it selects.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	if len(paths) == 0 {
		paths = []m.Path{defaultPathQuery}
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	for _, p := range paths {
		root, recursive := splitPattern(string(p))

		found, err := a.collect(ctx, root, recursive, exclude)
		if err != nil {
			return nil, err
		}

		for _, source := range found {
			key := string(source.Origin.FullPath)
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}

			sources = append(sources, source)
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.FullPath < sources[j].Origin.FullPath
	})

	slog.Debug("discovered sources", "patterns", len(paths), "count", len(sources))

	return sources, nil
}

// splitPattern turns "dir/..." into (dir, true) and anything else into (path, false).
func splitPattern(pattern string) (string, bool) {
	if pattern == recursiveSuffix {
		return ".", true
	}

	if root, ok := strings.CutSuffix(pattern, "/"+recursiveSuffix); ok {
		if root == "" {
			root = "/"
		}

		return root, true
	}

	return pattern, false
}

func (a *LocalSourceFSAdapter) collect(ctx context.Context, root string, recursive bool, exclude []string) ([]m.Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if filepath.Ext(root) != swiftExt || isExcluded(exclude, filepath.Base(root), filepath.Base(root)) {
			return nil, nil
		}

		source, err := a.newSource(ctx, root)
		if err != nil {
			return nil, err
		}

		return []m.Source{source}, nil
	}

	gitignore := a.loadGitignore(root)

	var sources []m.Source

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == root {
				return nil
			}

			if !recursive || IgnoredDirs[d.Name()] || isExcluded(exclude, rel, d.Name()) ||
				(gitignore != nil && gitignore.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != swiftExt || isExcluded(exclude, rel, d.Name()) {
			return nil
		}

		if gitignore != nil && gitignore.MatchesPath(rel) {
			return nil
		}

		source, err := a.newSource(ctx, path)
		if err != nil {
			return err
		}

		sources = append(sources, source)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

func (a *LocalSourceFSAdapter) loadGitignore(root string) *ignore.GitIgnore {
	if !a.useGitignore {
		return nil
	}

	path := filepath.Join(root, gitignoreFile)
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	gitignore, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		slog.Warn("ignoring unreadable .gitignore", "path", path, "error", err)
		return nil
	}

	return gitignore
}

func isExcluded(patterns []string, rel, base string) bool {
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}

		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}

	return false
}

func (a *LocalSourceFSAdapter) newSource(ctx context.Context, path string) (m.Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, err
	}

	hash, err := a.HashFile(ctx, m.Path(abs))
	if err != nil {
		return m.Source{}, fmt.Errorf("hash error for %s: %w", path, err)
	}

	return m.Source{Origin: &m.File{
		FullPath:  m.Path(abs),
		ShortPath: m.Path(filepath.ToSlash(filepath.Clean(path))),
		Hash:      hash,
	}}, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// HashFile returns the xxhash64 of the file at path as 16 hex digits.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}
