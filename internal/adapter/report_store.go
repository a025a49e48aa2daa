package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/hardlit/internal/model"
)

const (
	reportExt      = ".yaml"
	shardDirPrefix = "shard_"
	reportDirPerm  = 0o750
	reportFilePerm = 0o600
)

// ReportStore persists per-file lint reports.
type ReportStore interface {
	// SaveReports writes one report per source into dir, replacing older ones.
	SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error
	// LoadReports reads every report in dir. A missing dir yields no reports.
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)
	// CleanReports deletes the reports of the given source paths.
	CleanReports(ctx context.Context, dir m.Path, paths []m.Path) error
	// ShardDirs lists the shard_* subdirectories of dir.
	ShardDirs(ctx context.Context, dir m.Path) ([]m.Path, error)
}

// LocalReportStore keeps reports as YAML documents on disk.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// ShardDir returns the report directory of one shard.
func ShardDir(dir m.Path, index int) m.Path {
	return m.Path(filepath.Join(string(dir), fmt.Sprintf("%s%d", shardDirPrefix, index)))
}

func reportFileName(source m.Path) string {
	return fmt.Sprintf("%016x%s", xxhash.Sum64String(string(source)), reportExt)
}

// SaveReports implements ReportStore.
func (s *LocalReportStore) SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error {
	if err := os.MkdirAll(string(dir), reportDirPerm); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report for %s: %w", report.Path, err)
		}

		target := filepath.Join(string(dir), reportFileName(report.Path))
		if err := os.WriteFile(target, data, reportFilePerm); err != nil {
			return fmt.Errorf("write report %s: %w", target, err)
		}
	}

	slog.Debug("saved reports", "dir", dir, "count", len(reports))

	return nil
}

// LoadReports implements ReportStore.
func (s *LocalReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || filepath.Ext(entry.Name()) != reportExt {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		// #nosec G304 - path comes from listing the reports directory
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	return reports, nil
}

// CleanReports implements ReportStore.
func (s *LocalReportStore) CleanReports(ctx context.Context, dir m.Path, paths []m.Path) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(string(dir), reportFileName(path))
		if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove report %s: %w", target, err)
		}
	}

	return nil
}

// ShardDirs implements ReportStore.
func (s *LocalReportStore) ShardDirs(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var shards []m.Path

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), shardDirPrefix) {
			shards = append(shards, m.Path(filepath.Join(string(dir), entry.Name())))
		}
	}

	sort.Slice(shards, func(i, j int) bool { return shards[i] < shards[j] })

	return shards, nil
}
