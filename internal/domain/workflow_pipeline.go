package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/hardlit/internal/adapter"
	"gooze.dev/pkg/hardlit/internal/controller"
	m "gooze.dev/pkg/hardlit/internal/model"
)

// ErrNoShardReports is returned by Merge when the reports directory has no shard_* subdirectories.
var ErrNoShardReports = errors.New("no shard reports to merge")

type workflowPipeline struct {
	adapter.ReportStore
	adapter.SourceFSAdapter
	controller.UI
	linter Linter
}

// NewWorkflowPipeline creates a new Workflow instance using pipeline pattern with the provided dependencies.
func NewWorkflowPipeline(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	linter Linter,
) Workflow {
	return &workflowPipeline{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		linter:          linter,
	}
}

func resolveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}

	return threads
}

// skippable reports parse failures that should not abort a whole run.
func skippable(err error) bool {
	return errors.Is(err, adapter.ErrFileTooLarge) || errors.Is(err, adapter.ErrInvalidContent)
}

// ShardSources keeps the sources whose position modulo total equals index.
// A total of zero disables sharding.
func ShardSources(sources []m.Source, index, total int) []m.Source {
	if total <= 0 {
		return sources
	}

	var shard []m.Source

	for i, source := range sources {
		if i%total == index {
			shard = append(shard, source)
		}
	}

	return shard
}

// Estimate counts literals and candidates per file and displays the census.
func (w *workflowPipeline) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	estimates, err := w.collectEstimates(ctx, args)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to estimate literals", "error", err)

		return fmt.Errorf("estimate: %w", err)
	}

	if err := w.DisplayEstimation(ctx, estimates, nil); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display estimation", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflowPipeline) collectEstimates(ctx context.Context, args EstimateArgs) ([]m.Estimate, error) {
	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	estimates := make([]m.Estimate, len(sources))
	found := make([]bool, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(resolveThreads(args.Threads))

	for i, source := range sources {
		group.Go(func() error {
			estimate, err := w.linter.Estimate(groupCtx, source)
			if err != nil {
				if skippable(err) {
					slog.Warn("skipping file", "path", source.Origin.FullPath, "error", err)
					return nil
				}

				return err
			}

			estimates[i] = estimate
			found[i] = true

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	kept := estimates[:0]

	for i, estimate := range estimates {
		if found[i] {
			kept = append(kept, estimate)
		}
	}

	return kept, nil
}

// Lint runs the rule over every selected source, persists per-file reports
// and displays the violations.
func (w *workflowPipeline) Lint(ctx context.Context, args LintArgs) error {
	threads := resolveThreads(args.Threads)

	if err := w.Start(ctx, controller.WithLintMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	results, err := w.lintSources(ctx, args, threads)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to lint sources", "error", err)

		return err
	}

	if err := w.DisplayViolations(ctx, CollectViolations(results)); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	summary := Summarize(results)
	w.DisplaySummary(ctx, summary)

	w.Wait(ctx)
	w.Close(ctx)

	slog.Info("lint finished", "files", summary.Files, "cached", summary.Cached, "violations", summary.Violations)

	if args.Severity == m.SeverityError && summary.Violations > 0 {
		return fmt.Errorf("%w: %d violation(s)", ErrViolationsFound, summary.Violations)
	}

	return nil
}

func reportsDirFor(args LintArgs) m.Path {
	if args.Reports == "" || args.TotalShardCount <= 0 {
		return args.Reports
	}

	return adapter.ShardDir(args.Reports, args.ShardIndex)
}

func (w *workflowPipeline) lintSources(ctx context.Context, args LintArgs, threads int) ([]m.FileResult, error) {
	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources = ShardSources(sources, args.ShardIndex, args.TotalShardCount)
	reportsDir := reportsDirFor(args)

	cached, pending, err := w.getChangedSources(ctx, args, reportsDir, sources)
	if err != nil {
		return nil, err
	}

	w.DisplayConcurrencyInfo(ctx, threads, args.ShardIndex, args.TotalShardCount)

	results := make([]m.FileResult, 0, len(sources))

	for _, result := range cached {
		w.DisplayFileResult(ctx, result)
		results = append(results, result)
	}

	resultsChannel, errorChannel := w.lintChannel(ctx, pending, threads)

	fresh := make([]m.FileResult, 0, len(pending))
	for result := range resultsChannel {
		w.DisplayFileResult(ctx, result)
		fresh = append(fresh, result)
	}

	if err := <-errorChannel; err != nil {
		return nil, err
	}

	if args.Reports != "" {
		fingerprint := w.linter.Fingerprint()

		reports := make([]m.Report, 0, len(fresh))
		for _, result := range fresh {
			reports = append(reports, m.NewReport(result, fingerprint))
		}

		if err := w.SaveReports(ctx, reportsDir, reports); err != nil {
			return nil, fmt.Errorf("save reports: %w", err)
		}
	}

	results = append(results, fresh...)
	sortResults(results)

	return results, nil
}

// getChangedSources splits sources into results reusable from stored reports
// and sources that must be linted again. Reports of deleted files are removed.
func (w *workflowPipeline) getChangedSources(
	ctx context.Context,
	args LintArgs,
	dir m.Path,
	sources []m.Source,
) ([]m.FileResult, []m.Source, error) {
	if !args.UseCache || args.Reports == "" {
		return nil, sources, nil
	}

	reports, err := w.LoadReports(ctx, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load reports: %w", err)
	}

	stored := make(map[m.Path]m.Report, len(reports))
	for _, report := range reports {
		stored[report.Path] = report
	}

	fingerprint := w.linter.Fingerprint()

	var (
		cached  []m.FileResult
		pending []m.Source
	)

	for _, source := range sources {
		report, ok := stored[source.Origin.FullPath]
		delete(stored, source.Origin.FullPath)

		if !ok || report.Hash != source.Origin.Hash || report.Fingerprint != fingerprint {
			pending = append(pending, source)
			continue
		}

		result := report.FileResult()
		result.Source = source
		cached = append(cached, result)
	}

	deleted, err := w.deletedPaths(ctx, stored)
	if err != nil {
		return nil, nil, err
	}

	if len(deleted) > 0 {
		if err := w.CleanReports(ctx, dir, deleted); err != nil {
			return nil, nil, fmt.Errorf("clean reports: %w", err)
		}
	}

	slog.Debug("cache checked", "cached", len(cached), "pending", len(pending), "deleted", len(deleted))

	return cached, pending, nil
}

// deletedPaths returns the stored report paths whose files no longer exist.
// Reports of files outside the current selection are kept.
func (w *workflowPipeline) deletedPaths(ctx context.Context, stored map[m.Path]m.Report) ([]m.Path, error) {
	var deleted []m.Path

	for path := range stored {
		_, err := w.FileInfo(ctx, path)
		if err == nil {
			continue
		}

		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		deleted = append(deleted, path)
	}

	return deleted, nil
}

func (w *workflowPipeline) lintChannel(ctx context.Context, sources []m.Source, threads int) (<-chan m.FileResult, <-chan error) {
	resultsChannel := make(chan m.FileResult, threads)
	errorChannel := make(chan error, 1)

	go func() {
		defer close(errorChannel)

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(threads)

		for _, source := range sources {
			if groupCtx.Err() != nil {
				break
			}

			group.Go(func() error {
				result, err := w.linter.Lint(groupCtx, source)
				if err != nil {
					if skippable(err) {
						slog.Warn("skipping file", "path", source.Origin.FullPath, "error", err)
						return nil
					}

					return fmt.Errorf("lint %s: %w", source.Origin.ShortPath, err)
				}

				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				case resultsChannel <- result:
				}

				return nil
			})
		}

		err := group.Wait()
		if err == nil {
			err = ctx.Err()
		}

		close(resultsChannel)

		if err != nil {
			errorChannel <- err
		}
	}()

	return resultsChannel, errorChannel
}

// View displays the violations stored in the reports directory, falling back
// to shard directories when nothing was merged yet.
func (w *workflowPipeline) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	reports, err := w.loadAllReports(ctx, args.Reports)
	if err != nil {
		w.Close(ctx)
		return err
	}

	if err := w.displayReports(ctx, reports); err != nil {
		w.Close(ctx)
		return err
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflowPipeline) loadAllReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	reports, err := w.LoadReports(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}

	if len(reports) > 0 {
		return reports, nil
	}

	return w.loadShardReports(ctx, dir)
}

func (w *workflowPipeline) loadShardReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	shards, err := w.ShardDirs(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("list shards: %w", err)
	}

	var reports []m.Report

	for _, shard := range shards {
		shardReports, err := w.LoadReports(ctx, shard)
		if err != nil {
			return nil, fmt.Errorf("load shard %s: %w", shard, err)
		}

		reports = append(reports, shardReports...)
	}

	return reports, nil
}

func (w *workflowPipeline) displayReports(ctx context.Context, reports []m.Report) error {
	results := make([]m.FileResult, 0, len(reports))
	for _, report := range reports {
		results = append(results, report.FileResult())
	}

	sortResults(results)

	if err := w.DisplayViolations(ctx, CollectViolations(results)); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.DisplaySummary(ctx, Summarize(results))

	return nil
}

// Merge copies the reports of every shard_* directory into the reports directory.
func (w *workflowPipeline) Merge(ctx context.Context, args MergeArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	reports, err := w.loadShardReports(ctx, args.Reports)
	if err != nil {
		w.Close(ctx)
		return err
	}

	if len(reports) == 0 {
		w.Close(ctx)
		return fmt.Errorf("%w in %s", ErrNoShardReports, args.Reports)
	}

	merged := mergeReports(reports)

	if err := w.SaveReports(ctx, args.Reports, merged); err != nil {
		w.Close(ctx)
		return fmt.Errorf("save reports: %w", err)
	}

	slog.Info("merged shard reports", "dir", args.Reports, "reports", len(merged))

	if err := w.displayReports(ctx, merged); err != nil {
		w.Close(ctx)
		return err
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// mergeReports keeps one report per path; later shards win.
func mergeReports(reports []m.Report) []m.Report {
	index := make(map[m.Path]int, len(reports))

	var merged []m.Report

	for _, report := range reports {
		if i, ok := index[report.Path]; ok {
			merged[i] = report
			continue
		}

		index[report.Path] = len(merged)
		merged = append(merged, report)
	}

	return merged
}

// Explain displays the reasoning behind every literal of one file.
func (w *workflowPipeline) Explain(ctx context.Context, args ExplainArgs) error {
	if err := w.Start(ctx, controller.WithExplainMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	explanations, err := w.linter.Explain(ctx, args.Path)
	if err != nil {
		w.Close(ctx)
		return fmt.Errorf("explain: %w", err)
	}

	if err := w.DisplayExplanation(ctx, args.Path, explanations); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}
