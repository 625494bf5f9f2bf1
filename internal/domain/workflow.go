package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"reqtrace.dev/pkg/reqtrace/internal/adapter"
	"reqtrace.dev/pkg/reqtrace/internal/controller"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// LoadArgs describes one document-load session.
type LoadArgs struct {
	Requirements m.Path
	Root         m.Path
	Paths        []m.Path
	Exclude      []string
	Extensions   []string
	Threads      int
	Strict       bool
}

// CoverageArgs contains the arguments for the coverage report.
type CoverageArgs struct {
	LoadArgs
	OnlyTraced bool
}

// LinksArgs contains the arguments for listing the files of a requirement.
type LinksArgs struct {
	LoadArgs
	UID string
}

// FileArgs contains the arguments for listing the requirements of a file.
type FileArgs struct {
	LoadArgs
	Path m.Path
}

// Workflow loads requirements and sources into a traceability index and
// presents query results.
type Workflow interface {
	Load(ctx context.Context, args LoadArgs) (*FileTraceabilityIndex, error)
	Check(ctx context.Context, args LoadArgs) error
	Coverage(ctx context.Context, args CoverageArgs) error
	Links(ctx context.Context, args LinksArgs) error
	FileRequirements(ctx context.Context, args FileArgs) error
}

// ErrUnknownRequirement is returned when a queried requirement is not registered.
var ErrUnknownRequirement = errors.New("requirement is not registered")

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
	adapter.SourceScanner
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	scanner adapter.SourceScanner,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   manifestStore,
		SourceScanner:   scanner,
		UI:              ui,
	}
}

// Load reads the manifest, scans the sources concurrently and then registers
// everything and finalizes the index on the calling goroutine.
func (w *workflow) Load(ctx context.Context, args LoadArgs) (*FileTraceabilityIndex, error) {
	reqs, err := w.LoadRequirements(ctx, args.Requirements)
	if err != nil {
		return nil, fmt.Errorf("load requirements: %w", err)
	}

	files, err := w.Get(ctx, args.Root, args.Paths, args.Exclude...)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	files = filterExtensions(files, args.Extensions)

	scans, err := w.scanAll(ctx, args, files)
	if err != nil {
		return nil, fmt.Errorf("scan sources: %w", err)
	}

	var opts []IndexOption
	if args.Strict {
		opts = append(opts, WithStrictBindings())
	}

	idx := NewFileTraceabilityIndex(opts...)

	if err := registerAll(idx, reqs, scans); err != nil {
		return nil, err
	}

	if err := idx.Finalize(); err != nil {
		return nil, err
	}

	slog.Info("loaded traceability index", "requirements", len(reqs), "files", len(scans))

	return idx, nil
}

// registerAll registers every requirement and scan, collecting all
// registration errors instead of stopping at the first.
func registerAll(idx *FileTraceabilityIndex, reqs []*m.Requirement, scans []m.SourceFileScan) error {
	var errs []error

	for _, req := range reqs {
		if err := idx.RegisterRequirement(req); err != nil {
			errs = append(errs, err)
		}
	}

	for _, scan := range scans {
		if err := idx.RegisterFileInfo(scan); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// scanAll scans files concurrently. Outside strict mode a file the scanner
// rejects is logged and left out of the index.
func (w *workflow) scanAll(ctx context.Context, args LoadArgs, files []m.Path) ([]m.SourceFileScan, error) {
	results := make([]*m.SourceFileScan, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			content, err := w.ReadFile(groupCtx, m.Path(filepath.Join(string(args.Root), filepath.FromSlash(string(file)))))
			if err != nil {
				slog.Error("Failed to read source", "path", file, "error", err)
				return fmt.Errorf("read %s: %w", file, err)
			}

			scan, err := w.Scan(groupCtx, file, content)
			if err != nil {
				if args.Strict || groupCtx.Err() != nil {
					slog.Error("Failed to scan source", "path", file, "error", err)
					return err
				}

				slog.Warn("Skipping source that cannot be scanned", "path", file, "error", err)

				return nil
			}

			results[i] = &scan

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	scans := make([]m.SourceFileScan, 0, len(results))
	for _, scan := range results {
		if scan != nil {
			scans = append(scans, *scan)
		}
	}

	return scans, nil
}

// filterExtensions keeps the files whose extension is listed, compared
// case-insensitively. An empty list keeps every file.
func filterExtensions(files []m.Path, extensions []string) []m.Path {
	if len(extensions) == 0 {
		return files
	}

	allowed := make(map[string]struct{}, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		allowed[ext] = struct{}{}
	}

	kept := make([]m.Path, 0, len(files))

	for _, file := range files {
		if _, ok := allowed[strings.ToLower(path.Ext(string(file)))]; ok {
			kept = append(kept, file)
			continue
		}

		slog.Debug("skipping source with unlisted extension", "path", file)
	}

	return kept
}

// Check loads the index and reports whether it is consistent.
func (w *workflow) Check(ctx context.Context, args LoadArgs) error {
	idx, err := w.Load(ctx, args)
	if err != nil {
		w.DisplayValidationErrors(ctx, err)
		return err
	}

	w.DisplayLoadSummary(ctx, controller.LoadSummary{
		Requirements: len(idx.Requirements()),
		Files:        len(idx.Files()),
	})

	return nil
}

// Coverage loads the index and displays per-file coverage.
func (w *workflow) Coverage(ctx context.Context, args CoverageArgs) error {
	idx, err := w.Load(ctx, args.LoadArgs)
	if err != nil {
		w.DisplayValidationErrors(ctx, err)
		return err
	}

	summary, err := idx.Summary()
	if err != nil {
		return err
	}

	var infos []*m.TraceabilityInfo

	for _, path := range idx.Files() {
		info, err := idx.CoverageInfo(path)
		if err != nil {
			return err
		}

		if args.OnlyTraced && !idx.HasRequirements(path) && len(info.Markers) == 0 {
			summary.Files--
			summary.TotalLines -= info.TotalLines
			summary.CoveredLines -= info.CoveredLines

			continue
		}

		infos = append(infos, info)
	}

	w.DisplayCoverage(ctx, infos, summary)

	return nil
}

// Links loads the index and displays the files traced to one requirement.
func (w *workflow) Links(ctx context.Context, args LinksArgs) error {
	idx, err := w.Load(ctx, args.LoadArgs)
	if err != nil {
		w.DisplayValidationErrors(ctx, err)
		return err
	}

	req, ok := idx.Requirement(args.UID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRequirement, args.UID)
	}

	links, err := idx.FileLinksForRequirement(args.UID)
	if err != nil {
		return err
	}

	w.DisplayRequirementLinks(ctx, req, links)

	return nil
}

// FileRequirements loads the index and displays the requirements of one file.
func (w *workflow) FileRequirements(ctx context.Context, args FileArgs) error {
	idx, err := w.Load(ctx, args.LoadArgs)
	if err != nil {
		w.DisplayValidationErrors(ctx, err)
		return err
	}

	path := m.NormalizePath(string(args.Path))

	general, rangeScoped, err := idx.SplitRequirementsForFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	w.DisplayFileRequirements(ctx, path, general, rangeScoped)

	return nil
}
