package domain

import (
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// HasRequirements reports whether any requirement references path. It is
// false until the index is finalized, since in-code markers only link their
// requirements to a file during Finalize.
func (idx *FileTraceabilityIndex) HasRequirements(path m.Path) bool {
	if !idx.finalized {
		return false
	}

	reqs, ok := idx.pathsToReqs[m.NormalizePath(string(path))]
	return ok && len(reqs.order) > 0
}

// FileLinksForRequirement returns one link per distinct file referenced by
// the requirement, in declaration order. When a requirement references the
// same file several times only the first reference is returned. Markers is
// nil for files the requirement only references as a whole.
func (idx *FileTraceabilityIndex) FileLinksForRequirement(uid string) ([]m.FileLink, error) {
	if !idx.finalized {
		return nil, ErrIndexNotFinalized
	}

	refs := idx.reqsToFileRefs[uid]
	links := make([]m.FileLink, 0, len(refs))
	visited := make(map[m.Path]struct{}, len(refs))

	for _, ref := range refs {
		if _, ok := visited[ref.Path]; ok {
			continue
		}

		visited[ref.Path] = struct{}{}

		link := m.FileLink{Reference: ref}
		if markers := idx.fileInfos[ref.Path].MarkersFor(uid); len(markers) > 0 {
			link.Markers = markers
		}

		links = append(links, link)
	}

	return links, nil
}

// SplitRequirementsForFile partitions the requirements of path into general
// (whole-file) requirements and range-scoped requirements, which have at
// least one marker in the file. Both slices are nil when no requirement
// references the file.
func (idx *FileTraceabilityIndex) SplitRequirementsForFile(path m.Path) (general, rangeScoped []*m.Requirement, err error) {
	if !idx.finalized {
		return nil, nil, ErrIndexNotFinalized
	}

	path = m.NormalizePath(string(path))

	split, ok := idx.splitCache[path]
	if !ok {
		return nil, nil, ErrUnknownFile
	}

	return split.general, split.rangeScoped, nil
}

// CoverageInfo returns the traceability info of path.
func (idx *FileTraceabilityIndex) CoverageInfo(path m.Path) (*m.TraceabilityInfo, error) {
	if !idx.finalized {
		return nil, ErrIndexNotFinalized
	}

	info, ok := idx.fileInfos[m.NormalizePath(string(path))]
	if !ok {
		return nil, ErrUnknownFile
	}

	return info, nil
}

// Files returns the registered file paths in lexical order.
//
// Files, Requirements and Requirement report registration state, which
// Finalize never changes, so they are usable before it.
func (idx *FileTraceabilityIndex) Files() []m.Path {
	return idx.sortedPaths()
}

// Requirements returns the registered requirements in registration order.
func (idx *FileTraceabilityIndex) Requirements() []*m.Requirement {
	return append([]*m.Requirement(nil), idx.requirementOrder...)
}

// Requirement looks up a registered requirement by UID.
func (idx *FileTraceabilityIndex) Requirement(uid string) (*m.Requirement, bool) {
	req, ok := idx.requirements[uid]
	return req, ok
}

// Summary aggregates the coverage of all registered files.
func (idx *FileTraceabilityIndex) Summary() (m.CoverageSummary, error) {
	if !idx.finalized {
		return m.CoverageSummary{}, ErrIndexNotFinalized
	}

	summary := m.CoverageSummary{Files: len(idx.fileInfos)}
	for _, info := range idx.fileInfos {
		summary.TotalLines += info.TotalLines
		summary.CoveredLines += info.CoveredLines
	}

	return summary, nil
}
