package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// Finalize validates the cross references, resolves explicit ranges into
// markers, sorts every file's markers and computes coverage.
//
// All inconsistencies are reported together as one joined error. A failed
// Finalize leaves the index untouched and still open for registration.
func (idx *FileTraceabilityIndex) Finalize() error {
	if idx.finalized {
		return ErrIndexFinalized
	}

	if err := idx.validate(); err != nil {
		slog.Error("traceability index validation failed", "error", err)
		return err
	}

	paths := idx.sortedPaths()

	idx.linkMarkedRequirements(paths)
	idx.resolveRanges()

	for _, path := range paths {
		info := idx.fileInfos[path]
		sortMarkers(info.Markers)

		covered := countCoveredLines(mergeCoveredRanges(info.Markers), info.TotalLines)
		if err := info.SetCoverageStats(info.TotalLines, covered); err != nil {
			return fmt.Errorf("coverage for %s: %w", path, err)
		}
	}

	for _, path := range paths {
		idx.splitCache[path] = idx.splitRequirements(path)
	}

	idx.finalized = true

	slog.Info("traceability index finalized",
		"requirements", len(idx.requirements), "files", len(idx.fileInfos))

	return nil
}

func (idx *FileTraceabilityIndex) validate() error {
	var errs []error

	for _, req := range idx.requirementOrder {
		reported := make(map[m.Path]struct{})

		for _, ref := range idx.reqsToFileRefs[req.UID] {
			if _, ok := idx.fileInfos[ref.Path]; ok {
				continue
			}

			if _, ok := reported[ref.Path]; ok {
				continue
			}

			reported[ref.Path] = struct{}{}
			errs = append(errs, &DanglingFileReferenceError{RequirementUID: req.UID, Path: ref.Path})
		}
	}

	for _, path := range idx.sortedPaths() {
		errs = append(errs, idx.danglingMarkerRequirements(path)...)
	}

	bindingErrs := append(idx.unresolvedNameBindings(), idx.outOfBoundsRanges()...)
	if idx.strict {
		errs = append(errs, bindingErrs...)
	} else {
		for _, err := range bindingErrs {
			slog.Warn("ignoring requirement binding", "error", err)
		}
	}

	return errors.Join(errs...)
}

// danglingMarkerRequirements lists the UIDs carried by in-code markers of
// path that are not registered requirements, one error per UID.
func (idx *FileTraceabilityIndex) danglingMarkerRequirements(path m.Path) []error {
	var errs []error

	reported := make(map[string]struct{})

	for _, marker := range idx.fileInfos[path].Markers {
		if marker.IsForward() {
			continue
		}

		for _, uid := range marker.ReqUIDs {
			if _, ok := idx.requirements[uid]; ok {
				continue
			}

			if _, ok := reported[uid]; ok {
				continue
			}

			reported[uid] = struct{}{}
			errs = append(errs, &DanglingRequirementReferenceError{Path: path, RequirementUID: uid})
		}
	}

	return errs
}

// unresolvedNameBindings reports bindings whose file is registered but has
// no entry of the bound name. Bindings to unregistered files are already
// reported as dangling file references.
func (idx *FileTraceabilityIndex) unresolvedNameBindings() []error {
	var errs []error

	paths := make([]m.Path, 0, len(idx.pendingNames))
	for path := range idx.pendingNames {
		if _, ok := idx.fileInfos[path]; ok {
			paths = append(paths, path)
		}
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	for _, path := range paths {
		names := make([]string, 0, len(idx.pendingNames[path]))
		for name := range idx.pendingNames[path] {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			for _, uid := range uniqueStrings(idx.pendingNames[path][name]) {
				errs = append(errs, &UnresolvedNameBindingError{RequirementUID: uid, Path: path, Name: name})
			}
		}
	}

	return errs
}

// outOfBoundsRanges reports explicit ranges ending past the last line of
// their registered file.
func (idx *FileTraceabilityIndex) outOfBoundsRanges() []error {
	var errs []error

	for _, binding := range idx.pendingRanges {
		info, ok := idx.fileInfos[binding.path]
		if !ok || binding.lines.End <= info.TotalLines {
			continue
		}

		errs = append(errs, &RangeOutOfBoundsError{
			RequirementUID: binding.uid,
			Path:           binding.path,
			Range:          binding.lines,
			TotalLines:     info.TotalLines,
		})
	}

	return errs
}

// linkMarkedRequirements connects requirements named by in-code markers to
// the files carrying those markers, when the requirement does not declare
// the file itself. Such links are recorded as implicit file references.
func (idx *FileTraceabilityIndex) linkMarkedRequirements(paths []m.Path) {
	for _, path := range paths {
		for _, marker := range idx.fileInfos[path].Markers {
			if marker.IsForward() {
				continue
			}

			for _, uid := range marker.ReqUIDs {
				reqs, ok := idx.pathsToReqs[path]
				if ok && reqs.contains(uid) {
					continue
				}

				idx.linkRequirementToFile(idx.requirements[uid], m.FileReference{Path: path, Implicit: true})
				slog.Debug("linked requirement from in-code marker", "uid", uid, "path", path)
			}
		}
	}
}

// resolveRanges turns every explicit range binding into a begin/end pair of
// forward range markers. Only the begin marker is indexed by requirement;
// the end marker only bounds the interval in the timeline.
func (idx *FileTraceabilityIndex) resolveRanges() {
	for _, binding := range idx.pendingRanges {
		info := idx.fileInfos[binding.path]

		begin := &m.Marker{
			Kind:           m.ForwardRangeMarker,
			ReqUIDs:        []string{binding.uid},
			Begin:          true,
			SourceLine:     binding.lines.Start,
			SourceColumn:   1,
			RangeLineBegin: binding.lines.Start,
			RangeLineEnd:   binding.lines.End,
		}
		end := &m.Marker{
			Kind:           m.ForwardRangeMarker,
			ReqUIDs:        []string{binding.uid},
			Begin:          false,
			SourceLine:     binding.lines.End,
			SourceColumn:   1,
			RangeLineBegin: binding.lines.Start,
			RangeLineEnd:   binding.lines.End,
		}

		info.AddMarker(begin, binding.uid)
		info.AddMarker(end)
	}

	idx.pendingRanges = nil
}

// splitRequirements partitions the requirements of path into whole-file
// requirements and requirements with at least one marker in the file.
// Explicit ranges are already resolved into markers at this point.
func (idx *FileTraceabilityIndex) splitRequirements(path m.Path) requirementSplit {
	reqs, ok := idx.pathsToReqs[path]
	if !ok || len(reqs.order) == 0 {
		return requirementSplit{}
	}

	info := idx.fileInfos[path]
	split := requirementSplit{
		general:     make([]*m.Requirement, 0, len(reqs.order)),
		rangeScoped: make([]*m.Requirement, 0, len(reqs.order)),
	}

	for _, req := range reqs.order {
		if len(info.MarkersFor(req.UID)) > 0 {
			split.rangeScoped = append(split.rangeScoped, req)
			continue
		}

		split.general = append(split.general, req)
	}

	return split
}

func (idx *FileTraceabilityIndex) sortedPaths() []m.Path {
	paths := make([]m.Path, 0, len(idx.fileInfos))
	for path := range idx.fileInfos {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}
