package domain

import (
	"fmt"
	"log/slog"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// FileTraceabilityIndex cross-references requirements and source files.
//
// The index is built in two phases. RegisterRequirement and RegisterFileInfo
// accumulate requirements and scan results in any order; Finalize resolves
// pending bindings, validates the cross references and computes coverage.
// After Finalize the index is read-only and safe for concurrent readers.
// Building is not safe for concurrent use.
type FileTraceabilityIndex struct {
	requirements     map[string]*m.Requirement
	requirementOrder []*m.Requirement

	pathsToReqs    map[m.Path]*requirementSet
	reqsToFileRefs map[string][]m.FileReference
	fileInfos      map[m.Path]*m.TraceabilityInfo

	// Bindings waiting for Finalize (ranges) or for the file scan (names).
	pendingRanges []rangeBinding
	pendingNames  map[m.Path]map[string][]string

	// Forward function markers already synthesized, by file and entry name.
	functionMarkers map[m.Path]map[string][]*m.Marker

	splitCache map[m.Path]requirementSplit
	finalized  bool
	strict     bool
}

// IndexOption configures a FileTraceabilityIndex.
type IndexOption func(*FileTraceabilityIndex)

// WithStrictBindings makes Finalize fail on function or class bindings that
// match no entry of their file and on explicit ranges past the end of their
// file. Without it both are logged and the binding is ignored.
func WithStrictBindings() IndexOption {
	return func(idx *FileTraceabilityIndex) {
		idx.strict = true
	}
}

type rangeBinding struct {
	uid   string
	path  m.Path
	lines m.LineRange
}

type requirementSplit struct {
	general     []*m.Requirement
	rangeScoped []*m.Requirement
}

// requirementSet keeps requirements unique by UID in insertion order.
type requirementSet struct {
	order []*m.Requirement
	seen  map[string]struct{}
}

func newRequirementSet() *requirementSet {
	return &requirementSet{seen: make(map[string]struct{})}
}

func (s *requirementSet) add(req *m.Requirement) {
	if _, ok := s.seen[req.UID]; ok {
		return
	}

	s.seen[req.UID] = struct{}{}
	s.order = append(s.order, req)
}

func (s *requirementSet) contains(uid string) bool {
	_, ok := s.seen[uid]
	return ok
}

// NewFileTraceabilityIndex creates an empty index.
func NewFileTraceabilityIndex(opts ...IndexOption) *FileTraceabilityIndex {
	idx := &FileTraceabilityIndex{
		requirements:    make(map[string]*m.Requirement),
		pathsToReqs:     make(map[m.Path]*requirementSet),
		reqsToFileRefs:  make(map[string][]m.FileReference),
		fileInfos:       make(map[m.Path]*m.TraceabilityInfo),
		pendingNames:    make(map[m.Path]map[string][]string),
		functionMarkers: make(map[m.Path]map[string][]*m.Marker),
		splitCache:      make(map[m.Path]requirementSplit),
	}

	for _, opt := range opts {
		opt(idx)
	}

	return idx
}

// RegisterRequirement indexes the file relations of req. Registering a UID
// that is already indexed is a no-op, so callers may invoke it once per
// relation. Explicit ranges are validated before anything is recorded.
func (idx *FileTraceabilityIndex) RegisterRequirement(req *m.Requirement) error {
	if idx.finalized {
		return ErrIndexFinalized
	}

	if req == nil || req.UID == "" {
		return ErrEmptyUID
	}

	if _, ok := idx.requirements[req.UID]; ok {
		return nil
	}

	refs := req.FileReferences()
	for i := range refs {
		refs[i].Path = m.NormalizePath(string(refs[i].Path))

		if refs[i].Range != nil && !refs[i].Range.Valid() {
			return &InvalidRangeError{RequirementUID: req.UID, Path: refs[i].Path, Range: *refs[i].Range}
		}
	}

	idx.requirements[req.UID] = req
	idx.requirementOrder = append(idx.requirementOrder, req)

	for _, ref := range refs {
		idx.linkRequirementToFile(req, ref)

		if name, ok := ref.BindingName(); ok {
			idx.bindName(ref.Path, name, req.UID)
			continue
		}

		if ref.Range != nil {
			idx.pendingRanges = append(idx.pendingRanges, rangeBinding{uid: req.UID, path: ref.Path, lines: *ref.Range})
		}
	}

	slog.Debug("registered requirement", "uid", req.UID, "fileRefs", len(refs))

	return nil
}

// RegisterFileInfo stores the scan of one file and resolves the function and
// class bindings waiting for it.
func (idx *FileTraceabilityIndex) RegisterFileInfo(scan m.SourceFileScan) error {
	if idx.finalized {
		return ErrIndexFinalized
	}

	scan.Path = m.NormalizePath(string(scan.Path))

	if _, ok := idx.fileInfos[scan.Path]; ok {
		return &DuplicateFileRegistrationError{Path: scan.Path}
	}

	info := m.NewTraceabilityInfo(scan)
	idx.fileInfos[scan.Path] = info

	pending := idx.pendingNames[scan.Path]
	resolved := make(map[string]struct{})

	for _, entry := range info.Functions {
		uids, ok := pending[entry.Name]
		if !ok {
			continue
		}

		idx.synthesizeFunctionMarker(info, entry, uids)
		resolved[entry.Name] = struct{}{}
	}

	for name := range resolved {
		delete(pending, name)
	}

	if len(pending) == 0 {
		delete(idx.pendingNames, scan.Path)
	}

	slog.Debug("registered file", "path", scan.Path, "lines", scan.TotalLines,
		"functions", len(scan.Functions), "markers", len(scan.Markers), "resolvedBindings", len(resolved))

	return nil
}

func (idx *FileTraceabilityIndex) linkRequirementToFile(req *m.Requirement, ref m.FileReference) {
	reqs, ok := idx.pathsToReqs[ref.Path]
	if !ok {
		reqs = newRequirementSet()
		idx.pathsToReqs[ref.Path] = reqs
	}

	reqs.add(req)
	idx.reqsToFileRefs[req.UID] = append(idx.reqsToFileRefs[req.UID], ref)
}

// bindName records a function or class binding. When the file is already
// registered the binding is resolved on the spot; otherwise it waits for
// RegisterFileInfo.
func (idx *FileTraceabilityIndex) bindName(path m.Path, name, uid string) {
	if info, ok := idx.fileInfos[path]; ok {
		if idx.resolveLateBinding(info, name, uid) {
			return
		}
	}

	names, ok := idx.pendingNames[path]
	if !ok {
		names = make(map[string][]string)
		idx.pendingNames[path] = names
	}

	names[name] = append(names[name], uid)
}

// resolveLateBinding attaches uid to the entries of an already registered
// file. Markers in functionMarkers are synthesized by the index and only
// reach callers through queries after Finalize, when registration is closed,
// so appending to their ReqUIDs here is never observed.
func (idx *FileTraceabilityIndex) resolveLateBinding(info *m.TraceabilityInfo, name, uid string) bool {
	if markers := idx.functionMarkers[info.Path][name]; len(markers) > 0 {
		for _, marker := range markers {
			if marker.HasRequirement(uid) {
				continue
			}

			marker.ReqUIDs = append(marker.ReqUIDs, uid)
			info.MarkersByRequirement[uid] = append(info.MarkersByRequirement[uid], marker)
		}

		return true
	}

	found := false

	for _, entry := range info.Functions {
		if entry.Name != name {
			continue
		}

		idx.synthesizeFunctionMarker(info, entry, []string{uid})
		found = true
	}

	return found
}

func (idx *FileTraceabilityIndex) synthesizeFunctionMarker(info *m.TraceabilityInfo, entry m.FunctionEntry, uids []string) {
	uids = uniqueStrings(uids)
	marker := &m.Marker{
		Kind:           m.ForwardFunctionRangeMarker,
		ReqUIDs:        uids,
		SourceLine:     entry.LineBegin,
		SourceColumn:   1,
		RangeLineBegin: entry.LineBegin,
		RangeLineEnd:   entry.LineEnd,
	}

	info.AddMarker(marker, uids...)

	names, ok := idx.functionMarkers[info.Path]
	if !ok {
		names = make(map[string][]*m.Marker)
		idx.functionMarkers[info.Path] = names
	}

	names[entry.Name] = append(names[entry.Name], marker)
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}
		out = append(out, value)
	}

	return out
}

// Finalized reports whether Finalize completed successfully.
func (idx *FileTraceabilityIndex) Finalized() bool {
	return idx.finalized
}

func (idx *FileTraceabilityIndex) String() string {
	return fmt.Sprintf("FileTraceabilityIndex{requirements: %d, files: %d, finalized: %t}",
		len(idx.requirements), len(idx.fileInfos), idx.finalized)
}
