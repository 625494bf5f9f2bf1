package model

import "errors"

// ErrCoverageAlreadySet is returned when coverage stats are stored twice.
var ErrCoverageAlreadySet = errors.New("coverage stats already set")

// TraceabilityInfo holds every marker of one file, embedded and synthesized,
// together with the coverage derived from them.
type TraceabilityInfo struct {
	Path       Path
	TotalLines int
	Functions  []FunctionEntry

	// Markers is the full marker timeline of the file, sorted by
	// RangeLineBegin once the index is finalized.
	Markers []*Marker

	// MarkersByRequirement indexes begin markers by the UIDs they carry.
	MarkersByRequirement map[string][]*Marker

	// CoveredLines is the number of lines spanned by merged documented ranges.
	CoveredLines int

	coverageSet bool
}

// NewTraceabilityInfo wraps a scan. Embedded markers are copied into the
// marker timeline; begin markers are indexed by the UIDs they carry.
func NewTraceabilityInfo(scan SourceFileScan) *TraceabilityInfo {
	info := &TraceabilityInfo{
		Path:                 scan.Path,
		TotalLines:           scan.TotalLines,
		Functions:            append([]FunctionEntry(nil), scan.Functions...),
		Markers:              make([]*Marker, 0, len(scan.Markers)),
		MarkersByRequirement: make(map[string][]*Marker),
	}

	for _, marker := range scan.Markers {
		info.Markers = append(info.Markers, marker)

		if !marker.IsBegin() {
			continue
		}

		for _, uid := range marker.ReqUIDs {
			info.MarkersByRequirement[uid] = append(info.MarkersByRequirement[uid], marker)
		}
	}

	return info
}

// AddMarker appends a marker to the timeline and indexes it under uids.
func (ti *TraceabilityInfo) AddMarker(marker *Marker, uids ...string) {
	ti.Markers = append(ti.Markers, marker)

	for _, uid := range uids {
		ti.MarkersByRequirement[uid] = append(ti.MarkersByRequirement[uid], marker)
	}
}

// MarkersFor returns the markers documenting uid in this file.
func (ti *TraceabilityInfo) MarkersFor(uid string) []*Marker {
	return ti.MarkersByRequirement[uid]
}

// FindFunction returns the first entry with the given name.
func (ti *TraceabilityInfo) FindFunction(name string) (FunctionEntry, bool) {
	for _, fn := range ti.Functions {
		if fn.Name == name {
			return fn, true
		}
	}

	return FunctionEntry{}, false
}

// SetCoverageStats stores the line totals. It may be called only once.
func (ti *TraceabilityInfo) SetCoverageStats(totalLines, coveredLines int) error {
	if ti.coverageSet {
		return ErrCoverageAlreadySet
	}

	ti.TotalLines = totalLines
	ti.CoveredLines = coveredLines
	ti.coverageSet = true

	return nil
}

// CoverageComputed reports whether SetCoverageStats has run.
func (ti *TraceabilityInfo) CoverageComputed() bool {
	return ti.coverageSet
}

// CoverageRatio returns covered/total lines in the range [0, 1]. A file
// without lines has zero coverage.
func (ti *TraceabilityInfo) CoverageRatio() float64 {
	if ti.TotalLines <= 0 {
		return 0.0
	}

	return float64(ti.CoveredLines) / float64(ti.TotalLines)
}

// CoverageSummary aggregates coverage over all files of an index.
type CoverageSummary struct {
	Files        int
	TotalLines   int
	CoveredLines int
}

// Ratio returns covered/total lines across files, zero when there are no lines.
func (s CoverageSummary) Ratio() float64 {
	if s.TotalLines <= 0 {
		return 0.0
	}

	return float64(s.CoveredLines) / float64(s.TotalLines)
}
