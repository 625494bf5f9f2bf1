package domain

import (
	"sort"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// sortMarkers orders a marker timeline by the first line of the documented
// range. Markers starting on the same line keep their relative order.
func sortMarkers(markers []*m.Marker) {
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].RangeLineBegin < markers[j].RangeLineBegin
	})
}

// mergeCoveredRanges folds the documented ranges of a sorted timeline into
// disjoint intervals. Only begin markers count and NoDoc markers are skipped.
// Overlapping and line-adjacent ranges are merged.
func mergeCoveredRanges(sorted []*m.Marker) []m.LineRange {
	var merged []m.LineRange

	for _, marker := range sorted {
		if marker.NoDoc || !marker.IsBegin() {
			continue
		}

		begin, end := marker.RangeLineBegin, marker.RangeLineEnd

		if last := len(merged) - 1; last >= 0 && merged[last].End >= begin-1 {
			merged[last].End = max(merged[last].End, end)
			continue
		}

		merged = append(merged, m.LineRange{Start: begin, End: end})
	}

	return merged
}

// countCoveredLines counts the merged lines that lie inside a file of
// totalLines lines.
func countCoveredLines(ranges []m.LineRange, totalLines int) int {
	covered := 0

	for _, lines := range ranges {
		if lines.Start > totalLines {
			break
		}

		lines.End = min(lines.End, totalLines)
		covered += lines.Len()
	}

	return covered
}
