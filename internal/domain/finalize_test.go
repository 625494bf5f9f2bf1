package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

func TestFinalize_ResolvesExplicitRanges(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	line := &m.Marker{Kind: m.LineMarker, ReqUIDs: []string{"REQ-2"}, SourceLine: 2, RangeLineBegin: 2, RangeLineEnd: 2}

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", rangeRef("a.go", 10, 20))))
	require.NoError(t, idx.RegisterRequirement(requirement("REQ-2", wholeFile("a.go"))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 40, nil, line)))
	require.NoError(t, idx.Finalize())

	info, err := idx.CoverageInfo("a.go")
	require.NoError(t, err)
	require.Len(t, info.Markers, 3)

	assert.Same(t, line, info.Markers[0])

	begin, end := info.Markers[1], info.Markers[2]
	assert.Equal(t, m.ForwardRangeMarker, begin.Kind)
	assert.True(t, begin.IsBegin())
	assert.Equal(t, 10, begin.SourceLine)
	assert.False(t, end.IsBegin())
	assert.Equal(t, 20, end.SourceLine)
	assert.Equal(t, m.LineRange{Start: 10, End: 20}, end.Range())

	assert.Equal(t, []*m.Marker{begin}, info.MarkersFor("REQ-1"))
	assert.Equal(t, 12, info.CoveredLines)
	assert.True(t, info.CoverageComputed())
	assert.InDelta(t, 0.3, info.CoverageRatio(), 1e-9)
	assert.Empty(t, idx.pendingRanges)
}

func TestFinalize_SortsMarkersByRangeStart(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	late := &m.Marker{Kind: m.LineMarker, ReqUIDs: []string{"REQ-1"}, SourceLine: 30, RangeLineBegin: 30, RangeLineEnd: 30}
	early := &m.Marker{Kind: m.FunctionRangeMarker, ReqUIDs: []string{"REQ-1"}, SourceLine: 4, RangeLineBegin: 5, RangeLineEnd: 9}

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", rangeRef("a.go", 12, 14))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 40, nil, late, early)))
	require.NoError(t, idx.Finalize())

	info, err := idx.CoverageInfo("a.go")
	require.NoError(t, err)

	var starts []int
	for _, marker := range info.Markers {
		starts = append(starts, marker.RangeLineBegin)
	}

	assert.Equal(t, []int{5, 12, 12, 30}, starts)
	assert.Equal(t, 5+3+1, info.CoveredLines)
}

func TestFinalize_OverlappingRangesCountedOnce(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", rangeRef("a.go", 10, 20))))
	require.NoError(t, idx.RegisterRequirement(requirement("REQ-2", rangeRef("a.go", 15, 25))))
	require.NoError(t, idx.RegisterRequirement(requirement("REQ-3", rangeRef("a.go", 26, 30))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 100, nil)))
	require.NoError(t, idx.Finalize())

	info, err := idx.CoverageInfo("a.go")
	require.NoError(t, err)
	assert.Equal(t, 21, info.CoveredLines)
	assert.LessOrEqual(t, info.CoveredLines, info.TotalLines)
}

func TestFinalize_ZeroLineFile(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", wholeFile("empty.go"))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("empty.go", 0, nil)))
	require.NoError(t, idx.Finalize())

	info, err := idx.CoverageInfo("empty.go")
	require.NoError(t, err)
	assert.Equal(t, 0, info.CoveredLines)
	assert.Equal(t, 0.0, info.CoverageRatio())
}

func TestFinalize_DanglingFileReference(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", wholeFile("missing.go"), rangeRef("missing.go", 1, 2))))

	err := idx.Finalize()
	require.ErrorIs(t, err, ErrDanglingFileReference)

	var danglingErr *DanglingFileReferenceError
	require.ErrorAs(t, err, &danglingErr)
	assert.Equal(t, "REQ-1", danglingErr.RequirementUID)
	assert.Equal(t, m.Path("missing.go"), danglingErr.Path)
	assert.Len(t, joinedErrors(err), 1)
	assert.Contains(t, err.Error(), "requirement REQ-1 references a file that does not exist: missing.go")
	assert.False(t, idx.Finalized())
}

func TestFinalize_DanglingRequirementReference(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	marker := &m.Marker{Kind: m.LineMarker, ReqUIDs: []string{"REQ-404", "REQ-404"}, SourceLine: 3, RangeLineBegin: 3, RangeLineEnd: 3}

	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil, marker)))

	err := idx.Finalize()
	require.ErrorIs(t, err, ErrDanglingRequirementReference)

	var danglingErr *DanglingRequirementReferenceError
	require.ErrorAs(t, err, &danglingErr)
	assert.Equal(t, m.Path("a.go"), danglingErr.Path)
	assert.Equal(t, "REQ-404", danglingErr.RequirementUID)
	assert.Len(t, joinedErrors(err), 1)
	assert.Contains(t, err.Error(), "source file a.go references a requirement that does not exist: REQ-404")
}

func TestFinalize_ReportsAllProblems(t *testing.T) {
	idx := NewFileTraceabilityIndex(WithStrictBindings())
	marker := &m.Marker{Kind: m.LineMarker, ReqUIDs: []string{"REQ-404"}, SourceLine: 3, RangeLineBegin: 3, RangeLineEnd: 3}

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", wholeFile("missing.go"))))
	require.NoError(t, idx.RegisterRequirement(requirement("REQ-2", functionRef("a.go", "Absent"))))
	require.NoError(t, idx.RegisterRequirement(requirement("REQ-3", rangeRef("a.go", 5, 50))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil, marker)))

	err := idx.Finalize()
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrDanglingFileReference)
	assert.ErrorIs(t, err, ErrDanglingRequirementReference)
	assert.ErrorIs(t, err, ErrUnresolvedNameBinding)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
	assert.Len(t, joinedErrors(err), 4)

	var nameErr *UnresolvedNameBindingError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "REQ-2", nameErr.RequirementUID)
	assert.Equal(t, "Absent", nameErr.Name)

	var boundsErr *RangeOutOfBoundsError
	require.ErrorAs(t, err, &boundsErr)
	assert.Equal(t, 10, boundsErr.TotalLines)
	assert.Equal(t, m.LineRange{Start: 5, End: 50}, boundsErr.Range)
}

func TestFinalize_IgnoresUnmatchedBindingsByDefault(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-2", functionRef("a.go", "Absent"))))
	require.NoError(t, idx.RegisterRequirement(requirement("REQ-3", rangeRef("a.go", 5, 50))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil)))
	require.NoError(t, idx.Finalize())

	info, err := idx.CoverageInfo("a.go")
	require.NoError(t, err)
	assert.Equal(t, 6, info.CoveredLines)
	assert.Equal(t, 10, info.TotalLines)

	general, rangeScoped, err := idx.SplitRequirementsForFile("a.go")
	require.NoError(t, err)
	require.Len(t, general, 1)
	assert.Equal(t, "REQ-2", general[0].UID)
	require.Len(t, rangeScoped, 1)
	assert.Equal(t, "REQ-3", rangeScoped[0].UID)
}

func TestFinalize_CanRetryAfterFailure(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", wholeFile("a.go"), rangeRef("b.go", 2, 4))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil)))

	require.ErrorIs(t, idx.Finalize(), ErrDanglingFileReference)
	require.NoError(t, idx.RegisterFileInfo(fileScan("b.go", 10, nil)))
	require.NoError(t, idx.Finalize())

	info, err := idx.CoverageInfo("b.go")
	require.NoError(t, err)
	assert.Equal(t, 3, info.CoveredLines)
	assert.Len(t, info.Markers, 2)
}

func TestFinalize_LinksRequirementsFromInCodeMarkers(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	marker := &m.Marker{Kind: m.FunctionRangeMarker, ReqUIDs: []string{"REQ-1"}, SourceLine: 4, RangeLineBegin: 5, RangeLineEnd: 9}

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1")))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 20, nil, marker)))

	assert.False(t, idx.HasRequirements("a.go"))
	require.NoError(t, idx.Finalize())
	assert.True(t, idx.HasRequirements("a.go"))

	links, err := idx.FileLinksForRequirement("REQ-1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.True(t, links[0].Reference.Implicit)
	assert.Equal(t, m.Path("a.go"), links[0].Reference.Path)
	assert.Equal(t, []*m.Marker{marker}, links[0].Markers)
}

func joinedErrors(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}

	return []error{err}
}
