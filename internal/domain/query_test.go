package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

func TestQueries_RequireFinalize(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", wholeFile("a.go"))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil)))

	_, err := idx.FileLinksForRequirement("REQ-1")
	assert.ErrorIs(t, err, ErrIndexNotFinalized)

	_, _, err = idx.SplitRequirementsForFile("a.go")
	assert.ErrorIs(t, err, ErrIndexNotFinalized)

	_, err = idx.CoverageInfo("a.go")
	assert.ErrorIs(t, err, ErrIndexNotFinalized)

	_, err = idx.Summary()
	assert.ErrorIs(t, err, ErrIndexNotFinalized)

	assert.False(t, idx.HasRequirements("a.go"))
}

func TestHasRequirements(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	run := m.FunctionEntry{Name: "Run", Kind: m.EntryFunction, LineBegin: 2, LineEnd: 4}

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", functionRef("a.go", "Run"))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, []m.FunctionEntry{run})))
	require.NoError(t, idx.RegisterFileInfo(fileScan("b.go", 10, nil)))
	require.NoError(t, idx.Finalize())

	assert.True(t, idx.HasRequirements("a.go"))
	assert.True(t, idx.HasRequirements("./a.go"))
	assert.False(t, idx.HasRequirements("b.go"))
	assert.False(t, idx.HasRequirements("c.go"))
}

func TestHasRequirements_FalseUntilFinalized(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	line := &m.Marker{
		Kind: m.LineMarker, ReqUIDs: []string{"REQ-1"},
		SourceLine: 3, SourceColumn: 1, RangeLineBegin: 3, RangeLineEnd: 3,
	}

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", wholeFile("a.go"))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil)))
	require.NoError(t, idx.RegisterFileInfo(fileScan("b.go", 10, nil, line)))

	assert.False(t, idx.HasRequirements("a.go"))
	assert.False(t, idx.HasRequirements("b.go"))

	require.NoError(t, idx.Finalize())

	assert.True(t, idx.HasRequirements("a.go"))
	assert.True(t, idx.HasRequirements("b.go"))
}

func TestFileLinksForRequirement(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1",
		wholeFile("a.go"),
		rangeRef("a.go", 1, 3),
		wholeFile("b.go"),
	)))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil)))
	require.NoError(t, idx.RegisterFileInfo(fileScan("b.go", 10, nil)))
	require.NoError(t, idx.Finalize())

	links, err := idx.FileLinksForRequirement("REQ-1")
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, m.Path("a.go"), links[0].Reference.Path)
	assert.True(t, links[0].Reference.IsWholeFile())
	require.Len(t, links[0].Markers, 1)
	assert.Equal(t, m.LineRange{Start: 1, End: 3}, links[0].Markers[0].Range())

	assert.Equal(t, m.Path("b.go"), links[1].Reference.Path)
	assert.Nil(t, links[1].Markers)
}

func TestFileLinksForRequirement_UnknownUID(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	require.NoError(t, idx.Finalize())

	links, err := idx.FileLinksForRequirement("REQ-404")
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestSplitRequirementsForFile(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	marker := &m.Marker{Kind: m.LineMarker, ReqUIDs: []string{"REQ-3"}, SourceLine: 7, RangeLineBegin: 7, RangeLineEnd: 7}

	req1 := requirement("REQ-1", wholeFile("a.go"))
	req2 := requirement("REQ-2", rangeRef("a.go", 2, 4))
	req3 := requirement("REQ-3")
	req4 := requirement("REQ-4", functionRef("a.go", "Run"))

	for _, req := range []*m.Requirement{req1, req2, req3, req4} {
		require.NoError(t, idx.RegisterRequirement(req))
	}

	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 20, []m.FunctionEntry{
		{Name: "Run", Kind: m.EntryFunction, LineBegin: 10, LineEnd: 15},
	}, marker)))
	require.NoError(t, idx.RegisterFileInfo(fileScan("untraced.go", 5, nil)))
	require.NoError(t, idx.Finalize())

	general, rangeScoped, err := idx.SplitRequirementsForFile("a.go")
	require.NoError(t, err)
	assert.Equal(t, []*m.Requirement{req1}, general)
	assert.Equal(t, []*m.Requirement{req2, req4, req3}, rangeScoped)

	general, rangeScoped, err = idx.SplitRequirementsForFile("untraced.go")
	require.NoError(t, err)
	assert.Nil(t, general)
	assert.Nil(t, rangeScoped)

	_, _, err = idx.SplitRequirementsForFile("missing.go")
	assert.ErrorIs(t, err, ErrUnknownFile)
}

func TestSplitRequirementsForFile_RangeAndWholeFileOnSameRequirement(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	req := requirement("REQ-1", wholeFile("a.go"), rangeRef("a.go", 3, 5))

	require.NoError(t, idx.RegisterRequirement(req))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil)))
	require.NoError(t, idx.Finalize())

	general, rangeScoped, err := idx.SplitRequirementsForFile("a.go")
	require.NoError(t, err)
	assert.Empty(t, general)
	assert.Equal(t, []*m.Requirement{req}, rangeScoped)
}

func TestCoverageInfo_UnknownFile(t *testing.T) {
	idx := NewFileTraceabilityIndex()
	require.NoError(t, idx.Finalize())

	_, err := idx.CoverageInfo("nowhere.go")
	assert.ErrorIs(t, err, ErrUnknownFile)
}

func TestSummary(t *testing.T) {
	idx := NewFileTraceabilityIndex()

	require.NoError(t, idx.RegisterRequirement(requirement("REQ-1", rangeRef("a.go", 1, 5), rangeRef("b.go", 1, 10))))
	require.NoError(t, idx.RegisterFileInfo(fileScan("a.go", 10, nil)))
	require.NoError(t, idx.RegisterFileInfo(fileScan("b.go", 30, nil)))
	require.NoError(t, idx.Finalize())

	summary, err := idx.Summary()
	require.NoError(t, err)
	assert.Equal(t, m.CoverageSummary{Files: 2, TotalLines: 40, CoveredLines: 15}, summary)
	assert.InDelta(t, 0.375, summary.Ratio(), 1e-9)
	assert.Equal(t, []m.Path{"a.go", "b.go"}, idx.Files())
}
