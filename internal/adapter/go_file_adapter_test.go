package adapter

import (
	"context"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

const sampleGoSource = `package sample

// Parse reads input.
// @relation(REQ-1, scope=function)
func Parse() error {
	return nil
}

// @relation(REQ-2, scope=range_start)
type Parser struct {
	name string
}

// @relation(REQ-2, scope=range_end)

func (p *Parser) Name() string {
	// @relation(REQ-3, scope=line)
	return p.name
}
`

func TestLocalGoFileAdapter_Parse(t *testing.T) {
	adapter := NewLocalGoFileAdapter()
	fset := token.NewFileSet()

	file, err := adapter.Parse(context.Background(), fset, "sample.go", []byte(sampleGoSource))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if file.Name.Name != "sample" {
		t.Fatalf("Parse() package = %s, want sample", file.Name.Name)
	}
}

func TestLocalGoFileAdapter_Parse_InvalidSource(t *testing.T) {
	adapter := NewLocalGoFileAdapter()
	fset := token.NewFileSet()

	if _, err := adapter.Parse(context.Background(), fset, "broken.go", []byte("package foo\n func")); err == nil {
		t.Fatalf("Parse() expected error for invalid source")
	}
}

func TestLocalGoFileAdapter_Parse_ContextCancellation(t *testing.T) {
	adapter := NewLocalGoFileAdapter()
	fset := token.NewFileSet()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	if _, err := adapter.Parse(ctx, fset, "example.go", []byte("package main\n func main() {}")); err == nil {
		t.Fatalf("Parse() expected error due to context cancellation")
	}
}

func TestLocalGoFileAdapter_ExtractEntries(t *testing.T) {
	adapter := NewLocalGoFileAdapter()
	fset := token.NewFileSet()

	src := `package sample

type (
	A struct{}
	B interface {
		Do()
	}
)

type List[T any] struct{}

func (l *List[T]) Len() int { return 0 }

func (A) Value() {}
`

	file, err := adapter.Parse(context.Background(), fset, "entries.go", []byte(src))
	require.NoError(t, err)

	entries := adapter.ExtractEntries(fset, file)

	var got []m.FunctionEntry
	for _, entry := range entries {
		got = append(got, entry.FunctionEntry)
	}

	assert.Equal(t, []m.FunctionEntry{
		{Name: "A", Kind: m.EntryClass, LineBegin: 4, LineEnd: 4},
		{Name: "B", Kind: m.EntryClass, LineBegin: 5, LineEnd: 7},
		{Name: "List", Kind: m.EntryClass, LineBegin: 10, LineEnd: 10},
		{Name: "List.Len", Kind: m.EntryFunction, LineBegin: 12, LineEnd: 12},
		{Name: "A.Value", Kind: m.EntryFunction, LineBegin: 14, LineEnd: 14},
	}, got)
}

func TestLocalGoFileAdapter_Scan(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	scan, err := adapter.Scan(context.Background(), "sample.go", []byte(sampleGoSource))
	require.NoError(t, err)

	assert.Equal(t, m.Path("sample.go"), scan.Path)
	assert.Equal(t, 19, scan.TotalLines)
	assert.Equal(t, []m.FunctionEntry{
		{Name: "Parse", Kind: m.EntryFunction, LineBegin: 5, LineEnd: 7},
		{Name: "Parser", Kind: m.EntryClass, LineBegin: 10, LineEnd: 12},
		{Name: "Parser.Name", Kind: m.EntryFunction, LineBegin: 16, LineEnd: 19},
	}, scan.Functions)

	require.Len(t, scan.Markers, 4)

	function := scan.Markers[0]
	assert.Equal(t, m.FunctionRangeMarker, function.Kind)
	assert.Equal(t, []string{"REQ-1"}, function.ReqUIDs)
	assert.Equal(t, 4, function.SourceLine)
	assert.Equal(t, 4, function.SourceColumn)
	assert.Equal(t, m.LineRange{Start: 5, End: 7}, function.Range())

	start, end := scan.Markers[1], scan.Markers[2]
	assert.True(t, start.IsBegin())
	assert.False(t, end.IsBegin())
	assert.Equal(t, m.LineRange{Start: 9, End: 14}, start.Range())
	assert.Equal(t, m.LineRange{Start: 9, End: 14}, end.Range())

	line := scan.Markers[3]
	assert.Equal(t, m.LineMarker, line.Kind)
	assert.Equal(t, m.LineRange{Start: 17, End: 17}, line.Range())
	assert.Equal(t, 5, line.SourceColumn)
}

func TestLocalGoFileAdapter_Scan_FunctionMarkerOutsideFunction(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	src := "package sample\n\n// @relation(REQ-1, scope=function)\n\nvar x = 1\n"

	_, err := adapter.Scan(context.Background(), "sample.go", []byte(src))

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 3, scanErr.Line)
	assert.Equal(t, "sample.go:3: function marker is not attached to a function", scanErr.Error())
}

func TestLocalGoFileAdapter_Scan_BlockComment(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	src := `package sample

/*
Notes.
@relation(REQ-1, scope=line)
*/
func Run() {}
`

	scan, err := adapter.Scan(context.Background(), "sample.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, scan.Markers, 1)
	assert.Equal(t, 5, scan.Markers[0].SourceLine)
	assert.Equal(t, 1, scan.Markers[0].SourceColumn)
}
