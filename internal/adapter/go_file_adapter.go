package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the scanner can extract
// function and type entries and the markers written in comments.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// ExtractEntries returns the functions, methods and type declarations
	// of a parsed file in source order.
	ExtractEntries(fileSet *token.FileSet, file *ast.File) []GoEntry

	// Scan parses src and returns the structural scan of the file.
	Scan(ctx context.Context, path m.Path, src []byte) (m.SourceFileScan, error)
}

// GoEntry is a function entry together with the first line of its doc
// comment, so that markers written in the doc comment attach to it.
type GoEntry struct {
	m.FunctionEntry
	DocBegin int
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// ExtractEntries records functions as function entries and type specs as
// class entries. Methods are named "Receiver.Method".
func (a *LocalGoFileAdapter) ExtractEntries(fileSet *token.FileSet, file *ast.File) []GoEntry {
	var entries []GoEntry

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			entries = append(entries, GoEntry{
				FunctionEntry: m.FunctionEntry{
					Name:      funcName(d),
					Kind:      m.EntryFunction,
					LineBegin: fileSet.Position(d.Pos()).Line,
					LineEnd:   fileSet.Position(d.End()).Line,
				},
				DocBegin: docBegin(fileSet, d.Doc, d.Pos()),
			})

		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}

			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				// A lone spec owns the whole declaration and its doc comment.
				var (
					node ast.Node = ts
					doc           = ts.Doc
				)

				if len(d.Specs) == 1 {
					node = d
					doc = d.Doc
				}

				entries = append(entries, GoEntry{
					FunctionEntry: m.FunctionEntry{
						Name:      ts.Name.Name,
						Kind:      m.EntryClass,
						LineBegin: fileSet.Position(node.Pos()).Line,
						LineEnd:   fileSet.Position(node.End()).Line,
					},
					DocBegin: docBegin(fileSet, doc, node.Pos()),
				})
			}
		}
	}

	return entries
}

// Scan parses a Go file and collects its entries and comment markers.
func (a *LocalGoFileAdapter) Scan(ctx context.Context, path m.Path, src []byte) (m.SourceFileScan, error) {
	fileSet := token.NewFileSet()

	file, err := a.Parse(ctx, fileSet, string(path), src)
	if err != nil {
		return m.SourceFileScan{}, fmt.Errorf("parse %s: %w", path, err)
	}

	entries := a.ExtractEntries(fileSet, file)

	markers, err := buildMarkers(path, goComments(fileSet, file), entryResolver(entries))
	if err != nil {
		return m.SourceFileScan{}, err
	}

	functions := make([]m.FunctionEntry, 0, len(entries))
	for _, entry := range entries {
		functions = append(functions, entry.FunctionEntry)
	}

	return m.SourceFileScan{
		Path:       path,
		TotalLines: countLines(src),
		Functions:  functions,
		Markers:    markers,
	}, nil
}

func funcName(d *ast.FuncDecl) string {
	if d.Recv == nil || len(d.Recv.List) == 0 {
		return d.Name.Name
	}

	return receiverName(d.Recv.List[0].Type) + "." + d.Name.Name
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	case *ast.Ident:
		return t.Name
	}

	return ""
}

func docBegin(fileSet *token.FileSet, doc *ast.CommentGroup, pos token.Pos) int {
	if doc == nil {
		return fileSet.Position(pos).Line
	}

	return fileSet.Position(doc.Pos()).Line
}

func goComments(fileSet *token.FileSet, file *ast.File) []commentLine {
	var comments []commentLine

	for _, group := range file.Comments {
		for _, c := range group.List {
			pos := fileSet.Position(c.Pos())

			for i, text := range strings.Split(c.Text, "\n") {
				column := 1
				if i == 0 {
					column = pos.Column
				}

				comments = append(comments, commentLine{line: pos.Line + i, column: column, text: text})
			}
		}
	}

	return comments
}

// entryResolver attaches a function marker to the innermost entry enclosing
// its line, or to the entry whose doc comment contains it.
func entryResolver(entries []GoEntry) functionResolver {
	return func(line int) (m.FunctionEntry, bool) {
		var (
			best  m.FunctionEntry
			found bool
		)

		for _, entry := range entries {
			inBody := line >= entry.LineBegin && line <= entry.LineEnd
			inDoc := line >= entry.DocBegin && line < entry.LineBegin

			if !inBody && !inDoc {
				continue
			}

			if !found || entry.LineEnd-entry.LineBegin < best.LineEnd-best.LineBegin {
				best = entry.FunctionEntry
				found = true
			}
		}

		return best, found
	}
}
