package adapter

import (
	"bytes"
	"context"
	"path"
	"strings"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// SourceScanner produces the structural scan of one source file.
type SourceScanner interface {
	Scan(ctx context.Context, path m.Path, content []byte) (m.SourceFileScan, error)
}

// ExtensionScanner scans Go files structurally and every other file line by line.
type ExtensionScanner struct {
	goFiles GoFileAdapter
}

// NewExtensionScanner constructs an ExtensionScanner using goFiles for .go sources.
func NewExtensionScanner(goFiles GoFileAdapter) *ExtensionScanner {
	return &ExtensionScanner{goFiles: goFiles}
}

// Scan dispatches on the file extension.
func (s *ExtensionScanner) Scan(ctx context.Context, p m.Path, content []byte) (m.SourceFileScan, error) {
	if path.Ext(string(p)) == ".go" {
		return s.goFiles.Scan(ctx, p, content)
	}

	return scanText(ctx, p, content)
}

// commentLeaders open a comment in the text formats scanned line by line.
var commentLeaders = []string{"//", "/*", "<!--", "#", "--", ";"}

// scanText reads markers from the comment part of every line. Text files
// have no structural entries, so function-scoped markers are rejected.
func scanText(ctx context.Context, p m.Path, content []byte) (m.SourceFileScan, error) {
	if err := ctx.Err(); err != nil {
		return m.SourceFileScan{}, err
	}

	lines := strings.Split(string(content), "\n")
	comments := make([]commentLine, 0, len(lines))

	for i, text := range lines {
		start, ok := commentStart(text)
		if !ok || !strings.Contains(text[start:], "@relation") {
			continue
		}

		comments = append(comments, commentLine{line: i + 1, column: start + 1, text: text[start:]})
	}

	markers, err := buildMarkers(p, comments, nil)
	if err != nil {
		return m.SourceFileScan{}, err
	}

	return m.SourceFileScan{
		Path:       p,
		TotalLines: countLines(content),
		Markers:    markers,
	}, nil
}

// commentStart returns the byte offset where the comment of line begins.
// A line starting with "*" continues a block comment.
func commentStart(line string) (int, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "*") {
		return len(line) - len(trimmed), true
	}

	start := -1

	for _, leader := range commentLeaders {
		if i := strings.Index(line, leader); i >= 0 && (start < 0 || i < start) {
			start = i
		}
	}

	return start, start >= 0
}

// countLines counts newline-terminated lines plus a trailing unterminated one.
func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}

	lines := bytes.Count(content, []byte("\n"))
	if content[len(content)-1] != '\n' {
		lines++
	}

	return lines
}
