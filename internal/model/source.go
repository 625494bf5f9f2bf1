// Package model defines the data structures shared by the traceability index,
// the source scanners and the output layer.
package model

import (
	"path"
	"strings"
)

// Path represents a slash-separated, project-relative file path.
type Path string

// NormalizePath converts a path to the canonical form used as index key:
// forward slashes, no leading "./", no redundant separators.
func NormalizePath(p string) Path {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return ""
	}

	return Path(strings.TrimPrefix(path.Clean(p), "./"))
}

// EntryKind tells function entries and class/type entries apart. Both share
// the same name-keyed lookup when bindings are resolved.
type EntryKind string

const (
	// EntryFunction represents functions and methods.
	EntryFunction EntryKind = "function"
	// EntryClass represents classes, or type declarations in Go sources.
	EntryClass EntryKind = "class"
)

// FunctionEntry is a named structural element detected by a scanner.
type FunctionEntry struct {
	Name      string
	Kind      EntryKind
	LineBegin int
	LineEnd   int
}

// SourceFileScan is the structural information a scanner extracts from one file.
type SourceFileScan struct {
	Path       Path
	TotalLines int
	Functions  []FunctionEntry
	Markers    []*Marker
}
