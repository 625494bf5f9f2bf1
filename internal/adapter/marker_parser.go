package adapter

import (
	"fmt"
	"regexp"
	"strings"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// Marker scopes accepted in `@relation(..., scope=...)` annotations.
const (
	scopeFunction   = "function"
	scopeLine       = "line"
	scopeRangeStart = "range_start"
	scopeRangeEnd   = "range_end"

	nodocKeyword = "nodoc"
)

var relationPattern = regexp.MustCompile(`@relation\(([^)]*)\)`)

// ScanError reports a malformed marker in a source file.
type ScanError struct {
	Path   m.Path
	Line   int
	Reason string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// commentLine is a piece of source text that may carry markers.
type commentLine struct {
	line   int
	column int
	text   string
}

// relationDirective is one parsed `@relation(...)` annotation.
type relationDirective struct {
	uids   []string
	scope  string
	nodoc  bool
	line   int
	column int
}

func parseRelations(path m.Path, comment commentLine) ([]relationDirective, error) {
	var directives []relationDirective

	for _, loc := range relationPattern.FindAllStringSubmatchIndex(comment.text, -1) {
		body := comment.text[loc[2]:loc[3]]
		directive := relationDirective{line: comment.line, column: comment.column + loc[0]}

		for _, part := range strings.Split(body, ",") {
			part = strings.TrimSpace(part)

			switch {
			case part == "":
				continue
			case strings.HasPrefix(part, "scope="):
				directive.scope = strings.TrimSpace(strings.TrimPrefix(part, "scope="))
			case part == nodocKeyword:
				directive.nodoc = true
			default:
				directive.uids = append(directive.uids, part)
			}
		}

		switch directive.scope {
		case scopeFunction, scopeLine, scopeRangeStart, scopeRangeEnd:
		case "":
			return nil, &ScanError{Path: path, Line: comment.line, Reason: "relation marker without scope"}
		default:
			return nil, &ScanError{Path: path, Line: comment.line, Reason: fmt.Sprintf("unknown relation scope %q", directive.scope)}
		}

		if len(directive.uids) == 0 && !directive.nodoc {
			return nil, &ScanError{Path: path, Line: comment.line, Reason: "relation marker without requirements"}
		}

		directives = append(directives, directive)
	}

	return directives, nil
}

// functionResolver finds the function a `scope=function` marker on the given
// line belongs to. A nil resolver means the file has no structural scan.
type functionResolver func(line int) (m.FunctionEntry, bool)

// buildMarkers turns the annotations found in comments into markers.
// Range pairs are matched innermost first and must carry the same
// requirements on both ends.
func buildMarkers(path m.Path, comments []commentLine, resolve functionResolver) ([]*m.Marker, error) {
	var (
		markers []*m.Marker
		open    []*m.Marker
	)

	for _, comment := range comments {
		directives, err := parseRelations(path, comment)
		if err != nil {
			return nil, err
		}

		for _, directive := range directives {
			marker := &m.Marker{
				ReqUIDs:      directive.uids,
				SourceLine:   directive.line,
				SourceColumn: directive.column,
				NoDoc:        directive.nodoc,
			}

			switch directive.scope {
			case scopeLine:
				marker.Kind = m.LineMarker
				marker.RangeLineBegin = directive.line
				marker.RangeLineEnd = directive.line

			case scopeFunction:
				if resolve == nil {
					return nil, &ScanError{Path: path, Line: directive.line, Reason: "function scope is not supported for this file type"}
				}

				entry, ok := resolve(directive.line)
				if !ok {
					return nil, &ScanError{Path: path, Line: directive.line, Reason: "function marker is not attached to a function"}
				}

				marker.Kind = m.FunctionRangeMarker
				marker.RangeLineBegin = entry.LineBegin
				marker.RangeLineEnd = entry.LineEnd

			case scopeRangeStart:
				marker.Kind = m.RangeMarker
				marker.Begin = true
				marker.RangeLineBegin = directive.line
				open = append(open, marker)

			case scopeRangeEnd:
				if len(open) == 0 {
					return nil, &ScanError{Path: path, Line: directive.line, Reason: "range end without range start"}
				}

				begin := open[len(open)-1]
				open = open[:len(open)-1]

				if begin.NoDoc != marker.NoDoc || !sameUIDs(begin.ReqUIDs, marker.ReqUIDs) {
					return nil, &ScanError{
						Path:   path,
						Line:   directive.line,
						Reason: fmt.Sprintf("range end does not match range start on line %d", begin.SourceLine),
					}
				}

				begin.RangeLineEnd = directive.line
				marker.Kind = m.RangeMarker
				marker.RangeLineBegin = begin.RangeLineBegin
				marker.RangeLineEnd = directive.line
			}

			markers = append(markers, marker)
		}
	}

	if len(open) > 0 {
		return nil, &ScanError{Path: path, Line: open[len(open)-1].SourceLine, Reason: "range start without range end"}
	}

	return markers, nil
}

func sameUIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
