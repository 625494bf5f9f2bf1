package model

// MarkerKind identifies the variant of a Marker.
type MarkerKind string

const (
	// LineMarker documents a single source line.
	LineMarker MarkerKind = "line"
	// RangeMarker is one half of a begin/end pair written in the source.
	RangeMarker MarkerKind = "range"
	// FunctionRangeMarker is attached to a function through a source annotation.
	FunctionRangeMarker MarkerKind = "function"
	// ForwardRangeMarker is synthesized from an explicit line range declared
	// by a requirement.
	ForwardRangeMarker MarkerKind = "forward_range"
	// ForwardFunctionRangeMarker is synthesized from a function or class
	// binding declared by a requirement.
	ForwardFunctionRangeMarker MarkerKind = "forward_function"
)

// Marker ties requirement UIDs to a line range in a source file. One marker
// instance may be shared by several requirements.
type Marker struct {
	Kind    MarkerKind
	ReqUIDs []string

	// Begin distinguishes the two halves of range pairs. It is ignored by
	// kinds that never come in pairs.
	Begin bool

	SourceLine     int
	SourceColumn   int
	RangeLineBegin int
	RangeLineEnd   int

	// NoDoc markers are excluded from coverage but still take part in ordering.
	NoDoc bool
}

// IsBegin reports whether the marker opens a documented range.
func (mk *Marker) IsBegin() bool {
	switch mk.Kind {
	case RangeMarker, ForwardRangeMarker:
		return mk.Begin
	case LineMarker, FunctionRangeMarker, ForwardFunctionRangeMarker:
		return true
	}

	return false
}

// IsForward reports whether the marker was synthesized from a requirement
// declaration instead of found in the source.
func (mk *Marker) IsForward() bool {
	return mk.Kind == ForwardRangeMarker || mk.Kind == ForwardFunctionRangeMarker
}

// Range returns the documented line span.
func (mk *Marker) Range() LineRange {
	return LineRange{Start: mk.RangeLineBegin, End: mk.RangeLineEnd}
}

// HasRequirement reports whether uid is among the marker's requirements.
func (mk *Marker) HasRequirement(uid string) bool {
	for _, reqUID := range mk.ReqUIDs {
		if reqUID == uid {
			return true
		}
	}

	return false
}
