package model

import "fmt"

// LineRange is a 1-indexed, inclusive span of lines.
type LineRange struct {
	Start int
	End   int
}

// Valid reports whether the range has positive bounds and Start <= End.
func (r LineRange) Valid() bool {
	return r.Start >= 1 && r.Start <= r.End
}

// Len returns the number of lines spanned by the range.
func (r LineRange) Len() int {
	return r.End - r.Start + 1
}

func (r LineRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// FileReference binds a requirement to a source file. At most one of
// Function, Class and Range is set; none of them means the whole file.
type FileReference struct {
	Path     Path
	Function string
	Class    string
	Range    *LineRange

	// Implicit marks references derived from in-code markers rather than
	// declared by the requirement itself.
	Implicit bool
}

// BindingName returns the function or class name the reference binds to.
func (f FileReference) BindingName() (string, bool) {
	switch {
	case f.Function != "":
		return f.Function, true
	case f.Class != "":
		return f.Class, true
	}

	return "", false
}

// IsWholeFile reports whether the reference targets the file as a whole.
func (f FileReference) IsWholeFile() bool {
	_, named := f.BindingName()
	return !named && f.Range == nil
}

// Relation is one outgoing link of a requirement. Only relations carrying a
// File reference are relevant to source traceability.
type Relation struct {
	Type   string
	Target string
	File   *FileReference
}

// Requirement is a documented requirement as produced by the markup parser.
type Requirement struct {
	UID       string
	Title     string
	Relations []Relation
}

// FileReferences returns the file relations of the requirement in declaration order.
func (r *Requirement) FileReferences() []FileReference {
	refs := make([]FileReference, 0, len(r.Relations))

	for _, relation := range r.Relations {
		if relation.File != nil {
			refs = append(refs, *relation.File)
		}
	}

	return refs
}

// FileLink is one result row of a requirement-to-file lookup. Markers is nil
// when the requirement references the file as a whole.
type FileLink struct {
	Reference FileReference
	Markers   []*Marker
}
