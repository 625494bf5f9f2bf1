package domain

import (
	"errors"
	"fmt"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// Sentinel errors for index operations. Typed errors below unwrap to them so
// callers can match with errors.Is and inspect details with errors.As.
var (
	// ErrDanglingFileReference is returned when a requirement references a
	// file that was never registered.
	ErrDanglingFileReference = errors.New("dangling file reference")

	// ErrDanglingRequirementReference is returned when an in-code marker
	// names a requirement that was never registered.
	ErrDanglingRequirementReference = errors.New("dangling requirement reference")

	// ErrDuplicateFileRegistration is returned when scan results for a path
	// are registered twice.
	ErrDuplicateFileRegistration = errors.New("duplicate file registration")

	// ErrInvalidRange is returned for explicit ranges with non-positive
	// bounds or start > end.
	ErrInvalidRange = errors.New("invalid line range")

	// ErrRangeOutOfBounds is returned for explicit ranges ending past the
	// last line of the file.
	ErrRangeOutOfBounds = errors.New("line range out of bounds")

	// ErrUnresolvedNameBinding is returned when a function or class binding
	// names an entry the file scan does not contain.
	ErrUnresolvedNameBinding = errors.New("unresolved function or class binding")

	// ErrIndexNotFinalized is returned by queries issued before Finalize.
	ErrIndexNotFinalized = errors.New("index is not finalized")

	// ErrIndexFinalized is returned by mutating calls issued after Finalize.
	ErrIndexFinalized = errors.New("index is finalized and cannot be modified")

	// ErrEmptyUID is returned when registering a requirement without UID.
	ErrEmptyUID = errors.New("requirement has an empty UID")

	// ErrUnknownFile is returned by per-file queries for unregistered paths.
	ErrUnknownFile = errors.New("file is not registered")
)

// DanglingFileReferenceError names the requirement and the missing file.
type DanglingFileReferenceError struct {
	RequirementUID string
	Path           m.Path
}

func (e *DanglingFileReferenceError) Error() string {
	return fmt.Sprintf("requirement %s references a file that does not exist: %s", e.RequirementUID, e.Path)
}

func (e *DanglingFileReferenceError) Unwrap() error { return ErrDanglingFileReference }

// DanglingRequirementReferenceError names the file and the unknown UID.
type DanglingRequirementReferenceError struct {
	Path           m.Path
	RequirementUID string
}

func (e *DanglingRequirementReferenceError) Error() string {
	return fmt.Sprintf("source file %s references a requirement that does not exist: %s", e.Path, e.RequirementUID)
}

func (e *DanglingRequirementReferenceError) Unwrap() error { return ErrDanglingRequirementReference }

// DuplicateFileRegistrationError names the path registered twice.
type DuplicateFileRegistrationError struct {
	Path m.Path
}

func (e *DuplicateFileRegistrationError) Error() string {
	return fmt.Sprintf("scan results for %s are already registered", e.Path)
}

func (e *DuplicateFileRegistrationError) Unwrap() error { return ErrDuplicateFileRegistration }

// InvalidRangeError describes a malformed explicit range.
type InvalidRangeError struct {
	RequirementUID string
	Path           m.Path
	Range          m.LineRange
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("requirement %s declares invalid range %d-%d for %s",
		e.RequirementUID, e.Range.Start, e.Range.End, e.Path)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// RangeOutOfBoundsError describes an explicit range past the end of its file.
type RangeOutOfBoundsError struct {
	RequirementUID string
	Path           m.Path
	Range          m.LineRange
	TotalLines     int
}

func (e *RangeOutOfBoundsError) Error() string {
	return fmt.Sprintf("requirement %s declares range %s for %s which has %d lines",
		e.RequirementUID, e.Range, e.Path, e.TotalLines)
}

func (e *RangeOutOfBoundsError) Unwrap() error { return ErrRangeOutOfBounds }

// UnresolvedNameBindingError names a binding the file scan cannot satisfy.
type UnresolvedNameBindingError struct {
	RequirementUID string
	Path           m.Path
	Name           string
}

func (e *UnresolvedNameBindingError) Error() string {
	return fmt.Sprintf("requirement %s references %s in %s, which has no such function or class",
		e.RequirementUID, e.Name, e.Path)
}

func (e *UnresolvedNameBindingError) Unwrap() error { return ErrUnresolvedNameBinding }
