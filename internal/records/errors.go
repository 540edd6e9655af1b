// Package records holds the in-memory roster store and the partial-update
// edit semantics applied to its persons.
package records

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/teachmate/internal/model"
)

var (
	// ErrNotEdited is returned when an edit descriptor has no fields set.
	ErrNotEdited = errors.New("at least one field to edit must be provided")

	// ErrPersonNotFound is returned when a lookup by student ID finds nothing.
	ErrPersonNotFound = errors.New("no student found with that ID")
)

// IndexError indicates a display index outside the currently shown list.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("the record index provided is invalid: %d (the displayed list has %d records)", e.Index, e.Size)
}

// GradeNotFoundError indicates a grade update referenced an assignment the
// person has no existing grade for.
type GradeNotFoundError struct {
	Assignment string
}

func (e *GradeNotFoundError) Error() string {
	return fmt.Sprintf("cannot update grade: assignment '%s' not found for this student", e.Assignment)
}

// DuplicateIDError indicates a student ID is already held by another record.
type DuplicateIDError struct {
	ID model.StudentID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("cannot update: student ID %s is already assigned to another student", e.ID)
}

// DuplicatePersonError indicates a record with the same identity already
// exists in the roster.
type DuplicatePersonError struct {
	Name model.Name
}

func (e *DuplicatePersonError) Error() string {
	return fmt.Sprintf("a record for %s already exists in the roster", e.Name)
}

// VariantError indicates an edit would mix contact fields with a student ID
// on one record.
type VariantError struct {
	Reason string
}

func (e *VariantError) Error() string {
	return "cannot edit: " + e.Reason
}
