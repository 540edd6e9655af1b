package cli

import (
	"errors"

	"github.com/aidanlsb/teachmate/internal/parser"
	"github.com/aidanlsb/teachmate/internal/records"
)

// Stable error codes for JSON output.
const (
	codeInvalidFormat      = "INVALID_FORMAT"
	codeInvalidIndex       = "INVALID_INDEX"
	codeNotEdited          = "NOT_EDITED"
	codeGradeNotFound      = "GRADE_NOT_FOUND"
	codeDuplicateStudentID = "DUPLICATE_STUDENT_ID"
	codeDuplicatePerson    = "DUPLICATE_PERSON"
	codeVariantMismatch    = "VARIANT_MISMATCH"
	codePersonNotFound     = "PERSON_NOT_FOUND"
	codeConfigInvalid      = "CONFIG_INVALID"
	codeStorageError       = "STORAGE_ERROR"
	codeInvalidInput       = "INVALID_INPUT"
)

// commandError maps a domain error onto a stable code plus a suggestion and
// dispatches it through the active output mode.
func commandError(err error) error {
	var formatErr *parser.FormatError
	if errors.As(err, &formatErr) {
		return handleErrorMsg(codeInvalidFormat, formatErr.Error(), formatErr.Usage)
	}

	var indexErr *records.IndexError
	if errors.As(err, &indexErr) {
		return handleErrorMsg(codeInvalidIndex, indexErr.Error(), "Run 'tm list' to see record positions")
	}

	if errors.Is(err, records.ErrNotEdited) {
		return handleErrorMsg(codeNotEdited, err.Error(), "")
	}
	if errors.Is(err, records.ErrPersonNotFound) {
		return handleErrorMsg(codePersonNotFound, err.Error(), "Run 'tm list' to see all records")
	}

	var gradeErr *records.GradeNotFoundError
	if errors.As(err, &gradeErr) {
		return handleErrorMsg(codeGradeNotFound, gradeErr.Error(), "Run 'tm view' on the student to see recorded assignments")
	}

	var dupID *records.DuplicateIDError
	if errors.As(err, &dupID) {
		return handleErrorMsg(codeDuplicateStudentID, dupID.Error(), "")
	}

	var dupPerson *records.DuplicatePersonError
	if errors.As(err, &dupPerson) {
		return handleErrorMsg(codeDuplicatePerson, dupPerson.Error(), "")
	}

	var variantErr *records.VariantError
	if errors.As(err, &variantErr) {
		return handleErrorMsg(codeVariantMismatch, variantErr.Error(), "")
	}

	return handleErrorMsg(codeStorageError, err.Error(), "")
}
