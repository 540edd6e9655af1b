package parser

import (
	"github.com/aidanlsb/teachmate/internal/model"
)

// ViewUsage is the usage text shown with view format errors.
const ViewUsage = "view: shows the record at INDEX, or the student with the given ID.\n" +
	"Parameters: INDEX (a positive integer) | id/STUDENT_ID\n" +
	"Example: view 1  |  view id/A1234567X"

// Lookup is a view request: exactly one of Index or StudentID is set.
type Lookup struct {
	Index     int             // 1-based, 0 when unset
	StudentID model.StudentID // empty when unset
}

// ByID reports whether the lookup addresses a record by student ID.
func (l Lookup) ByID() bool { return l.StudentID != "" }

// ParseViewArgs parses view arguments into a lookup key. If the id/ marker is
// present its value wins; otherwise the leading text is parsed as an index.
func ParseViewArgs(args string) (Lookup, error) {
	m := Tokenize(args, MarkerStudentID)

	if raw, ok := m.Value(MarkerStudentID); ok {
		id, err := model.ParseStudentID(raw)
		if err != nil {
			return Lookup{}, formatErr(ViewUsage, err)
		}
		return Lookup{StudentID: id}, nil
	}

	index, err := parseIndex(m.Preamble())
	if err != nil {
		return Lookup{}, formatErr(ViewUsage, err)
	}
	return Lookup{Index: index}, nil
}
