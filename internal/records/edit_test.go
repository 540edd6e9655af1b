package records

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/aidanlsb/teachmate/internal/model"
)

func amy() model.Person {
	return model.NewStudent("A1234567X", model.Core{
		Name:        "Amy Tan",
		Email:       "amy@example.com",
		ModuleCodes: []model.ModuleCode{"CS2103T"},
		Tags:        []model.Tag{"friends"},
		Grades:      map[string]model.Grade{"Quiz 1": {Assignment: "Quiz 1", Score: 85}},
		Attendance:  model.NewAttendanceRecord(map[model.Week]model.AttendanceStatus{3: model.StatusPresent}),
		Remark:      "fast learner",
	})
}

func ben() model.Person {
	return model.NewStudent("A7654321B", model.Core{
		Name:  "Ben Goh",
		Email: "ben@example.com",
	})
}

func carl() model.Person {
	return model.NewContactPerson("95352563", "Wall Street", model.Core{
		Name:  "Carl Kurz",
		Email: "carl@example.com",
	})
}

func seeded(t *testing.T) *Roster {
	t.Helper()
	r := New()
	for _, p := range []model.Person{amy(), ben(), carl()} {
		if err := r.Add(p); err != nil {
			t.Fatalf("seeding roster: %v", err)
		}
	}
	return r
}

func namePtr(s string) *model.Name          { n := model.Name(s); return &n }
func remarkPtr(s string) *model.Remark      { r := model.Remark(s); return &r }
func idPtr(s string) *model.StudentID       { id := model.StudentID(s); return &id }
func phonePtr(s string) *model.Phone        { p := model.Phone(s); return &p }
func gradePtr(a string, s float64) *model.Grade {
	g := model.Grade{Assignment: a, Score: s}
	return &g
}
func attendancePtr(w model.Week, s model.AttendanceStatus) *model.Attendance {
	a := model.Attendance{Week: w, Status: s}
	return &a
}

func TestApplyEditEmptyDescriptorFails(t *testing.T) {
	r := seeded(t)
	before := r.All()

	_, err := ApplyEdit(r, 1, &EditDescriptor{})
	if !errors.Is(err, ErrNotEdited) {
		t.Fatalf("err = %v, want ErrNotEdited", err)
	}

	after := r.All()
	for i := range before {
		if !before[i].Equal(after[i]) {
			t.Error("failed edit must not mutate the roster")
		}
	}
}

func TestApplyEditIndexOutOfRange(t *testing.T) {
	r := seeded(t)

	for _, index := range []int{0, -1, 4} {
		_, err := ApplyEdit(r, index, &EditDescriptor{Name: namePtr("New Name")})
		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("index %d: err = %v, want IndexError", index, err)
		}
	}
}

func TestApplyEditNameOnly(t *testing.T) {
	r := seeded(t)

	res, err := ApplyEdit(r, 2, &EditDescriptor{Name: namePtr("Benjamin Goh")})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	if res.Edited.Name() != "Benjamin Goh" {
		t.Errorf("edited name = %q", res.Edited.Name())
	}
	want := []string{"Name: Benjamin Goh"}
	if !reflect.DeepEqual(res.Changes, want) {
		t.Errorf("Changes = %v, want %v", res.Changes, want)
	}

	// The store holds the edited record.
	got, err := r.At(2)
	if err != nil {
		t.Fatalf("At(2): %v", err)
	}
	if got.Name() != "Benjamin Goh" {
		t.Errorf("stored name = %q", got.Name())
	}
}

func TestApplyEditRemarkOnlyRoundTrip(t *testing.T) {
	r := seeded(t)
	original := amy()

	res, err := ApplyEdit(r, 1, &EditDescriptor{Remark: remarkPtr("needs help with recursion")})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	if res.Edited.Remark() != "needs help with recursion" {
		t.Errorf("remark = %q", res.Edited.Remark())
	}

	// Every other field is identical by value to before.
	core := res.Edited.Core()
	core.Remark = original.Remark()
	restored := model.NewStudent(mustID(t, res.Edited), core)
	if !restored.Equal(original) {
		t.Error("remark-only edit changed another field")
	}
}

func TestApplyEditGradeMerge(t *testing.T) {
	r := seeded(t)

	res, err := ApplyEdit(r, 1, &EditDescriptor{Grade: gradePtr("Quiz 1", 92)})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	if g := res.Edited.Grades()["Quiz 1"]; g.Score != 92 {
		t.Errorf("grade after merge = %v, want 92", g.Score)
	}
	if len(res.Edited.Grades()) != 1 {
		t.Errorf("grade set grew: %v", res.Edited.Grades())
	}
	if got := res.Changes; len(got) != 1 || got[0] != "Grade updated: Quiz 1 → 92" {
		t.Errorf("Changes = %v", got)
	}
}

func TestApplyEditGradeNotFoundIsAllOrNothing(t *testing.T) {
	r := seeded(t)

	// Name slot is valid, grade slot references a missing assignment; neither
	// may be applied.
	_, err := ApplyEdit(r, 1, &EditDescriptor{
		Name:  namePtr("Amy Renamed"),
		Grade: gradePtr("Final Exam", 90),
	})

	var gradeErr *GradeNotFoundError
	if !errors.As(err, &gradeErr) {
		t.Fatalf("err = %v, want GradeNotFoundError", err)
	}
	if gradeErr.Assignment != "Final Exam" {
		t.Errorf("error names assignment %q, want Final Exam", gradeErr.Assignment)
	}

	got, _ := r.At(1)
	if !got.Equal(amy()) {
		t.Error("failed grade edit leaked a partial write into the store")
	}
}

func TestApplyEditAttendanceMarkAndUnmark(t *testing.T) {
	r := seeded(t)

	res, err := ApplyEdit(r, 1, &EditDescriptor{Attendance: attendancePtr(5, model.StatusAbsent)})
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if s, ok := res.Edited.Attendance().Status(5); !ok || s != model.StatusAbsent {
		t.Errorf("week 5 = %v, %v; want absent, true", s, ok)
	}
	if got := res.Changes[0]; got != "Attendance: Week 5 → absent" {
		t.Errorf("change line = %q", got)
	}

	res, err = ApplyEdit(r, 1, &EditDescriptor{Attendance: attendancePtr(5, model.StatusUnmark)})
	if err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if _, ok := res.Edited.Attendance().Status(5); ok {
		t.Error("week 5 still marked after unmark")
	}
	if got := res.Changes[0]; got != "Attendance unmarked: Week 5" {
		t.Errorf("change line = %q", got)
	}
}

func TestApplyEditUnmarkMissingWeekSucceeds(t *testing.T) {
	r := seeded(t)

	res, err := ApplyEdit(r, 2, &EditDescriptor{Attendance: attendancePtr(9, model.StatusUnmark)})
	if err != nil {
		t.Fatalf("unmark on empty record: %v", err)
	}
	if got := res.Changes[0]; got != "Attendance unmarked: Week 9" {
		t.Errorf("change line = %q", got)
	}
}

func TestApplyEditDuplicateStudentID(t *testing.T) {
	r := seeded(t)

	// Editing Amy's ID to Ben's ID collides.
	_, err := ApplyEdit(r, 1, &EditDescriptor{StudentID: idPtr("A7654321B")})
	var dupErr *DuplicateIDError
	if !errors.As(err, &dupErr) {
		t.Fatalf("err = %v, want DuplicateIDError", err)
	}
	if dupErr.ID != "A7654321B" {
		t.Errorf("error names ID %q", dupErr.ID)
	}

	// Editing the ID to its own current value is not a collision.
	if _, err := ApplyEdit(r, 1, &EditDescriptor{StudentID: idPtr("A1234567X")}); err != nil {
		t.Errorf("self-collision: %v", err)
	}
}

func TestApplyEditVariantMixingRejected(t *testing.T) {
	r := seeded(t)

	// Phone on a student record.
	_, err := ApplyEdit(r, 1, &EditDescriptor{Phone: phonePtr("91234567")})
	var varErr *VariantError
	if !errors.As(err, &varErr) {
		t.Fatalf("phone on student: err = %v, want VariantError", err)
	}

	// Student ID on a contact record (Carl is at position 3).
	_, err = ApplyEdit(r, 3, &EditDescriptor{StudentID: idPtr("A9999999Z")})
	if !errors.As(err, &varErr) {
		t.Fatalf("id on contact: err = %v, want VariantError", err)
	}
}

func TestApplyEditSummaryFieldOrder(t *testing.T) {
	r := seeded(t)

	res, err := ApplyEdit(r, 1, &EditDescriptor{
		Remark:     remarkPtr("quiet"),
		Name:       namePtr("Amy T"),
		Attendance: attendancePtr(4, model.StatusPresent),
		Grade:      gradePtr("Quiz 1", 88),
		Tags:       []model.Tag{},
	})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	want := []string{
		"Name: Amy T",
		"Tags: None",
		"Grade updated: Quiz 1 → 88",
		"Attendance: Week 4 → present",
		"Remark: quiet",
	}
	if !reflect.DeepEqual(res.Changes, want) {
		t.Errorf("Changes = %v\nwant     %v", res.Changes, want)
	}
}

func TestApplyEditClearsConsultationsShowsNone(t *testing.T) {
	r := seeded(t)

	res, err := ApplyEdit(r, 1, &EditDescriptor{Consultations: []model.Consultation{}})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	if got := res.Changes[0]; got != "Consultations: None" {
		t.Errorf("change line = %q", got)
	}
}

func TestApplyEditResetsFilter(t *testing.T) {
	r := seeded(t)
	r.SetFilter(func(p model.Person) bool { return strings.HasPrefix(p.Name().String(), "Amy") })

	if got := len(r.Filtered()); got != 1 {
		t.Fatalf("filtered size = %d, want 1", got)
	}

	if _, err := ApplyEdit(r, 1, &EditDescriptor{Remark: remarkPtr("x")}); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	if got := len(r.Filtered()); got != 3 {
		t.Errorf("after edit, filtered size = %d, want 3 (filter reset)", got)
	}
}

func TestApplyEditRenameToExistingNameRejected(t *testing.T) {
	r := seeded(t)

	_, err := ApplyEdit(r, 1, &EditDescriptor{Name: namePtr("Ben Goh")})
	var dupErr *DuplicatePersonError
	if !errors.As(err, &dupErr) {
		t.Fatalf("err = %v, want DuplicatePersonError", err)
	}
}

func mustID(t *testing.T, p model.Person) model.StudentID {
	t.Helper()
	id, ok := p.StudentID()
	if !ok {
		t.Fatal("expected a student-style person")
	}
	return id
}
