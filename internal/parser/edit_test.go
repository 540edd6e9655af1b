package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/aidanlsb/teachmate/internal/model"
)

func TestParseEditArgs(t *testing.T) {
	index, d, err := ParseEditArgs("2 n/Amy Tan g/Quiz 1:85 w/3:present t/friends t/helper r/doing well")
	if err != nil {
		t.Fatalf("ParseEditArgs: %v", err)
	}

	if index != 2 {
		t.Errorf("index = %d, want 2", index)
	}
	if d.Name == nil || *d.Name != "Amy Tan" {
		t.Errorf("Name = %v", d.Name)
	}
	if d.Grade == nil || d.Grade.Assignment != "Quiz 1" || d.Grade.Score != 85 {
		t.Errorf("Grade = %+v", d.Grade)
	}
	if d.Attendance == nil || d.Attendance.Week != 3 || d.Attendance.Status != model.StatusPresent {
		t.Errorf("Attendance = %+v", d.Attendance)
	}
	if len(d.Tags) != 2 || d.Tags[0] != "friends" || d.Tags[1] != "helper" {
		t.Errorf("Tags = %v", d.Tags)
	}
	if d.Remark == nil || *d.Remark != "doing well" {
		t.Errorf("Remark = %v", d.Remark)
	}
	if d.Phone != nil || d.Email != nil || d.Address != nil || d.StudentID != nil || d.ModuleCodes != nil || d.Consultations != nil {
		t.Error("untouched slots must stay nil")
	}
}

func TestParseEditArgsEmptyDescriptor(t *testing.T) {
	_, d, err := ParseEditArgs("1")
	if err != nil {
		t.Fatalf("ParseEditArgs: %v", err)
	}
	if d.IsAnyFieldEdited() {
		t.Error("bare index should produce an empty descriptor")
	}
}

func TestParseEditArgsClearsCollections(t *testing.T) {
	_, d, err := ParseEditArgs("1 t/ m/ c/")
	if err != nil {
		t.Fatalf("ParseEditArgs: %v", err)
	}
	if d.Tags == nil || len(d.Tags) != 0 {
		t.Errorf("Tags = %v, want non-nil empty", d.Tags)
	}
	if d.ModuleCodes == nil || len(d.ModuleCodes) != 0 {
		t.Errorf("ModuleCodes = %v, want non-nil empty", d.ModuleCodes)
	}
	if d.Consultations == nil || len(d.Consultations) != 0 {
		t.Errorf("Consultations = %v, want non-nil empty", d.Consultations)
	}
	if !d.IsAnyFieldEdited() {
		t.Error("clearing a collection counts as an edit")
	}
}

func TestParseEditArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{name: "missing index", args: "n/Amy"},
		{name: "non-numeric index", args: "x n/Amy"},
		{name: "zero index", args: "0 n/Amy"},
		{name: "duplicate single-valued marker", args: "1 n/Amy n/Ben"},
		{name: "bad phone", args: "1 p/abc"},
		{name: "bad student id", args: "1 id/nope"},
		{name: "bad grade", args: "1 g/Quiz 1"},
		{name: "bad week", args: "1 w/99:present"},
		{name: "bad status", args: "1 w/3:late"},
		{name: "bad consultation", args: "1 c/tomorrow"},
		{name: "unknown leading text", args: "1 oops n/Amy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseEditArgs(tt.args)
			var fmtErr *FormatError
			if !errors.As(err, &fmtErr) {
				t.Fatalf("ParseEditArgs(%q) err = %v, want FormatError", tt.args, err)
			}
			if fmtErr.Usage != EditUsage {
				t.Errorf("format error should carry the edit usage")
			}
		})
	}
}

func TestParseAddArgs(t *testing.T) {
	student, err := ParseAddArgs("n/Amy Tan id/A1234567X e/amy@example.com m/CS2103T t/friends")
	if err != nil {
		t.Fatalf("student add: %v", err)
	}
	if !student.IsStudent() {
		t.Error("id/ should build a student record")
	}
	if id, _ := student.StudentID(); id != "A1234567X" {
		t.Errorf("StudentID = %q", id)
	}

	contact, err := ParseAddArgs("n/Ben Goh p/91234567 e/ben@example.com a/Blk 30 Geylang St 29")
	if err != nil {
		t.Fatalf("contact add: %v", err)
	}
	if contact.IsStudent() {
		t.Error("p/ + a/ should build a contact record")
	}
	if c, _ := contact.Contact(); c.Address != "Blk 30 Geylang St 29" {
		t.Errorf("Address = %q", c.Address)
	}
}

func TestParseAddArgsErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   string
		reason string
	}{
		{name: "missing name", args: "id/A1234567X e/amy@example.com", reason: "n/NAME"},
		{name: "missing email", args: "n/Amy id/A1234567X", reason: "e/EMAIL"},
		{name: "mixed variants", args: "n/Amy id/A1234567X p/91234567 e/a@b.com a/Somewhere", reason: "student record"},
		{name: "contact missing address", args: "n/Amy p/91234567 e/a@b.com", reason: "a/ADDRESS"},
		{name: "neither id nor phone", args: "n/Amy e/a@b.com", reason: "id/STUDENT_ID"},
		{name: "leading text", args: "7 n/Amy id/A1234567X e/a@b.com", reason: "leading"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddArgs(tt.args)
			var fmtErr *FormatError
			if !errors.As(err, &fmtErr) {
				t.Fatalf("err = %v, want FormatError", err)
			}
			if !strings.Contains(fmtErr.Reason, tt.reason) {
				t.Errorf("Reason = %q, want mention of %q", fmtErr.Reason, tt.reason)
			}
		})
	}
}

func TestParseFindArgs(t *testing.T) {
	filter, keywords, err := ParseFindArgs("alice BOB")
	if err != nil {
		t.Fatalf("ParseFindArgs: %v", err)
	}
	if len(keywords) != 2 {
		t.Errorf("keywords = %v", keywords)
	}

	alice := model.NewStudent("A1111111A", model.Core{Name: "Alice Pauline", Email: "a@example.com"})
	bob := model.NewContactPerson("91234567", "Somewhere", model.Core{Name: "Bob Choo", Email: "b@example.com"})
	carl := model.NewContactPerson("91234567", "Somewhere", model.Core{Name: "Carl Kurz", Email: "c@example.com"})

	if !filter(alice) || !filter(bob) {
		t.Error("filter should match alice and bob case-insensitively")
	}
	if filter(carl) {
		t.Error("filter should not match carl")
	}

	if _, _, err := ParseFindArgs("   "); err == nil {
		t.Error("blank find args should fail")
	}
}
