package model

import "testing"

func TestParseAttendance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Attendance
		wantErr bool
	}{
		{name: "present", input: "3:present", want: Attendance{Week: 3, Status: StatusPresent}},
		{name: "absent shorthand", input: "5:a", want: Attendance{Week: 5, Status: StatusAbsent}},
		{name: "unmark", input: "13:unmark", want: Attendance{Week: 13, Status: StatusUnmark}},
		{name: "mixed case", input: "1:Present", want: Attendance{Week: 1, Status: StatusPresent}},
		{name: "week zero", input: "0:present", wantErr: true},
		{name: "week out of range", input: "14:present", wantErr: true},
		{name: "unknown status", input: "3:late", wantErr: true},
		{name: "missing colon", input: "3 present", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttendance(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAttendance(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAttendance(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAttendance(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAttendanceRecordMarkUnmark(t *testing.T) {
	var rec AttendanceRecord

	marked := rec.Mark(3, StatusPresent)
	if rec.Len() != 0 {
		t.Error("Mark mutated the original record")
	}
	if s, ok := marked.Status(3); !ok || s != StatusPresent {
		t.Errorf("Status(3) = %v, %v; want present, true", s, ok)
	}

	// Upsert overwrites in place.
	marked = marked.Mark(3, StatusAbsent)
	if s, _ := marked.Status(3); s != StatusAbsent {
		t.Errorf("after re-mark, Status(3) = %v, want absent", s)
	}
	if marked.Len() != 1 {
		t.Errorf("Len = %d, want 1", marked.Len())
	}

	unmarked := marked.Unmark(3)
	if _, ok := unmarked.Status(3); ok {
		t.Error("Unmark left the entry in place")
	}
	if marked.Len() != 1 {
		t.Error("Unmark mutated the original record")
	}
}

func TestAttendanceRecordUnmarkMissingWeekIsNoOp(t *testing.T) {
	rec := NewAttendanceRecord(map[Week]AttendanceStatus{2: StatusPresent})
	got := rec.Unmark(9)
	if got.Len() != 1 {
		t.Errorf("Len = %d, want 1", got.Len())
	}
	if s, ok := got.Status(2); !ok || s != StatusPresent {
		t.Errorf("Status(2) = %v, %v; want present, true", s, ok)
	}
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Grade
		wantErr bool
	}{
		{name: "integer score", input: "Quiz 1:85", want: Grade{Assignment: "Quiz 1", Score: 85}},
		{name: "decimal score", input: "Midterm:67.5", want: Grade{Assignment: "Midterm", Score: 67.5}},
		{name: "name with colon", input: "Lab: Part 2:90", want: Grade{Assignment: "Lab: Part 2", Score: 90}},
		{name: "no colon", input: "Quiz 1 85", wantErr: true},
		{name: "missing score", input: "Quiz 1:", wantErr: true},
		{name: "score above range", input: "Quiz 1:101", wantErr: true},
		{name: "negative score", input: "Quiz 1:-3", wantErr: true},
		{name: "non-numeric score", input: "Quiz 1:A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGrade(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGrade(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGrade(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseGrade(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGradeFormatScore(t *testing.T) {
	if got := (Grade{Assignment: "Quiz 1", Score: 85}).FormatScore(); got != "85" {
		t.Errorf("FormatScore = %q, want 85", got)
	}
	if got := (Grade{Assignment: "Quiz 1", Score: 85.5}).FormatScore(); got != "85.5" {
		t.Errorf("FormatScore = %q, want 85.5", got)
	}
}
