package storage

import (
	"testing"

	"github.com/aidanlsb/teachmate/internal/model"
	"github.com/aidanlsb/teachmate/internal/records"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptyRoster(t *testing.T) {
	s := openStore(t)
	roster, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if roster.Len() != 0 {
		t.Errorf("Len = %d, want 0", roster.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)

	student := model.NewStudent("A1234567X", model.Core{
		Name:        "Amy Tan",
		Email:       "amy@example.com",
		ModuleCodes: []model.ModuleCode{"CS2103T", "CS2101"},
		Tags:        []model.Tag{"friends"},
		Grades:      map[string]model.Grade{"Quiz 1": {Assignment: "Quiz 1", Score: 85.5}},
		Attendance: model.NewAttendanceRecord(map[model.Week]model.AttendanceStatus{
			3: model.StatusPresent,
			5: model.StatusAbsent,
		}),
		Consultations: mustConsultations(t, "2026-03-14 15:00"),
		Remark:        "fast learner",
	})
	contact := model.NewContactPerson("95352563", "Wall Street", model.Core{
		Name:  "Carl Kurz",
		Email: "carl@example.com",
	})

	roster := records.New()
	for _, p := range []model.Person{student, contact} {
		if err := roster.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := s.Save(roster); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len = %d, want 2", loaded.Len())
	}

	got := loaded.All()
	if !got[0].Equal(student) {
		t.Errorf("student did not round-trip:\ngot  %+v\nwant %+v", got[0], student)
	}
	if !got[1].Equal(contact) {
		t.Errorf("contact did not round-trip")
	}
}

func TestSaveReplacesPriorContents(t *testing.T) {
	s := openStore(t)

	first := records.New()
	if err := first.Add(model.NewStudent("A1234567X", model.Core{Name: "Amy Tan", Email: "amy@example.com"})); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := records.New()
	if err := second.Add(model.NewStudent("A7654321B", model.Core{Name: "Ben Goh", Email: "ben@example.com"})); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len = %d, want 1", loaded.Len())
	}
	if loaded.All()[0].Name() != "Ben Goh" {
		t.Errorf("loaded %q, want Ben Goh", loaded.All()[0].Name())
	}
}

func mustConsultations(t *testing.T, raws ...string) []model.Consultation {
	t.Helper()
	out := make([]model.Consultation, 0, len(raws))
	for _, raw := range raws {
		c, err := model.ParseConsultation(raw)
		if err != nil {
			t.Fatalf("ParseConsultation(%q): %v", raw, err)
		}
		out = append(out, c)
	}
	return out
}
