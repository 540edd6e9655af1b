package records

import (
	"errors"
	"strings"
	"testing"

	"github.com/aidanlsb/teachmate/internal/model"
)

func TestRosterAddRejectsDuplicates(t *testing.T) {
	r := New()
	if err := r.Add(amy()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var dupPerson *DuplicatePersonError
	if err := r.Add(amy()); !errors.As(err, &dupPerson) {
		t.Errorf("duplicate add: err = %v, want DuplicatePersonError", err)
	}

	// Different name, same student ID.
	clash := model.NewStudent("A1234567X", model.Core{Name: "Someone Else", Email: "x@example.com"})
	var dupID *DuplicateIDError
	if err := r.Add(clash); !errors.As(err, &dupID) {
		t.Errorf("duplicate ID add: err = %v, want DuplicateIDError", err)
	}
}

func TestRosterFilteredIndexing(t *testing.T) {
	r := seeded(t)
	r.SetFilter(func(p model.Person) bool { return p.IsStudent() })

	shown := r.Filtered()
	if len(shown) != 2 {
		t.Fatalf("filtered size = %d, want 2", len(shown))
	}

	got, err := r.At(2)
	if err != nil {
		t.Fatalf("At(2): %v", err)
	}
	if got.Name() != "Ben Goh" {
		t.Errorf("At(2) = %q, want Ben Goh", got.Name())
	}

	if _, err := r.At(3); err == nil {
		t.Error("At(3) should be out of range under the filter")
	}
}

func TestRosterFindByStudentID(t *testing.T) {
	r := seeded(t)

	p, ok := r.FindByStudentID("A7654321B")
	if !ok || p.Name() != "Ben Goh" {
		t.Errorf("FindByStudentID = %v, %v", p.Name(), ok)
	}

	if _, ok := r.FindByStudentID("A0000000Q"); ok {
		t.Error("FindByStudentID should miss for an unknown ID")
	}
}

func TestRosterRemoveAtUsesDisplayedList(t *testing.T) {
	r := seeded(t)
	r.SetFilter(func(p model.Person) bool { return strings.HasPrefix(p.Name().String(), "Carl") })

	removed, err := r.RemoveAt(1)
	if err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if removed.Name() != "Carl Kurz" {
		t.Errorf("removed %q, want Carl Kurz", removed.Name())
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestRosterReplaceRejectsCollision(t *testing.T) {
	r := seeded(t)

	renamed := model.NewStudent("A1234567X", model.Core{Name: "Ben Goh", Email: "amy@example.com"})
	var dupErr *DuplicatePersonError
	if err := r.Replace(amy(), renamed); !errors.As(err, &dupErr) {
		t.Errorf("Replace collision: err = %v, want DuplicatePersonError", err)
	}
}
