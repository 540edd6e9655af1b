package records

import (
	"fmt"

	"github.com/aidanlsb/teachmate/internal/model"
)

// Filter is a display predicate over persons. A nil Filter shows everyone.
type Filter func(model.Person) bool

// Roster is the in-memory record collection. It keeps insertion order and a
// display filter; commands address records by 1-based position in the
// filtered view.
type Roster struct {
	people []model.Person
	filter Filter
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// Len reports the total number of records.
func (r *Roster) Len() int { return len(r.people) }

// All returns every record in insertion order.
func (r *Roster) All() []model.Person {
	out := make([]model.Person, len(r.people))
	copy(out, r.people)
	return out
}

// Filtered returns the currently displayed records in order.
func (r *Roster) Filtered() []model.Person {
	if r.filter == nil {
		return r.All()
	}
	var out []model.Person
	for _, p := range r.people {
		if r.filter(p) {
			out = append(out, p)
		}
	}
	return out
}

// SetFilter installs a display predicate.
func (r *Roster) SetFilter(f Filter) { r.filter = f }

// ShowAll clears the display filter.
func (r *Roster) ShowAll() { r.filter = nil }

// At returns the record at the given 1-based position in the displayed list.
func (r *Roster) At(index int) (model.Person, error) {
	shown := r.Filtered()
	if index < 1 || index > len(shown) {
		return model.Person{}, &IndexError{Index: index, Size: len(shown)}
	}
	return shown[index-1], nil
}

// FindByStudentID returns the record holding the given student ID.
func (r *Roster) FindByStudentID(id model.StudentID) (model.Person, bool) {
	for _, p := range r.people {
		if got, ok := p.StudentID(); ok && got == id {
			return p, true
		}
	}
	return model.Person{}, false
}

// Add appends a record. It rejects a record whose identity or student ID is
// already present.
func (r *Roster) Add(p model.Person) error {
	for _, existing := range r.people {
		if existing.Same(p) {
			return &DuplicatePersonError{Name: p.Name()}
		}
	}
	if id, ok := p.StudentID(); ok {
		if _, taken := r.FindByStudentID(id); taken {
			return &DuplicateIDError{ID: id}
		}
	}
	r.people = append(r.people, p)
	return nil
}

// Replace swaps old for updated in place. The updated record must not collide
// with any record other than old.
func (r *Roster) Replace(old, updated model.Person) error {
	at := -1
	for i, p := range r.people {
		if p.Equal(old) {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("record to replace not found in roster")
	}
	for i, p := range r.people {
		if i != at && p.Same(updated) {
			return &DuplicatePersonError{Name: updated.Name()}
		}
	}
	r.people[at] = updated
	return nil
}

// RemoveAt deletes the record at the given 1-based position in the displayed
// list and returns it.
func (r *Roster) RemoveAt(index int) (model.Person, error) {
	target, err := r.At(index)
	if err != nil {
		return model.Person{}, err
	}
	for i, p := range r.people {
		if p.Equal(target) {
			r.people = append(r.people[:i], r.people[i+1:]...)
			break
		}
	}
	return target, nil
}
