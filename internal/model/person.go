package model

import (
	"sort"
)

// Core holds the fields shared by both person variants.
// Collections are copied on the way in and out of a Person, so a Core can be
// modified freely without affecting any existing record.
type Core struct {
	Name          Name
	Email         Email
	ModuleCodes   []ModuleCode
	Tags          []Tag
	Grades        map[string]Grade // keyed by assignment name
	Attendance    AttendanceRecord
	Consultations []Consultation
	Remark        Remark
}

// detail is the variant part of a Person: contact details or a student ID,
// never both.
type detail interface {
	isDetail()
}

// Contact holds the contact-style variant fields.
type Contact struct {
	Phone   Phone
	Address Address
}

func (Contact) isDetail() {}

type studentDetail struct {
	id StudentID
}

func (studentDetail) isDetail() {}

// Person is a roster record. A person is either contact style (phone and
// address, no student ID) or student style (student ID, no phone/address);
// the constructors make a mixed record unrepresentable.
type Person struct {
	core   Core
	detail detail
}

// NewContactPerson builds a contact-style person.
func NewContactPerson(phone Phone, address Address, core Core) Person {
	return Person{core: copyCore(core), detail: Contact{Phone: phone, Address: address}}
}

// NewStudent builds a student-style person.
func NewStudent(id StudentID, core Core) Person {
	return Person{core: copyCore(core), detail: studentDetail{id: id}}
}

// Core returns a copy of the shared fields.
func (p Person) Core() Core { return copyCore(p.core) }

// Name returns the person's name.
func (p Person) Name() Name { return p.core.Name }

// Email returns the person's email.
func (p Person) Email() Email { return p.core.Email }

// ModuleCodes returns the person's module codes, sorted.
func (p Person) ModuleCodes() []ModuleCode {
	return normalizeModules(p.core.ModuleCodes)
}

// Tags returns the person's tags, sorted.
func (p Person) Tags() []Tag { return normalizeTags(p.core.Tags) }

// Grades returns a copy of the grade set keyed by assignment name.
func (p Person) Grades() map[string]Grade { return copyGrades(p.core.Grades) }

// GradeList returns the grades ordered by assignment name.
func (p Person) GradeList() []Grade {
	out := make([]Grade, 0, len(p.core.Grades))
	for _, g := range p.core.Grades {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Assignment < out[j].Assignment })
	return out
}

// Attendance returns the person's attendance record.
func (p Person) Attendance() AttendanceRecord { return p.core.Attendance }

// Consultations returns a copy of the consultation list, ordered by time.
func (p Person) Consultations() []Consultation {
	return normalizeConsultations(p.core.Consultations)
}

// Remark returns the person's remark.
func (p Person) Remark() Remark { return p.core.Remark }

// Contact reports the contact details for contact-style persons.
func (p Person) Contact() (Contact, bool) {
	c, ok := p.detail.(Contact)
	return c, ok
}

// StudentID reports the student ID for student-style persons.
func (p Person) StudentID() (StudentID, bool) {
	d, ok := p.detail.(studentDetail)
	if !ok {
		return "", false
	}
	return d.id, true
}

// IsStudent reports whether the person is student style.
func (p Person) IsStudent() bool {
	_, ok := p.detail.(studentDetail)
	return ok
}

// DisplayLabel is the short form used in confirmation messages:
// "Amy Tan (A1234567X)" for students, the name alone otherwise.
func (p Person) DisplayLabel() string {
	if id, ok := p.StudentID(); ok {
		return p.core.Name.String() + " (" + id.String() + ")"
	}
	return p.core.Name.String()
}

// Same reports whether two records refer to the same person. Names are the
// identity key for the roster, matching the add/replace duplicate rules.
func (p Person) Same(other Person) bool {
	return p.core.Name == other.core.Name
}

// Equal reports full value equality of two records.
func (p Person) Equal(other Person) bool {
	if p.detail != other.detail {
		return false
	}
	if p.core.Name != other.core.Name ||
		p.core.Email != other.core.Email ||
		p.core.Remark != other.core.Remark {
		return false
	}
	if !equalModules(p.ModuleCodes(), other.ModuleCodes()) ||
		!equalTags(p.Tags(), other.Tags()) ||
		!equalGrades(p.core.Grades, other.core.Grades) ||
		!equalAttendance(p.core.Attendance, other.core.Attendance) ||
		!equalConsultations(p.Consultations(), other.Consultations()) {
		return false
	}
	return true
}

func copyCore(c Core) Core {
	return Core{
		Name:          c.Name,
		Email:         c.Email,
		ModuleCodes:   normalizeModules(c.ModuleCodes),
		Tags:          normalizeTags(c.Tags),
		Grades:        copyGrades(c.Grades),
		Attendance:    c.Attendance,
		Consultations: normalizeConsultations(c.Consultations),
		Remark:        c.Remark,
	}
}

func normalizeModules(in []ModuleCode) []ModuleCode {
	out := make([]ModuleCode, 0, len(in))
	seen := make(map[ModuleCode]bool, len(in))
	for _, m := range in {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func normalizeTags(in []Tag) []Tag {
	out := make([]Tag, 0, len(in))
	seen := make(map[Tag]bool, len(in))
	for _, t := range in {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func copyGrades(in map[string]Grade) map[string]Grade {
	out := make(map[string]Grade, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func normalizeConsultations(in []Consultation) []Consultation {
	out := make([]Consultation, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

func equalModules(a, b []ModuleCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalTags(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalGrades(a, b map[string]Grade) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func equalAttendance(a, b AttendanceRecord) bool {
	if a.Len() != b.Len() {
		return false
	}
	for w, s := range a.weeks {
		if bs, ok := b.weeks[w]; !ok || bs != s {
			return false
		}
	}
	return true
}

func equalConsultations(a, b []Consultation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].At.Equal(b[i].At) {
			return false
		}
	}
	return true
}
