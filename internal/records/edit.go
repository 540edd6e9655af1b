package records

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/teachmate/internal/model"
)

// EditResult carries the committed record and the change summary lines,
// one per edited field, in fixed field order.
type EditResult struct {
	Edited  model.Person
	Changes []string
}

// ApplyEdit resolves the record at the 1-based display index, applies the
// descriptor, validates the result, and commits it to the roster. All
// validation happens before the roster is touched; on any error the roster
// is unchanged. A successful edit resets the display filter.
func ApplyEdit(r *Roster, index int, d *EditDescriptor) (*EditResult, error) {
	target, err := r.At(index)
	if err != nil {
		return nil, err
	}

	if !d.IsAnyFieldEdited() {
		return nil, ErrNotEdited
	}

	edited, err := buildEdited(target, d)
	if err != nil {
		return nil, err
	}

	// A changed student ID must not collide with another record.
	if newID, ok := edited.StudentID(); ok {
		if oldID, had := target.StudentID(); had && newID != oldID {
			if _, taken := r.FindByStudentID(newID); taken {
				return nil, &DuplicateIDError{ID: newID}
			}
		}
	}

	if err := r.Replace(target, edited); err != nil {
		return nil, err
	}
	r.ShowAll()

	return &EditResult{Edited: edited, Changes: changeLines(edited, d)}, nil
}

// buildEdited constructs the candidate record: each set slot overrides the
// existing value, grades merge by assignment name, attendance is
// upsert-or-remove by week.
func buildEdited(target model.Person, d *EditDescriptor) (model.Person, error) {
	core := target.Core()

	if d.Name != nil {
		core.Name = *d.Name
	}
	if d.Email != nil {
		core.Email = *d.Email
	}
	if d.ModuleCodes != nil {
		core.ModuleCodes = d.ModuleCodes
	}
	if d.Tags != nil {
		core.Tags = d.Tags
	}
	if d.Consultations != nil {
		core.Consultations = d.Consultations
	}
	if d.Remark != nil {
		core.Remark = *d.Remark
	}

	if d.Grade != nil {
		if _, ok := core.Grades[d.Grade.Assignment]; !ok {
			return model.Person{}, &GradeNotFoundError{Assignment: d.Grade.Assignment}
		}
		core.Grades[d.Grade.Assignment] = *d.Grade
	}

	if d.Attendance != nil {
		if d.Attendance.Status == model.StatusUnmark {
			core.Attendance = core.Attendance.Unmark(d.Attendance.Week)
		} else {
			core.Attendance = core.Attendance.Mark(d.Attendance.Week, d.Attendance.Status)
		}
	}

	if id, ok := target.StudentID(); ok {
		if d.Phone != nil || d.Address != nil {
			return model.Person{}, &VariantError{Reason: "a student record cannot hold phone or address fields"}
		}
		if d.StudentID != nil {
			id = *d.StudentID
		}
		return model.NewStudent(id, core), nil
	}

	contact, _ := target.Contact()
	if d.StudentID != nil {
		return model.Person{}, &VariantError{Reason: "a contact record cannot hold a student ID"}
	}
	if d.Phone != nil {
		contact.Phone = *d.Phone
	}
	if d.Address != nil {
		contact.Address = *d.Address
	}
	return model.NewContactPerson(contact.Phone, contact.Address, core), nil
}

// changeLines enumerates exactly the edited fields with their new values.
func changeLines(edited model.Person, d *EditDescriptor) []string {
	var lines []string

	if d.Name != nil {
		lines = append(lines, "Name: "+edited.Name().String())
	}
	if d.Phone != nil {
		c, _ := edited.Contact()
		lines = append(lines, "Phone: "+c.Phone.String())
	}
	if d.Email != nil {
		lines = append(lines, "Email: "+edited.Email().String())
	}
	if d.Address != nil {
		c, _ := edited.Contact()
		lines = append(lines, "Address: "+c.Address.String())
	}
	if d.StudentID != nil {
		id, _ := edited.StudentID()
		lines = append(lines, "Student ID: "+id.String())
	}
	if d.ModuleCodes != nil {
		lines = append(lines, "Module Codes: "+joinModules(edited.ModuleCodes()))
	}
	if d.Tags != nil {
		lines = append(lines, "Tags: "+joinTags(edited.Tags()))
	}
	if d.Consultations != nil {
		lines = append(lines, "Consultations: "+joinConsultations(edited.Consultations()))
	}
	if d.Grade != nil {
		lines = append(lines, fmt.Sprintf("Grade updated: %s → %s", d.Grade.Assignment, d.Grade.FormatScore()))
	}
	if d.Attendance != nil {
		if d.Attendance.Status == model.StatusUnmark {
			lines = append(lines, fmt.Sprintf("Attendance unmarked: Week %d", d.Attendance.Week))
		} else {
			lines = append(lines, fmt.Sprintf("Attendance: Week %d → %s", d.Attendance.Week, d.Attendance.Status))
		}
	}
	if d.Remark != nil {
		lines = append(lines, "Remark: "+edited.Remark().String())
	}

	return lines
}

func joinModules(mods []model.ModuleCode) string {
	if len(mods) == 0 {
		return "None"
	}
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

func joinTags(tags []model.Tag) string {
	if len(tags) == 0 {
		return "None"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func joinConsultations(cs []model.Consultation) string {
	if len(cs) == 0 {
		return "None"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
