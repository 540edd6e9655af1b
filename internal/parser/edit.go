package parser

import (
	"github.com/aidanlsb/teachmate/internal/model"
	"github.com/aidanlsb/teachmate/internal/records"
)

// EditUsage is the usage text shown with edit format errors.
const EditUsage = "edit: edits the record at INDEX in the displayed list. " +
	"Existing values are overwritten by the input values.\n" +
	"Parameters: INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [id/STUDENT_ID] " +
	"[m/MODULE_CODE]... [t/TAG]... [c/CONSULTATION]... " +
	"[g/ASSIGNMENT_NAME:SCORE] [w/WEEK:STATUS] [r/REMARK]\n" +
	"Example: edit 1 p/91234567 e/johndoe@example.com"

// editMarkers is every marker the edit command recognizes.
var editMarkers = []Marker{
	MarkerName, MarkerPhone, MarkerEmail, MarkerAddress, MarkerStudentID,
	MarkerModuleCode, MarkerTag, MarkerConsultation,
	MarkerGrade, MarkerWeek, MarkerRemark,
}

// singleValuedEditMarkers may appear at most once per edit.
var singleValuedEditMarkers = []Marker{
	MarkerName, MarkerPhone, MarkerEmail, MarkerAddress, MarkerStudentID,
	MarkerGrade, MarkerWeek, MarkerRemark,
}

// ParseEditArgs parses edit arguments into a display index and a sparse edit
// descriptor populated from whichever markers are present.
func ParseEditArgs(args string) (int, *records.EditDescriptor, error) {
	m := Tokenize(args, editMarkers...)

	index, err := parseIndex(m.Preamble())
	if err != nil {
		return 0, nil, formatErr(EditUsage, err)
	}

	if dupes := m.Duplicated(singleValuedEditMarkers...); len(dupes) > 0 {
		return 0, nil, duplicateMarkersErr(EditUsage, dupes)
	}

	d := &records.EditDescriptor{}

	if raw, ok := m.Value(MarkerName); ok {
		name, err := model.ParseName(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Name = &name
	}
	if raw, ok := m.Value(MarkerPhone); ok {
		phone, err := model.ParsePhone(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Phone = &phone
	}
	if raw, ok := m.Value(MarkerEmail); ok {
		email, err := model.ParseEmail(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Email = &email
	}
	if raw, ok := m.Value(MarkerAddress); ok {
		addr, err := model.ParseAddress(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Address = &addr
	}
	if raw, ok := m.Value(MarkerStudentID); ok {
		id, err := model.ParseStudentID(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.StudentID = &id
	}

	if vals := m.All(MarkerModuleCode); vals != nil {
		mods, err := parseModuleCodes(vals)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.ModuleCodes = mods
	}
	if vals := m.All(MarkerTag); vals != nil {
		tags, err := parseTags(vals)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Tags = tags
	}
	if vals := m.All(MarkerConsultation); vals != nil {
		cs, err := parseConsultations(vals)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Consultations = cs
	}

	if raw, ok := m.Value(MarkerGrade); ok {
		grade, err := model.ParseGrade(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Grade = &grade
	}
	if raw, ok := m.Value(MarkerWeek); ok {
		att, err := model.ParseAttendance(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Attendance = &att
	}
	if raw, ok := m.Value(MarkerRemark); ok {
		remark, err := model.ParseRemark(raw)
		if err != nil {
			return 0, nil, formatErr(EditUsage, err)
		}
		d.Remark = &remark
	}

	return index, d, nil
}

// parseModuleCodes parses a multi-valued marker's occurrences. A single empty
// occurrence ("m/" alone) clears the collection.
func parseModuleCodes(vals []string) ([]model.ModuleCode, error) {
	if clearsCollection(vals) {
		return []model.ModuleCode{}, nil
	}
	out := make([]model.ModuleCode, 0, len(vals))
	for _, v := range vals {
		mod, err := model.ParseModuleCode(v)
		if err != nil {
			return nil, err
		}
		out = append(out, mod)
	}
	return out, nil
}

func parseTags(vals []string) ([]model.Tag, error) {
	if clearsCollection(vals) {
		return []model.Tag{}, nil
	}
	out := make([]model.Tag, 0, len(vals))
	for _, v := range vals {
		tag, err := model.ParseTag(v)
		if err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, nil
}

func parseConsultations(vals []string) ([]model.Consultation, error) {
	if clearsCollection(vals) {
		return []model.Consultation{}, nil
	}
	out := make([]model.Consultation, 0, len(vals))
	for _, v := range vals {
		c, err := model.ParseConsultation(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func clearsCollection(vals []string) bool {
	return len(vals) == 1 && vals[0] == ""
}
