package parser

import (
	"fmt"

	"github.com/aidanlsb/teachmate/internal/model"
)

// AddUsage is the usage text shown with add format errors.
const AddUsage = "add: adds a record to the roster.\n" +
	"Student:  add n/NAME id/STUDENT_ID e/EMAIL [m/MODULE_CODE]... [t/TAG]... [r/REMARK]\n" +
	"Contact:  add n/NAME p/PHONE e/EMAIL a/ADDRESS [m/MODULE_CODE]... [t/TAG]... [r/REMARK]\n" +
	"Example: add n/Amy Tan id/A1234567X e/amy@example.com m/CS2103T"

var addMarkers = []Marker{
	MarkerName, MarkerPhone, MarkerEmail, MarkerAddress, MarkerStudentID,
	MarkerModuleCode, MarkerTag, MarkerRemark,
}

// ParseAddArgs parses add arguments into a new person. The id/ marker selects
// the student variant; otherwise p/ and a/ are required and the contact
// variant is built. Mixing id/ with p/ or a/ is a format error.
func ParseAddArgs(args string) (model.Person, error) {
	m := Tokenize(args, addMarkers...)

	if m.Preamble() != "" {
		return model.Person{}, &FormatError{
			Reason: fmt.Sprintf("unexpected leading text %q", m.Preamble()),
			Usage:  AddUsage,
		}
	}
	if dupes := m.Duplicated(MarkerName, MarkerPhone, MarkerEmail, MarkerAddress, MarkerStudentID, MarkerRemark); len(dupes) > 0 {
		return model.Person{}, duplicateMarkersErr(AddUsage, dupes)
	}

	rawName, ok := m.Value(MarkerName)
	if !ok {
		return model.Person{}, &FormatError{Reason: "n/NAME is required", Usage: AddUsage}
	}
	name, err := model.ParseName(rawName)
	if err != nil {
		return model.Person{}, formatErr(AddUsage, err)
	}

	rawEmail, ok := m.Value(MarkerEmail)
	if !ok {
		return model.Person{}, &FormatError{Reason: "e/EMAIL is required", Usage: AddUsage}
	}
	email, err := model.ParseEmail(rawEmail)
	if err != nil {
		return model.Person{}, formatErr(AddUsage, err)
	}

	core := model.Core{Name: name, Email: email}

	if vals := m.All(MarkerModuleCode); vals != nil {
		core.ModuleCodes, err = parseModuleCodes(vals)
		if err != nil {
			return model.Person{}, formatErr(AddUsage, err)
		}
	}
	if vals := m.All(MarkerTag); vals != nil {
		core.Tags, err = parseTags(vals)
		if err != nil {
			return model.Person{}, formatErr(AddUsage, err)
		}
	}
	if raw, ok := m.Value(MarkerRemark); ok {
		core.Remark, err = model.ParseRemark(raw)
		if err != nil {
			return model.Person{}, formatErr(AddUsage, err)
		}
	}

	rawID, hasID := m.Value(MarkerStudentID)
	_, hasPhone := m.Value(MarkerPhone)
	_, hasAddress := m.Value(MarkerAddress)

	if hasID {
		if hasPhone || hasAddress {
			return model.Person{}, &FormatError{
				Reason: "a student record cannot hold phone or address fields",
				Usage:  AddUsage,
			}
		}
		id, err := model.ParseStudentID(rawID)
		if err != nil {
			return model.Person{}, formatErr(AddUsage, err)
		}
		return model.NewStudent(id, core), nil
	}

	rawPhone, ok := m.Value(MarkerPhone)
	if !ok {
		return model.Person{}, &FormatError{Reason: "either id/STUDENT_ID or p/PHONE and a/ADDRESS are required", Usage: AddUsage}
	}
	phone, err := model.ParsePhone(rawPhone)
	if err != nil {
		return model.Person{}, formatErr(AddUsage, err)
	}

	rawAddr, ok := m.Value(MarkerAddress)
	if !ok {
		return model.Person{}, &FormatError{Reason: "a/ADDRESS is required for contact records", Usage: AddUsage}
	}
	addr, err := model.ParseAddress(rawAddr)
	if err != nil {
		return model.Person{}, formatErr(AddUsage, err)
	}

	return model.NewContactPerson(phone, addr, core), nil
}
