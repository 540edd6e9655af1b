// Package model defines the domain value objects for roster records.
package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nameRe      = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ,.'\-]*$`)
	phoneRe     = regexp.MustCompile(`^\d{3,}$`)
	emailRe     = regexp.MustCompile(`^[A-Za-z0-9+_.\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*$`)
	studentIDRe = regexp.MustCompile(`^A\d{7}[A-Z]$`)
	moduleRe    = regexp.MustCompile(`^[A-Z]{2,4}\d{4}[A-Z]{0,2}$`)
	tagRe       = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// Name is a person's display name.
type Name string

// ParseName validates and returns a Name.
func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRe.MatchString(s) {
		return "", fmt.Errorf("names should only contain letters, numbers, spaces and basic punctuation, and must not be blank")
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a contact phone number.
type Phone string

// ParsePhone validates and returns a Phone.
func ParsePhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRe.MatchString(s) {
		return "", fmt.Errorf("phone numbers should only contain digits, and should be at least 3 digits long")
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Email is a contact email address.
type Email string

// ParseEmail validates and returns an Email.
func ParseEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRe.MatchString(s) {
		return "", fmt.Errorf("emails should be of the form local-part@domain")
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Address is a free-form postal address.
type Address string

// ParseAddress validates and returns an Address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("addresses must not be blank")
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// StudentID is the unique student identifier, e.g. A1234567X.
type StudentID string

// ParseStudentID validates and returns a StudentID.
// The expected format is an 'A' followed by 7 digits and an uppercase letter.
func ParseStudentID(s string) (StudentID, error) {
	s = strings.TrimSpace(s)
	if !studentIDRe.MatchString(s) {
		return "", fmt.Errorf("student IDs should be of the form A1234567X: 'A', 7 digits, then an uppercase letter")
	}
	return StudentID(s), nil
}

func (id StudentID) String() string { return string(id) }

// ModuleCode is a module/course code, e.g. CS2103T.
type ModuleCode string

// ParseModuleCode validates and returns a ModuleCode. Input is uppercased.
func ParseModuleCode(s string) (ModuleCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !moduleRe.MatchString(s) {
		return "", fmt.Errorf("module codes should be 2-4 letters, 4 digits, and up to 2 trailing letters, e.g. CS2103T")
	}
	return ModuleCode(s), nil
}

func (m ModuleCode) String() string { return string(m) }

// Tag is a free-form alphanumeric label.
type Tag string

// ParseTag validates and returns a Tag.
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagRe.MatchString(s) {
		return "", fmt.Errorf("tags should be alphanumeric with no spaces")
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }

// Remark is optional free text attached to a record. Empty is valid.
type Remark string

// ParseRemark returns a Remark. Any text is accepted.
func ParseRemark(s string) (Remark, error) {
	return Remark(strings.TrimSpace(s)), nil
}

func (r Remark) String() string { return string(r) }
