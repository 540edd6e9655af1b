package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxWeek is the last teaching week attendance can be recorded for.
const MaxWeek = 13

// Week is a 1-based teaching week number.
type Week int

// ParseWeek validates and returns a Week in the range 1..MaxWeek.
func ParseWeek(s string) (Week, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > MaxWeek {
		return 0, fmt.Errorf("week must be a number between 1 and %d", MaxWeek)
	}
	return Week(n), nil
}

// AttendanceStatus is the recorded status for one week.
type AttendanceStatus string

// Attendance statuses. StatusUnmark is a sentinel: it is never stored, it
// requests removal of the week's entry.
const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusUnmark  AttendanceStatus = "unmark"
)

// ParseAttendanceStatus parses a status value, case-insensitively.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "p":
		return StatusPresent, nil
	case "absent", "a":
		return StatusAbsent, nil
	case "unmark", "u":
		return StatusUnmark, nil
	}
	return "", fmt.Errorf("attendance status must be one of: present, absent, unmark")
}

func (s AttendanceStatus) String() string { return string(s) }

// Attendance pairs a week with a status, as given on the command line (w/3:present).
type Attendance struct {
	Week   Week
	Status AttendanceStatus
}

// ParseAttendance parses "WEEK:STATUS".
func ParseAttendance(s string) (Attendance, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Attendance{}, fmt.Errorf("attendance should be of the form WEEK:STATUS, e.g. 3:present")
	}
	week, err := ParseWeek(parts[0])
	if err != nil {
		return Attendance{}, err
	}
	status, err := ParseAttendanceStatus(parts[1])
	if err != nil {
		return Attendance{}, err
	}
	return Attendance{Week: week, Status: status}, nil
}

// AttendanceRecord maps weeks to statuses. The zero value is usable.
// Mark and Unmark copy on write so shared records are never mutated.
type AttendanceRecord struct {
	weeks map[Week]AttendanceStatus
}

// NewAttendanceRecord builds a record from week->status entries.
func NewAttendanceRecord(entries map[Week]AttendanceStatus) AttendanceRecord {
	if len(entries) == 0 {
		return AttendanceRecord{}
	}
	weeks := make(map[Week]AttendanceStatus, len(entries))
	for w, s := range entries {
		weeks[w] = s
	}
	return AttendanceRecord{weeks: weeks}
}

// Mark returns a copy of the record with the week's status upserted.
func (r AttendanceRecord) Mark(w Week, s AttendanceStatus) AttendanceRecord {
	weeks := r.copyWeeks(1)
	weeks[w] = s
	return AttendanceRecord{weeks: weeks}
}

// Unmark returns a copy of the record with the week's entry removed.
// Unmarking a week with no entry is a no-op.
func (r AttendanceRecord) Unmark(w Week) AttendanceRecord {
	weeks := r.copyWeeks(0)
	delete(weeks, w)
	return AttendanceRecord{weeks: weeks}
}

// Status reports the status recorded for a week, if any.
func (r AttendanceRecord) Status(w Week) (AttendanceStatus, bool) {
	s, ok := r.weeks[w]
	return s, ok
}

// Len reports the number of marked weeks.
func (r AttendanceRecord) Len() int { return len(r.weeks) }

// Weeks returns the marked weeks in ascending order.
func (r AttendanceRecord) Weeks() []Week {
	out := make([]Week, 0, len(r.weeks))
	for w := range r.weeks {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entries returns a copy of the week->status map.
func (r AttendanceRecord) Entries() map[Week]AttendanceStatus {
	return NewAttendanceRecord(r.weeks).weeks
}

func (r AttendanceRecord) copyWeeks(extra int) map[Week]AttendanceStatus {
	weeks := make(map[Week]AttendanceStatus, len(r.weeks)+extra)
	for w, s := range r.weeks {
		weeks[w] = s
	}
	return weeks
}
