package parser

import "strings"

// FormatError indicates malformed command arguments. It always carries the
// command's usage text so callers can show corrective guidance.
type FormatError struct {
	Reason string
	Usage  string
}

func (e *FormatError) Error() string {
	return "invalid command format: " + e.Reason
}

func formatErr(usage string, err error) *FormatError {
	return &FormatError{Reason: err.Error(), Usage: usage}
}

func duplicateMarkersErr(usage string, markers []Marker) *FormatError {
	parts := make([]string, len(markers))
	for i, m := range markers {
		parts[i] = string(m)
	}
	return &FormatError{
		Reason: "multiple values specified for single-valued field(s): " + strings.Join(parts, " "),
		Usage:  usage,
	}
}
