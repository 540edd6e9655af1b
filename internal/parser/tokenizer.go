// Package parser turns raw free-text command arguments into lookup keys and
// edit descriptors, using marker syntax (n/NAME t/TAG...).
package parser

import (
	"sort"
	"strings"
)

// Marker is a field prefix token, e.g. "n/".
type Marker string

// Recognized field markers.
const (
	MarkerName         Marker = "n/"
	MarkerPhone        Marker = "p/"
	MarkerEmail        Marker = "e/"
	MarkerAddress      Marker = "a/"
	MarkerStudentID    Marker = "id/"
	MarkerModuleCode   Marker = "m/"
	MarkerTag          Marker = "t/"
	MarkerConsultation Marker = "c/"
	MarkerGrade        Marker = "g/"
	MarkerWeek         Marker = "w/"
	MarkerRemark       Marker = "r/"
)

// ArgMap holds the result of tokenizing: the unmarked leading text plus the
// values attributed to each marker, in order of appearance.
type ArgMap struct {
	preamble string
	values   map[Marker][]string
}

type markerPos struct {
	marker Marker
	start  int // index of the marker itself
}

// Tokenize splits raw argument text into a preamble and marker->values pairs.
// A marker only counts when it starts the text or follows whitespace, so
// values may freely contain slashes ("Lab 1/2" stays one value).
func Tokenize(args string, markers ...Marker) *ArgMap {
	var positions []markerPos
	for _, m := range markers {
		positions = append(positions, findMarker(args, m)...)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	out := &ArgMap{values: make(map[Marker][]string)}
	if len(positions) == 0 {
		out.preamble = strings.TrimSpace(args)
		return out
	}

	out.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.marker) : end])
		out.values[pos.marker] = append(out.values[pos.marker], value)
	}
	return out
}

func findMarker(args string, m Marker) []markerPos {
	var out []markerPos
	from := 0
	for {
		idx := strings.Index(args[from:], string(m))
		if idx < 0 {
			return out
		}
		idx += from
		if idx == 0 || args[idx-1] == ' ' || args[idx-1] == '\t' {
			out = append(out, markerPos{marker: m, start: idx})
		}
		from = idx + 1
	}
}

// Preamble returns the unmarked text before the first marker.
func (m *ArgMap) Preamble() string { return m.preamble }

// Value returns the last value given for a marker.
func (m *ArgMap) Value(marker Marker) (string, bool) {
	vals := m.values[marker]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// All returns every value given for a marker, in order.
func (m *ArgMap) All(marker Marker) []string { return m.values[marker] }

// Duplicated returns the subset of the given single-valued markers that
// appear more than once.
func (m *ArgMap) Duplicated(markers ...Marker) []Marker {
	var out []Marker
	for _, marker := range markers {
		if len(m.values[marker]) > 1 {
			out = append(out, marker)
		}
	}
	return out
}
