package parser

import (
	"strings"

	"github.com/aidanlsb/teachmate/internal/model"
	"github.com/aidanlsb/teachmate/internal/records"
)

// FindUsage is the usage text shown with find format errors.
const FindUsage = "find: lists records whose names contain any of the given keywords.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: find alice bob charlie"

// ParseFindArgs parses find arguments into a name-matching display filter.
// Matching is case-insensitive on whole words.
func ParseFindArgs(args string) (records.Filter, []string, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, nil, &FormatError{Reason: "at least one keyword is required", Usage: FindUsage}
	}

	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	filter := func(p model.Person) bool {
		for _, word := range strings.Fields(strings.ToLower(p.Name().String())) {
			for _, k := range lowered {
				if word == k {
					return true
				}
			}
		}
		return false
	}
	return filter, keywords, nil
}

// DeleteUsage is the usage text shown with delete format errors.
const DeleteUsage = "delete: deletes the record at INDEX in the displayed list.\n" +
	"Parameters: INDEX (a positive integer)\n" +
	"Example: delete 1"

// ParseDeleteArgs parses delete arguments into a display index.
func ParseDeleteArgs(args string) (int, error) {
	index, err := parseIndex(args)
	if err != nil {
		return 0, formatErr(DeleteUsage, err)
	}
	return index, nil
}
