package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade is a score for a named assignment.
type Grade struct {
	Assignment string
	Score      float64
}

// ParseGrade parses "ASSIGNMENT_NAME:SCORE". The score must be 0-100.
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, ":")
	if idx <= 0 || idx == len(s)-1 {
		return Grade{}, fmt.Errorf("grades should be of the form ASSIGNMENT_NAME:SCORE, e.g. Quiz 1:85")
	}

	name := strings.TrimSpace(s[:idx])
	score, err := strconv.ParseFloat(strings.TrimSpace(s[idx+1:]), 64)
	if err != nil {
		return Grade{}, fmt.Errorf("grade score must be a number, got %q", s[idx+1:])
	}
	if score < 0 || score > 100 {
		return Grade{}, fmt.Errorf("grade score must be between 0 and 100, got %v", score)
	}
	if name == "" {
		return Grade{}, fmt.Errorf("grade assignment name must not be blank")
	}

	return Grade{Assignment: name, Score: score}, nil
}

// FormatScore renders the score without trailing zeros (85, 85.5).
func (g Grade) FormatScore() string {
	return strconv.FormatFloat(g.Score, 'f', -1, 64)
}

func (g Grade) String() string {
	return fmt.Sprintf("%s: %s", g.Assignment, g.FormatScore())
}
