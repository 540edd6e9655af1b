package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIndex parses a 1-based display index.
func parseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("index must be a positive integer, got %q", s)
	}
	return n, nil
}
