// Package testutil provides a CLI test harness running the built tm binary
// against a throwaway roster directory.
package testutil

import (
	"testing"
)

// TestRoster is a temporary roster directory for CLI tests.
type TestRoster struct {
	Path string
	t    *testing.T
}

// NewTestRoster creates an empty roster directory that is cleaned up with the
// test.
func NewTestRoster(t *testing.T) *TestRoster {
	t.Helper()
	return &TestRoster{Path: t.TempDir(), t: t}
}

// SeedStudent adds a student record through the CLI.
func (r *TestRoster) SeedStudent(name, id, email string, extra ...string) {
	r.t.Helper()
	args := append([]string{"add", "n/" + name, "id/" + id, "e/" + email}, extra...)
	r.RunCLI(args...).MustSucceed(r.t)
}

// SeedContact adds a contact record through the CLI.
func (r *TestRoster) SeedContact(name, phone, email, address string, extra ...string) {
	r.t.Helper()
	args := append([]string{"add", "n/" + name, "p/" + phone, "e/" + email, "a/" + address}, extra...)
	r.RunCLI(args...).MustSucceed(r.t)
}
