package storage

import (
	"testing"
)

func TestFilterKeywordsRoundTrip(t *testing.T) {
	s := openStore(t)

	got, err := s.LoadFilterKeywords()
	if err != nil {
		t.Fatalf("LoadFilterKeywords: %v", err)
	}
	if got != nil {
		t.Errorf("fresh store has keywords %v", got)
	}

	if err := s.SaveFilterKeywords([]string{"alice", "bob"}); err != nil {
		t.Fatalf("SaveFilterKeywords: %v", err)
	}
	got, err = s.LoadFilterKeywords()
	if err != nil {
		t.Fatalf("LoadFilterKeywords: %v", err)
	}
	if len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Errorf("keywords = %v", got)
	}

	// Saving again overwrites.
	if err := s.SaveFilterKeywords([]string{"carl"}); err != nil {
		t.Fatalf("SaveFilterKeywords: %v", err)
	}
	got, _ = s.LoadFilterKeywords()
	if len(got) != 1 || got[0] != "carl" {
		t.Errorf("keywords after overwrite = %v", got)
	}

	// An empty slice clears the stored filter.
	if err := s.SaveFilterKeywords(nil); err != nil {
		t.Fatalf("SaveFilterKeywords(nil): %v", err)
	}
	got, _ = s.LoadFilterKeywords()
	if got != nil {
		t.Errorf("keywords after clear = %v", got)
	}
}
