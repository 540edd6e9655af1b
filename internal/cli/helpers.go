package cli

import (
	"strings"

	"github.com/aidanlsb/teachmate/internal/parser"
	"github.com/aidanlsb/teachmate/internal/records"
	"github.com/aidanlsb/teachmate/internal/storage"
)

// session bundles the open store, the loaded roster, and the active display
// filter keywords. The filter is persisted so index-based commands operate on
// the list the user last saw.
type session struct {
	store    *storage.Store
	roster   *records.Roster
	keywords []string
}

// openSession opens the roster store, loads all records, and reapplies the
// stored display filter.
func openSession() (*session, error) {
	store, err := storage.Open(getRosterPath())
	if err != nil {
		return nil, err
	}

	roster, err := store.Load()
	if err != nil {
		store.Close()
		return nil, err
	}

	keywords, err := store.LoadFilterKeywords()
	if err != nil {
		store.Close()
		return nil, err
	}
	if len(keywords) > 0 {
		filter, _, err := parser.ParseFindArgs(strings.Join(keywords, " "))
		if err == nil {
			roster.SetFilter(filter)
		} else {
			keywords = nil
		}
	}

	return &session{store: store, roster: roster, keywords: keywords}, nil
}

// commit persists the roster and the active filter keywords.
func (s *session) commit() error {
	if err := s.store.Save(s.roster); err != nil {
		return err
	}
	return s.store.SaveFilterKeywords(s.keywords)
}

func (s *session) close() {
	s.store.Close()
}
