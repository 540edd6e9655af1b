package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// filterKey is the meta row holding the active find keywords. Display
// filtering has to survive across invocations so that index-based commands
// operate on the list the user last saw.
const filterKey = "find_keywords"

// SaveFilterKeywords records the active find keywords. An empty slice clears
// the stored filter.
func (s *Store) SaveFilterKeywords(keywords []string) error {
	if len(keywords) == 0 {
		if _, err := s.db.Exec(`DELETE FROM meta WHERE key = ?`, filterKey); err != nil {
			return fmt.Errorf("failed to clear display filter: %w", err)
		}
		return nil
	}

	encoded, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to encode display filter: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		filterKey, string(encoded))
	if err != nil {
		return fmt.Errorf("failed to save display filter: %w", err)
	}
	return nil
}

// LoadFilterKeywords returns the stored find keywords, or nil when no filter
// is active.
func (s *Store) LoadFilterKeywords() ([]string, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, filterKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read display filter: %w", err)
	}

	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return nil, fmt.Errorf("failed to decode display filter: %w", err)
	}
	return keywords, nil
}
