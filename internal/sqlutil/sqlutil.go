// Package sqlutil holds small helpers shared by SQL-backed storage.
package sqlutil

import "database/sql"

// ScanRows scans all rows into a slice using the provided scanner and closes
// the rows.
func ScanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
