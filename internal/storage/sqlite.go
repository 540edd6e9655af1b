// Package storage persists the roster in a SQLite database.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/teachmate/internal/model"
	"github.com/aidanlsb/teachmate/internal/records"
	"github.com/aidanlsb/teachmate/internal/sqlutil"
)

// schemaVersion is bumped when the people table layout changes.
const schemaVersion = "1"

// DBFileName is the database file created inside the roster directory.
const DBFileName = "roster.db"

// Store is the SQLite-backed roster store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the roster database inside dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create roster directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open roster database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) initialize() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS people (
			position      INTEGER PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL,
			phone         TEXT,
			address       TEXT,
			student_id    TEXT,
			module_codes  TEXT NOT NULL DEFAULT '[]',
			tags          TEXT NOT NULL DEFAULT '[]',
			grades        TEXT NOT NULL DEFAULT '[]',
			attendance    TEXT NOT NULL DEFAULT '{}',
			consultations TEXT NOT NULL DEFAULT '[]',
			remark        TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	var current string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&current)
	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.Exec(`INSERT INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
		if err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case current != schemaVersion:
		return fmt.Errorf("roster database schema version %s is not supported (want %s)", current, schemaVersion)
	}
	return nil
}

// personRow is the flat table shape; collections are JSON columns.
type personRow struct {
	Name          string
	Email         string
	Phone         sql.NullString
	Address       sql.NullString
	StudentID     sql.NullString
	ModuleCodes   string
	Tags          string
	Grades        string
	Attendance    string
	Consultations string
	Remark        string
}

// Load reads the whole roster in stored order.
func (s *Store) Load() (*records.Roster, error) {
	rows, err := s.db.Query(`
		SELECT name, email, phone, address, student_id,
		       module_codes, tags, grades, attendance, consultations, remark
		FROM people ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	scanned, err := sqlutil.ScanRows(rows, func(rows *sql.Rows) (personRow, error) {
		var r personRow
		err := rows.Scan(&r.Name, &r.Email, &r.Phone, &r.Address, &r.StudentID,
			&r.ModuleCodes, &r.Tags, &r.Grades, &r.Attendance, &r.Consultations, &r.Remark)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan roster: %w", err)
	}

	roster := records.New()
	for _, row := range scanned {
		p, err := row.toPerson()
		if err != nil {
			return nil, err
		}
		if err := roster.Add(p); err != nil {
			return nil, fmt.Errorf("stored roster is inconsistent: %w", err)
		}
	}
	return roster, nil
}

// Save writes the whole roster in one transaction, replacing prior contents.
func (s *Store) Save(roster *records.Roster) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM people`); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO people (position, name, email, phone, address, student_id,
		                    module_codes, tags, grades, attendance, consultations, remark)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range roster.All() {
		row, err := toRow(p)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(i, row.Name, row.Email, row.Phone, row.Address, row.StudentID,
			row.ModuleCodes, row.Tags, row.Grades, row.Attendance, row.Consultations, row.Remark); err != nil {
			return fmt.Errorf("failed to write record %q: %w", row.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

type gradeJSON struct {
	Assignment string  `json:"assignment"`
	Score      float64 `json:"score"`
}

func toRow(p model.Person) (personRow, error) {
	row := personRow{
		Name:   p.Name().String(),
		Email:  p.Email().String(),
		Remark: p.Remark().String(),
	}
	if c, ok := p.Contact(); ok {
		row.Phone = sql.NullString{String: c.Phone.String(), Valid: true}
		row.Address = sql.NullString{String: c.Address.String(), Valid: true}
	}
	if id, ok := p.StudentID(); ok {
		row.StudentID = sql.NullString{String: id.String(), Valid: true}
	}

	mods := make([]string, 0)
	for _, m := range p.ModuleCodes() {
		mods = append(mods, m.String())
	}
	tags := make([]string, 0)
	for _, t := range p.Tags() {
		tags = append(tags, t.String())
	}
	grades := make([]gradeJSON, 0)
	for _, g := range p.GradeList() {
		grades = append(grades, gradeJSON{Assignment: g.Assignment, Score: g.Score})
	}
	attendance := make(map[string]string)
	for w, status := range p.Attendance().Entries() {
		attendance[fmt.Sprintf("%d", w)] = status.String()
	}
	consultations := make([]string, 0)
	for _, c := range p.Consultations() {
		consultations = append(consultations, c.String())
	}

	var err error
	if row.ModuleCodes, err = marshalColumn(mods); err != nil {
		return personRow{}, err
	}
	if row.Tags, err = marshalColumn(tags); err != nil {
		return personRow{}, err
	}
	if row.Grades, err = marshalColumn(grades); err != nil {
		return personRow{}, err
	}
	if row.Attendance, err = marshalColumn(attendance); err != nil {
		return personRow{}, err
	}
	if row.Consultations, err = marshalColumn(consultations); err != nil {
		return personRow{}, err
	}
	return row, nil
}

func marshalColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode roster column: %w", err)
	}
	return string(b), nil
}

func (r personRow) toPerson() (model.Person, error) {
	var mods []string
	var tags []string
	var grades []gradeJSON
	var attendance map[string]string
	var consultations []string

	for _, col := range []struct {
		raw  string
		into any
	}{
		{r.ModuleCodes, &mods},
		{r.Tags, &tags},
		{r.Grades, &grades},
		{r.Attendance, &attendance},
		{r.Consultations, &consultations},
	} {
		if err := json.Unmarshal([]byte(col.raw), col.into); err != nil {
			return model.Person{}, fmt.Errorf("failed to decode record %q: %w", r.Name, err)
		}
	}

	core := model.Core{
		Name:   model.Name(r.Name),
		Email:  model.Email(r.Email),
		Remark: model.Remark(r.Remark),
	}
	for _, m := range mods {
		core.ModuleCodes = append(core.ModuleCodes, model.ModuleCode(m))
	}
	for _, t := range tags {
		core.Tags = append(core.Tags, model.Tag(t))
	}
	if len(grades) > 0 {
		core.Grades = make(map[string]model.Grade, len(grades))
		for _, g := range grades {
			core.Grades[g.Assignment] = model.Grade{Assignment: g.Assignment, Score: g.Score}
		}
	}
	if len(attendance) > 0 {
		weeks := make(map[model.Week]model.AttendanceStatus, len(attendance))
		for raw, status := range attendance {
			week, err := model.ParseWeek(raw)
			if err != nil {
				return model.Person{}, fmt.Errorf("failed to decode attendance for %q: %w", r.Name, err)
			}
			weeks[week] = model.AttendanceStatus(status)
		}
		core.Attendance = model.NewAttendanceRecord(weeks)
	}
	for _, raw := range consultations {
		c, err := model.ParseConsultation(raw)
		if err != nil {
			return model.Person{}, fmt.Errorf("failed to decode consultation for %q: %w", r.Name, err)
		}
		core.Consultations = append(core.Consultations, c)
	}

	if r.StudentID.Valid {
		return model.NewStudent(model.StudentID(r.StudentID.String), core), nil
	}
	return model.NewContactPerson(model.Phone(r.Phone.String), model.Address(r.Address.String), core), nil
}
