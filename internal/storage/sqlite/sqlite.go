// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// It exists for installs that want both collections in one database
// file instead of two JSON files. The observable contract is identical
// to the jsonfile store, with one addition: the unique keys (teacher
// ID, student roll number) are also declared UNIQUE in the schema, so
// the database itself rejects a duplicate even if a caller skips the
// pre-check. That violation surfaces as storage.ErrDuplicateKey.
//
// Importing mattn/go-sqlite3 registers the "sqlite3" driver with
// database/sql as a side effect; the package is also referenced
// directly to inspect constraint errors.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/kunaltiwari/school-records/internal/config"
	"github.com/kunaltiwari/school-records/internal/storage"
	"github.com/kunaltiwari/school-records/internal/types"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is safe for concurrent use, though this application
// never exercises that.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at cfg.SQLitePath, creates the two
// collection tables if they do not already exist, and returns a
// ready-to-use *SQLite.
//
// The id column is an autoincrement rowid used only to preserve
// insertion order on reads; it is never exposed to callers.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS teachers (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			name         TEXT    NOT NULL,
			subject      TEXT    NOT NULL,
			teacher_id   TEXT    NOT NULL UNIQUE,
			address      TEXT    NOT NULL,
			email        TEXT    NOT NULL,
			phone_number INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS students (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			name         TEXT    NOT NULL,
			roll_number  TEXT    NOT NULL UNIQUE,
			email        TEXT    NOT NULL,
			phone_number INTEGER NOT NULL,
			marks        TEXT    NOT NULL,
			address      TEXT    NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// asStorageErr translates driver-level unique-constraint violations
// into the shared storage.ErrDuplicateKey sentinel so callers never
// have to know which backend they are talking to.
func asStorageErr(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return storage.ErrDuplicateKey
	}
	return err
}

// ─────────────────────────────────────────────────────────────────────
// Teacher collection.
// ─────────────────────────────────────────────────────────────────────

func (s *SQLite) CreateTeacher(t types.Teacher) error {
	stmt, err := s.Db.Prepare(`
		INSERT INTO teachers (name, subject, teacher_id, address, email, phone_number)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("CreateTeacher: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(t.Name, t.Subject, t.ID, t.Address, t.Email, t.PhoneNumber); err != nil {
		if dup := asStorageErr(err); dup == storage.ErrDuplicateKey {
			return dup
		}
		return fmt.Errorf("CreateTeacher: exec: %w", err)
	}
	return nil
}

func (s *SQLite) GetTeachers() ([]types.Teacher, error) {
	rows, err := s.Db.Query(`
		SELECT name, subject, teacher_id, address, email, phone_number
		FROM teachers ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("GetTeachers: query: %w", err)
	}
	defer rows.Close()

	teachers := make([]types.Teacher, 0)
	for rows.Next() {
		var t types.Teacher
		if err := rows.Scan(&t.Name, &t.Subject, &t.ID, &t.Address, &t.Email, &t.PhoneNumber); err != nil {
			return nil, fmt.Errorf("GetTeachers: scan row: %w", err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetTeachers: rows iteration: %w", err)
	}
	return teachers, nil
}

func (s *SQLite) FindTeacherByName(name string) (types.Teacher, error) {
	stmt, err := s.Db.Prepare(`
		SELECT name, subject, teacher_id, address, email, phone_number
		FROM teachers WHERE name = ? ORDER BY id LIMIT 1
	`)
	if err != nil {
		return types.Teacher{}, fmt.Errorf("FindTeacherByName: prepare: %w", err)
	}
	defer stmt.Close()

	var t types.Teacher
	err = stmt.QueryRow(name).Scan(&t.Name, &t.Subject, &t.ID, &t.Address, &t.Email, &t.PhoneNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Teacher{}, storage.ErrNoMatchingName
		}
		return types.Teacher{}, fmt.Errorf("FindTeacherByName: scan: %w", err)
	}
	return t, nil
}

func (s *SQLite) DeleteTeachersByName(name string) (int, error) {
	stmt, err := s.Db.Prepare("DELETE FROM teachers WHERE name = ?")
	if err != nil {
		return 0, fmt.Errorf("DeleteTeachersByName: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name)
	if err != nil {
		return 0, fmt.Errorf("DeleteTeachersByName: exec: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteTeachersByName: rows affected: %w", err)
	}
	return int(n), nil
}

// ─────────────────────────────────────────────────────────────────────
// Student collection. Marks are stored as a JSON object in a TEXT
// column — same shape the jsonfile store uses on disk.
// ─────────────────────────────────────────────────────────────────────

func (s *SQLite) CreateStudent(st types.Student) error {
	marks, err := json.Marshal(st.Marks)
	if err != nil {
		return fmt.Errorf("CreateStudent: encode marks: %w", err)
	}

	stmt, err := s.Db.Prepare(`
		INSERT INTO students (name, roll_number, email, phone_number, marks, address)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(st.Name, st.RollNumber, st.Email, st.PhoneNumber, string(marks), st.Address); err != nil {
		if dup := asStorageErr(err); dup == storage.ErrDuplicateKey {
			return dup
		}
		return fmt.Errorf("CreateStudent: exec: %w", err)
	}
	return nil
}

func (s *SQLite) GetStudents() ([]types.Student, error) {
	rows, err := s.Db.Query(`
		SELECT name, roll_number, email, phone_number, marks, address
		FROM students ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("GetStudents: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}
	return students, nil
}

func (s *SQLite) FindStudentByName(name string) (types.Student, error) {
	rows, err := s.Db.Query(`
		SELECT name, roll_number, email, phone_number, marks, address
		FROM students WHERE name = ? ORDER BY id LIMIT 1
	`, name)
	if err != nil {
		return types.Student{}, fmt.Errorf("FindStudentByName: query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return types.Student{}, fmt.Errorf("FindStudentByName: %w", err)
		}
		return types.Student{}, storage.ErrNoMatchingName
	}
	st, err := scanStudent(rows)
	if err != nil {
		return types.Student{}, fmt.Errorf("FindStudentByName: %w", err)
	}
	return st, nil
}

func (s *SQLite) DeleteStudentsByName(name string) (int, error) {
	stmt, err := s.Db.Prepare("DELETE FROM students WHERE name = ?")
	if err != nil {
		return 0, fmt.Errorf("DeleteStudentsByName: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name)
	if err != nil {
		return 0, fmt.Errorf("DeleteStudentsByName: exec: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteStudentsByName: rows affected: %w", err)
	}
	return int(n), nil
}

// scanStudent reads one student row, decoding the marks JSON column.
func scanStudent(rows *sql.Rows) (types.Student, error) {
	var (
		st    types.Student
		marks string
	)
	if err := rows.Scan(&st.Name, &st.RollNumber, &st.Email, &st.PhoneNumber, &marks, &st.Address); err != nil {
		return types.Student{}, fmt.Errorf("scan row: %w", err)
	}
	if err := json.Unmarshal([]byte(marks), &st.Marks); err != nil {
		return types.Student{}, fmt.Errorf("decode marks: %w", err)
	}
	return st, nil
}
