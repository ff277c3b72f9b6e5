// Package jsonfile provides the default, file-backed implementation of
// the storage.Storage interface.
//
// Each collection (teachers, students) lives in its own file as a JSON
// array of flat records, indented with 4 spaces — human-readable and
// stable under reload. Every operation is a fresh read of the whole
// file, an in-memory transform, and a full rewrite: there is no cache,
// no diffing, and no partial update.
//
// A missing file is treated as an empty collection, never as an error.
// That makes first run work with no setup step, at the cost of a
// mistyped path silently behaving as "no records".
//
// There is no locking and no atomicity across the read/rewrite pair:
// the system is single-user and single-process by design, and a second
// concurrent writer would lose updates (last writer wins).
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kunaltiwari/school-records/internal/config"
	"github.com/kunaltiwari/school-records/internal/storage"
	"github.com/kunaltiwari/school-records/internal/types"
)

// indent matches the historical on-disk format of the collection files.
const indent = "    "

// Store is the concrete jsonfile implementation of storage.Storage.
type Store struct {
	teachersPath string
	studentsPath string
}

// compile-time check that Store satisfies the interface.
var _ storage.Storage = (*Store)(nil)

// New returns a Store using the collection paths from cfg. It creates
// the parent directories so the first write does not fail, but it does
// NOT create the collection files themselves — absent files already
// read as empty collections.
func New(cfg *config.Config) (*Store, error) {
	for _, p := range []string{cfg.TeachersPath, cfg.StudentsPath} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("jsonfile.New: create dir %s: %w", dir, err)
			}
		}
	}

	return &Store{
		teachersPath: cfg.TeachersPath,
		studentsPath: cfg.StudentsPath,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────
// Blob layer: read-all / write-all / append on one collection file.
// Generic so the same three functions serve both record types.
// ─────────────────────────────────────────────────────────────────────

// readAll loads the whole collection. A missing file yields an empty
// (non-nil) slice; any other failure is an error.
func readAll[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	records := make([]T, 0)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

// writeAll replaces the whole collection file with records.
func writeAll[T any](path string, records []T) error {
	raw, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// appendOne is readAll + push + writeAll. Not atomic — see the
// package comment.
func appendOne[T any](path string, record T) error {
	records, err := readAll[T](path)
	if err != nil {
		return err
	}
	return writeAll(path, append(records, record))
}

// findByName returns the first record whose name (per nameOf) equals
// name, in stored order. Duplicate names resolve to the earliest one.
func findByName[T any](path, name string, nameOf func(T) string) (T, error) {
	var zero T

	records, err := readAll[T](path)
	if err != nil {
		return zero, err
	}
	for _, r := range records {
		if nameOf(r) == name {
			return r, nil
		}
	}
	return zero, storage.ErrNoMatchingName
}

// deleteByName filters out every record matching name, writes the rest
// back, and reports how many were dropped. When nothing matched the
// file is left untouched.
func deleteByName[T any](path, name string, nameOf func(T) string) (int, error) {
	records, err := readAll[T](path)
	if err != nil {
		return 0, err
	}

	kept := make([]T, 0, len(records))
	for _, r := range records {
		if nameOf(r) != name {
			kept = append(kept, r)
		}
	}

	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := writeAll(path, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// ─────────────────────────────────────────────────────────────────────
// storage.Storage implementation.
// ─────────────────────────────────────────────────────────────────────

func (s *Store) CreateTeacher(t types.Teacher) error {
	return appendOne(s.teachersPath, t)
}

func (s *Store) GetTeachers() ([]types.Teacher, error) {
	return readAll[types.Teacher](s.teachersPath)
}

func (s *Store) FindTeacherByName(name string) (types.Teacher, error) {
	return findByName(s.teachersPath, name, func(t types.Teacher) string { return t.Name })
}

func (s *Store) DeleteTeachersByName(name string) (int, error) {
	return deleteByName(s.teachersPath, name, func(t types.Teacher) string { return t.Name })
}

func (s *Store) CreateStudent(st types.Student) error {
	return appendOne(s.studentsPath, st)
}

func (s *Store) GetStudents() ([]types.Student, error) {
	return readAll[types.Student](s.studentsPath)
}

func (s *Store) FindStudentByName(name string) (types.Student, error) {
	return findByName(s.studentsPath, name, func(st types.Student) string { return st.Name })
}

func (s *Store) DeleteStudentsByName(name string) (int, error) {
	return deleteByName(s.studentsPath, name, func(st types.Student) string { return st.Name })
}
