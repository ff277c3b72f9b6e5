// Package storage defines the Storage interface — a contract that any
// record store backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The menu layer should not know or care whether records live in a
// pair of JSON files or a SQLite database. By depending only on this
// interface:
//
//   - Switching backends = implement the interface for the new store,
//     change one line in main.go. Zero menu changes.
//
//   - Writing tests = pass any implementation that satisfies the
//     interface; the jsonfile store over t.TempDir works fine.
package storage

import (
	"errors"

	"github.com/kunaltiwari/school-records/internal/types"
)

// Sentinel errors shared by all backends. Callers branch with
// errors.Is rather than matching message strings.
var (
	// ErrNoMatchingName is returned by Find*ByName when no record's
	// name equals the requested one.
	ErrNoMatchingName = errors.New("no matching name found")

	// ErrDuplicateKey is returned when a create would violate the
	// uniqueness of a teacher ID or student roll number.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Storage is the record store contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly.
//
// Name matching everywhere is case-sensitive exact equality.
type Storage interface {
	// CreateTeacher appends a new teacher record. It does NOT check
	// key uniqueness — the caller pre-checks the teacher ID against
	// GetTeachers before calling (so a duplicate is rejected before
	// anything touches disk).
	CreateTeacher(t types.Teacher) error

	// GetTeachers returns every teacher in stored (insertion) order.
	// Returns an empty slice (not nil) if there are none.
	GetTeachers() ([]types.Teacher, error)

	// FindTeacherByName returns the first teacher whose name equals
	// name. Returns ErrNoMatchingName if there is none.
	FindTeacherByName(name string) (types.Teacher, error)

	// DeleteTeachersByName removes EVERY teacher whose name equals
	// name and returns how many were removed. A zero count is not an
	// error here; the caller decides whether a miss is reportable.
	DeleteTeachersByName(name string) (int, error)

	// CreateStudent appends a new student record. Same contract as
	// CreateTeacher: uniqueness of the roll number is the caller's job.
	CreateStudent(s types.Student) error

	// GetStudents returns every student in stored (insertion) order.
	// Returns an empty slice (not nil) if there are none.
	GetStudents() ([]types.Student, error)

	// FindStudentByName returns the first student whose name equals
	// name. Returns ErrNoMatchingName if there is none.
	FindStudentByName(name string) (types.Student, error)

	// DeleteStudentsByName removes every student whose name equals
	// name and returns how many were removed.
	DeleteStudentsByName(name string) (int, error)
}
