package menu

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunaltiwari/school-records/internal/config"
	"github.com/kunaltiwari/school-records/internal/storage"
	"github.com/kunaltiwari/school-records/internal/storage/jsonfile"
	"github.com/kunaltiwari/school-records/internal/types"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.Storage{
			TeachersPath: filepath.Join(dir, "teachers.json"),
			StudentsPath: filepath.Join(dir, "students.json"),
		},
	}
	store, err := jsonfile.New(cfg)
	require.NoError(t, err)
	return store
}

// runSession drives a whole menu session from scripted input lines and
// returns everything printed to the output stream.
func runSession(t *testing.T, store storage.Storage, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, New(store, log, in, &out).Run())
	return out.String()
}

func seedTeacher(t *testing.T, store storage.Storage) {
	t.Helper()
	require.NoError(t, store.CreateTeacher(types.Teacher{
		Name: "Alice", Subject: "Math", ID: "T1",
		Address: "12 Oak St", Email: "alice@school.edu", PhoneNumber: 9876543210,
	}))
}

func TestFirstTeacherNeedsNoAuth(t *testing.T) {
	store := newTestStore(t)

	out := runSession(t, store,
		"1",
		"Alice", "Math", "T1", "12 Oak St", "alice@school.edu", "9876543210",
		"12",
	)

	assert.NotContains(t, out, "verify yourself")
	assert.Contains(t, out, "Teacher added successfully!")

	teachers, err := store.GetTeachers()
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "T1", teachers[0].ID)
}

func TestSecondTeacherRequiresAuth(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)

	out := runSession(t, store,
		"1",
		"Alice", "T1", // credential check
		"Mira", "Science", "T2", "3 Pine Ave", "mira@school.edu", "9123456780",
		"12",
	)

	assert.Contains(t, out, "You need to verify yourself as a teacher")
	assert.Contains(t, out, "Verified Successfully!!!")
	assert.Contains(t, out, "Teacher added successfully!")

	teachers, err := store.GetTeachers()
	require.NoError(t, err)
	assert.Len(t, teachers, 2)
}

func TestFailedAuthBlocksWrite(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)

	out := runSession(t, store,
		"1",
		"Alice", "WRONG",
		"12",
	)

	assert.Contains(t, out, "authentication failed")

	teachers, err := store.GetTeachers()
	require.NoError(t, err)
	assert.Len(t, teachers, 1)
}

func TestDuplicateTeacherIDRejectedBeforeWrite(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)

	out := runSession(t, store,
		"1",
		"Alice", "T1",
		"Impostor", "Science", "T1", "9 Fog Ln", "imp@school.edu", "9123456780",
		"12",
	)

	assert.Contains(t, out, "teacher ID must be unique")

	// collection unchanged on disk
	teachers, err := store.GetTeachers()
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Alice", teachers[0].Name)
}

func TestInvalidTeacherEmailReported(t *testing.T) {
	store := newTestStore(t)

	out := runSession(t, store,
		"1",
		"Alice", "Math", "T1", "12 Oak St", "not-an-email", "9876543210",
		"12",
	)

	assert.Contains(t, out, "field Email must be a valid email address")

	teachers, err := store.GetTeachers()
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestAddStudent(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)

	out := runSession(t, store,
		"2",
		"Alice", "T1",
		"Bob", "R1", "bob@school.edu", "9123456780",
		`{"math": 90, "sci": 85}`,
		"4 Elm Rd",
		"12",
	)

	assert.Contains(t, out, "Student added successfully!")

	students, err := store.GetStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, map[string]int{"math": 90, "sci": 85}, students[0].Marks)
}

func TestAddStudent_AlwaysRequiresAuth(t *testing.T) {
	store := newTestStore(t) // no teachers at all

	out := runSession(t, store,
		"2",
		"Alice", "T1",
		"12",
	)

	assert.Contains(t, out, "authentication failed")

	students, err := store.GetStudents()
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestDuplicateRollNumberRejected(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)
	require.NoError(t, store.CreateStudent(types.Student{
		Name: "Bob", RollNumber: "R1", Marks: map[string]int{"math": 50},
	}))

	out := runSession(t, store,
		"2",
		"Alice", "T1",
		"Ann", "R1", "ann@school.edu", "9123456780",
		`{"math": 70}`,
		"4 Elm Rd",
		"12",
	)

	assert.Contains(t, out, "student roll number must be unique")

	students, err := store.GetStudents()
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestBadMarksInputReported(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)

	out := runSession(t, store,
		"2",
		"Alice", "T1",
		"Bob", "R1", "bob@school.edu", "9123456780",
		"ninety in math",
		"4 Elm Rd",
		"12",
	)

	assert.Contains(t, out, "invalid marks")
}

func TestScoringActions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateStudent(types.Student{
		Name: "A", RollNumber: "R1", Marks: map[string]int{"math": 40, "sci": 30},
	}))
	require.NoError(t, store.CreateStudent(types.Student{
		Name: "B", RollNumber: "R2", Marks: map[string]int{"math": 90, "sci": 85},
	}))

	out := runSession(t, store, "8", "9", "10", "11", "12")

	assert.Contains(t, out, "Pass Students:")
	assert.Contains(t, out, "Name: B, Marks: {math: 90, sci: 85}")
	assert.NotContains(t, out, "Name: A, Marks:")

	assert.Contains(t, out, "Highest Score: 175")
	assert.Contains(t, out, "Lowest Score: 175")

	assert.Contains(t, out, "Name: A, Percentage: -")
	assert.Contains(t, out, "Name: B, Percentage: 87.5")

	assert.Contains(t, out, "Name: B, Rank: 1")
	assert.NotContains(t, out, "Name: A, Rank:")
}

func TestExtremesWithNoPassingStudents(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateStudent(types.Student{
		Name: "A", RollNumber: "R1", Marks: map[string]int{"math": 10},
	}))

	out := runSession(t, store, "9", "12")

	assert.Contains(t, out, "Highest Score: -")
	assert.Contains(t, out, "Lowest Score: -")
}

func TestSearchChecksBothCollections(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)
	require.NoError(t, store.CreateStudent(types.Student{
		Name: "Bob", RollNumber: "R1", Email: "bob@school.edu",
		PhoneNumber: 9123456780, Marks: map[string]int{"math": 50}, Address: "4 Elm Rd",
	}))

	out := runSession(t, store,
		"6", "Alice",
		"6", "Bob",
		"6", "Nobody",
		"12",
	)

	assert.Contains(t, out, "Teacher Record:\nName: Alice, Subject: Math, ID: T1")
	assert.Contains(t, out, "Student Record:\nName: Bob, Roll Number: R1")
	assert.Contains(t, out, "No matching record found.")
}

func TestDeleteReportsMissOnlyWhenBothCollectionsMiss(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)

	out := runSession(t, store,
		"7", "Alice",
		"7", "Alice",
		"12",
	)

	assert.Contains(t, out, "Record for Alice deleted successfully.")
	assert.Contains(t, out, "No matching name found.")

	teachers, err := store.GetTeachers()
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestGeneralInfoAndFullDetails(t *testing.T) {
	store := newTestStore(t)
	seedTeacher(t, store)
	require.NoError(t, store.CreateStudent(types.Student{
		Name: "Bob", RollNumber: "R1", Email: "bob@school.edu",
		PhoneNumber: 9123456780, Marks: map[string]int{"math": 50}, Address: "4 Elm Rd",
	}))

	out := runSession(t, store, "3", "4", "5", "12")

	// basic lines
	assert.Contains(t, out, "Name: Alice, Email: alice@school.edu, Phone: 9876543210, Subject: Math")
	assert.Contains(t, out, "Name: Bob, Email: bob@school.edu, Phone: 9123456780, Marks: {math: 50}")
	// full lines
	assert.Contains(t, out, "Name: Alice, Subject: Math, ID: T1, Address: 12 Oak St, Email: alice@school.edu, Phone: 9876543210")
	assert.Contains(t, out, "Name: Bob, Roll Number: R1, Email: bob@school.edu, Phone: 9123456780, Marks: {math: 50}, Address: 4 Elm Rd")
}

func TestInvalidChoice(t *testing.T) {
	store := newTestStore(t)

	out := runSession(t, store, "99", "12")

	assert.Contains(t, out, "Invalid choice. Please enter a number from 1 to 12.")
	assert.Contains(t, out, "Exiting program...")
}
