// Package menu is the interactive surface of the application: a
// numbered text menu that collects input, calls storage / validation /
// auth / scoring, and prints results.
//
// The layering inside each action is always the same:
//
//	read input → validate → call the Storage interface → report
//
// The menu owns all policy the stores deliberately do not: it performs
// the uniqueness pre-check before any create, requires a successful
// teacher credential check before mutations, and decides whether a
// zero-count delete is worth reporting. Every action failure is
// reported as a message and the loop continues — nothing here is fatal.
//
// Input and output are injected (io.Reader / io.Writer) so a whole
// session can be driven from a test with scripted input.
package menu

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kunaltiwari/school-records/internal/auth"
	"github.com/kunaltiwari/school-records/internal/scoring"
	"github.com/kunaltiwari/school-records/internal/storage"
	"github.com/kunaltiwari/school-records/internal/types"
	"github.com/kunaltiwari/school-records/internal/utils/report"
	"github.com/kunaltiwari/school-records/internal/validation"
)

// Menu runs the interactive session over an injected store and I/O pair.
type Menu struct {
	store storage.Storage
	log   *slog.Logger
	in    *bufio.Scanner
	out   io.Writer
}

// New returns a Menu reading from in and writing to out.
func New(store storage.Storage, log *slog.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: store,
		log:   log,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops the main menu until the user exits or input ends.
// Action-level failures are printed and the loop continues; only a
// broken output stream or exhausted input ends the session early.
func (m *Menu) Run() error {
	for {
		m.printf("\nWelcome to Student and Teacher Management System\n")
		m.printf("1. Add a new teacher\n")
		m.printf("2. Add a new student\n")
		m.printf("3. Display general information\n")
		m.printf("4. Display full details of all teachers\n")
		m.printf("5. Display full details of all students\n")
		m.printf("6. Search for a record\n")
		m.printf("7. Delete a record\n")
		m.printf("8. Determine pass/fail\n")
		m.printf("9. Find highest and lowest scores\n")
		m.printf("10. Calculate percentages\n")
		m.printf("11. Calculate rank\n")
		m.printf("12. Exit\n")

		choice, err := m.prompt("Enter your choice (1-12): ")
		if err != nil {
			return nil // input exhausted; treat like exit
		}

		switch choice {
		case "1":
			m.report(m.addTeacher())
		case "2":
			m.report(m.addStudent())
		case "3":
			m.report(m.generalInfo())
		case "4":
			m.report(m.teacherDetails())
		case "5":
			m.report(m.studentDetails())
		case "6":
			m.report(m.search())
		case "7":
			m.report(m.delete())
		case "8":
			m.report(m.passFail())
		case "9":
			m.report(m.extremes())
		case "10":
			m.report(m.percentages())
		case "11":
			m.report(m.ranks())
		case "12":
			m.printf("Exiting program...\n")
			return nil
		default:
			m.printf("Invalid choice. Please enter a number from 1 to 12.\n")
		}
	}
}

// ─────────────────────────────────────────────────────────────────────
// Write operations (auth-gated).
// ─────────────────────────────────────────────────────────────────────

// addTeacher collects and stores a new teacher. The credential check
// is only required once at least one teacher exists — the very first
// teacher bootstraps the collection unauthenticated.
//
// The uniqueness pre-check runs against the teachers loaded at the
// start of the action, so a duplicate ID is rejected before anything
// is written.
func (m *Menu) addTeacher() error {
	m.log.Info("adding a teacher")

	teachers, err := m.store.GetTeachers()
	if err != nil {
		return err
	}

	if len(teachers) > 0 {
		if err := m.verifyTeacher(); err != nil {
			return err
		}
	}

	t, err := m.collectTeacher()
	if err != nil {
		return err
	}

	if err := validation.ValidateTeacher(t); err != nil {
		return err
	}

	for _, existing := range teachers {
		if existing.ID == t.ID {
			return fmt.Errorf("%w: teacher ID must be unique", storage.ErrDuplicateKey)
		}
	}

	if err := m.store.CreateTeacher(t); err != nil {
		return err
	}

	m.log.Info("teacher created", slog.String("id", t.ID))
	m.printf("Teacher added successfully!\n")
	return nil
}

// addStudent collects and stores a new student. Unlike addTeacher,
// this ALWAYS requires a teacher credential check first.
func (m *Menu) addStudent() error {
	m.log.Info("adding a student")

	if err := m.verifyTeacher(); err != nil {
		return err
	}

	s, err := m.collectStudent()
	if err != nil {
		return err
	}

	if err := validation.ValidateStudent(s); err != nil {
		return err
	}

	students, err := m.store.GetStudents()
	if err != nil {
		return err
	}
	for _, existing := range students {
		if existing.RollNumber == s.RollNumber {
			return fmt.Errorf("%w: student roll number must be unique", storage.ErrDuplicateKey)
		}
	}

	if err := m.store.CreateStudent(s); err != nil {
		return err
	}

	m.log.Info("student created", slog.String("roll_number", s.RollNumber))
	m.printf("Student added successfully!\n")
	return nil
}

// verifyTeacher prompts for a (name, id) pair and checks it against
// the teacher collection.
func (m *Menu) verifyTeacher() error {
	m.printf("You need to verify yourself as a teacher to add new entries.\n")

	name, err := m.prompt("Enter your name: ")
	if err != nil {
		return err
	}
	id, err := m.prompt("Enter your ID number: ")
	if err != nil {
		return err
	}

	if err := auth.Verify(m.store, name, id); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fmt.Errorf("authentication failed: only teachers can add new data")
		}
		return err
	}

	m.printf("Verified Successfully!!!\n")
	return nil
}

func (m *Menu) collectTeacher() (types.Teacher, error) {
	var t types.Teacher
	var err error

	if t.Name, err = m.prompt("Enter teacher's name: "); err != nil {
		return t, err
	}
	if t.Subject, err = m.prompt("Enter subject: "); err != nil {
		return t, err
	}
	if t.ID, err = m.prompt("Enter teacher ID: "); err != nil {
		return t, err
	}
	if t.Address, err = m.prompt("Enter address: "); err != nil {
		return t, err
	}
	if t.Email, err = m.prompt("Enter email: "); err != nil {
		return t, err
	}
	if t.PhoneNumber, err = m.promptInt("Enter phone number: "); err != nil {
		return t, err
	}
	return t, nil
}

func (m *Menu) collectStudent() (types.Student, error) {
	var s types.Student
	var err error

	if s.Name, err = m.prompt("Enter student's name: "); err != nil {
		return s, err
	}
	if s.RollNumber, err = m.prompt("Enter roll number: "); err != nil {
		return s, err
	}
	if s.Email, err = m.prompt("Enter email: "); err != nil {
		return s, err
	}
	if s.PhoneNumber, err = m.promptInt("Enter phone number: "); err != nil {
		return s, err
	}

	marksInput, err := m.prompt(`Enter marks (e.g., {"c": 56, "c++": 52, "python": 89}): `)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal([]byte(marksInput), &s.Marks); err != nil {
		return s, fmt.Errorf("invalid marks: expected a JSON object of subject scores")
	}

	if s.Address, err = m.prompt("Enter address: "); err != nil {
		return s, err
	}
	return s, nil
}

// ─────────────────────────────────────────────────────────────────────
// Read operations.
// ─────────────────────────────────────────────────────────────────────

func (m *Menu) generalInfo() error {
	teachers, err := m.store.GetTeachers()
	if err != nil {
		return err
	}
	students, err := m.store.GetStudents()
	if err != nil {
		return err
	}

	m.printf("\nTeachers:\n")
	for _, t := range teachers {
		m.printf("%s\n", report.TeacherBasic(t))
	}
	m.printf("\nStudents:\n")
	for _, s := range students {
		m.printf("%s\n", report.StudentBasic(s))
	}
	return nil
}

func (m *Menu) teacherDetails() error {
	teachers, err := m.store.GetTeachers()
	if err != nil {
		return err
	}
	m.printf("\nTeacher Record:\n")
	for _, t := range teachers {
		m.printf("%s\n", report.TeacherFull(t))
	}
	return nil
}

func (m *Menu) studentDetails() error {
	students, err := m.store.GetStudents()
	if err != nil {
		return err
	}
	m.printf("\nStudent Record:\n")
	for _, s := range students {
		m.printf("%s\n", report.StudentFull(s))
	}
	return nil
}

// search looks a name up in BOTH collections and prints whatever
// matched. A miss in one collection is silent as long as the other
// matched; only a miss in both is reported.
func (m *Menu) search() error {
	name, err := m.prompt("Enter name to search: ")
	if err != nil {
		return err
	}

	found := false

	t, err := m.store.FindTeacherByName(name)
	switch {
	case err == nil:
		m.printf("\nTeacher Record:\n%s\n", report.TeacherFull(t))
		found = true
	case !errors.Is(err, storage.ErrNoMatchingName):
		return err
	}

	s, err := m.store.FindStudentByName(name)
	switch {
	case err == nil:
		m.printf("\nStudent Record:\n%s\n", report.StudentFull(s))
		found = true
	case !errors.Is(err, storage.ErrNoMatchingName):
		return err
	}

	if !found {
		m.printf("No matching record found.\n")
	}
	return nil
}

// delete removes the name from BOTH collections. Either collection
// reporting a non-zero count makes the whole action a success; the
// stores themselves never error on a miss.
func (m *Menu) delete() error {
	name, err := m.prompt("Enter name to delete: ")
	if err != nil {
		return err
	}

	teacherCount, err := m.store.DeleteTeachersByName(name)
	if err != nil {
		return err
	}
	studentCount, err := m.store.DeleteStudentsByName(name)
	if err != nil {
		return err
	}

	if teacherCount+studentCount > 0 {
		m.log.Info("records deleted",
			slog.String("name", name),
			slog.Int("count", teacherCount+studentCount))
		m.printf("Record for %s deleted successfully.\n", name)
	} else {
		m.printf("No matching name found.\n")
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────
// Scoring operations.
// ─────────────────────────────────────────────────────────────────────

func (m *Menu) passFail() error {
	students, err := m.store.GetStudents()
	if err != nil {
		return err
	}
	m.printf("Pass Students:\n")
	for _, r := range scoring.PassFail(students) {
		m.printf("Name: %s, Marks: %s\n", r.Name, report.Marks(r.Marks))
	}
	return nil
}

func (m *Menu) extremes() error {
	students, err := m.store.GetStudents()
	if err != nil {
		return err
	}
	highest, lowest, ok := scoring.Extremes(students)
	if !ok {
		m.printf("Highest Score: -\n")
		m.printf("Lowest Score: -\n")
		return nil
	}
	m.printf("Highest Score: %d\n", highest)
	m.printf("Lowest Score: %d\n", lowest)
	return nil
}

func (m *Menu) percentages() error {
	students, err := m.store.GetStudents()
	if err != nil {
		return err
	}
	for _, e := range scoring.PercentageForAll(students) {
		if !e.Passed {
			m.printf("Name: %s, Percentage: -\n", e.Name)
			continue
		}
		m.printf("Name: %s, Percentage: %s\n", e.Name,
			strconv.FormatFloat(e.Percent, 'f', -1, 64))
	}
	return nil
}

func (m *Menu) ranks() error {
	students, err := m.store.GetStudents()
	if err != nil {
		return err
	}
	for _, r := range scoring.Rank(students) {
		m.printf("Name: %s, Rank: %d\n", r.Name, r.Rank)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────
// Plumbing.
// ─────────────────────────────────────────────────────────────────────

// prompt prints a label and reads one trimmed line. io.EOF means the
// input is exhausted (scripted sessions, closed stdin).
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptInt reads one line and parses it as a decimal integer.
func (m *Menu) promptInt(label string) (int64, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: phone number must be an integer", validation.ErrInvalidFormat)
	}
	return n, nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// report prints an action failure and keeps the loop going. Validation
// failures are expanded into per-field messages; everything else
// prints its error text, mirroring how each error kind is recoverable
// at this boundary.
func (m *Menu) report(err error) {
	if err == nil || errors.Is(err, io.EOF) {
		return
	}

	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		m.printf("%s\n", report.ValidationError(validateErrs))
		return
	}

	m.log.Error("action failed", slog.String("error", err.Error()))
	m.printf("%s\n", err.Error())
}
