// Package report provides helpers for formatting records and errors as
// console output.
//
// Every menu action prints records in the same field order, so the
// formatting lives here rather than being repeated per action. Keeping
// one place for it also keeps the on-screen shape stable — people grep
// these lines.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kunaltiwari/school-records/internal/types"
)

// TeacherBasic renders the short, one-line form of a teacher.
func TeacherBasic(t types.Teacher) string {
	return fmt.Sprintf("Name: %s, Email: %s, Phone: %d, Subject: %s",
		t.Name, t.Email, t.PhoneNumber, t.Subject)
}

// TeacherFull renders every stored field of a teacher.
func TeacherFull(t types.Teacher) string {
	return fmt.Sprintf("Name: %s, Subject: %s, ID: %s, Address: %s, Email: %s, Phone: %d",
		t.Name, t.Subject, t.ID, t.Address, t.Email, t.PhoneNumber)
}

// StudentBasic renders the short, one-line form of a student.
func StudentBasic(s types.Student) string {
	return fmt.Sprintf("Name: %s, Email: %s, Phone: %d, Marks: %s",
		s.Name, s.Email, s.PhoneNumber, Marks(s.Marks))
}

// StudentFull renders every stored field of a student.
func StudentFull(s types.Student) string {
	return fmt.Sprintf("Name: %s, Roll Number: %s, Email: %s, Phone: %d, Marks: %s, Address: %s",
		s.Name, s.RollNumber, s.Email, s.PhoneNumber, Marks(s.Marks), s.Address)
}

// Marks renders a marks mapping as {subject: score, ...} with subjects
// sorted by name. Go map iteration order is random, so sorting is what
// keeps the output deterministic run to run.
func Marks(marks map[string]int) string {
	subjects := make([]string, 0, len(marks))
	for subject := range marks {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	parts := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		parts = append(parts, fmt.Sprintf("%s: %d", subject, marks[subject]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable message, one clause per failing field.
func ValidationError(errs validator.ValidationErrors) string {
	var msgs []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		case "loose_email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", e.Field()))
		case "phone10":
			msgs = append(msgs, fmt.Sprintf("field %s must be an integer with 10 digits", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}
