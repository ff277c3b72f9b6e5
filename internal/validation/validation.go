// Package validation checks record fields before they reach storage.
//
// The rules are deliberately loose. Email is a shape check (something,
// @, something, dot, something) rather than full RFC validation, and a
// phone number is any integer whose decimal form has exactly 10 digits.
// Both are registered as custom go-playground/validator rules so the
// same definitions drive struct-tag validation and the standalone
// helpers below.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/kunaltiwari/school-records/internal/types"
)

// ErrInvalidFormat is wrapped by every validation failure so callers
// can branch with errors.Is without parsing messages.
var ErrInvalidFormat = errors.New("invalid format")

// looseEmailRe is the historical email shape: one-or-more non-@ chars,
// @, one-or-more non-@ chars, a dot, one-or-more non-@ chars.
var looseEmailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// validate is the shared validator instance with the custom rules
// registered once at package init.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// loose_email: the shape check above, on string fields.
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmailRe.MatchString(fl.Field().String())
	})

	// phone10: exactly 10 decimal digits, on integer fields. A number
	// that would need a leading zero cannot satisfy this — it has no
	// 10-digit integer representation.
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return len(strconv.FormatInt(fl.Field().Int(), 10)) == 10 && fl.Field().Int() > 0
	})

	return v
}

// ValidateEmail returns the input's validity under the loose email
// shape check.
func ValidateEmail(email string) error {
	if !looseEmailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidFormat)
	}
	return nil
}

// ValidatePhoneNumber accepts n iff its decimal representation has
// exactly 10 digits.
func ValidatePhoneNumber(n int64) error {
	if n <= 0 || len(strconv.FormatInt(n, 10)) != 10 {
		return fmt.Errorf("%w: phone number must be an integer with 10 digits", ErrInvalidFormat)
	}
	return nil
}

// ValidateTeacher runs the full struct-tag validation on t: required
// fields, email shape, and the 10-digit phone rule.
//
// The returned error wraps ErrInvalidFormat and, when the failure came
// from validator, also carries the validator.ValidationErrors so the
// report package can render per-field messages.
func ValidateTeacher(t types.Teacher) error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return nil
}

// ValidateStudent checks the student's required fields. Student email
// and phone number are intentionally NOT validated — they are recorded
// exactly as entered.
func ValidateStudent(s types.Student) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return nil
}
