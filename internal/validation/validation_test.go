package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/kunaltiwari/school-records/internal/types"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"alice@school.edu",
		"a@b.c",
		"first.last@sub.domain.org",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plainstring",
		"no-at-sign.com",
		"missing@tld",
		"two@@signs.com",
		"@nodomain.com",
	}
	for _, email := range invalid {
		err := ValidateEmail(email)
		assert.ErrorIs(t, err, ErrInvalidFormat, email)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, ValidatePhoneNumber(1234567890))
	assert.NoError(t, ValidatePhoneNumber(9999999999))

	assert.ErrorIs(t, ValidatePhoneNumber(123), ErrInvalidFormat)
	assert.ErrorIs(t, ValidatePhoneNumber(0), ErrInvalidFormat)
	assert.ErrorIs(t, ValidatePhoneNumber(-1234567890), ErrInvalidFormat)
	// 11 digits
	assert.ErrorIs(t, ValidatePhoneNumber(12345678901), ErrInvalidFormat)
	// a number with a leading zero has only 9 representable digits
	assert.ErrorIs(t, ValidatePhoneNumber(123456789), ErrInvalidFormat)
}

func validTeacher() types.Teacher {
	return types.Teacher{
		Name:        "Alice",
		Subject:     "Math",
		ID:          "T1",
		Address:     "12 Oak St",
		Email:       "alice@school.edu",
		PhoneNumber: 9876543210,
	}
}

func TestValidateTeacher(t *testing.T) {
	assert.NoError(t, ValidateTeacher(validTeacher()))
}

func TestValidateTeacher_BadEmail(t *testing.T) {
	teacher := validTeacher()
	teacher.Email = "not-an-email"

	err := ValidateTeacher(teacher)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	// the validator detail is preserved for per-field reporting
	var fieldErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "Email", fieldErrs[0].Field())
	assert.Equal(t, "loose_email", fieldErrs[0].ActualTag())
}

func TestValidateTeacher_BadPhone(t *testing.T) {
	teacher := validTeacher()
	teacher.PhoneNumber = 123

	err := ValidateTeacher(teacher)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	var fieldErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "phone10", fieldErrs[0].ActualTag())
}

func TestValidateTeacher_MissingFields(t *testing.T) {
	err := ValidateTeacher(types.Teacher{})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidateStudent_PhoneAndEmailUnchecked(t *testing.T) {
	// student contact details are recorded as entered, even when they
	// would fail the teacher rules
	student := types.Student{
		Name:        "Bob",
		RollNumber:  "R1",
		Email:       "not-an-email",
		PhoneNumber: 123,
		Marks:       map[string]int{"math": 50},
	}
	assert.NoError(t, ValidateStudent(student))
}

func TestValidateStudent_RequiredFields(t *testing.T) {
	assert.ErrorIs(t, ValidateStudent(types.Student{}), ErrInvalidFormat)
}
