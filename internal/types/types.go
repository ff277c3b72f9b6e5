// Package types holds the shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the menu, storage, and scoring packages can all import types without
// depending on each other.
package types

// Teacher represents one teacher record.
//
// Struct tags serve two purposes:
//
//  1. json:"..." — the persisted field name in the collection file.
//     The on-disk format is a JSON array of these records, so the tags
//     ARE the storage schema; renaming one is a breaking change.
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "loose_email" and "phone10" are custom rules registered
//     by the validation package.
type Teacher struct {
	Name    string `json:"name"    validate:"required"`
	Subject string `json:"subject" validate:"required"`
	// ID is the unique key of the teacher collection. Uniqueness is
	// enforced by the caller before creation, not by the store.
	ID          string `json:"id"      validate:"required"`
	Address     string `json:"address"`
	Email       string `json:"email"   validate:"required,loose_email"`
	PhoneNumber int64  `json:"phone_number" validate:"phone10"`
}

// Student represents one student record.
//
// Marks is an open mapping from subject name to score — there is no
// fixed subject set, and the scoring engine only ever reads the values.
// PhoneNumber intentionally carries no validation rule: student phone
// numbers are collected but never checked.
type Student struct {
	Name string `json:"name" validate:"required"`
	// RollNumber is the unique key of the student collection.
	RollNumber  string         `json:"roll_number" validate:"required"`
	Email       string         `json:"email"`
	PhoneNumber int64          `json:"phone_number"`
	Marks       map[string]int `json:"marks"`
	Address     string         `json:"address"`
}
