// Package auth gates write operations behind a teacher credential
// check. A credential is a claimed (name, id) pair; it is valid iff
// some stored teacher matches both exactly. There is no hashing, no
// session, and no rate limiting — this is a single-shot check made
// interactively before each mutation.
package auth

import (
	"errors"

	"github.com/kunaltiwari/school-records/internal/storage"
)

// ErrInvalidCredentials is returned when no stored teacher matches the
// claimed pair.
var ErrInvalidCredentials = errors.New("invalid teacher credentials")

// Verify checks the claimed (name, id) pair against the teacher
// collection in st. Both comparisons are case-sensitive exact string
// equality. A read failure from the store is returned as-is.
func Verify(st storage.Storage, name, id string) error {
	teachers, err := st.GetTeachers()
	if err != nil {
		return err
	}
	for _, t := range teachers {
		if t.Name == name && t.ID == id {
			return nil
		}
	}
	return ErrInvalidCredentials
}
