// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrDuplicateSubscriber signals a unique-constraint hit on the email column.
type ErrDuplicateSubscriber struct {
	Email string
}

func (e *ErrDuplicateSubscriber) Error() string {
	return fmt.Sprintf("subscriber with email %s already exists", e.Email)
}

// Helper constructor
func NewDuplicateSubscriber(email string) error {
	return &ErrDuplicateSubscriber{Email: email}
}

// IsDuplicate reports whether err is a duplicate-subscriber conflict, either
// our sentinel or the raw Postgres unique_violation (code 23505).
func IsDuplicate(err error) bool {
	var dup *ErrDuplicateSubscriber
	if errors.As(err, &dup) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
