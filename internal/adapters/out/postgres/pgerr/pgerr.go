// Package pgerr classifies low-level postgres driver errors so repositories
// can translate them into domain error types.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is SQLSTATE 23505.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
