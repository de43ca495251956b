package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the postgres error code for a unique constraint violation.
// The unique (event_id, student_id) constraints are the authoritative guard
// against duplicate registrations/attendance/feedback; service-level existence
// checks are only a fast-fail optimization.
const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
