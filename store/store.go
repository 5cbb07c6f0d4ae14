package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

func IsErrNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// postgres error code for unique_violation
const uniqueViolation = "23505"

func IsErrUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
