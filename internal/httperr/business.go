package httperr

import (
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code of the outermost BusinessError in err's chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func IsUniqueViolation(err error) bool {
	return hasPgCode(err, pgUniqueViolation)
}

func IsExclusionConflict(err error) bool {
	return hasPgCode(err, pgExclusionViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
