package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/campushub/items-api/internal/errs"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// Code is the application-level category of a database error.
type Code int

const (
	// Other is any database error without a more specific mapping.
	Other Code = iota

	// Unavailable covers SQLITE_BUSY and SQLITE_LOCKED: the database could
	// not be acquired within the configured busy timeout.
	Unavailable

	// CheckViolation covers failed CHECK constraints (e.g. a category
	// outside the allowed enumeration slipping past validation).
	CheckViolation

	// NotNullViolation covers NOT NULL constraint failures.
	NotNullViolation

	// NoRows covers sql.ErrNoRows from single-row lookups.
	NoRows
)

// Error wraps a raw driver error together with its mapped Code.
type Error struct {
	Code      Code
	Message   string
	driverErr error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the raw driver error for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.driverErr }

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// If err can be unwrapped into *sqlerr.Error, its Code is returned;
// otherwise Other.
func ErrCode(err error) Code {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code
	}
	return Other
}

// Convert classifies a raw database error into a *sqlerr.Error.
func Convert(err error) *Error {
	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Code: NoRows, Message: "no rows in result set", driverErr: err}
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return &Error{Code: Unavailable, Message: sqliteErr.Error(), driverErr: err}
		case sqlite3.ErrConstraint:
			switch sqliteErr.ExtendedCode {
			case sqlite3.ErrConstraintCheck:
				return &Error{Code: CheckViolation, Message: sqliteErr.Error(), driverErr: err}
			case sqlite3.ErrConstraintNotNull:
				return &Error{Code: NotNullViolation, Message: sqliteErr.Error(), driverErr: err}
			}
		}
		return &Error{Code: Other, Message: sqliteErr.Error(), driverErr: err}
	}

	return &Error{Code: Other, Message: err.Error(), driverErr: err}
}

// HandleError converts a low-level database error into an application-level
// error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged.
//   - sql.ErrNoRows: errs.NewNotFoundError.
//   - SQLITE_BUSY / SQLITE_LOCKED: errs.NewStoreUnavailableError.
//   - CHECK / NOT NULL constraint violations: errs.NewValidationError.
//     Validation runs before any store access, so these only fire if a
//     payload slips past the validator; the row is still never written.
//   - Otherwise: errs.NewInternalServerError.
//
// This function is intended to be called in services (and as a safety net
// in the global error handler) after a store call fails.
func HandleError(err error) error {
	// If it's already an HTTPError, don't re-wrap it.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch serr := Convert(err); serr.Code {
	case NoRows:
		return errs.NewNotFoundError("The requested record does not exist", false, nil)

	case Unavailable:
		return errs.NewStoreUnavailableError("The store could not be acquired, retry the request")

	case CheckViolation:
		return errs.NewValidationError("One or more values do not meet required conditions", true, nil)

	case NotNullViolation:
		return errs.NewValidationError("A required value was missing", true, nil)

	default:
		// Unknown DB errors should not leak details to clients.
		return errs.NewInternalServerError()
	}
}
