package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/campushub/items-api/internal/errs"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"no rows", sql.ErrNoRows, NoRows},
		{"wrapped no rows", fmt.Errorf("lookup: %w", sql.ErrNoRows), NoRows},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Unavailable},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Unavailable},
		{
			"check constraint",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			CheckViolation,
		},
		{
			"not null constraint",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			NotNullViolation,
		},
		{"other sqlite error", sqlite3.Error{Code: sqlite3.ErrCorrupt}, Other},
		{"plain error", errors.New("boom"), Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.err).Code)
		})
	}
}

func TestErrCode(t *testing.T) {
	serr := Convert(sqlite3.Error{Code: sqlite3.ErrBusy})
	assert.Equal(t, Unavailable, ErrCode(serr))
	assert.Equal(t, Unavailable, ErrCode(fmt.Errorf("insert: %w", serr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"no rows", sql.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{
			"busy",
			sqlite3.Error{Code: sqlite3.ErrBusy},
			http.StatusServiceUnavailable,
			errs.StoreUnavailableCode,
		},
		{
			"check violation",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			http.StatusUnprocessableEntity,
			errs.ValidationErrorCode,
		},
		{
			"not null violation",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			http.StatusUnprocessableEntity,
			errs.ValidationErrorCode,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestHandleErrorPassthrough(t *testing.T) {
	existing := errs.NewNotFoundError("Item not found", false, nil)
	assert.Same(t, existing, HandleError(existing).(*errs.HTTPError))
}

func TestHandleErrorHidesDriverDetail(t *testing.T) {
	err := HandleError(errors.New("table items has no column named secret"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.NotContains(t, httpErr.Message, "secret")
}
