package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campushub/items-api/internal/errs"
	"github.com/campushub/items-api/internal/model"
	"github.com/campushub/items-api/internal/repository"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceWithMock(t *testing.T) (*ItemService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewItemService(repository.NewItemRepository(db)), mock
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestCreateAssignsID(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectExec("INSERT INTO items").
		WillReturnResult(sqlmock.NewResult(1, 1))

	item, err := svc.Create(context.Background(), ItemInput{
		Title:    "Finals Week",
		Category: model.CategoryAnnouncement,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Finals Week", item.Title)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStoreBusy(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectExec("INSERT INTO items").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := svc.Create(context.Background(), ItemInput{
		Title:    "Finals Week",
		Category: model.CategoryAnnouncement,
	})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.Equal(t, errs.StoreUnavailableCode, httpErr.Code)
}

func TestGetNotFound(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM items WHERE id").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Get(context.Background(), 7)

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, ItemNotFoundMessage, httpErr.Message)
}

func TestListHidesDriverDetail(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM items ORDER BY id").
		WillReturnError(errors.New("disk I/O error"))

	_, err := svc.List(context.Background())

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "disk I/O")
}

func TestUpdateNotFound(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectExec("UPDATE items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.Update(context.Background(), 42, ItemInput{
		Title:    "ghost",
		Category: model.CategoryNews,
	})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestUpdateReturnsStoredRow(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectExec("UPDATE items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM items WHERE id").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "description", "category", "created_at", "updated_at"},
		).AddRow(5, "Published", "now live", "announcement", created, updated))

	item, err := svc.Update(context.Background(), 5, ItemInput{
		Title:       "Published",
		Description: "now live",
		Category:    model.CategoryAnnouncement,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ID)
	assert.Equal(t, created, item.CreatedAt)
	assert.True(t, item.UpdatedAt.After(item.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectExec("DELETE FROM items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), 42)

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, ItemNotFoundMessage, httpErr.Message)
}
