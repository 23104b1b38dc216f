package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/campushub/items-api/internal/config"
	"github.com/campushub/items-api/internal/database"
	"github.com/campushub/items-api/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepository opens a fresh store in a temp dir, runs migrations,
// and returns a repository over it.
func newTestRepository(t *testing.T) *ItemRepository {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path:          filepath.Join(t.TempDir(), "items.db"),
			BusyTimeoutMS: 5000,
		},
	}

	db, err := database.New(cfg, &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))

	return NewItemRepository(db.DB)
}

func newItem(title string, category model.Category) *model.Item {
	return &model.Item{
		Title:       title,
		Description: "",
		Category:    category,
	}
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := newItem("Finals Week", model.CategoryAnnouncement)
	require.NoError(t, repo.Insert(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second := newItem("Career Fair", model.CategoryEvent)
	require.NoError(t, repo.Insert(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestGetByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newItem("Library Hours", model.CategoryNews)
	item.Description = "Extended hours during exams"
	require.NoError(t, repo.Insert(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Library Hours", got.Title)
	assert.Equal(t, "Extended hours during exams", got.Description)
	assert.Equal(t, model.CategoryNews, got.Category)
	assert.Equal(t, item.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestGetByIDMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListOrderedByInsertion(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, repo.Insert(ctx, newItem(title, model.CategoryNews)))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, titles[i], item.Title)
		assert.Equal(t, int64(i+1), item.ID)
	}
}

func TestListEmptyStore(t *testing.T) {
	repo := newTestRepository(t)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestUpdateReplacesFieldsAndRefreshesTimestamp(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newItem("Draft", model.CategoryNews)
	require.NoError(t, repo.Insert(ctx, item))
	created := item.CreatedAt

	item.Title = "Published"
	item.Category = model.CategoryAnnouncement
	require.NoError(t, repo.Update(ctx, item))
	assert.True(t, item.UpdatedAt.After(created))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Published", got.Title)
	assert.Equal(t, model.CategoryAnnouncement, got.Category)
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix())
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	item := newItem("ghost", model.CategoryNews)
	item.ID = 42
	err := repo.Update(context.Background(), item)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newItem("temporary", model.CategoryEvent)
	require.NoError(t, repo.Insert(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// Deleting again reports the row as missing.
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), sql.ErrNoRows)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := newItem("one", model.CategoryNews)
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := newItem("two", model.CategoryNews)
	require.NoError(t, repo.Insert(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

func TestCount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Insert(ctx, newItem("one", model.CategoryNews)))
	require.NoError(t, repo.Insert(ctx, newItem("two", model.CategoryEvent)))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
