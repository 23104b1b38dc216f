package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/campushub/items-api/internal/model"
)

// seedItem is the on-disk shape of one seed entry. Identity and
// timestamps are assigned by the store, exactly as for created items.
type seedItem struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    model.Category `json:"category"`
}

// Seed loads the configured seed file into the items table.
//
// It runs only when a seed file is configured AND the table is empty, so
// restarts never duplicate rows and a store that has seen writes is left
// untouched.
func (db *Database) Seed(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	var count int
	if err := db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return fmt.Errorf("counting items before seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var seeds []seedItem
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}

	now := time.Now().UTC()
	for _, s := range seeds {
		if s.Title == "" || !s.Category.Valid() {
			return fmt.Errorf("seed entry %q is invalid", s.Title)
		}
		_, err := db.DB.ExecContext(ctx,
			`INSERT INTO items (title, description, category, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			s.Title, s.Description, string(s.Category), now, now,
		)
		if err != nil {
			return fmt.Errorf("inserting seed item %q: %w", s.Title, err)
		}
	}

	db.log.Info().Int("items", len(seeds)).Str("file", path).Msg("seeded empty database")
	return nil
}
