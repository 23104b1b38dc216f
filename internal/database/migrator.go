package database

import (
	"context"
	"embed"

	"github.com/pressly/goose/v3"
)

// Embed all SQL files under migrations/ at compile time so the binary
// carries its schema and does not depend on the filesystem in containers.
//
//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the database schema up to date using goose.
//
// goose records applied versions in its own table, so this is idempotent:
// run on every start, it creates the items table when absent and does
// nothing otherwise. It must complete before the server accepts requests.
func (db *Database) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	before, err := goose.GetDBVersionContext(ctx, db.DB)
	if err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return err
	}

	after, err := goose.GetDBVersionContext(ctx, db.DB)
	if err != nil {
		return err
	}

	if before == after {
		db.log.Info().Int64("version", after).Msg("database schema up to date")
	} else {
		db.log.Info().Int64("from", before).Int64("to", after).Msg("migrated database schema")
	}
	return nil
}
