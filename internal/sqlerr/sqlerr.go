// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic result codes from the SQLite driver and converts
// them into the application's error taxonomy (e.g., converting a
// "database is locked" into a "Store Unavailable" error).
package sqlerr
