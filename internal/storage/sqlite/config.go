// Package sqlite implements a SQLite-backed storage.Repository.
package sqlite

// Config holds SQLite repository configuration derived from storage.Config.
type Config struct {
	// DSN is a SQLite connection string or file path, e.g.:
	//   "file:schema.db?_pragma=foreign_keys(1)"
	//   "schema.db" (interpreted by the driver)
	//   ":memory:"
	DSN string
}
