// Package ddl contains SQLite-specific helpers for generating DDL.
//
// It maps logical kinds into SQLite column types. SQLite uses dynamic typing,
// so the mapping targets the five storage affinities.
package ddl

import (
	"strings"

	gddl "schemagen/internal/ddl"
)

// MapType maps a logical kind (e.g., "int", "bool", "date") into a SQLite
// column type. The length hint is ignored; SQLite does not enforce VARCHAR
// lengths.
//
//   - integer-ish types -> INTEGER
//   - boolean          -> INTEGER (0/1)
//   - date/time        -> TEXT (ISO-8601)
//   - others           -> TEXT
func MapType(kind string, length int) string {
	switch gddl.NormalizeKind(kind) {
	case "int", "bigint":
		return "INTEGER"
	case "bool":
		return "INTEGER" // 0/1
	case "float":
		return "REAL"
	case "decimal":
		return "NUMERIC"
	case "date", "timestamp":
		return "TEXT" // store ISO-8601 strings
	case "bytes":
		return "BLOB"
	default:
		return "TEXT"
	}
}

// Dialect is the SQLite dialect. It has no identity clause: an INTEGER
// PRIMARY KEY column is the rowid alias and is generated by the engine.
var Dialect gddl.Dialect = dialect{}

type dialect struct{}

func (dialect) Name() string                          { return "sqlite" }
func (dialect) MapType(kind string, length int) string { return MapType(kind, length) }
func (dialect) QuoteIdent(id string) string           { return quoteIdent(id) }
func (dialect) Identity() string                      { return "" }

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

func quoteFQN(fqn string) string {
	return gddl.QuoteFQN(Dialect, fqn)
}
