// Package ddl contains Postgres-specific helpers for generating DDL.
package ddl

import (
	"github.com/lib/pq"

	gddl "schemagen/internal/ddl"
)

// MapType normalizes a logical kind into a Postgres SQL type.
//
//	"bool"/"boolean"          -> BOOLEAN
//	"int"/"integer"           -> INTEGER
//	"bigint"                  -> BIGINT
//	"float"/"double"          -> DOUBLE PRECISION
//	"decimal"/"numeric"       -> NUMERIC
//	"string"                  -> VARCHAR(n)
//	"date"                    -> DATE
//	"timestamp"/"timestamptz" -> TIMESTAMPTZ
//	"bytes"                   -> BYTEA
//	"uuid"                    -> UUID
//	"json"                    -> JSONB
//	everything else           -> TEXT
func MapType(kind string, length int) string {
	switch gddl.NormalizeKind(kind) {
	case "bool":
		return "BOOLEAN"
	case "int":
		return "INTEGER"
	case "bigint":
		return "BIGINT"
	case "float":
		return "DOUBLE PRECISION"
	case "decimal":
		return "NUMERIC"
	case "string":
		return gddl.Varchar("VARCHAR", length)
	case "date":
		return "DATE"
	case "timestamp":
		return "TIMESTAMPTZ"
	case "bytes":
		return "BYTEA"
	case "uuid":
		return "UUID"
	case "json":
		return "JSONB"
	default:
		return "TEXT"
	}
}

// Dialect is the Postgres ddl.Dialect.
var Dialect gddl.Dialect = dialect{}

type dialect struct{}

func (dialect) Name() string                           { return "postgres" }
func (dialect) MapType(kind string, length int) string { return MapType(kind, length) }
func (dialect) QuoteIdent(id string) string            { return quoteIdent(id) }
func (dialect) Identity() string                       { return "GENERATED BY DEFAULT AS IDENTITY" }

// quoteIdent double-quotes a single identifier segment, doubling embedded
// quotes.
func quoteIdent(id string) string { return pq.QuoteIdentifier(id) }

// quoteFQN quotes a possibly schema-qualified name segment by segment.
func quoteFQN(fqn string) string { return gddl.QuoteFQN(Dialect, fqn) }
