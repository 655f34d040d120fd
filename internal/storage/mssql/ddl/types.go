// Package ddl contains MSSQL-specific helpers for generating DDL.
//
// It maps logical kinds into SQL Server types. The mapping is intentionally
// conservative and biased toward safe, widely-supported choices.
package ddl

import (
	"strings"

	gddl "schemagen/internal/ddl"
)

// maxNVarchar is the largest sized NVARCHAR; longer strings use NVARCHAR(MAX).
const maxNVarchar = 4000

// MapType maps a logical kind into a SQL Server column type.
//
// The input is typically a logical kind such as:
//
//	"int", "bigint", "bool", "date", "timestamp", "string", "text", "uuid"
//
// Unknown or empty kinds fall back to NVARCHAR(MAX).
func MapType(kind string, length int) string {
	switch gddl.NormalizeKind(kind) {
	case "int":
		return "INT"
	case "bigint":
		return "BIGINT"
	case "bool":
		return "BIT"
	case "float":
		return "FLOAT"
	case "decimal":
		return "DECIMAL(38, 10)"
	case "string":
		if length > maxNVarchar {
			return "NVARCHAR(MAX)"
		}
		return gddl.Varchar("NVARCHAR", length)
	case "date":
		return "DATE"
	case "timestamp":
		return "DATETIME2"
	case "bytes":
		return "VARBINARY(MAX)"
	case "uuid":
		return "UNIQUEIDENTIFIER"
	default:
		// text, json and anything unknown.
		return "NVARCHAR(MAX)"
	}
}

// Dialect is the SQL Server dialect: bracket quoting and IDENTITY(1,1).
var Dialect gddl.Dialect = dialect{}

type dialect struct{}

func (dialect) Name() string                          { return "mssql" }
func (dialect) MapType(kind string, length int) string { return MapType(kind, length) }
func (dialect) QuoteIdent(id string) string           { return quoteIdent(id) }
func (dialect) Identity() string                      { return "IDENTITY(1,1)" }

// quoteIdent quotes a single identifier segment for SQL Server using
// bracket syntax, escaping any closing brackets.
//
//	name      -> [name]
//	weird]id  -> [weird]]id]
func quoteIdent(id string) string {
	return "[" + strings.ReplaceAll(id, "]", "]]") + "]"
}

// quoteFQN quotes a possibly schema-qualified table name, e.g.:
//
//	"dbo.Users"   -> [dbo].[Users]
//	"Users"       -> [Users]
//	"a.b.c"       -> [a].[b].[c]
func quoteFQN(fqn string) string {
	return gddl.QuoteFQN(Dialect, fqn)
}
