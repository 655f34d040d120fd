// Package ddl contains MySQL-specific helpers for generating DDL.
package ddl

import (
	"strings"

	gddl "schemagen/internal/ddl"
)

// MapType maps a logical kind into a MySQL column type. Unknown kinds fall
// back to TEXT.
func MapType(kind string, length int) string {
	switch gddl.NormalizeKind(kind) {
	case "bool":
		return "TINYINT(1)"
	case "int":
		return "INT"
	case "bigint":
		return "BIGINT"
	case "float":
		return "DOUBLE"
	case "decimal":
		return "DECIMAL(38, 10)"
	case "string":
		return gddl.Varchar("VARCHAR", length)
	case "text":
		return "LONGTEXT"
	case "date":
		return "DATE"
	case "timestamp":
		return "DATETIME(6)"
	case "bytes":
		return "LONGBLOB"
	case "uuid":
		return "CHAR(36)"
	case "json":
		return "JSON"
	default:
		return "TEXT"
	}
}

// Dialect is the MySQL dialect: backtick quoting and AUTO_INCREMENT.
var Dialect gddl.Dialect = dialect{}

type dialect struct{}

func (dialect) Name() string                          { return "mysql" }
func (dialect) MapType(kind string, length int) string { return MapType(kind, length) }
func (dialect) QuoteIdent(id string) string           { return myIdent(id) }
func (dialect) Identity() string                      { return "AUTO_INCREMENT" }

// myIdent backtick-quotes an identifier, doubling embedded backticks.
func myIdent(id string) string {
	return "`" + strings.ReplaceAll(id, "`", "``") + "`"
}

// myFQN quotes a database-qualified name segment by segment.
func myFQN(fqn string) string {
	return gddl.QuoteFQN(Dialect, fqn)
}
