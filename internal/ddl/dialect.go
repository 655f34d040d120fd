package ddl

import (
	"strconv"
	"strings"
)

// Dialect captures the few places where SQL backends disagree when rendering
// a column definition: type names, identifier quoting and the clause used for
// database-generated keys.
//
// Implementations live next to each storage backend (internal/storage/*/ddl);
// Generic is the unquoted, ANSI-flavoured default.
type Dialect interface {
	// Name is the storage kind the dialect belongs to (e.g. "postgres").
	Name() string
	// MapType maps a logical kind ("bigint", "string", "timestamp", ...) and an
	// optional length to a column type.
	MapType(kind string, length int) string
	// QuoteIdent quotes a single identifier segment.
	QuoteIdent(id string) string
	// Identity returns the clause appended to identity columns, or "".
	Identity() string
}

// DefaultStringLength is used for "string" columns declared without a size.
const DefaultStringLength = 255

// Generic is the dialect used when no backend is selected. Identifiers are
// emitted verbatim and types follow the ANSI/H2 spelling.
var Generic Dialect = genericDialect{}

type genericDialect struct{}

func (genericDialect) Name() string { return "generic" }

func (genericDialect) QuoteIdent(id string) string { return id }

func (genericDialect) Identity() string { return "AUTO_INCREMENT" }

// MapType implements Dialect.
//
//	"bool"/"boolean"          -> BOOLEAN
//	"int"/"integer"           -> INTEGER
//	"bigint"                  -> BIGINT
//	"float"/"double"          -> DOUBLE
//	"decimal"/"numeric"       -> DECIMAL(38, 10)
//	"string"/"varchar"        -> VARCHAR(n)
//	"text"/"json"             -> CLOB
//	"date"                    -> DATE
//	"timestamp"/"datetime"    -> TIMESTAMP
//	"bytes"/"blob"            -> BLOB
//	"uuid"                    -> UUID
//	everything else           -> VARCHAR(255)
func (genericDialect) MapType(kind string, length int) string {
	switch NormalizeKind(kind) {
	case "bool":
		return "BOOLEAN"
	case "int":
		return "INTEGER"
	case "bigint":
		return "BIGINT"
	case "float":
		return "DOUBLE"
	case "decimal":
		return "DECIMAL(38, 10)"
	case "string":
		return Varchar("VARCHAR", length)
	case "text", "json":
		return "CLOB"
	case "date":
		return "DATE"
	case "timestamp":
		return "TIMESTAMP"
	case "bytes":
		return "BLOB"
	case "uuid":
		return "UUID"
	default:
		return Varchar("VARCHAR", DefaultStringLength)
	}
}

// NormalizeKind folds the loose spellings accepted in configuration files into
// the canonical logical kinds understood by every Dialect.
func NormalizeKind(kind string) string {
	switch k := strings.ToLower(strings.TrimSpace(kind)); k {
	case "bool", "boolean":
		return "bool"
	case "int", "integer", "int32", "smallint":
		return "int"
	case "bigint", "long", "int64":
		return "bigint"
	case "float", "double", "real":
		return "float"
	case "decimal", "numeric":
		return "decimal"
	case "string", "varchar":
		return "string"
	case "timestamp", "timestamptz", "datetime", "time":
		return "timestamp"
	case "bytes", "blob", "binary":
		return "bytes"
	default:
		return k
	}
}

// Varchar renders name(length), substituting DefaultStringLength for
// non-positive lengths.
func Varchar(name string, length int) string {
	if length <= 0 {
		length = DefaultStringLength
	}
	return name + "(" + strconv.Itoa(length) + ")"
}
