// Package ddl defines a small, backend-agnostic model for SQL DDL and helpers
// to render simple CREATE TABLE and DROP TABLE statements from that model.
//
// The generic renderers here do not assume any specific SQL dialect:
//
//   - Identifiers are passed through Dialect.QuoteIdent; the Generic dialect
//     emits TableDef.FQN and ColumnDef.Name as-is.
//   - No dialect-specific clauses such as IF NOT EXISTS are inserted.
//   - ColumnDef.Default is raw SQL (the caller is responsible for safety and
//     dialect correctness).
//
// Backend-specific packages (e.g., internal/storage/postgres/ddl) wrap these
// helpers with their own Dialect and statement shape.
package ddl

import (
	"fmt"
	"strings"
)

// RenderColumn renders a single column definition:
//
//	<Name> <SQLType> [<identity>] [NOT NULL] [UNIQUE] [DEFAULT <Default>]
//
// NOT NULL is added when Nullable == false or the column is part of the
// primary key. The primary key is not rendered
// here; table builders emit it as a separate PRIMARY KEY clause.
func RenderColumn(d Dialect, c ColumnDef) string {
	var sb strings.Builder
	sb.WriteString(d.QuoteIdent(strings.TrimSpace(c.Name)))
	sb.WriteByte(' ')
	sb.WriteString(strings.TrimSpace(c.SQLType))

	if c.Identity {
		if id := d.Identity(); id != "" {
			sb.WriteByte(' ')
			sb.WriteString(id)
		}
	}
	if !c.Nullable || c.PrimaryKey {
		sb.WriteString(" NOT NULL")
	}
	if c.Unique && !c.PrimaryKey {
		sb.WriteString(" UNIQUE")
	}
	if def := strings.TrimSpace(c.Default); def != "" {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(def)
	}
	return sb.String()
}

// QuoteFQN quotes a possibly schema-qualified name segment by segment, e.g.
// "public.users" -> "public"."users" for a double-quoting dialect. Empty
// segments are dropped.
func QuoteFQN(d Dialect, fqn string) string {
	parts := strings.Split(fqn, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, d.QuoteIdent(p))
	}
	return strings.Join(out, ".")
}

// ColumnList validates t and renders its column definitions plus a trailing
// PRIMARY KEY clause. The prefix is used in error messages (e.g. "sqlite ddl").
func ColumnList(prefix string, d Dialect, t TableDef) (string, []string, error) {
	fqn := strings.TrimSpace(t.FQN)
	if fqn == "" {
		return "", nil, fmt.Errorf("%s: table FQN must not be empty", prefix)
	}
	if len(t.Columns) == 0 {
		return "", nil, fmt.Errorf("%s: at least one column is required", prefix)
	}

	cols := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return "", nil, fmt.Errorf("%s: column with empty name in table %s", prefix, fqn)
		}
		if strings.TrimSpace(c.SQLType) == "" {
			return "", nil, fmt.Errorf("%s: column %s missing SQLType", prefix, name)
		}
		cols = append(cols, RenderColumn(d, c))
	}

	if pks := t.PrimaryKeys(); len(pks) > 0 {
		for i, pk := range pks {
			pks[i] = d.QuoteIdent(pk)
		}
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}
	return fqn, cols, nil
}

// BuildCreateTableSQL renders a generic CREATE TABLE statement from a TableDef.
//
// Rules:
//
//   - t.FQN must be non-empty; it is emitted verbatim as the table name.
//
//   - Each column must have a non-empty Name and SQLType.
//
//   - Columns with PrimaryKey == true are collected and rendered as a separate
//     PRIMARY KEY (<col1>, <col2>, ...) clause at the end of the column list.
//
//   - The resulting statement has the form:
//
//     CREATE TABLE <FQN> (
//     <col1-def>,
//     <col2-def>,
//     ...,
//     [PRIMARY KEY (<pk-cols>)]
//     );
func BuildCreateTableSQL(t TableDef) (string, error) {
	fqn, cols, err := ColumnList("ddl", Generic, t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"CREATE TABLE %s (\n  %s\n);",
		fqn,
		strings.Join(cols, ",\n  "),
	), nil
}

// BuildDropTableSQL renders DROP TABLE IF EXISTS <FQN>; for the Generic
// dialect.
func BuildDropTableSQL(fqn string) (string, error) {
	fqn = strings.TrimSpace(fqn)
	if fqn == "" {
		return "", fmt.Errorf("ddl: table FQN must not be empty")
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", fqn), nil
}
