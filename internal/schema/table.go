// Package schema derives relational table descriptions from entity
// descriptors.
//
// A Descriptor is the explicit, reflection-free input: a type name, the
// entity marker, an optional table-name marker and the declared fields.
// Descriptors come from struct tags (Describe), from types implementing
// Describer, or from configuration (config.Entity). Of turns a Descriptor
// into an immutable Table whose FieldQueries can be embedded directly into a
// CREATE TABLE statement.
package schema

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"schemagen/internal/ddl"
)

const fieldDelimiter = ", "

// Table is the derived, immutable description of an entity's table.
type Table struct {
	name    string
	columns []Column
	dialect ddl.Dialect
}

// Option configures Of.
type Option func(*options)

type options struct {
	dialect ddl.Dialect
}

// WithDialect selects the dialect used for column types and quoting.
// The default is ddl.Generic.
func WithDialect(d ddl.Dialect) Option {
	return func(o *options) {
		if d != nil {
			o.dialect = d
		}
	}
}

// Of derives the Table for d. It fails with *NotEntityError when d lacks the
// entity marker; no other error is possible.
//
// The table name is d.Table.Name when the marker is present and non-blank,
// d.Name otherwise. Columns follow field declaration order with transient
// fields removed.
func Of(d Descriptor, opts ...Option) (*Table, error) {
	if !d.Entity {
		return nil, &NotEntityError{Type: d.Name}
	}

	o := options{dialect: ddl.Generic}
	for _, opt := range opts {
		opt(&o)
	}

	columns := make([]Column, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Transient {
			continue
		}
		columns = append(columns, ColumnOf(f, o.dialect))
	}
	return &Table{name: tableName(d), columns: columns, dialect: o.dialect}, nil
}

// OfValue describes v (see Describe) and derives its Table.
func OfValue(v any, opts ...Option) (*Table, error) {
	d, err := Describe(v)
	if err != nil {
		return nil, err
	}
	return Of(d, opts...)
}

func tableName(d Descriptor) string {
	if d.Table != nil {
		if name := strings.TrimSpace(d.Table.Name); name != "" {
			return name
		}
	}
	return d.Name
}

// Name returns the resolved table name.
func (t *Table) Name() string { return t.name }

// Columns returns a copy of the table's columns in declaration order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// FieldQueries joins every column's definition fragment with ", ". A table
// without columns yields "".
func (t *Table) FieldQueries() string {
	parts := make([]string, len(t.columns))
	for i, c := range t.columns {
		parts[i] = c.Query()
	}
	return strings.Join(parts, fieldDelimiter)
}

// CreateQuery renders CREATE TABLE <name> (<FieldQueries>), quoting the
// table name with the table's dialect.
func (t *Table) CreateQuery() string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", ddl.QuoteFQN(t.dialect, t.name), t.FieldQueries())
}

// Def converts the table to the ddl model consumed by the backend builders.
func (t *Table) Def() ddl.TableDef {
	cols := make([]ddl.ColumnDef, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.def
	}
	return ddl.TableDef{FQN: t.name, Columns: cols}
}

// Fingerprint is a stable hash of the table name and column definitions.
// Two tables with the same fingerprint render identical DDL.
func (t *Table) Fingerprint() string {
	return fmt.Sprintf("%016x", xxh3.HashString(t.name+"("+t.FieldQueries()+")"))
}
