package schema

import (
	"strings"

	"schemagen/internal/ddl"
)

// Column is the derived description of one persisted field. It is immutable;
// all state is fixed by ColumnOf.
type Column struct {
	def     ddl.ColumnDef
	dialect ddl.Dialect
}

// ColumnOf maps a field to a Column using the dialect's type mapping.
//
//   - The column name is f.Column.Name when non-blank, f.Name otherwise.
//   - The SQL type is f.Column.SQLType when non-blank, otherwise
//     d.MapType(f.Kind, f.Length).
//   - Nullability is f.Column.Nullable when set, f.Nullable otherwise;
//     primary keys are never nullable.
//
// ColumnOf does not look at f.Transient; Of filters transient fields first.
func ColumnOf(f Field, d ddl.Dialect) Column {
	if d == nil {
		d = ddl.Generic
	}

	def := ddl.ColumnDef{
		Name:       strings.TrimSpace(f.Name),
		SQLType:    d.MapType(f.Kind, f.Length),
		Nullable:   f.Nullable,
		PrimaryKey: f.ID,
		Identity:   f.Generated,
	}
	if m := f.Column; m != nil {
		if name := strings.TrimSpace(m.Name); name != "" {
			def.Name = name
		}
		if typ := strings.TrimSpace(m.SQLType); typ != "" {
			def.SQLType = typ
		}
		if m.Nullable != nil {
			def.Nullable = *m.Nullable
		}
		def.Unique = m.Unique
		def.Default = strings.TrimSpace(m.Default)
	}
	if def.PrimaryKey {
		def.Nullable = false
	}
	return Column{def: def, dialect: d}
}

// Name returns the column name.
func (c Column) Name() string { return c.def.Name }

// SQLType returns the resolved column type.
func (c Column) SQLType() string { return c.def.SQLType }

func (c Column) Nullable() bool   { return c.def.Nullable }
func (c Column) PrimaryKey() bool { return c.def.PrimaryKey }
func (c Column) Identity() bool   { return c.def.Identity }
func (c Column) Unique() bool     { return c.def.Unique }
func (c Column) Default() string  { return c.def.Default }

// Def returns the column as a ddl.ColumnDef.
func (c Column) Def() ddl.ColumnDef { return c.def }

// Query renders the column definition fragment used inside CREATE TABLE:
//
//	name TYPE [identity] [NOT NULL] [UNIQUE] [DEFAULT expr] [PRIMARY KEY]
func (c Column) Query() string {
	q := ddl.RenderColumn(c.dialect, c.def)
	if c.def.PrimaryKey {
		q += " PRIMARY KEY"
	}
	return q
}
