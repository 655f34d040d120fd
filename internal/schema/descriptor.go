package schema

// Descriptor is the explicit description of an entity type from which a
// Table is derived. It can be produced by reflection (Describe), by a type
// implementing Describer, or from static configuration.
type Descriptor struct {
	// Name is the simple (unqualified) type name; it is the default table name.
	Name string
	// Entity is the entity marker. Of rejects descriptors without it.
	Entity bool
	// Table is the optional table-name marker. A nil marker, or one whose
	// Name is blank, leaves the table name at its default.
	Table *TableMarker
	// Fields lists the declared fields in declaration order, transient ones
	// included.
	Fields []Field
}

// TableMarker carries an explicit table name override.
type TableMarker struct {
	Name string
}

// Field describes one declared field of an entity.
type Field struct {
	// Name is the default column name.
	Name string
	// Kind is the logical value type ("bigint", "string", "timestamp", ...).
	Kind string
	// Length applies to "string" kinds; zero means the dialect default.
	Length int
	// Nullable is the nullability implied by the value type.
	Nullable bool
	// Transient excludes the field from the column set.
	Transient bool
	// ID marks a primary key column.
	ID bool
	// Generated marks a database-generated (identity) value.
	Generated bool
	// Column carries optional per-column overrides.
	Column *ColumnMarker
}

// ColumnMarker overrides column properties derived from the field.
type ColumnMarker struct {
	// Name replaces the field name when non-blank.
	Name string
	// Nullable, when set, replaces the type-derived nullability.
	Nullable *bool
	Unique   bool
	// SQLType replaces the dialect type mapping when non-blank.
	SQLType string
	// Default is a raw SQL default expression.
	Default string
}

// Describer is implemented by types that describe themselves explicitly.
// Describe returns the result of Descriptor without inspecting struct tags.
type Describer interface {
	Descriptor() Descriptor
}

// TableNamer can be implemented by entity structs to override the table
// name. A blank result is ignored.
type TableNamer interface {
	TableName() string
}

// Entity is the entity marker. Embed it in a struct to make the struct
// mappable; its `table` tag is the table-name marker:
//
//	type Person struct {
//		schema.Entity `table:"users"`
//
//		ID    int64  `db:"id,pk,identity"`
//		Name  string `db:"nick_name"`
//		Cache string `db:"-"`
//	}
//
// Embedding *Entity works the same way.
type Entity struct{}

// Bool returns a pointer to b, for ColumnMarker.Nullable literals.
func Bool(b bool) *bool { return &b }
