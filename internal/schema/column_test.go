package schema

import "testing"

// TestColumnOf covers name, type and nullability resolution for a single
// field.
func TestColumnOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   Field
		want string
	}{
		{
			name: "plain_string",
			in:   Field{Name: "name", Kind: "string"},
			want: "name VARCHAR(255) NOT NULL",
		},
		{
			name: "sized_nullable_string",
			in:   Field{Name: "code", Kind: "string", Length: 12, Nullable: true},
			want: "code VARCHAR(12)",
		},
		{
			name: "column_name_override",
			in:   Field{Name: "age", Kind: "int", Column: &ColumnMarker{Name: "old"}},
			want: "old INTEGER NOT NULL",
		},
		{
			name: "blank_override_keeps_field_name",
			in:   Field{Name: "age", Kind: "int", Column: &ColumnMarker{Name: "  "}},
			want: "age INTEGER NOT NULL",
		},
		{
			name: "nullable_override_on_value_type",
			in:   Field{Name: "age", Kind: "int", Column: &ColumnMarker{Nullable: Bool(true)}},
			want: "age INTEGER",
		},
		{
			name: "not_null_override_on_pointer_type",
			in:   Field{Name: "email", Kind: "string", Nullable: true, Column: &ColumnMarker{Nullable: Bool(false)}},
			want: "email VARCHAR(255) NOT NULL",
		},
		{
			name: "primary_key_is_never_nullable",
			in:   Field{Name: "id", Kind: "bigint", Nullable: true, ID: true, Generated: true, Column: &ColumnMarker{Nullable: Bool(true)}},
			want: "id BIGINT AUTO_INCREMENT NOT NULL PRIMARY KEY",
		},
		{
			name: "sql_type_override_and_default",
			in:   Field{Name: "created", Kind: "timestamp", Column: &ColumnMarker{SQLType: "TIMESTAMP(3)", Default: "CURRENT_TIMESTAMP"}},
			want: "created TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP",
		},
		{
			name: "unknown_kind_falls_back",
			in:   Field{Name: "shape", Kind: "geometry", Nullable: true},
			want: "shape VARCHAR(255)",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := ColumnOf(c.in, nil).Query(); got != c.want {
				t.Fatalf("ColumnOf().Query() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestColumnAccessors(t *testing.T) {
	t.Parallel()

	c := ColumnOf(Field{
		Name: "email", Kind: "string", ID: false, Generated: false,
		Column: &ColumnMarker{Unique: true, Default: "'x'"},
	}, nil)

	if c.Name() != "email" || c.SQLType() != "VARCHAR(255)" {
		t.Fatalf("Name/SQLType = %q/%q", c.Name(), c.SQLType())
	}
	if c.Nullable() || c.PrimaryKey() || c.Identity() || !c.Unique() || c.Default() != "'x'" {
		t.Fatalf("flags = nullable:%v pk:%v identity:%v unique:%v default:%q",
			c.Nullable(), c.PrimaryKey(), c.Identity(), c.Unique(), c.Default())
	}
	if def := c.Def(); def.Name != "email" || !def.Unique {
		t.Fatalf("Def() = %+v", def)
	}
}
