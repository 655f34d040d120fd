package ddl

import (
	"fmt"
	"testing"
)

// TestGenericMapType checks the logical-kind table of the generic dialect,
// including the loose spellings folded by NormalizeKind.
func TestGenericMapType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind   string
		length int
		want   string
	}{
		{"bool", 0, "BOOLEAN"},
		{"Boolean", 0, "BOOLEAN"},
		{"int", 0, "INTEGER"},
		{"integer", 0, "INTEGER"},
		{"bigint", 0, "BIGINT"},
		{"long", 0, "BIGINT"},
		{"float", 0, "DOUBLE"},
		{"numeric", 0, "DECIMAL(38, 10)"},
		{"string", 0, "VARCHAR(255)"},
		{"string", 64, "VARCHAR(64)"},
		{" varchar ", 10, "VARCHAR(10)"},
		{"text", 0, "CLOB"},
		{"json", 0, "CLOB"},
		{"date", 0, "DATE"},
		{"timestamptz", 0, "TIMESTAMP"},
		{"bytes", 0, "BLOB"},
		{"uuid", 0, "UUID"},
		{"", 0, "VARCHAR(255)"},
		{"geometry", 0, "VARCHAR(255)"},
	}

	for _, c := range cases {
		if got := Generic.MapType(c.kind, c.length); got != c.want {
			t.Errorf("Generic.MapType(%q, %d) = %q; want %q", c.kind, c.length, got, c.want)
		}
	}
}

// TestRenderColumn exercises the single-column renderer used by every
// backend builder.
func TestRenderColumn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   ColumnDef
		want string
	}{
		{
			name: "nullable",
			in:   ColumnDef{Name: "nick_name", SQLType: "VARCHAR(255)", Nullable: true},
			want: "nick_name VARCHAR(255)",
		},
		{
			name: "identity_not_null",
			in:   ColumnDef{Name: "id", SQLType: "BIGINT", Identity: true, PrimaryKey: true},
			want: "id BIGINT AUTO_INCREMENT NOT NULL",
		},
		{
			name: "unique_with_default",
			in:   ColumnDef{Name: "email", SQLType: "VARCHAR(255)", Unique: true, Default: " 'n/a' "},
			want: "email VARCHAR(255) NOT NULL UNIQUE DEFAULT 'n/a'",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderColumn(Generic, c.in); got != c.want {
				t.Fatalf("RenderColumn() = %q; want %q", got, c.want)
			}
		})
	}
}

// TestQuoteFQN_Generic verifies empty segments are dropped and the remaining
// ones are passed through unquoted by the generic dialect.
func TestQuoteFQN_Generic(t *testing.T) {
	t.Parallel()

	if got, want := QuoteFQN(Generic, " app . users "), "app.users"; got != want {
		t.Fatalf("QuoteFQN() = %q; want %q", got, want)
	}
	if got, want := QuoteFQN(Generic, "a..b"), "a.b"; got != want {
		t.Fatalf("QuoteFQN() = %q; want %q", got, want)
	}
}

// ExampleRenderColumn shows a generic identity column.
func ExampleRenderColumn() {
	fmt.Println(RenderColumn(Generic, ColumnDef{Name: "id", SQLType: "BIGINT", Identity: true, PrimaryKey: true}))
	// Output:
	// id BIGINT AUTO_INCREMENT NOT NULL
}
