package ddl

import "testing"

// TestMapType verifies that MapType normalizes a variety of logical type
// names into the expected Postgres SQL types and defaults to TEXT.
func TestMapType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   string
		length int
		want   string
	}{
		{name: "int lower", kind: "int", want: "INTEGER"},
		{name: "int mixed case", kind: " InTeGeR ", want: "INTEGER"},
		{name: "bigint upper", kind: "BIGINT", want: "BIGINT"},
		{name: "bool lower", kind: "bool", want: "BOOLEAN"},
		{name: "boolean upper", kind: "BOOLEAN", want: "BOOLEAN"},
		{name: "float", kind: "float", want: "DOUBLE PRECISION"},
		{name: "decimal", kind: "decimal", want: "NUMERIC"},
		{name: "string default length", kind: "string", want: "VARCHAR(255)"},
		{name: "string sized", kind: "string", length: 40, want: "VARCHAR(40)"},
		{name: "date lower", kind: "date", want: "DATE"},
		{name: "timestamp lower", kind: "timestamp", want: "TIMESTAMPTZ"},
		{name: "timestamptz lower", kind: "timestamptz", want: "TIMESTAMPTZ"},
		{name: "bytes", kind: "bytes", want: "BYTEA"},
		{name: "uuid", kind: "uuid", want: "UUID"},
		{name: "json", kind: "json", want: "JSONB"},
		{name: "empty string", kind: "", want: "TEXT"},
		{name: "spaces only", kind: "   ", want: "TEXT"},
		{name: "text", kind: "text", want: "TEXT"},
		{name: "unknown", kind: "geometry", want: "TEXT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MapType(tt.kind, tt.length); got != tt.want {
				t.Fatalf("MapType(%q, %d) = %q, want %q", tt.kind, tt.length, got, tt.want)
			}
		})
	}
}

func TestDialect(t *testing.T) {
	t.Parallel()

	if Dialect.Name() != "postgres" {
		t.Fatalf("Name() = %q", Dialect.Name())
	}
	if Dialect.Identity() != "GENERATED BY DEFAULT AS IDENTITY" {
		t.Fatalf("Identity() = %q", Dialect.Identity())
	}
	if got := Dialect.QuoteIdent(`a"b`); got != `"a""b"` {
		t.Fatalf("QuoteIdent() = %q", got)
	}
}
