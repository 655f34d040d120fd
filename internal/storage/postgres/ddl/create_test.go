package ddl

import (
	"context"
	"errors"
	"strings"
	"testing"

	gddl "schemagen/internal/ddl"
)

func TestQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, ident, fqn string
	}{
		{in: "users", ident: `"users"`, fqn: `"users"`},
		{in: "public.users", ident: `"public.users"`, fqn: `"public"."users"`},
		{in: `we"ird`, ident: `"we""ird"`, fqn: `"we""ird"`},
		{in: " public . Users ", ident: `" public . Users "`, fqn: `"public"."Users"`},
		{in: "a..b", ident: `"a..b"`, fqn: `"a"."b"`},
	}
	for _, tt := range tests {
		if got := quoteIdent(tt.in); got != tt.ident {
			t.Errorf("quoteIdent(%q) = %s, want %s", tt.in, got, tt.ident)
		}
		if got := quoteFQN(tt.in); got != tt.fqn {
			t.Errorf("quoteFQN(%q) = %s, want %s", tt.in, got, tt.fqn)
		}
	}
}

func TestBuildCreateTableSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  gddl.TableDef
		want string
	}{
		{
			name: "identity key with unique and default",
			def: gddl.TableDef{
				FQN: "public.users",
				Columns: []gddl.ColumnDef{
					{Name: "id", SQLType: "BIGINT", PrimaryKey: true, Identity: true},
					{Name: "email", SQLType: "VARCHAR(255)", Unique: true},
					{Name: "created_at", SQLType: "TIMESTAMPTZ", Default: "now()"},
					{Name: "nick", SQLType: "VARCHAR(255)", Nullable: true},
				},
			},
			want: `CREATE TABLE IF NOT EXISTS "public"."users" (` + "\n" +
				`  "id" BIGINT GENERATED BY DEFAULT AS IDENTITY NOT NULL,` + "\n" +
				`  "email" VARCHAR(255) NOT NULL UNIQUE,` + "\n" +
				`  "created_at" TIMESTAMPTZ NOT NULL DEFAULT now(),` + "\n" +
				`  "nick" VARCHAR(255),` + "\n" +
				`  PRIMARY KEY ("id")` + "\n" +
				`);`,
		},
		{
			name: "composite key in column order",
			def: gddl.TableDef{
				FQN: "line_items",
				Columns: []gddl.ColumnDef{
					{Name: "order_id", SQLType: "BIGINT", PrimaryKey: true},
					{Name: "qty", SQLType: "INTEGER", Nullable: true},
					{Name: "item_id", SQLType: "INTEGER", PrimaryKey: true},
				},
			},
			want: `CREATE TABLE IF NOT EXISTS "line_items" (` + "\n" +
				`  "order_id" BIGINT NOT NULL,` + "\n" +
				`  "qty" INTEGER,` + "\n" +
				`  "item_id" INTEGER NOT NULL,` + "\n" +
				`  PRIMARY KEY ("order_id", "item_id")` + "\n" +
				`);`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BuildCreateTableSQL(tt.def)
			if err != nil {
				t.Fatalf("BuildCreateTableSQL() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("BuildCreateTableSQL() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}

	if _, err := BuildCreateTableSQL(gddl.TableDef{FQN: "t"}); err == nil || !strings.HasPrefix(err.Error(), "postgres ddl: ") {
		t.Fatalf("no columns: error = %v, want postgres ddl prefix", err)
	}
}

func TestBuildDropTableSQL(t *testing.T) {
	t.Parallel()

	got, err := BuildDropTableSQL("public.users")
	if err != nil {
		t.Fatalf("BuildDropTableSQL() error = %v", err)
	}
	if want := `DROP TABLE IF EXISTS "public"."users";`; got != want {
		t.Fatalf("BuildDropTableSQL() = %q, want %q", got, want)
	}
	if _, err := BuildDropTableSQL(""); err == nil {
		t.Fatal("BuildDropTableSQL(\"\") error = nil, want non-nil")
	}
}

type execRecorder struct {
	stmts []string
	err   error
}

func (r *execRecorder) Exec(ctx context.Context, sql string) error {
	r.stmts = append(r.stmts, sql)
	return r.err
}

func (r *execRecorder) Close() {}

func TestEnsureTable(t *testing.T) {
	t.Parallel()

	def := gddl.TableDef{FQN: "t", Columns: []gddl.ColumnDef{{Name: "id", SQLType: "INTEGER", PrimaryKey: true}}}

	rec := &execRecorder{}
	if err := EnsureTable(context.Background(), rec, def); err != nil {
		t.Fatalf("EnsureTable() error = %v", err)
	}
	if len(rec.stmts) != 1 || !strings.HasPrefix(rec.stmts[0], `CREATE TABLE IF NOT EXISTS "t"`) {
		t.Fatalf("executed = %q", rec.stmts)
	}

	boom := errors.New("boom")
	if err := EnsureTable(context.Background(), &execRecorder{err: boom}, def); !errors.Is(err, boom) {
		t.Fatalf("EnsureTable() error = %v, want %v", err, boom)
	}
}

func BenchmarkBuildCreateTableSQL_Wide(b *testing.B) {
	cols := make([]gddl.ColumnDef, 64)
	for i := range cols {
		cols[i] = gddl.ColumnDef{Name: "col_" + strings.Repeat("x", i%8), SQLType: "TEXT", Nullable: true}
	}
	cols[0].PrimaryKey = true
	def := gddl.TableDef{FQN: "public.wide", Columns: cols}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := BuildCreateTableSQL(def); err != nil {
			b.Fatal(err)
		}
	}
}
