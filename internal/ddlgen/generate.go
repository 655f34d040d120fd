// Package ddlgen renders a complete SQL script for a set of entity
// descriptors: one CREATE TABLE statement per entity, optionally preceded by
// a DROP TABLE statement, each annotated with the table's fingerprint.
package ddlgen

import (
	"fmt"
	"strings"

	"schemagen/internal/ddl"
	"schemagen/internal/schema"
	"schemagen/internal/storage"
)

// Statement is the DDL rendered for one table.
type Statement struct {
	Table       string
	Fingerprint string
	Def         ddl.TableDef
	Drop        string // empty unless WithDrop(true)
	Create      string
}

// Script is the ordered result of Generate.
type Script struct {
	Dialect    string
	Statements []Statement
}

// Option configures Generate.
type Option func(*options)

type options struct {
	drop bool
}

// WithDrop emits a DROP TABLE statement ahead of every CREATE.
func WithDrop(drop bool) Option {
	return func(o *options) { o.drop = drop }
}

// Generate derives a Table for every descriptor using dialect d and renders
// its statements with b. A nil dialect selects ddl.Generic; a Builder with nil
// funcs falls back to the generic builders.
//
// Generation stops at the first descriptor without the entity marker and
// returns its *schema.NotEntityError unwrapped. Two descriptors resolving to
// the same table name (case-insensitively) are rejected.
func Generate(descs []schema.Descriptor, d ddl.Dialect, b storage.Builder, opts ...Option) (Script, error) {
	if d == nil {
		d = ddl.Generic
	}
	if b.Create == nil {
		b.Create = ddl.BuildCreateTableSQL
	}
	if b.Drop == nil {
		b.Drop = ddl.BuildDropTableSQL
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	script := Script{Dialect: d.Name(), Statements: make([]Statement, 0, len(descs))}
	seen := make(map[string]string, len(descs))

	for _, desc := range descs {
		t, err := schema.Of(desc, schema.WithDialect(d))
		if err != nil {
			return Script{}, err
		}
		key := strings.ToLower(t.Name())
		if prev, dup := seen[key]; dup {
			return Script{}, fmt.Errorf("ddlgen: table %q declared by both %s and %s", t.Name(), prev, desc.Name)
		}
		seen[key] = desc.Name

		def := t.Def()
		create, err := b.Create(def)
		if err != nil {
			return Script{}, fmt.Errorf("ddlgen: create %s: %w", t.Name(), err)
		}
		st := Statement{
			Table:       t.Name(),
			Fingerprint: t.Fingerprint(),
			Def:         def,
			Create:      create,
		}
		if o.drop {
			if st.Drop, err = b.Drop(def.FQN); err != nil {
				return Script{}, fmt.Errorf("ddlgen: drop %s: %w", t.Name(), err)
			}
		}
		script.Statements = append(script.Statements, st)
	}
	return script, nil
}

// Tables returns the table names in script order.
func (s Script) Tables() []string {
	out := make([]string, len(s.Statements))
	for i, st := range s.Statements {
		out[i] = st.Table
	}
	return out
}

// String renders the whole script:
//
//	-- schemagen dialect=<name> tables=<n>
//
//	-- table <name> fingerprint <hex>
//	[DROP ...]
//	CREATE ...
func (s Script) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "-- schemagen dialect=%s tables=%d\n", s.Dialect, len(s.Statements))
	for _, st := range s.Statements {
		fmt.Fprintf(&sb, "\n-- table %s fingerprint %s\n", st.Table, st.Fingerprint)
		if st.Drop != "" {
			sb.WriteString(st.Drop)
			sb.WriteByte('\n')
		}
		sb.WriteString(st.Create)
		sb.WriteByte('\n')
	}
	return sb.String()
}
