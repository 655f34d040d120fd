package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"schemagen/internal/ddl"
)

// DDLBootstrapper applies backend-specific DDL for a table definition via
// repo.Exec (typically an idempotent CREATE TABLE).
//
// Backends register their implementation for a storage kind at init time.
type DDLBootstrapper func(ctx context.Context, repo Execer, def ddl.TableDef) error

// Builder renders backend-specific statements for a table definition.
type Builder struct {
	Create func(ddl.TableDef) (string, error)
	Drop   func(fqn string) (string, error)
}

var (
	ddlMu    sync.RWMutex
	ddlFns   = map[string]DDLBootstrapper{}
	dialects = map[string]ddl.Dialect{}
	builders = map[string]Builder{}
)

// RegisterDDL registers (or replaces) a DDLBootstrapper for the given storage
// kind.
func RegisterDDL(kind string, fn DDLBootstrapper) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	ddlFns[kind] = fn
}

// RegisterDialect registers the SQL dialect and statement builder of a
// storage kind.
func RegisterDialect(kind string, d ddl.Dialect, b Builder) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	dialects[kind] = d
	builders[kind] = b
}

// EnsureTable locates the DDLBootstrapper for kind and invokes it. Callers do
// not need to know which backend they are using; they pass the kind and the
// already-open repository (or anything else that can Exec).
func EnsureTable(ctx context.Context, kind string, repo Execer, def ddl.TableDef) error {
	ddlMu.RLock()
	fn, ok := ddlFns[kind]
	ddlMu.RUnlock()
	if !ok {
		return fmt.Errorf("no DDL bootstrapper registered for storage.kind=%q", kind)
	}
	return fn(ctx, repo, def)
}

// Dialect returns the dialect registered for kind. The empty kind and
// "generic" resolve to ddl.Generic.
func Dialect(kind string) (ddl.Dialect, error) {
	if kind == "" || kind == ddl.Generic.Name() {
		return ddl.Generic, nil
	}
	ddlMu.RLock()
	d, ok := dialects[kind]
	ddlMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no dialect registered for %q", kind)
	}
	return d, nil
}

// BuilderFor returns the statement builder for kind. The empty kind and
// "generic" resolve to the generic ddl builders.
func BuilderFor(kind string) (Builder, error) {
	if kind == "" || kind == ddl.Generic.Name() {
		return Builder{Create: ddl.BuildCreateTableSQL, Drop: ddl.BuildDropTableSQL}, nil
	}
	ddlMu.RLock()
	b, ok := builders[kind]
	ddlMu.RUnlock()
	if !ok {
		return Builder{}, fmt.Errorf("no DDL builder registered for %q", kind)
	}
	return b, nil
}

// ListDialects returns "generic" plus every registered dialect name, sorted.
func ListDialects() []string {
	ddlMu.RLock()
	defer ddlMu.RUnlock()
	out := []string{ddl.Generic.Name()}
	for k := range dialects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
