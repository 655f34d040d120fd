// Package postgres provides a Postgres-backed storage.Repository implementation.
// This adapter wires the Postgres backend into the storage-agnostic factory by
// registering a constructor at init time. The CLI (cmd/schemagen) and other
// callers can then obtain a Repository via storage.New(...) without importing
// this package directly.
//
// The adapter also registers the Postgres dialect and a DDL bootstrapper so
// that callers can render and apply backend-specific DDL based only on the
// storage kind, without branching on the backend themselves.
package postgres

import (
	"context"
	"fmt"

	gddl "schemagen/internal/ddl"
	"schemagen/internal/storage"
	pgddl "schemagen/internal/storage/postgres/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
// Tests may replace this variable to avoid real DB connections.
var newRepository = NewRepository

// wrappedRepo implements storage.Repository by delegating to the concrete
// *postgres.Repository while providing a Close method that calls the close
// function returned by NewRepository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

// Compile-time interface checks.
var (
	_ storage.Repository = (*wrappedRepo)(nil)
	_ storage.Execer     = (*Repository)(nil)
)

// Close implements storage.Repository.Close.
func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

// init registers the "postgres" backend with the storage factory, together
// with its dialect and DDL bootstrapper.
//
// Typical usage:
//
//	repo, err := storage.New(ctx, storage.Config{Kind: "postgres", DSN: dsn})
//	defer repo.Close()
//
//	if err := storage.EnsureTable(ctx, "postgres", repo, table.Def()); err != nil {
//	    // handle DDL error
//	}
func init() {
	storage.Register("postgres", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{DSN: cfg.DSN})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDialect("postgres", pgddl.Dialect, storage.Builder{
		Create: pgddl.BuildCreateTableSQL,
		Drop:   pgddl.BuildDropTableSQL,
	})

	storage.RegisterDDL("postgres",
		func(ctx context.Context, repo storage.Execer, def gddl.TableDef) error {
			if err := pgddl.EnsureTable(ctx, repo, def); err != nil {
				return fmt.Errorf("apply DDL: %w", err)
			}
			return nil
		})
}
