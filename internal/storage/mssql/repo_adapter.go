// Package mssql provides an MSSQL-backed storage.Repository implementation.
// This adapter wires the MSSQL backend into the storage-agnostic factory and
// registers the T-SQL dialect and DDL bootstrapper.
package mssql

import (
	"context"
	"fmt"

	gddl "schemagen/internal/ddl"
	"schemagen/internal/storage"
	msddl "schemagen/internal/storage/mssql/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
// Tests may replace this variable to avoid real DB connections.
var newRepository = NewRepository

var (
	_ storage.Repository = (*wrappedRepo)(nil)
	_ storage.Execer     = (*Repository)(nil)
)

func init() {
	storage.Register("mssql", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{DSN: cfg.DSN})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDialect("mssql", msddl.Dialect, storage.Builder{
		Create: msddl.BuildCreateTableSQL,
		Drop:   msddl.BuildDropTableSQL,
	})

	storage.RegisterDDL("mssql",
		func(ctx context.Context, repo storage.Execer, def gddl.TableDef) error {
			if err := msddl.EnsureTable(ctx, repo, def); err != nil {
				return fmt.Errorf("apply DDL: %w", err)
			}
			return nil
		})
}

// wrappedRepo adapts *mssql.Repository to storage.Repository and provides Close.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() { w.closeFn() }
