// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) causes the init functions of each concrete storage backend to run,
// which in turn register their factories, dialects and DDL bootstrappers with
// the storage package.
//
// In other words, importing this package makes the following storage kinds
// available at runtime:
//
//   - "postgres" (schemagen/internal/storage/postgres)
//   - "mssql"    (schemagen/internal/storage/mssql)
//   - "mysql"    (schemagen/internal/storage/mysql)
//   - "sqlite"   (schemagen/internal/storage/sqlite)
//
// Typical usage (in cmd/schemagen/main.go or a similar wiring layer):
//
//	import (
//	    _ "schemagen/internal/storage/all" // enable all built-in backends
//
//	    "schemagen/internal/storage"
//	)
//
//	repo, err := storage.New(ctx, storage.Config{Kind: p.Storage.Kind, DSN: p.Storage.DSN})
//	if err != nil {
//	    // handle error
//	}
//	defer repo.Close()
//
//	if err := storage.EnsureTable(ctx, p.Storage.Kind, repo, table.Def()); err != nil {
//	    // handle DDL error
//	}
//
// If you want a binary that supports only a subset of backends, import the
// required backend packages directly instead of this package.
package all

import (
	_ "schemagen/internal/storage/mssql"
	_ "schemagen/internal/storage/mysql"
	_ "schemagen/internal/storage/postgres"
	_ "schemagen/internal/storage/sqlite"
)
