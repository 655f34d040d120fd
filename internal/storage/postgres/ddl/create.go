package ddl

import (
	"context"
	"fmt"
	"strings"

	gddl "schemagen/internal/ddl"
	"schemagen/internal/storage"
)

// BuildCreateTableSQL returns a Postgres CREATE TABLE IF NOT EXISTS statement
// for the given table definition:
//
//	CREATE TABLE IF NOT EXISTS "schema"."table" (
//	  "id" BIGINT GENERATED BY DEFAULT AS IDENTITY NOT NULL,
//	  "name" VARCHAR(255),
//	  PRIMARY KEY ("id")
//	);
//
// Identifiers are double-quoted with embedded quotes escaped; the primary key
// is rendered as a separate constraint clause in column order.
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	fqn, cols, err := gddl.ColumnList("postgres ddl", Dialect, t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		quoteFQN(fqn),
		strings.Join(cols, ",\n  "),
	), nil
}

// BuildDropTableSQL returns DROP TABLE IF EXISTS for fqn.
func BuildDropTableSQL(fqn string) (string, error) {
	if strings.TrimSpace(fqn) == "" {
		return "", fmt.Errorf("postgres ddl: table FQN must not be empty")
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", quoteFQN(fqn)), nil
}

// EnsureTable executes the CREATE TABLE IF NOT EXISTS statement for def through repo.
func EnsureTable(ctx context.Context, repo storage.Execer, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
