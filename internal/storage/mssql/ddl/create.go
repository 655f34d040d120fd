// Package ddl provides MSSQL-specific helpers for generating CREATE TABLE
// statements from the generic ddl.TableDef model.
//
// The builder here:
//   - Uses SQL Server-style identifier quoting: [schema].[table], [col].
//   - Wraps CREATE TABLE in an IF OBJECT_ID(...) IS NULL guard since T-SQL
//     does not support CREATE TABLE IF NOT EXISTS.
//   - Treats ColumnDef.Default as raw SQL.
//   - Renders PRIMARY KEY constraints as a separate clause.
package ddl

import (
	"context"
	"fmt"
	"strings"

	gddl "schemagen/internal/ddl"
	"schemagen/internal/storage"
)

// BuildCreateTableSQL returns a T-SQL script that creates a table matching
// the provided definition if it does not already exist.
//
// The generated script has the form:
//
//	IF OBJECT_ID(N'[schema].[table]', N'U') IS NULL
//	BEGIN
//	  CREATE TABLE [schema].[table] (
//	    [col1] TYPE [IDENTITY(1,1)] [NOT NULL] [DEFAULT expr],
//	    [col2] TYPE,
//	    PRIMARY KEY ([pk1], [pk2])
//	  );
//	END;
//
// The function validates that:
//   - TableDef.FQN is non-empty.
//   - At least one column is present.
//   - Each column has a non-empty Name and SQLType.
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	fqn, cols, err := gddl.ColumnList("mssql ddl", Dialect, t)
	if err != nil {
		return "", err
	}

	fqnQuoted := quoteFQN(fqn)

	// Indent inner CREATE TABLE for readability.
	return fmt.Sprintf(
		"IF OBJECT_ID(N'%s', N'U') IS NULL\nBEGIN\n  CREATE TABLE %s (\n    %s\n  );\nEND;",
		escapeLiteral(fqnQuoted),
		fqnQuoted,
		strings.Join(cols, ",\n    "),
	), nil
}

// BuildDropTableSQL returns a guarded DROP TABLE for fqn.
func BuildDropTableSQL(fqn string) (string, error) {
	if strings.TrimSpace(fqn) == "" {
		return "", fmt.Errorf("mssql ddl: table FQN must not be empty")
	}
	q := quoteFQN(fqn)
	return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NOT NULL\n  DROP TABLE %s;", escapeLiteral(q), q), nil
}

// escapeLiteral doubles single quotes for use inside N'...'.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// EnsureTable executes the IF OBJECT_ID guard statement for def through repo.
func EnsureTable(ctx context.Context, repo storage.Execer, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
