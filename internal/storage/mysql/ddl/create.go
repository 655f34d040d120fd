package ddl

import (
	"context"
	"fmt"
	"strings"

	gddl "schemagen/internal/ddl"
	"schemagen/internal/storage"
)

// BuildCreateTableSQL returns a MySQL CREATE TABLE IF NOT EXISTS statement:
//
//	CREATE TABLE IF NOT EXISTS `db`.`table` (
//	  `id` BIGINT AUTO_INCREMENT NOT NULL,
//	  `name` VARCHAR(255),
//	  PRIMARY KEY (`id`)
//	);
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	fqn, cols, err := gddl.ColumnList("mysql ddl", Dialect, t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		myFQN(fqn),
		strings.Join(cols, ",\n  "),
	), nil
}

// BuildDropTableSQL returns DROP TABLE IF EXISTS for fqn.
func BuildDropTableSQL(fqn string) (string, error) {
	if strings.TrimSpace(fqn) == "" {
		return "", fmt.Errorf("mysql ddl: table FQN must not be empty")
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", myFQN(fqn)), nil
}

// EnsureTable creates the table described by def if it does not exist.
func EnsureTable(ctx context.Context, repo storage.Execer, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
