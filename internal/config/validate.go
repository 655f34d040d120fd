// Package config provides configuration models and helpers for schemagen.
//
// This file adds a lightweight linter/validator for Project values. It
// performs static checks over a decoded Project and returns a list of issues
// (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"

	"schemagen/internal/ddl"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation/lint finding for a Project.
//
// Path is a dotted path into the config (e.g. "storage.kind",
// "entities[1].fields[0].kind"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// HasErrors reports whether issues contains at least one SeverityError.
func HasErrors(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}

var (
	knownDialects = map[string]struct{}{
		"generic": {}, "postgres": {}, "sqlite": {}, "mssql": {}, "mysql": {},
	}
	knownKinds = map[string]struct{}{
		"bool": {}, "int": {}, "bigint": {}, "float": {}, "decimal": {},
		"string": {}, "text": {}, "date": {}, "timestamp": {}, "bytes": {},
		"uuid": {}, "json": {},
	}
	knownLevels   = map[string]struct{}{"": {}, "debug": {}, "info": {}, "warn": {}, "error": {}}
	knownBackends = map[string]struct{}{"": {}, "none": {}, "prometheus": {}, "pushgateway": {}, "datadog": {}}
)

// ValidateProject performs static validation / linting of a Project.
//
// It does not mutate the project. Instead it returns a slice of Issue values.
// Callers may decide whether to treat warnings as fatal or not.
//
// Example:
//
//	p, err := config.Load("schemagen.yaml")
//	if err != nil { ... }
//	for _, iss := range config.ValidateProject(p) {
//	    fmt.Printf("%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
//	}
func ValidateProject(p Project) []Issue {
	var issues []Issue

	if strings.TrimSpace(p.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "job",
			Message:  "job is empty; metrics and logs will use the default job name",
		})
	}
	if d := strings.TrimSpace(p.Dialect); d != "" {
		if _, ok := knownDialects[d]; !ok {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "dialect",
				Message:  fmt.Sprintf("unknown dialect %q", d),
			})
		}
	}
	issues = append(issues, validateStorage(p.Storage)...)
	issues = append(issues, validateEntities(p.Entities)...)
	issues = append(issues, validateRuntime(p.Runtime)...)
	issues = append(issues, validateLogging(p.Logging)...)
	issues = append(issues, validateMetrics(p.Metrics)...)

	return issues
}

// validateStorage validates the optional apply target.
func validateStorage(s Storage) []Issue {
	var issues []Issue
	kind := strings.TrimSpace(s.Kind)
	if kind == "" {
		if strings.TrimSpace(s.DSN) != "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.kind",
				Message:  "storage.dsn is set but storage.kind is empty",
			})
		}
		return issues
	}
	if _, ok := knownDialects[kind]; !ok || kind == "generic" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q; ensure a matching backend is registered", kind),
		})
	}
	if strings.TrimSpace(s.DSN) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.dsn",
			Message:  "storage.dsn must not be empty when storage.kind is set",
		})
	}
	return issues
}

// validateEntities checks names, field kinds and table-name uniqueness.
func validateEntities(es []Entity) []Issue {
	var issues []Issue
	if len(es) == 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "entities",
			Message:  "no entities configured",
		})
		return issues
	}

	tables := map[string]int{}
	for i, e := range es {
		path := fmt.Sprintf("entities[%d]", i)
		if strings.TrimSpace(e.Name) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path + ".name",
				Message:  "entity name must not be empty",
			})
		}
		if e.Entity != nil && !*e.Entity {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path + ".entity",
				Message:  fmt.Sprintf("%s is not marked as an entity and cannot be mapped to a table", e.Name),
			})
		}

		table := strings.TrimSpace(e.Table)
		if table == "" {
			table = e.Name
		}
		key := strings.ToLower(table)
		if prev, dup := tables[key]; dup && key != "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path + ".table",
				Message:  fmt.Sprintf("table %q already defined by entities[%d]", table, prev),
			})
		} else {
			tables[key] = i
		}

		issues = append(issues, validateFields(path, e.Fields)...)
	}
	return issues
}

func validateFields(path string, fs []Field) []Issue {
	var issues []Issue
	columns := map[string]int{}
	persisted := 0
	for j, f := range fs {
		fp := fmt.Sprintf("%s.fields[%d]", path, j)
		if strings.TrimSpace(f.Name) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     fp + ".name",
				Message:  "field name must not be empty",
			})
		}
		if f.Transient {
			if f.ID || f.Generated {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Path:     fp,
					Message:  "transient field is also marked id/generated; it will not become a column",
				})
			}
			continue
		}
		persisted++

		hasSQLType := f.Column != nil && strings.TrimSpace(f.Column.SQLType) != ""
		if !hasSQLType {
			if _, ok := knownKinds[ddl.NormalizeKind(f.Kind)]; !ok {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Path:     fp + ".kind",
					Message:  fmt.Sprintf("unknown kind %q; the dialect fallback type will be used", f.Kind),
				})
			}
		}
		if f.Length < 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     fp + ".length",
				Message:  "length must be >= 0",
			})
		}
		if f.ID && f.Column != nil && f.Column.Nullable != nil && *f.Column.Nullable {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Path:     fp + ".column.nullable",
				Message:  "primary key columns are never nullable; nullable is ignored",
			})
		}

		col := f.Name
		if f.Column != nil && strings.TrimSpace(f.Column.Name) != "" {
			col = strings.TrimSpace(f.Column.Name)
		}
		key := strings.ToLower(col)
		if prev, dup := columns[key]; dup && key != "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     fp + ".name",
				Message:  fmt.Sprintf("column %q already defined by fields[%d]", col, prev),
			})
		} else {
			columns[key] = j
		}
	}
	if persisted == 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     path + ".fields",
			Message:  "entity has no persistable fields; CREATE TABLE will have no columns",
		})
	}
	return issues
}

func validateRuntime(r Runtime) []Issue {
	if r.ApplyWorkers < 0 {
		return []Issue{{
			Severity: SeverityError,
			Path:     "runtime.apply_workers",
			Message:  "apply_workers must be >= 0",
		}}
	}
	return nil
}

func validateLogging(l Logging) []Issue {
	if _, ok := knownLevels[strings.ToLower(strings.TrimSpace(l.Level))]; !ok {
		return []Issue{{
			Severity: SeverityError,
			Path:     "logging.level",
			Message:  fmt.Sprintf("unknown log level %q; use debug, info, warn or error", l.Level),
		}}
	}
	return nil
}

func validateMetrics(m Metrics) []Issue {
	backend := strings.ToLower(strings.TrimSpace(m.Backend))
	if _, ok := knownBackends[backend]; !ok {
		return []Issue{{
			Severity: SeverityError,
			Path:     "metrics.backend",
			Message:  fmt.Sprintf("unknown metrics backend %q", m.Backend),
		}}
	}
	if (backend == "prometheus" || backend == "pushgateway") && strings.TrimSpace(m.PushgatewayURL) == "" {
		return []Issue{{
			Severity: SeverityError,
			Path:     "metrics.pushgateway_url",
			Message:  fmt.Sprintf("%s backend requires pushgateway_url", backend),
		}}
	}
	return nil
}
