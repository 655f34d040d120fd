// Package config defines the project file model for schemagen: which entities
// to describe, which dialect to render them in, and where (optionally) to
// apply the resulting DDL.
//
// Project files are JSON or YAML; the format is picked from the file
// extension. Field names in Go mirror the keys used in the files.
//
// Example (YAML, trimmed):
//
//	job: users-schema
//	dialect: postgres
//	storage: { kind: postgres, dsn: "postgresql://..." }
//	entities:
//	  - name: Person
//	    table: users
//	    fields:
//	      - { name: id, kind: bigint, id: true, generated: true }
//	      - { name: nick_name, kind: string, nullable: true }
//	      - { name: index, kind: int, transient: true }
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is the top-level object decoded from a project file.
type Project struct {
	// Job names the run; it labels metrics and log lines.
	Job string `json:"job" yaml:"job"`

	// Dialect selects the SQL dialect used to render column types when no
	// storage backend is applied (e.g., "generic", "postgres").
	Dialect string `json:"dialect" yaml:"dialect"`

	Storage  Storage  `json:"storage" yaml:"storage"`
	Entities []Entity `json:"entities" yaml:"entities"`
	Runtime  Runtime  `json:"runtime" yaml:"runtime"`
	Logging  Logging  `json:"logging" yaml:"logging"`
	Metrics  Metrics  `json:"metrics" yaml:"metrics"`
}

// Storage selects the database that -apply writes to.
type Storage struct {
	// Kind selects the backend: "postgres", "mssql", "mysql" or "sqlite".
	Kind string `json:"kind" yaml:"kind"`
	// DSN is the backend connection string.
	DSN string `json:"dsn" yaml:"dsn"`
}

// Runtime controls how DDL is applied.
type Runtime struct {
	// ApplyWorkers bounds concurrent CREATE TABLE statements. Zero means 1.
	ApplyWorkers int `json:"apply_workers" yaml:"apply_workers"`
	// DropFirst drops each table before creating it.
	DropFirst bool `json:"drop_first" yaml:"drop_first"`
}

// Logging configures the process logger.
type Logging struct {
	Level  string `json:"level" yaml:"level"`     // debug, info, warn, error
	SeqURL string `json:"seq_url" yaml:"seq_url"` // optional Seq ingestion URL
}

// Metrics selects the metrics backend.
type Metrics struct {
	Backend        string `json:"backend" yaml:"backend"` // none, prometheus (alias pushgateway), datadog
	PushgatewayURL string `json:"pushgateway_url" yaml:"pushgateway_url"`
	DatadogAddr    string `json:"datadog_addr" yaml:"datadog_addr"`
}

// Load reads a project file. Files ending in .yaml or .yml are decoded as
// YAML; everything else as JSON. Unknown keys are rejected in both formats.
func Load(path string) (Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var p Project
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = DecodeYAML(b)
	default:
		p, err = DecodeJSON(b)
	}
	if err != nil {
		return Project{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return p, nil
}

// DecodeJSON decodes a JSON project document.
func DecodeJSON(b []byte) (Project, error) {
	var p Project
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// DecodeYAML decodes a YAML project document.
func DecodeYAML(b []byte) (Project, error) {
	var p Project
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Project{}, err
	}
	return p, nil
}
