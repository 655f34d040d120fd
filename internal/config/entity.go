package config

import (
	"fmt"

	"schemagen/internal/schema"
)

// Entity is the static form of a schema.Descriptor. Entities listed in a
// project file are entities unless "entity: false" is given.
type Entity struct {
	Name   string  `json:"name" yaml:"name"`
	Table  string  `json:"table,omitempty" yaml:"table,omitempty"`
	Entity *bool   `json:"entity,omitempty" yaml:"entity,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field is the static form of a schema.Field.
type Field struct {
	Name      string  `json:"name" yaml:"name"`
	Kind      string  `json:"kind" yaml:"kind"`
	Length    int     `json:"length,omitempty" yaml:"length,omitempty"`
	Nullable  bool    `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Transient bool    `json:"transient,omitempty" yaml:"transient,omitempty"`
	ID        bool    `json:"id,omitempty" yaml:"id,omitempty"`
	Generated bool    `json:"generated,omitempty" yaml:"generated,omitempty"`
	Column    *Column `json:"column,omitempty" yaml:"column,omitempty"`
}

// Column carries per-field column overrides.
type Column struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Nullable *bool  `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Unique   bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
	SQLType  string `json:"sql_type,omitempty" yaml:"sql_type,omitempty"`
	Default  string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Descriptor converts e into a schema.Descriptor. A blank Table leaves the
// table marker absent.
func (e Entity) Descriptor() schema.Descriptor {
	d := schema.Descriptor{
		Name:   e.Name,
		Entity: e.Entity == nil || *e.Entity,
		Fields: make([]schema.Field, 0, len(e.Fields)),
	}
	if e.Table != "" {
		d.Table = &schema.TableMarker{Name: e.Table}
	}
	for _, f := range e.Fields {
		sf := schema.Field{
			Name:      f.Name,
			Kind:      f.Kind,
			Length:    f.Length,
			Nullable:  f.Nullable,
			Transient: f.Transient,
			ID:        f.ID,
			Generated: f.Generated,
		}
		if c := f.Column; c != nil {
			m := &schema.ColumnMarker{
				Name:    c.Name,
				Unique:  c.Unique,
				SQLType: c.SQLType,
				Default: c.Default,
			}
			if c.Nullable != nil {
				m.Nullable = schema.Bool(*c.Nullable)
			}
			sf.Column = m
		}
		d.Fields = append(d.Fields, sf)
	}
	return d
}

// Descriptors converts every entity of p, in file order.
func (p Project) Descriptors() []schema.Descriptor {
	out := make([]schema.Descriptor, 0, len(p.Entities))
	for _, e := range p.Entities {
		out = append(out, e.Descriptor())
	}
	return out
}

// Registry registers every entity of p in a schema.Registry. It fails on the
// first non-entity or duplicate table name.
func (p Project) Registry() (*schema.Registry, error) {
	reg := schema.NewRegistry()
	for i, e := range p.Entities {
		if err := reg.Add(e.Descriptor()); err != nil {
			return nil, fmt.Errorf("config: entities[%d]: %w", i, err)
		}
	}
	return reg, nil
}
