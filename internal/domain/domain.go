// Package domain holds the built-in sample entities used by
// `schemagen -builtin`.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"schemagen/internal/schema"
)

// Person is mapped to the users table.
type Person struct {
	schema.Entity `table:"users"`

	ID    int64  `db:"id,pk,identity"`
	Name  string `db:"nick_name,null"`
	Old   int32
	Email string `db:"email,notnull,unique,size:320"`

	// Index is a runtime lookup slot and is never persisted.
	Index int `db:"-"`
}

// Order is one purchase placed by a Person.
type Order struct {
	schema.Entity `table:"orders"`

	ID        uuid.UUID       `db:"id,pk"`
	UserID    int64           `db:"user_id"`
	Total     float64         `sqltype:"DECIMAL(12, 2)"`
	Status    string          `db:"status,size:16" default:"'new'"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `default:"CURRENT_TIMESTAMP"`
	DeletedAt *time.Time
}

// AuditEvent describes itself instead of relying on struct tags.
type AuditEvent struct {
	At     time.Time
	Action string
}

// Descriptor implements schema.Describer.
func (AuditEvent) Descriptor() schema.Descriptor {
	return schema.Descriptor{
		Name:   "AuditEvent",
		Entity: true,
		Table:  &schema.TableMarker{Name: "audit_log"},
		Fields: []schema.Field{
			{Name: "seq", Kind: "bigint", ID: true, Generated: true},
			{Name: "at", Kind: "timestamp"},
			{Name: "action", Kind: "string", Length: 64},
		},
	}
}

// All returns a zero value of every built-in entity, in registration order.
func All() []any {
	return []any{Person{}, Order{}, AuditEvent{}}
}

// Registry registers every built-in entity.
func Registry() (*schema.Registry, error) {
	reg := schema.NewRegistry()
	for _, v := range All() {
		if err := reg.AddValue(v); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
