// Package storage defines the backend-agnostic Repository used to apply DDL
// and a small registry through which backends (postgres, mssql, mysql,
// sqlite) plug in their repository factory, SQL dialect and DDL
// bootstrapper.
package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Execer executes a single SQL statement or script (typically DDL).
type Execer interface {
	Exec(ctx context.Context, sql string) error
}

// Repository executes statements against a database. Backends return it from
// their registered Factory.
type Repository interface {
	Execer
	// Close releases the underlying connection pool.
	Close()
}

// Config selects and configures a storage backend.
type Config struct {
	// Kind is the registered backend name, e.g. "postgres" or "sqlite".
	Kind string
	// DSN is passed to the backend driver unchanged.
	DSN string
}

// Factory opens a Repository for cfg.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) the Factory for kind. It is typically
// called from backend packages' init functions.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = f
}

// New opens a Repository using the Factory registered for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := factories[strings.TrimSpace(cfg.Kind)]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported storage.kind=%s", cfg.Kind)
	}
	return f(ctx, cfg)
}

// ListKinds returns the registered backend names in sorted order. The
// returned slice is a copy.
func ListKinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
