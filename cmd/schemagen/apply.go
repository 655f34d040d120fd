package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"schemagen/internal/config"
	"schemagen/internal/ddlgen"
	"schemagen/internal/metrics"
	"schemagen/internal/storage"
)

// apply opens the configured repository and creates every table of s with at
// most p.Runtime.ApplyWorkers statements in flight. The first failure cancels
// the remaining work.
func apply(ctx context.Context, p config.Project, s ddlgen.Script, job string, logger *slog.Logger) error {
	kind := strings.TrimSpace(p.Storage.Kind)
	repo, err := storage.New(ctx, storage.Config{Kind: kind, DSN: p.Storage.DSN})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repo.Close()

	workers := p.Runtime.ApplyWorkers
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, st := range s.Statements {
		g.Go(func() error {
			if st.Drop != "" {
				if err := repo.Exec(gctx, st.Drop); err != nil {
					metrics.RecordTables(job, "failed", 1)
					return fmt.Errorf("drop %s: %w", st.Table, err)
				}
				metrics.RecordTables(job, "dropped", 1)
			}
			if err := storage.EnsureTable(gctx, kind, repo, st.Def); err != nil {
				metrics.RecordTables(job, "failed", 1)
				return fmt.Errorf("create %s: %w", st.Table, err)
			}
			metrics.RecordTables(job, "applied", 1)
			logger.Info("table applied", "table", st.Table, "fingerprint", st.Fingerprint)
			return nil
		})
	}
	return g.Wait()
}
