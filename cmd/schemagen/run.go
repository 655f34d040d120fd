package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"schemagen/internal/config"
	"schemagen/internal/ddlgen"
	"schemagen/internal/domain"
	"schemagen/internal/logging"
	"schemagen/internal/metrics"
	"schemagen/internal/metrics/datadog"
	"schemagen/internal/metrics/prompush"
	"schemagen/internal/schema"
	"schemagen/internal/storage"
)

const defaultJob = "schemagen"

var errInvalidConfig = errors.New("invalid configuration")

type options struct {
	configPath     string
	dialect        string
	builtin        bool
	apply          bool
	drop           bool
	out            string
	validate       bool
	list           bool
	verbose        bool
	metricsBackend string
	pushgatewayURL string
}

// run executes one schemagen invocation. Validation findings go to stderr;
// the script goes to stdout unless o.out is set.
func run(ctx context.Context, o options, stdout, stderr io.Writer) error {
	if o.list {
		fmt.Fprintf(stdout, "dialects: %s\nstorage:  %s\n",
			strings.Join(storage.ListDialects(), ", "),
			strings.Join(storage.ListKinds(), ", "))
		return nil
	}

	p, err := loadProject(o)
	if err != nil {
		return err
	}

	if o.configPath != "" {
		issues := config.ValidateProject(p)
		for _, iss := range issues {
			fmt.Fprintf(stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		}
		if config.HasErrors(issues) {
			return errInvalidConfig
		}
	}
	if o.validate {
		fmt.Fprintf(stderr, "configuration is valid: %s\n", o.configPath)
		return nil
	}

	level := p.Logging.Level
	if o.verbose && level == "" {
		level = "debug"
	}
	logger, closeLog, err := logging.SetupLogger(logging.Options{
		Level:  level,
		SeqURL: p.Logging.SeqURL,
		Output: stderr,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	job := p.Job
	if job == "" {
		job = defaultJob
	}
	logger = logger.With("job", job)

	flush := setupMetrics(p, job, logger)
	defer flush()

	kind, err := dialectKind(o, p)
	if err != nil {
		return err
	}
	d, err := storage.Dialect(kind)
	if err != nil {
		return err
	}
	builder, err := storage.BuilderFor(kind)
	if err != nil {
		return err
	}

	start := time.Now()
	descs, err := descriptors(o, p)
	metrics.RecordStep(job, "describe", err, time.Since(start))
	if err != nil {
		return err
	}
	logger.Debug("entities described", "count", len(descs), "dialect", d.Name())

	start = time.Now()
	script, err := ddlgen.Generate(descs, d, builder, ddlgen.WithDrop(o.drop || p.Runtime.DropFirst))
	metrics.RecordStep(job, "generate", err, time.Since(start))
	if err != nil {
		return err
	}
	metrics.RecordTables(job, "generated", int64(len(script.Statements)))
	for _, st := range script.Statements {
		logger.Debug("table generated", "table", st.Table, "fingerprint", st.Fingerprint)
	}

	if err := writeScript(o.out, script, stdout); err != nil {
		return err
	}

	if !o.apply {
		return nil
	}
	start = time.Now()
	err = apply(ctx, p, script, job, logger)
	metrics.RecordStep(job, "apply", err, time.Since(start))
	return err
}

func loadProject(o options) (config.Project, error) {
	var p config.Project
	if o.configPath != "" {
		var err error
		if p, err = config.Load(o.configPath); err != nil {
			return config.Project{}, err
		}
	}
	config.ApplyEnv(&p)

	if o.dialect != "" {
		p.Dialect = o.dialect
	}
	if o.metricsBackend != "" {
		p.Metrics.Backend = o.metricsBackend
	}
	if o.pushgatewayURL != "" {
		p.Metrics.PushgatewayURL = o.pushgatewayURL
	}
	return p, nil
}

// dialectKind picks the rendering dialect. When applying, the dialect
// defaults to the storage kind and must match it.
func dialectKind(o options, p config.Project) (string, error) {
	kind := strings.TrimSpace(p.Dialect)
	if !o.apply {
		return kind, nil
	}
	sk := strings.TrimSpace(p.Storage.Kind)
	if sk == "" {
		return "", fmt.Errorf("-apply requires storage.kind in the project file")
	}
	if kind != "" && kind != sk {
		return "", fmt.Errorf("dialect %q does not match storage kind %q", kind, sk)
	}
	return sk, nil
}

func descriptors(o options, p config.Project) ([]schema.Descriptor, error) {
	var (
		reg *schema.Registry
		err error
	)
	if o.builtin || len(p.Entities) == 0 {
		reg, err = domain.Registry()
	} else {
		reg, err = p.Registry()
	}
	if err != nil {
		return nil, err
	}
	return reg.Descriptors(), nil
}

func writeScript(path string, s ddlgen.Script, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, s.String())
		return err
	}
	if err := os.WriteFile(path, []byte(s.String()), 0o644); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}

// setupMetrics installs the configured metrics backend and returns a flush
// function. Backend errors fall back to the no-op backend.
func setupMetrics(p config.Project, job string, logger *slog.Logger) func() {
	noop := func() {}

	switch backend := strings.ToLower(strings.TrimSpace(p.Metrics.Backend)); backend {
	case "prometheus", "pushgateway":
		b, err := prompush.NewBackend(job, p.Metrics.PushgatewayURL)
		if err != nil {
			logger.Warn("metrics: prometheus backend unavailable; using nop", "err", err)
			return noop
		}
		metrics.SetBackend(b)
		logger.Debug("metrics enabled", "backend", backend, "url", p.Metrics.PushgatewayURL)

	case "datadog":
		b, err := datadog.NewBackend(datadog.Config{
			Addr:       p.Metrics.DatadogAddr,
			GlobalTags: []string{"job:" + job},
		})
		if err != nil {
			logger.Warn("metrics: datadog backend unavailable; using nop", "err", err)
			return noop
		}
		metrics.SetBackend(b)
		logger.Debug("metrics enabled", "backend", backend, "addr", p.Metrics.DatadogAddr)

	case "", "none":
		return noop

	default:
		logger.Warn("metrics: unknown backend; metrics disabled", "backend", backend)
		return noop
	}

	return func() {
		if err := metrics.Flush(); err != nil {
			logger.Warn("metrics: flush error", "err", err)
		}
	}
}
