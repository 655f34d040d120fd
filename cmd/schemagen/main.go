// Command schemagen renders CREATE TABLE scripts for entity descriptors and
// optionally applies them to a database.
//
// Entities come from a project file (-config, JSON or YAML) or from the
// built-in sample entities (-builtin). The script is printed to stdout, or
// written to -out. With -apply every table is created through the storage
// backend configured in the project file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schemagen/internal/config"

	// register all backends with the storage factory and dialect registry.
	_ "schemagen/internal/storage/all"
)

func main() {
	var o options

	flag.StringVar(&o.configPath, "config", "", "project file (JSON or YAML)")
	flag.StringVar(&o.dialect, "dialect", "", "SQL dialect (generic, postgres, sqlite, mssql, mysql); overrides the project file")
	flag.BoolVar(&o.builtin, "builtin", false, "use the built-in sample entities instead of the project entities")
	flag.BoolVar(&o.apply, "apply", false, "apply the generated DDL to the configured storage backend")
	flag.BoolVar(&o.drop, "drop", false, "emit DROP TABLE before every CREATE TABLE")
	flag.StringVar(&o.out, "out", "", "write the script to this file instead of stdout")
	flag.BoolVar(&o.validate, "validate", false, "validate the project file and exit")
	flag.BoolVar(&o.list, "list", false, "list the registered dialects and storage kinds and exit")
	flag.BoolVar(&o.verbose, "v", false, "enable verbose logs")
	flag.StringVar(&o.metricsBackend, "metrics-backend", "", "metrics backend (none, prometheus, datadog); overrides env METRICS_BACKEND")
	flag.StringVar(&o.pushgatewayURL, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errInvalidConfig) {
			fmt.Fprintf(os.Stderr, "configuration is invalid: %s\n", o.configPath)
			stop()
			os.Exit(1)
		}
		stop()
		fatalf("%v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
