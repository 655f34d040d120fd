package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override project file values.
const (
	EnvDSN            = "SCHEMAGEN_DSN"
	EnvDialect        = "SCHEMAGEN_DIALECT"
	EnvSeqURL         = "SEQ_URL"
	EnvPushgatewayURL = "PUSHGATEWAY_URL"
	EnvMetricsBackend = "METRICS_BACKEND"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// given) into the process environment. Variables already set are kept and
// missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides p with any non-empty environment variables listed above.
func ApplyEnv(p *Project) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&p.Storage.DSN, EnvDSN)
	set(&p.Dialect, EnvDialect)
	set(&p.Logging.SeqURL, EnvSeqURL)
	set(&p.Metrics.PushgatewayURL, EnvPushgatewayURL)
	set(&p.Metrics.Backend, EnvMetricsBackend)
}
