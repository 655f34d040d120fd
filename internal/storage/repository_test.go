package storage

import (
	"context"
	"errors"
	"sort"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	var gotDSN string
	Register("registry-ok", func(ctx context.Context, cfg Config) (Repository, error) {
		gotDSN = cfg.DSN
		return &recordingRepo{}, nil
	})
	errOpen := errors.New("dial refused")
	Register("registry-fail", func(ctx context.Context, cfg Config) (Repository, error) {
		return nil, errOpen
	})

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		wantAny bool
	}{
		{name: "registered kind", cfg: Config{Kind: "registry-ok", DSN: "file:x.db"}},
		{name: "kind is trimmed", cfg: Config{Kind: "  registry-ok ", DSN: "file:y.db"}},
		{name: "factory error is returned as is", cfg: Config{Kind: "registry-fail"}, wantErr: errOpen},
		{name: "unknown kind", cfg: Config{Kind: "oracle"}, wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := New(context.Background(), tt.cfg)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New(%+v) error = %v, want %v", tt.cfg, err, tt.wantErr)
				}
			case tt.wantAny:
				if err == nil {
					t.Fatalf("New(%+v) error = nil, want unsupported kind", tt.cfg)
				}
			default:
				if err != nil || repo == nil {
					t.Fatalf("New(%+v) = %v, %v", tt.cfg, repo, err)
				}
				if gotDSN != tt.cfg.DSN {
					t.Fatalf("factory saw DSN %q, want %q", gotDSN, tt.cfg.DSN)
				}
			}
		})
	}
}

func TestListKinds_SortedCopy(t *testing.T) {
	t.Parallel()

	Register("zz-kind", func(ctx context.Context, cfg Config) (Repository, error) { return &recordingRepo{}, nil })
	Register("aa-kind", func(ctx context.Context, cfg Config) (Repository, error) { return &recordingRepo{}, nil })

	kinds := ListKinds()
	if !sort.StringsAreSorted(kinds) {
		t.Fatalf("ListKinds() = %v, want sorted", kinds)
	}
	has := map[string]bool{}
	for _, k := range kinds {
		has[k] = true
	}
	if !has["aa-kind"] || !has["zz-kind"] {
		t.Fatalf("ListKinds() = %v, missing registered kinds", kinds)
	}

	kinds[0] = "mutated"
	if ListKinds()[0] == "mutated" {
		t.Fatal("ListKinds() returned shared backing array")
	}
}

func TestRegister_Replaces(t *testing.T) {
	t.Parallel()

	first := &recordingRepo{}
	second := &recordingRepo{}
	Register("replace-kind", func(ctx context.Context, cfg Config) (Repository, error) { return first, nil })
	Register("replace-kind", func(ctx context.Context, cfg Config) (Repository, error) { return second, nil })

	repo, err := New(context.Background(), Config{Kind: "replace-kind"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if repo != Repository(second) {
		t.Fatal("New() used the first factory; Register must replace")
	}
}
