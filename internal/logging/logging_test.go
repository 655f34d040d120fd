package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "info", want: slog.LevelInfo},
		{in: " DEBUG ", want: slog.LevelDebug},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "chatty", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, closeFn, err := SetupLogger(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("SetupLogger() error = %v", err)
	}
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "table", "users")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "table=users") {
		t.Fatalf("output = %q", out)
	}
}

func TestSetupLogger_BadLevel(t *testing.T) {
	t.Parallel()

	if _, _, err := SetupLogger(Options{Level: "loud"}); err == nil {
		t.Fatalf("SetupLogger() error = nil, want non-nil")
	}
}

// recordingHandler collects records for fan-out tests.
type recordingHandler struct {
	level slog.Level
	attrs []slog.Attr
	group string
	msgs  *[]string
	err   error
}

func (h *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.msgs = append(*h.msgs, h.group+r.Message)
	return h.err
}
func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &c
}
func (h *recordingHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = name + "."
	return &c
}

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	var debugMsgs, errorMsgs []string
	boom := errors.New("boom")
	m := &multiHandler{handlers: []slog.Handler{
		&recordingHandler{level: slog.LevelDebug, msgs: &debugMsgs},
		&recordingHandler{level: slog.LevelError, msgs: &errorMsgs, err: boom},
	}}

	logger := slog.New(m).WithGroup("ddl").With("job", "x")
	logger.Debug("d")
	logger.Error("e")

	if strings.Join(debugMsgs, ",") != "ddl.d,ddl.e" {
		t.Fatalf("debug handler got %v", debugMsgs)
	}
	if strings.Join(errorMsgs, ",") != "ddl.e" {
		t.Fatalf("error handler got %v", errorMsgs)
	}

	if !m.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("Enabled(debug) = false, want true")
	}
	r := slog.NewRecord(time.Time{}, slog.LevelError, "x", 0)
	if err := m.Handle(context.Background(), r); !errors.Is(err, boom) {
		t.Fatalf("Handle() error = %v, want %v", err, boom)
	}
}
