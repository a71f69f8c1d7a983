package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func testLogger(buf *bytes.Buffer, component string) *Logger {
	return New(Config{
		Component: component,
		Handler:   slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})
}

func TestLoggerAttachesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := testLogger(&buf, ComponentAnalysis)

	logger.Info("run complete", FieldRunID, "run-1")

	out := buf.String()
	if !strings.Contains(out, "component=analysis") {
		t.Errorf("missing component field: %s", out)
	}
	if !strings.Contains(out, "run_id=run-1") {
		t.Errorf("missing run_id field: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := testLogger(&buf, ComponentApp)

	scoped := logger.WithComponent(ComponentWorker)
	if scoped.Component() != ComponentWorker {
		t.Fatalf("got %q", scoped.Component())
	}
	scoped.Warn("queue empty")
	if !strings.Contains(buf.String(), "component=worker") {
		t.Errorf("missing scoped component: %s", buf.String())
	}
}

func TestLogFieldsBuilder(t *testing.T) {
	fields := NewFields().
		WithComponent(ComponentStore).
		WithRunID("run-9").
		WithRunCounts(100, 3)

	if fields[FieldComponent] != ComponentStore {
		t.Errorf("component: got %v", fields[FieldComponent])
	}
	if fields[FieldRecordCount] != 100 || fields[FieldRejectedCount] != 3 {
		t.Errorf("counts: got %v", fields)
	}
	if len(fields.Args()) != len(fields)*2 {
		t.Errorf("args length: got %d", len(fields.Args()))
	}

	fields.WithError(nil)
	if _, ok := fields[FieldError]; ok {
		t.Error("nil error should not add a field")
	}
}
