package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
)

func TestWatermillLoggerDelegates(t *testing.T) {
	base := newRecordingAdapter()
	logger := NewWatermillLogger(base)

	logger.Debug("phase started", LogFields{"phase": "load"})
	logger.Info("compiled", nil)
	logger.Trace("import", LogFields{"file": "pg_logicaldec.proto"})
	logger.Error("compile failed", errors.New("boom"), LogFields{"kind": "grammar"})

	child := logger.With(LogFields{"run_id": "01J"})
	child.Info("child", nil)

	entries := *base.sink
	if len(entries) != 6 {
		t.Fatalf("expected 6 log entries, got %d", len(entries))
	}
	if entries[0].level != "debug" || entries[0].fields["phase"] != "load" {
		t.Fatalf("unexpected first entry: %#v", entries[0])
	}
	if entries[1].fields != nil {
		t.Fatalf("expected nil fields for empty LogFields, got %#v", entries[1].fields)
	}
	if entries[3].level != "error" || entries[3].err == nil {
		t.Fatalf("expected error entry, got %#v", entries[3])
	}
	if entries[4].level != "with" || entries[4].fields["run_id"] != "01J" {
		t.Fatalf("expected With to propagate fields, got %#v", entries[4])
	}
	if entries[5].msg != "child" {
		t.Fatalf("expected child log, got %#v", entries[5])
	}
}

func TestWithNoFieldsReturnsSameLogger(t *testing.T) {
	logger := NewWatermillLogger(newRecordingAdapter())
	if logger.With(nil) != logger {
		t.Fatal("expected With(nil) to return the receiver")
	}
}

func TestNewWatermillLoggerPanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when logger nil")
		}
	}()
	NewWatermillLogger(nil)
}

func TestNewSlogLoggerPanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when slog logger nil")
		}
	}()
	NewSlogLogger(nil)
}

func TestNewSlogLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.With(LogFields{"run_id": "abc"}).Info("compiled", LogFields{"files": 1})

	out := buf.String()
	for _, want := range []string{"compiled", "run_id=abc", "files=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Info("dropped", LogFields{"k": "v"})
	logger.With(LogFields{"k": "v"}).Error("dropped", errors.New("boom"), nil)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   slog.LevelDebug - 4,
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

type adapterEntry struct {
	level  string
	msg    string
	fields watermill.LogFields
	err    error
}

type recordingAdapter struct {
	sink *[]adapterEntry
}

func newRecordingAdapter() *recordingAdapter {
	return &recordingAdapter{sink: &[]adapterEntry{}}
}

func (r *recordingAdapter) record(e adapterEntry) {
	*r.sink = append(*r.sink, e)
}

func (r *recordingAdapter) Error(msg string, err error, fields watermill.LogFields) {
	r.record(adapterEntry{level: "error", msg: msg, fields: fields, err: err})
}

func (r *recordingAdapter) Info(msg string, fields watermill.LogFields) {
	r.record(adapterEntry{level: "info", msg: msg, fields: fields})
}

func (r *recordingAdapter) Debug(msg string, fields watermill.LogFields) {
	r.record(adapterEntry{level: "debug", msg: msg, fields: fields})
}

func (r *recordingAdapter) Trace(msg string, fields watermill.LogFields) {
	r.record(adapterEntry{level: "trace", msg: msg, fields: fields})
}

func (r *recordingAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	r.record(adapterEntry{level: "with", fields: fields})
	return &recordingAdapter{sink: r.sink}
}
