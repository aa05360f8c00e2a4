package cairo

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes the package logger into a buffer for one test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("status", "NoMemory")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("cairo").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() did not return a nopHandler")
	}
}

// By default a failed status check and a lenient decode are not logged
// anywhere, even at error level.
func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

// TestSetLoggerReceivesGuardRecovery checks that the installed logger sees
// the debug record Guard writes when it turns a panic back into an error.
func TestSetLoggerReceivesGuardRecovery(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	if err := guarded(StatusInvalidStride); err == nil {
		t.Fatal("guarded(InvalidStride) = nil")
	}
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "status=InvalidStride") {
		t.Errorf("log output = %q, want a debug record for InvalidStride", out)
	}
}

// TestSetLoggerNilSilencesStatusChecks checks that SetLogger(nil) stops
// EnsureValid from reaching a previously installed handler.
func TestSetLoggerNilSilencesStatusChecks(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	SetLogger(nil)

	func() {
		defer func() { _ = recover() }()
		StatusReadError.EnsureValid()
	}()
	if buf.Len() != 0 {
		t.Errorf("silenced logger still wrote %q", buf.String())
	}
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore a disabled logger")
	}
}

func TestEnsureValidLogsBeforePanic(t *testing.T) {
	buf := captureLogs(t, slog.LevelError)

	func() {
		defer func() { _ = recover() }()
		StatusNoMemory.EnsureValid()
	}()

	out := buf.String()
	for _, want := range []string{"level=ERROR", "status=NoMemory", "code=1", `description="out of memory"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %q, missing %s", out, want)
		}
	}
}

func TestEnsureValidSuccessLogsNothing(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	StatusSuccess.EnsureValid()
	if buf.Len() != 0 {
		t.Errorf("EnsureValid(Success) logged %q", buf.String())
	}
}

func TestLenientDecodeLogsWarning(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	if _, err := Decode[Filter](42, Lenient()); err != nil {
		t.Fatalf("Decode(42, Lenient()) = %v, want nil error", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "type=Filter") || !strings.Contains(out, "raw=42") {
		t.Errorf("log output = %q, want warning with type and raw value", out)
	}
}

// TestLoggerConcurrentAccess swaps the logger while other goroutines run
// status checks and lenient decodes through it.
func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Decode[Operator](int32(100+i), Lenient()); err != nil {
				t.Errorf("Decode(Lenient) = %v", err)
			}
			if err := guarded(StatusDeviceError); err == nil {
				t.Error("guarded(DeviceError) = nil")
			}
		}()
	}

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkEnsureValidSuccess(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		StatusSuccess.EnsureValid()
	}
}

func BenchmarkLenientDecodeSilent(b *testing.B) {
	// The default logger is disabled, so preserving an unknown value
	// should not format a record.
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Decode[Filter](42, Lenient())
	}
}
