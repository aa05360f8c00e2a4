package cairo

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// TestDecodeDefault tests that Decode is strict without options.
func TestDecodeDefault(t *testing.T) {
	o := defaultDecodeOptions()
	if o.lenient {
		t.Error("default options are lenient")
	}
	if o.logger != Logger() {
		t.Error("default logger is not the package logger")
	}

	if _, err := Decode[Extend](4); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("Decode[Extend](4) = %v, want ErrUnknownValue", err)
	}
}

// TestDecodeWithLogger tests that a per-call logger receives the warning
// and the package logger does not.
func TestDecodeWithLogger(t *testing.T) {
	var pkg, call bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&pkg, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	l := slog.New(slog.NewTextHandler(&call, nil))
	v, err := Decode[HintStyle](9, Lenient(), WithLogger(l))
	if err != nil || int32(v) != 9 {
		t.Fatalf("Decode[HintStyle](9) = %v, %v", v, err)
	}
	if !strings.Contains(call.String(), "type=HintStyle") {
		t.Errorf("call logger output = %q, want type=HintStyle", call.String())
	}
	if pkg.Len() != 0 {
		t.Errorf("package logger received %q", pkg.String())
	}
}

// TestWithLoggerNil tests that a nil logger keeps the package logger.
func TestWithLoggerNil(t *testing.T) {
	o := defaultDecodeOptions()
	WithLogger(nil)(&o)
	if o.logger == nil {
		t.Fatal("WithLogger(nil) cleared the logger")
	}
}

// TestDecodeMultipleOptions tests that options compose in order.
func TestDecodeMultipleOptions(t *testing.T) {
	o := defaultDecodeOptions()
	l := slog.New(nopHandler{})
	for _, opt := range []DecodeOption{WithLogger(l), Lenient()} {
		opt(&o)
	}
	if !o.lenient || o.logger != l {
		t.Errorf("options = %+v, want lenient with custom logger", o)
	}
}

// TestLenientKeepsKnownValues tests that Lenient does not alter or log
// values that are already valid.
func TestLenientKeepsKnownValues(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	v, err := Decode[LineJoin](int32(LineJoinRound), Lenient(), WithLogger(l))
	if err != nil || v != LineJoinRound {
		t.Errorf("Decode[LineJoin](1) = %v, %v", v, err)
	}
	if buf.Len() != 0 {
		t.Errorf("valid value logged: %q", buf.String())
	}
}
