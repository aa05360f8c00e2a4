package interop

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"

	"github.com/gogpu/cairo"
)

func TestLineCapRoundTrip(t *testing.T) {
	for _, c := range []cairo.LineCap{cairo.LineCapButt, cairo.LineCapRound, cairo.LineCapSquare} {
		g, err := LineCapToGG(c)
		if err != nil {
			t.Fatalf("LineCapToGG(%v) = %v", c, err)
		}
		back, err := LineCapFromGG(g)
		if err != nil || back != c {
			t.Errorf("LineCapFromGG(LineCapToGG(%v)) = %v, %v", c, back, err)
		}
	}
	if _, err := LineCapToGG(cairo.LineCap(9)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("LineCapToGG(9) error = %v, want ErrUnsupported", err)
	}
}

func TestLineJoinRoundTrip(t *testing.T) {
	for _, j := range []cairo.LineJoin{cairo.LineJoinMiter, cairo.LineJoinRound, cairo.LineJoinBevel} {
		g, err := LineJoinToGG(j)
		if err != nil {
			t.Fatalf("LineJoinToGG(%v) = %v", j, err)
		}
		back, err := LineJoinFromGG(g)
		if err != nil || back != j {
			t.Errorf("LineJoinFromGG(LineJoinToGG(%v)) = %v, %v", j, back, err)
		}
	}
}

func TestFillRuleToGG(t *testing.T) {
	tests := []struct {
		in   cairo.FillRule
		want gg.FillRule
	}{
		{cairo.FillRuleWinding, gg.FillRuleNonZero},
		{cairo.FillRuleEvenOdd, gg.FillRuleEvenOdd},
	}
	for _, tt := range tests {
		got, err := FillRuleToGG(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("FillRuleToGG(%v) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		back, err := FillRuleFromGG(got)
		if err != nil || back != tt.in {
			t.Errorf("FillRuleFromGG(%v) = %v, %v; want %v", got, back, err, tt.in)
		}
	}
}

func TestExtendToGG(t *testing.T) {
	if _, err := ExtendToGG(cairo.ExtendNone); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ExtendToGG(None) error = %v, want ErrUnsupported", err)
	}
	for _, e := range []cairo.Extend{cairo.ExtendRepeat, cairo.ExtendReflect, cairo.ExtendPad} {
		g, err := ExtendToGG(e)
		if err != nil {
			t.Fatalf("ExtendToGG(%v) = %v", e, err)
		}
		back, err := ExtendFromGG(g)
		if err != nil || back != e {
			t.Errorf("ExtendFromGG(ExtendToGG(%v)) = %v, %v", e, back, err)
		}
	}
}

func TestFilterToGG(t *testing.T) {
	tests := []struct {
		in   cairo.Filter
		want gg.InterpolationMode
	}{
		{cairo.FilterFast, gg.InterpNearest},
		{cairo.FilterNearest, gg.InterpNearest},
		{cairo.FilterGood, gg.InterpBilinear},
		{cairo.FilterBilinear, gg.InterpBilinear},
		{cairo.FilterBest, gg.InterpBicubic},
		{cairo.FilterGaussian, gg.InterpBicubic},
	}
	for _, tt := range tests {
		if got, err := FilterToGG(tt.in); err != nil || got != tt.want {
			t.Errorf("FilterToGG(%v) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestOperatorToGG(t *testing.T) {
	if got, err := OperatorToGG(cairo.OperatorOver); err != nil || got != gg.BlendNormal {
		t.Errorf("OperatorToGG(Over) = %v, %v; want Normal", got, err)
	}
	if _, err := OperatorToGG(cairo.OperatorXor); !errors.Is(err, ErrUnsupported) {
		t.Errorf("OperatorToGG(Xor) error = %v, want ErrUnsupported", err)
	}
}

func TestOperatorSceneRoundTrip(t *testing.T) {
	for op := cairo.OperatorClear; op <= cairo.OperatorHslLuminosity; op++ {
		m, err := OperatorToScene(op)
		if op == cairo.OperatorSaturate {
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("OperatorToScene(Saturate) error = %v, want ErrUnsupported", err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("OperatorToScene(%v) = %v", op, err)
		}
		back, err := OperatorFromScene(m)
		if err != nil || back != op {
			t.Errorf("OperatorFromScene(%v) = %v, %v; want %v", m, back, err, op)
		}
	}
	if got, err := OperatorFromScene(scene.BlendNormal); err != nil || got != cairo.OperatorOver {
		t.Errorf("OperatorFromScene(Normal) = %v, %v; want Over", got, err)
	}
}

func TestStrokeToScene(t *testing.T) {
	s, err := StrokeToScene(2.5, 10, cairo.LineCapRound, cairo.LineJoinBevel)
	if err != nil {
		t.Fatalf("StrokeToScene() = %v", err)
	}
	if s.Width != 2.5 || s.MiterLimit != 10 || s.Cap != scene.LineCapRound || s.Join != scene.LineJoinBevel {
		t.Errorf("StrokeToScene() = %+v", *s)
	}
	if _, err := StrokeToScene(1, 4, cairo.LineCapButt, cairo.LineJoin(7)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("StrokeToScene(bad join) error = %v, want ErrUnsupported", err)
	}
	if got, err := FillRuleToScene(cairo.FillRuleEvenOdd); err != nil || got != scene.FillEvenOdd {
		t.Errorf("FillRuleToScene(EvenOdd) = %v, %v", got, err)
	}
}
