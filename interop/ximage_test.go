package interop

import (
	"errors"
	"testing"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/gogpu/cairo"
)

func TestHinting(t *testing.T) {
	tests := []struct {
		in   cairo.HintStyle
		want font.Hinting
	}{
		{cairo.HintStyleDefault, font.HintingFull},
		{cairo.HintStyleNone, font.HintingNone},
		{cairo.HintStyleSlight, font.HintingVertical},
		{cairo.HintStyleMedium, font.HintingFull},
		{cairo.HintStyleFull, font.HintingFull},
	}
	for _, tt := range tests {
		if got, err := Hinting(tt.in); err != nil || got != tt.want {
			t.Errorf("Hinting(%v) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := Hinting(cairo.HintStyle(12)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Hinting(12) error = %v, want ErrUnsupported", err)
	}
	if got, err := HintStyle(font.HintingVertical); err != nil || got != cairo.HintStyleSlight {
		t.Errorf("HintStyle(Vertical) = %v, %v; want Slight", got, err)
	}
}

func TestDrawOp(t *testing.T) {
	if got, err := DrawOp(cairo.OperatorSource); err != nil || got != draw.Src {
		t.Errorf("DrawOp(Source) = %v, %v; want Src", got, err)
	}
	if got, err := DrawOp(cairo.OperatorOver); err != nil || got != draw.Over {
		t.Errorf("DrawOp(Over) = %v, %v; want Over", got, err)
	}
	if _, err := DrawOp(cairo.OperatorMultiply); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DrawOp(Multiply) error = %v, want ErrUnsupported", err)
	}
}

func TestInterpolator(t *testing.T) {
	tests := []struct {
		in   cairo.Filter
		want draw.Interpolator
	}{
		{cairo.FilterNearest, draw.NearestNeighbor},
		{cairo.FilterGood, draw.ApproxBiLinear},
		{cairo.FilterBilinear, draw.BiLinear},
		{cairo.FilterBest, draw.CatmullRom},
	}
	for _, tt := range tests {
		got, err := Interpolator(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Interpolator(%v) = %v, %v", tt.in, got, err)
		}
	}
}
