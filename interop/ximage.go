package interop

import (
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/gogpu/cairo"
)

// Hinting maps a cairo hint style to x/image font hinting.
// Default follows cairo's own default for most backends (full hinting);
// Slight hints only the vertical axis.
func Hinting(s cairo.HintStyle) (font.Hinting, error) {
	switch s {
	case cairo.HintStyleNone:
		return font.HintingNone, nil
	case cairo.HintStyleSlight:
		return font.HintingVertical, nil
	case cairo.HintStyleDefault, cairo.HintStyleMedium, cairo.HintStyleFull:
		return font.HintingFull, nil
	}
	return font.HintingNone, unsupported(s, "font.Hinting")
}

// HintStyle maps x/image font hinting back to a cairo hint style.
func HintStyle(h font.Hinting) (cairo.HintStyle, error) {
	switch h {
	case font.HintingNone:
		return cairo.HintStyleNone, nil
	case font.HintingVertical:
		return cairo.HintStyleSlight, nil
	case font.HintingFull:
		return cairo.HintStyleFull, nil
	}
	return cairo.HintStyleDefault, unsupported(cairo.HintStyle(h), "cairo.HintStyle")
}

// DrawOp maps an operator to an image/draw operator. Only Source and
// Over exist there.
func DrawOp(o cairo.Operator) (draw.Op, error) {
	switch o {
	case cairo.OperatorOver:
		return draw.Over, nil
	case cairo.OperatorSource:
		return draw.Src, nil
	}
	return draw.Over, unsupported(o, "draw.Op")
}

// Interpolator returns the x/image/draw scaler closest to a cairo filter.
func Interpolator(f cairo.Filter) (draw.Interpolator, error) {
	switch f {
	case cairo.FilterFast, cairo.FilterNearest:
		return draw.NearestNeighbor, nil
	case cairo.FilterGood:
		return draw.ApproxBiLinear, nil
	case cairo.FilterBilinear:
		return draw.BiLinear, nil
	case cairo.FilterBest, cairo.FilterGaussian:
		return draw.CatmullRom, nil
	}
	return draw.ApproxBiLinear, unsupported(f, "draw.Interpolator")
}
