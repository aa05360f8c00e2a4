package interop

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/cairo"
)

// FontAspect returns the go-text font aspect matching a cairo toy font
// slant and weight, for font lookup through go-text's fontscan.
// go-text has no oblique style; Oblique maps to Italic.
func FontAspect(s cairo.FontSlant, w cairo.FontWeight) (font.Aspect, error) {
	a := font.Aspect{Stretch: font.StretchNormal}
	switch s {
	case cairo.FontSlantNormal:
		a.Style = font.StyleNormal
	case cairo.FontSlantItalic, cairo.FontSlantOblique:
		a.Style = font.StyleItalic
	default:
		return a, unsupported(s, "font.Style")
	}
	switch w {
	case cairo.FontWeightNormal:
		a.Weight = font.WeightNormal
	case cairo.FontWeightBold:
		a.Weight = font.WeightBold
	default:
		return a, unsupported(w, "font.Weight")
	}
	return a, nil
}

// ToyFont returns the cairo toy slant and weight closest to a go-text
// aspect. Weights of 600 and above are bold.
func ToyFont(a font.Aspect) (cairo.FontSlant, cairo.FontWeight) {
	slant := cairo.FontSlantNormal
	if a.Style == font.StyleItalic {
		slant = cairo.FontSlantItalic
	}
	weight := cairo.FontWeightNormal
	if a.Weight >= font.WeightSemibold {
		weight = cairo.FontWeightBold
	}
	return slant, weight
}

// ClusterFlags returns the cluster flags for glyphs shaped in direction
// d. Right-to-left and bottom-to-top runs store their glyphs in visual
// order, so their clusters map backward.
func ClusterFlags(d di.Direction) cairo.TextClusterFlags {
	if d.Progression() == di.TowardTopLeft {
		return cairo.TextClusterFlagBackward
	}
	return cairo.TextClusterFlagNone
}
