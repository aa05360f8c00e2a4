package interop

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"

	"github.com/gogpu/cairo"
)

// LineCapToGG converts a cairo line cap to gg.
func LineCapToGG(c cairo.LineCap) (gg.LineCap, error) {
	switch c {
	case cairo.LineCapButt:
		return gg.LineCapButt, nil
	case cairo.LineCapRound:
		return gg.LineCapRound, nil
	case cairo.LineCapSquare:
		return gg.LineCapSquare, nil
	}
	return 0, unsupported(c, "gg.LineCap")
}

// LineCapFromGG converts a gg line cap to cairo.
func LineCapFromGG(c gg.LineCap) (cairo.LineCap, error) {
	switch c {
	case gg.LineCapButt:
		return cairo.LineCapButt, nil
	case gg.LineCapRound:
		return cairo.LineCapRound, nil
	case gg.LineCapSquare:
		return cairo.LineCapSquare, nil
	}
	return 0, unsupported(cairo.LineCap(c), "cairo.LineCap")
}

// LineJoinToGG converts a cairo line join to gg.
func LineJoinToGG(j cairo.LineJoin) (gg.LineJoin, error) {
	switch j {
	case cairo.LineJoinMiter:
		return gg.LineJoinMiter, nil
	case cairo.LineJoinRound:
		return gg.LineJoinRound, nil
	case cairo.LineJoinBevel:
		return gg.LineJoinBevel, nil
	}
	return 0, unsupported(j, "gg.LineJoin")
}

// LineJoinFromGG converts a gg line join to cairo.
func LineJoinFromGG(j gg.LineJoin) (cairo.LineJoin, error) {
	switch j {
	case gg.LineJoinMiter:
		return cairo.LineJoinMiter, nil
	case gg.LineJoinRound:
		return cairo.LineJoinRound, nil
	case gg.LineJoinBevel:
		return cairo.LineJoinBevel, nil
	}
	return 0, unsupported(cairo.LineJoin(j), "cairo.LineJoin")
}

// FillRuleToGG converts a cairo fill rule to gg. Winding is gg's NonZero.
func FillRuleToGG(r cairo.FillRule) (gg.FillRule, error) {
	switch r {
	case cairo.FillRuleWinding:
		return gg.FillRuleNonZero, nil
	case cairo.FillRuleEvenOdd:
		return gg.FillRuleEvenOdd, nil
	}
	return 0, unsupported(r, "gg.FillRule")
}

// FillRuleFromGG converts a gg fill rule to cairo.
func FillRuleFromGG(r gg.FillRule) (cairo.FillRule, error) {
	switch r {
	case gg.FillRuleNonZero:
		return cairo.FillRuleWinding, nil
	case gg.FillRuleEvenOdd:
		return cairo.FillRuleEvenOdd, nil
	}
	return 0, unsupported(cairo.FillRule(r), "cairo.FillRule")
}

// ExtendToGG converts a cairo extend mode to a gg gradient extend mode.
// gg has no transparent extension, so ExtendNone is unsupported.
func ExtendToGG(e cairo.Extend) (gg.ExtendMode, error) {
	switch e {
	case cairo.ExtendPad:
		return gg.ExtendPad, nil
	case cairo.ExtendRepeat:
		return gg.ExtendRepeat, nil
	case cairo.ExtendReflect:
		return gg.ExtendReflect, nil
	}
	return 0, unsupported(e, "gg.ExtendMode")
}

// ExtendFromGG converts a gg gradient extend mode to cairo.
func ExtendFromGG(e gg.ExtendMode) (cairo.Extend, error) {
	switch e {
	case gg.ExtendPad:
		return cairo.ExtendPad, nil
	case gg.ExtendRepeat:
		return cairo.ExtendRepeat, nil
	case gg.ExtendReflect:
		return cairo.ExtendReflect, nil
	}
	return 0, unsupported(cairo.Extend(e), "cairo.Extend")
}

// FilterToGG picks the gg image interpolation closest to a cairo filter.
// The speed/quality hints map to Nearest, Bilinear and Bicubic.
func FilterToGG(f cairo.Filter) (gg.InterpolationMode, error) {
	switch f {
	case cairo.FilterFast, cairo.FilterNearest:
		return gg.InterpNearest, nil
	case cairo.FilterGood, cairo.FilterBilinear:
		return gg.InterpBilinear, nil
	case cairo.FilterBest, cairo.FilterGaussian:
		return gg.InterpBicubic, nil
	}
	return 0, unsupported(f, "gg.InterpolationMode")
}

// OperatorToGG converts an operator to gg's image blend mode, which only
// knows Over and three separable blend modes.
func OperatorToGG(o cairo.Operator) (gg.BlendMode, error) {
	switch o {
	case cairo.OperatorOver:
		return gg.BlendNormal, nil
	case cairo.OperatorMultiply:
		return gg.BlendMultiply, nil
	case cairo.OperatorScreen:
		return gg.BlendScreen, nil
	case cairo.OperatorOverlay:
		return gg.BlendOverlay, nil
	}
	return 0, unsupported(o, "gg.BlendMode")
}

// operatorScene is indexed by cairo.Operator. OperatorSaturate has no
// scene counterpart and is handled separately.
var operatorScene = [...]scene.BlendMode{
	cairo.OperatorClear:         scene.BlendClear,
	cairo.OperatorSource:        scene.BlendCopy,
	cairo.OperatorOver:          scene.BlendSourceOver,
	cairo.OperatorIn:            scene.BlendSourceIn,
	cairo.OperatorOut:           scene.BlendSourceOut,
	cairo.OperatorAtop:          scene.BlendSourceAtop,
	cairo.OperatorDest:          scene.BlendDestination,
	cairo.OperatorDestOver:      scene.BlendDestinationOver,
	cairo.OperatorDestIn:        scene.BlendDestinationIn,
	cairo.OperatorDestOut:       scene.BlendDestinationOut,
	cairo.OperatorDestAtop:      scene.BlendDestinationAtop,
	cairo.OperatorXor:           scene.BlendXor,
	cairo.OperatorAdd:           scene.BlendPlus,
	cairo.OperatorMultiply:      scene.BlendMultiply,
	cairo.OperatorScreen:        scene.BlendScreen,
	cairo.OperatorOverlay:       scene.BlendOverlay,
	cairo.OperatorDarken:        scene.BlendDarken,
	cairo.OperatorLighten:       scene.BlendLighten,
	cairo.OperatorColorDodge:    scene.BlendColorDodge,
	cairo.OperatorColorBurn:     scene.BlendColorBurn,
	cairo.OperatorHardLight:     scene.BlendHardLight,
	cairo.OperatorSoftLight:     scene.BlendSoftLight,
	cairo.OperatorDifference:    scene.BlendDifference,
	cairo.OperatorExclusion:     scene.BlendExclusion,
	cairo.OperatorHslHue:        scene.BlendHue,
	cairo.OperatorHslSaturation: scene.BlendSaturation,
	cairo.OperatorHslColor:      scene.BlendColor,
	cairo.OperatorHslLuminosity: scene.BlendLuminosity,
}

// OperatorToScene converts an operator to a scene blend mode.
// OperatorSaturate is unsupported.
func OperatorToScene(o cairo.Operator) (scene.BlendMode, error) {
	if o == cairo.OperatorSaturate || o < 0 || int(o) >= len(operatorScene) {
		return 0, unsupported(o, "scene.BlendMode")
	}
	return operatorScene[o], nil
}

// OperatorFromScene converts a scene blend mode to an operator.
// scene.BlendNormal is source-over.
func OperatorFromScene(m scene.BlendMode) (cairo.Operator, error) {
	if m == scene.BlendNormal {
		return cairo.OperatorOver, nil
	}
	for op, sm := range operatorScene {
		if cairo.Operator(op) != cairo.OperatorSaturate && sm == m {
			return cairo.Operator(op), nil
		}
	}
	return 0, unsupported(m, "cairo.Operator")
}

// FillRuleToScene converts a fill rule to the scene encoder's fill style.
func FillRuleToScene(r cairo.FillRule) (scene.FillStyle, error) {
	switch r {
	case cairo.FillRuleWinding:
		return scene.FillNonZero, nil
	case cairo.FillRuleEvenOdd:
		return scene.FillEvenOdd, nil
	}
	return 0, unsupported(r, "scene.FillStyle")
}

// StrokeToScene builds scene stroke parameters from cairo stroke state.
func StrokeToScene(width, miterLimit float64, c cairo.LineCap, j cairo.LineJoin) (*scene.StrokeStyle, error) {
	style := scene.DefaultStrokeStyle()
	style.Width = float32(width)
	style.MiterLimit = float32(miterLimit)
	switch c {
	case cairo.LineCapButt:
		style.Cap = scene.LineCapButt
	case cairo.LineCapRound:
		style.Cap = scene.LineCapRound
	case cairo.LineCapSquare:
		style.Cap = scene.LineCapSquare
	default:
		return nil, unsupported(c, "scene.LineCap")
	}
	switch j {
	case cairo.LineJoinMiter:
		style.Join = scene.LineJoinMiter
	case cairo.LineJoinRound:
		style.Join = scene.LineJoinRound
	case cairo.LineJoinBevel:
		style.Join = scene.LineJoinBevel
	default:
		return nil, unsupported(j, "scene.LineJoin")
	}
	return style, nil
}
