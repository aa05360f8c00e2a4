package interop

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/cairo"
)

// AddressMode returns the sampler address mode that reproduces a cairo
// extend mode when a surface pattern is sampled on the GPU.
//
// ExtendNone has no WebGPU address mode (there is no clamp-to-border);
// ClampToEdge is returned with an error so callers can mask the edges.
func AddressMode(e cairo.Extend) (gputypes.AddressMode, error) {
	switch e {
	case cairo.ExtendRepeat:
		return gputypes.AddressModeRepeat, nil
	case cairo.ExtendReflect:
		return gputypes.AddressModeMirrorRepeat, nil
	case cairo.ExtendPad:
		return gputypes.AddressModeClampToEdge, nil
	}
	return gputypes.AddressModeClampToEdge, unsupported(e, "gputypes.AddressMode")
}

// FilterMode returns the sampler filter for a cairo filter. Gaussian is
// approximated by linear filtering.
func FilterMode(f cairo.Filter) (gputypes.FilterMode, error) {
	switch f {
	case cairo.FilterFast, cairo.FilterNearest:
		return gputypes.FilterModeNearest, nil
	case cairo.FilterGood, cairo.FilterBest, cairo.FilterBilinear, cairo.FilterGaussian:
		return gputypes.FilterModeLinear, nil
	}
	return gputypes.FilterModeLinear, unsupported(f, "gputypes.FilterMode")
}

// BlendFactors is a fixed-function blend equation
// result = src*Src + dst*Dst using BlendOperationAdd.
type BlendFactors struct {
	Src       gputypes.BlendFactor
	Dst       gputypes.BlendFactor
	Operation gputypes.BlendOperation
}

func factors(src, dst gputypes.BlendFactor) BlendFactors {
	return BlendFactors{Src: src, Dst: dst, Operation: gputypes.BlendOperationAdd}
}

// Blend returns the blend factors implementing a Porter-Duff operator on
// premultiplied colors. The same factors apply to color and alpha.
// Saturate and the PDF blend modes need a shader and are unsupported.
func Blend(o cairo.Operator) (BlendFactors, error) {
	var (
		zero   = gputypes.BlendFactorZero
		one    = gputypes.BlendFactorOne
		sa     = gputypes.BlendFactorSrcAlpha
		oneMSa = gputypes.BlendFactorOneMinusSrcAlpha
		da     = gputypes.BlendFactorDstAlpha
		oneMDa = gputypes.BlendFactorOneMinusDstAlpha
	)
	switch o {
	case cairo.OperatorClear:
		return factors(zero, zero), nil
	case cairo.OperatorSource:
		return factors(one, zero), nil
	case cairo.OperatorOver:
		return factors(one, oneMSa), nil
	case cairo.OperatorIn:
		return factors(da, zero), nil
	case cairo.OperatorOut:
		return factors(oneMDa, zero), nil
	case cairo.OperatorAtop:
		return factors(da, oneMSa), nil
	case cairo.OperatorDest:
		return factors(zero, one), nil
	case cairo.OperatorDestOver:
		return factors(oneMDa, one), nil
	case cairo.OperatorDestIn:
		return factors(zero, sa), nil
	case cairo.OperatorDestOut:
		return factors(zero, oneMSa), nil
	case cairo.OperatorDestAtop:
		return factors(oneMDa, sa), nil
	case cairo.OperatorXor:
		return factors(oneMDa, oneMSa), nil
	case cairo.OperatorAdd:
		return factors(one, one), nil
	}
	return BlendFactors{}, unsupported(o, "gputypes blend factors")
}
