package cairo

// Operator is a compositing operator (cairo_operator_t).
type Operator int32

const (
	OperatorClear Operator = iota

	OperatorSource
	OperatorOver
	OperatorIn
	OperatorOut
	OperatorAtop

	OperatorDest
	OperatorDestOver
	OperatorDestIn
	OperatorDestOut
	OperatorDestAtop

	OperatorXor
	OperatorAdd
	OperatorSaturate

	OperatorMultiply
	OperatorScreen
	OperatorOverlay
	OperatorDarken
	OperatorLighten
	OperatorColorDodge
	OperatorColorBurn
	OperatorHardLight
	OperatorSoftLight
	OperatorDifference
	OperatorExclusion
	OperatorHslHue
	OperatorHslSaturation
	OperatorHslColor
	OperatorHslLuminosity
)

var operators = newEnumTable("Operator", "cairo_operator_t", "CAIRO_OPERATOR_",
	variant[Operator]{OperatorClear, "Clear", "CLEAR"},
	variant[Operator]{OperatorSource, "Source", "SOURCE"},
	variant[Operator]{OperatorOver, "Over", "OVER"},
	variant[Operator]{OperatorIn, "In", "IN"},
	variant[Operator]{OperatorOut, "Out", "OUT"},
	variant[Operator]{OperatorAtop, "Atop", "ATOP"},
	variant[Operator]{OperatorDest, "Dest", "DEST"},
	variant[Operator]{OperatorDestOver, "DestOver", "DEST_OVER"},
	variant[Operator]{OperatorDestIn, "DestIn", "DEST_IN"},
	variant[Operator]{OperatorDestOut, "DestOut", "DEST_OUT"},
	variant[Operator]{OperatorDestAtop, "DestAtop", "DEST_ATOP"},
	variant[Operator]{OperatorXor, "Xor", "XOR"},
	variant[Operator]{OperatorAdd, "Add", "ADD"},
	variant[Operator]{OperatorSaturate, "Saturate", "SATURATE"},
	variant[Operator]{OperatorMultiply, "Multiply", "MULTIPLY"},
	variant[Operator]{OperatorScreen, "Screen", "SCREEN"},
	variant[Operator]{OperatorOverlay, "Overlay", "OVERLAY"},
	variant[Operator]{OperatorDarken, "Darken", "DARKEN"},
	variant[Operator]{OperatorLighten, "Lighten", "LIGHTEN"},
	variant[Operator]{OperatorColorDodge, "ColorDodge", "COLOR_DODGE"},
	variant[Operator]{OperatorColorBurn, "ColorBurn", "COLOR_BURN"},
	variant[Operator]{OperatorHardLight, "HardLight", "HARD_LIGHT"},
	variant[Operator]{OperatorSoftLight, "SoftLight", "SOFT_LIGHT"},
	variant[Operator]{OperatorDifference, "Difference", "DIFFERENCE"},
	variant[Operator]{OperatorExclusion, "Exclusion", "EXCLUSION"},
	variant[Operator]{OperatorHslHue, "HslHue", "HSL_HUE"},
	variant[Operator]{OperatorHslSaturation, "HslSaturation", "HSL_SATURATION"},
	variant[Operator]{OperatorHslColor, "HslColor", "HSL_COLOR"},
	variant[Operator]{OperatorHslLuminosity, "HslLuminosity", "HSL_LUMINOSITY"},
)

// IsBlendMode reports whether o is one of the PDF blend modes
// (Multiply through HslLuminosity) rather than a Porter-Duff operator.
func (o Operator) IsBlendMode() bool {
	return o >= OperatorMultiply && o <= OperatorHslLuminosity
}

// Valid reports whether o is a Operator variant.
func (o Operator) Valid() bool { return operators.known(o) }

// String returns the variant name, or "Operator(n)" for an unknown value.
func (o Operator) String() string { return operators.name(o) }

// MarshalText implements encoding.TextMarshaler.
func (o Operator) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operator) UnmarshalText(text []byte) error {
	v, err := operators.parse(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
