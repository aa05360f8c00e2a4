package cairo

// SubpixelOrder is the order of color elements within each pixel on the
// display device, used for subpixel antialiasing (cairo_subpixel_order_t).
type SubpixelOrder int32

const (
	SubpixelOrderDefault SubpixelOrder = iota
	SubpixelOrderRgb
	SubpixelOrderBgr
	SubpixelOrderVrgb
	SubpixelOrderVbgr
)

// HintStyle is the amount of outline hinting applied to fonts
// (cairo_hint_style_t).
type HintStyle int32

const (
	HintStyleDefault HintStyle = iota
	HintStyleNone
	HintStyleSlight
	HintStyleMedium
	HintStyleFull
)

// HintMetrics controls whether font metrics are rounded to integer
// values in device space (cairo_hint_metrics_t).
type HintMetrics int32

const (
	HintMetricsDefault HintMetrics = iota
	HintMetricsOff
	HintMetricsOn
)

var subpixelOrders = newEnumTable("SubpixelOrder", "cairo_subpixel_order_t", "CAIRO_SUBPIXEL_ORDER_",
	variant[SubpixelOrder]{SubpixelOrderDefault, "Default", "DEFAULT"},
	variant[SubpixelOrder]{SubpixelOrderRgb, "Rgb", "RGB"},
	variant[SubpixelOrder]{SubpixelOrderBgr, "Bgr", "BGR"},
	variant[SubpixelOrder]{SubpixelOrderVrgb, "Vrgb", "VRGB"},
	variant[SubpixelOrder]{SubpixelOrderVbgr, "Vbgr", "VBGR"},
)

var hintStyles = newEnumTable("HintStyle", "cairo_hint_style_t", "CAIRO_HINT_STYLE_",
	variant[HintStyle]{HintStyleDefault, "Default", "DEFAULT"},
	variant[HintStyle]{HintStyleNone, "None", "NONE"},
	variant[HintStyle]{HintStyleSlight, "Slight", "SLIGHT"},
	variant[HintStyle]{HintStyleMedium, "Medium", "MEDIUM"},
	variant[HintStyle]{HintStyleFull, "Full", "FULL"},
)

var hintMetrics = newEnumTable("HintMetrics", "cairo_hint_metrics_t", "CAIRO_HINT_METRICS_",
	variant[HintMetrics]{HintMetricsDefault, "Default", "DEFAULT"},
	variant[HintMetrics]{HintMetricsOff, "Off", "OFF"},
	variant[HintMetrics]{HintMetricsOn, "On", "ON"},
)

// Valid reports whether o is a SubpixelOrder variant.
func (o SubpixelOrder) Valid() bool { return subpixelOrders.known(o) }

// String returns the variant name, or "SubpixelOrder(n)" for an unknown value.
func (o SubpixelOrder) String() string { return subpixelOrders.name(o) }

// MarshalText implements encoding.TextMarshaler.
func (o SubpixelOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *SubpixelOrder) UnmarshalText(text []byte) error {
	v, err := subpixelOrders.parse(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Valid reports whether s is a HintStyle variant.
func (s HintStyle) Valid() bool { return hintStyles.known(s) }

// String returns the variant name, or "HintStyle(n)" for an unknown value.
func (s HintStyle) String() string { return hintStyles.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s HintStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *HintStyle) UnmarshalText(text []byte) error {
	v, err := hintStyles.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Valid reports whether m is a HintMetrics variant.
func (m HintMetrics) Valid() bool { return hintMetrics.known(m) }

// String returns the variant name, or "HintMetrics(n)" for an unknown value.
func (m HintMetrics) String() string { return hintMetrics.name(m) }

// MarshalText implements encoding.TextMarshaler.
func (m HintMetrics) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *HintMetrics) UnmarshalText(text []byte) error {
	v, err := hintMetrics.parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
