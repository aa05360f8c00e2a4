package cairo

// Extend describes how a pattern is drawn outside its natural area
// (cairo_extend_t).
type Extend int32

const (
	// ExtendNone leaves pixels outside the pattern transparent.
	ExtendNone Extend = iota
	// ExtendRepeat tiles the pattern.
	ExtendRepeat
	// ExtendReflect tiles the pattern, mirroring at the edges.
	ExtendReflect
	// ExtendPad repeats the nearest edge pixel.
	ExtendPad
)

// Filter selects the pixel filter used when reading pattern pixels
// (cairo_filter_t).
type Filter int32

const (
	FilterFast Filter = iota
	FilterGood
	FilterBest
	FilterNearest
	FilterBilinear
	FilterGaussian
)

// PatternType is the type of a pattern (cairo_pattern_type_t).
type PatternType int32

const (
	PatternTypeSolid PatternType = iota
	PatternTypeSurface
	PatternTypeLinearGradient
	PatternTypeRadialGradient
	PatternTypeMesh
	PatternTypeRasterSource
)

var extends = newEnumTable("Extend", "cairo_extend_t", "CAIRO_EXTEND_",
	variant[Extend]{ExtendNone, "None", "NONE"},
	variant[Extend]{ExtendRepeat, "Repeat", "REPEAT"},
	variant[Extend]{ExtendReflect, "Reflect", "REFLECT"},
	variant[Extend]{ExtendPad, "Pad", "PAD"},
)

var filters = newEnumTable("Filter", "cairo_filter_t", "CAIRO_FILTER_",
	variant[Filter]{FilterFast, "Fast", "FAST"},
	variant[Filter]{FilterGood, "Good", "GOOD"},
	variant[Filter]{FilterBest, "Best", "BEST"},
	variant[Filter]{FilterNearest, "Nearest", "NEAREST"},
	variant[Filter]{FilterBilinear, "Bilinear", "BILINEAR"},
	variant[Filter]{FilterGaussian, "Gaussian", "GAUSSIAN"},
)

var patternTypes = newEnumTable("PatternType", "cairo_pattern_type_t", "CAIRO_PATTERN_TYPE_",
	variant[PatternType]{PatternTypeSolid, "Solid", "SOLID"},
	variant[PatternType]{PatternTypeSurface, "Surface", "SURFACE"},
	variant[PatternType]{PatternTypeLinearGradient, "LinearGradient", "LINEAR"},
	variant[PatternType]{PatternTypeRadialGradient, "RadialGradient", "RADIAL"},
	variant[PatternType]{PatternTypeMesh, "Mesh", "MESH"},
	variant[PatternType]{PatternTypeRasterSource, "RasterSource", "RASTER_SOURCE"},
)

// Valid reports whether e is a Extend variant.
func (e Extend) Valid() bool { return extends.known(e) }

// String returns the variant name, or "Extend(n)" for an unknown value.
func (e Extend) String() string { return extends.name(e) }

// MarshalText implements encoding.TextMarshaler.
func (e Extend) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Extend) UnmarshalText(text []byte) error {
	v, err := extends.parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Valid reports whether f is a Filter variant.
func (f Filter) Valid() bool { return filters.known(f) }

// String returns the variant name, or "Filter(n)" for an unknown value.
func (f Filter) String() string { return filters.name(f) }

// MarshalText implements encoding.TextMarshaler.
func (f Filter) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Filter) UnmarshalText(text []byte) error {
	v, err := filters.parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Valid reports whether t is a PatternType variant.
func (t PatternType) Valid() bool { return patternTypes.known(t) }

// String returns the variant name, or "PatternType(n)" for an unknown value.
func (t PatternType) String() string { return patternTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t PatternType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PatternType) UnmarshalText(text []byte) error {
	v, err := patternTypes.parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
