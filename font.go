package cairo

// FontSlant specifies the slant of a toy font face (cairo_font_slant_t).
type FontSlant int32

const (
	FontSlantNormal FontSlant = iota
	FontSlantItalic
	FontSlantOblique
)

// FontWeight specifies the weight of a toy font face (cairo_font_weight_t).
type FontWeight int32

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// FontType is the font backend behind a font face (cairo_font_type_t).
type FontType int32

const (
	FontTypeToy FontType = iota
	FontTypeFt
	FontTypeWin32
	FontTypeQuartz
	FontTypeUser
)

// TextClusterFlags describes the cluster array passed with show_text_glyphs
// (cairo_text_cluster_flags_t). It is a flag set, not a sequence.
type TextClusterFlags int32

const (
	// TextClusterFlagNone means clusters map glyphs in forward order.
	TextClusterFlagNone TextClusterFlags = 0x00000000
	// TextClusterFlagBackward means clusters map glyphs from the end of
	// the glyph array backward.
	TextClusterFlagBackward TextClusterFlags = 0x00000001
)

var fontSlants = newEnumTable("FontSlant", "cairo_font_slant_t", "CAIRO_FONT_SLANT_",
	variant[FontSlant]{FontSlantNormal, "Normal", "NORMAL"},
	variant[FontSlant]{FontSlantItalic, "Italic", "ITALIC"},
	variant[FontSlant]{FontSlantOblique, "Oblique", "OBLIQUE"},
)

var fontWeights = newEnumTable("FontWeight", "cairo_font_weight_t", "CAIRO_FONT_WEIGHT_",
	variant[FontWeight]{FontWeightNormal, "Normal", "NORMAL"},
	variant[FontWeight]{FontWeightBold, "Bold", "BOLD"},
)

var fontTypes = newEnumTable("FontType", "cairo_font_type_t", "CAIRO_FONT_TYPE_",
	variant[FontType]{FontTypeToy, "Toy", "TOY"},
	variant[FontType]{FontTypeFt, "Ft", "FT"},
	variant[FontType]{FontTypeWin32, "Win32", "WIN32"},
	variant[FontType]{FontTypeQuartz, "Quartz", "QUARTZ"},
	variant[FontType]{FontTypeUser, "User", "USER"},
)

var textClusterFlags = newEnumTable("TextClusterFlags", "cairo_text_cluster_flags_t", "CAIRO_TEXT_CLUSTER_FLAG_",
	variant[TextClusterFlags]{TextClusterFlagNone, "None", "NONE"},
	variant[TextClusterFlags]{TextClusterFlagBackward, "Backward", "BACKWARD"},
).withSynthetic(TextClusterFlagNone)

// Valid reports whether s is a FontSlant variant.
func (s FontSlant) Valid() bool { return fontSlants.known(s) }

// String returns the variant name, or "FontSlant(n)" for an unknown value.
func (s FontSlant) String() string { return fontSlants.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s FontSlant) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *FontSlant) UnmarshalText(text []byte) error {
	v, err := fontSlants.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Valid reports whether w is a FontWeight variant.
func (w FontWeight) Valid() bool { return fontWeights.known(w) }

// String returns the variant name, or "FontWeight(n)" for an unknown value.
func (w FontWeight) String() string { return fontWeights.name(w) }

// MarshalText implements encoding.TextMarshaler.
func (w FontWeight) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *FontWeight) UnmarshalText(text []byte) error {
	v, err := fontWeights.parse(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Valid reports whether t is a FontType variant.
func (t FontType) Valid() bool { return fontTypes.known(t) }

// String returns the variant name, or "FontType(n)" for an unknown value.
func (t FontType) String() string { return fontTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t FontType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FontType) UnmarshalText(text []byte) error {
	v, err := fontTypes.parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Valid reports whether f only contains bits cairo defines.
func (f TextClusterFlags) Valid() bool {
	return f&^TextClusterFlagBackward == 0
}

// Has reports whether f contains flag.
func (f TextClusterFlags) Has(flag TextClusterFlags) bool {
	return f&flag != 0
}

// String returns "None", "Backward", or "TextClusterFlags(n)" when f
// carries bits cairo does not define.
func (f TextClusterFlags) String() string { return textClusterFlags.name(f) }

// MarshalText implements encoding.TextMarshaler.
func (f TextClusterFlags) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TextClusterFlags) UnmarshalText(text []byte) error {
	v, err := textClusterFlags.parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
