package cairo

// FillRule selects how the inside of a path is determined (cairo_fill_rule_t).
type FillRule int32

const (
	// FillRuleWinding fills regions with a non-zero winding number.
	FillRuleWinding FillRule = iota
	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// LineCap specifies the shape of line endpoints (cairo_line_cap_t).
type LineCap int32

const (
	// LineCapButt starts and stops the line exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound uses a round ending centered on the endpoint.
	LineCapRound
	// LineCapSquare uses a square ending centered on the endpoint.
	LineCapSquare
)

// LineJoin specifies the shape of line joins (cairo_line_join_t).
type LineJoin int32

const (
	// LineJoinMiter uses a sharp (angled) corner, see miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound uses a rounded join.
	LineJoinRound
	// LineJoinBevel cuts off the join at half the line width.
	LineJoinBevel
)

// Antialias selects the antialiasing mode for text and shapes
// (cairo_antialias_t).
type Antialias int32

const (
	AntialiasDefault Antialias = iota

	// method
	AntialiasNone
	AntialiasGray
	AntialiasSubpixel

	// hints
	AntialiasFast
	AntialiasGood
	AntialiasBest
)

var fillRules = newEnumTable("FillRule", "cairo_fill_rule_t", "CAIRO_FILL_RULE_",
	variant[FillRule]{FillRuleWinding, "Winding", "WINDING"},
	variant[FillRule]{FillRuleEvenOdd, "EvenOdd", "EVEN_ODD"},
)

var lineCaps = newEnumTable("LineCap", "cairo_line_cap_t", "CAIRO_LINE_CAP_",
	variant[LineCap]{LineCapButt, "Butt", "BUTT"},
	variant[LineCap]{LineCapRound, "Round", "ROUND"},
	variant[LineCap]{LineCapSquare, "Square", "SQUARE"},
)

var lineJoins = newEnumTable("LineJoin", "cairo_line_join_t", "CAIRO_LINE_JOIN_",
	variant[LineJoin]{LineJoinMiter, "Miter", "MITER"},
	variant[LineJoin]{LineJoinRound, "Round", "ROUND"},
	variant[LineJoin]{LineJoinBevel, "Bevel", "BEVEL"},
)

var antialiases = newEnumTable("Antialias", "cairo_antialias_t", "CAIRO_ANTIALIAS_",
	variant[Antialias]{AntialiasDefault, "Default", "DEFAULT"},
	variant[Antialias]{AntialiasNone, "None", "NONE"},
	variant[Antialias]{AntialiasGray, "Gray", "GRAY"},
	variant[Antialias]{AntialiasSubpixel, "Subpixel", "SUBPIXEL"},
	variant[Antialias]{AntialiasFast, "Fast", "FAST"},
	variant[Antialias]{AntialiasGood, "Good", "GOOD"},
	variant[Antialias]{AntialiasBest, "Best", "BEST"},
)

// Valid reports whether r is a FillRule variant.
func (r FillRule) Valid() bool { return fillRules.known(r) }

// String returns the variant name, or "FillRule(n)" for an unknown value.
func (r FillRule) String() string { return fillRules.name(r) }

// MarshalText implements encoding.TextMarshaler.
func (r FillRule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *FillRule) UnmarshalText(text []byte) error {
	v, err := fillRules.parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Valid reports whether c is a LineCap variant.
func (c LineCap) Valid() bool { return lineCaps.known(c) }

// String returns the variant name, or "LineCap(n)" for an unknown value.
func (c LineCap) String() string { return lineCaps.name(c) }

// MarshalText implements encoding.TextMarshaler.
func (c LineCap) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LineCap) UnmarshalText(text []byte) error {
	v, err := lineCaps.parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Valid reports whether j is a LineJoin variant.
func (j LineJoin) Valid() bool { return lineJoins.known(j) }

// String returns the variant name, or "LineJoin(n)" for an unknown value.
func (j LineJoin) String() string { return lineJoins.name(j) }

// MarshalText implements encoding.TextMarshaler.
func (j LineJoin) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *LineJoin) UnmarshalText(text []byte) error {
	v, err := lineJoins.parse(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

// Valid reports whether a is a Antialias variant.
func (a Antialias) Valid() bool { return antialiases.known(a) }

// String returns the variant name, or "Antialias(n)" for an unknown value.
func (a Antialias) String() string { return antialiases.name(a) }

// MarshalText implements encoding.TextMarshaler.
func (a Antialias) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Antialias) UnmarshalText(text []byte) error {
	v, err := antialiases.parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
