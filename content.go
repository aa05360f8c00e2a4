package cairo

// Content describes what a surface holds (cairo_content_t).
//
// The values are bit patterns: ContentColorAlpha is ContentColor|ContentAlpha.
// They start at 0x1000 so they cannot be confused with cairo_format_t values.
type Content int32

const (
	ContentColor      Content = 0x1000
	ContentAlpha      Content = 0x2000
	ContentColorAlpha Content = 0x3000
)

var contents = newEnumTable("Content", "cairo_content_t", "CAIRO_CONTENT_",
	variant[Content]{ContentColor, "Color", "COLOR"},
	variant[Content]{ContentAlpha, "Alpha", "ALPHA"},
	variant[Content]{ContentColorAlpha, "ColorAlpha", "COLOR_ALPHA"},
)

// HasColor reports whether c includes color channels.
func (c Content) HasColor() bool { return c&ContentColor != 0 }

// HasAlpha reports whether c includes an alpha channel.
func (c Content) HasAlpha() bool { return c&ContentAlpha != 0 }

// Valid reports whether c is a Content variant.
func (c Content) Valid() bool { return contents.known(c) }

// String returns the variant name, or "Content(n)" for an unknown value.
func (c Content) String() string { return contents.name(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Content) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Content) UnmarshalText(text []byte) error {
	v, err := contents.parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
