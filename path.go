package cairo

// PathDataType is the kind of a path element (cairo_path_data_type_t).
type PathDataType int32

const (
	PathMoveTo PathDataType = iota
	PathLineTo
	PathCurveTo
	PathClosePath
)

var pathDataTypes = newEnumTable("PathDataType", "cairo_path_data_type_t", "CAIRO_PATH_",
	variant[PathDataType]{PathMoveTo, "MoveTo", "MOVE_TO"},
	variant[PathDataType]{PathLineTo, "LineTo", "LINE_TO"},
	variant[PathDataType]{PathCurveTo, "CurveTo", "CURVE_TO"},
	variant[PathDataType]{PathClosePath, "ClosePath", "CLOSE_PATH"},
)

// Points returns how many point entries follow an element header of
// type t in a cairo_path_data_t array, or -1 for an unknown type.
func (t PathDataType) Points() int {
	switch t {
	case PathMoveTo, PathLineTo:
		return 1
	case PathCurveTo:
		return 3
	case PathClosePath:
		return 0
	default:
		return -1
	}
}

// Valid reports whether t is a PathDataType variant.
func (t PathDataType) Valid() bool { return pathDataTypes.known(t) }

// String returns the variant name, or "PathDataType(n)" for an unknown value.
func (t PathDataType) String() string { return pathDataTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t PathDataType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PathDataType) UnmarshalText(text []byte) error {
	v, err := pathDataTypes.parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
