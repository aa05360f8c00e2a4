package cairo

import "github.com/gogpu/cairo/internal/native"

// Status is the outcome of a cairo operation (cairo_status_t).
//
// Status implements error so a failed status can be returned, wrapped and
// compared with errors.Is like any other error value.
type Status int32

const (
	StatusSuccess Status = 0

	StatusNoMemory Status = iota
	StatusInvalidRestore
	StatusInvalidPopGroup
	StatusNoCurrentPoint
	StatusInvalidMatrix
	StatusInvalidStatus
	StatusNullPointer
	StatusInvalidString
	StatusInvalidPathData
	StatusReadError
	StatusWriteError
	StatusSurfaceFinished
	StatusSurfaceTypeMismatch
	StatusPatternTypeMismatch
	StatusInvalidContent
	StatusInvalidFormat
	StatusInvalidVisual
	StatusFileNotFound
	StatusInvalidDash
	StatusInvalidDscComment
	StatusInvalidIndex
	StatusClipNotRepresentable
	StatusTempFileError
	StatusInvalidStride
	StatusFontTypeMismatch
	StatusUserFontImmutable
	StatusUserFontError
	StatusNegativeCount
	StatusInvalidClusters
	StatusInvalidSlant
	StatusInvalidWeight
	StatusInvalidSize
	StatusUserFontNotImplemented
	StatusDeviceTypeMismatch
	StatusDeviceError
	StatusInvalidMeshConstruction
	StatusDeviceFinished

	// StatusLastStatus bounds the range of real outcomes. cairo never
	// returns it.
	StatusLastStatus
)

// unknownStatusText is what cairo_status_to_string renders for a value
// outside the status range.
const unknownStatusText = "<unknown error status>"

var statuses = newEnumTable("Status", "cairo_status_t", "CAIRO_STATUS_",
	variant[Status]{StatusSuccess, "Success", "SUCCESS"},
	variant[Status]{StatusNoMemory, "NoMemory", "NO_MEMORY"},
	variant[Status]{StatusInvalidRestore, "InvalidRestore", "INVALID_RESTORE"},
	variant[Status]{StatusInvalidPopGroup, "InvalidPopGroup", "INVALID_POP_GROUP"},
	variant[Status]{StatusNoCurrentPoint, "NoCurrentPoint", "NO_CURRENT_POINT"},
	variant[Status]{StatusInvalidMatrix, "InvalidMatrix", "INVALID_MATRIX"},
	variant[Status]{StatusInvalidStatus, "InvalidStatus", "INVALID_STATUS"},
	variant[Status]{StatusNullPointer, "NullPointer", "NULL_POINTER"},
	variant[Status]{StatusInvalidString, "InvalidString", "INVALID_STRING"},
	variant[Status]{StatusInvalidPathData, "InvalidPathData", "INVALID_PATH_DATA"},
	variant[Status]{StatusReadError, "ReadError", "READ_ERROR"},
	variant[Status]{StatusWriteError, "WriteError", "WRITE_ERROR"},
	variant[Status]{StatusSurfaceFinished, "SurfaceFinished", "SURFACE_FINISHED"},
	variant[Status]{StatusSurfaceTypeMismatch, "SurfaceTypeMismatch", "SURFACE_TYPE_MISMATCH"},
	variant[Status]{StatusPatternTypeMismatch, "PatternTypeMismatch", "PATTERN_TYPE_MISMATCH"},
	variant[Status]{StatusInvalidContent, "InvalidContent", "INVALID_CONTENT"},
	variant[Status]{StatusInvalidFormat, "InvalidFormat", "INVALID_FORMAT"},
	variant[Status]{StatusInvalidVisual, "InvalidVisual", "INVALID_VISUAL"},
	variant[Status]{StatusFileNotFound, "FileNotFound", "FILE_NOT_FOUND"},
	variant[Status]{StatusInvalidDash, "InvalidDash", "INVALID_DASH"},
	variant[Status]{StatusInvalidDscComment, "InvalidDscComment", "INVALID_DSC_COMMENT"},
	variant[Status]{StatusInvalidIndex, "InvalidIndex", "INVALID_INDEX"},
	variant[Status]{StatusClipNotRepresentable, "ClipNotRepresentable", "CLIP_NOT_REPRESENTABLE"},
	variant[Status]{StatusTempFileError, "TempFileError", "TEMP_FILE_ERROR"},
	variant[Status]{StatusInvalidStride, "InvalidStride", "INVALID_STRIDE"},
	variant[Status]{StatusFontTypeMismatch, "FontTypeMismatch", "FONT_TYPE_MISMATCH"},
	variant[Status]{StatusUserFontImmutable, "UserFontImmutable", "USER_FONT_IMMUTABLE"},
	variant[Status]{StatusUserFontError, "UserFontError", "USER_FONT_ERROR"},
	variant[Status]{StatusNegativeCount, "NegativeCount", "NEGATIVE_COUNT"},
	variant[Status]{StatusInvalidClusters, "InvalidClusters", "INVALID_CLUSTERS"},
	variant[Status]{StatusInvalidSlant, "InvalidSlant", "INVALID_SLANT"},
	variant[Status]{StatusInvalidWeight, "InvalidWeight", "INVALID_WEIGHT"},
	variant[Status]{StatusInvalidSize, "InvalidSize", "INVALID_SIZE"},
	variant[Status]{StatusUserFontNotImplemented, "UserFontNotImplemented", "USER_FONT_NOT_IMPLEMENTED"},
	variant[Status]{StatusDeviceTypeMismatch, "DeviceTypeMismatch", "DEVICE_TYPE_MISMATCH"},
	variant[Status]{StatusDeviceError, "DeviceError", "DEVICE_ERROR"},
	variant[Status]{StatusInvalidMeshConstruction, "InvalidMeshConstruction", "INVALID_MESH_CONSTRUCTION"},
	variant[Status]{StatusDeviceFinished, "DeviceFinished", "DEVICE_FINISHED"},
	variant[Status]{StatusLastStatus, "LastStatus", "LAST_STATUS"},
)

// Valid reports whether s is a real outcome: a known code below the
// StatusLastStatus sentinel.
func (s Status) Valid() bool {
	return s >= StatusSuccess && s < StatusLastStatus
}

// String returns the variant name, e.g. "NoMemory".
func (s Status) String() string { return statuses.name(s) }

// Description returns cairo's human-readable text for s, e.g.
// "out of memory". The sentinel and unknown codes are never handed to
// the library; they render as "<unknown error status>".
func (s Status) Description() string {
	if !s.Valid() {
		return unknownStatusText
	}
	return native.StatusString(int32(s))
}

// Error implements error.
func (s Status) Error() string {
	return "cairo: " + s.Description()
}

// Err returns nil for StatusSuccess and s otherwise.
func (s Status) Err() error {
	if s == StatusSuccess {
		return nil
	}
	return s
}

// EnsureValid panics with s unless s is StatusSuccess.
//
// Any failed status is treated as a programming error or an
// unrecoverable environment failure. Callers that want to branch on the
// outcome use Err instead, or defer Guard to turn the panic back into an
// error at an API boundary.
func (s Status) EnsureValid() {
	if s == StatusSuccess {
		return
	}
	Logger().Error("cairo: status check failed",
		"status", s.String(), "code", int32(s), "description", s.Description())
	panic(s)
}

// Guard recovers a Status panic raised by EnsureValid and stores it in
// *errp. Other panics are re-raised, and so is a Status when errp is nil.
// It must be called directly by defer:
//
//	func render() (err error) {
//	    defer cairo.Guard(&err)
//	    ...
//	}
func Guard(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	s, ok := r.(Status)
	if !ok || errp == nil {
		panic(r)
	}
	Logger().Debug("cairo: recovered status panic", "status", s.String())
	*errp = s
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := statuses.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
