package cairo

import (
	"errors"
	"strconv"
)

// Sentinel errors for the cairo package.
var (
	// ErrUnknownValue is matched by a DecodeError for a discriminant that
	// is not a variant of the mirrored cairo release.
	ErrUnknownValue = errors.New("cairo: unknown enumeration value")

	// ErrSentinelStatus is matched when StatusLastStatus is decoded.
	// cairo never returns it; it only bounds the status range.
	ErrSentinelStatus = errors.New("cairo: status sentinel is not an outcome")

	// ErrUnknownName is matched by a ParseError.
	ErrUnknownName = errors.New("cairo: unknown enumeration name")
)

// DecodeError is returned by Decode for a raw discriminant that does not
// map to a known variant.
type DecodeError struct {
	Type     string
	Raw      int32
	Sentinel bool
}

func (e *DecodeError) Error() string {
	if e.Sentinel {
		return "cairo: decode " + e.Type + ": " + strconv.FormatInt(int64(e.Raw), 10) + " is the status sentinel"
	}
	return "cairo: decode " + e.Type + ": unknown value " + strconv.FormatInt(int64(e.Raw), 10)
}

// Is reports whether target is ErrUnknownValue, or ErrSentinelStatus for
// the status sentinel.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrUnknownValue:
		return true
	case ErrSentinelStatus:
		return e.Sentinel
	}
	return false
}

// ParseError is returned when text does not name a variant.
type ParseError struct {
	Type string
	Text string
}

func (e *ParseError) Error() string {
	return "cairo: parse " + e.Type + ": unknown name " + strconv.Quote(e.Text)
}

// Unwrap returns ErrUnknownName.
func (e *ParseError) Unwrap() error {
	return ErrUnknownName
}
