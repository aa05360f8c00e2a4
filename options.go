package cairo

import "log/slog"

// DecodeOption configures Decode.
//
// Example:
//
//	// Strict decoding (default)
//	s, err := cairo.Decode[cairo.Status](raw)
//
//	// Keep codes from a newer cairo, logging them to a dedicated logger
//	s, err := cairo.Decode[cairo.Status](raw, cairo.Lenient(), cairo.WithLogger(l))
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional configuration for a single Decode call.
type decodeOptions struct {
	lenient bool
	logger  *slog.Logger
}

// defaultDecodeOptions returns the default decode options.
func defaultDecodeOptions() decodeOptions {
	return decodeOptions{
		lenient: false,
		logger:  Logger(),
	}
}

// Lenient makes Decode preserve discriminants it does not recognise,
// such as codes added by a newer cairo, instead of rejecting them.
// Each preserved value is logged at warn level.
func Lenient() DecodeOption {
	return func(o *decodeOptions) {
		o.lenient = true
	}
}

// WithLogger sends the warnings of a Lenient decode to l instead of the
// package logger. A nil l keeps the package logger.
func WithLogger(l *slog.Logger) DecodeOption {
	return func(o *decodeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
