// Package cairo mirrors the public enumerations of the cairo 2D graphics
// library and its status vocabulary.
//
// # Overview
//
// Every C enumeration a cairo binding passes across the foreign boundary
// has a Go counterpart here: a named int32 type whose constants carry the
// exact discriminants of cairo.h (release 1.12, see ABIVersion). Values can
// be handed to C unchanged and raw integers received from C can be turned
// back into Go values with Decode.
//
//	op := cairo.OperatorMultiply
//	C.cairo_set_operator(cr, C.cairo_operator_t(op))
//
// # Status
//
// Status is the outcome of a cairo call. It implements error, so a failed
// status can be returned and compared with errors.Is. EnsureValid is the
// strict path: it panics with the status unless it is StatusSuccess.
//
//	status, err := cairo.Decode[cairo.Status](int32(C.cairo_status(cr)))
//	if err != nil {
//	    return err
//	}
//	status.EnsureValid()
//
// Guard converts such a panic back into an error at an API boundary.
//
// # Names
//
// Each type renders as its Go variant name ("Round") and parses the Go
// name, the C suffix ("ROUND") or the full C identifier
// ("CAIRO_LINE_CAP_ROUND") case-insensitively, so the enumerations can be
// used directly in JSON or YAML configuration.
//
// # Unknown values
//
// The types hold any int32. Decode rejects values outside the mirrored
// release unless Lenient is given, in which case they are preserved and
// logged. See SetLogger.
//
// # Related packages
//
// Package interop converts these parameters into gogpu/gg, gputypes,
// golang.org/x/image and go-text/typesetting types.
package cairo
