//go:build cairo && cgo

package native

// #cgo pkg-config: cairo
// #include <cairo.h>
import "C"

// StatusString returns cairo_status_to_string(code).
//
// cairo owns the returned buffer (a static string) and it must not be
// freed. C.GoString copies it into Go memory before returning.
func StatusString(code int32) string {
	return C.GoString(C.cairo_status_to_string(C.cairo_status_t(code)))
}

// Linked reports whether libcairo is linked in.
func Linked() bool { return true }

// Version returns cairo_version_string() of the linked library.
func Version() string {
	return C.GoString(C.cairo_version_string())
}
