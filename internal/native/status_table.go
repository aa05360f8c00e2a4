//go:build !cairo || !cgo

package native

// statusText mirrors the switch in cairo-misc.c, indexed by
// cairo_status_t.
var statusText = [...]string{
	"no error has occurred",
	"out of memory",
	"cairo_restore() without matching cairo_save()",
	"no saved group to pop, i.e. cairo_pop_group() without matching cairo_push_group()",
	"no current point",
	"invalid matrix (not invertible)",
	"invalid value for an input cairo_status_t",
	"NULL pointer",
	"input string not valid UTF-8",
	"input path data not valid",
	"error while reading from input stream",
	"error while writing to output stream",
	"the target surface has been finished",
	"the surface type is not appropriate for the operation",
	"the pattern type is not appropriate for the operation",
	"invalid value for an input cairo_content_t",
	"invalid value for an input cairo_format_t",
	"invalid value for an input Visual*",
	"file not found",
	"invalid value for a dash setting",
	"invalid value for a DSC comment",
	"invalid index passed to getter",
	"clip region not representable in desired format",
	"error creating or writing to a temporary file",
	"invalid value for stride",
	"the font type is not appropriate for the operation",
	"the user-font is immutable",
	"error occurred in a user-font callback function",
	"negative number used where it is not allowed",
	"input clusters do not represent the accompanying text and glyph arrays",
	"invalid value for an input cairo_font_slant_t",
	"invalid value for an input cairo_font_weight_t",
	"invalid value (typically too big) for the size of the input (surface, pattern, etc.)",
	"user-font method not implemented",
	"the device type is not appropriate for the operation",
	"an operation to the device caused an unspecified error",
	"invalid operation during mesh pattern construction",
	"the target device has been finished",
}

const unknownStatus = "<unknown error status>"

// StatusString returns the text cairo_status_to_string would return
// for code.
func StatusString(code int32) string {
	if code < 0 || int(code) >= len(statusText) {
		return unknownStatus
	}
	return statusText[code]
}

// Linked reports whether libcairo is linked in.
func Linked() bool { return false }

// Version returns the cairo release the string table was taken from.
func Version() string { return "1.12" }
