// Package native is the foreign boundary to the cairo C library.
//
// Built with the "cairo" tag and cgo enabled, it links libcairo through
// pkg-config and asks the library itself for status descriptions.
// Otherwise it serves the same text from a copy of the cairo 1.12
// string table, so the module builds and tests without libcairo.
//
//	go build -tags cairo ./...
package native
