// Command cairoabi prints the cairo enumerations mirrored by
// github.com/gogpu/cairo and checks them against a cairo.h.
//
// Usage:
//
//	cairoabi [-format text|yaml]
//	cairoabi -check /usr/include/cairo/cairo.h
//	cairoabi -status 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/cairo"
	"github.com/gogpu/cairo/internal/header"
	"github.com/gogpu/cairo/internal/native"
)

// errMismatch is returned by check when the header disagrees with the
// mirrored enumerations.
var errMismatch = errors.New("header does not match mirrored ABI")

func main() {
	log.SetFlags(0)
	log.SetPrefix("cairoabi: ")

	var (
		format = flag.String("format", "text", "output format: text or yaml")
		check  = flag.String("check", "", "cairo.h to compare against")
		status = flag.String("status", "", "describe a raw cairo_status_t code")
	)
	flag.Parse()

	var err error
	switch {
	case *check != "":
		err = checkHeader(os.Stdout, *check)
	case *status != "":
		err = describeStatus(os.Stdout, *status)
	default:
		err = printABI(os.Stdout, *format)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// document is the YAML form of the ABI listing.
type document struct {
	Version string          `yaml:"version"`
	Linked  bool            `yaml:"linked"`
	Enums   []cairo.EnumABI `yaml:"enums"`
}

func printABI(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{
			Version: native.Version(),
			Linked:  native.Linked(),
			Enums:   cairo.ABI(),
		}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range cairo.ABI() {
			fmt.Fprintf(tw, "%s\t(%s)\n", e.CType, e.GoType)
			for _, v := range e.Values {
				fmt.Fprintf(tw, "  %s\t%s\t%#x\n", v.CName, v.Name, v.Value)
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func checkHeader(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	parsed, err := header.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	mismatches := header.Compare(cairo.ABI(), parsed)
	for _, m := range mismatches {
		fmt.Fprintln(w, m)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%s: %d differences: %w", path, len(mismatches), errMismatch)
	}
	fmt.Fprintf(w, "%s matches cairo %s\n", path, cairo.ABIVersion)
	return nil
}

func describeStatus(w io.Writer, raw string) error {
	n, err := strconv.ParseInt(raw, 0, 32)
	if err != nil {
		return fmt.Errorf("status %q: %w", raw, err)
	}
	s, err := cairo.Decode[cairo.Status](int32(n), cairo.Lenient())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", n, s.String(), s.Description())
	return err
}
