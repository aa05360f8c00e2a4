// Package header reads enumerations out of a cairo.h and checks them
// against the discriminants mirrored by package cairo.
package header

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/cairo"
)

// Constant is one enumerator with its resolved value.
type Constant struct {
	Name  string
	Value int32
}

var (
	// ErrNoEnums is returned when the input contains no typedef'd enum.
	ErrNoEnums = errors.New("header: no enumerations found")

	// ErrOutOfRange is returned for an enumerator that does not fit the
	// int32 width of a C enum.
	ErrOutOfRange = errors.New("header: value out of int32 range")
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	enumBlock    = regexp.MustCompile(`(?s)typedef\s+enum\s*(?:\w+\s*)?\{(.*?)\}\s*(\w+)\s*;`)
)

// Parse scans src for `typedef enum ... { ... } name;` declarations and
// returns their enumerators keyed by the typedef name, in declaration
// order. Explicit values may be decimal, hex, a shift, or an OR of
// constants declared earlier; the rest count up from the previous value.
func Parse(src io.Reader) (map[string][]Constant, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("header: read: %w", err)
	}
	text := blockComment.ReplaceAllString(string(data), " ")
	text = lineComment.ReplaceAllString(text, "")

	enums := make(map[string][]Constant)
	scope := make(map[string]int64)
	for _, m := range enumBlock.FindAllStringSubmatch(text, -1) {
		consts, err := parseBody(m[1], scope)
		if err != nil {
			return nil, fmt.Errorf("header: %s: %w", m[2], err)
		}
		enums[m[2]] = consts
	}
	if len(enums) == 0 {
		return nil, ErrNoEnums
	}
	return enums, nil
}

func parseBody(body string, scope map[string]int64) ([]Constant, error) {
	var consts []Constant
	next := int64(0)
	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, expr, explicit := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if explicit {
			v, err := eval(strings.TrimSpace(expr), scope)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			next = v
		}
		if next < math.MinInt32 || next > math.MaxInt32 {
			return nil, fmt.Errorf("%s = %d: %w", name, next, ErrOutOfRange)
		}
		scope[name] = next
		consts = append(consts, Constant{Name: name, Value: int32(next)})
		next++
	}
	return consts, nil
}

// eval resolves `a | b | ...` where each term is a literal, an earlier
// constant, or `x << y` of those.
func eval(expr string, scope map[string]int64) (int64, error) {
	expr = strings.Trim(expr, "() \t\n")
	var v int64
	for _, term := range strings.Split(expr, "|") {
		t, err := evalShift(strings.Trim(term, "() \t\n"), scope)
		if err != nil {
			return 0, err
		}
		v |= t
	}
	return v, nil
}

func evalShift(term string, scope map[string]int64) (int64, error) {
	lhs, rhs, shifted := strings.Cut(term, "<<")
	l, err := operand(strings.TrimSpace(lhs), scope)
	if err != nil || !shifted {
		return l, err
	}
	r, err := operand(strings.TrimSpace(rhs), scope)
	if err != nil {
		return 0, err
	}
	return l << r, nil
}

func operand(s string, scope map[string]int64) (int64, error) {
	if v, ok := scope[s]; ok {
		return v, nil
	}
	if s != "" && (s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
		v, err := strconv.ParseInt(strings.TrimRight(s, "uUlL"), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot evaluate %q: %w", s, err)
		}
		return v, nil
	}
	return 0, fmt.Errorf("cannot evaluate %q", s)
}

// Kind classifies a Mismatch.
type Kind int

const (
	// MissingEnum: the header has no typedef for a mirrored enumeration.
	MissingEnum Kind = iota
	// MissingConstant: a mirrored enumerator is absent from the header.
	MissingConstant
	// ValueDiffers: both sides declare the enumerator with different values.
	ValueDiffers
	// ExtraConstant: the header declares an enumerator the Go side lacks,
	// typically one added by a newer cairo.
	ExtraConstant
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case MissingEnum:
		return "missing enum"
	case MissingConstant:
		return "missing constant"
	case ValueDiffers:
		return "value differs"
	case ExtraConstant:
		return "extra constant"
	default:
		return "unknown"
	}
}

// Mismatch is one difference between the mirrored ABI and a header.
type Mismatch struct {
	Kind  Kind
	CType string
	CName string
	Want  int32 // value mirrored by package cairo
	Got   int32 // value declared by the header
}

func (m Mismatch) String() string {
	switch m.Kind {
	case MissingEnum:
		return fmt.Sprintf("%s: %s", m.CType, m.Kind)
	case ValueDiffers:
		return fmt.Sprintf("%s.%s: %s: mirrored %d, header %d", m.CType, m.CName, m.Kind, m.Want, m.Got)
	case ExtraConstant:
		return fmt.Sprintf("%s.%s: %s (header %d)", m.CType, m.CName, m.Kind, m.Got)
	default:
		return fmt.Sprintf("%s.%s: %s", m.CType, m.CName, m.Kind)
	}
}

// Compare checks every enumeration in abi against the parsed header.
// Synthetic values are skipped. An empty result means the mirror and the
// header agree bit for bit.
func Compare(abi []cairo.EnumABI, parsed map[string][]Constant) []Mismatch {
	var out []Mismatch
	for _, e := range abi {
		consts, ok := parsed[e.CType]
		if !ok {
			out = append(out, Mismatch{Kind: MissingEnum, CType: e.CType})
			continue
		}
		declared := make(map[string]int32, len(consts))
		for _, c := range consts {
			declared[c.Name] = c.Value
		}
		mirrored := make(map[string]bool, len(e.Values))
		for _, v := range e.Values {
			mirrored[v.CName] = true
			if v.Synthetic {
				continue
			}
			got, ok := declared[v.CName]
			switch {
			case !ok:
				out = append(out, Mismatch{Kind: MissingConstant, CType: e.CType, CName: v.CName, Want: v.Value})
			case got != v.Value:
				out = append(out, Mismatch{Kind: ValueDiffers, CType: e.CType, CName: v.CName, Want: v.Value, Got: got})
			}
		}
		for _, c := range consts {
			if !mirrored[c.Name] {
				out = append(out, Mismatch{Kind: ExtraConstant, CType: e.CType, CName: c.Name, Got: c.Value})
			}
		}
	}
	return out
}
