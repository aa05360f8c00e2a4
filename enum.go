package cairo

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Enum is implemented by every enumeration mirrored from cairo.h.
// The underlying type is always int32, the width of a C enum on every
// platform cairo supports.
type Enum interface {
	~int32
	Valid() bool
	String() string
}

// variant is one named value of a mirrored enumeration.
type variant[T ~int32] struct {
	value T
	name  string // Go-facing name, e.g. "Round"
	c     string // C identifier suffix, e.g. "ROUND"
}

// enumTable holds the header-ordered variants of one enumeration and
// the folded name index used by Parse and UnmarshalText.
type enumTable[T ~int32] struct {
	goType    string
	cType     string
	cPrefix   string
	variants  []variant[T]
	byValue   map[T]int
	byName    map[string]T
	synthetic map[T]bool
}

var folder = cases.Fold()

func fold(s string) string {
	return folder.String(strings.TrimSpace(s))
}

func newEnumTable[T ~int32](goType, cType, cPrefix string, vs ...variant[T]) *enumTable[T] {
	t := &enumTable[T]{
		goType:   goType,
		cType:    cType,
		cPrefix:  cPrefix,
		variants: vs,
		byValue:  make(map[T]int, len(vs)),
		byName:   make(map[string]T, 3*len(vs)),
	}
	for i, v := range vs {
		if _, dup := t.byValue[v.value]; !dup {
			t.byValue[v.value] = i
		}
		t.byName[fold(v.name)] = v.value
		t.byName[fold(v.c)] = v.value
		t.byName[fold(cPrefix+v.c)] = v.value
	}
	return t
}

// withSynthetic marks values the Go API names but cairo.h does not
// declare, such as the empty flag set.
func (t *enumTable[T]) withSynthetic(vs ...T) *enumTable[T] {
	t.synthetic = make(map[T]bool, len(vs))
	for _, v := range vs {
		t.synthetic[v] = true
	}
	return t
}

func (t *enumTable[T]) known(v T) bool {
	_, ok := t.byValue[v]
	return ok
}

// name returns the Go-facing name of v, or "Type(n)" for values the
// table does not know.
func (t *enumTable[T]) name(v T) string {
	if i, ok := t.byValue[v]; ok {
		return t.variants[i].name
	}
	return t.goType + "(" + strconv.FormatInt(int64(v), 10) + ")"
}

func (t *enumTable[T]) parse(s string) (T, error) {
	if v, ok := t.byName[fold(s)]; ok {
		return v, nil
	}
	return 0, &ParseError{Type: t.goType, Text: s}
}

func (t *enumTable[T]) abi() EnumABI {
	e := EnumABI{
		CType:  t.cType,
		GoType: t.goType,
		Values: make([]ValueABI, len(t.variants)),
	}
	for i, v := range t.variants {
		e.Values[i] = ValueABI{
			CName:     t.cPrefix + v.c,
			Name:      v.name,
			Value:     int32(v.value),
			Synthetic: t.synthetic[v.value],
		}
	}
	return e
}

// Parse resolves a variant name. It accepts the Go name ("Round"), the C
// suffix ("ROUND") and the full C identifier ("CAIRO_LINE_CAP_ROUND"),
// compared after Unicode case folding.
func Parse[T Enum](s string) (T, error) {
	var v T
	u, ok := any(&v).(interface{ UnmarshalText([]byte) error })
	if !ok {
		return v, &ParseError{Type: typeName(v), Text: s}
	}
	if err := u.UnmarshalText([]byte(s)); err != nil {
		return v, err
	}
	return v, nil
}

// Decode converts a raw discriminant received from cairo into T.
//
// By default decoding is strict: a value that is not a known variant
// yields a *DecodeError matching ErrUnknownValue, and the status sentinel
// StatusLastStatus additionally matches ErrSentinelStatus. With Lenient
// the raw value is returned unchanged.
func Decode[T Enum](raw int32, opts ...DecodeOption) (T, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := T(raw)
	if v.Valid() {
		return v, nil
	}
	if o.lenient {
		o.logger.Warn("cairo: preserving unknown discriminant",
			"type", typeName(v), "raw", raw)
		return v, nil
	}
	s, isStatus := any(v).(Status)
	return v, &DecodeError{
		Type:     typeName(v),
		Raw:      raw,
		Sentinel: isStatus && s == StatusLastStatus,
	}
}

func typeName[T Enum](v T) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "cairo.")
}
