package report

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindMissing marks an absent value (empty cell, YAML null, NaN).
	KindMissing Kind = iota
	// KindNumber is a floating-point measurement.
	KindNumber
	// KindInteger is an integral value, typically a configuration knob.
	KindInteger
	// KindBool is a boolean flag.
	KindBool
	// KindText is any other value, kept verbatim.
	KindText
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Value is a single report cell. The variant is fixed when the value is
// parsed, so presentation code switches on Kind instead of inspecting types.
// The zero Value is missing.
type Value struct {
	kind Kind
	num  float64
	i    int64
	b    bool
	s    string
}

// Missing returns an absent value.
func Missing() Value { return Value{} }

// Number returns a floating-point value. NaN is stored as missing.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Integer returns an integral value.
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Text returns a verbatim text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric value of a Number or Integer. ok is false for
// every other kind.
func (v Value) Float() (f float64, ok bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindInteger:
		return float64(v.i), true
	}
	return 0, false
}

// Int returns the integral value; ok is false unless v is an Integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInteger }

// Truth returns the boolean value; ok is false unless v is a Bool.
func (v Value) Truth() (b bool, ok bool) { return v.b, v.kind == KindBool }

// String returns the default string form of v. Missing values are empty,
// booleans use the True/False spelling of the result files.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatFloat(v.num)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindText:
		return v.s
	}
	return ""
}

// Equal reports whether v and o hold the same variant and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindInteger:
		return v.i == o.i
	case KindBool:
		return v.b == o.b
	case KindText:
		return v.s == o.s
	}
	return true
}

// missingTokens are the cell spellings read as absent values.
var missingTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"NaN":  {},
	"-nan": {},
	"-NaN": {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"<NA>": {},
	"null": {},
	"NULL": {},
	"None": {},
}

// ParseCell decides the variant of a raw CSV cell.
//
// Empty and NaN-like spellings are missing, true/false (any case) are
// booleans, integer literals are integers, float literals are numbers and
// anything else is text.
func ParseCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if _, ok := missingTokens[s]; ok {
		return Missing()
	}
	if strings.EqualFold(s, "true") {
		return Bool(true)
	}
	if strings.EqualFold(s, "false") {
		return Bool(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Integer(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}

// formatFloat writes f in shortest round-trip form, always keeping a
// decimal point or exponent so the value reloads as a Number.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) {
		if f > 0 {
			return "inf"
		}
		return "-inf"
	}
	abs := math.Abs(f)
	var s string
	if abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
