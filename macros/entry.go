package macros

import (
	"fmt"
	"strconv"
	"strings"
)

type valueType int

const (
	vtUndefined valueType = iota
	vtString
	vtNumber
)

// Value holds the value of a macro, either a string or a number. The zero
// Value is undefined; a token whose entry has an undefined value is left
// unchanged.
type Value struct {
	vt  valueType
	str string
	num float64
}

// StringValue returns a Value holding the string
func StringValue(s string) Value {
	return Value{vt: vtString, str: s}
}

// NumberValue returns a Value holding the number
func NumberValue(f float64) Value {
	return Value{vt: vtNumber, num: f}
}

// IsDefined reports whether the Value has been set
func (v Value) IsDefined() bool {
	return v.vt != vtUndefined
}

// IsNumber reports whether the Value holds a number
func (v Value) IsNumber() bool {
	return v.vt == vtNumber
}

// String returns the value as text. Numbers are given in their shortest
// form, so 100 is "100" and 0.5 is "0.5". An undefined value gives the
// empty string.
func (v Value) String() string {
	switch v.vt {
	case vtString:
		return v.str
	case vtNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

// Float returns the value as a number. A string value is parsed (after
// removing any surrounding space) and an error is returned if it is not a
// valid number.
func (v Value) Float() (float64, error) {
	switch v.vt {
	case vtNumber:
		return v.num, nil
	case vtString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", v.str)
		}
		return f, nil
	}
	return 0, fmt.Errorf("the value is undefined")
}

// Formatter converts a macro value into the text to be substituted. The
// locale is the one given to the Evaluator and may be empty.
type Formatter func(v Value, locale string) (string, error)

// Entry gives the value to be used for a macro key in an evaluation.
//
// If Unavailable is true the key is known but there is no data for it; any
// token with this key causes the evaluation to report it as missing.
// Otherwise, if the Value is defined, the token is replaced by the value as
// converted by the Formatter or, if there is no Formatter, by the value's
// String form.
type Entry struct {
	Key         string
	Value       Value
	Formatter   Formatter
	Unavailable bool
}

// Unavailable returns an Entry recording that there is no data for the key
func Unavailable(key string) Entry {
	return Entry{Key: key, Unavailable: true}
}

// text returns the substitution text for the entry
func (e Entry) text(locale string) (string, error) {
	if e.Formatter == nil {
		return e.Value.String(), nil
	}
	return e.Formatter(e.Value, locale)
}
