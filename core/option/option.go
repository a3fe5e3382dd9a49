package option

import (
	"errors"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a match pattern which distinguishes only between `Some` (a value
// is set), `None` (no value) and `Error` (a previous case returned an error).
type Maybe map[MaybeOption]interface{}

// Of is a match pattern which first tries concrete values as keys and then falls
// back to `Some`, `None` and `Error`.
type Of map[interface{}]interface{}

// Type is the interface for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match matches o against choices, which must be either of type Of or Maybe.
//
// Values of a choices map are either plain values, which are returned as-is,
// or functions
//
//     func(interface{}) (interface{}, error)
//     func(interface{}, MaybeOption) (interface{}, error)
//
// which are called with o.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// Match matches o against concrete values first, then against Some/None.
func (of Of) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		expr, ok := of[None]
		if !ok {
			return nil, ErrCannotMatchUnsetValue
		}
		return evaluate(expr, o, None)
	}
	err = ErrCannotMatchValue
	matched := false
	for k, expr := range of {
		if _, isLabel := k.(MaybeOption); isLabel {
			continue
		}
		if o.Equals(k) {
			matched = true
			value, err = evaluate(expr, o, Some)
			break
		}
	}
	if expr, ok := of[Some]; ok && !matched {
		value, err = evaluate(expr, o, Some)
	}
	if err != nil {
		tracer().Debugf("option match error: %v", err)
		if expr, ok := of[Error]; ok {
			value, err = evaluate(expr, o, Error)
		}
	}
	return value, err
}

// Match matches o against Some/None.
func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		expr, ok := maybe[None]
		if !ok {
			return nil, ErrCannotMatchUnsetValue
		}
		return evaluate(expr, o, None)
	}
	expr, ok := maybe[Some]
	if !ok {
		return nil, ErrCannotMatchValue
	}
	if value, err = evaluate(expr, o, Some); err != nil {
		tracer().Debugf("option match error: %v", err)
		if expr, ok := maybe[Error]; ok {
			value, err = evaluate(expr, o, Error)
		}
	}
	return value, err
}

func evaluate(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          "":          option.Fail(errors.New("empty value is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	return func(interface{}) (interface{}, error) {
		return nil, err
	}
}

// --- StringT ---------------------------------------------------------------

// StringT is an optional string. The zero value is unset.
type StringT struct {
	value string
	set   bool
}

// SomeString creates an optional string with value s.
func SomeString(s string) StringT {
	return StringT{value: s, set: true}
}

// String creates an unset optional string.
func String() StringT {
	return StringT{}
}

// Match matches o against choices (see function Match).
func (o StringT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

// Equals is true if o is set and other is a string (or StringT) with the same value.
func (o StringT) Equals(other interface{}) bool {
	switch s := other.(type) {
	case string:
		return o.set && o.value == s
	case StringT:
		return o == s
	}
	return false
}

// IsNone returns true if o is unset.
func (o StringT) IsNone() bool {
	return !o.set
}

// Unwrap returns the value of o, or "" if o is unset.
func (o StringT) Unwrap() string {
	return o.value
}

// UnwrapOr returns the value of o, or def if o is unset.
func (o StringT) UnwrapOr(def string) string {
	if !o.set {
		return def
	}
	return o.value
}

func (o StringT) String() string {
	if !o.set {
		return "String.None"
	}
	return o.value
}

var _ Type = StringT{}
