/*
Package parameters holds the document parameters collected while scanning markup.

Document parameters are set by DOC directives, either from a separate metadata
source or from the markup itself. Besides the document header fields there is
the raw-text mode flag, which may be toggled at any point while scanning and
changes the behaviour of every subsequent inline transduction.

A DocumentParameters value is the parser context: clients create one per document
and thread it through all scanning calls. There is no global state, thus
multiple documents may be processed side by side.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/cmfc/core/option"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.core'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.core")
}

// DocParameter identifies a document header field.
type DocParameter int

const (
	none DocParameter = iota
	P_TITLE
	P_SUBTITLE
	P_AUTHOR
	P_CREATED
	P_REVISED
	P_LICENSE
	P_FAVICON
	P_STOPPER
)

var parameterNames = [P_STOPPER]string{
	"none", "P_TITLE", "P_SUBTITLE", "P_AUTHOR", "P_CREATED", "P_REVISED",
	"P_LICENSE", "P_FAVICON",
}

func (p DocParameter) String() string {
	if p < 0 || p >= P_STOPPER {
		return "P_UNKNOWN"
	}
	return parameterNames[p]
}

// DocumentParameters is a set of registers for document header fields, plus the
// raw-text mode flag.
type DocumentParameters struct {
	base    [P_STOPPER]option.StringT
	rawText bool
}

// ----------------------------------------------------------------------

// NewDocumentParameters creates an empty set of document parameters with
// raw-text mode switched off.
func NewDocumentParameters() *DocumentParameters {
	return &DocumentParameters{}
}

// Set stores value for key. Redefinition silently overwrites a previous value.
func (params *DocumentParameters) Set(key DocParameter, value string) {
	checkKey(key)
	if !params.base[key].IsNone() {
		tracer().Debugf("redefining document parameter %s", key)
	}
	params.base[key] = option.SomeString(value)
}

// Get returns the optional value for key.
func (params *DocumentParameters) Get(key DocParameter) option.StringT {
	checkKey(key)
	return params.base[key]
}

// S returns the value for key, or "" if unset.
func (params *DocumentParameters) S(key DocParameter) string {
	return params.Get(key).Unwrap()
}

// IsSet is true if a value for key has been set.
func (params *DocumentParameters) IsSet(key DocParameter) bool {
	return !params.Get(key).IsNone()
}

// RawText returns the current state of raw-text mode.
func (params *DocumentParameters) RawText() bool {
	return params.rawText
}

// SetRawText switches raw-text mode on or off.
func (params *DocumentParameters) SetRawText(on bool) {
	params.rawText = on
}

// Validate checks for the presence of mandatory parameters. It is called once,
// after all scanning has completed.
// A title is mandatory, and a revision date requires a creation date.
func (params *DocumentParameters) Validate() error {
	if !params.IsSet(P_TITLE) {
		return core.Error(core.EMISSING, "document missing a title")
	}
	if params.IsSet(P_REVISED) && !params.IsSet(P_CREATED) {
		return core.Error(core.EINVALID, "document has a revision date but no creation date")
	}
	return nil
}

func checkKey(key DocParameter) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of document parameters")
	}
}
