/*
Package option provides optional values and a small pattern-matching facility for them.

Document metadata is sparse: most fields of a document header may or may not be
present. Rendering code matches on presence instead of testing for empty strings:

    s, _ := params.Get(parameters.P_REVISED).Match(option.Maybe{
        option.None: "",
        option.Some: func(v interface{}) (interface{}, error) { … },
    })

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.core'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.core")
}
