/*
Package inline converts spans of CMF text into HTML.

Escaping and interpretation of inline markup happen in a single pass: the
transducer walks a byte span left to right, emits HTML entities for characters
which must not appear literally, and translates inline directives:

    @[url|label]     link
    [^anchor|label]  footnote reference
    `code`           code span
    **bold**         bold
    *italic*         italic
    ---  --  //      em dash, en dash, line break
    \x               escaped character x

Unterminated directives are closed at the end of the span, thus every returned
string is self-contained HTML. Transduction never fails.

In raw mode (image sources, footnote anchors, and the URL part of links) no
directives are interpreted and only double quotes are escaped, as "%22".
If raw-text mode is switched on for a document, spans are copied verbatim.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.inline'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.inline")
}
