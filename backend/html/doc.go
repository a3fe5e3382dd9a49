/*
Package html renders CMF node trees as HTML documents.

Text payloads of nodes have already been converted into HTML-safe strings by the
scanner, so rendering consists of wrapping them into element tags and putting
a document frame around them. The frame is built from the document parameters:

	<div class="doc-title">…</div>
	<div class="doc-subtitle">…</div>
	<div class="doc-author">…</div>
	<div class="doc-date">created (rev. revised)</div>
	… document content …
	<div class="doc-license">…</div>

Output is collected in a cord, with each leaf referencing the node it has been
generated for.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.html'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.html")
}
