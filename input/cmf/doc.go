/*
Package cmf scans CMF markup into a node tree.

CMF is a small, line-oriented markup format. Blocks are recognized by a prefix at
the start of a line:

    DOC-TITLE …        document parameters (DOC-SUBTITLE, DOC-AUTHOR, …, DOC-RAW-TEXT 0|1)
    ==Heading          heading of level 2 (up to 6)
    *item  **nested    unordered list
    #item  ##nested    ordered list
    ␣␣␣␣␣␣quote        blockquote (six spaces)
    ```                long code, up to a closing ``` line
    ---                table, rows of |cell|cell| lines terminated by a dash line
    !()path            image
    [^name]text        footnote definition
    text               paragraph

Blocks extend up to the next blank line. Text payloads are passed through the
inline transducer (package inline) before they are stored in the tree.

Scanning is strict: a single malformed construct aborts the whole parse with a
*ParseError, which reports the byte offset and an excerpt of the offending line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cmf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.parse'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.parse")
}
