/*
Package astdebug writes CMF node trees in formats suitable for debugging.

Dump writes one line per node, DumpGo writes the Go structure of a tree,
and ToGraphViz creates input for Graphviz' dot.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package astdebug

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/npillmayer/cmfc/input/cmf/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.ast'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.ast")
}

// Dump writes a tree to w, one line per node:
//
//     Root: 0 - -
//       Title: 1 - Hello
//       UnorderedList: 0 - -
//         ListItem: 1 - a
//
// Children are indented by two spaces per level. Footnotes print their anchor
// name and body, separated by " | ".
func Dump(w io.Writer, root *ast.Node) error {
	return ast.Walk(root, func(n *ast.Node, depth int) error {
		text := n.Text[0]
		if n.Kind == ast.Footnote {
			text += " | " + n.Text[1]
		}
		if text == "" {
			text = "-"
		}
		_, err := fmt.Fprintf(w, "%s%s: %d - %s\n", strings.Repeat("  ", depth), n.Kind, n.Arg, text)
		return err
	})
}

// DumpGo writes the Go structure of a tree to w.
func DumpGo(w io.Writer, root *ast.Node) error {
	_, err := pp.Fprintln(w, root)
	return err
}
