/*
Package ast defines the node tree produced by scanning CMF markup.

The tree is built bottom-up by the block scanner and consumed read-only afterwards,
by the HTML backend, by debugging dumps and by XPath queries. Every node has a
kind, up to two text payloads, a kind-dependent integer argument and an ordered
list of children.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.ast'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.ast")
}
