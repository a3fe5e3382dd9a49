/*
Package astpath implements an xpath.NodeNavigator for CMF node trees.

We use this library for XPath queries:

	github.com/antchfx/xpath

The root node of a tree is the XPath document node. Every other node is an
element named after its kind, e.g.

	//Title[@arg=2]
	/UnorderedList/ListItem[@arg>1]
	//Footnote[@name='fn1']
	count(//TableCell)

Titles and list items carry their level or depth in attribute "arg", footnotes
carry their anchor name in attribute "name". The string value of an element is
its text (the body for footnotes), followed by the text of its descendants.

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package astpath

import (
	"strconv"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/cmfc/input/cmf/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmf.ast'.
func tracer() tracing.Trace {
	return tracing.Select("cmf.ast")
}

// Nodes do not link to their parents, so the navigator keeps the path from the
// root to the current node.
type step struct {
	parent *ast.Node
	inx    int // index of the child taken
}

// NodeNavigator is an xpath.NodeNavigator over a CMF node tree.
type NodeNavigator struct {
	root, current *ast.Node
	path          []step
	attr          int // attributes index
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// NewNavigator creates a new xpath.NodeNavigator for a node tree.
func NewNavigator(root *ast.Node) *NodeNavigator {
	return &NodeNavigator{
		root:    root,
		current: root,
		attr:    -1,
	}
}

// Current returns the node the navigator is positioned on. For attribute
// positions this is the element carrying the attribute.
func (nav *NodeNavigator) Current() *ast.Node {
	return nav.current
}

type attribute struct {
	key, value string
}

func attributes(n *ast.Node) []attribute {
	switch n.Kind {
	case ast.Title, ast.ListItem:
		return []attribute{{"arg", strconv.Itoa(n.Arg)}}
	case ast.Footnote:
		return []attribute{{"name", n.Text[0]}}
	}
	return nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.current == nav.root && len(nav.path) == 0 {
		return xpath.RootNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return attributes(nav.current)[nav.attr].key
	}
	return nav.current.Kind.String()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	if nav.attr != -1 {
		return attributes(nav.current)[nav.attr].value
	}
	return innerText(nav.current)
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	n.path = make([]step, len(nav.path))
	copy(n.path, nav.path)
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.path = nav.path[:0]
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if len(nav.path) == 0 {
		return false
	}
	top := nav.path[len(nav.path)-1]
	nav.path = nav.path[:len(nav.path)-1]
	nav.current = top.parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr >= len(attributes(nav.current))-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	child, ok := nav.current.Child(0)
	if !ok {
		return false
	}
	nav.path = append(nav.path, step{parent: nav.current, inx: 0})
	nav.current = child
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	return nav.moveToSibling(func(int) int { return 0 })
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveToSibling(func(i int) int { return i + 1 })
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveToSibling(func(i int) int { return i - 1 })
}

// moveToSibling moves to the sibling with index to(current index), if that is
// a different, existing child of the parent.
func (nav *NodeNavigator) moveToSibling(to func(int) int) bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	top := &nav.path[len(nav.path)-1]
	i := to(top.inx)
	if i == top.inx {
		return false
	}
	sibling, ok := top.parent.Child(i)
	if !ok {
		return false
	}
	top.inx = i
	nav.current = sibling
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	node, ok := other.(*NodeNavigator)
	if !ok || node.root != nav.root {
		return false
	}
	nav.current = node.current
	nav.attr = node.attr
	nav.path = append(nav.path[:0], node.path...)
	return true
}

func innerText(n *ast.Node) string {
	var b strings.Builder
	ast.Walk(n, func(node *ast.Node, depth int) error {
		if node.Kind == ast.Footnote {
			b.WriteString(node.Text[1])
		} else {
			b.WriteString(node.Text[0])
		}
		return nil
	})
	return b.String()
}
