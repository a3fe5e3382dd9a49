package ast

import (
	"errors"
	"fmt"
)

// Kind is the type of a node.
type Kind uint8

// Node kinds
const (
	Root Kind = iota
	Title
	Paragraph
	UnorderedList
	OrderedList
	ListItem
	Image
	Blockquote
	Table
	TableRow
	TableCell
	Footnote
	LongCode
	kindCount
)

var kindNames = [kindCount]string{
	"Root", "Title", "Paragraph", "UnorderedList", "OrderedList", "ListItem",
	"Image", "Blockquote", "Table", "TableRow", "TableCell", "Footnote", "LongCode",
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// KindFromString returns the kind with the given name.
func KindFromString(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Root, false
}

// Node is a node of the markup tree.
//
// Text[0] is the general payload. Text[1] is used by Footnote nodes only, which
// hold the anchor name in Text[0] and the footnote body in Text[1].
// Arg is the heading level for Title nodes and the nesting depth for ListItem nodes.
type Node struct {
	Kind     Kind
	Text     [2]string
	Arg      int
	Children []*Node
}

// New creates a node of kind k without payload.
func New(k Kind) *Node {
	return &Node{Kind: k}
}

// NewText creates a node of kind k with text payload and argument.
func NewText(k Kind, text string, arg int) *Node {
	return &Node{Kind: k, Text: [2]string{text}, Arg: arg}
}

// AddChild appends child as the last child of n and returns n.
func (n *Node) AddChild(child *Node) *Node {
	if child == nil {
		tracer().Errorf("attempt to add nil child to %s node", n.Kind)
		return n
	}
	n.Children = append(n.Children, child)
	return n
}

// Child returns the child at position i.
func (n *Node) Child(i int) (*Node, bool) {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil, false
	}
	return n.Children[i], true
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%d)[%d]", n.Kind, n.Arg, len(n.Children))
}

// --- Walking the tree ------------------------------------------------------

// Visitor is called for every node during a walk, together with the node's depth
// (0 for the start node).
type Visitor func(n *Node, depth int) error

// SkipChildren may be returned by a Visitor to prevent a walk from descending into
// the children of the current node.
var SkipChildren = errors.New("skip children")

// Walk traverses the tree rooted at n in pre-order. A visitor error other than
// SkipChildren aborts the walk and is returned.
func Walk(n *Node, visit Visitor) error {
	return walk(n, 0, visit)
}

func walk(n *Node, depth int, visit Visitor) error {
	if n == nil {
		return nil
	}
	if err := visit(n, depth); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, ch := range n.Children {
		if err := walk(ch, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}
