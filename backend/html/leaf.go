package html

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cmfc/input/cmf/ast"
	"github.com/npillmayer/cords"
)

// Leaf is the leaf type of cords created by RenderCord. Leaves of the document
// frame have a nil node.
type Leaf struct {
	node    *ast.Node
	content string
}

// Node returns the node the leaf's content has been generated for.
func (l Leaf) Node() *ast.Node {
	return l.node
}

// Weight of a leaf is its string length in bytes.
func (l Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l Leaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{
		node:    l.node,
		content: l.content[:i],
	}
	right := &Leaf{
		node:    l.node,
		content: l.content[i:],
	}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = Leaf{}

func (l Leaf) dbgString() string {
	k := "frame"
	if l.node != nil {
		k = l.node.Kind.String()
	}
	cont := strings.Replace(l.String(), "\n", "_", -1)
	return fmt.Sprintf("{<%s> \"%s\"}", k, cont)
}
