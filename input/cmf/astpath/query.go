package astpath

import (
	"github.com/antchfx/xpath"
	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/cmfc/input/cmf/ast"
)

// Select returns the nodes of the tree matching an XPath expression, in
// document order. Attribute matches yield the element carrying the attribute.
func Select(root *ast.Node, expr string) ([]*ast.Node, error) {
	xp, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return collect(xp.Select(NewNavigator(root))), nil
}

// Evaluate evaluates an XPath expression on the tree. The result is a float64,
// a string, a bool or a []*ast.Node, depending on the expression.
func Evaluate(root *ast.Node, expr string) (interface{}, error) {
	xp, err := compile(expr)
	if err != nil {
		return nil, err
	}
	result := xp.Evaluate(NewNavigator(root))
	if iter, ok := result.(*xpath.NodeIterator); ok {
		return collect(iter), nil
	}
	return result, nil
}

func compile(expr string) (*xpath.Expr, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	return xp, nil
}

func collect(iter *xpath.NodeIterator) []*ast.Node {
	var nodes []*ast.Node
	seen := make(map[*ast.Node]bool)
	for iter.MoveNext() {
		nav, ok := iter.Current().(*NodeNavigator)
		if !ok || seen[nav.current] {
			continue
		}
		seen[nav.current] = true
		nodes = append(nodes, nav.current)
	}
	tracer().Debugf("xpath selected %d nodes", len(nodes))
	return nodes
}
