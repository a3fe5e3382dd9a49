package cmf

import (
	"testing"

	"github.com/npillmayer/cmfc/input/cmf/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellTexts(row *ast.Node) []string {
	var texts []string
	for _, c := range row.Children {
		texts = append(texts, c.Text[0])
	}
	return texts
}

func TestTableContinuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.parse")
	defer teardown()
	//
	root, _ := parse(t, "---\n|a|b|\n|c|d|\n---\n")
	require.Equal(t, 1, root.ChildCount())
	table, _ := root.Child(0)
	assert.Equal(t, ast.Table, table.Kind)
	require.Equal(t, 1, table.ChildCount())
	row, _ := table.Child(0)
	assert.Equal(t, ast.TableRow, row.Kind)
	assert.Equal(t, []string{"a c", "b d"}, cellTexts(row))
}

func TestTableRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.parse")
	defer teardown()
	//
	root, _ := parse(t, "---\n|*a*|b|\n---\n|c|\\|d|\n|e|\n---\n\npara")
	require.Equal(t, 2, root.ChildCount())
	table, _ := root.Child(0)
	require.Equal(t, 2, table.ChildCount())
	r1, _ := table.Child(0)
	r2, _ := table.Child(1)
	assert.Equal(t, []string{"<i>a</i>", "b"}, cellTexts(r1))
	assert.Equal(t, []string{"c e", "|d"}, cellTexts(r2))
	p, _ := root.Child(1)
	assert.Equal(t, ast.Paragraph, p.Kind)
}

func TestTableAtEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.parse")
	defer teardown()
	//
	root, _ := parse(t, "---\n|a|\n---")
	table, _ := root.Child(0)
	assert.Equal(t, 1, table.ChildCount())
}

func TestTableErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.parse")
	defer teardown()
	//
	for i, tc := range []struct {
		in, msg string
	}{
		{"---x", "expected valid table after ---"},
		{"---\nx", "expected valid table after ---"},
		{"---\n|a", "incomplete table row data"},
		{"---\n|a\nb|", "incomplete table row data"},
		{"---\n|a|", "unterminated table row"},
		{"---\n|a|\n", "unterminated table row"},
		{"---\n|a|\nx", "expected row to either terminate or continue"},
		{"---\n|a|\n--x", "table row improperly terminated"},
		{"---\n|a|\n|b|c|\n---\n", "table row continuation exceeds column count"},
	} {
		perr := parseError(t, tc.in)
		assert.Equal(t, tc.msg, perr.Msg, "test case #%d: %q", i, tc.in)
	}
}
