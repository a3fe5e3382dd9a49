package html

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/cmfc/core/option"
	"github.com/npillmayer/cmfc/core/parameters"
	"github.com/npillmayer/cmfc/input/cmf/ast"
	"github.com/npillmayer/cords"
	"golang.org/x/text/language"
)

// Options for rendering.
type Options struct {
	Stylesheet string       // CSS text to include in the document head
	Language   language.Tag // language of the document, defaults to English
}

// Render writes the HTML document for a node tree to w.
func Render(w io.Writer, root *ast.Node, params *parameters.DocumentParameters, opts Options) error {
	text, err := RenderCord(root, params, opts)
	if err != nil {
		return err
	}
	return text.EachLeaf(func(l cords.Leaf, pos uint64) error {
		_, err := io.WriteString(w, l.String())
		return err
	})
}

// RenderCord creates the HTML document for a node tree as a cord.
func RenderCord(root *ast.Node, params *parameters.DocumentParameters, opts Options) (cords.Cord, error) {
	if root == nil || root.Kind != ast.Root || params == nil {
		return cords.Cord{}, core.WrapError(cords.ErrIllegalArguments, core.EINVALID,
			"can only render a document root with parameters")
	}
	r := &renderer{b: cords.NewBuilder(), params: params, opts: opts}
	r.head()
	for _, n := range root.Children {
		r.node(n)
	}
	r.tail()
	tracer().Debugf("rendered %d top-level nodes", root.ChildCount())
	return r.b.Cord(), nil
}

type renderer struct {
	b      *cords.Builder
	params *parameters.DocumentParameters
	opts   Options
}

// emit appends a leaf for node n. n is nil for parts of the document frame.
func (r *renderer) emit(n *ast.Node, format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if s == "" {
		return
	}
	r.b.Append(&Leaf{node: n, content: s})
}

func (r *renderer) lang() string {
	if r.opts.Language == language.Und {
		return language.English.String()
	}
	return r.opts.Language.String()
}

func (r *renderer) head() {
	title := r.params.S(parameters.P_TITLE)
	r.emit(nil, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n", r.lang())
	r.emit(nil, "<title>%s</title>\n", title)
	if r.params.IsSet(parameters.P_FAVICON) {
		r.emit(nil, "<link rel=\"icon\" href=\"%s\">\n", r.params.S(parameters.P_FAVICON))
	}
	if r.opts.Stylesheet != "" {
		r.emit(nil, "<style>%s</style>\n", r.opts.Stylesheet)
	}
	r.emit(nil, "</head>\n<body>\n")
	r.emit(nil, "<div class=\"doc-title\">%s</div>\n", title)
	r.div("doc-subtitle", parameters.P_SUBTITLE)
	r.div("doc-author", parameters.P_AUTHOR)
	if r.params.IsSet(parameters.P_CREATED) {
		rev, _ := r.params.Get(parameters.P_REVISED).Match(option.Maybe{
			option.None: "",
			option.Some: func(v interface{}) (interface{}, error) {
				return " (rev. " + v.(option.StringT).Unwrap() + ")", nil
			},
		})
		r.emit(nil, "<div class=\"doc-date\">%s%s</div>\n", r.params.S(parameters.P_CREATED), rev)
	}
}

func (r *renderer) tail() {
	r.div("doc-license", parameters.P_LICENSE)
	r.emit(nil, "</body>\n</html>\n")
}

func (r *renderer) div(class string, p parameters.DocParameter) {
	if r.params.IsSet(p) {
		r.emit(nil, "<div class=\"%s\">%s</div>\n", class, r.params.S(p))
	}
}

func (r *renderer) node(n *ast.Node) {
	switch n.Kind {
	case ast.Title:
		r.emit(n, "<h%d>%s</h%d>\n", n.Arg, n.Text[0], n.Arg)
	case ast.Paragraph:
		r.emit(n, "<p>%s</p>\n", n.Text[0])
	case ast.UnorderedList:
		r.list(n, "ul")
	case ast.OrderedList:
		r.list(n, "ol")
	case ast.Image:
		r.emit(n, "<img src=\"%s\">\n", n.Text[0])
	case ast.Blockquote:
		r.emit(n, "<blockquote>%s</blockquote>\n", n.Text[0])
	case ast.LongCode:
		r.emit(n, "<pre><code>%s</code></pre>\n", n.Text[0])
	case ast.Table:
		r.table(n)
	case ast.Footnote:
		r.emit(n, "<div class=\"footnote\" id=\"%s\"><sup>[%s]</sup> %s</div>\n",
			n.Text[0], n.Text[0], n.Text[1])
	default:
		tracer().Errorf("cannot render node of kind %s at top level", n.Kind)
	}
}

// list emits list items, opening a list element for every level the nesting
// depth rises and closing one for every level it falls.
func (r *renderer) list(n *ast.Node, tag string) {
	open := arraystack.New()
	for _, item := range n.Children {
		for open.Size() < item.Arg {
			open.Push(tag)
			r.emit(n, "<%s>\n", tag)
		}
		for open.Size() > item.Arg {
			t, _ := open.Pop()
			r.emit(n, "</%s>\n", t)
		}
		r.emit(item, "<li>%s</li>\n", item.Text[0])
	}
	for !open.Empty() {
		t, _ := open.Pop()
		r.emit(n, "</%s>\n", t)
	}
}

func (r *renderer) table(n *ast.Node) {
	r.emit(n, "<table>\n")
	for _, row := range n.Children {
		r.emit(row, "<tr>")
		for _, cell := range row.Children {
			r.emit(cell, "<td>%s</td>", cell.Text[0])
		}
		r.emit(row, "</tr>\n")
	}
	r.emit(n, "</table>\n")
}
