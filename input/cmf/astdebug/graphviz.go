package astdebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/cmfc/input/cmf/ast"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type gnode struct {
	N    *ast.Node
	Name string
}

type gedge struct {
	N1, N2 gnode
}

// ToGraphViz creates a graphical representation of a node tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root *ast.Node, w io.Writer) error {
	header, err := template.New("nodeTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       label,
			"isleaf":      isLeaf,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*ast.Node]string, 256)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(n *ast.Node, w io.Writer, dict map[*ast.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, gnode{n, name}); err != nil {
		return err
	}
	tracer().Debugf("node %s = %v", name, n)
	for _, child := range n.Children {
		if err := nodes(child, w, dict, gparams); err != nil {
			return err
		}
		e := gedge{gnode{n, name}, gnode{child, dict[child]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func label(n *ast.Node) string {
	switch n.Kind {
	case ast.Title, ast.ListItem:
		return fmt.Sprintf("\"%s %d\"", n.Kind, n.Arg)
	case ast.Footnote:
		return fmt.Sprintf("\"%s %s\"", n.Kind, escape(n.Text[0]))
	}
	return "\"" + n.Kind.String() + "\""
}

func isLeaf(n *ast.Node) bool {
	return n.ChildCount() == 0 && n.Kind != ast.Root
}

func shortText(n *ast.Node) string {
	txt := n.Text[0]
	if n.Kind == ast.Footnote {
		txt = n.Text[1]
	}
	if len(txt) > 12 {
		txt = txt[:12] + "…"
	}
	return "\"" + label(n)[1:len(label(n))-1] + "\\n" + escape(txt) + "\""
}

func escape(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if isleaf .N }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
