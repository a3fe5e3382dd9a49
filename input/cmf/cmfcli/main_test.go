package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/cmfc/core/parameters"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `DOC-TITLE Test *Document*
DOC-AUTHOR N. N.
DOC-CREATED 2021-04-01

=Intro

Some text with a @[http://example.org|link].

*one
**two
`

func writeTemp(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.cli")
	defer teardown()
	//
	opts, err := parseFlags([]string{"-A", "-o", "out.html", "doc.cmf"})
	require.NoError(t, err)
	assert.True(t, opts.dumpAST)
	assert.Equal(t, "out.html", opts.output)
	assert.Equal(t, "doc.cmf", opts.input)
	assert.Equal(t, "en", opts.lang)
	//
	_, err = parseFlags([]string{"a.cmf", "b.cmf"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = parseFlags([]string{"-dump", "xml", "a.cmf"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	opts, err = parseFlags([]string{"-repl"})
	require.NoError(t, err)
	assert.True(t, opts.repl)
}

func TestCompileHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.cli")
	defer teardown()
	//
	style := writeTemp(t, "style.css", "p { margin: 0; }")
	opts := &options{input: writeTemp(t, "doc.cmf", doc), style: style, lang: "fr"}
	var b bytes.Buffer
	require.NoError(t, compile(opts, &b))
	out := b.String()
	assert.Contains(t, out, `<html lang="fr">`)
	assert.Contains(t, out, "<style>p { margin: 0; }</style>")
	assert.Contains(t, out, `<div class="doc-title">Test <i>Document</i></div>`)
	assert.Contains(t, out, "<h1>Intro</h1>")
	assert.Contains(t, out, `<a href="http://example.org">link</a>`)
	assert.Equal(t, 2, strings.Count(out, "<ul>"))
}

func TestCompileToFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.cli")
	defer teardown()
	//
	output := filepath.Join(t.TempDir(), "out.txt")
	opts := &options{input: writeTemp(t, "doc.cmf", doc), output: output, dumpAST: true}
	var b bytes.Buffer
	require.NoError(t, compile(opts, &b))
	assert.Equal(t, 0, b.Len())
	dump, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dump), "Root: 0 - -\n  Title: 1 - Intro\n"))
}

func TestCompileMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.cli")
	defer teardown()
	//
	meta := writeTemp(t, "meta.cmf", "DOC-TITLE From Meta\n")
	opts := &options{input: writeTemp(t, "doc.cmf", "text"), meta: meta, lang: "en"}
	var b bytes.Buffer
	require.NoError(t, compile(opts, &b))
	assert.Contains(t, b.String(), "<title>From Meta</title>")
	//
	opts.meta = writeTemp(t, "bad.cmf", "DOC-TITLE X\nno directive\n")
	assert.Equal(t, core.ESYNTAX, core.Code(compile(opts, &b)))
}

func TestCompileSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.cli")
	defer teardown()
	//
	opts := &options{input: writeTemp(t, "doc.cmf", doc), xpath: "//ListItem[@arg=2]"}
	var b bytes.Buffer
	require.NoError(t, compile(opts, &b))
	assert.Equal(t, "ListItem: 2 - two\n\n", b.String())
}

func TestCompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.cli")
	defer teardown()
	//
	var b bytes.Buffer
	err := compile(&options{input: filepath.Join(t.TempDir(), "none.cmf")}, &b)
	assert.Equal(t, core.EMISSING, core.Code(err))
	err = compile(&options{input: writeTemp(t, "notitle.cmf", "text")}, &b)
	assert.Equal(t, core.EMISSING, core.Code(err))
	err = compile(&options{input: writeTemp(t, "bad.cmf", "DOC-TITLE T\n=======x")}, &b)
	assert.Equal(t, core.ESYNTAX, core.Code(err))
	err = compile(&options{input: writeTemp(t, "doc.cmf", doc), lang: "not a tag!"}, &b)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestInterpreter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.cli")
	defer teardown()
	//
	intp := &Intp{params: parameters.NewDocumentParameters()}
	out, quit := intp.execute("*hello* --- world")
	assert.False(t, quit)
	assert.Equal(t, "<i>hello</i> &mdash; world", out)
	intp.execute(":raw")
	out, _ = intp.execute(`a"b`)
	assert.Equal(t, "a%22b", out)
	intp.execute(":text")
	intp.execute(":rawtext 1")
	out, _ = intp.execute("*a*")
	assert.Equal(t, "*a*", out)
	intp.execute(":rawtext 0")
	out, _ = intp.execute(`:block =Head\n\npara`)
	assert.Equal(t, "Root: 0 - -\n  Title: 1 - Head\n  Paragraph: 0 - para", out)
	out, _ = intp.execute(":what")
	assert.Contains(t, out, ":quit")
	_, quit = intp.execute(":quit")
	assert.True(t, quit)
}
