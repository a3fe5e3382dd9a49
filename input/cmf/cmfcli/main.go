/*
Command cmfc compiles CMF markup into an HTML document.

Usage:

	cmfc [options] file

Options:

	-A            dump the node tree of the parsed markup
	-dump pp|dot  dump the node tree as a Go structure or in GraphViz DOT format
	-o file       write output to file instead of stdout
	-s file|URL   include a stylesheet
	-m file       read DOC directives from a metadata file first
	-select expr  print the nodes matching an XPath expression
	-lang tag     document language (default "en")
	-trace level  trace level [Debug|Info|Error]
	-repl         start an interactive inline markup playground

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/cmfc/backend/html"
	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/cmfc/core/locate/resources"
	"github.com/npillmayer/cmfc/core/parameters"
	"github.com/npillmayer/cmfc/input/cmf"
	"github.com/npillmayer/cmfc/input/cmf/ast"
	"github.com/npillmayer/cmfc/input/cmf/astdebug"
	"github.com/npillmayer/cmfc/input/cmf/astpath"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'cmf.cli'
func tracer() tracing.Trace {
	return tracing.Select("cmf.cli")
}

// options collects the command line flags.
type options struct {
	dumpAST bool
	dump    string
	output  string
	style   string
	meta    string
	xpath   string
	lang    string
	trace   string
	repl    bool
	input   string
}

func main() {
	initDisplay()
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		pterm.Error.Println(core.Describe(err))
		os.Exit(1)
	}
	if err = setupTracing(opts.trace); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	if opts.repl {
		if err = startREPL(); err != nil {
			pterm.Error.Println(core.Describe(err))
			os.Exit(1)
		}
		return
	}
	if err = compile(opts, os.Stdout); err != nil {
		pterm.Error.Println(core.Describe(err))
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("cmfc", flag.ContinueOnError)
	fs.BoolVar(&opts.dumpAST, "A", false, "dump the node tree of the parsed markup")
	fs.StringVar(&opts.dump, "dump", "", "dump the node tree [pp|dot]")
	fs.StringVar(&opts.output, "o", "", "write output to file")
	fs.StringVar(&opts.style, "s", "", "stylesheet file or URL")
	fs.StringVar(&opts.meta, "m", "", "metadata file with DOC directives")
	fs.StringVar(&opts.xpath, "select", "", "print nodes matching an XPath expression")
	fs.StringVar(&opts.lang, "lang", "en", "document language")
	fs.StringVar(&opts.trace, "trace", "Error", "trace level [Debug|Info|Error]")
	fs.BoolVar(&opts.repl, "repl", false, "interactive inline markup playground")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.dump != "" && opts.dump != "pp" && opts.dump != "dot" {
		return nil, core.Error(core.EINVALID, "unknown dump format %q", opts.dump)
	}
	if opts.repl {
		return opts, nil
	}
	if fs.NArg() != 1 {
		return nil, core.Error(core.EINVALID, "expected a single markup file argument")
	}
	opts.input = fs.Arg(0)
	return opts, nil
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"app-key":             "cmfc",
		"trace.cmf.cli":       level,
		"trace.cmf.parse":     level,
		"trace.cmf.inline":    level,
		"trace.cmf.ast":       level,
		"trace.cmf.html":      level,
		"trace.cmf.resources": level,
		"trace.cmf.core":      level,
	}
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// compile runs the pipeline
//
//     metadata → markup → validation → dump | selection | HTML
//
// writing to stdout unless an output file has been given.
func compile(opts *options, stdout io.Writer) (err error) {
	params := parameters.NewDocumentParameters()
	if opts.meta != "" {
		meta, err := readFile(opts.meta)
		if err != nil {
			return err
		}
		if err = cmf.ParseMetadata(meta, params, cmf.WithSourceName(opts.meta)); err != nil {
			return err
		}
	}
	src, err := readFile(opts.input)
	if err != nil {
		return err
	}
	root, err := cmf.Parse(src, params, cmf.WithSourceName(opts.input))
	if err != nil {
		return err
	}
	if err = params.Validate(); err != nil {
		return err
	}
	out := stdout
	if opts.output != "" {
		var f *os.File
		if f, err = os.Create(opts.output); err != nil {
			return core.WrapError(err, core.EINVALID, "cannot open output file %s", opts.output)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	switch {
	case opts.dumpAST:
		return astdebug.Dump(out, root)
	case opts.dump == "pp":
		return astdebug.DumpGo(out, root)
	case opts.dump == "dot":
		return astdebug.ToGraphViz(root, out)
	case opts.xpath != "":
		return selectNodes(out, root, opts.xpath)
	}
	return render(out, root, params, opts)
}

func render(out io.Writer, root *ast.Node, params *parameters.DocumentParameters, opts *options) error {
	lang, err := language.Parse(opts.lang)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "invalid language tag %q", opts.lang)
	}
	htmlOpts := html.Options{Language: lang}
	if opts.style != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sheet, err := resources.ResolveStylesheet(opts.style).StylesheetContext(ctx)
		if err != nil {
			return err
		}
		htmlOpts.Stylesheet = sheet.CSS
	}
	return html.Render(out, root, params, htmlOpts)
}

func selectNodes(out io.Writer, root *ast.Node, expr string) error {
	nodes, err := astpath.Select(root, expr)
	if err != nil {
		return err
	}
	tracer().Infof("%d nodes match %s", len(nodes), expr)
	for _, n := range nodes {
		if err = astdebug.Dump(out, n); err != nil {
			return err
		}
	}
	return nil
}

func readFile(name string) ([]byte, error) {
	src, err := ioutil.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.WrapError(err, core.EMISSING, "file not found: %s", name)
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot read %s", name)
	}
	tracer().Infof("read %s (%s)", name, humanize.Bytes(uint64(len(src))))
	return src, nil
}
