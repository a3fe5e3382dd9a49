package cmf

import (
	"bytes"

	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/cmfc/core/parameters"
	"github.com/npillmayer/cmfc/input/cmf/ast"
)

// Parse scans a markup source and returns the root of the resulting node tree.
// DOC directives found in src are stored into params, which must be the same
// parameter set used for an earlier ParseMetadata call, if any.
// If params is nil, a fresh set of parameters is used.
//
// Any malformed construct aborts parsing with a *ParseError.
func Parse(src []byte, params *parameters.DocumentParameters, opts ...Option) (*ast.Node, error) {
	if params == nil {
		params = parameters.NewDocumentParameters()
	}
	s := newScanner(src, params, opts)
	tracer().Infof("parsing %s, %d bytes", s.name, len(src))
	root := ast.New(ast.Root)
	for !s.eof() {
		node, err := s.parseBlock()
		if err != nil {
			return nil, err
		}
		if node != nil {
			tracer().Debugf("block %s at %d", node.Kind, s.pos)
			root.AddChild(node)
		}
	}
	return root, nil
}

// ParseMetadata scans a metadata source, which may consist of DOC directives
// and blank lines only. Directives are stored into params, which must not be nil.
func ParseMetadata(src []byte, params *parameters.DocumentParameters, opts ...Option) error {
	if params == nil {
		return core.Error(core.EINVALID, "metadata requires a parameter set to store into")
	}
	s := newScanner(src, params, opts)
	tracer().Infof("parsing metadata %s, %d bytes", s.name, len(src))
	for !s.eof() {
		switch {
		case s.peek() == '\n':
			s.advance(1)
		case s.hasPrefix("DOC"):
			if err := s.parseDirective(); err != nil {
				return err
			}
		default:
			return s.errorf(s.pos, "only DOC directives allowed in metadata")
		}
	}
	return nil
}

// parseBlock dispatches on the prefix at the cursor. It returns a nil node for
// input which does not produce a tree node.
func (s *scanner) parseBlock() (*ast.Node, error) {
	switch c := s.peek(); {
	case s.hasPrefix("DOC"):
		return nil, s.parseDirective()
	case c == '=':
		return s.parseHeading()
	case c == '*':
		return s.parseList(ast.UnorderedList, '*'), nil
	case c == '#':
		return s.parseList(ast.OrderedList, '#'), nil
	case s.hasPrefix("      "):
		return s.parseBlockquote(), nil
	case s.hasPrefix("```\n"):
		return s.parseLongCode(), nil
	case s.hasPrefix("---"):
		return s.parseTable()
	case s.hasPrefix("!()"):
		return s.parseImage(), nil
	case s.hasPrefix("[^"):
		return s.parseFootnote()
	case c != '\n':
		return s.parseParagraph(), nil
	}
	s.advance(1)
	return nil, nil
}

func (s *scanner) parseHeading() (*ast.Node, error) {
	start := s.pos
	level := s.run('=')
	if level > 6 {
		return nil, s.errorf(start, "heading level %d > 6", level)
	}
	lo := s.pos
	s.scanUntil("\n\n")
	return ast.NewText(ast.Title, s.text(lo, s.pos), level), nil
}

// parseList collects list items until a blank line. The number of markers
// in front of an item is its nesting depth.
func (s *scanner) parseList(kind ast.Kind, marker byte) *ast.Node {
	list := ast.New(kind)
	next := "\n" + string(marker)
	for {
		depth := s.run(marker)
		lo := s.pos
		s.scanUntil("\n\n", next)
		list.AddChild(ast.NewText(ast.ListItem, s.text(lo, s.pos), depth))
		s.advance(1)
		if s.eof() || s.peek() == '\n' {
			break
		}
	}
	return list
}

func (s *scanner) parseBlockquote() *ast.Node {
	s.advance(6)
	lo := s.pos
	s.scanUntil("\n\n")
	return ast.NewText(ast.Blockquote, s.text(lo, s.pos), 0)
}

// parseLongCode scans a fenced code block. The body is transduced in text mode.
// A missing closing fence extends the body to the end of the source.
func (s *scanner) parseLongCode() *ast.Node {
	s.advance(4)
	lo, ub := s.pos, len(s.src)
	rest := s.src[lo-1:] // include the newline of the opening fence
	if i := bytes.Index(rest, []byte("\n```\n")); i >= 0 {
		ub = lo - 1 + i
		s.pos = ub + 5
	} else if bytes.HasSuffix(rest, []byte("\n```")) {
		ub = len(s.src) - 4
		s.pos = len(s.src)
	} else {
		tracer().Infof("long code starting at %d not closed", lo)
		s.pos = len(s.src)
	}
	if ub < lo {
		ub = lo
	}
	return ast.NewText(ast.LongCode, s.text(lo, ub), 0)
}

func (s *scanner) parseImage() *ast.Node {
	s.advance(3)
	lo := s.pos
	s.skipToEOL()
	return ast.NewText(ast.Image, s.raw(lo, s.pos), 0)
}

// parseFootnote scans a footnote definition "[^name]body".
func (s *scanner) parseFootnote() (*ast.Node, error) {
	start := s.pos
	s.advance(2)
	lo := s.pos
	for !s.eof() && s.peek() != ']' && s.peek() != '\n' {
		if s.peek() == '\\' && s.pos+1 < len(s.src) && s.src[s.pos+1] != '\n' {
			s.advance(2)
			continue
		}
		s.advance(1)
	}
	if s.peek() != ']' {
		return nil, s.errorf(start, "unterminated footnote anchor")
	}
	name := s.raw(lo, s.pos)
	s.advance(1)
	blo := s.pos
	s.scanUntil("\n\n")
	fn := ast.NewText(ast.Footnote, name, 0)
	fn.Text[1] = s.text(blo, s.pos)
	return fn, nil
}

// parseParagraph scans a paragraph, skipping an indent of four spaces. A
// paragraph ends at a blank line or at the next indented line.
func (s *scanner) parseParagraph() *ast.Node {
	if s.hasPrefix("    ") {
		s.advance(4)
	}
	lo := s.pos
	s.scanUntil("\n\n", "\n    ")
	return ast.NewText(ast.Paragraph, s.text(lo, s.pos), 0)
}
