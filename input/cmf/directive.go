package cmf

import (
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/cmfc/core/parameters"
)

// directive is the meta data stored for a DOC keyword.
type directive struct {
	param   parameters.DocParameter
	rawText bool // DOC-RAW-TEXT switches raw-text mode instead of setting a parameter
}

var keywords *trie.Trie
var keywordsOnce sync.Once

func directives() *trie.Trie {
	keywordsOnce.Do(func() {
		keywords = trie.New()
		keywords.Add("DOC-TITLE", directive{param: parameters.P_TITLE})
		keywords.Add("DOC-SUBTITLE", directive{param: parameters.P_SUBTITLE})
		keywords.Add("DOC-AUTHOR", directive{param: parameters.P_AUTHOR})
		keywords.Add("DOC-CREATED", directive{param: parameters.P_CREATED})
		keywords.Add("DOC-REVISED", directive{param: parameters.P_REVISED})
		keywords.Add("DOC-LICENSE", directive{param: parameters.P_LICENSE})
		keywords.Add("DOC-FAVICON", directive{param: parameters.P_FAVICON})
		keywords.Add("DOC-RAW-TEXT", directive{rawText: true})
	})
	return keywords
}

// parseDirective scans a DOC line. The cursor is positioned at "DOC".
// A directive consists of the keyword, a single space and an operand extending
// to the end of the line.
func (s *scanner) parseDirective() error {
	start := s.pos
	end := start
	for end < len(s.src) && s.src[end] != ' ' && s.src[end] != '\n' {
		end++
	}
	keyword := string(s.src[start:end])
	node, ok := directives().Find(keyword)
	if !ok {
		return s.errorf(start, "unknown DOC directive %q", keyword)
	}
	if end >= len(s.src) || s.src[end] != ' ' {
		return s.errorf(start, "malformed DOC directive %q", keyword)
	}
	s.pos = end + 1
	lo := s.pos
	s.skipToEOL()
	d := node.Meta().(directive)
	if d.rawText {
		switch string(s.src[lo:s.pos]) {
		case "0":
			s.params.SetRawText(false)
		case "1":
			s.params.SetRawText(true)
		default:
			return s.errorf(lo, "DOC-RAW-TEXT expects 0 or 1")
		}
		tracer().Debugf("raw-text mode = %v", s.params.RawText())
		return nil
	}
	s.params.Set(d.param, s.text(lo, s.pos))
	tracer().Debugf("document parameter %s = %q", d.param, s.params.S(d.param))
	return nil
}
