package cmf

import (
	"github.com/npillmayer/cmfc/core/parameters"
	"github.com/npillmayer/cmfc/input/cmf/inline"
)

// scanner holds the markup source and a cursor into it. The cursor moves
// forward only.
type scanner struct {
	src    []byte
	pos    int
	name   string
	params *parameters.DocumentParameters
}

// Option configures scanning.
type Option func(*scanner)

// WithSourceName sets the name of the markup source, used in error messages.
func WithSourceName(name string) Option {
	return func(s *scanner) {
		s.name = name
	}
}

func newScanner(src []byte, params *parameters.DocumentParameters, opts []Option) *scanner {
	s := &scanner{src: src, name: "<input>", params: params}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the byte at the cursor, or 0 at the end of the source.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) hasPrefix(prefix string) bool {
	return s.pos+len(prefix) <= len(s.src) && string(s.src[s.pos:s.pos+len(prefix)]) == prefix
}

// advance moves the cursor n bytes forward, but not beyond the end of the source.
func (s *scanner) advance(n int) {
	s.pos += n
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
}

// run consumes a run of bytes c and returns its length.
func (s *scanner) run(c byte) int {
	n := 0
	for !s.eof() && s.src[s.pos] == c {
		s.pos++
		n++
	}
	return n
}

// scanUntil moves the cursor to the next occurrence of any of stops, or to the
// end of the source.
func (s *scanner) scanUntil(stops ...string) {
	for !s.eof() {
		for _, stop := range stops {
			if s.hasPrefix(stop) {
				return
			}
		}
		s.pos++
	}
}

// skipToEOL moves the cursor to the next newline, or to the end of the source.
func (s *scanner) skipToEOL() {
	for !s.eof() && s.src[s.pos] != '\n' {
		s.pos++
	}
}

// text transduces src[lo:ub] in text mode, respecting raw-text mode.
func (s *scanner) text(lo, ub int) string {
	return inline.Transduce(s.src, lo, ub, inline.TextMode, s.params.RawText())
}

// raw transduces src[lo:ub] in raw mode, respecting raw-text mode.
func (s *scanner) raw(lo, ub int) string {
	return inline.Transduce(s.src, lo, ub, inline.RawMode, s.params.RawText())
}
