package cmf

import (
	"fmt"

	"github.com/npillmayer/cmfc/core"
)

// maxExcerpt is the maximum length of a source excerpt in a ParseError.
const maxExcerpt = 80

// ParseError is a fatal error while scanning markup.
// It wraps a core.AppError with error code core.ESYNTAX.
type ParseError struct {
	Source  string // name of the markup source
	Offset  int    // byte offset of the offending construct
	Msg     string
	Excerpt string // the source line starting at Offset
	err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s[%d] err: %s: %q", e.Source, e.Offset, e.Msg, e.Excerpt)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func (s *scanner) errorf(at int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	e := &ParseError{
		Source:  s.name,
		Offset:  at,
		Msg:     msg,
		Excerpt: singleLine(s.src, at),
		err:     core.Error(core.ESYNTAX, msg),
	}
	tracer().Errorf("%s", e.Error())
	return e
}

// singleLine returns the text starting at start up to the end of the line,
// cut at maxExcerpt bytes.
func singleLine(src []byte, start int) string {
	if start < 0 || start >= len(src) {
		return ""
	}
	end := start
	for end < len(src) && end-start < maxExcerpt && src[end] != '\n' {
		end++
	}
	return string(src[start:end])
}
