package inline

import (
	"strings"
)

// State is the set of inline constructs currently open. Raw is not a construct
// but set by callers for spans which must not be interpreted.
type State struct {
	Raw          bool
	LinkRef      bool
	LinkText     bool
	FootnoteRef  bool
	FootnoteText bool
	Code         bool
	Italic       bool
	Bold         bool
}

// TextMode is the initial state for ordinary text spans.
var TextMode = State{}

// RawMode is the initial state for URLs, image sources and anchor names.
var RawMode = State{Raw: true}

// isRaw is true while no markup may be interpreted: for raw spans and inside the
// reference part of links and footnotes.
func (st State) isRaw() bool {
	return st.Raw || st.LinkRef || st.FootnoteRef
}

func (st State) inReference() bool {
	return st.LinkRef || st.LinkText || st.FootnoteRef || st.FootnoteText
}

type escMap struct {
	char   byte
	entity string
}

var htmlEscaper = []escMap{
	{'<', "&lt;"},
	{'>', "&gt;"},
	{'&', "&amp;"},
	{'"', "&quot;"},
	{'\'', "&apos;"},
}

func entity(c byte) (string, bool) {
	for _, esc := range htmlEscaper {
		if esc.char == c {
			return esc.entity, true
		}
	}
	return "", false
}

// Transduce converts src[lo:ub] to HTML, starting in state initial.
// If rawText is set, the span is returned unchanged.
//
// Bounds are clipped to src.
func Transduce(src []byte, lo, ub int, initial State, rawText bool) string {
	if ub > len(src) {
		ub = len(src)
	}
	if lo < 0 {
		lo = 0
	}
	if lo >= ub {
		return ""
	}
	if rawText {
		return string(src[lo:ub])
	}
	var out strings.Builder
	out.Grow(ub - lo + 16)
	st := initial
	has := func(i int, prefix string) bool {
		return i+len(prefix) <= ub && string(src[i:i+len(prefix)]) == prefix
	}
	for i := lo; i < ub; {
		c := src[i]
		switch {
		case c == '\\' && i+1 < ub:
			x := src[i+1]
			if e, ok := entity(x); ok && !st.isRaw() {
				out.WriteString(e)
			} else if st.isRaw() && x == '"' {
				out.WriteString("%22")
			} else {
				out.WriteByte(x)
			}
			i += 2
		case !st.isRaw() && !st.inReference() && has(i, "@["):
			st.LinkRef = true
			out.WriteString(`<a href="`)
			i += 2
		case !st.isRaw() && !st.inReference() && has(i, "[^"):
			st.FootnoteRef = true
			out.WriteString(`<sup><a href="#`)
			i += 2
		case st.LinkRef && c == '|':
			st.LinkRef, st.LinkText = false, true
			out.WriteString(`">`)
			i++
		case st.LinkText && c == ']':
			st.LinkText = false
			out.WriteString("</a>")
			i++
		case st.FootnoteRef && c == '|':
			st.FootnoteRef, st.FootnoteText = false, true
			out.WriteString(`">[`)
			i++
		case st.FootnoteText && c == ']':
			st.FootnoteText = false
			out.WriteString("]</a></sup>")
			i++
		case !st.isRaw() && c == '`':
			st.Code = !st.Code
			out.WriteString(toggle(st.Code, "<code>", "</code>"))
			i++
		case !st.isRaw() && has(i, "**"):
			st.Bold = !st.Bold
			out.WriteString(toggle(st.Bold, "<b>", "</b>"))
			i += 2
		case !st.isRaw() && c == '*':
			st.Italic = !st.Italic
			out.WriteString(toggle(st.Italic, "<i>", "</i>"))
			i++
		case !st.isRaw() && isEscaped(c):
			e, _ := entity(c)
			out.WriteString(e)
			i++
		case st.isRaw() && c == '"':
			out.WriteString("%22")
			i++
		case !st.isRaw() && has(i, "---"):
			out.WriteString("&mdash;")
			i += 3
		case !st.isRaw() && has(i, "--"):
			out.WriteString("&ndash;")
			i += 2
		case !st.isRaw() && has(i, "//"):
			out.WriteString("<br>")
			i += 2
		default:
			out.WriteByte(c)
			i++
		}
	}
	closeOpen(&out, st)
	return out.String()
}

// closeOpen terminates any inline constructs left open at the end of a span.
func closeOpen(out *strings.Builder, st State) {
	if st == (State{Raw: st.Raw}) {
		return
	}
	tracer().Debugf("auto-closing open inline state %+v", st)
	if st.LinkRef {
		out.WriteString(`"></a>`)
	} else if st.LinkText {
		out.WriteString("</a>")
	}
	if st.FootnoteRef {
		out.WriteString(`">[]</a></sup>`)
	} else if st.FootnoteText {
		out.WriteString("]</a></sup>")
	}
	if st.Code {
		out.WriteString("</code>")
	}
	if st.Italic {
		out.WriteString("</i>")
	}
	if st.Bold {
		out.WriteString("</b>")
	}
}

func toggle(open bool, opening, closing string) string {
	if open {
		return opening
	}
	return closing
}

func isEscaped(c byte) bool {
	_, ok := entity(c)
	return ok
}

// Text transduces a complete string in text mode.
func Text(s string, rawText bool) string {
	return Transduce([]byte(s), 0, len(s), TextMode, rawText)
}

// Raw transduces a complete string in raw mode.
func Raw(s string, rawText bool) string {
	return Transduce([]byte(s), 0, len(s), RawMode, rawText)
}
