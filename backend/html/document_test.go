package html

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/cmfc/core/parameters"
	"github.com/npillmayer/cmfc/input/cmf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

const sampleDocument = `DOC-TITLE Sample
DOC-AUTHOR A. U. Thor
DOC-CREATED 2021-04-01

=Sample *Document*

Text with **bold**, ` + "`code`" + ` and a footnote[^fn1|1].

#first
##nested
#second

      A quote --- with a dash.

---
|Name|Value|
|of cell|continued|
---

[^fn1]The footnote.
`

// --- Test Suite Preparation ------------------------------------------------

type DocumentTestEnviron struct {
	suite.Suite
	doc *goquery.Document
}

// listen for 'go test' command --> run test methods
func TestDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.html")
	defer teardown()
	suite.Run(t, new(DocumentTestEnviron))
}

// run once, before test suite methods
func (env *DocumentTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	params := parameters.NewDocumentParameters()
	root, err := cmf.Parse([]byte(sampleDocument), params, cmf.WithSourceName("sample.cmf"))
	env.Require().NoError(err)
	env.Require().NoError(params.Validate())
	var b bytes.Buffer
	env.Require().NoError(Render(&b, root, params, Options{}))
	env.doc, err = goquery.NewDocumentFromReader(&b)
	env.Require().NoError(err)
}

// --- Tests -----------------------------------------------------------------

func (env *DocumentTestEnviron) TestHeading() {
	h := env.doc.Find("h1")
	env.Equal(1, h.Length())
	env.Equal("Document", h.Find("i").Text())
}

func (env *DocumentTestEnviron) TestInlineMarkup() {
	p := env.doc.Find("body > p")
	env.Equal("bold", p.Find("b").Text())
	env.Equal("code", p.Find("code").Text())
	env.Equal("#fn1", p.Find("sup > a").AttrOr("href", ""))
}

func (env *DocumentTestEnviron) TestOrderedList() {
	env.Equal(2, env.doc.Find("body > ol > li").Length())
	env.Equal("nested", env.doc.Find("ol > ol > li").Text())
}

func (env *DocumentTestEnviron) TestBlockquote() {
	env.Equal("A quote — with a dash.", env.doc.Find("blockquote").Text())
}

func (env *DocumentTestEnviron) TestTable() {
	cells := env.doc.Find("table td")
	env.Equal(2, cells.Length(), "continuation lines do not add cells")
	env.Equal("Name of cell", cells.First().Text())
	env.Equal("Value continued", cells.Last().Text())
}

func (env *DocumentTestEnviron) TestFootnoteTarget() {
	fn := env.doc.Find("div.footnote#fn1")
	env.Equal(1, fn.Length())
	env.Contains(fn.Text(), "The footnote.")
}
