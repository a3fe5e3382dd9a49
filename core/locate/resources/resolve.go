package resources

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/dustin/go-humanize"
	"github.com/npillmayer/cmfc/core"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	stylesheetResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case stylesheetResourceType:
		s = fmt.Sprintf("stylesheet not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// --- Stylesheets -----------------------------------------------------------

// Stylesheet is a CSS stylesheet to be included into a document.
type Stylesheet struct {
	Name  string          // file name or URL
	CSS   string          // stylesheet text as loaded
	Rules *css.Stylesheet // parsed stylesheet
}

type stylePlusErr struct {
	sheet *Stylesheet
	err   error
}

// StylesheetPromise is the promise type of ResolveStylesheet.
type StylesheetPromise interface {
	Stylesheet() (*Stylesheet, error)
	StylesheetContext(ctx context.Context) (*Stylesheet, error)
}

type styleLoader struct {
	await func(ctx context.Context) (*Stylesheet, error)
}

func (loader styleLoader) Stylesheet() (*Stylesheet, error) {
	return loader.await(context.Background())
}

func (loader styleLoader) StylesheetContext(ctx context.Context) (*Stylesheet, error) {
	return loader.await(ctx)
}

// ResolveStylesheet loads a stylesheet, either from a local file or, for
// names starting with http:// or https://, from the web. Downloaded stylesheets
// are cached in the user's cache directory and re-used on subsequent calls.
// The stylesheet is checked for syntax errors before it is returned.
func ResolveStylesheet(name string) StylesheetPromise {
	ch := make(chan stylePlusErr, 1)
	go func(ch chan<- stylePlusErr) {
		result := stylePlusErr{}
		var text []byte
		if isRemote(name) {
			text, result.err = loadRemote(name)
		} else {
			text, result.err = loadLocal(name)
		}
		if result.err == nil {
			result.sheet, result.err = validate(name, string(text))
		}
		ch <- result
		close(ch)
	}(ch)
	return styleLoader{
		await: func(ctx context.Context) (*Stylesheet, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.sheet, r.err
			}
		},
	}
}

func isRemote(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

func loadLocal(name string) ([]byte, error) {
	text, err := ioutil.ReadFile(name)
	if os.IsNotExist(err) {
		return nil, NotFound(name, stylesheetResourceType)
	} else if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read stylesheet %s", name)
	}
	tracer().Debugf("loaded stylesheet %s (%s)", name, humanize.Bytes(uint64(len(text))))
	return text, nil
}

func loadRemote(name string) ([]byte, error) {
	u, err := url.Parse(name)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "malformed stylesheet URL %s", name)
	}
	cachedir, err := CacheDirPath("styles")
	if err != nil {
		return nil, err
	}
	cachefile := filepath.Join(cachedir, cacheName(u))
	if _, err = os.Stat(cachefile); err == nil {
		tracer().Infof("using cached stylesheet %s", cachefile)
		return loadLocal(cachefile)
	}
	if err = DownloadCachedFile(context.Background(), cachefile, name); err != nil {
		return nil, err
	}
	return loadLocal(cachefile)
}

// cacheName derives a file name for a stylesheet URL, e.g.
// "https://example.org/css/base.css" → "example.org_css_base.css".
func cacheName(u *url.URL) string {
	p := strings.Trim(path.Clean("/"+u.Path), "/")
	if p == "" {
		p = "style.css"
	}
	name := u.Host + "_" + strings.ReplaceAll(p, "/", "_")
	return strings.Map(func(r rune) rune {
		if r == ':' || r == '\\' {
			return '_'
		}
		return r
	}, name)
}

func validate(name, text string) (*Stylesheet, error) {
	rules, err := parser.Parse(text)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid stylesheet %s", name)
	}
	tracer().Debugf("stylesheet %s has %d rules", name, len(rules.Rules))
	return &Stylesheet{Name: name, CSS: text, Rules: rules}, nil
}
