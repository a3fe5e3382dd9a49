package resources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/schuko/gconf"
)

// DownloadCachedFile will download a url to a local file (usually located in the
// user's cache directory). Failing transfers result in an error with code
// core.ECONNECTION; a partially written file is removed.
func DownloadCachedFile(ctx context.Context, path string, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot request %s", url)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot download %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("HTTP status %s", resp.Status)
		if resp.StatusCode == http.StatusNotFound {
			return NotFound(url, stylesheetResourceType)
		}
		return core.WrapError(err, core.ECONNECTION, "cannot download %s", url)
	}
	out, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create cache file %s", path)
	}
	n, err := io.Copy(out, resp.Body)
	out.Close()
	if err != nil {
		os.Remove(path)
		return core.WrapError(err, core.ECONNECTION, "cannot download %s", url)
	}
	tracer().Infof("downloaded %s (%s)", url, humanize.Bytes(uint64(n)))
	return nil
}

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the global configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(subfolders ...string) (string, error) {
	appkey := gconf.GetString("app-key")
	tracer().Debugf("config[%s] = %s", "app-key", appkey)
	if appkey == "" {
		tracer().Errorf("application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "no user cache directory")
	}
	cachedir = filepath.Join(append([]string{cachedir, appkey}, subfolders...)...)
	tracer().Debugf("caching in %s", cachedir)
	if _, err = os.Stat(cachedir); os.IsNotExist(err) {
		if err = os.MkdirAll(cachedir, 0755); err != nil {
			return "", core.WrapError(err, core.EINTERNAL, "cannot create cache directory")
		}
	}
	return cachedir, nil
}
