package assetcache

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/akyairhashvil/flashtimer/internal/util"
)

// Response is a fetched or cached asset.
type Response struct {
	Status      int
	ContentType string
	Header      http.Header
	Body        []byte
	Digest      string
}

// Fetcher is the network side of the cache.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*Response, error)
}

// StatusError reports an upstream answer that is not a success.
type StatusError struct {
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.Path, e.Status)
}

// FSFetcher serves assets from a file system, typically the embedded page.
type FSFetcher struct {
	FS    fs.FS
	Index string
}

func (f FSFetcher) Fetch(ctx context.Context, p string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		name = f.Index
		if name == "" {
			name = "index.html"
		}
	}
	body, err := fs.ReadFile(f.FS, name)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p, err)
	}
	return newResponse(http.StatusOK, contentType(name, body), nil, body), nil
}

// skipped when storing upstream headers
var hopHeaders = map[string]bool{
	"Connection":        true,
	"Content-Length":    true,
	"Content-Type":      true,
	"Date":              true,
	"Etag":              true,
	"Keep-Alive":        true,
	"Set-Cookie":        true,
	"Transfer-Encoding": true,
}

// HTTPFetcher fetches assets from an upstream origin.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPFetcher(baseURL string) HTTPFetcher {
	return HTTPFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f HTTPFetcher) Fetch(ctx context.Context, p string) (*Response, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+p, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: p, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", p, err)
	}
	header := http.Header{}
	for k, v := range resp.Header {
		if hopHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		header[k] = append([]string(nil), v...)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = contentType(p, body)
	}
	return newResponse(resp.StatusCode, ct, header, body), nil
}

func newResponse(status int, ct string, header http.Header, body []byte) *Response {
	if header == nil {
		header = http.Header{}
	}
	return &Response{
		Status:      status,
		ContentType: ct,
		Header:      header,
		Body:        body,
		Digest:      util.Digest(body),
	}
}

func contentType(name string, body []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(body)
}
