// Package scrape fetches web pages and turns them into text, metadata and links.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoContent is returned by a Downloader when the page was reachable but
// yielded nothing usable (non-2xx status or an empty body).
var ErrNoContent = errors.New("no content")

// Downloader fetches the raw HTML of a page.
type Downloader interface {
	Download(ctx context.Context, url string) (string, error)
}

// Extractor turns HTML into readable main-content text.
type Extractor interface {
	Extract(html string) (string, error)
}

// MetadataExtractor pulls page metadata and outbound links from HTML.
type MetadataExtractor interface {
	ExtractMetadata(html, pageURL string) (*PageMetadata, error)
}

// PageGetter performs a single GET bounded by timeout.
type PageGetter interface {
	Get(ctx context.Context, url string, timeout time.Duration) (string, error)
}

// PageMetadata describes a fetched page
type PageMetadata struct {
	Title        string
	Description  string
	SiteName     string
	CanonicalURL string
	Links        []string
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s for url: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}
